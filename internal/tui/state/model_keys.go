package state

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.dialog != nil {
		return m.handleDialogKey(msg)
	}

	switch msg.Type {
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		*m.uiState.GetViewport(), cmd = m.uiState.GetViewport().Update(msg)
		return m, cmd
	case tea.KeyTab:
		if !m.uiState.IsBusy() {
			m.complete()
		}
		return m, nil
	case tea.KeyEnter:
		return m.handleEnter()
	}

	if m.uiState.IsBusy() || m.quitting {
		return m, nil
	}
	var cmd tea.Cmd
	*m.uiState.GetInput(), cmd = m.uiState.GetInput().Update(msg)
	return m, cmd
}

// handleEnter submits the input line unless a previous one is still running.
func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.uiState.IsBusy() || m.quitting {
		return m, nil
	}
	input := m.uiState.GetInput()
	line := strings.TrimSpace(input.Value())
	if line == "" {
		return m, nil
	}
	input.Reset()
	return m, m.submit(line)
}
