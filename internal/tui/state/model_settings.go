package state

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/g-project/internal/app"
	"github.com/cristianoliveira/g-project/internal/tui/render"
)

// openDialog shows the options of c with the cursor on the current value.
func (m *Model) openDialog(c app.Choice) {
	d := &dialogState{choice: c}
	current := currentValue(m, c)
	for i, opt := range c.Options() {
		if opt == current {
			d.cursor = i
			break
		}
	}
	m.dialog = d
}

func currentValue(m *Model, c app.Choice) string {
	switch c {
	case app.ChoiceAuth:
		return m.current.SelectedAuthType
	case app.ChoiceTheme:
		return m.current.Theme
	default:
		return m.current.PreferredEditor
	}
}

// handleDialogKey processes key input while a dialog is open.
func (m *Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.dialog.choice.Options()
	switch msg.String() {
	case "esc":
		m.dialog = nil
	case "up", "k":
		if m.dialog.cursor > 0 {
			m.dialog.cursor--
		}
	case "down", "j":
		if m.dialog.cursor < len(options)-1 {
			m.dialog.cursor++
		}
	case "enter":
		if m.uiState.IsBusy() {
			return m, nil
		}
		m.applyDialog(options[m.dialog.cursor])
	}
	return m, nil
}

// applyDialog persists value and closes the dialog. The shared settings are
// only updated when saving succeeds.
func (m *Model) applyDialog(value string) {
	c := m.dialog.choice
	m.dialog = nil

	next, err := m.settingsSvc.Apply(m.current, c, value)
	if err != nil {
		m.errorHandler.Error(err.Error())
		return
	}
	*m.current = *next
	if c == app.ChoiceTheme {
		m.markdown = render.NewMarkdown(m.current.Theme, m.uiState.GetWidth())
		m.refresh()
	}
	m.uiState.SetDebug(fmt.Sprintf("%s: %s", c.Title(), value))
}
