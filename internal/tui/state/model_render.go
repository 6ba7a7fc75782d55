package state

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/g-project/internal/tui/render"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// View renders the TUI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("g-project"))
	s.WriteString("\n")
	s.WriteString(m.uiState.GetViewport().View())
	s.WriteString("\n")

	switch {
	case m.dialog != nil:
		c := m.dialog.choice
		s.WriteString(render.Dialog(c.Title(), c.Options(), m.dialog.cursor, currentValue(m, c)))
	case m.quitting:
	default:
		s.WriteString(m.uiState.GetInput().View())
	}

	s.WriteString("\n")
	s.WriteString(render.Footer(render.FooterState{
		Busy:   m.uiState.IsBusy(),
		Dialog: m.dialog != nil,
		Debug:  m.uiState.GetDebug(),
		Model:  m.modelName,
	}))
	return s.String()
}

// refresh re-renders the transcript into the viewport and scrolls to the end.
func (m *Model) refresh() {
	content := render.Transcript(m.items, m.markdown)
	if m.pending != nil {
		if content != "" {
			content += "\n\n"
		}
		content += render.Pending(m.pending, m.spinner.View())
	}
	vp := m.uiState.GetViewport()
	vp.SetContent(content)
	vp.GotoBottom()
}
