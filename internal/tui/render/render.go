// Package render turns transcript items into terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/g-project/internal/colors"
	"github.com/cristianoliveira/g-project/internal/domain"
	"github.com/cristianoliveira/g-project/internal/settings"
)

const (
	userPrefix     = "> "
	errorPrefix    = "✗ "
	toolPrefix     = "⚙ "
	minWrapWidth   = 20
	markdownMargin = 4
)

var (
	userStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ansiColorNumber(colors.Cyan)))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
	toolStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Green)))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// Markdown renders model replies in the selected theme.
type Markdown struct {
	renderer *glamour.TermRenderer
}

// NewMarkdown builds a renderer for theme wrapping at width. A renderer that
// cannot be built falls back to plain text.
func NewMarkdown(theme string, width int) *Markdown {
	wrap := width - markdownMargin
	if wrap < minWrapWidth {
		wrap = minWrapWidth
	}
	r, err := glamour.NewTermRenderer(styleOption(theme), glamour.WithWordWrap(wrap))
	if err != nil {
		colors.Debug(fmt.Sprintf("markdown renderer unavailable: %v", err))
		return &Markdown{}
	}
	return &Markdown{renderer: r}
}

func styleOption(theme string) glamour.TermRendererOption {
	switch theme {
	case "", settings.ThemeAuto:
		return glamour.WithAutoStyle()
	default:
		return glamour.WithStandardStyle(theme)
	}
}

// Render returns text as styled markdown.
func (m *Markdown) Render(text string) string {
	if m == nil || m.renderer == nil {
		return text
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

// Item renders one transcript entry.
func Item(item domain.HistoryItem, md *Markdown) string {
	switch item.Type {
	case domain.MessageTypeUser:
		return userStyle.Render(userPrefix + item.Text)
	case domain.MessageTypeGemini:
		return md.Render(item.Text)
	case domain.MessageTypeError:
		return errorStyle.Render(errorPrefix + item.Text)
	case domain.MessageTypeTool:
		return toolStyle.Render(toolPrefix + item.Text)
	case domain.MessageTypeAbout:
		return aboutBox(item.About)
	case domain.MessageTypeStats, domain.MessageTypeQuit:
		return boxStyle.Render(item.Summary())
	case domain.MessageTypeCompression:
		return infoStyle.Render(item.Summary())
	default:
		return infoStyle.Render(item.Text)
	}
}

func aboutBox(info *domain.AboutInfo) string {
	if info == nil {
		return boxStyle.Render(titleStyle.Render("About"))
	}
	rows := [][2]string{
		{"CLI Version", info.CLIVersion},
		{"OS", info.OSVersion},
		{"Model", info.ModelVersion},
		{"Auth Method", info.AuthType},
		{"Session ID", info.SessionID},
	}
	if info.GitBranch != "" {
		rows = append(rows, [2]string{"Git Branch", info.GitBranch})
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("About"))
	for _, row := range rows {
		fmt.Fprintf(&b, "\n%-12s %s", row[0], row[1])
	}
	return boxStyle.Render(b.String())
}

// Transcript renders items separated by blank lines.
func Transcript(items []domain.HistoryItem, md *Markdown) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, Item(item, md))
	}
	return strings.Join(parts, "\n\n")
}

// Pending renders the in-flight item with a spinner frame.
func Pending(item *domain.HistoryItem, frame string) string {
	if item == nil {
		return ""
	}
	return infoStyle.Render(strings.TrimSpace(frame + " " + item.Summary()))
}

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	Busy   bool
	Dialog bool
	Debug  string
	Model  string
}

// Footer renders the footer with help text.
func Footer(state FooterState) string {
	var help []string
	switch {
	case state.Dialog:
		help = append(help, "↑/↓: move", "Enter: select", "Esc: cancel")
	case state.Busy:
		help = append(help, "working...")
	default:
		help = append(help, "Enter: send", "Tab: complete", "PgUp/PgDn: scroll", "/quit: exit")
	}
	if state.Model != "" {
		help = append(help, state.Model)
	}
	if state.Debug != "" {
		help = append(help, state.Debug)
	}
	return helpStyle.Render(strings.Join(help, "  |  "))
}

// Dialog renders a selection list. The current value is marked with a dot.
func Dialog(title string, options []string, cursor int, current string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for i, opt := range options {
		pointer := "  "
		if i == cursor {
			pointer = "> "
		}
		mark := ""
		if opt == current {
			mark = " ●"
		}
		line := pointer + opt + mark
		if i == cursor {
			line = userStyle.Render(line)
		}
		b.WriteString("\n" + line)
	}
	return boxStyle.Render(b.String())
}

func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
