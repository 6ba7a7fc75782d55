package jira

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const minColumnWidth = 20

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Padding(0, 1)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// ColumnWidth returns the display width for a rule column.
func ColumnWidth(rule string) int {
	if w := len(rule) + 2; w > minColumnWidth {
		return w
	}
	return minColumnWidth
}

// FormatCell renders a rule outcome clipped to width-2 runes.
func FormatCell(res RuleResult, width int) string {
	mark := "✗"
	if res.Passed {
		mark = "✓"
	}
	return truncate(mark+" "+res.Message, width-2)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// Render formats the report as one table per status followed by a summary.
func (r Report) Render() string {
	if r.Empty() {
		return "No tasks found for validation"
	}

	var b strings.Builder
	for _, status := range r.Statuses {
		if len(status.Tasks) == 0 {
			continue
		}
		b.WriteString(titleStyle.Render("Status: " + status.Status))
		b.WriteString("\n")
		b.WriteString(renderStatusTable(status))
		b.WriteString("\n\n")
	}

	tasks, passed, failed := r.Counts()
	fmt.Fprintf(&b, "Summary: %d tasks validated | ✓ %d passed | ✗ %d failed", tasks, passed, failed)
	return b.String()
}

func renderStatusTable(status StatusReport) string {
	headers := append([]string{"Task ID"}, status.Rules...)
	passed := make([][]bool, len(status.Tasks))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for i, task := range status.Tasks {
		row := []string{task.ID}
		passed[i] = make([]bool, len(status.Rules))
		for j, rule := range status.Rules {
			res := task.Results[rule]
			passed[i][j] = res.Passed
			row = append(row, FormatCell(res, ColumnWidth(rule)))
		}
		t.Row(row...)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col == 0 || row < 0 || row >= len(passed) {
			return cellStyle
		}
		width := ColumnWidth(status.Rules[col-1])
		if passed[row][col-1] {
			return passStyle.Width(width)
		}
		return failStyle.Width(width)
	})
	return t.Render()
}
