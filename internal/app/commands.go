package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cristianoliveira/g-project/internal/commands"
)

// CommandLister supplies the combined command listing.
type CommandLister interface {
	AllCommands() []*commands.Command
}

// CommandsUseCase prints the available slash commands.
type CommandsUseCase struct {
	client CommandLister
}

// NewCommandsUseCase creates a commands use-case.
func NewCommandsUseCase(client CommandLister) *CommandsUseCase {
	if client == nil {
		panic("NewCommandsUseCase: client dependency cannot be nil")
	}
	return &CommandsUseCase{client: client}
}

// Execute writes one row per command and subcommand.
func (u *CommandsUseCase) Execute(w io.Writer) error {
	rows := CommandRows(u.client.AllCommands())
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No commands available")
		return err
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Command", "Alias", "Description").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// CommandRows flattens list into (path, alias, description) rows, depth first.
func CommandRows(list []*commands.Command) [][]string {
	var rows [][]string
	var walk func(prefix string, list []*commands.Command)
	walk = func(prefix string, list []*commands.Command) {
		for _, cmd := range list {
			if cmd == nil {
				continue
			}
			path := prefix + cmd.Name
			alias := ""
			if cmd.AltName != "" {
				alias = prefix + cmd.AltName
			}
			rows = append(rows, []string{path, alias, cmd.Description})
			walk(path+" ", cmd.SubCommands)
		}
	}
	walk("/", list)
	return rows
}
