package builtin

import (
	"context"

	"github.com/cristianoliveira/g-project/internal/commands"
)

func dialogCommand(name, description string, kind commands.DialogKind) *commands.Command {
	return &commands.Command{
		Name:        name,
		Description: description,
		Action: func(context.Context, *commands.Context, string) (commands.ActionResult, error) {
			return commands.OpenDialog(kind), nil
		},
	}
}

// Auth opens the authentication method dialog.
func Auth() *commands.Command {
	return dialogCommand("auth", "change the auth method", commands.DialogAuth)
}

// Theme opens the theme dialog.
func Theme() *commands.Command {
	return dialogCommand("theme", "change the theme", commands.DialogTheme)
}

// Editor opens the preferred editor dialog.
func Editor() *commands.Command {
	return dialogCommand("editor", "set external editor preference", commands.DialogEditor)
}
