package main

import (
	"github.com/cristianoliveira/g-project/cmd"
	"github.com/cristianoliveira/g-project/internal/app"
	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/config"
	"github.com/cristianoliveira/g-project/internal/dispatch"
	"github.com/cristianoliveira/g-project/internal/registry"
	"github.com/spf13/cobra"
)

const commandsCommandLong = `List the slash commands available in a chat session for the project.

USAGE:
    g-project commands

The list depends on the project: screen-tasks only appears when the
project's settings directory holds validation rules.`

// commandsLoader returns the command lister for the current project.
type commandsLoader func(cmd *cobra.Command) (app.CommandLister, error)

// NewCommandsCmd creates the commands command.
func NewCommandsCmd(load commandsLoader) *cobra.Command {
	if load == nil {
		panic("NewCommandsCmd: loader dependency cannot be nil")
	}
	return &cobra.Command{
		Use:   "commands",
		Short: "List slash commands",
		Long:  commandsCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			lister, err := load(c)
			if err != nil {
				return err
			}
			return app.NewCommandsUseCase(lister).Execute(c.OutOrStdout())
		},
	}
}

// loadProjectCommands loads the built-in commands for the configured project.
func loadProjectCommands(c *cobra.Command) (app.CommandLister, error) {
	handle := config.NewHandle("")
	service := registry.NewCommandService(handle, nil)
	if err := service.LoadCommands(c.Context()); err != nil {
		return nil, err
	}
	return dispatch.NewProcessor(service, &commands.ContextBuilder{}, nil), nil
}

var commandsCmd = NewCommandsCmd(loadProjectCommands)

func init() {
	cmd.RootCmd.AddCommand(commandsCmd)
}
