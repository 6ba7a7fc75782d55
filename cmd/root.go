// Package cmd holds the root command of the g-project CLI.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/g-project/internal/config"
	"github.com/cristianoliveira/g-project/internal/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:           "g-project",
	Short:         "A terminal agent shell with slash commands.",
	Long:          `A terminal agent shell: chat with a model and drive the session with slash commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if workdir != "" {
			config.Set("workdir", workdir)
		}
		if debug {
			config.Set("debug", "true")
			config.Set("logging_enabled", "true")
			config.Set("logging_level", "debug")
		}
	},
}

var (
	workdir string
	debug   bool
)

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
	RootCmd.PersistentFlags().StringVar(&workdir, "workdir", "", "Project directory (default is the current directory)")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		PrintHelp(cmd.Root(), cmd.OutOrStdout())
	})
}

// commandOrder is the order commands appear in the help text.
var commandOrder = []string{"chat", "commands", "settings", "version"}

// PrintHelp writes the help text of root to w.
func PrintHelp(root *cobra.Command, w io.Writer) {
	var cmdLines []string
	for _, name := range commandOrder {
		for _, c := range root.Commands() {
			if c.Name() == name {
				cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", c.Name(), c.Short))
				break
			}
		}
	}

	fmt.Fprintf(w, `g-project %s

%s

USAGE:
    g-project [COMMAND] [OPTIONS]

Running g-project without a command starts a chat session.

COMMANDS:
%s

OPTIONS:
    --workdir DIR   Project directory
    --debug         Enable debug logging
    -h, --help      Show help message
`, version.String(), root.Short, strings.Join(cmdLines, "\n"))
}
