package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cristianoliveira/g-project/cmd"
	"github.com/cristianoliveira/g-project/internal/app"
	"github.com/spf13/cobra"
)

const (
	settingsCommandLong = `Manage persisted settings.

USAGE:
    g-project settings <subcommand>

SUBCOMMANDS:
    reset    Reset settings to defaults
    show     Display current settings

EXAMPLES:
    # Reset settings with confirmation
    g-project settings reset

    # Reset settings without confirmation
    g-project settings reset --force

    # Show current settings
    g-project settings show`
	resetCommandLong = `Reset settings to defaults by deleting the settings file.

USAGE:
    g-project settings reset [OPTIONS]

OPTIONS:
    --force    Reset without confirmation
    -h, --help Show this help`
	showCommandLong = `Display current settings in TOML format.

USAGE:
    g-project settings show`
)

// NewSettingsCmd creates the settings command with explicit dependencies.
func NewSettingsCmd(client app.SettingsClient) *cobra.Command {
	if client == nil {
		panic("NewSettingsCmd: client dependency cannot be nil")
	}
	useCase := app.NewSettingsUseCase(client)

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage settings",
		Long:  settingsCommandLong,
	}
	settingsCmd.AddCommand(newResetCmd(useCase))
	settingsCmd.AddCommand(newShowCmd(useCase))
	return settingsCmd
}

func newResetCmd(useCase *app.SettingsUseCase) *cobra.Command {
	var resetForce bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset settings to defaults",
		Long:  resetCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return useCase.Reset(app.ResetSettingsInput{
				Force:  resetForce,
				GetEnv: os.Getenv,
				ConfirmFn: func() bool {
					return confirmReset(c.InOrStdin(), c.OutOrStdout())
				},
			})
		},
	}
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Reset without confirmation")
	return resetCmd
}

func newShowCmd(useCase *app.SettingsUseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current settings",
		Long:  showCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return useCase.Show(c.OutOrStdout())
		},
	}
}

// confirmReset asks the user for confirmation before resetting settings.
func confirmReset(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Are you sure you want to reset all settings to defaults? (y/N): ")
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

var settingsCmd = NewSettingsCmd(app.FileSettingsClient{})

func init() {
	cmd.RootCmd.AddCommand(settingsCmd)
}
