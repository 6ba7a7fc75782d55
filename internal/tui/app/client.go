package app

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/g-project/internal/colors"
	"github.com/cristianoliveira/g-project/internal/settings"
	"github.com/cristianoliveira/g-project/internal/tui/state"
)

// Client starts the chat screen for a prepared session.
type Client struct {
	programRunner  ProgramRunner
	settingsLoader SettingsLoader
}

// NewClient creates a client. Nil arguments select the default implementations.
func NewClient(programRunner ProgramRunner, settingsLoader SettingsLoader) *Client {
	if programRunner == nil {
		programRunner = ScreenRunner{}
	}
	if settingsLoader == nil {
		settingsLoader = SettingsLoaderFunc(settings.Load)
	}
	return &Client{
		programRunner:  programRunner,
		settingsLoader: settingsLoader,
	}
}

// LoadSettings loads persisted settings using the injected SettingsLoader.
func (c *Client) LoadSettings() (*settings.Settings, error) {
	return c.settingsLoader.Load()
}

// Run shows the chat screen until the session exits and returns the exit
// code requested by the session. host must be the Host the session's
// dispatcher reports to.
func (c *Client) Run(ctx context.Context, host *state.Host, opts state.Options) (int, error) {
	if host == nil {
		return 1, fmt.Errorf("host cannot be nil")
	}
	if opts.Context == nil {
		opts.Context = ctx
	}
	model, err := state.NewModel(opts)
	if err != nil {
		return 1, err
	}

	final, err := c.runSilenced(ctx, model, host)
	if err != nil {
		colors.Error(fmt.Sprintf("Error running TUI: %v", err))
		return 1, err
	}
	if m, ok := final.(*state.Model); ok {
		return m.ExitCode(), nil
	}
	return model.ExitCode(), nil
}

// runSilenced keeps console notices and trace lines off the terminal while
// the program owns it. They still reach the session log.
func (c *Client) runSilenced(ctx context.Context, model *state.Model, host *state.Host) (tea.Model, error) {
	colors.SetOutput(io.Discard, io.Discard)
	colors.DisableStructuredLogging()
	defer func() {
		colors.EnableStructuredLogging()
		colors.SetOutput(nil, nil)
	}()
	return c.programRunner.Run(ctx, model, host.Bind)
}
