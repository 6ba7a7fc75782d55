// Package app runs the interactive chat screen as a bubbletea program.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/g-project/internal/settings"
)

// ProgramRunner runs a bubbletea model until it quits and returns the final
// model. bind is called with the program's Send before the event loop
// starts, so effects from other goroutines reach the model.
type ProgramRunner interface {
	Run(ctx context.Context, model tea.Model, bind func(send func(tea.Msg))) (tea.Model, error)
}

// ScreenRunner runs the program on the alternate screen with mouse
// reporting. Extra is appended to those options.
type ScreenRunner struct {
	Extra []tea.ProgramOption
}

func (r ScreenRunner) Run(ctx context.Context, model tea.Model, bind func(send func(tea.Msg))) (tea.Model, error) {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)}, r.Extra...)
	p := tea.NewProgram(model, opts...)
	bind(p.Send)
	return p.Run()
}

// SettingsLoader supplies the settings the screen starts with.
type SettingsLoader interface {
	Load() (*settings.Settings, error)
}

// SettingsLoaderFunc adapts a function to SettingsLoader.
type SettingsLoaderFunc func() (*settings.Settings, error)

func (f SettingsLoaderFunc) Load() (*settings.Settings, error) { return f() }
