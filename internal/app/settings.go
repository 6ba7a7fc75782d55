package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/g-project/internal/colors"
	"github.com/cristianoliveira/g-project/internal/settings"
	"github.com/pelletier/go-toml/v2"
)

// SettingsClient defines dependencies required by settings commands and dialogs.
type SettingsClient interface {
	LoadSettings() (*settings.Settings, error)
	SaveSettings(s *settings.Settings) error
	ResetSettings() error
}

// FileSettingsClient persists settings at the configured settings path.
type FileSettingsClient struct{}

// LoadSettings reads the settings file.
func (FileSettingsClient) LoadSettings() (*settings.Settings, error) { return settings.Load() }

// SaveSettings writes the settings file.
func (FileSettingsClient) SaveSettings(s *settings.Settings) error { return settings.Save(s) }

// ResetSettings removes the settings file.
func (FileSettingsClient) ResetSettings() error { return settings.Reset() }

// SettingsUseCase coordinates settings command and dialog behavior.
type SettingsUseCase struct {
	client SettingsClient
}

// NewSettingsUseCase creates a settings use-case.
func NewSettingsUseCase(client SettingsClient) *SettingsUseCase {
	if client == nil {
		panic("NewSettingsUseCase: client dependency cannot be nil")
	}

	return &SettingsUseCase{client: client}
}

// ResetSettingsInput contains reset options and environment adapters.
type ResetSettingsInput struct {
	Force     bool
	GetEnv    func(string) string
	ConfirmFn func() bool
}

// Reset executes settings reset behavior.
func (u *SettingsUseCase) Reset(input ResetSettingsInput) error {
	getEnv := input.GetEnv
	if getEnv == nil {
		getEnv = func(string) string { return "" }
	}

	if !input.Force && getEnv("CI") == "" {
		if input.ConfirmFn != nil && !input.ConfirmFn() {
			colors.Info("Operation cancelled")
			return nil
		}
	}

	if err := u.client.ResetSettings(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	colors.Success("Settings reset to defaults")
	return nil
}

// Show writes the current settings as TOML.
func (u *SettingsUseCase) Show(w io.Writer) error {
	current, err := u.client.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	data, err := toml.Marshal(current)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	_, err = fmt.Fprintln(w, strings.TrimSpace(string(data)))
	return err
}

// Choice names a settings field a dialog edits.
type Choice int

const (
	ChoiceAuth Choice = iota
	ChoiceTheme
	ChoiceEditor
)

// Field is the settings field c edits.
func (c Choice) Field() settings.Field {
	switch c {
	case ChoiceAuth:
		return settings.AuthField
	case ChoiceTheme:
		return settings.ThemeField
	default:
		return settings.EditorField
	}
}

// Options returns the selectable values for c in display order.
func (c Choice) Options() []string {
	return c.Field().Options
}

// Title is the dialog heading for c.
func (c Choice) Title() string {
	switch c {
	case ChoiceAuth:
		return "Select Auth Method"
	case ChoiceTheme:
		return "Select Theme"
	default:
		return "Select Editor"
	}
}

// Apply sets value on current, persists the result and returns it. current
// is left untouched when saving fails.
func (u *SettingsUseCase) Apply(current *settings.Settings, c Choice, value string) (*settings.Settings, error) {
	next := current.Clone()
	if err := c.Field().Set(next, value); err != nil {
		return nil, err
	}
	if err := u.client.SaveSettings(next); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	colors.StructuredInfo(colors.Event{Component: "settings", Action: "apply", Status: "saved", ID: value})
	return next, nil
}
