package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cristianoliveira/g-project/internal/config"
	"github.com/pelletier/go-toml/v2"
)

// Settings are the preferences the auth, theme and editor dialogs change.
// They live in settings.toml under the config directory; an empty field
// means the user has not chosen yet.
type Settings struct {
	Theme            string `toml:"theme"`
	PreferredEditor  string `toml:"preferredEditor"`
	SelectedAuthType string `toml:"selectedAuthType"`
}

// Path is the settings file: settings_path when configured, otherwise
// settings.toml in config_dir.
func Path() string {
	if p := config.Get("settings_path", ""); p != "" {
		return p
	}
	dir := config.Get("config_dir", "")
	if dir == "" {
		if base, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(base, config.AppName)
		}
	}
	return filepath.Join(dir, "settings"+FileExtTOML)
}

// DefaultSettings returns settings with all default values.
func DefaultSettings() *Settings {
	return &Settings{
		Theme: ThemeAuto,
	}
}

// Clone returns a copy of s.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return DefaultSettings()
	}
	c := *s
	return &c
}

// Load reads settings from the configured path.
// If the settings file does not exist, returns default settings.
func Load() (*Settings, error) {
	return LoadFrom(Path())
}

// LoadFrom reads settings from path.
func LoadFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if err := Validate(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}

// Save writes settings to the configured path.
func Save(settings *Settings) error {
	return SaveTo(Path(), settings)
}

// SaveTo writes settings to path, creating its directory if needed.
func SaveTo(path string, settings *Settings) error {
	if err := Validate(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, FileModeFile); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Reset removes the settings file so defaults apply on next load.
func Reset() error {
	path := Path()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove settings file: %w", err)
	}
	return nil
}
