// Package logging provides structured file logging for g-project.
package logging

import (
	"os"
	"path/filepath"

	"github.com/cristianoliveira/g-project/internal/config"
)

// Config controls the session log file.
type Config struct {
	Enabled   bool
	Level     string
	MaxFiles  int
	Command   string // recorded in the file name
	PID       int
	SessionID string // attached to every entry when set
	Dir       string // overrides LogDir
}

// DefaultConfig returns a disabled info-level Config for this process.
func DefaultConfig() Config {
	return Config{
		Level:    "info",
		MaxFiles: 10,
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

// FromGlobalConfig reads the logging_* keys. debug forces the debug level;
// otherwise quiet lowers it to error.
func FromGlobalConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.GetBool("logging_enabled", false)
	cfg.MaxFiles = config.GetInt("logging_max_files", cfg.MaxFiles)
	switch {
	case config.GetBool("debug", false):
		cfg.Level = "debug"
	case config.GetBool("quiet", false):
		cfg.Level = "error"
	default:
		cfg.Level = config.Get("logging_level", cfg.Level)
	}
	return cfg
}

// LogDir returns the first writable log directory: logs under state_dir,
// then g-project/logs under the system temp dir.
func LogDir() (string, error) {
	var candidates []string
	if stateDir := config.Get("state_dir", ""); stateDir != "" {
		candidates = append(candidates, filepath.Join(stateDir, "logs"))
	}
	fallback := filepath.Join(os.TempDir(), config.AppName, "logs")

	for _, dir := range candidates {
		if writable(dir) {
			return dir, nil
		}
	}
	if err := os.MkdirAll(fallback, 0700); err != nil {
		return "", err
	}
	return fallback, nil
}

// writable creates dir if needed and probes it with a throwaway file.
func writable(dir string) bool {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return false
	}
	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return false
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return true
}
