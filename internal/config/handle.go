package config

import (
	"os"
	"time"
)

// Handle exposes the loaded configuration together with the session identity.
// It is the Config value handed to slash commands.
type Handle struct {
	sessionID string
	workdir   string
}

// NewHandle returns a handle for sessionID rooted at the process working
// directory, or at the workdir key when it is set.
func NewHandle(sessionID string) *Handle {
	workdir := Get("workdir", "")
	if workdir == "" {
		if wd, err := os.Getwd(); err == nil {
			workdir = wd
		}
	}
	return &Handle{sessionID: sessionID, workdir: workdir}
}

// Get returns a configuration value or default.
func (h *Handle) Get(key, defaultValue string) string {
	return Get(key, defaultValue)
}

// ProjectRoot returns the directory the session operates on.
func (h *Handle) ProjectRoot() string {
	return h.workdir
}

// SessionID returns the identifier of the running session.
func (h *Handle) SessionID() string {
	return h.sessionID
}

// Model returns the configured model name.
func (h *Handle) Model() string {
	return Get("model", DefaultGeminiModel)
}

// Provider returns the configured model provider.
func (h *Handle) Provider() string {
	return Get("model_provider", ProviderGemini)
}

// MemoryFile returns the path of the saved-memories file.
func (h *Handle) MemoryFile() string {
	return Get("memory_file", "")
}

// QuitGracePeriod returns the delay between the farewell message and exit.
func (h *Handle) QuitGracePeriod() time.Duration {
	return time.Duration(GetInt("quit_grace_ms", 100)) * time.Millisecond
}
