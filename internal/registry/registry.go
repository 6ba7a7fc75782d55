// Package registry assembles the ordered list of top-level slash commands.
package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/commands/builtin"
	"github.com/cristianoliveira/g-project/internal/jira"
	"github.com/cristianoliveira/g-project/internal/logging"
)

// Loader produces the complete top-level command list.
type Loader func(ctx context.Context, cfg commands.Config) ([]*commands.Command, error)

// CommandService holds the current command list.
type CommandService struct {
	mu       sync.RWMutex
	cfg      commands.Config
	loader   Loader
	commands []*commands.Command
}

// NewCommandService returns a service using loader, or LoadBuiltInCommands
// when loader is nil. An injected loader replaces the built-ins entirely.
func NewCommandService(cfg commands.Config, loader Loader) *CommandService {
	if loader == nil {
		loader = LoadBuiltInCommands
	}
	return &CommandService{cfg: cfg, loader: loader}
}

// LoadCommands runs the loader and replaces the current list with its result.
// On error the previous list is kept.
func (s *CommandService) LoadCommands(ctx context.Context) error {
	loaded, err := s.loader(ctx, s.cfg)
	if err != nil {
		return fmt.Errorf("loading commands: %w", err)
	}
	list := make([]*commands.Command, len(loaded))
	copy(list, loaded)

	s.mu.Lock()
	s.commands = list
	s.mu.Unlock()

	logging.Debug("commands loaded", "count", len(list))
	return nil
}

// Commands returns a copy of the current list; empty before the first load.
func (s *CommandService) Commands() []*commands.Command {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*commands.Command, len(s.commands))
	copy(out, s.commands)
	return out
}

// LoadBuiltInCommands returns the built-ins in display order, dropping nil
// entries, and appends screen-tasks when the project has validation rules.
func LoadBuiltInCommands(_ context.Context, cfg commands.Config) ([]*commands.Command, error) {
	deps := builtin.Deps{Jira: NewJiraClient(cfg)}

	var list []*commands.Command
	for _, cmd := range builtin.Commands(deps) {
		if cmd != nil {
			list = append(list, cmd)
		}
	}

	if HasValidationFiles(filepath.Join(projectRoot(cfg), builtin.SettingsDir), jira.ValidationFileSuffix) {
		if cmd := builtin.ScreenTasks(deps); cmd != nil {
			list = append(list, cmd)
		}
	}
	return list, nil
}

// NewJiraClient builds a jira client from the jira_bin and jira_timeout keys.
func NewJiraClient(cfg commands.Config) jira.Client {
	opts := []jira.ClientOption{}
	if cfg != nil {
		opts = append(opts, jira.WithBinary(cfg.Get("jira_bin", jira.DefaultBinary)))
		if d, err := time.ParseDuration(cfg.Get("jira_timeout", "")); err == nil {
			opts = append(opts, jira.WithTimeout(d))
		}
	}
	return jira.NewDefaultClient(opts...)
}

// HasValidationFiles reports whether dir exists and holds a file whose name
// ends with suffix. Read errors count as false and are only logged.
func HasValidationFiles(dir, suffix string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Debug("validation directory unreadable", "dir", dir, "error", err)
		}
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
			return true
		}
	}
	return false
}

func projectRoot(cfg commands.Config) string {
	if cfg != nil && cfg.ProjectRoot() != "" {
		return cfg.ProjectRoot()
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
