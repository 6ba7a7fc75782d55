package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cristianoliveira/g-project/internal/app"
	"github.com/cristianoliveira/g-project/internal/colors"
	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/commands/builtin"
	"github.com/cristianoliveira/g-project/internal/config"
	"github.com/cristianoliveira/g-project/internal/dispatch"
	"github.com/cristianoliveira/g-project/internal/domain"
	gperrors "github.com/cristianoliveira/g-project/internal/errors"
	"github.com/cristianoliveira/g-project/internal/git"
	"github.com/cristianoliveira/g-project/internal/llm"
	"github.com/cristianoliveira/g-project/internal/registry"
	"github.com/cristianoliveira/g-project/internal/settings"
	"github.com/cristianoliveira/g-project/internal/storage/sqlite"
	"github.com/cristianoliveira/g-project/internal/tools"
)

// sessionHost is a dispatch host that can also report command reloads.
type sessionHost interface {
	dispatch.Host
	CommandsReloaded(err error)
}

// chatSession is a fully wired session for one host.
type chatSession struct {
	session   *app.SessionUseCase
	processor *dispatch.Processor
	commands  *registry.CommandService
	store     *sqlite.SQLiteStorage
	watcher   *registry.Watcher
}

// newChatSession wires the command tree, the model, the tools and the
// session log for host. Missing credentials leave the chat unavailable but
// commands keep working.
func newChatSession(ctx context.Context, handle *config.Handle, current *settings.Settings, host sessionHost) (*chatSession, error) {
	s := &chatSession{}

	services := commands.Services{Config: handle, Settings: current}
	input := app.SessionInput{UI: host}

	if config.GetBool("session_logging_enabled", true) {
		store, err := sqlite.NewSQLiteStorage(config.Get("session_db", ""), handle.SessionID())
		if err != nil {
			gperrors.Warnf(console, "session log disabled: %v", err)
		} else {
			s.store = store
			services.Logger = store
			input.Recorder = store
		}
	}

	backend, err := llm.NewBackend(ctx, handle.Provider(), handle.Model(), config.GetInt("max_output_tokens", 4096))
	if err != nil {
		input.ChatUnavailable = err
	} else {
		conv := llm.NewConversation(backend, llm.WithSystemPrompt(llm.SystemPrompt(handle.ProjectRoot(), handle.MemoryFile())))
		services.Chat = conv
		input.Chat = conv
	}

	toolRegistry := tools.NewRegistry(tools.Defaults(handle.MemoryFile(), registry.NewJiraClient(handle))...)
	services.Tools = toolRegistry
	services.Git = git.NewStatus(handle.ProjectRoot())
	input.Tools = toolRegistry

	s.commands = registry.NewCommandService(handle, nil)
	if err := s.commands.LoadCommands(ctx); err != nil {
		s.Close()
		return nil, err
	}

	stats := domain.NewSessionStats(time.Now())
	builder := &commands.ContextBuilder{Services: services, UI: host, Stats: stats}
	opts := []dispatch.Option{dispatch.WithQuitGracePeriod(handle.QuitGracePeriod())}
	if s.store != nil {
		opts = append(opts, dispatch.WithRecorder(s.store))
	}
	s.processor = dispatch.NewProcessor(s.commands, builder, host, opts...)

	input.Commands = s.processor
	input.Stats = stats
	s.session = app.NewSessionUseCase(input)

	if config.GetBool("watch_settings", true) {
		w, err := registry.NewWatcher(s.commands, handle.ProjectRoot(), builtin.SettingsDir, registry.DefaultDebounce, host.CommandsReloaded)
		if err == nil {
			err = w.Start(ctx)
		}
		if err != nil {
			colors.Debug(fmt.Sprintf("settings watcher disabled: %v", err))
		} else {
			s.watcher = w
		}
	}
	return s, nil
}

// Close stops the watcher and closes the session log.
func (s *chatSession) Close() {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			colors.Debug(fmt.Sprintf("closing session log: %v", err))
		}
	}
}

// historyFile is where the plain prompt keeps its input history.
func historyFile() string {
	if path := config.Get("history_file", ""); path != "" {
		return path
	}
	return filepath.Join(config.Get("state_dir", ""), "history")
}
