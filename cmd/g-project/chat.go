package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cristianoliveira/g-project/cmd"
	"github.com/cristianoliveira/g-project/internal/app"
	"github.com/cristianoliveira/g-project/internal/colors"
	"github.com/cristianoliveira/g-project/internal/config"
	gperrors "github.com/cristianoliveira/g-project/internal/errors"
	"github.com/cristianoliveira/g-project/internal/logging"
	"github.com/cristianoliveira/g-project/internal/repl"
	"github.com/cristianoliveira/g-project/internal/settings"
	tuiapp "github.com/cristianoliveira/g-project/internal/tui/app"
	"github.com/cristianoliveira/g-project/internal/tui/render"
	"github.com/cristianoliveira/g-project/internal/tui/state"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	chatCommandLong = `Start an interactive chat session.

Lines starting with / or ? are slash commands; anything else is sent to the
model. Run g-project commands for the command list; /quit leaves.

USAGE:
    g-project chat [OPTIONS]

OPTIONS:
    --plain    Use a line-oriented prompt instead of the full-screen interface

EXAMPLES:
    # Start the full-screen chat
    g-project chat

    # Start a plain prompt, e.g. inside an editor terminal
    g-project chat --plain`

	plainWidth = 80
)

type chatOptions struct {
	plain bool
}

// NewChatCmd creates the chat command.
func NewChatCmd() *cobra.Command {
	opts := &chatOptions{}
	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "Start a chat session",
		Long:  chatCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runChat(c.Context(), opts)
		},
	}
	chatCmd.Flags().BoolVar(&opts.plain, "plain", false, "Use a line-oriented prompt")
	return chatCmd
}

func runChat(parent context.Context, opts *chatOptions) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM)
	defer stop()

	handle := config.NewHandle(uuid.NewString())
	if err := logging.InitGlobal(handle.SessionID()); err != nil {
		colors.Debug(fmt.Sprintf("file logging disabled: %v", err))
	}
	defer func() { _ = logging.ShutdownGlobal() }()

	current, err := settings.Load()
	if err != nil {
		gperrors.Warnf(console, "using default settings: %v", err)
		current = settings.DefaultSettings()
	}
	settingsUseCase := app.NewSettingsUseCase(app.FileSettingsClient{})
	logging.Info("chat starting", "session", handle.SessionID(), "model", handle.Model(), "plain", opts.plain)

	var code int
	if opts.plain {
		code, err = runPlain(ctx, handle, current, settingsUseCase)
	} else {
		code, err = runScreen(ctx, handle, current, settingsUseCase)
	}
	if err != nil {
		return err
	}
	if code != 0 {
		return &exitCodeError{code: code}
	}
	return nil
}

func runScreen(ctx context.Context, handle *config.Handle, current *settings.Settings, settingsUseCase *app.SettingsUseCase) (int, error) {
	host := state.NewHost()
	s, err := newChatSession(ctx, handle, current, host)
	if err != nil {
		return 1, err
	}
	defer s.Close()

	client := tuiapp.NewClient(nil, nil)
	return client.Run(ctx, host, state.Options{
		Context:   ctx,
		Session:   s.session,
		Completer: s.processor,
		Settings:  settingsUseCase,
		Current:   current,
		Model:     handle.Model(),
	})
}

func runPlain(ctx context.Context, handle *config.Handle, current *settings.Settings, settingsUseCase *app.SettingsUseCase) (int, error) {
	host := repl.NewHost(os.Stdout, render.NewMarkdown(current.Theme, plainWidth))
	host.SetDebug(config.GetBool("debug", false))
	s, err := newChatSession(ctx, handle, current, host)
	if err != nil {
		return 1, err
	}
	defer s.Close()

	reader, err := repl.NewReader(ctx, repl.ReaderConfig{
		HistoryFile:  historyFile(),
		HistoryLimit: config.GetInt("history_limit", 500),
		Completer:    s.processor,
	})
	if err != nil {
		return 1, fmt.Errorf("initializing prompt: %w", err)
	}
	r, err := repl.New(host, reader, repl.Options{
		Session:  s.session,
		Settings: settingsUseCase,
		Current:  current,
		Width:    plainWidth,
	})
	if err != nil {
		return 1, err
	}
	return r.Run(ctx)
}

var chatCmd = NewChatCmd()

func init() {
	cmd.RootCmd.AddCommand(chatCmd)
	// Without a subcommand the root starts a chat.
	cmd.RootCmd.Flags().AddFlagSet(chatCmd.Flags())
	cmd.RootCmd.Args = cobra.NoArgs
	cmd.RootCmd.RunE = chatCmd.RunE
}
