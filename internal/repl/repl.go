package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cristianoliveira/g-project/internal/app"
	"github.com/cristianoliveira/g-project/internal/domain"
	"github.com/cristianoliveira/g-project/internal/logging"
	"github.com/cristianoliveira/g-project/internal/settings"
	"github.com/cristianoliveira/g-project/internal/tui/render"
)

const prompt = "> "

// LineReader reads one input line at a time. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// Submitter handles one submitted input line.
type Submitter interface {
	Submit(ctx context.Context, line string) error
}

// SettingsApplier persists a value chosen in a dialog.
type SettingsApplier interface {
	Apply(current *settings.Settings, c app.Choice, value string) (*settings.Settings, error)
}

// ReaderConfig configures the readline instance.
type ReaderConfig struct {
	HistoryFile  string
	HistoryLimit int
	Completer    Completer
}

// NewReader returns a readline instance with command completion.
func NewReader(ctx context.Context, cfg ReaderConfig) (*readline.Instance, error) {
	rlCfg := &readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryFile,
		HistoryLimit:    cfg.HistoryLimit,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
	if cfg.Completer != nil {
		rlCfg.AutoComplete = autoCompleter{ctx: ctx, completer: cfg.Completer}
	}
	return readline.NewEx(rlCfg)
}

// Options are the collaborators of a REPL.
type Options struct {
	Session  Submitter
	Settings SettingsApplier
	// Current is shared with the command services; dialog choices update it in place.
	Current *settings.Settings
	Width   int
}

// REPL reads lines and hands them to the session until the session exits or
// input ends.
type REPL struct {
	host    *Host
	reader  LineReader
	session Submitter
	applier SettingsApplier
	current *settings.Settings
	width   int
}

// New returns a REPL printing through host and reading from reader.
func New(host *Host, reader LineReader, opts Options) (*REPL, error) {
	if host == nil || reader == nil {
		return nil, fmt.Errorf("host and reader are required")
	}
	if opts.Session == nil || opts.Settings == nil {
		return nil, fmt.Errorf("session and settings are required")
	}
	current := opts.Current
	if current == nil {
		current = settings.DefaultSettings()
	}
	r := &REPL{
		host:    host,
		reader:  reader,
		session: opts.Session,
		applier: opts.Settings,
		current: current,
		width:   opts.Width,
	}
	host.setOnExit(func() { _ = reader.Close() })
	return r, nil
}

// Run reads until the session exits, input ends or ctx is done, and returns
// the exit code.
func (r *REPL) Run(ctx context.Context) (int, error) {
	defer r.reader.Close()
	for {
		if code, done := r.host.Exited(); done {
			return code, nil
		}
		if ctx.Err() != nil {
			return 0, nil
		}

		line, err := r.reader.Readline()
		if err != nil {
			if code, done := r.host.Exited(); done {
				return code, nil
			}
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return 0, nil
			}
			return 1, fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := r.session.Submit(ctx, line); err != nil {
			logging.Debug("submitted line failed", "error", err)
		}
		for _, c := range r.host.takeDialogs() {
			if err := r.runDialog(c); err != nil {
				return 1, err
			}
		}
	}
}

// runDialog prints the options of c and applies the chosen one. A blank or
// invalid answer cancels.
func (r *REPL) runDialog(c app.Choice) error {
	options := c.Options()
	current := currentValue(r.current, c)
	var b strings.Builder
	b.WriteString(c.Title())
	for i, opt := range options {
		mark := ""
		if opt == current {
			mark = " ●"
		}
		fmt.Fprintf(&b, "\n  %d. %s%s", i+1, opt, mark)
	}
	r.host.println(b.String())
	r.host.println(fmt.Sprintf("Choose 1-%d (blank to cancel):", len(options)))

	answer, err := r.reader.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("reading choice: %w", err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options) {
		r.host.AddItem(domain.NewTextItem(domain.MessageTypeError, fmt.Sprintf("Invalid choice %q", answer)))
		return nil
	}

	value := options[n-1]
	next, err := r.applier.Apply(r.current, c, value)
	if err != nil {
		r.host.AddItem(domain.NewTextItem(domain.MessageTypeError, err.Error()))
		return nil
	}
	*r.current = *next
	if c == app.ChoiceTheme {
		r.host.SetMarkdown(render.NewMarkdown(r.current.Theme, r.width))
	}
	r.host.AddItem(domain.NewTextItem(domain.MessageTypeInfo, fmt.Sprintf("%s: %s", c.Title(), value)))
	return nil
}

func currentValue(s *settings.Settings, c app.Choice) string {
	switch c {
	case app.ChoiceAuth:
		return s.SelectedAuthType
	case app.ChoiceTheme:
		return s.Theme
	default:
		return s.PreferredEditor
	}
}
