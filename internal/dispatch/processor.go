// Package dispatch resolves slash command lines against the command tree and
// applies the results they return to the host.
package dispatch

import (
	"context"
	"strings"
	"time"

	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/domain"
	gperrors "github.com/cristianoliveira/g-project/internal/errors"
	"github.com/cristianoliveira/g-project/internal/logging"
)

// DefaultQuitGracePeriod is the delay between showing the farewell and exiting.
const DefaultQuitGracePeriod = 100 * time.Millisecond

// CommandSource supplies the current top-level commands.
type CommandSource interface {
	Commands() []*commands.Command
}

// Host carries out the effects of command results.
type Host interface {
	commands.UI
	commands.DialogHandler

	// SetQuittingMessages replaces the display with the closing items.
	SetQuittingMessages(items []domain.HistoryItem)

	// Exit terminates the session.
	Exit(code int)
}

// MessageRecorder persists the command lines typed in a session.
type MessageRecorder interface {
	LogMessage(ctx context.Context, msgType domain.MessageType, message string) error
}

// Processor handles one input line at a time. It is not safe for concurrent use.
type Processor struct {
	source    CommandSource
	legacy    []LegacyCommand
	builder   *commands.ContextBuilder
	host      Host
	recorder  MessageRecorder
	quitGrace time.Duration
	after     func(d time.Duration, f func())
}

// Option configures a Processor.
type Option func(*Processor)

// WithLegacy sets the legacy command list consulted after tree resolution fails.
func WithLegacy(list []LegacyCommand) Option {
	return func(p *Processor) {
		p.legacy = list
	}
}

// WithRecorder records every command line in a session log.
func WithRecorder(r MessageRecorder) Option {
	return func(p *Processor) {
		p.recorder = r
	}
}

// WithQuitGracePeriod sets the delay before Exit after a quit result.
func WithQuitGracePeriod(d time.Duration) Option {
	return func(p *Processor) {
		if d > 0 {
			p.quitGrace = d
		}
	}
}

// WithAfterFunc replaces time.AfterFunc for scheduling the exit.
func WithAfterFunc(after func(d time.Duration, f func())) Option {
	return func(p *Processor) {
		if after != nil {
			p.after = after
		}
	}
}

// NewProcessor returns a Processor resolving against source.
func NewProcessor(source CommandSource, builder *commands.ContextBuilder, host Host, opts ...Option) *Processor {
	p := &Processor{
		source:    source,
		builder:   builder,
		host:      host,
		quitGrace: DefaultQuitGracePeriod,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsCommandLine reports whether input is slash command syntax.
func IsCommandLine(input string) bool {
	trimmed := strings.TrimSpace(input)
	return strings.HasPrefix(trimmed, "/") || strings.HasPrefix(trimmed, "?")
}

// Handle resolves and runs raw. Input that is not command syntax returns the
// zero Outcome without side effects. Errors returned by actions are passed
// through unchanged.
func (p *Processor) Handle(ctx context.Context, raw string) (Outcome, error) {
	trimmed := strings.TrimSpace(raw)
	if !IsCommandLine(trimmed) {
		return Outcome{}, nil
	}

	if trimmed != "/quit" && trimmed != "/exit" {
		p.host.AddItem(domain.NewTextItem(domain.MessageTypeUser, trimmed))
	}
	p.record(ctx, trimmed)

	parts := strings.Fields(trimmed[1:])
	cmd, args := Resolve(p.source.Commands(), parts)

	if cmd != nil {
		if cmd.Action != nil {
			result, err := cmd.Action(ctx, p.builder.Build(), args)
			if err != nil {
				logging.Error("slash command failed", "input", trimmed, "command", cmd.Name, "error", err)
				return handled(), err
			}
			return p.apply(ctx, trimmed, cmd.Name, result)
		}
		if cmd.HasSubCommands() {
			p.host.AddItem(domain.NewTextItem(domain.MessageTypeInfo, commands.UsageText(cmd)))
			logging.Debug("slash command usage shown", "input", trimmed, "command", cmd.Name)
			return handled(), nil
		}
	}

	if legacy, ok := p.findLegacy(parts); ok {
		main, sub, rest := splitLegacy(parts)
		result, err := legacy.Action(ctx, main, sub, rest)
		if err != nil {
			logging.Error("legacy command failed", "input", trimmed, "command", legacy.Name, "error", err)
			return handled(), err
		}
		return p.apply(ctx, trimmed, legacy.Name, result)
	}

	p.host.AddItem(domain.NewTextItem(domain.MessageTypeError, "Unknown command: "+trimmed))
	logging.Debug("unknown slash command", "input", trimmed)
	return handled(), nil
}

// Resolve walks list with the tokens of a command line. It returns the
// deepest matched command and the unmatched tokens joined by single spaces.
func Resolve(list []*commands.Command, parts []string) (*commands.Command, string) {
	var matched *commands.Command
	consumed := 0
	for _, part := range parts {
		found := commands.Find(list, part)
		if found == nil {
			break
		}
		matched = found
		consumed++
		if !found.HasSubCommands() {
			break
		}
		list = found.SubCommands
	}
	return matched, strings.Join(parts[consumed:], " ")
}

func (p *Processor) apply(ctx context.Context, input, name string, result commands.ActionResult) (Outcome, error) {
	out := handled()
	if isNilVariant(result) {
		gperrors.PanicProtocol("result", result)
	}
	if result != nil {
		fx := &effects{ctx: ctx, processor: p, outcome: &out}
		if err := result.Accept(fx); err != nil {
			logging.Error("applying command result failed", "input", input, "command", name, "error", err)
			return out, err
		}
	}
	logging.Info("slash command handled", "input", input, "command", name, "outcome", out.Kind.String())
	return out, nil
}

// isNilVariant reports a nil variant pointer carried by a non-nil result.
// Its value-receiver Accept would otherwise dereference nil.
func isNilVariant(result commands.ActionResult) bool {
	switch r := result.(type) {
	case *commands.ToolResult:
		return r == nil
	case *commands.MessageResult:
		return r == nil
	case *commands.DialogResult:
		return r == nil
	case *commands.LoadHistoryResult:
		return r == nil
	case *commands.QuitResult:
		return r == nil
	}
	return false
}

func (p *Processor) record(ctx context.Context, line string) {
	if p.recorder == nil {
		return
	}
	if err := p.recorder.LogMessage(ctx, domain.MessageTypeUser, line); err != nil {
		logging.Warn("recording command line failed", "error", err)
	}
}
