package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/dispatch"
	"github.com/cristianoliveira/g-project/internal/domain"
	"github.com/cristianoliveira/g-project/internal/errors"
	"github.com/cristianoliveira/g-project/internal/llm"
	"github.com/cristianoliveira/g-project/internal/logging"
)

// CommandHandler runs slash command lines.
type CommandHandler interface {
	Handle(ctx context.Context, raw string) (dispatch.Outcome, error)
}

// ChatClient sends prompts to the completion service.
type ChatClient interface {
	SendMessage(ctx context.Context, text string) (llm.Reply, error)
	Compress(ctx context.Context, force bool) (*domain.CompressionInfo, error)
}

// ToolRunner executes scheduled tools.
type ToolRunner interface {
	Run(ctx context.Context, name string, args map[string]any) (string, error)
}

// SessionInput holds the collaborators of a Session. Chat, Tools and
// Recorder may be nil; ChatUnavailable explains a nil Chat to the user.
type SessionInput struct {
	Commands        CommandHandler
	Chat            ChatClient
	ChatUnavailable error
	Tools           ToolRunner
	Stats           *domain.SessionStats
	UI              commands.UI
	Recorder        dispatch.MessageRecorder
}

// SessionUseCase routes each submitted line to the command processor or the
// completion service and runs the tools commands schedule. Calls must not
// overlap; hosts wait for Submit to return before reading the next line.
type SessionUseCase struct {
	in     SessionInput
	errors errors.ErrorHandler
}

// NewSessionUseCase creates a session use-case.
func NewSessionUseCase(in SessionInput) *SessionUseCase {
	if in.Commands == nil {
		panic("NewSessionUseCase: commands dependency cannot be nil")
	}
	if in.UI == nil {
		panic("NewSessionUseCase: ui dependency cannot be nil")
	}
	if in.Stats == nil {
		panic("NewSessionUseCase: stats dependency cannot be nil")
	}
	return &SessionUseCase{in: in, errors: errors.NewTranscript(in.UI.AddItem)}
}

// Submit handles one input line. Blank lines are ignored. Failures are
// reported on the transcript; the returned error is only for logging.
func (u *SessionUseCase) Submit(ctx context.Context, line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	if dispatch.IsCommandLine(trimmed) {
		return u.runCommand(ctx, trimmed)
	}
	return u.sendPrompt(ctx, trimmed)
}

func (u *SessionUseCase) runCommand(ctx context.Context, input string) error {
	outcome, err := u.in.Commands.Handle(ctx, input)
	if err != nil {
		errors.ReportCommandError(u.errors, input, err)
		return err
	}
	if outcome.Kind == dispatch.OutcomeScheduleTool {
		return u.RunTool(ctx, outcome.ToolName, outcome.ToolArgs)
	}
	return nil
}

// RunTool executes a tool and shows its output.
func (u *SessionUseCase) RunTool(ctx context.Context, name string, args map[string]any) error {
	u.in.Stats.RecordToolCall(name)
	if u.in.Tools == nil {
		u.errors.Error(fmt.Sprintf("Tool %s is not available.", name))
		return fmt.Errorf("no tool runner for %s", name)
	}
	out, err := u.in.Tools.Run(ctx, name, args)
	if err != nil {
		u.errors.Error(fmt.Sprintf("Tool %s failed: %v", name, err))
		return err
	}
	if out != "" {
		u.in.UI.AddItem(domain.NewTextItem(domain.MessageTypeTool, out))
	}
	return nil
}

func (u *SessionUseCase) sendPrompt(ctx context.Context, prompt string) error {
	u.in.UI.AddItem(domain.NewTextItem(domain.MessageTypeUser, prompt))
	u.record(ctx, prompt)

	if u.in.Chat == nil {
		reason := "no model configured"
		if u.in.ChatUnavailable != nil {
			reason = u.in.ChatUnavailable.Error()
		}
		u.errors.Error("Model unavailable: " + reason)
		return fmt.Errorf("model unavailable: %s", reason)
	}

	reply, err := u.in.Chat.SendMessage(ctx, prompt)
	if err != nil {
		u.errors.Error(fmt.Sprintf("Request failed: %v", err))
		return err
	}
	u.in.Stats.RecordPrompt(reply.InputTokens, reply.OutputTokens)
	u.in.UI.AddItem(domain.NewTextItem(domain.MessageTypeGemini, reply.Text))

	info, err := u.in.Chat.Compress(ctx, false)
	if err != nil {
		logging.Warn("automatic compression failed", "error", err)
		return nil
	}
	if info != nil {
		u.in.UI.AddItem(domain.HistoryItem{Type: domain.MessageTypeCompression, Compression: info, Timestamp: time.Now()})
	}
	return nil
}

func (u *SessionUseCase) record(ctx context.Context, prompt string) {
	if u.in.Recorder == nil {
		return
	}
	if err := u.in.Recorder.LogMessage(ctx, domain.MessageTypeUser, prompt); err != nil {
		logging.Warn("recording prompt failed", "error", err)
	}
}
