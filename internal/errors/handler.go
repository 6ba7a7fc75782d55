// Package errors routes user-facing errors to the active host and defines the
// protocol violation raised when a command returns an unknown result.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/cristianoliveira/g-project/internal/colors"
)

// ErrorHandler receives user-facing notices by severity.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is a terminal sink. The colors package satisfies it through
// terminalSink.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

type terminalSink struct{}

func (terminalSink) Error(msgs ...string)   { colors.Error(msgs...) }
func (terminalSink) Warning(msgs ...string) { colors.Warning(msgs...) }
func (terminalSink) Info(msgs ...string)    { colors.Info(msgs...) }
func (terminalSink) Success(msgs ...string) { colors.Success(msgs...) }

// Console reports outside of a running session, before a host exists or
// after it has gone.
type Console struct {
	out ColorOutput
}

var _ ErrorHandler = (*Console)(nil)

// NewConsole returns a Console writing to out, or to the terminal when out is nil.
func NewConsole(out ColorOutput) *Console {
	if out == nil {
		out = terminalSink{}
	}
	return &Console{out: out}
}

func (c *Console) Error(msg string)   { c.out.Error(msg) }
func (c *Console) Warning(msg string) { c.out.Warning(msg) }
func (c *Console) Info(msg string)    { c.out.Info(msg) }
func (c *Console) Success(msg string) { c.out.Success(msg) }

// Warnf formats a warning for h.
func Warnf(h ErrorHandler, format string, args ...any) {
	h.Warning(fmt.Sprintf(format, args...))
}

// ReportCommandError shows a failed slash command on h.
func ReportCommandError(h ErrorHandler, input string, err error) {
	if err == nil {
		return
	}
	h.Error(CommandErrorText(input, err))
}

// CommandErrorText formats a failed slash command for display.
func CommandErrorText(input string, err error) string {
	return fmt.Sprintf("Command %s failed: %v", input, err)
}

// AsProtocolViolation extracts a ProtocolViolation from a recovered panic value.
func AsProtocolViolation(recovered any) (*ProtocolViolation, bool) {
	err, ok := recovered.(error)
	if !ok {
		return nil, false
	}
	var violation *ProtocolViolation
	if stderrors.As(err, &violation) {
		return violation, true
	}
	return nil, false
}
