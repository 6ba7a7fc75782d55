package commands

import (
	"github.com/cristianoliveira/g-project/internal/domain"
	"github.com/cristianoliveira/g-project/internal/errors"
)

// ActionResult is the closed set of effects a command can request.
//
// The unexported marker method keeps implementations inside this package, and
// ResultHandler has one method per variant: adding a variant breaks every
// consumer at compile time instead of being skipped at run time.
type ActionResult interface {
	// Accept dispatches the result to the handler method for its variant.
	Accept(h ResultHandler) error
	actionResult()
}

// ResultHandler interprets every ActionResult variant.
type ResultHandler interface {
	HandleTool(r ToolResult) error
	HandleMessage(r MessageResult) error
	HandleDialog(r DialogResult) error
	HandleLoadHistory(r LoadHistoryResult) error
	HandleQuit(r QuitResult) error
}

// ToolResult asks the host to schedule a tool call.
type ToolResult struct {
	ToolName string
	ToolArgs map[string]any
}

func (r ToolResult) Accept(h ResultHandler) error { return h.HandleTool(r) }
func (ToolResult) actionResult()                  {}

// MessageLevel is the severity of a MessageResult.
type MessageLevel string

const (
	MessageInfo  MessageLevel = "info"
	MessageError MessageLevel = "error"
)

// MessageResult asks the host to append a display item.
type MessageResult struct {
	MessageType MessageLevel
	Content     string
}

func (r MessageResult) Accept(h ResultHandler) error { return h.HandleMessage(r) }
func (MessageResult) actionResult()                  {}

// ItemType maps the message severity to a transcript item type.
func (r MessageResult) ItemType() domain.MessageType {
	if r.MessageType == MessageError {
		return domain.MessageTypeError
	}
	return domain.MessageTypeInfo
}

// DialogResult asks the host to open a modal UI flow.
type DialogResult struct {
	Dialog DialogKind
}

func (r DialogResult) Accept(h ResultHandler) error { return h.HandleDialog(r) }
func (DialogResult) actionResult()                  {}

// LoadHistoryResult asks the host to replace both the visible transcript and
// the completion service's conversation memory.
type LoadHistoryResult struct {
	History       []domain.HistoryItem
	ClientHistory []domain.Turn
}

func (r LoadHistoryResult) Accept(h ResultHandler) error { return h.HandleLoadHistory(r) }
func (LoadHistoryResult) actionResult()                  {}

// QuitResult asks the host to show closing messages and terminate.
type QuitResult struct {
	Messages []domain.HistoryItem
}

func (r QuitResult) Accept(h ResultHandler) error { return h.HandleQuit(r) }
func (QuitResult) actionResult()                  {}

// Info returns an info message result.
func Info(content string) ActionResult {
	return MessageResult{MessageType: MessageInfo, Content: content}
}

// Error returns an error message result.
func Error(content string) ActionResult {
	return MessageResult{MessageType: MessageError, Content: content}
}

// OpenDialog returns a dialog result.
func OpenDialog(kind DialogKind) ActionResult {
	return DialogResult{Dialog: kind}
}

// ScheduleTool returns a tool result.
func ScheduleTool(name string, args map[string]any) ActionResult {
	return ToolResult{ToolName: name, ToolArgs: args}
}

// DialogKind names a modal UI flow. The set is closed: values can only be
// obtained from the package-level variables below.
type DialogKind struct {
	name string
}

var (
	DialogAuth   = DialogKind{name: "auth"}
	DialogTheme  = DialogKind{name: "theme"}
	DialogEditor = DialogKind{name: "editor"}
)

// String returns the dialog name.
func (k DialogKind) String() string {
	return k.name
}

// DialogHandler opens every DialogKind.
type DialogHandler interface {
	OpenAuthDialog()
	OpenThemeDialog()
	OpenEditorDialog()
}

// Accept opens the dialog on h. The zero DialogKind is a protocol violation.
func (k DialogKind) Accept(h DialogHandler) {
	switch k {
	case DialogAuth:
		h.OpenAuthDialog()
	case DialogTheme:
		h.OpenThemeDialog()
	case DialogEditor:
		h.OpenEditorDialog()
	default:
		errors.PanicProtocol("dialog", k.name)
	}
}
