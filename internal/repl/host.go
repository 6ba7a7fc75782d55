// Package repl runs a chat session on a plain line-oriented terminal.
package repl

import (
	"fmt"
	"io"
	"sync"

	"github.com/cristianoliveira/g-project/internal/app"
	"github.com/cristianoliveira/g-project/internal/dispatch"
	"github.com/cristianoliveira/g-project/internal/domain"
	"github.com/cristianoliveira/g-project/internal/tui/render"
)

// Host implements dispatch.Host by printing items as they arrive. Dialogs
// are queued and shown by the REPL loop after the current line is handled.
type Host struct {
	mu       sync.Mutex
	out      io.Writer
	markdown *render.Markdown
	pending  *domain.HistoryItem
	dialogs  []app.Choice
	exited   bool
	exitCode int
	onExit   func()
	debug    bool
}

var _ dispatch.Host = (*Host)(nil)

// NewHost returns a host writing to out. A nil markdown prints model replies
// verbatim.
func NewHost(out io.Writer, markdown *render.Markdown) *Host {
	return &Host{out: out, markdown: markdown}
}

// SetDebug enables printing of debug messages.
func (h *Host) SetDebug(enabled bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.debug = enabled
}

// SetMarkdown replaces the renderer used for model replies.
func (h *Host) SetMarkdown(md *render.Markdown) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.markdown = md
}

func (h *Host) println(text string) {
	fmt.Fprintln(h.out, text)
}

func (h *Host) AddItem(item domain.HistoryItem) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.exited {
		return
	}
	h.println(render.Item(item, h.markdown))
}

// Clear prints nothing; the terminal scrollback is left intact.
func (h *Host) Clear() {}

func (h *Host) SetDebugMessage(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.debug && msg != "" {
		h.println(msg)
	}
}

func (h *Host) PendingItem() *domain.HistoryItem {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pending
}

func (h *Host) SetPendingItem(item *domain.HistoryItem) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending = item
	if item != nil {
		h.println(render.Pending(item, "…"))
	}
}

func (h *Host) OpenAuthDialog()   { h.queueDialog(app.ChoiceAuth) }
func (h *Host) OpenThemeDialog()  { h.queueDialog(app.ChoiceTheme) }
func (h *Host) OpenEditorDialog() { h.queueDialog(app.ChoiceEditor) }

func (h *Host) queueDialog(c app.Choice) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dialogs = append(h.dialogs, c)
}

// takeDialogs returns and clears the queued dialogs.
func (h *Host) takeDialogs() []app.Choice {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := h.dialogs
	h.dialogs = nil
	return out
}

// SetQuittingMessages prints the closing items that were not printed yet.
// The echoed command line is already on screen.
func (h *Host) SetQuittingMessages(items []domain.HistoryItem) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, item := range items {
		if item.Type == domain.MessageTypeUser {
			continue
		}
		h.println(render.Item(item, h.markdown))
	}
}

// Exit records code and runs the exit hook once. It may be called from a
// timer goroutine.
func (h *Host) Exit(code int) {
	h.mu.Lock()
	if h.exited {
		h.mu.Unlock()
		return
	}
	h.exited = true
	h.exitCode = code
	onExit := h.onExit
	h.mu.Unlock()
	if onExit != nil {
		onExit()
	}
}

// Exited reports whether Exit was called and with which code.
func (h *Host) Exited() (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.exitCode, h.exited
}

func (h *Host) setOnExit(f func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onExit = f
}

// CommandsReloaded reports a finished command reload.
func (h *Host) CommandsReloaded(err error) {
	if err != nil {
		h.AddItem(domain.NewTextItem(domain.MessageTypeError, fmt.Sprintf("Reloading commands failed: %v", err)))
		return
	}
	h.SetDebugMessage("Commands reloaded")
}
