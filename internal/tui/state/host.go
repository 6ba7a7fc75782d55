package state

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/g-project/internal/app"
	"github.com/cristianoliveira/g-project/internal/dispatch"
	"github.com/cristianoliveira/g-project/internal/domain"
)

// Host implements dispatch.Host by forwarding every effect to the bubbletea
// event loop. It may be called from any goroutine.
type Host struct {
	mu      sync.Mutex
	pending *domain.HistoryItem
	send    func(tea.Msg)
}

var _ dispatch.Host = (*Host)(nil)

// NewHost returns a host that drops messages until Bind is called.
func NewHost() *Host {
	return &Host{}
}

// Bind routes messages to send, usually tea.Program.Send.
func (h *Host) Bind(send func(tea.Msg)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.send = send
}

func (h *Host) dispatch(msg tea.Msg) {
	h.mu.Lock()
	send := h.send
	h.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

func (h *Host) AddItem(item domain.HistoryItem) {
	h.dispatch(itemAddedMsg{item: item})
}

func (h *Host) Clear() {
	h.dispatch(clearedMsg{})
}

func (h *Host) SetDebugMessage(msg string) {
	h.dispatch(debugMsg{text: msg})
}

// PendingItem reads the slot directly so commands see their own writes
// before the event loop catches up.
func (h *Host) PendingItem() *domain.HistoryItem {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pending
}

func (h *Host) SetPendingItem(item *domain.HistoryItem) {
	h.mu.Lock()
	h.pending = item
	h.mu.Unlock()
	h.dispatch(pendingMsg{item: item})
}

func (h *Host) OpenAuthDialog()   { h.dispatch(dialogMsg{choice: app.ChoiceAuth}) }
func (h *Host) OpenThemeDialog()  { h.dispatch(dialogMsg{choice: app.ChoiceTheme}) }
func (h *Host) OpenEditorDialog() { h.dispatch(dialogMsg{choice: app.ChoiceEditor}) }

func (h *Host) SetQuittingMessages(items []domain.HistoryItem) {
	h.dispatch(quittingMsg{items: items})
}

func (h *Host) Exit(code int) {
	h.dispatch(exitMsg{code: code})
}

// CommandsReloaded reports a finished command reload to the footer.
func (h *Host) CommandsReloaded(err error) {
	h.dispatch(commandsReloadedMsg{err: err})
}
