package errors

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cristianoliveira/g-project/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockColorOutput records the last message per severity.
type mockColorOutput struct {
	mu    sync.Mutex
	calls map[string]string
}

func newMockColorOutput() *mockColorOutput {
	return &mockColorOutput{calls: make(map[string]string)}
}

func (m *mockColorOutput) record(kind string, msgs []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(msgs) > 0 {
		m.calls[kind] = msgs[0]
	}
}

func (m *mockColorOutput) Error(msgs ...string)   { m.record("error", msgs) }
func (m *mockColorOutput) Warning(msgs ...string) { m.record("warning", msgs) }
func (m *mockColorOutput) Info(msgs ...string)    { m.record("info", msgs) }
func (m *mockColorOutput) Success(msgs ...string) { m.record("success", msgs) }

func TestConsole(t *testing.T) {
	out := newMockColorOutput()
	console := NewConsole(out)

	console.Error("e")
	console.Warning("w")
	console.Info("i")
	console.Success("s")

	assert.Equal(t, map[string]string{"error": "e", "warning": "w", "info": "i", "success": "s"}, out.calls)
}

func TestNewConsoleDefaultsToTerminal(t *testing.T) {
	console := NewConsole(nil)

	require.NotNil(t, console)
	assert.IsType(t, terminalSink{}, console.out)
}

func TestWarnf(t *testing.T) {
	out := newMockColorOutput()

	Warnf(NewConsole(out), "session log disabled: %v", fmt.Errorf("locked"))

	assert.Equal(t, "session log disabled: locked", out.calls["warning"])
}

func TestReportCommandError(t *testing.T) {
	out := newMockColorOutput()
	console := NewConsole(out)

	ReportCommandError(console, "/chat save", nil)
	assert.Empty(t, out.calls)

	ReportCommandError(console, "/chat save", fmt.Errorf("disk full"))
	assert.Equal(t, "Command /chat save failed: disk full", out.calls["error"])
}

func TestAsProtocolViolation(t *testing.T) {
	violation, ok := AsProtocolViolation(&ProtocolViolation{Kind: "dialog", Value: "color"})
	require.True(t, ok)
	assert.Equal(t, "unhandled slash command dialog: color", violation.Error())

	wrapped := fmt.Errorf("outer: %w", &ProtocolViolation{Kind: "result"})
	_, ok = AsProtocolViolation(wrapped)
	assert.True(t, ok)

	_, ok = AsProtocolViolation("plain panic")
	assert.False(t, ok)
	_, ok = AsProtocolViolation(fmt.Errorf("other"))
	assert.False(t, ok)
}

func TestPanicProtocol(t *testing.T) {
	assert.PanicsWithError(t, "unhandled slash command result: <nil>", func() {
		PanicProtocol("result", nil)
	})
}

func TestTranscript(t *testing.T) {
	var items []domain.HistoryItem
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	transcript := NewTranscript(func(item domain.HistoryItem) { items = append(items, item) })
	transcript.now = func() time.Time { return at }

	transcript.Error("boom")
	transcript.Warning("careful")
	transcript.Info("note")
	transcript.Success("done")

	require.Len(t, items, 4)
	assert.Equal(t, domain.HistoryItem{Type: domain.MessageTypeError, Text: "boom", Timestamp: at}, items[0])
	assert.Equal(t, domain.MessageTypeInfo, items[1].Type)
	assert.Equal(t, "Warning: careful", items[1].Text)
	assert.Equal(t, "note", items[2].Text)
	assert.Equal(t, "✓ done", items[3].Text)
}

func TestTranscriptNilSink(t *testing.T) {
	assert.NotPanics(t, func() { NewTranscript(nil).Error("dropped") })
}
