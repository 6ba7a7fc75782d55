package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageType_IsValid(t *testing.T) {
	tests := []struct {
		name string
		mt   MessageType
		want bool
	}{
		{"user", MessageTypeUser, true},
		{"info", MessageTypeInfo, true},
		{"error", MessageTypeError, true},
		{"compression", MessageTypeCompression, true},
		{"empty", MessageType(""), false},
		{"other", MessageType("warning"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mt.IsValid())
		})
	}
}

func TestHistoryItem_Summary(t *testing.T) {
	tests := []struct {
		name string
		item HistoryItem
		want string
	}{
		{
			name: "plain text",
			item: NewTextItem(MessageTypeInfo, "hello"),
			want: "hello",
		},
		{
			name: "quit",
			item: HistoryItem{Type: MessageTypeQuit, Duration: 65 * time.Second},
			want: "Agent powering down. Session lasted 1m 5s. Goodbye!",
		},
		{
			name: "pending compression",
			item: HistoryItem{Type: MessageTypeCompression, Compression: &CompressionInfo{IsPending: true}},
			want: "Compressing chat history...",
		},
		{
			name: "finished compression",
			item: HistoryItem{Type: MessageTypeCompression, Compression: &CompressionInfo{OriginalTokenCount: 100, NewTokenCount: 20}},
			want: "Chat history compressed from 100 to 20 tokens.",
		},
		{
			name: "about with branch",
			item: HistoryItem{Type: MessageTypeAbout, About: &AboutInfo{CLIVersion: "1.0", OSVersion: "linux", ModelVersion: "m", AuthType: "a", SessionID: "s", GitBranch: "main"}},
			want: "About: CLI 1.0 | OS linux | Model m | Auth a | Session s | Branch main",
		},
		{
			name: "about without payload",
			item: HistoryItem{Type: MessageTypeAbout},
			want: "About",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Summary())
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "42s", FormatDuration(42*time.Second))
	assert.Equal(t, "2m 0s", FormatDuration(2*time.Minute))
	assert.Equal(t, "1h 1m 1s", FormatDuration(time.Hour+time.Minute+time.Second))
}

func TestTurnsToItems(t *testing.T) {
	turns := []Turn{UserTurn("hi"), ModelTurn("hello"), ModelTurn("")}

	items := TurnsToItems(turns)

	require.Len(t, items, 2)
	assert.Equal(t, MessageTypeUser, items[0].Type)
	assert.Equal(t, "hi", items[0].Text)
	assert.Equal(t, MessageTypeGemini, items[1].Type)
	assert.Equal(t, "hello", items[1].Text)
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(nil))
	assert.Equal(t, 1, EstimateTokens([]Turn{UserTurn("abc")}))
	assert.Equal(t, 3, EstimateTokens([]Turn{UserTurn("abcdef"), ModelTurn("ghijkl")}))
}

func TestSessionStats(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	stats := NewSessionStats(start)

	stats.RecordPrompt(10, 20)
	stats.RecordPrompt(1, 2)
	stats.RecordToolCall("write_file")
	stats.RecordToolCall("save_memory")
	stats.RecordToolCall("write_file")

	snap := stats.Snapshot()
	assert.Equal(t, 2, snap.PromptCount)
	assert.Equal(t, 11, snap.InputTokens)
	assert.Equal(t, 22, snap.OutputTokens)
	assert.Equal(t, 2, snap.ToolCalls["write_file"])
	assert.Equal(t, []string{"save_memory", "write_file"}, snap.ToolNames())
	assert.Equal(t, 90*time.Second, snap.Duration(start.Add(90*time.Second)))

	snap.ToolCalls["write_file"] = 99
	assert.Equal(t, 2, stats.Snapshot().ToolCalls["write_file"], "snapshot must be a copy")
}
