package domain

import (
	"sort"
	"sync"
	"time"
)

// SessionStats accumulates usage metrics for one interactive session.
// The host writes to it; commands only read snapshots.
type SessionStats struct {
	mu           sync.RWMutex
	start        time.Time
	promptCount  int
	inputTokens  int
	outputTokens int
	toolCalls    map[string]int
}

// StatsSnapshot is an immutable copy of SessionStats.
type StatsSnapshot struct {
	SessionStart time.Time
	PromptCount  int
	InputTokens  int
	OutputTokens int
	ToolCalls    map[string]int
}

// NewSessionStats starts a stats collector at now.
func NewSessionStats(now time.Time) *SessionStats {
	return &SessionStats{start: now, toolCalls: make(map[string]int)}
}

// RecordPrompt counts a prompt sent to the completion service.
func (s *SessionStats) RecordPrompt(inputTokens, outputTokens int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.promptCount++
	s.inputTokens += inputTokens
	s.outputTokens += outputTokens
}

// RecordToolCall counts an executed tool call.
func (s *SessionStats) RecordToolCall(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toolCalls[name]++
}

// Snapshot returns a copy of the current counters.
func (s *SessionStats) Snapshot() StatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	calls := make(map[string]int, len(s.toolCalls))
	for k, v := range s.toolCalls {
		calls[k] = v
	}
	return StatsSnapshot{
		SessionStart: s.start,
		PromptCount:  s.promptCount,
		InputTokens:  s.inputTokens,
		OutputTokens: s.outputTokens,
		ToolCalls:    calls,
	}
}

// Duration returns the wall time elapsed since the session started.
func (s StatsSnapshot) Duration(now time.Time) time.Duration {
	return now.Sub(s.SessionStart)
}

// ToolNames returns the names of called tools in sorted order.
func (s StatsSnapshot) ToolNames() []string {
	names := make([]string, 0, len(s.ToolCalls))
	for name := range s.ToolCalls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
