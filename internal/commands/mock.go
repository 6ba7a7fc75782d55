package commands

import (
	"context"
	"sync"

	"github.com/cristianoliveira/g-project/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockChatClient is a mock implementation of ChatClient for testing.
//
// Example usage:
//
//	chat := new(MockChatClient)
//	chat.On("ResetChat", mock.Anything).Return(nil)
type MockChatClient struct {
	mock.Mock
}

// History returns the mocked conversation turns.
func (m *MockChatClient) History() []domain.Turn {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Turn)
}

// SetHistory records the replacement history.
func (m *MockChatClient) SetHistory(ctx context.Context, turns []domain.Turn) error {
	args := m.Called(ctx, turns)
	return args.Error(0)
}

// ResetChat records a conversation reset.
func (m *MockChatClient) ResetChat(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Compress returns the mocked compression outcome.
func (m *MockChatClient) Compress(ctx context.Context, force bool) (*domain.CompressionInfo, error) {
	args := m.Called(ctx, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompressionInfo), args.Error(1)
}

// MockCheckpoints is a mock implementation of Checkpoints for testing.
type MockCheckpoints struct {
	mock.Mock
}

// SaveCheckpoint records a saved snapshot.
func (m *MockCheckpoints) SaveCheckpoint(ctx context.Context, tag string, turns []domain.Turn) error {
	args := m.Called(ctx, tag, turns)
	return args.Error(0)
}

// LoadCheckpoint returns the mocked snapshot for tag.
func (m *MockCheckpoints) LoadCheckpoint(ctx context.Context, tag string) ([]domain.Turn, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Turn), args.Error(1)
}

// ListCheckpoints returns the mocked tags.
func (m *MockCheckpoints) ListCheckpoints(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// RecordingUI is an in-memory UI that records every call.
type RecordingUI struct {
	mu      sync.Mutex
	Items   []domain.HistoryItem
	Clears  int
	Debug   []string
	pending *domain.HistoryItem

	// PendingHistory records every value passed to SetPendingItem.
	PendingHistory []*domain.HistoryItem
}

func (u *RecordingUI) AddItem(item domain.HistoryItem) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.Items = append(u.Items, item)
}

func (u *RecordingUI) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.Clears++
	u.Items = nil
}

func (u *RecordingUI) SetDebugMessage(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.Debug = append(u.Debug, msg)
}

func (u *RecordingUI) PendingItem() *domain.HistoryItem {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.pending
}

func (u *RecordingUI) SetPendingItem(item *domain.HistoryItem) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.pending = item
	u.PendingHistory = append(u.PendingHistory, item)
}

// StaticConfig is a fixed Config for tests and plain hosts.
type StaticConfig struct {
	Values  map[string]string
	Root    string
	Session string
	ModelID string
	Memory  string
}

func (c StaticConfig) Get(key, defaultValue string) string {
	if v, ok := c.Values[key]; ok {
		return v
	}
	return defaultValue
}

func (c StaticConfig) ProjectRoot() string { return c.Root }
func (c StaticConfig) SessionID() string   { return c.Session }
func (c StaticConfig) Model() string       { return c.ModelID }
func (c StaticConfig) MemoryFile() string  { return c.Memory }
