package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/g-project/internal/domain"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, dbPath, sessionID string) *SQLiteStorage {
	t.Helper()

	s, err := NewSQLiteStorage(dbPath, sessionID)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestNewSQLiteStorageValidation(t *testing.T) {
	_, err := NewSQLiteStorage("", "s1")
	require.Error(t, err)

	_, err = NewSQLiteStorage(filepath.Join(t.TempDir(), "x.db"), " ")
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestNewSQLiteStorageCreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "state", "sessions.db")

	s := newTestStorage(t, dbPath, "s1")

	require.FileExists(t, dbPath)
	require.Equal(t, "s1", s.SessionID())
}

func TestLogMessageSequencePerSession(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sessions.db")
	ctx := context.Background()
	first := newTestStorage(t, dbPath, "s1")
	second := newTestStorage(t, dbPath, "s2")

	require.NoError(t, first.LogMessage(ctx, domain.MessageTypeUser, "/stats"))
	require.NoError(t, second.LogMessage(ctx, domain.MessageTypeUser, "hello"))
	require.NoError(t, first.LogMessage(ctx, domain.MessageTypeUser, "/quit"))

	msgs, err := first.Messages(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, 0, msgs[0].MessageID)
	require.Equal(t, "/stats", msgs[0].Message)
	require.Equal(t, 1, msgs[1].MessageID)
	require.Equal(t, domain.MessageTypeUser, msgs[1].Type)
	require.False(t, msgs[1].Timestamp.IsZero())

	msgs, err = first.Messages(ctx, "s2")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, 0, msgs[0].MessageID)

	previous, err := first.PreviousUserMessages(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"/quit", "hello"}, previous)
}

func TestCheckpointRoundTrip(t *testing.T) {
	s := newTestStorage(t, filepath.Join(t.TempDir(), "sessions.db"), "s1")
	ctx := context.Background()
	turns := []domain.Turn{domain.UserTurn("hi"), domain.ModelTurn("hello")}

	tags, err := s.ListCheckpoints(ctx)
	require.NoError(t, err)
	require.Empty(t, tags)

	require.NoError(t, s.SaveCheckpoint(ctx, " v1 ", turns))
	loaded, err := s.LoadCheckpoint(ctx, "v1")
	require.NoError(t, err)
	require.Equal(t, turns, loaded)

	// saving again replaces
	require.NoError(t, s.SaveCheckpoint(ctx, "v1", turns[:1]))
	loaded, err = s.LoadCheckpoint(ctx, "v1")
	require.NoError(t, err)
	require.Equal(t, turns[:1], loaded)

	tags, err = s.ListCheckpoints(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"v1"}, tags)

	require.NoError(t, s.DeleteCheckpoint(ctx, "v1"))
	require.NoError(t, s.DeleteCheckpoint(ctx, "v1"))
	loaded, err = s.LoadCheckpoint(ctx, "v1")
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestCheckpointInvalidTag(t *testing.T) {
	s := newTestStorage(t, filepath.Join(t.TempDir(), "sessions.db"), "s1")
	ctx := context.Background()

	require.ErrorIs(t, s.SaveCheckpoint(ctx, "  ", nil), ErrInvalidTag)
	_, err := s.LoadCheckpoint(ctx, "")
	require.ErrorIs(t, err, ErrInvalidTag)
}
