// Package sqlite provides the SQLite-backed session logger: user messages per
// session and named conversation checkpoints.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/g-project/internal/colors"
	"github.com/cristianoliveira/g-project/internal/domain"
	_ "modernc.org/sqlite"
)

// LoggedMessage is one row of the session message log.
type LoggedMessage struct {
	SessionID string
	MessageID int
	Type      domain.MessageType
	Message   string
	Timestamp time.Time
}

// SQLiteStorage implements commands.Checkpoints and the host's message log.
type SQLiteStorage struct {
	db        *sql.DB
	sessionID string
}

// NewSQLiteStorage opens (creating if needed) the database at dbPath for sessionID.
func NewSQLiteStorage(dbPath, sessionID string) (*SQLiteStorage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite storage: db path cannot be empty")
	}
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("sqlite storage: %w", ErrInvalidSession)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}

	db.SetMaxOpenConns(1)

	storage := &SQLiteStorage{db: db, sessionID: sessionID}
	if err := storage.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return storage, nil
}

// Close closes the underlying SQLite connection.
func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SessionID returns the session this storage writes messages for.
func (s *SQLiteStorage) SessionID() string {
	return s.sessionID
}

func (s *SQLiteStorage) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite storage: set busy timeout: %w", err)
	}

	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite storage: create schema: %w", err)
	}

	return nil
}

// LogMessage appends a user message to the current session's log.
// Message IDs are sequential per session starting at 0.
func (s *SQLiteStorage) LogMessage(ctx context.Context, msgType domain.MessageType, message string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite storage: log message: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(message_id) + 1, 0) FROM session_messages WHERE session_id = ?`,
		s.sessionID).Scan(&next)
	if err != nil {
		return fmt.Errorf("sqlite storage: next message id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO session_messages (session_id, message_id, type, message, timestamp) VALUES (?, ?, ?, ?, ?)`,
		s.sessionID, next, string(msgType), message, utcNow())
	if err != nil {
		return fmt.Errorf("sqlite storage: log message: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite storage: log message: %w", err)
	}
	colors.StructuredDebug(colors.Event{Component: "storage", Action: "log_message", Status: "completed",
		ID: s.sessionID, Fields: map[string]interface{}{"message_id": next}})
	return nil
}

// Messages returns the logged messages of sessionID in order.
func (s *SQLiteStorage) Messages(ctx context.Context, sessionID string) ([]LoggedMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, message_id, type, message, timestamp FROM session_messages
		 WHERE session_id = ? ORDER BY message_id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list messages: %w", err)
	}
	defer rows.Close()

	var out []LoggedMessage
	for rows.Next() {
		var (
			msg       LoggedMessage
			msgType   string
			timestamp string
		)
		if err := rows.Scan(&msg.SessionID, &msg.MessageID, &msgType, &msg.Message, &timestamp); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan message: %w", err)
		}
		msg.Type = domain.MessageType(msgType)
		msg.Timestamp, _ = time.Parse(timestampLayout, timestamp)
		out = append(out, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list messages: %w", err)
	}
	return out, nil
}

// PreviousUserMessages returns the text of every logged message across
// sessions, newest first. Line-mode hosts seed their history with it.
func (s *SQLiteStorage) PreviousUserMessages(ctx context.Context, limit int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT message FROM session_messages WHERE type = ? ORDER BY id DESC LIMIT ?`,
		string(domain.MessageTypeUser), limit)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: previous messages: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan message: %w", err)
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}

// SaveCheckpoint stores turns under tag, replacing an existing checkpoint.
func (s *SQLiteStorage) SaveCheckpoint(ctx context.Context, tag string, turns []domain.Turn) error {
	tag, err := validateTag(tag)
	if err != nil {
		return err
	}
	data, err := json.Marshal(turns)
	if err != nil {
		return fmt.Errorf("sqlite storage: encode checkpoint: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO checkpoints (tag, session_id, history, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(tag) DO UPDATE SET session_id = excluded.session_id,
		 history = excluded.history, updated_at = excluded.updated_at`,
		tag, s.sessionID, string(data), utcNow())
	if err != nil {
		return fmt.Errorf("sqlite storage: save checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint returns the turns stored under tag, or nil when there is none.
func (s *SQLiteStorage) LoadCheckpoint(ctx context.Context, tag string) ([]domain.Turn, error) {
	tag, err := validateTag(tag)
	if err != nil {
		return nil, err
	}
	var data string
	err = s.db.QueryRowContext(ctx, `SELECT history FROM checkpoints WHERE tag = ?`, tag).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: load checkpoint: %w", err)
	}
	var turns []domain.Turn
	if err := json.Unmarshal([]byte(data), &turns); err != nil {
		return nil, fmt.Errorf("sqlite storage: decode checkpoint %s: %w", tag, err)
	}
	return turns, nil
}

// ListCheckpoints returns the saved tags, most recently updated first.
func (s *SQLiteStorage) ListCheckpoints(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT tag FROM checkpoints ORDER BY updated_at DESC, tag`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list checkpoints: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan checkpoint: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// DeleteCheckpoint removes tag. Deleting a missing tag is not an error.
func (s *SQLiteStorage) DeleteCheckpoint(ctx context.Context, tag string) error {
	tag, err := validateTag(tag)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM checkpoints WHERE tag = ?`, tag); err != nil {
		return fmt.Errorf("sqlite storage: delete checkpoint: %w", err)
	}
	return nil
}

func validateTag(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", fmt.Errorf("sqlite storage: %w", ErrInvalidTag)
	}
	return tag, nil
}

// timestampLayout has a fixed width so stored timestamps sort as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

func utcNow() string {
	return time.Now().UTC().Format(timestampLayout)
}
