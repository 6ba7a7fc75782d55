package commands

import (
	"context"

	"github.com/cristianoliveira/g-project/internal/domain"
	"github.com/cristianoliveira/g-project/internal/settings"
)

// Config is the read-only view of runtime configuration available to commands.
type Config interface {
	// Get returns the value for key or defaultValue when unset.
	Get(key, defaultValue string) string
	ProjectRoot() string
	SessionID() string
	Model() string
	MemoryFile() string
}

// ChatClient is the part of the completion service commands may drive.
type ChatClient interface {
	History() []domain.Turn
	SetHistory(ctx context.Context, turns []domain.Turn) error
	ResetChat(ctx context.Context) error
	Compress(ctx context.Context, force bool) (*domain.CompressionInfo, error)
}

// Checkpoints stores named snapshots of the conversation.
type Checkpoints interface {
	SaveCheckpoint(ctx context.Context, tag string, turns []domain.Turn) error
	LoadCheckpoint(ctx context.Context, tag string) ([]domain.Turn, error)
	ListCheckpoints(ctx context.Context) ([]string, error)
}

// GitStatus reports repository state for the working directory.
type GitStatus interface {
	Branch(ctx context.Context) (string, error)
}

// ToolCatalog lists the tools the host can run.
type ToolCatalog interface {
	Names() []string
	Description(name string) string
}

// Services are the long-lived collaborators of a session.
// Git and Logger are optional and may be nil.
type Services struct {
	Config   Config
	Settings *settings.Settings
	Chat     ChatClient
	Tools    ToolCatalog
	Git      GitStatus
	Logger   Checkpoints
}

// UI is the subset of host operations commands may call directly.
type UI interface {
	AddItem(item domain.HistoryItem)
	Clear()
	SetDebugMessage(msg string)
	PendingItem() *domain.HistoryItem
	SetPendingItem(item *domain.HistoryItem)
}

// Session carries per-session state captured when the context was built.
type Session struct {
	Stats domain.StatsSnapshot
}

// Context is handed to a single command invocation. Commands must not retain it.
type Context struct {
	Services Services
	UI       UI
	Session  Session
}

// ContextBuilder assembles a fresh Context for every invocation.
type ContextBuilder struct {
	Services Services
	UI       UI
	Stats    *domain.SessionStats
}

// Build returns a new Context reflecting the current session state.
func (b *ContextBuilder) Build() *Context {
	cmdCtx := &Context{
		Services: b.Services,
		UI:       b.UI,
	}
	if b.Stats != nil {
		cmdCtx.Session.Stats = b.Stats.Snapshot()
	}
	return cmdCtx
}
