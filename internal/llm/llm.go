// Package llm is the completion service: a Conversation that keeps the turn
// history and delegates generation to a provider Backend.
package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cristianoliveira/g-project/internal/colors"
	"github.com/cristianoliveira/g-project/internal/domain"
)

// ErrEmptyPrompt is returned by SendMessage for blank input.
var ErrEmptyPrompt = errors.New("empty prompt")

// Reply is a single model response.
type Reply struct {
	Text         string
	InputTokens  int
	OutputTokens int
}

// Backend generates a reply for a system instruction and a turn history.
// The last turn is always the user's.
type Backend interface {
	Name() string
	Generate(ctx context.Context, system string, turns []domain.Turn) (Reply, error)
}

// Client is the completion service used by hosts and commands.
type Client interface {
	SendMessage(ctx context.Context, text string) (Reply, error)
	History() []domain.Turn
	SetHistory(ctx context.Context, turns []domain.Turn) error
	ResetChat(ctx context.Context) error
	Compress(ctx context.Context, force bool) (*domain.CompressionInfo, error)
}

// Conversation implements Client over a Backend. It is safe for concurrent use.
type Conversation struct {
	mu        sync.Mutex
	backend   Backend
	system    string
	threshold int
	history   []domain.Turn
}

// ConversationOption configures a Conversation.
type ConversationOption func(*Conversation)

// WithSystemPrompt sets the system instruction sent with every request.
func WithSystemPrompt(prompt string) ConversationOption {
	return func(c *Conversation) {
		c.system = prompt
	}
}

// WithCompressionThreshold sets the estimated token count under which a
// non-forced Compress is a no-op.
func WithCompressionThreshold(tokens int) ConversationOption {
	return func(c *Conversation) {
		if tokens > 0 {
			c.threshold = tokens
		}
	}
}

// DefaultCompressionThreshold is the token estimate that triggers automatic compression.
const DefaultCompressionThreshold = 100_000

// NewConversation returns an empty conversation on backend.
func NewConversation(backend Backend, opts ...ConversationOption) *Conversation {
	c := &Conversation{backend: backend, threshold: DefaultCompressionThreshold}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendMessage appends text as a user turn and asks the backend for a reply.
// The turn is dropped again when generation fails.
func (c *Conversation) SendMessage(ctx context.Context, text string) (Reply, error) {
	if text == "" {
		return Reply{}, ErrEmptyPrompt
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	turns := append(cloneTurns(c.history), domain.UserTurn(text))
	reply, err := c.backend.Generate(ctx, c.system, turns)
	if err != nil {
		colors.StructuredError(colors.Event{Component: "llm", Action: "generate", Status: "failed", Err: err, ID: c.backend.Name()})
		return Reply{}, fmt.Errorf("%s: %w", c.backend.Name(), err)
	}
	c.history = append(turns, domain.ModelTurn(reply.Text))
	colors.StructuredDebug(colors.Event{Component: "llm", Action: "generate", Status: "completed", ID: c.backend.Name(),
		Fields: map[string]interface{}{"input_tokens": reply.InputTokens, "output_tokens": reply.OutputTokens}})
	return reply, nil
}

// History returns a copy of the conversation turns.
func (c *Conversation) History() []domain.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneTurns(c.history)
}

// SetHistory replaces the conversation turns.
func (c *Conversation) SetHistory(_ context.Context, turns []domain.Turn) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = cloneTurns(turns)
	return nil
}

// ResetChat starts an empty conversation.
func (c *Conversation) ResetChat(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
	return nil
}

// Compress summarizes the history and replaces it with a two-turn snapshot.
// It returns nil when there is nothing to compress, or when force is false
// and the history is below the threshold.
func (c *Conversation) Compress(ctx context.Context, force bool) (*domain.CompressionInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.history) == 0 {
		return nil, nil
	}
	original := domain.EstimateTokens(c.history)
	if !force && original < c.threshold {
		return nil, nil
	}

	turns := append(cloneTurns(c.history), domain.UserTurn(CompressionPrompt))
	reply, err := c.backend.Generate(ctx, c.system, turns)
	if err != nil {
		return nil, fmt.Errorf("%s: compress: %w", c.backend.Name(), err)
	}
	if reply.Text == "" {
		return nil, nil
	}

	c.history = []domain.Turn{
		domain.UserTurn(reply.Text),
		domain.ModelTurn(compressionAck),
	}
	info := &domain.CompressionInfo{
		OriginalTokenCount: original,
		NewTokenCount:      domain.EstimateTokens(c.history),
	}
	colors.StructuredInfo(colors.Event{Component: "llm", Action: "compress", Status: "completed", ID: c.backend.Name(),
		Fields: map[string]interface{}{"original_tokens": info.OriginalTokenCount, "new_tokens": info.NewTokenCount}})
	return info, nil
}

func cloneTurns(turns []domain.Turn) []domain.Turn {
	if turns == nil {
		return nil
	}
	out := make([]domain.Turn, len(turns))
	copy(out, turns)
	return out
}
