package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/cristianoliveira/g-project/internal/domain"
)

// AnthropicBackend generates replies with the Anthropic Messages API.
type AnthropicBackend struct {
	client    anthropic.Client
	model     string
	maxTokens int
}

// NewAnthropicBackend creates an Anthropic client for model.
func NewAnthropicBackend(apiKey, model string, maxTokens int) *AnthropicBackend {
	return &AnthropicBackend{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: maxTokens,
	}
}

// Name returns the provider name.
func (b *AnthropicBackend) Name() string { return "anthropic" }

// Generate sends turns to the model.
func (b *AnthropicBackend) Generate(ctx context.Context, system string, turns []domain.Turn) (Reply, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(b.model),
		MaxTokens: int64(b.maxTokens),
		Messages:  anthropicMessages(turns),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := b.client.Messages.New(ctx, params)
	if err != nil {
		return Reply{}, fmt.Errorf("request failed: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return Reply{
		Text:         text.String(),
		InputTokens:  int(resp.Usage.InputTokens),
		OutputTokens: int(resp.Usage.OutputTokens),
	}, nil
}

func anthropicMessages(turns []domain.Turn) []anthropic.MessageParam {
	messages := make([]anthropic.MessageParam, 0, len(turns))
	for _, turn := range turns {
		block := anthropic.NewTextBlock(turn.Text)
		if turn.Role == domain.RoleModel {
			messages = append(messages, anthropic.NewAssistantMessage(block))
		} else {
			messages = append(messages, anthropic.NewUserMessage(block))
		}
	}
	return messages
}
