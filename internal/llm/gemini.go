package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cristianoliveira/g-project/internal/domain"
	"google.golang.org/genai"
)

// GeminiBackend generates replies with the Gemini API.
type GeminiBackend struct {
	client    *genai.Client
	model     string
	maxTokens int
}

// NewGeminiBackend creates a Gemini API client for model.
func NewGeminiBackend(ctx context.Context, apiKey, model string, maxTokens int) (*GeminiBackend, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiBackend{client: client, model: model, maxTokens: maxTokens}, nil
}

// Name returns the provider name.
func (b *GeminiBackend) Name() string { return "gemini" }

// Generate sends turns to the model.
func (b *GeminiBackend) Generate(ctx context.Context, system string, turns []domain.Turn) (Reply, error) {
	config := &genai.GenerateContentConfig{}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if b.maxTokens > 0 {
		config.MaxOutputTokens = int32(b.maxTokens)
	}

	resp, err := b.client.Models.GenerateContent(ctx, b.model, geminiContents(turns), config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return Reply{}, fmt.Errorf("request failed (status=%d): %s", apiErr.Code, strings.TrimSpace(apiErr.Message))
		}
		return Reply{}, fmt.Errorf("request failed: %w", err)
	}

	reply := Reply{Text: resp.Text()}
	if usage := resp.UsageMetadata; usage != nil {
		reply.InputTokens = int(usage.PromptTokenCount)
		reply.OutputTokens = int(usage.CandidatesTokenCount)
	}
	return reply, nil
}

func geminiContents(turns []domain.Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		role := genai.Role(genai.RoleUser)
		if turn.Role == domain.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	return contents
}
