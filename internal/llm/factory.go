package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Provider names accepted by NewBackend.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// ErrMissingAPIKey is returned when the provider's API key variable is unset.
var ErrMissingAPIKey = errors.New("missing API key")

// APIKeyEnv returns the environment variable holding the provider's key.
func APIKeyEnv(provider string) string {
	if provider == ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "GEMINI_API_KEY"
}

// NewBackend builds the backend for provider using its API key from the environment.
func NewBackend(ctx context.Context, provider, model string, maxTokens int) (Backend, error) {
	env := APIKeyEnv(provider)
	key := os.Getenv(env)
	if key == "" {
		return nil, fmt.Errorf("%w: set %s", ErrMissingAPIKey, env)
	}
	switch provider {
	case ProviderAnthropic:
		return NewAnthropicBackend(key, model, maxTokens), nil
	case ProviderGemini, "":
		return NewGeminiBackend(ctx, key, model, maxTokens)
	default:
		return nil, fmt.Errorf("unknown model provider %q", provider)
	}
}
