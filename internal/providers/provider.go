// Package providers abstracts the external AI completion backends behind a
// single interface so the chat service never depends on a vendor SDK.
package providers

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/mindmate/mindmate/internal/config"
	"github.com/mindmate/mindmate/internal/providers/gemini"
	"github.com/mindmate/mindmate/internal/providers/openai"
	"github.com/mindmate/mindmate/internal/providers/openrouter"
)

// CompletionProvider is an external completion backend. Implementations
// are stateless aside from credentials and safe for concurrent use.
type CompletionProvider interface {
	// Name identifies the backend in logs and health reporting.
	Name() string

	// Complete sends a system+user prompt pair and returns the model's
	// text reply.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// NewFromConfig resolves the active provider from configuration. It
// returns nil when the selected backend has no credentials; callers treat
// a nil provider as permanently unavailable and serve fallback responses.
func NewFromConfig(ctx context.Context) CompletionProvider {
	name := config.GetAIProvider()

	switch name {
	case "openai":
		if s := openai.NewService(); s != nil {
			return s
		}
	case "openrouter":
		if s := openrouter.NewService(); s != nil {
			return s
		}
	case "gemini":
		if s := gemini.NewService(ctx); s != nil {
			return s
		}
	default:
		log.Warn().Str("provider", name).Msg("Unknown AI_PROVIDER value, trying Gemini")
		if s := gemini.NewService(ctx); s != nil {
			return s
		}
	}

	return nil
}
