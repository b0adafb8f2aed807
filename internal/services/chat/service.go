// Package chat orchestrates a single stateless request cycle: classify
// emotion, build the prompt, call the active completion provider, absorb
// any provider failure into a canned supportive reply.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mindmate/mindmate/internal/emotion"
	"github.com/mindmate/mindmate/internal/prompt"
	"github.com/mindmate/mindmate/internal/providers"
)

const (
	chatFallback        = "I'm here to listen and support you. Could you tell me more about what you're feeling?"
	quickActionFallback = "I'm here to help with that. Take a deep breath and let's try together."

	// Marker placed in the response payload when a fallback was served.
	fallbackMarker = "fallback"

	// Bound on a single provider call. A timeout is treated like any
	// other provider failure.
	completionTimeout = 15 * time.Second
)

var errNoProvider = errors.New("no completion provider configured")

// Service handles chat and quick-action requests against one injected
// CompletionProvider. A nil provider means every request serves fallback.
type Service struct {
	provider providers.CompletionProvider
}

func NewService(provider providers.CompletionProvider) *Service {
	return &Service{provider: provider}
}

// AIEnabled reports whether a completion backend is configured.
func (s *Service) AIEnabled() bool {
	return s.provider != nil
}

// HandleChat processes one conversational turn. Provider failures never
// propagate: the returned response is then the fixed fallback sentence
// with the Error marker set. Only an empty message is an error.
func (s *Service) HandleChat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	lang := emotion.ParseLanguage(req.Language)
	mood, ok := emotion.ParseEmotion(req.Emotion)
	if !ok {
		mood = emotion.Classify(req.Message, lang)
	}

	systemPrompt := prompt.ChatSystem(mood, lang)
	userPrompt := prompt.ChatUserContent(req.Context, req.Message)

	text, err := s.complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Error().Err(err).
			Str("emotion", string(mood)).
			Str("language", string(lang)).
			Msg("Provider call failed, serving fallback response")
		return &ChatResponse{
			Response: chatFallback,
			Emotion:  mood,
			Error:    fallbackMarker,
		}, nil
	}

	return &ChatResponse{Response: text, Emotion: mood}, nil
}

// HandleQuickAction generates canned supportive content. A known action
// tag builds the prompt server-side; otherwise the caller-supplied prompt
// is used verbatim. Same absorb-and-fallback policy as HandleChat.
func (s *Service) HandleQuickAction(ctx context.Context, req QuickActionRequest) (*QuickActionResponse, error) {
	userPrompt := strings.TrimSpace(req.Prompt)
	if req.Action != "" {
		if p, ok := prompt.ActionPrompt(req.Action); ok {
			userPrompt = p
		}
	}
	if userPrompt == "" {
		return nil, ErrEmptyPrompt
	}

	lang := emotion.ParseLanguage(req.Language)

	text, err := s.complete(ctx, prompt.QuickActionSystem(lang), userPrompt)
	if err != nil {
		log.Error().Err(err).
			Str("action", req.Action).
			Msg("Provider call failed, serving fallback response")
		return &QuickActionResponse{
			Response: quickActionFallback,
			Error:    fallbackMarker,
		}, nil
	}

	return &QuickActionResponse{Response: text}, nil
}

func (s *Service) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.provider == nil {
		return "", errNoProvider
	}

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	return s.provider.Complete(ctx, systemPrompt, userPrompt)
}
