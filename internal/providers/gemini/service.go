package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/mindmate/mindmate/internal/config"
)

// Service completes prompts through the Google generative AI backend.
type Service struct {
	client *genai.Client
	model  string
}

func NewService(ctx context.Context) *Service {
	key := config.GetGeminiKey()
	if key == "" {
		log.Warn().Msg("Gemini provider not configured - GEMINI_API_KEY missing")
		return nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Gemini client")
		return nil
	}

	return &Service{
		client: client,
		model:  config.GetGeminiModel(),
	}
}

func (s *Service) Name() string {
	return "gemini"
}

// Complete sets the system prompt as the model's system instruction and
// sends the user prompt as the single input. A fresh GenerativeModel is
// built per call; the shared client is safe for concurrent use but the
// model value is not.
func (s *Service) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	model := s.client.GenerativeModel(s.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("model returned no text candidates")
	}
	return text, nil
}

// Close releases the underlying client connection.
func (s *Service) Close() {
	s.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
