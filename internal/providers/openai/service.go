package openai

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/mindmate/mindmate/internal/config"
)

// Service completes prompts through the OpenAI chat completion API.
type Service struct {
	client *openai.Client
	model  string
}

func NewService() *Service {
	key := config.GetOpenAIKey()
	if key == "" {
		log.Warn().Msg("OpenAI provider not configured - OPENAI_API_KEY missing")
		return nil
	}

	return &Service{
		client: openai.NewClient(key),
		model:  config.GetOpenAIModel(),
	}
}

func (s *Service) Name() string {
	return "openai"
}

// Complete sends a two-message system+user exchange. Replies are bounded
// to 150 tokens at temperature 0.7 to keep them short and supportive.
func (s *Service) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   150,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
