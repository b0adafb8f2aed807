// Package prompt builds the system instructions sent to the completion
// providers. Templates are fixed; only the emotion label and language name
// are interpolated, both drawn from closed enumerations.
package prompt

import (
	"fmt"

	"github.com/mindmate/mindmate/internal/emotion"
)

const chatTemplate = `You are MindMate, a compassionate and empathetic mental health support companion. Your role is to:

1. Listen actively and validate feelings
2. Provide emotional support and encouragement
3. Offer practical coping strategies and mindfulness techniques
4. Be warm, non-judgmental, and caring
5. Keep responses concise (2-4 sentences) but meaningful
6. Never diagnose or provide medical advice
7. Encourage professional help when needed for serious issues

Current detected emotion: %s
User's preferred language: %s

Respond with empathy and support. If the emotion is concerning (very sad, anxious, or mentions self-harm), gently suggest professional resources while still being supportive.`

const quickActionTemplate = `You are MindMate, a compassionate mental health companion. Generate helpful, concise content based on the user's request. Keep it supportive and positive. User's language: %s.`

// ChatSystem returns the system instruction for a chat turn.
func ChatSystem(e emotion.Emotion, lang emotion.Language) string {
	return fmt.Sprintf(chatTemplate, e, lang.Name())
}

// QuickActionSystem returns the system instruction for quick-action
// content generation.
func QuickActionSystem(lang emotion.Language) string {
	return fmt.Sprintf(quickActionTemplate, lang.Name())
}

// ChatUserContent prepends an optional caller-supplied context prefix to
// the user message. The prefix goes straight into the message content;
// providers never see it as a separate field.
func ChatUserContent(contextPrefix, message string) string {
	if contextPrefix == "" {
		return message
	}
	return contextPrefix + "\n\n" + message
}
