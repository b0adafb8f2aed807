package chat

import (
	"errors"

	"github.com/mindmate/mindmate/internal/emotion"
)

// Client input errors, mapped to HTTP 400 at the handler boundary.
var (
	ErrEmptyMessage = errors.New("message is required")
	ErrEmptyPrompt  = errors.New("prompt is required")
)

// ChatRequest is one conversational turn from the browser. Emotion is
// advisory: a valid label is trusted, anything else is re-derived from the
// message server-side.
type ChatRequest struct {
	Message  string `json:"message" validate:"required"`
	Emotion  string `json:"emotion,omitempty"`
	Language string `json:"language,omitempty"`
	Context  string `json:"context,omitempty"`
}

// ChatResponse always carries a non-empty Response, even on total
// provider failure. Error is set to "fallback" when a canned reply was
// substituted.
type ChatResponse struct {
	Response string          `json:"response"`
	Emotion  emotion.Emotion `json:"emotion,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// QuickActionRequest asks for pre-canned supportive content. Either a raw
// prompt or a known action tag must be supplied.
type QuickActionRequest struct {
	Prompt   string `json:"prompt"`
	Action   string `json:"action,omitempty"`
	Language string `json:"language,omitempty"`
}

type QuickActionResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}
