package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/mindmate/mindmate/internal/services/chat"
	"github.com/mindmate/mindmate/pkg/httpext"
)

// HandleQuickAction generates canned supportive content for a prompt or a
// known action tag.
func HandleQuickAction(chatService *chat.Service, w http.ResponseWriter, r *http.Request) {
	var req chat.QuickActionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed JSON request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	resp, err := chatService.HandleQuickAction(r.Context(), req)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyPrompt) {
			httpext.JsonError(w, "Prompt is required", http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("Failed to process quick action")
		httpext.JsonError(w, "Failed to process quick action", http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp)
}
