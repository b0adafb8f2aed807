package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/mindmate/mindmate/internal/services/chat"
	"github.com/mindmate/mindmate/pkg/httpext"
)

// single instance, it caches struct info
var validate = validator.New(validator.WithRequiredStructEnabled())

// HandleChat handles one conversational turn. Provider failures still
// produce a 200 with a fallback payload; only client input errors map to
// 400.
func HandleChat(chatService *chat.Service, w http.ResponseWriter, r *http.Request) {
	var req chat.ChatRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed JSON request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		log.Warn().Err(err).Msg("Chat request validation failed")
		httpext.JsonError(w, "Message is required", http.StatusBadRequest)
		return
	}

	resp, err := chatService.HandleChat(r.Context(), req)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			httpext.JsonError(w, "Message is required", http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("Failed to process chat")
		httpext.JsonError(w, "Failed to process chat", http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp)
}
