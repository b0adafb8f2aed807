package handlers

import (
	"net/http"

	"github.com/mindmate/mindmate/internal/services/chat"
)

type healthResponse struct {
	Status    string `json:"status"`
	AIEnabled bool   `json:"aiEnabled"`
}

// HandleHealth reports liveness and whether an AI backend is configured.
func HandleHealth(chatService *chat.Service, w http.ResponseWriter, r *http.Request) {
	writeJSON(w, healthResponse{
		Status:    "MindMate is running and ready to help!",
		AIEnabled: chatService.AIEnabled(),
	})
}
