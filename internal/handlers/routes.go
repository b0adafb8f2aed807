package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mindmate/mindmate/internal/middleware"
	"github.com/mindmate/mindmate/internal/services/chat"
)

// NewRouter wires the API surface and the static browser client.
func NewRouter(chatService *chat.Service, publicDir string) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Recover)
	r.Use(middleware.RequestLogging)

	r.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		HandleChat(chatService, w, r)
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/quick-action", func(w http.ResponseWriter, r *http.Request) {
		HandleQuickAction(chatService, w, r)
	}).Methods(http.MethodPost)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		HandleHealth(chatService, w, r)
	}).Methods(http.MethodGet)

	// Browser client. Core logic never depends on it.
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(publicDir)))

	return r
}
