package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mindmate/mindmate/internal/handlers"
	"github.com/mindmate/mindmate/internal/services/chat"
)

// The process must serve even with no provider credentials: chat requests
// get fallback payloads, never 5xx.
func TestServerWithoutProviderCredentials(t *testing.T) {
	chatService := chat.NewService(nil)
	server := httptest.NewServer(handlers.NewRouter(chatService, t.TempDir()))
	defer server.Close()

	t.Run("health reports ai disabled", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/health")
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
		}

		var health struct {
			Status    string `json:"status"`
			AIEnabled bool   `json:"aiEnabled"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
			t.Fatalf("Failed to decode health response: %v", err)
		}
		if health.AIEnabled {
			t.Error("Expected aiEnabled to be false without credentials")
		}
		if health.Status == "" {
			t.Error("Expected non-empty status")
		}
	})

	t.Run("chat serves fallback with 200", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/api/chat", "application/json", strings.NewReader(`{
			"message": "hello"
		}`))
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
		}

		var body chat.ChatResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode chat response: %v", err)
		}
		if body.Response == "" {
			t.Error("Expected non-empty fallback response")
		}
		if body.Error != "fallback" {
			t.Errorf("Expected fallback error marker, got %q", body.Error)
		}
	})

	t.Run("missing message is a 400", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/api/chat", "application/json", strings.NewReader(`{}`))
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, resp.StatusCode)
		}
	})
}
