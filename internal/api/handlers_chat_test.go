package api

import (
	"net/http"
	"testing"
)

func TestChatbotReturnsConversation(t *testing.T) {
	backend := newBackend(t, http.StatusOK, `{"response":"Stay hydrated."}`)
	app := newTestApp(backend.URL)

	response := postJSON(t, app, "/api/chat/ask", `{"user_input":"cramps help"}`)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	payload := decodeJSONBody(t, response)
	messages, ok := payload["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %v", payload["messages"])
	}
	reply, _ := messages[1].(map[string]any)
	if reply["role"] != "assistant" || reply["text"] != "Stay hydrated." {
		t.Fatalf("unexpected assistant message: %v", reply)
	}
}

func TestChatTextPropagatesDetailMessage(t *testing.T) {
	backend := newBackend(t, http.StatusServiceUnavailable, `{"detail":"assistant offline"}`)
	app := newTestApp(backend.URL)

	response := postJSON(t, app, "/api/chat/text", `{"message":"hi"}`)
	if response.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", response.StatusCode)
	}
	payload := decodeJSONBody(t, response)
	if payload["error"] != "assistant offline" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	app := newTestApp(deadBackend())

	response := postJSON(t, app, "/api/chat/ask", `{"user_input":"   "}`)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}
