package controllers

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/lunahealth/luna/internal/models"
)

// ChatFallbackReply covers responses whose payload carries no
// recognizable reply field.
const ChatFallbackReply = "Sorry, I could not process that. Please try again."

var ErrEmptyChatMessage = errors.New("message must not be empty")

type chatService interface {
	SendChatText(ctx context.Context, message string) (map[string]any, error)
	AskChatbot(ctx context.Context, userInput string) (map[string]any, error)
}

// ChatController holds the assistant conversation for one screen. Ask
// uses the JSON chatbot endpoint; SendText uses the form-encoded chat
// endpoint. Both append the user's message first and the assistant's
// reply (or an error message) after the call settles.
type ChatController struct {
	service chatService

	mu           sync.Mutex
	submitting   bool
	messages     []models.ChatMessage
	errorMessage string
}

func NewChatController(service chatService) *ChatController {
	return &ChatController{service: service}
}

func (controller *ChatController) Ask(ctx context.Context, text string) error {
	return controller.send(ctx, text, controller.service.AskChatbot)
}

func (controller *ChatController) SendText(ctx context.Context, text string) error {
	return controller.send(ctx, text, controller.service.SendChatText)
}

func (controller *ChatController) send(ctx context.Context, text string, call func(context.Context, string) (map[string]any, error)) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyChatMessage
	}

	controller.mu.Lock()
	if controller.submitting {
		controller.mu.Unlock()
		return ErrRequestInFlight
	}
	controller.submitting = true
	controller.messages = append(controller.messages, models.ChatMessage{Role: models.ChatRoleUser, Text: trimmed})
	controller.mu.Unlock()

	payload, err := call(ctx, trimmed)

	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.submitting = false
	if err != nil {
		controller.errorMessage = failureText(err)
		return err
	}
	controller.errorMessage = ""
	controller.messages = append(controller.messages, models.ChatMessage{
		Role: models.ChatRoleAssistant,
		Text: replyText(payload),
	})
	return nil
}

func (controller *ChatController) Messages() []models.ChatMessage {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	out := make([]models.ChatMessage, len(controller.messages))
	copy(out, controller.messages)
	return out
}

func (controller *ChatController) ErrorMessage() string {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.errorMessage
}

func (controller *ChatController) InFlight() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.submitting
}

// replyText digs the assistant's answer out of a backend-defined
// payload. The chat services have used different field names over time.
func replyText(payload map[string]any) string {
	for _, key := range []string{"response", "reply", "answer", "message"} {
		if text, ok := payload[key].(string); ok && strings.TrimSpace(text) != "" {
			return text
		}
	}
	return ChatFallbackReply
}
