package models

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type ChatbotRequest struct {
	UserInput string `json:"user_input" form:"user_input"`
}

type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
