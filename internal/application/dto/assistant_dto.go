package dto

import "time"

// AssistantMessageRequest entrada de POST /api/assistant/messages.
type AssistantMessageRequest struct {
	ConversationID string `json:"conversation_id,omitempty"`
	Text           string `json:"text"`
}

// AssistantMessageDTO mensaje del historial.
type AssistantMessageDTO struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	IsBot     bool      `json:"is_bot"`
	Timestamp time.Time `json:"timestamp"`
}

// AssistantConversationDTO conversación completa más la última respuesta.
type AssistantConversationDTO struct {
	ID       string                `json:"id"`
	Reply    string                `json:"reply"`
	Messages []AssistantMessageDTO `json:"messages"`
}
