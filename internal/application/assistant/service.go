package assistant

import (
	"github.com/jhoicas/scope3-api/internal/application/dto"
	"github.com/jhoicas/scope3-api/internal/application/ports"
	"github.com/jhoicas/scope3-api/internal/domain"
)

// Service conversaciones del asistente por usuario.
type Service struct {
	store ports.SessionStore[*Conversation]
}

// NewService construye el servicio.
func NewService(store ports.SessionStore[*Conversation]) *Service {
	return &Service{store: store}
}

// Send envía un mensaje. Sin ConversationID se abre una conversación nueva.
func (s *Service) Send(owner string, in dto.AssistantMessageRequest) (*dto.AssistantConversationDTO, error) {
	id := in.ConversationID
	var conv *Conversation
	if id == "" {
		conv = NewConversation()
		id = s.store.Create(owner, conv)
	} else {
		var ok bool
		if conv, ok = s.store.Get(owner, id); !ok {
			return nil, domain.ErrNotFound
		}
	}
	if _, ok := conv.Send(in.Text); !ok {
		return nil, &domain.ValidationError{Fields: map[string]string{"text": "Escriba un mensaje"}}
	}
	return toConversationDTO(id, conv), nil
}

func toConversationDTO(id string, c *Conversation) *dto.AssistantConversationDTO {
	msgs := c.Messages()
	out := &dto.AssistantConversationDTO{ID: id, Messages: make([]dto.AssistantMessageDTO, 0, len(msgs))}
	for _, m := range msgs {
		out.Messages = append(out.Messages, dto.AssistantMessageDTO{
			ID: m.ID, Text: m.Text, IsBot: m.IsBot, Timestamp: m.Timestamp,
		})
	}
	if n := len(msgs); n > 0 {
		out.Reply = msgs[n-1].Text
	}
	return out
}
