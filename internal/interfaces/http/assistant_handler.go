package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/scope3-api/internal/application/assistant"
	"github.com/jhoicas/scope3-api/internal/application/dto"
)

// AssistantHandler expone el asistente de navegación.
type AssistantHandler struct {
	svc *assistant.Service
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(svc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

// Send godoc
// @Summary      Enviar mensaje al asistente
// @Description  Sin conversation_id abre una conversación nueva (con saludo).
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AssistantMessageRequest  true  "mensaje"
// @Success      200   {object}  dto.AssistantConversationDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/assistant/messages [post]
func (h *AssistantHandler) Send(c *fiber.Ctx) error {
	var in dto.AssistantMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Send(GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
