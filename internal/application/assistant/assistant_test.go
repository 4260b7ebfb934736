package assistant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/scope3-api/internal/application/assistant"
	"github.com/jhoicas/scope3-api/internal/application/dto"
	"github.com/jhoicas/scope3-api/internal/domain"
	"github.com/jhoicas/scope3-api/internal/infrastructure/memory"
)

func TestRespond_OrdenDeTemas(t *testing.T) {
	dashboard := assistant.Respond("dashboard")
	data := assistant.Respond("data")

	// "dashboard" se evalúa antes que "data"
	assert.Equal(t, dashboard, assistant.Respond("Dashboard DATA please"))
	assert.Equal(t, data, assistant.Respond("where do I input data for a report?"))
	assert.Equal(t, assistant.Respond("report"), assistant.Respond("quiero un REPORTE del proveedor"))
	assert.Equal(t, assistant.Respond("supplier"), assistant.Respond("suppliers ranking"))
	assert.Equal(t, assistant.Respond("help"), assistant.Respond("ayuda"))
	assert.Equal(t, assistant.DefaultAnswer, assistant.Respond("hola"))
	assert.NotEqual(t, dashboard, data)
}

func TestConversation_HistorialConSaludo(t *testing.T) {
	c := assistant.NewConversation()
	require.Len(t, c.Messages(), 1)
	assert.Equal(t, assistant.Greeting, c.Messages()[0].Text)

	_, ok := c.Send("   ")
	assert.False(t, ok)
	assert.Len(t, c.Messages(), 1)

	reply, ok := c.Send("show me a chart")
	require.True(t, ok)
	assert.True(t, reply.IsBot)
	assert.Equal(t, 3, reply.ID)
	msgs := c.Messages()
	require.Len(t, msgs, 3)
	assert.False(t, msgs[1].IsBot)
	assert.Equal(t, "show me a chart", msgs[1].Text)
}

func TestService_ConversacionPorUsuario(t *testing.T) {
	svc := assistant.NewService(memory.NewSessionStore[*assistant.Conversation](0))

	out, err := svc.Send("u1", dto.AssistantMessageRequest{Text: "help"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, assistant.Respond("help"), out.Reply)

	out, err = svc.Send("u1", dto.AssistantMessageRequest{ConversationID: out.ID, Text: "tablero"})
	require.NoError(t, err)
	assert.Len(t, out.Messages, 5)

	_, err = svc.Send("u2", dto.AssistantMessageRequest{ConversationID: out.ID, Text: "hola"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Send("u1", dto.AssistantMessageRequest{ConversationID: out.ID, Text: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
