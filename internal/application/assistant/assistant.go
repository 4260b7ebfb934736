// Package assistant responde preguntas de navegación con una búsqueda de
// palabras clave. No hay modelo de lenguaje detrás: la respuesta es una
// función pura del texto.
package assistant

import (
	"strings"
	"sync"
	"time"
)

// Greeting primer mensaje de toda conversación.
const Greeting = "¡Hola! Soy tu asistente de emisiones de Alcance 3. ¿En qué te ayudo a navegar la aplicación hoy?"

type topic struct {
	keywords []string
	answer   string
}

// Se evalúan en orden; gana el primer tema con alguna palabra clave presente.
var topics = []topic{
	{[]string{"dashboard", "tablero"},
		"El tablero muestra el resumen de emisiones totales, el desglose por categoría y los principales proveedores. Accede desde el menú de navegación."},
	{[]string{"data", "input", "datos", "captura"},
		"Usa la página de captura de datos para agregar emisiones de categorías como bienes adquiridos, transporte y viajes de negocio, con el formulario paso a paso o con una carga CSV."},
	{[]string{"analysis", "chart", "análisis", "analisis", "gráfico", "grafico"},
		"La página de análisis ofrece gráficos y hallazgos sobre tus patrones de emisión y su evolución en el tiempo."},
	{[]string{"report", "reporte", "informe"},
		"Genera reportes completos en la sección de reportes para exportar y compartir tus datos y análisis de emisiones."},
	{[]string{"supplier", "proveedor"},
		"Consulta en el tablero los proveedores ordenados según sus logros de reducción de emisiones."},
	{[]string{"help", "ayuda"},
		"Puedo ayudarte con: navegación del tablero, captura de datos, análisis, reportes e información de proveedores. ¡Pregunta!"},
}

// DefaultAnswer respuesta cuando ningún tema coincide.
const DefaultAnswer = "Puedo ayudarte a navegar la aplicación. Prueba preguntar por 'tablero', 'captura de datos', 'análisis', 'reportes' o 'proveedores'."

// Respond devuelve la respuesta para el texto del usuario (sin distinguir mayúsculas).
func Respond(text string) string {
	lower := strings.ToLower(text)
	for _, t := range topics {
		for _, k := range t.keywords {
			if strings.Contains(lower, k) {
				return t.answer
			}
		}
	}
	return DefaultAnswer
}

// Message mensaje de la conversación.
type Message struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	IsBot     bool      `json:"is_bot"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation historial de mensajes, comenzando por el saludo.
type Conversation struct {
	mu       sync.Mutex
	messages []Message
	now      func() time.Time
}

// NewConversation crea la conversación con el saludo.
func NewConversation() *Conversation {
	c := &Conversation{now: time.Now}
	c.append(Greeting, true)
	return c
}

// Send agrega el mensaje del usuario y la respuesta. Un texto en blanco se ignora.
func (c *Conversation) Send(text string) (reply Message, ok bool) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.append(text, false)
	return c.append(Respond(text), true), true
}

// Messages copia del historial.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

func (c *Conversation) append(text string, bot bool) Message {
	m := Message{ID: len(c.messages) + 1, Text: text, IsBot: bot, Timestamp: c.now()}
	c.messages = append(c.messages, m)
	return m
}
