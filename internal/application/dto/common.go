package dto

import "github.com/jhoicas/scope3-api/internal/application/feedback"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"` // errores por campo (validación)
	Notice  *feedback.Notice  `json:"notice,omitempty"`
}

// HealthResponse salida de /health.
type HealthResponse struct {
	Status string `json:"status"`
	App    string `json:"app"`
}
