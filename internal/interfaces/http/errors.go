package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/scope3-api/internal/application/dto"
	"github.com/jhoicas/scope3-api/internal/application/feedback"
	"github.com/jhoicas/scope3-api/internal/domain"
)

// statusFor traduce un error de dominio a código HTTP y código de error.
//
//	validación → 422 · lectura/tipo no soportado → 400 · destino → 502
//	ocupado/no disponible → 409 · inexistente → 404 · otro → 500
func statusFor(err error) (int, string) {
	var (
		validationErr  *domain.ValidationError
		parseErr       *domain.ParseError
		unsupportedErr *domain.UnsupportedInputError
		submissionErr  *domain.SubmissionError
	)
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusUnprocessableEntity, "VALIDATION"
	case errors.As(err, &unsupportedErr):
		if unsupportedErr.RequiresBackend() {
			return fiber.StatusBadRequest, "BACKEND_REQUIRED"
		}
		return fiber.StatusBadRequest, "UNSUPPORTED_FILE"
	case errors.As(err, &parseErr):
		return fiber.StatusBadRequest, "PARSE_ERROR"
	case errors.As(err, &submissionErr):
		return fiber.StatusBadGateway, "SUBMISSION_FAILED"
	case errors.Is(err, domain.ErrParseInProgress):
		return fiber.StatusConflict, "BUSY"
	case errors.Is(err, domain.ErrStepNotReady), errors.Is(err, domain.ErrNothingToConfirm), errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "NOT_READY"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// writeError responde con ErrorResponse. Los errores internos no exponen el detalle.
func writeError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	notice := feedback.FromError(err)
	body := dto.ErrorResponse{Code: code, Message: err.Error(), Notice: &notice}
	if status == fiber.StatusInternalServerError {
		body.Message = "error interno"
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		body.Fields = validationErr.Fields
	}
	return c.Status(status).JSON(body)
}

// writeStateError responde con el estado de la sesión y el aviso del fallo,
// para que el cliente no pierda lo capturado.
func writeStateError(c *fiber.Ctx, err error, state interface{}) error {
	status, _ := statusFor(err)
	return c.Status(status).JSON(state)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
