// Package feedback define el resultado explícito que devuelve cada operación
// para que la capa de presentación lo muestre (título + descripción).
package feedback

import (
	"errors"

	"github.com/jhoicas/scope3-api/internal/domain"
)

// Variant tipo de aviso.
type Variant string

const (
	VariantSuccess     Variant = "success"
	VariantDestructive Variant = "destructive"
)

// Notice aviso para el usuario.
type Notice struct {
	Variant     Variant `json:"variant"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// OK indica si el aviso corresponde a una operación exitosa.
func (n Notice) OK() bool { return n.Variant == VariantSuccess }

// Success construye un aviso de éxito.
func Success(title, description string) Notice {
	return Notice{Variant: VariantSuccess, Title: title, Description: description}
}

// Failure construye un aviso de error.
func Failure(title, description string) Notice {
	return Notice{Variant: VariantDestructive, Title: title, Description: description}
}

// FromError traduce un error de dominio a un aviso. Nunca devuelve un aviso de éxito.
func FromError(err error) Notice {
	var (
		validationErr  *domain.ValidationError
		parseErr       *domain.ParseError
		unsupportedErr *domain.UnsupportedInputError
		submissionErr  *domain.SubmissionError
	)
	switch {
	case errors.As(err, &validationErr):
		return Failure("Datos incompletos", "Revise los campos marcados antes de continuar")
	case errors.As(err, &unsupportedErr):
		return Failure(unsupportedTitle(unsupportedErr), unsupportedErr.Reason)
	case errors.As(err, &parseErr):
		return Failure("Error al leer el CSV", parseErr.Reason)
	case errors.As(err, &submissionErr):
		return Failure("Error en el envío", "No se pudieron enviar los datos de emisiones; puede reintentar sin volver a capturarlos")
	case errors.Is(err, domain.ErrParseInProgress):
		return Failure("Procesando", err.Error())
	case errors.Is(err, domain.ErrStepNotReady), errors.Is(err, domain.ErrNothingToConfirm):
		return Failure("Acción no disponible", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return Failure("No encontrado", err.Error())
	default:
		return Failure("Error", "No se pudo completar la operación")
	}
}

// BackendRequiredTitle título para archivos que requieren procesamiento en servidor.
const BackendRequiredTitle = "Se requiere integración con backend"

func unsupportedTitle(e *domain.UnsupportedInputError) string {
	if e.RequiresBackend() {
		return BackendRequiredTitle
	}
	return "Tipo de archivo no soportado"
}
