package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrStepNotReady     = errors.New("el envío solo está disponible en el paso de revisión")
	ErrParseInProgress  = errors.New("ya hay un archivo en procesamiento")
	ErrNothingToConfirm = errors.New("no hay registros en vista previa para confirmar")
)

// ValidationError agrupa los errores por campo de un formulario.
// Se recupera localmente: nunca es un fallo del sistema.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// ParseError el archivo no se pudo interpretar como tabla.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error al leer el archivo: %s: %v", e.Reason, e.Err)
	}
	return "error al leer el archivo: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedInputError tipo de archivo que este servicio no procesa.
type UnsupportedInputError struct {
	Extension    string
	Reason       string
	NeedsBackend bool // documentos/imágenes: se procesarían en un servicio externo
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("archivo .%s no soportado: %s", e.Extension, e.Reason)
}

// RequiresBackend indica si el archivo es procesable con un backend externo.
func (e *UnsupportedInputError) RequiresBackend() bool { return e.NeedsBackend }

// SubmissionError el destino de envío reportó un fallo. El estado local se conserva.
type SubmissionError struct {
	Records int
	Err     error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("envío de %d registros: %v", e.Records, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
