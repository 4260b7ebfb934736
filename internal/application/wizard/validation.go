package wizard

import (
	"unicode/utf8"

	"github.com/jhoicas/scope3-api/internal/domain/emissions"
	"github.com/jhoicas/scope3-api/internal/domain/entity"
)

// Nombres de campo (coinciden con las claves JSON del borrador).
const (
	FieldCategory       = "category"
	FieldSupplier       = "supplier"
	FieldActivity       = "activity"
	FieldPeriod         = "period"
	FieldQuantity       = "quantity"
	FieldUnit           = "unit"
	FieldEmissionFactor = "emissionFactor"
	FieldDescription    = "description"
)

const minSupplierLen = 3

// FieldErrors mensaje de error por campo. Vacío = válido.
type FieldErrors map[string]string

// stepFields campos que valida cada paso. El paso 5 es solo lectura.
var stepFields = map[int][]string{
	1: {FieldCategory, FieldSupplier},
	2: {FieldActivity, FieldPeriod},
	3: {FieldQuantity, FieldUnit},
	4: {FieldEmissionFactor, FieldDescription},
	5: {},
}

// StepFields devuelve los campos que pertenecen al paso indicado.
func StepFields(step int) []string {
	return append([]string(nil), stepFields[step]...)
}

// ValidateStep valida únicamente los campos del paso; los demás se ignoran
// aunque estén vacíos, para poder avanzar con pasos posteriores sin llenar.
func ValidateStep(step int, d Draft) FieldErrors {
	errs := FieldErrors{}
	for _, f := range stepFields[step] {
		if msg := validateField(f, d); msg != "" {
			errs[f] = msg
		}
	}
	return errs
}

// ValidateAll valida los pasos 1 a 4.
func ValidateAll(d Draft) FieldErrors {
	errs := FieldErrors{}
	for step := FirstStep; step < LastStep; step++ {
		for f, msg := range ValidateStep(step, d) {
			errs[f] = msg
		}
	}
	return errs
}

func validateField(field string, d Draft) string {
	switch field {
	case FieldCategory:
		if d.Category == "" {
			return "La categoría Scope 3 es obligatoria"
		}
		if !entity.IsCategory(d.Category) {
			return "Categoría Scope 3 desconocida"
		}
	case FieldSupplier:
		if utf8.RuneCountInString(d.Supplier) < minSupplierLen {
			return "El proveedor/fuente debe tener al menos 3 caracteres"
		}
	case FieldActivity:
		if d.Activity == "" {
			return "La descripción de la actividad es obligatoria"
		}
	case FieldPeriod:
		if d.Period == "" {
			return "El periodo de reporte es obligatorio"
		}
	case FieldQuantity:
		q, ok := emissions.ParseNumber(d.Quantity)
		if !ok || !q.IsPositive() {
			return "La cantidad debe ser un número mayor que 0"
		}
	case FieldUnit:
		if d.Unit == "" {
			return "La unidad es obligatoria"
		}
		if !entity.IsUnit(d.Unit) {
			return "Unidad no admitida"
		}
	case FieldEmissionFactor:
		ef, ok := emissions.ParseNumber(d.EmissionFactor)
		if !ok || ef.IsNegative() {
			return "El factor de emisión debe ser un número mayor o igual a 0"
		}
	}
	return ""
}
