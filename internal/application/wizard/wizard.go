// Package wizard implementa el formulario de captura de emisiones en 5 pasos:
//
//	1. Categoría y proveedor
//	2. Actividad y periodo
//	3. Cantidad y unidad
//	4. Factor de emisión y notas
//	5. Revisión y envío
//
// Solo se avanza si los campos del paso actual son válidos. El registro se
// materializa únicamente al enviar desde el paso 5.
package wizard

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/scope3-api/internal/application/feedback"
	"github.com/jhoicas/scope3-api/internal/application/ports"
	"github.com/jhoicas/scope3-api/internal/domain"
	"github.com/jhoicas/scope3-api/internal/domain/emissions"
	"github.com/jhoicas/scope3-api/internal/domain/entity"
)

const (
	FirstStep = 1
	LastStep  = 5
)

// StepLabels etiqueta de cada paso (índice = paso - 1).
var StepLabels = []string{
	"Categoría y proveedor",
	"Descripción de la actividad",
	"Cantidad y unidad",
	"Factor de emisión y notas",
	"Revisión y envío",
}

// Draft borrador del registro; cantidad y factor se guardan como texto hasta el envío.
type Draft struct {
	Category       string
	Supplier       string
	Activity       string
	Period         string
	Quantity       string
	Unit           string
	EmissionFactor string
	Description    string
}

// Patch cambios parciales al borrador (nil = sin cambio).
type Patch struct {
	Category       *string
	Supplier       *string
	Activity       *string
	Period         *string
	Quantity       *string
	Unit           *string
	EmissionFactor *string
	Description    *string
}

// Review vista de solo lectura del paso 5.
type Review struct {
	Draft          Draft
	TotalEmissions decimal.Decimal // redondeado a 2 decimales
}

// Result resultado de un envío exitoso.
type Result struct {
	Record         entity.EmissionRecord
	TotalEmissions decimal.Decimal
	Notice         feedback.Notice
}

// Wizard mantiene el estado de un formulario. Seguro para uso concurrente.
type Wizard struct {
	mu     sync.Mutex
	step   int
	draft  Draft
	errors FieldErrors
}

// New crea un formulario en el paso 1 con el borrador vacío.
func New() *Wizard {
	return &Wizard{step: FirstStep, errors: FieldErrors{}}
}

// Step paso actual (1..5).
func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Draft copia del borrador actual.
func (w *Wizard) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Errors copia de los errores por campo visibles.
func (w *Wizard) Errors() FieldErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	return copyErrors(w.errors)
}

// Update aplica cambios al borrador y limpia el error de los campos tocados.
func (w *Wizard) Update(p Patch) {
	w.mu.Lock()
	defer w.mu.Unlock()
	set := func(field string, dst *string, v *string) {
		if v == nil {
			return
		}
		*dst = *v
		delete(w.errors, field)
	}
	set(FieldCategory, &w.draft.Category, p.Category)
	set(FieldSupplier, &w.draft.Supplier, p.Supplier)
	set(FieldActivity, &w.draft.Activity, p.Activity)
	set(FieldPeriod, &w.draft.Period, p.Period)
	set(FieldQuantity, &w.draft.Quantity, p.Quantity)
	set(FieldUnit, &w.draft.Unit, p.Unit)
	set(FieldEmissionFactor, &w.draft.EmissionFactor, p.EmissionFactor)
	set(FieldDescription, &w.draft.Description, p.Description)
}

// Advance valida el paso actual y, si es válido, pasa al siguiente (máximo 5).
// Si no, se queda en el mismo paso y devuelve *domain.ValidationError.
func (w *Wizard) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	errs := ValidateStep(w.step, w.draft)
	if len(errs) > 0 {
		for f, msg := range errs {
			w.errors[f] = msg
		}
		return &domain.ValidationError{Fields: copyErrors(errs)}
	}
	for _, f := range stepFields[w.step] {
		delete(w.errors, f)
	}
	if w.step < LastStep {
		w.step++
	}
	return nil
}

// Retreat vuelve al paso anterior (mínimo 1). Nunca valida.
func (w *Wizard) Retreat() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > FirstStep {
		w.step--
	}
}

// Review calcula el total a partir del borrador sin modificar el estado.
// Valores vacíos o no numéricos cuentan como 0.
func (w *Wizard) Review() Review {
	w.mu.Lock()
	defer w.mu.Unlock()
	return reviewOf(w.draft)
}

func reviewOf(d Draft) Review {
	total := emissions.Total(emissions.ParseOrZero(d.Quantity), emissions.ParseOrZero(d.EmissionFactor))
	return Review{Draft: d, TotalEmissions: emissions.Round(total)}
}

// Submit envía el registro al destino. Solo disponible en el paso 5.
// Si el destino falla se conserva el borrador para reintentar.
func (w *Wizard) Submit(ctx context.Context, owner string, sink ports.Submitter) (*Result, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != LastStep {
		return nil, domain.ErrStepNotReady
	}
	// El borrador puede haberse editado en el paso 5.
	if errs := ValidateAll(w.draft); len(errs) > 0 {
		for f, msg := range errs {
			w.errors[f] = msg
		}
		return nil, &domain.ValidationError{Fields: copyErrors(errs)}
	}

	record := w.record()
	if err := sink.SubmitRecords(ctx, owner, []entity.EmissionRecord{record}); err != nil {
		return nil, &domain.SubmissionError{Records: 1, Err: err}
	}

	total := emissions.Round(record.TotalEmissions())
	w.step = FirstStep
	w.draft = Draft{}
	w.errors = FieldErrors{}
	return &Result{
		Record:         record,
		TotalEmissions: total,
		Notice: feedback.Success("Datos enviados correctamente",
			fmt.Sprintf("Emisiones totales: %s tCO2e", emissions.Format(total))),
	}, nil
}

// record construye el registro; se asume el borrador ya validado.
func (w *Wizard) record() entity.EmissionRecord {
	q, _ := emissions.ParseNumber(w.draft.Quantity)
	ef, _ := emissions.ParseNumber(w.draft.EmissionFactor)
	return entity.EmissionRecord{
		Category:       w.draft.Category,
		Supplier:       w.draft.Supplier,
		Activity:       w.draft.Activity,
		Period:         w.draft.Period,
		Quantity:       q,
		Unit:           strings.ToLower(w.draft.Unit),
		EmissionFactor: ef,
		Description:    w.draft.Description,
	}
}

// Snapshot estado consistente del formulario en un solo bloqueo.
type Snapshot struct {
	Step   int
	Draft  Draft
	Errors FieldErrors
	Review Review
}

// Snapshot devuelve paso, borrador, errores y revisión a la vez.
func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Snapshot{
		Step:   w.step,
		Draft:  w.draft,
		Errors: copyErrors(w.errors),
		Review: reviewOf(w.draft),
	}
}

func copyErrors(in FieldErrors) FieldErrors {
	out := make(FieldErrors, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
