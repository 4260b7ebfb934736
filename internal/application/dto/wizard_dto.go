package dto

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/scope3-api/internal/application/feedback"
	"github.com/jhoicas/scope3-api/internal/domain/entity"
)

// WizardDraftDTO borrador del formulario tal como lo escribió el usuario.
type WizardDraftDTO struct {
	Category       string `json:"category"`
	Supplier       string `json:"supplier"`
	Activity       string `json:"activity"`
	Period         string `json:"period"`
	Quantity       string `json:"quantity"`
	Unit           string `json:"unit"`
	EmissionFactor string `json:"emissionFactor"`
	Description    string `json:"description"`
}

// UpdateWizardDraftRequest cambios parciales; los campos ausentes no se tocan.
// quantity y emissionFactor aceptan número o texto ("10", 10, "0.15", 0.15).
type UpdateWizardDraftRequest struct {
	Category       *string      `json:"category"`
	Supplier       *string      `json:"supplier"`
	Activity       *string      `json:"activity"`
	Period         *string      `json:"period"`
	Quantity       *NumericText `json:"quantity" swaggertype:"string" example:"10"`
	Unit           *string      `json:"unit"`
	EmissionFactor *NumericText `json:"emissionFactor" swaggertype:"string" example:"0.15"`
	Description    *string      `json:"description"`
}

// NumericText valor de un campo numérico tal como lo escribió el usuario.
// Se guarda como texto; la validación del paso decide si es un número válido.
type NumericText string

// UnmarshalJSON acepta un string JSON o un número JSON (se conserva su texto literal).
func (n *NumericText) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("se esperaba un número o texto: %w", err)
	}
	*n = NumericText(num.String())
	return nil
}

// StringPtr convierte a *string conservando nil.
func (n *NumericText) StringPtr() *string {
	if n == nil {
		return nil
	}
	s := string(*n)
	return &s
}

// WizardStepDTO un paso del indicador de progreso.
type WizardStepDTO struct {
	Number    int    `json:"number"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// WizardReviewDTO vista del paso 5.
type WizardReviewDTO struct {
	Draft          WizardDraftDTO  `json:"draft"`
	TotalEmissions decimal.Decimal `json:"total_emissions"`
	TotalLabel     string          `json:"total_label"` // ej: "1.50 tCO2e"
}

// WizardResponse estado de una sesión de captura.
type WizardResponse struct {
	ID         string            `json:"id"`
	Step       int               `json:"step"`
	TotalSteps int               `json:"total_steps"`
	Steps      []WizardStepDTO   `json:"steps"`
	Draft      WizardDraftDTO    `json:"draft"`
	Errors     map[string]string `json:"errors"`
	Review     *WizardReviewDTO  `json:"review,omitempty"` // solo en el paso 5
	CanGoBack  bool              `json:"can_go_back"`
	CanSubmit  bool              `json:"can_submit"`
	Options    WizardOptionsDTO  `json:"options"`
}

// WizardOptionsDTO valores permitidos para los selectores.
type WizardOptionsDTO struct {
	Categories []string `json:"categories"`
	Units      []string `json:"units"`
}

// WizardActionResponse respuesta de avanzar/retroceder/enviar.
type WizardActionResponse struct {
	Wizard WizardResponse   `json:"wizard"`
	Notice *feedback.Notice `json:"notice,omitempty"`
}

// WizardSubmitResponse respuesta del envío exitoso.
type WizardSubmitResponse struct {
	Wizard         WizardResponse        `json:"wizard"`
	Notice         feedback.Notice       `json:"notice"`
	Record         entity.EmissionRecord `json:"record"`
	TotalEmissions decimal.Decimal       `json:"total_emissions"`
}
