package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/scope3-api/internal/application/feedback"
)

// BatchSummaryDTO estadísticas de la vista previa.
type BatchSummaryDTO struct {
	TotalRecords    int             `json:"total_records"`
	TotalEmissions  decimal.Decimal `json:"total_emissions"`
	TotalLabel      string          `json:"total_label"` // ej: "1.75 tCO2e"
	UniqueSuppliers int             `json:"unique_suppliers"`
	DroppedRows     int             `json:"dropped_rows"`
}

// BatchRecordDTO fila de la tabla de vista previa.
type BatchRecordDTO struct {
	Category       string          `json:"scope3_category"`
	Supplier       string          `json:"supplier_name"`
	Activity       string          `json:"activity_description"`
	Period         string          `json:"reporting_period"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	EmissionFactor decimal.Decimal `json:"emission_factor"`
	Notes          string          `json:"notes"`
	Emissions      decimal.Decimal `json:"emissions"` // cantidad × factor, 2 decimales
}

// BatchResponse estado de una sesión de carga por lotes.
type BatchResponse struct {
	ID                 string           `json:"id"`
	State              string           `json:"state"` // idle | parsing | preview
	Busy               bool             `json:"busy"`
	Filename           string           `json:"filename,omitempty"`
	Summary            *BatchSummaryDTO `json:"summary,omitempty"`
	Sample             []BatchRecordDTO `json:"sample"`
	Remainder          int              `json:"remainder"` // registros no mostrados
	LastError          *feedback.Notice `json:"last_error,omitempty"`
	AcceptedExtensions []string         `json:"accepted_extensions"`
}

// BatchActionResponse respuesta de subir/confirmar/descartar.
type BatchActionResponse struct {
	Batch  BatchResponse   `json:"batch"`
	Notice feedback.Notice `json:"notice"`
}
