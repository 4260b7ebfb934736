package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	Stats      []StatCardDTO      `json:"stats"`
	Categories []CategoryShareDTO `json:"categories"` // desglose por categoría, de mayor a menor

	// Registros enviados por el usuario en esta instancia (formulario + lotes).
	SubmittedRecords int `json:"submitted_records"`
}

// StatCardDTO tarjeta de KPI.
type StatCardDTO struct {
	Title  string `json:"title"`
	Value  string `json:"value"`  // ej: "12,450 tCO2e"
	Change string `json:"change"` // ej: "+2.3%"
}

// CategoryShareDTO participación de una categoría en el total.
type CategoryShareDTO struct {
	Category   string          `json:"category"`
	Emissions  decimal.Decimal `json:"emissions"` // tCO2e
	Percentage int             `json:"percentage"`
	Label      string          `json:"label"` // ej: "5,602 tCO2e"
}
