package dto

import "github.com/shopspring/decimal"

// AnalysisDTO respuesta de GET /api/analysis.
type AnalysisDTO struct {
	Categories []CategoryShareDTO `json:"categories"`
	Monthly    []MonthlyPointDTO  `json:"monthly"`
	Suppliers  []SupplierRiskDTO  `json:"suppliers"`
	Insights   []InsightDTO       `json:"insights"`
}

// MonthlyPointDTO emisiones del mes contra la meta.
type MonthlyPointDTO struct {
	Month     string          `json:"month"`
	Emissions decimal.Decimal `json:"emissions"`
	Target    decimal.Decimal `json:"target"`
	// Porcentaje sobre (+) o bajo (-) la meta, 1 decimal.
	VsTargetPct decimal.Decimal `json:"vs_target_pct"`
}

// SupplierRiskDTO fila de la tabla de proveedores.
type SupplierRiskDTO struct {
	Supplier  string          `json:"supplier"`
	Emissions decimal.Decimal `json:"emissions"`
	Risk      string          `json:"risk"` // High | Medium | Low
}

// InsightDTO hallazgo destacado.
type InsightDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
