package dto

import "github.com/jhoicas/scope3-api/internal/application/feedback"

// ReportTemplateDTO tipo de reporte disponible.
type ReportTemplateDTO struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ReportPeriodDTO período seleccionable.
type ReportPeriodDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ReportOptionsDTO respuesta de GET /api/reports/templates.
type ReportOptionsDTO struct {
	Templates []ReportTemplateDTO `json:"templates"`
	Periods   []ReportPeriodDTO   `json:"periods"`
}

// GenerateReportRequest entrada de POST /api/reports.
type GenerateReportRequest struct {
	Type   string `json:"type"`   // executive | detailed | compliance | action
	Period string `json:"period"` // current-month | current-quarter | current-year | custom
}

// GeneratedReport documento listo para descargar.
type GeneratedReport struct {
	Filename    string
	ContentType string
	Content     []byte
	Notice      feedback.Notice
}
