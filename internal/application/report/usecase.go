// Package report genera los reportes descargables de emisiones.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/scope3-api/internal/application/analytics"
	"github.com/jhoicas/scope3-api/internal/application/dto"
	"github.com/jhoicas/scope3-api/internal/application/feedback"
	"github.com/jhoicas/scope3-api/internal/domain"
)

// Template tipo de reporte.
type Template struct {
	Key         string
	Title       string
	Description string
}

// Templates tipos de reporte en el orden en que se ofrecen.
var Templates = []Template{
	{"executive", "Executive Summary", "High-level overview of emissions performance"},
	{"detailed", "Detailed Analysis", "Comprehensive breakdown by category and supplier"},
	{"compliance", "Compliance Report", "Formatted for regulatory submissions"},
	{"action", "Action Plan", "Recommended actions for emission reduction"},
}

// Period período del reporte.
type Period struct {
	Key   string
	Label string
}

// Periods períodos seleccionables.
var Periods = []Period{
	{"current-month", "Current Month"},
	{"current-quarter", "Current Quarter"},
	{"current-year", "Current Year"},
	{"custom", "Custom Range"},
}

// Request reporte ya validado que recibe el generador.
type Request struct {
	Template    Template
	Period      Period
	GeneratedAt time.Time
}

// Generator produce el documento del reporte.
type Generator interface {
	GenerateReport(ctx context.Context, req Request, data analytics.ReportData) ([]byte, error)
}

// UseCase valida la solicitud y delega la generación.
type UseCase struct {
	gen Generator
	now func() time.Time
	log zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(gen Generator, log zerolog.Logger) *UseCase {
	return &UseCase{gen: gen, now: time.Now, log: log}
}

// Options tipos y períodos disponibles.
func (uc *UseCase) Options() dto.ReportOptionsDTO {
	out := dto.ReportOptionsDTO{
		Templates: make([]dto.ReportTemplateDTO, 0, len(Templates)),
		Periods:   make([]dto.ReportPeriodDTO, 0, len(Periods)),
	}
	for _, t := range Templates {
		out.Templates = append(out.Templates, dto.ReportTemplateDTO{Key: t.Key, Title: t.Title, Description: t.Description})
	}
	for _, p := range Periods {
		out.Periods = append(out.Periods, dto.ReportPeriodDTO{Key: p.Key, Label: p.Label})
	}
	return out
}

// Generate exige tipo y período. Acepta la clave o el título (sin distinguir mayúsculas).
func (uc *UseCase) Generate(ctx context.Context, in dto.GenerateReportRequest) (*dto.GeneratedReport, error) {
	tpl, tplOK := findTemplate(in.Type)
	per, perOK := findPeriod(in.Period)
	if !tplOK || !perOK {
		fields := map[string]string{}
		if !tplOK {
			fields["type"] = "Seleccione un tipo de reporte"
		}
		if !perOK {
			fields["period"] = "Seleccione un período"
		}
		return nil, &domain.ValidationError{Fields: fields}
	}

	req := Request{Template: tpl, Period: per, GeneratedAt: uc.now()}
	content, err := uc.gen.GenerateReport(ctx, req, analytics.SampleReportData())
	if err != nil {
		return nil, fmt.Errorf("report: generar %s: %w", tpl.Key, err)
	}
	uc.log.Info().Str("type", tpl.Key).Str("period", per.Key).Int("bytes", len(content)).Msg("reporte generado")

	return &dto.GeneratedReport{
		Filename:    fmt.Sprintf("scope3-%s-%s.pdf", tpl.Key, per.Key),
		ContentType: "application/pdf",
		Content:     content,
		Notice: feedback.Success("Reporte generado",
			fmt.Sprintf("El reporte %s para %s está listo para descargar", tpl.Title, per.Label)),
	}, nil
}

func findTemplate(s string) (Template, bool) {
	s = strings.TrimSpace(s)
	for _, t := range Templates {
		if strings.EqualFold(s, t.Key) || strings.EqualFold(s, t.Title) {
			return t, true
		}
	}
	return Template{}, false
}

func findPeriod(s string) (Period, bool) {
	s = strings.TrimSpace(s)
	for _, p := range Periods {
		if strings.EqualFold(s, p.Key) || strings.EqualFold(s, p.Label) {
			return p, true
		}
	}
	return Period{}, false
}
