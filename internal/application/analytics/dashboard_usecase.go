// Package analytics contiene los casos de uso del tablero y de la vista de análisis.
package analytics

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/scope3-api/internal/application/dto"
)

var hundred = decimal.NewFromInt(100)

// SubmissionCounter cuenta los registros que un usuario ya envió.
type SubmissionCounter interface {
	CountByOwner(ctx context.Context, owner string) (int, error)
}

// DashboardUseCase arma el resumen del tablero y la vista de análisis.
type DashboardUseCase struct {
	counter SubmissionCounter
	printer *message.Printer
	log     zerolog.Logger
}

// NewDashboardUseCase construye el caso de uso. counter puede ser nil.
func NewDashboardUseCase(counter SubmissionCounter, log zerolog.Logger) *DashboardUseCase {
	return &DashboardUseCase{
		counter: counter,
		printer: message.NewPrinter(language.English),
		log:     log,
	}
}

// GetSummary KPIs, desglose por categoría y registros enviados por el usuario.
// Un fallo al contar los envíos no invalida el resumen: se informa 0.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, owner string) (*dto.DashboardSummaryDTO, error) {
	out := &dto.DashboardSummaryDTO{
		Stats:      make([]dto.StatCardDTO, 0, len(sampleStats)),
		Categories: uc.categories(false),
	}
	for _, s := range sampleStats {
		value := s.value
		if value == "" {
			value = uc.tonnes(sampleTotalEmissions)
		}
		out.Stats = append(out.Stats, dto.StatCardDTO{Title: s.title, Value: value, Change: s.change})
	}

	if uc.counter != nil {
		n, err := uc.counter.CountByOwner(ctx, owner)
		if err != nil {
			uc.log.Warn().Err(err).Str("owner", owner).Msg("no se pudo contar los envíos")
		} else {
			out.SubmittedRecords = n
		}
	}
	return out, nil
}

// GetAnalysis categorías, tendencia mensual contra la meta, riesgo por proveedor y hallazgos.
func (uc *DashboardUseCase) GetAnalysis(_ context.Context) (*dto.AnalysisDTO, error) {
	out := &dto.AnalysisDTO{
		Categories: uc.categories(true),
		Monthly:    make([]dto.MonthlyPointDTO, 0, len(sampleMonthly)),
		Suppliers:  make([]dto.SupplierRiskDTO, 0, len(sampleSupplierRisks)),
	}
	for _, m := range sampleMonthly {
		e, t := decimal.NewFromInt(m.emissions), decimal.NewFromInt(m.target)
		out.Monthly = append(out.Monthly, dto.MonthlyPointDTO{
			Month:       m.month,
			Emissions:   e,
			Target:      t,
			VsTargetPct: e.Sub(t).Div(t).Mul(hundred).Round(1),
		})
	}
	for _, s := range sampleSupplierRisks {
		out.Suppliers = append(out.Suppliers, dto.SupplierRiskDTO{
			Supplier: s.supplier, Emissions: decimal.NewFromInt(s.emissions), Risk: s.risk,
		})
	}

	top := sampleCategoryShares[0]
	out.Insights = []dto.InsightDTO{
		{Title: "Categoría de mayor impacto", Description: fmt.Sprintf("%s representa el %d%% de las emisiones totales", top.name, top.percentage)},
		{Title: "Desempeño frente a la meta", Description: "Actualmente 12% por encima de la meta mensual de emisiones"},
		{Title: "Oportunidad de mejora", Description: "Concentrarse en los 3 principales proveedores ofrece un potencial de reducción del 65%"},
		{Title: "Tendencia", Description: "Las emisiones aumentaron 8.5% frente al trimestre anterior"},
	}
	return out, nil
}

func (uc *DashboardUseCase) categories(short bool) []dto.CategoryShareDTO {
	out := make([]dto.CategoryShareDTO, 0, len(sampleCategoryShares))
	for _, c := range sampleCategoryShares {
		name := c.name
		if short {
			name = c.short
		}
		out = append(out, dto.CategoryShareDTO{
			Category:   name,
			Emissions:  decimal.NewFromInt(c.emissions),
			Percentage: c.percentage,
			Label:      uc.tonnes(c.emissions),
		})
	}
	return out
}

// tonnes formatea con separador de miles: 12450 → "12,450 tCO2e".
func (uc *DashboardUseCase) tonnes(v int64) string {
	return uc.printer.Sprintf("%d tCO2e", v)
}
