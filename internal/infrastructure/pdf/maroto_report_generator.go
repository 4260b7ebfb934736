// Package pdf genera los reportes de emisiones en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tipo de reporte + período  │  Fecha de generación  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total tCO2e | categorías | proveedores | período  │
//	│  SECCIONES según el tipo (categorías, tendencia, riesgo…)   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de referencia + leyenda                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/scope3-api/internal/application/analytics"
	"github.com/jhoicas/scope3-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRisk    = map[string]*props.Color{
		"High":   {Red: 185, Green: 28, Blue: 28},
		"Medium": {Red: 194, Green: 120, Blue: 3},
		"Low":    {Red: 21, Green: 128, Blue: 61},
	}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.Generator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

// GenerateReport arma el PDF del tipo pedido y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReport(_ context.Context, req report.Request, data analytics.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(req.Template.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(req))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data))

	switch req.Template.Key {
	case "executive":
		m.AddRows(categoryRows("Principales categorías", data.TopCategories)...)
		m.AddRows(listRows("Recomendaciones", data.Recommendations)...)
	case "detailed":
		m.AddRows(categoryRows("Principales categorías", data.TopCategories)...)
		m.AddRows(monthlyRows(data.Monthly)...)
		m.AddRows(supplierRows("Proveedores", data.SupplierRisks)...)
	case "compliance":
		m.AddRows(categoryRows("Emisiones por categoría (Alcance 3)", data.TopCategories)...)
		m.AddRows(listRows("Metodología", []string{
			"Emisiones calculadas como cantidad de actividad × factor de emisión.",
			"Valores expresados en toneladas de CO2 equivalente (tCO2e).",
			"Período de reporte: " + data.Period + ".",
		})...)
	case "action":
		m.AddRows(listRows("Acciones recomendadas", data.Recommendations)...)
		m.AddRows(supplierRows("Proveedores prioritarios", highRisk(data.SupplierRisks))...)
	default:
		return nil, fmt.Errorf("pdf: tipo de reporte desconocido %q", req.Template.Key)
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(req))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(req report.Request) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(req.Template.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Emisiones de Alcance 3 · "+req.Period.Label, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(req.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func summaryRow(data analytics.ReportData) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 2, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 7, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		kpi("Emisiones totales", thousands(data.TotalEmissions)+" tCO2e"),
		kpi("Categorías", fmt.Sprint(data.Categories)),
		kpi("Proveedores", fmt.Sprint(data.Suppliers)),
		kpi("Período", data.Period),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(strings.ToUpper(title), props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 4,
		}),
	))
}

func categoryRows(title string, cats []analytics.ReportCategory) []core.Row {
	rows := []core.Row{sectionTitle(title)}
	for _, c := range cats {
		rows = append(rows, row.New(6).Add(
			col.New(7).Add(text.New(c.Name, props.Text{Size: 9, Top: 1})),
			col.New(3).Add(text.New(thousands(c.Emissions)+" tCO2e", props.Text{Size: 9, Top: 1, Align: align.Right})),
			col.New(2).Add(text.New(fmt.Sprintf("%d%%", c.Percentage), props.Text{Size: 9, Top: 1, Align: align.Right})),
		))
	}
	return rows
}

func monthlyRows(months []analytics.ReportMonth) []core.Row {
	rows := []core.Row{sectionTitle("Tendencia mensual vs. meta")}
	for _, mo := range months {
		diff := mo.Emissions.Sub(mo.Target)
		sign := ""
		if diff.IsPositive() {
			sign = "+"
		}
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(mo.Month, props.Text{Size: 9, Top: 1})),
			col.New(3).Add(text.New(thousands(mo.Emissions), props.Text{Size: 9, Top: 1, Align: align.Right})),
			col.New(3).Add(text.New("meta "+thousands(mo.Target), props.Text{Size: 9, Top: 1, Align: align.Right, Color: colorGray})),
			col.New(3).Add(text.New(sign+thousands(diff), props.Text{Size: 9, Top: 1, Align: align.Right})),
		))
	}
	return rows
}

func supplierRows(title string, suppliers []analytics.ReportSupplier) []core.Row {
	rows := []core.Row{sectionTitle(title)}
	for _, s := range suppliers {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(s.Supplier, props.Text{Size: 9, Top: 1})),
			col.New(3).Add(text.New(thousands(s.Emissions)+" tCO2e", props.Text{Size: 9, Top: 1, Align: align.Right})),
			col.New(3).Add(text.New(s.Risk, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right, Color: colorRisk[s.Risk]})),
		))
	}
	return rows
}

func listRows(title string, items []string) []core.Row {
	rows := []core.Row{sectionTitle(title)}
	for i, it := range items {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%d. %s", i+1, it), props.Text{Size: 9, Top: 1, Left: 2}),
		)))
	}
	return rows
}

func footerRow(req report.Request) core.Row {
	ref := fmt.Sprintf("scope3:%s:%s:%s", req.Template.Key, req.Period.Key, req.GeneratedAt.UTC().Format("20060102T150405Z"))
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Referencia: "+ref, props.Text{Size: 7, Top: 6, Left: 3, Color: colorGray}),
			text.New("Reporte generado a partir de los datos de muestra del tablero.", props.Text{
				Size: 7, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func highRisk(in []analytics.ReportSupplier) []analytics.ReportSupplier {
	var out []analytics.ReportSupplier
	for _, s := range in {
		if s.Risk != "Low" {
			out = append(out, s)
		}
	}
	return out
}

// thousands entero con comas de miles: 12450 → "12,450", -20 → "-20".
func thousands(d decimal.Decimal) string {
	s := d.Round(0).Abs().StringFixed(0)
	n := len(s)
	buf := make([]byte, 0, n+n/3+1)
	if d.Round(0).IsNegative() {
		buf = append(buf, '-')
	}
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
