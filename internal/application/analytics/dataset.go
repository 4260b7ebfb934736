package analytics

import "github.com/shopspring/decimal"

// Datos de muestra del tablero. No se recalculan a partir de los envíos: la
// instancia no guarda un histórico consolidado de emisiones.

type categoryShare struct {
	name       string
	short      string // nombre corto usado en los gráficos de análisis
	emissions  int64
	percentage int
}

type statCard struct {
	title, value, change string
}

type monthlyPoint struct {
	month     string
	emissions int64
	target    int64
}

type supplierRisk struct {
	supplier  string
	emissions int64
	risk      string
}

const (
	sampleTotalEmissions = 12450
	sampleCategories     = 15
	sampleSuppliers      = 84
	samplePeriod         = "Q2 2024"
)

var sampleStats = []statCard{
	{"Total Emissions", "", "+2.3%"}, // valor formateado desde sampleTotalEmissions
	{"Categories Tracked", "15", "+1 new"},
	{"Suppliers", "84", "+8.1%"},
	{"Reduction Target", "25%", "by 2030"},
}

var sampleCategoryShares = []categoryShare{
	{"Purchased Goods & Services", "Purchased Goods", 5602, 45},
	{"Transportation & Distribution", "Transportation", 3112, 25},
	{"Business Travel", "Business Travel", 1867, 15},
	{"Employee Commuting", "Employee Commuting", 1245, 10},
	{"Other Categories", "Other", 624, 5},
}

var sampleMonthly = []monthlyPoint{
	{"Jan", 980, 1000},
	{"Feb", 1120, 1000},
	{"Mar", 1050, 1000},
	{"Apr", 1180, 1000},
	{"May", 1090, 1000},
	{"Jun", 1030, 1000},
}

var sampleSupplierRisks = []supplierRisk{
	{"Supplier A", 2500, "High"},
	{"Supplier B", 1800, "Medium"},
	{"Supplier C", 1200, "Low"},
	{"Supplier D", 900, "Low"},
	{"Supplier E", 650, "Medium"},
}

var sampleRecommendations = []string{
	"Engage with top 5 suppliers to set emission reduction targets",
	"Implement green procurement policies for office supplies",
	"Optimize logistics routes to reduce transportation emissions",
	"Encourage remote work to reduce business travel",
}

// ReportData datos que alimentan un reporte PDF.
type ReportData struct {
	TotalEmissions  decimal.Decimal
	Categories      int
	Suppliers       int
	Period          string
	TopCategories   []ReportCategory
	Recommendations []string
	Monthly         []ReportMonth
	SupplierRisks   []ReportSupplier
}

// ReportCategory categoría destacada del reporte.
type ReportCategory struct {
	Name       string
	Emissions  decimal.Decimal
	Percentage int
}

// ReportMonth punto mensual (emisiones contra meta).
type ReportMonth struct {
	Month     string
	Emissions decimal.Decimal
	Target    decimal.Decimal
}

// ReportSupplier proveedor con su nivel de riesgo.
type ReportSupplier struct {
	Supplier  string
	Emissions decimal.Decimal
	Risk      string
}

// SampleReportData datos de muestra del reporte: resumen, las 3 categorías
// principales y recomendaciones.
func SampleReportData() ReportData {
	out := ReportData{
		TotalEmissions:  decimal.NewFromInt(sampleTotalEmissions),
		Categories:      sampleCategories,
		Suppliers:       sampleSuppliers,
		Period:          samplePeriod,
		Recommendations: append([]string(nil), sampleRecommendations...),
	}
	for _, c := range sampleCategoryShares[:3] {
		out.TopCategories = append(out.TopCategories, ReportCategory{
			Name: c.name, Emissions: decimal.NewFromInt(c.emissions), Percentage: c.percentage,
		})
	}
	for _, m := range sampleMonthly {
		out.Monthly = append(out.Monthly, ReportMonth{
			Month: m.month, Emissions: decimal.NewFromInt(m.emissions), Target: decimal.NewFromInt(m.target),
		})
	}
	for _, s := range sampleSupplierRisks {
		out.SupplierRisks = append(out.SupplierRisks, ReportSupplier{
			Supplier: s.supplier, Emissions: decimal.NewFromInt(s.emissions), Risk: s.risk,
		})
	}
	return out
}
