package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Categorías Scope 3 del GHG Protocol (etiquetas fijas).
const (
	CategoryPurchasedGoods         = "Purchased Goods & Services"
	CategoryCapitalGoods           = "Capital Goods"
	CategoryFuelEnergy             = "Fuel & Energy Related Activities"
	CategoryUpstreamTransport      = "Upstream Transportation & Distribution"
	CategoryWaste                  = "Waste Generated in Operations"
	CategoryBusinessTravel         = "Business Travel"
	CategoryEmployeeCommuting      = "Employee Commuting"
	CategoryUpstreamLeasedAssets   = "Upstream Leased Assets"
	CategoryDownstreamTransport    = "Downstream Transportation & Distribution"
	CategoryProcessingSoldProducts = "Processing of Sold Products"
	CategoryUseOfSoldProducts      = "Use of Sold Products"
	CategoryEndOfLife              = "End-of-Life Treatment of Sold Products"
	CategoryDownstreamLeasedAssets = "Downstream Leased Assets"
	CategoryFranchises             = "Franchises"
	CategoryInvestments            = "Investments"
)

// Categories en el orden en que se presentan al usuario.
var Categories = []string{
	CategoryPurchasedGoods,
	CategoryCapitalGoods,
	CategoryFuelEnergy,
	CategoryUpstreamTransport,
	CategoryWaste,
	CategoryBusinessTravel,
	CategoryEmployeeCommuting,
	CategoryUpstreamLeasedAssets,
	CategoryDownstreamTransport,
	CategoryProcessingSoldProducts,
	CategoryUseOfSoldProducts,
	CategoryEndOfLife,
	CategoryDownstreamLeasedAssets,
	CategoryFranchises,
	CategoryInvestments,
}

// Units unidades de actividad admitidas.
var Units = []string{"kg", "tonnes", "liters", "kwh", "km", "usd"}

// IsCategory indica si s es una de las 15 categorías.
func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// IsUnit indica si s es una unidad admitida (sin distinguir mayúsculas).
func IsUnit(s string) bool {
	s = strings.ToLower(s)
	for _, u := range Units {
		if u == s {
			return true
		}
	}
	return false
}

// EmissionRecord registro de emisiones Scope 3 (fila de carga o resultado del asistente).
// No tiene identidad propia: se identifica por su posición en el lote.
type EmissionRecord struct {
	Category       string          `json:"scope3_category"`
	Supplier       string          `json:"supplier_name"`
	Activity       string          `json:"activity_description"`
	Period         string          `json:"reporting_period"` // YYYY-MM
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	EmissionFactor decimal.Decimal `json:"emission_factor"` // tCO2e por unidad
	Description    string          `json:"notes"`
}

// TotalEmissions = Quantity × EmissionFactor (tCO2e, sin redondear).
func (r EmissionRecord) TotalEmissions() decimal.Decimal {
	return r.Quantity.Mul(r.EmissionFactor)
}
