// Package emissions contiene la fórmula de emisiones compartida por el asistente
// de captura y la carga por lotes (servicio de dominio).
package emissions

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/scope3-api/internal/domain/entity"
)

// DisplayPlaces decimales con los que se muestran los totales.
const DisplayPlaces = 2

// Total = cantidad × factor de emisión.
func Total(quantity, factor decimal.Decimal) decimal.Decimal {
	return quantity.Mul(factor)
}

// Round redondea a DisplayPlaces (mitad lejos de cero).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(DisplayPlaces)
}

// Format devuelve el total listo para mostrar, ej: "0.75".
func Format(d decimal.Decimal) string {
	return d.StringFixed(DisplayPlaces)
}

// ParseNumber interpreta un número escrito por el usuario. Acepta espacios alrededor.
func ParseNumber(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseOrZero igual que ParseNumber pero vacío o inválido cuenta como 0 (solo para mostrar).
func ParseOrZero(raw string) decimal.Decimal {
	d, _ := ParseNumber(raw)
	return d
}

// Sum suma el total de emisiones de todos los registros.
func Sum(records []entity.EmissionRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.TotalEmissions())
	}
	return total
}
