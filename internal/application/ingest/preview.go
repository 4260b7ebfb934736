package ingest

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/scope3-api/internal/domain/emissions"
	"github.com/jhoicas/scope3-api/internal/domain/entity"
)

// SampleSize filas que se muestran en la vista previa.
const SampleSize = 3

// Summary estadísticas del lote en vista previa.
type Summary struct {
	Records         int
	TotalEmissions  decimal.Decimal // suma de cantidad × factor, redondeada a 2 decimales
	UniqueSuppliers int
}

// FilterValid conserva solo las filas con categoría y proveedor, en su orden original.
// Las demás se descartan sin error por fila.
func FilterValid(rows []CandidateRow) []CandidateRow {
	out := make([]CandidateRow, 0, len(rows))
	for _, r := range rows {
		if r.Category != "" && r.Supplier != "" {
			out = append(out, r)
		}
	}
	return out
}

// ToRecords convierte las filas en registros. Cantidad y factor no numéricos cuentan como 0.
func ToRecords(rows []CandidateRow) []entity.EmissionRecord {
	out := make([]entity.EmissionRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.EmissionRecord{
			Category:       r.Category,
			Supplier:       r.Supplier,
			Activity:       r.Activity,
			Period:         r.Period,
			Quantity:       emissions.ParseOrZero(r.Quantity),
			Unit:           r.Unit,
			EmissionFactor: emissions.ParseOrZero(r.EmissionFactor),
			Description:    r.Notes,
		})
	}
	return out
}

// ComputeSummary total de registros, emisiones totales y proveedores distintos
// (comparación exacta del nombre).
func ComputeSummary(records []entity.EmissionRecord) Summary {
	suppliers := make(map[string]struct{}, len(records))
	for _, r := range records {
		suppliers[r.Supplier] = struct{}{}
	}
	return Summary{
		Records:         len(records),
		TotalEmissions:  emissions.Round(emissions.Sum(records)),
		UniqueSuppliers: len(suppliers),
	}
}

// PreviewSample devuelve los primeros SampleSize registros y cuántos quedan fuera.
func PreviewSample(records []entity.EmissionRecord) ([]entity.EmissionRecord, int) {
	n := len(records)
	if n <= SampleSize {
		return append([]entity.EmissionRecord(nil), records...), 0
	}
	return append([]entity.EmissionRecord(nil), records[:SampleSize]...), n - SampleSize
}
