package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
)

// TemplateBaseName nombre del archivo de plantilla (sin extensión).
const TemplateBaseName = "emission_data_template"

// TemplateRow fila de ejemplo de la plantilla, en el orden de Columns.
func TemplateRow() []string {
	return []string{
		"Purchased Goods & Services",
		"Acme Supplies",
		"Office paper purchased",
		"2024-07",
		"500",
		"kg",
		"0.0015",
		"N/A",
	}
}

// WriteTemplateCSV escribe la plantilla de carga: encabezado + una fila de ejemplo.
func WriteTemplateCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("plantilla: encabezado: %w", err)
	}
	if err := cw.Write(TemplateRow()); err != nil {
		return fmt.Errorf("plantilla: fila de ejemplo: %w", err)
	}
	cw.Flush()
	return cw.Error()
}
