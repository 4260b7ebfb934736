// Package excel genera la plantilla de carga en formato XLSX.
package excel

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/scope3-api/internal/application/ingest"
	"github.com/jhoicas/scope3-api/internal/domain/entity"
)

const (
	// DataSheet hoja con el encabezado y la fila de ejemplo.
	DataSheet = "Emissions"
	// ListsSheet hoja oculta con los valores de las listas desplegables.
	ListsSheet = "Lists"

	validationRows = 1000
)

// WriteTemplate escribe la plantilla XLSX: mismo encabezado y fila de ejemplo
// que el CSV, con listas desplegables para categoría y unidad.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", DataSheet); err != nil {
		return fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	if err := writeDataSheet(f); err != nil {
		return err
	}
	if err := writeLists(f); err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("excel: escribir plantilla: %w", err)
	}
	return nil
}

func writeDataSheet(f *excelize.File) error {
	header := make([]interface{}, len(ingest.Columns))
	for i, c := range ingest.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(DataSheet, "A1", &header); err != nil {
		return fmt.Errorf("excel: encabezado: %w", err)
	}

	sample := ingest.TemplateRow()
	row := make([]interface{}, len(sample))
	for i, v := range sample {
		row[i] = numericOrText(ingest.Columns[i], v)
	}
	if err := f.SetSheetRow(DataSheet, "A2", &row); err != nil {
		return fmt.Errorf("excel: fila de ejemplo: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DCFCE7"}},
	})
	if err != nil {
		return fmt.Errorf("excel: estilo: %w", err)
	}
	last, _ := excelize.ColumnNumberToName(len(ingest.Columns))
	if err := f.SetCellStyle(DataSheet, "A1", last+"1", bold); err != nil {
		return fmt.Errorf("excel: estilo encabezado: %w", err)
	}
	if err := f.SetColWidth(DataSheet, "A", last, 24); err != nil {
		return fmt.Errorf("excel: ancho de columnas: %w", err)
	}
	return nil
}

// writeLists llena la hoja oculta y enlaza las validaciones de la hoja de datos.
func writeLists(f *excelize.File) error {
	if _, err := f.NewSheet(ListsSheet); err != nil {
		return fmt.Errorf("excel: hoja de listas: %w", err)
	}
	for i, c := range entity.Categories {
		if err := f.SetCellStr(ListsSheet, "A"+strconv.Itoa(i+1), c); err != nil {
			return fmt.Errorf("excel: lista de categorías: %w", err)
		}
	}
	if err := f.SetSheetVisible(ListsSheet, false); err != nil {
		return fmt.Errorf("excel: ocultar listas: %w", err)
	}

	category := excelize.NewDataValidation(true)
	category.Sqref = fmt.Sprintf("A2:A%d", validationRows)
	category.SetSqrefDropList(fmt.Sprintf("%s!$A$1:$A$%d", ListsSheet, len(entity.Categories)))
	if err := f.AddDataValidation(DataSheet, category); err != nil {
		return fmt.Errorf("excel: validación de categoría: %w", err)
	}

	unitCol, _ := excelize.ColumnNumberToName(indexOf(ingest.Columns, ingest.ColUnit) + 1)
	unit := excelize.NewDataValidation(true)
	unit.Sqref = fmt.Sprintf("%s2:%s%d", unitCol, unitCol, validationRows)
	if err := unit.SetDropList(entity.Units); err != nil {
		return fmt.Errorf("excel: lista de unidades: %w", err)
	}
	if err := f.AddDataValidation(DataSheet, unit); err != nil {
		return fmt.Errorf("excel: validación de unidad: %w", err)
	}
	return nil
}

func numericOrText(col, v string) interface{} {
	if col != ingest.ColQuantity && col != ingest.ColEmissionFactor {
		return v
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return n
	}
	return v
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
