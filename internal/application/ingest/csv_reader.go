package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/scope3-api/internal/domain"
)

// Columnas lógicas del archivo de carga (misma forma que la plantilla).
const (
	ColCategory       = "scope3_category"
	ColSupplier       = "supplier_name"
	ColActivity       = "activity_description"
	ColPeriod         = "reporting_period"
	ColQuantity       = "quantity"
	ColUnit           = "unit"
	ColEmissionFactor = "emission_factor"
	ColNotes          = "notes"
)

// Columns en el orden de la plantilla.
var Columns = []string{
	ColCategory, ColSupplier, ColActivity, ColPeriod,
	ColQuantity, ColUnit, ColEmissionFactor, ColNotes,
}

// delimitadores que se prueban sobre la fila de encabezado
var delimiters = []rune{',', ';', '\t', '|'}

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// CandidateRow fila tal como viene del archivo; los números siguen siendo texto.
type CandidateRow struct {
	Line           int
	Category       string
	Supplier       string
	Activity       string
	Period         string
	Quantity       string
	Unit           string
	EmissionFactor string
	Notes          string
}

// ParseCSV lee un archivo delimitado con encabezado en la primera fila.
// Acepta UTF-8 (con o sin BOM), UTF-16 con BOM y, si los bytes no son UTF-8
// válido, Windows-1252 (exportaciones de Excel en español).
// Las columnas se reconocen por nombre; las desconocidas se ignoran.
// Los valores se conservan tal cual (sin recortar espacios); los números se
// recortan al convertirlos.
func ParseCSV(r io.Reader) ([]CandidateRow, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &domain.ParseError{Reason: "no se pudo leer el archivo", Err: err}
	}
	text, err := decodeText(raw)
	if err != nil {
		return nil, &domain.ParseError{Reason: "codificación de texto no reconocida", Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return nil, &domain.ParseError{Reason: "el archivo está vacío"}
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = detectDelimiter(firstLine(text))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true // comillas sueltas dentro de un valor, ej: 12" steel pipe

	header, err := cr.Read()
	if err != nil {
		return nil, csvError(err)
	}
	index := headerIndex(header)
	if _, ok := index[ColCategory]; !ok {
		return nil, &domain.ParseError{Reason: "el encabezado no contiene la columna " + ColCategory}
	}
	if _, ok := index[ColSupplier]; !ok {
		return nil, &domain.ParseError{Reason: "el encabezado no contiene la columna " + ColSupplier}
	}

	var rows []CandidateRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		line, _ := cr.FieldPos(0)
		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return rec[i]
		}
		rows = append(rows, CandidateRow{
			Line:           line,
			Category:       get(ColCategory),
			Supplier:       get(ColSupplier),
			Activity:       get(ColActivity),
			Period:         get(ColPeriod),
			Quantity:       get(ColQuantity),
			Unit:           get(ColUnit),
			EmissionFactor: get(ColEmissionFactor),
			Notes:          get(ColNotes),
		})
	}
	return rows, nil
}

func decodeText(raw []byte) (string, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF16LE), bytes.HasPrefix(raw, bomUTF16BE):
		out, _, err := transform.Bytes(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder(), raw)
		if err != nil {
			return "", err
		}
		return string(out), nil
	case utf8.Valid(raw):
		return strings.TrimPrefix(string(raw), "\ufeff"), nil
	default:
		out, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), charmap.Windows1252.NewDecoder()))
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

func firstLine(text string) string {
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		return text[:i]
	}
	return text
}

// detectDelimiter elige el delimitador más frecuente fuera de comillas; por defecto coma.
func detectDelimiter(header string) rune {
	counts := make(map[rune]int, len(delimiters))
	inQuotes := false
	for _, ch := range header {
		if ch == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			counts[ch]++
		}
	}
	best, bestCount := ',', 0
	for _, d := range delimiters {
		if counts[d] > bestCount {
			best, bestCount = d, counts[d]
		}
	}
	return best
}

// headerIndex asocia cada columna lógica con su posición. Ignora mayúsculas,
// espacios alrededor y acepta espacios en lugar de guiones bajos.
func headerIndex(header []string) map[string]int {
	known := make(map[string]bool, len(Columns))
	for _, c := range Columns {
		known[c] = true
	}
	index := make(map[string]int, len(Columns))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		name = strings.ReplaceAll(name, " ", "_")
		if !known[name] {
			continue
		}
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	return index
}

func csvError(err error) error {
	var pErr *csv.ParseError
	if errors.As(err, &pErr) {
		return &domain.ParseError{
			Reason: fmt.Sprintf("formato inválido en la línea %d", pErr.Line),
			Err:    pErr.Err,
		}
	}
	return &domain.ParseError{Reason: "formato inválido", Err: err}
}
