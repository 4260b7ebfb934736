// Package ingest implementa la carga por lotes: archivo → filas candidatas →
// filtro de filas inválidas → vista previa → confirmación explícita.
//
// Estados:
//
//	Idle ──AcceptFile──▶ Parsing ──ok──▶ Preview ──Confirm/Reupload──▶ Idle
//	                        └──error──▶ estado anterior (+ LastError)
package ingest

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jhoicas/scope3-api/internal/application/feedback"
	"github.com/jhoicas/scope3-api/internal/application/ports"
	"github.com/jhoicas/scope3-api/internal/domain"
	"github.com/jhoicas/scope3-api/internal/domain/entity"
)

// State estado del flujo de carga.
type State string

const (
	StateIdle    State = "idle"
	StateParsing State = "parsing"
	StatePreview State = "preview"
)

// AcceptedExtensions extensiones que ofrece el selector de archivos.
var AcceptedExtensions = []string{"csv", "pdf", "jpg", "jpeg", "png"}

// documentos e imágenes: requieren procesamiento en un backend externo
var backendExtensions = map[string]bool{"pdf": true, "jpg": true, "jpeg": true, "png": true}

// View estado observable del flujo en un instante.
type View struct {
	State     State
	Filename  string
	Summary   Summary
	Sample    []entity.EmissionRecord
	Remainder int
	Dropped   int   // filas descartadas por el filtro
	LastError error // fallo del último intento, si lo hubo
}

// Pipeline flujo de carga de un usuario. Seguro para uso concurrente: mientras
// un archivo está en Parsing no se acepta otro.
type Pipeline struct {
	mu       sync.Mutex
	state    State
	filename string
	records  []entity.EmissionRecord
	dropped  int
	lastErr  error
}

// NewPipeline crea el flujo en Idle.
func NewPipeline() *Pipeline {
	return &Pipeline{state: StateIdle}
}

// AcceptFile procesa el archivo según su extensión. El análisis no se puede
// cancelar: termina con la vista previa o con un error. Ante un error el
// estado y los registros previos quedan intactos.
func (p *Pipeline) AcceptFile(filename string, r io.Reader) (feedback.Notice, error) {
	p.mu.Lock()
	if p.state == StateParsing {
		p.mu.Unlock()
		return feedback.FromError(domain.ErrParseInProgress), domain.ErrParseInProgress
	}
	prev := p.state
	p.state = StateParsing
	p.lastErr = nil
	p.mu.Unlock()

	records, dropped, err := parseUpload(filename, r)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.state = prev
		p.lastErr = err
		return feedback.FromError(err), err
	}
	p.state = StatePreview
	p.filename = filename
	p.records = records
	p.dropped = dropped
	return feedback.Success("Archivo procesado",
		fmt.Sprintf("%d registros encontrados; revise la vista previa antes de enviar", len(records))), nil
}

// Extension extensión normalizada (minúsculas, sin punto).
func Extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

func parseUpload(filename string, r io.Reader) ([]entity.EmissionRecord, int, error) {
	ext := Extension(filename)
	switch {
	case ext == "csv":
		rows, err := ParseCSV(r)
		if err != nil {
			return nil, 0, err
		}
		valid := FilterValid(rows)
		if len(valid) == 0 {
			return nil, 0, &domain.ParseError{
				Reason: "el archivo no contiene filas válidas (se requieren " + ColCategory + " y " + ColSupplier + ")",
			}
		}
		return ToRecords(valid), len(rows) - len(valid), nil
	case backendExtensions[ext]:
		return nil, 0, &domain.UnsupportedInputError{
			Extension:    ext,
			Reason:       "el procesamiento de PDF e imágenes requiere un servicio de backend",
			NeedsBackend: true,
		}
	default:
		return nil, 0, &domain.UnsupportedInputError{
			Extension: ext,
			Reason:    "suba un archivo CSV, PDF, JPG o PNG",
		}
	}
}

// Confirm envía todos los registros (no solo la muestra) y vuelve a Idle.
// Si el destino falla la vista previa se conserva para reintentar.
func (p *Pipeline) Confirm(ctx context.Context, owner string, sink ports.Submitter) (feedback.Notice, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StatePreview {
		return feedback.FromError(domain.ErrNothingToConfirm), domain.ErrNothingToConfirm
	}
	n := len(p.records)
	if err := sink.SubmitRecords(ctx, owner, p.records); err != nil {
		subErr := &domain.SubmissionError{Records: n, Err: err}
		p.lastErr = subErr
		return feedback.FromError(subErr), subErr
	}
	p.reset()
	return feedback.Success("Datos enviados correctamente",
		fmt.Sprintf("%d registros de emisiones procesados", n)), nil
}

// Reupload descarta la vista previa sin enviar y vuelve a Idle.
func (p *Pipeline) Reupload() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateParsing {
		return domain.ErrParseInProgress
	}
	p.reset()
	return nil
}

// View devuelve el estado actual con resumen y muestra.
func (p *Pipeline) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := View{
		State:     p.state,
		Filename:  p.filename,
		Dropped:   p.dropped,
		LastError: p.lastErr,
	}
	if p.state == StatePreview {
		v.Summary = ComputeSummary(p.records)
		v.Sample, v.Remainder = PreviewSample(p.records)
	}
	return v
}

// Records copia de todos los registros en vista previa.
func (p *Pipeline) Records() []entity.EmissionRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]entity.EmissionRecord(nil), p.records...)
}

func (p *Pipeline) reset() {
	p.state = StateIdle
	p.filename = ""
	p.records = nil
	p.dropped = 0
	p.lastErr = nil
}
