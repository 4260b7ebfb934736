package ingest

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/jhoicas/scope3-api/internal/application/dto"
	"github.com/jhoicas/scope3-api/internal/application/feedback"
	"github.com/jhoicas/scope3-api/internal/application/ports"
	"github.com/jhoicas/scope3-api/internal/domain"
	"github.com/jhoicas/scope3-api/internal/domain/emissions"
	"github.com/jhoicas/scope3-api/internal/domain/entity"
)

// Service casos de uso de las sesiones de carga por lotes.
type Service struct {
	store ports.SessionStore[*Pipeline]
	sink  ports.Submitter
	log   zerolog.Logger
}

// NewService construye el caso de uso.
func NewService(store ports.SessionStore[*Pipeline], sink ports.Submitter, log zerolog.Logger) *Service {
	return &Service{store: store, sink: sink, log: log}
}

// Create abre una sesión de carga en Idle.
func (s *Service) Create(owner string) *dto.BatchResponse {
	p := NewPipeline()
	id := s.store.Create(owner, p)
	return toBatchResponse(id, p.View())
}

// Get devuelve el estado de la sesión.
func (s *Service) Get(owner, id string) (*dto.BatchResponse, error) {
	p, err := s.load(owner, id)
	if err != nil {
		return nil, err
	}
	return toBatchResponse(id, p.View()), nil
}

// Upload procesa el archivo subido. El error (si lo hay) acompaña al estado resultante.
func (s *Service) Upload(owner, id, filename string, r io.Reader) (*dto.BatchActionResponse, error) {
	p, err := s.load(owner, id)
	if err != nil {
		return nil, err
	}
	notice, err := p.AcceptFile(filename, r)
	view := p.View()
	ev := s.log.Info()
	if err != nil {
		ev = s.log.Warn().Err(err)
	}
	ev.Str("batch_id", id).
		Str("file", filename).
		Str("state", string(view.State)).
		Int("records", view.Summary.Records).
		Int("dropped", view.Dropped).
		Msg("archivo de carga procesado")
	return &dto.BatchActionResponse{Batch: *toBatchResponse(id, view), Notice: notice}, err
}

// Confirm envía el lote completo al destino.
func (s *Service) Confirm(ctx context.Context, owner, id string) (*dto.BatchActionResponse, error) {
	p, err := s.load(owner, id)
	if err != nil {
		return nil, err
	}
	notice, err := p.Confirm(ctx, owner, s.sink)
	if err != nil {
		s.log.Warn().Err(err).Str("batch_id", id).Msg("confirmación del lote rechazada")
	}
	return &dto.BatchActionResponse{Batch: *toBatchResponse(id, p.View()), Notice: notice}, err
}

// Reupload descarta la vista previa.
func (s *Service) Reupload(owner, id string) (*dto.BatchResponse, error) {
	p, err := s.load(owner, id)
	if err != nil {
		return nil, err
	}
	if err := p.Reupload(); err != nil {
		return toBatchResponse(id, p.View()), err
	}
	return toBatchResponse(id, p.View()), nil
}

// Delete cierra la sesión de carga.
func (s *Service) Delete(owner, id string) error {
	if !s.store.Delete(owner, id) {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) load(owner, id string) (*Pipeline, error) {
	p, ok := s.store.Get(owner, id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func toBatchRecordDTO(r entity.EmissionRecord) dto.BatchRecordDTO {
	return dto.BatchRecordDTO{
		Category:       r.Category,
		Supplier:       r.Supplier,
		Activity:       r.Activity,
		Period:         r.Period,
		Quantity:       r.Quantity,
		Unit:           r.Unit,
		EmissionFactor: r.EmissionFactor,
		Notes:          r.Description,
		Emissions:      emissions.Round(r.TotalEmissions()),
	}
}

func toBatchResponse(id string, v View) *dto.BatchResponse {
	out := &dto.BatchResponse{
		ID:                 id,
		State:              string(v.State),
		Busy:               v.State == StateParsing,
		Filename:           v.Filename,
		Sample:             make([]dto.BatchRecordDTO, 0, len(v.Sample)),
		Remainder:          v.Remainder,
		AcceptedExtensions: AcceptedExtensions,
	}
	if v.State == StatePreview {
		out.Summary = &dto.BatchSummaryDTO{
			TotalRecords:    v.Summary.Records,
			TotalEmissions:  v.Summary.TotalEmissions,
			TotalLabel:      emissions.Format(v.Summary.TotalEmissions) + " tCO2e",
			UniqueSuppliers: v.Summary.UniqueSuppliers,
			DroppedRows:     v.Dropped,
		}
	}
	for _, r := range v.Sample {
		out.Sample = append(out.Sample, toBatchRecordDTO(r))
	}
	if v.LastError != nil {
		n := feedback.FromError(v.LastError)
		out.LastError = &n
	}
	return out
}
