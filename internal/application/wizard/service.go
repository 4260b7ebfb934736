package wizard

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/scope3-api/internal/application/dto"
	"github.com/jhoicas/scope3-api/internal/application/ports"
	"github.com/jhoicas/scope3-api/internal/domain"
	"github.com/jhoicas/scope3-api/internal/domain/entity"
)

// Service casos de uso de las sesiones de captura: cada usuario puede tener
// varios formularios abiertos, cada uno con su estado exclusivo.
type Service struct {
	store ports.SessionStore[*Wizard]
	sink  ports.Submitter
	log   zerolog.Logger
}

// NewService construye el caso de uso.
func NewService(store ports.SessionStore[*Wizard], sink ports.Submitter, log zerolog.Logger) *Service {
	return &Service{store: store, sink: sink, log: log}
}

// Create abre un formulario nuevo en el paso 1.
func (s *Service) Create(owner string) *dto.WizardResponse {
	w := New()
	id := s.store.Create(owner, w)
	s.log.Debug().Str("wizard_id", id).Str("owner", owner).Msg("formulario creado")
	return toWizardResponse(id, w.Snapshot())
}

// Get devuelve el estado del formulario.
func (s *Service) Get(owner, id string) (*dto.WizardResponse, error) {
	w, err := s.load(owner, id)
	if err != nil {
		return nil, err
	}
	return toWizardResponse(id, w.Snapshot()), nil
}

// Update aplica cambios al borrador.
func (s *Service) Update(owner, id string, in dto.UpdateWizardDraftRequest) (*dto.WizardResponse, error) {
	w, err := s.load(owner, id)
	if err != nil {
		return nil, err
	}
	w.Update(Patch{
		Category:       in.Category,
		Supplier:       in.Supplier,
		Activity:       in.Activity,
		Period:         in.Period,
		Quantity:       in.Quantity.StringPtr(),
		Unit:           in.Unit,
		EmissionFactor: in.EmissionFactor.StringPtr(),
		Description:    in.Description,
	})
	return toWizardResponse(id, w.Snapshot()), nil
}

// Advance intenta pasar al siguiente paso. Con errores de validación devuelve
// el estado (con errores por campo) junto con *domain.ValidationError.
func (s *Service) Advance(owner, id string) (*dto.WizardResponse, error) {
	w, err := s.load(owner, id)
	if err != nil {
		return nil, err
	}
	advErr := w.Advance()
	return toWizardResponse(id, w.Snapshot()), advErr
}

// Retreat vuelve al paso anterior.
func (s *Service) Retreat(owner, id string) (*dto.WizardResponse, error) {
	w, err := s.load(owner, id)
	if err != nil {
		return nil, err
	}
	w.Retreat()
	return toWizardResponse(id, w.Snapshot()), nil
}

// Submit envía el registro. Ante un fallo del destino el borrador se conserva
// y se devuelve el estado junto con el error.
func (s *Service) Submit(ctx context.Context, owner, id string) (*dto.WizardSubmitResponse, *dto.WizardResponse, error) {
	w, err := s.load(owner, id)
	if err != nil {
		return nil, nil, err
	}
	res, err := w.Submit(ctx, owner, s.sink)
	if err != nil {
		s.log.Warn().Err(err).Str("wizard_id", id).Msg("envío del formulario rechazado")
		return nil, toWizardResponse(id, w.Snapshot()), err
	}
	s.log.Info().
		Str("wizard_id", id).
		Str("category", res.Record.Category).
		Str("total_emissions", res.TotalEmissions.StringFixed(2)).
		Msg("registro de emisiones enviado")
	return &dto.WizardSubmitResponse{
		Wizard:         *toWizardResponse(id, w.Snapshot()),
		Notice:         res.Notice,
		Record:         res.Record,
		TotalEmissions: res.TotalEmissions,
	}, nil, nil
}

// Delete descarta el formulario.
func (s *Service) Delete(owner, id string) error {
	if !s.store.Delete(owner, id) {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) load(owner, id string) (*Wizard, error) {
	w, ok := s.store.Get(owner, id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return w, nil
}

func toDraftDTO(d Draft) dto.WizardDraftDTO {
	return dto.WizardDraftDTO{
		Category:       d.Category,
		Supplier:       d.Supplier,
		Activity:       d.Activity,
		Period:         d.Period,
		Quantity:       d.Quantity,
		Unit:           d.Unit,
		EmissionFactor: d.EmissionFactor,
		Description:    d.Description,
	}
}

func toWizardResponse(id string, snap Snapshot) *dto.WizardResponse {
	steps := make([]dto.WizardStepDTO, 0, LastStep)
	for i, label := range StepLabels {
		n := i + 1
		steps = append(steps, dto.WizardStepDTO{
			Number:    n,
			Label:     label,
			Completed: n < snap.Step,
			Current:   n == snap.Step,
		})
	}
	out := &dto.WizardResponse{
		ID:         id,
		Step:       snap.Step,
		TotalSteps: LastStep,
		Steps:      steps,
		Draft:      toDraftDTO(snap.Draft),
		Errors:     snap.Errors,
		CanGoBack:  snap.Step > FirstStep,
		CanSubmit:  snap.Step == LastStep,
		Options: dto.WizardOptionsDTO{
			Categories: entity.Categories,
			Units:      entity.Units,
		},
	}
	if snap.Step == LastStep {
		out.Review = &dto.WizardReviewDTO{
			Draft:          toDraftDTO(snap.Review.Draft),
			TotalEmissions: snap.Review.TotalEmissions,
			TotalLabel:     snap.Review.TotalEmissions.StringFixed(2) + " tCO2e",
		}
	}
	return out
}
