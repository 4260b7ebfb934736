// Package submission implementa los destinos de los registros confirmados.
package submission

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/scope3-api/internal/domain/emissions"
	"github.com/jhoicas/scope3-api/internal/domain/entity"
)

// LogSubmitter escribe cada registro en el log y siempre acepta el envío.
// Lleva la cuenta de registros por usuario mientras vive el proceso.
type LogSubmitter struct {
	log    zerolog.Logger
	mu     sync.Mutex
	counts map[string]int
}

// NewLogSubmitter construye el destino de log.
func NewLogSubmitter(log zerolog.Logger) *LogSubmitter {
	return &LogSubmitter{log: log, counts: make(map[string]int)}
}

// SubmitRecords implementa ports.Submitter.
func (s *LogSubmitter) SubmitRecords(ctx context.Context, owner string, records []entity.EmissionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for i, r := range records {
		s.log.Info().
			Str("owner", owner).
			Int("index", i).
			Str("scope3_category", r.Category).
			Str("supplier_name", r.Supplier).
			Str("reporting_period", r.Period).
			Str("quantity", r.Quantity.String()).
			Str("unit", r.Unit).
			Str("emission_factor", r.EmissionFactor.String()).
			Str("emissions", emissions.Format(r.TotalEmissions())).
			Msg("registro de emisiones recibido")
	}
	s.log.Info().
		Str("owner", owner).
		Int("records", len(records)).
		Str("total_emissions", emissions.Format(emissions.Sum(records))).
		Msg("envío de emisiones aceptado")

	s.mu.Lock()
	s.counts[owner] += len(records)
	s.mu.Unlock()
	return nil
}

// CountByOwner registros aceptados para el usuario desde que arrancó el proceso.
func (s *LogSubmitter) CountByOwner(_ context.Context, owner string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[owner], nil
}
