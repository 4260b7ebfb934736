package submission

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/scope3-api/internal/domain/entity"
	"github.com/jhoicas/scope3-api/internal/domain/repository"
)

// RepositorySubmitter persiste el envío completo en una sola operación del repositorio.
type RepositorySubmitter struct {
	repo   repository.EmissionRepository
	source string
	log    zerolog.Logger
}

// NewRepositorySubmitter construye el destino. source identifica el origen
// de los registros en la tabla (ej: "api", "cli").
func NewRepositorySubmitter(repo repository.EmissionRepository, source string, log zerolog.Logger) *RepositorySubmitter {
	return &RepositorySubmitter{repo: repo, source: source, log: log}
}

// SubmitRecords implementa ports.Submitter.
func (s *RepositorySubmitter) SubmitRecords(ctx context.Context, owner string, records []entity.EmissionRecord) error {
	ids, err := s.repo.SaveBatch(ctx, owner, s.source, records)
	if err != nil {
		return fmt.Errorf("guardar registros: %w", err)
	}
	s.log.Info().Str("owner", owner).Str("source", s.source).Int("records", len(ids)).Msg("registros de emisiones guardados")
	return nil
}

// CountByOwner delega en el repositorio.
func (s *RepositorySubmitter) CountByOwner(ctx context.Context, owner string) (int, error) {
	return s.repo.CountByOwner(ctx, owner)
}
