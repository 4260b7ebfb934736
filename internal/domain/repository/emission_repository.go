package repository

import (
	"context"

	"github.com/jhoicas/scope3-api/internal/domain/entity"
)

// EmissionRepository define el puerto de persistencia para registros de emisiones (DIP).
type EmissionRepository interface {
	// SaveBatch persiste todos los registros o ninguno. Devuelve los IDs asignados, en orden.
	SaveBatch(ctx context.Context, owner, source string, records []entity.EmissionRecord) ([]string, error)
	CountByOwner(ctx context.Context, owner string) (int, error)
}
