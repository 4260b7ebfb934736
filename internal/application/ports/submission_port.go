package ports

import (
	"context"

	"github.com/jhoicas/scope3-api/internal/domain/entity"
)

// Submitter es el límite hacia el destino de los registros finalizados
// (hoy un log; mañana un POST a un endpoint de ingesta o la base de datos).
// Ambos flujos (asistente y lote) terminan aquí. Un error indica que el
// destino rechazó el envío completo.
type Submitter interface {
	SubmitRecords(ctx context.Context, owner string, records []entity.EmissionRecord) error
}

// SubmitterFunc adapta una función al puerto Submitter.
type SubmitterFunc func(ctx context.Context, owner string, records []entity.EmissionRecord) error

// SubmitRecords implementa Submitter.
func (f SubmitterFunc) SubmitRecords(ctx context.Context, owner string, records []entity.EmissionRecord) error {
	return f(ctx, owner, records)
}
