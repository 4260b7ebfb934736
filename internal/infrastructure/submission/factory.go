package submission

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/scope3-api/internal/application/ports"
	"github.com/jhoicas/scope3-api/internal/infrastructure/postgres"
	"github.com/jhoicas/scope3-api/pkg/config"
)

// Sink destino de envíos que además cuenta lo enviado por usuario.
type Sink interface {
	ports.Submitter
	CountByOwner(ctx context.Context, owner string) (int, error)
}

// NewFromConfig construye el destino indicado por SUBMISSION_SINK. Con postgres
// abre el pool y aplica las migraciones; la función devuelta libera lo abierto.
func NewFromConfig(ctx context.Context, cfg *config.Config, source string, log zerolog.Logger) (Sink, func(), error) {
	switch cfg.Submission.Sink {
	case config.SinkPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migraciones: %w", err)
		}
		return NewRepositorySubmitter(postgres.NewEmissionRepository(pool), source, log), pool.Close, nil
	case config.SinkLog, "":
		return NewLogSubmitter(log), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("destino de envío desconocido: %q", cfg.Submission.Sink)
	}
}
