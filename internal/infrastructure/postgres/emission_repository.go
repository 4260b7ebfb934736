package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/scope3-api/internal/domain"
	"github.com/jhoicas/scope3-api/internal/domain/entity"
	"github.com/jhoicas/scope3-api/internal/domain/repository"
)

var _ repository.EmissionRepository = (*EmissionRepo)(nil)

// EmissionRepo implementación de EmissionRepository sobre PostgreSQL.
type EmissionRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
	now  func() time.Time
}

// NewEmissionRepository construye el adaptador de persistencia para registros de emisiones.
func NewEmissionRepository(pool *pgxpool.Pool) *EmissionRepo {
	return &EmissionRepo{pool: pool, tx: NewTxRunner(pool), now: time.Now}
}

const insertEmissionSQL = `
	INSERT INTO emission_records (
		id, owner_id, source, batch_id, position,
		scope3_category, supplier_name, activity_description, reporting_period,
		quantity, unit, emission_factor, total_emissions, notes, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

// SaveBatch inserta todos los registros en una transacción con un mismo batch_id.
func (r *EmissionRepo) SaveBatch(ctx context.Context, owner, source string, records []entity.EmissionRecord) ([]string, error) {
	if len(records) == 0 {
		return nil, nil
	}
	batchID := uuid.New().String()
	createdAt := r.now().UTC()
	ids := make([]string, len(records))

	b := &pgx.Batch{}
	for i, rec := range records {
		ids[i] = uuid.New().String()
		b.Queue(insertEmissionSQL,
			ids[i], owner, source, batchID, i,
			rec.Category, rec.Supplier, rec.Activity, rec.Period,
			rec.Quantity, rec.Unit, rec.EmissionFactor, rec.TotalEmissions(), rec.Description, createdAt,
		)
	}

	err := r.tx.Run(ctx, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, b).Close()
	})
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, fmt.Errorf("insert emission_records: %w", domain.ErrConflict)
		case isCheckViolation(err):
			return nil, fmt.Errorf("insert emission_records: %w: %v", domain.ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("insert emission_records: %w", err)
	}
	return ids, nil
}

// CountByOwner número de registros guardados para el usuario.
func (r *EmissionRepo) CountByOwner(ctx context.Context, owner string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM emission_records WHERE owner_id = $1`, owner).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count emission_records: %w", err)
	}
	return n, nil
}
