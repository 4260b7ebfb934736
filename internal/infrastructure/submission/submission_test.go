package submission_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/scope3-api/internal/domain/entity"
	"github.com/jhoicas/scope3-api/internal/infrastructure/submission"
	"github.com/jhoicas/scope3-api/pkg/config"
)

func sample() []entity.EmissionRecord {
	return []entity.EmissionRecord{
		{Category: "Business Travel", Supplier: "Acme", Quantity: decimal.NewFromInt(500), EmissionFactor: decimal.RequireFromString("0.0015")},
		{Category: "Franchises", Supplier: "Beta", Quantity: decimal.NewFromInt(100), EmissionFactor: decimal.RequireFromString("0.01")},
	}
}

// ── LogSubmitter ─────────────────────────────────────────────────────────────

func TestLogSubmitter_RegistraYCuenta(t *testing.T) {
	var buf bytes.Buffer
	s := submission.NewLogSubmitter(zerolog.New(&buf))

	require.NoError(t, s.SubmitRecords(context.Background(), "u1", sample()))
	require.NoError(t, s.SubmitRecords(context.Background(), "u1", sample()[:1]))

	n, err := s.CountByOwner(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, _ = s.CountByOwner(context.Background(), "u2")
	assert.Equal(t, 0, n)

	out := buf.String()
	assert.Contains(t, out, `"supplier_name":"Acme"`)
	assert.Contains(t, out, `"total_emissions":"1.75"`)
	assert.Equal(t, 5, strings.Count(out, "\n"), "3 registros + 2 resúmenes")
}

func TestLogSubmitter_ContextoCancelado(t *testing.T) {
	s := submission.NewLogSubmitter(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.SubmitRecords(ctx, "u1", sample()), context.Canceled)
}

// ── RepositorySubmitter ──────────────────────────────────────────────────────

type fakeRepo struct {
	saved  []entity.EmissionRecord
	source string
	err    error
}

func (f *fakeRepo) SaveBatch(_ context.Context, _, source string, records []entity.EmissionRecord) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = append(f.saved, records...)
	f.source = source
	ids := make([]string, len(records))
	for i := range ids {
		ids[i] = "id"
	}
	return ids, nil
}

func (f *fakeRepo) CountByOwner(context.Context, string) (int, error) { return len(f.saved), nil }

func TestRepositorySubmitter_Delegacion(t *testing.T) {
	repo := &fakeRepo{}
	s := submission.NewRepositorySubmitter(repo, "api", zerolog.Nop())

	require.NoError(t, s.SubmitRecords(context.Background(), "u1", sample()))
	assert.Len(t, repo.saved, 2)
	assert.Equal(t, "api", repo.source)
	n, err := s.CountByOwner(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	boom := errors.New("conexión cerrada")
	s = submission.NewRepositorySubmitter(&fakeRepo{err: boom}, "api", zerolog.Nop())
	assert.ErrorIs(t, s.SubmitRecords(context.Background(), "u1", sample()), boom)
}

// ── NewFromConfig ────────────────────────────────────────────────────────────

func TestNewFromConfig_DestinoLog(t *testing.T) {
	cfg := &config.Config{Submission: config.SubmissionConfig{Sink: config.SinkLog}}

	sink, closeFn, err := submission.NewFromConfig(context.Background(), cfg, "test", zerolog.Nop())
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &submission.LogSubmitter{}, sink)

	require.NoError(t, sink.SubmitRecords(context.Background(), "u1", sample()))
	n, err := sink.CountByOwner(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNewFromConfig_DestinoDesconocido(t *testing.T) {
	cfg := &config.Config{Submission: config.SubmissionConfig{Sink: "kafka"}}

	_, _, err := submission.NewFromConfig(context.Background(), cfg, "test", zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka")
}
