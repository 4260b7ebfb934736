package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	testChdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 10*1024*1024, cfg.HTTP.BodyLimit())
	assert.True(t, cfg.HTTP.Docs)
	assert.Equal(t, SinkLog, cfg.Submission.Sink)
	assert.Equal(t, 120*time.Minute, cfg.Session.TTL)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_DOCS", "false")
	t.Setenv("SUBMISSION_SINK", "Postgres")
	t.Setenv("SESSION_TTL_MINUTES", "0")
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.HTTP.Docs)
	assert.Equal(t, SinkPostgres, cfg.Submission.Sink)
	assert.Equal(t, time.Duration(0), cfg.Session.TTL)
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
}

func TestLoad_DestinoInvalido(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("SUBMISSION_SINK", "kafka")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUBMISSION_SINK")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "scope3", SSLMode: "disable"}
	dsn := c.ConnectionString()
	assert.True(t, strings.HasPrefix(dsn, "postgres://app:p%40ss%3Aword@db:5432/scope3"))
	assert.Contains(t, dsn, "sslmode=disable")

	c.DatabaseURL = "postgresql://x"
	assert.Equal(t, "postgresql://x", c.ConnectionString())
}

// testChdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
