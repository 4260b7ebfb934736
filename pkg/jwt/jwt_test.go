package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	tok, err := Generate("secret", "u-1", "ana@acme.test", "scope3-api", 5)
	require.NoError(t, err)

	claims, err := Parse("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "ana@acme.test", claims.Email)
	assert.Equal(t, "scope3-api", claims.Issuer)
}

func TestParse_Rechazos(t *testing.T) {
	tok, err := Generate("secret", "u-1", "ana@acme.test", "scope3-api", 5)
	require.NoError(t, err)

	_, err = Parse("otra", tok)
	assert.Error(t, err, "firma incorrecta")

	expired, err := Generate("secret", "u-1", "ana@acme.test", "scope3-api", -1)
	require.NoError(t, err)
	_, err = Parse("secret", expired)
	assert.Error(t, err, "expirado")

	_, err = Parse("secret", "no-es-un-token")
	assert.Error(t, err)

	_, err = Generate("", "u-1", "", "", 5)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
