package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "secret-de-prueba"

func TestGenerateYParse_RoundTrip(t *testing.T) {
	token, err := Generate(secret, 42, "doctor", "medapp", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "doctor", role)
}

func TestParse_RolVacio(t *testing.T) {
	token, err := Generate(secret, 42, "", "medapp", 60)
	require.NoError(t, err)

	_, role, err := Parse(secret, token)
	require.NoError(t, err)
	assert.Empty(t, role, "un token sin rol parsea sin error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	token, err := Generate(secret, 42, "doctor", "medapp", 60)
	require.NoError(t, err)

	_, _, err = Parse("otro-secret", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := Generate(secret, 42, "doctor", "medapp", -1)
	require.NoError(t, err)

	_, _, err = Parse(secret, token)
	assert.Error(t, err)
}

func TestParse_TokenBasura(t *testing.T) {
	_, _, err := Parse(secret, "no.es.un.jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", 42, "doctor", "medapp", 60)
	assert.Error(t, err)
}
