package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret = "test-secret-key-for-unit-tests"
	userID = "00000000-0000-0000-0000-000000000001"
)

func TestGenerateAndParse_ConRole(t *testing.T) {
	tok, err := Generate(secret, userID, "manager", "dealership-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	gotUser, role, err := Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, userID, gotUser)
	assert.Equal(t, "manager", role)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := Generate(secret, userID, "admin", "dealership-api", -1)
	require.NoError(t, err)

	_, _, err = Parse(secret, tok)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := Generate(secret, userID, "admin", "dealership-api", 60)
	require.NoError(t, err)

	_, _, err = Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", userID, "admin", "dealership-api", 60)
	assert.Error(t, err)
	_, _, err = Parse("", "x.y.z")
	assert.Error(t, err)
}
