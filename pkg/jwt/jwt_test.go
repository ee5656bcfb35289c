package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/almacen-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "almacen-api-test"
)

func testIdentity() pkgjwt.Identity {
	return pkgjwt.Identity{
		UserID:    "00000000-0000-0000-0000-000000000001",
		Username:  "alice",
		Email:     "alice@example.com",
		Role:      "Manager",
		FirstName: "Alice",
		LastName:  "Liddell",
		FullName:  "Alice Liddell",
	}
}

func TestGenerateAndParse_ConservaIdentidad(t *testing.T) {
	now := time.Now()
	tok, exp, err := pkgjwt.Generate(testSecret, testIssuer, testIdentity(), 24*60, now)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.WithinDuration(t, now.Add(24*time.Hour), exp, time.Second)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Manager", claims.Role)
	assert.Equal(t, "Alice Liddell", claims.FullName)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, testIssuer, testIdentity(), 60, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, testIssuer, testIdentity(), 60, time.Now())
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, _, err := pkgjwt.Generate("", testIssuer, testIdentity(), 60, time.Now())
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)

	_, err = pkgjwt.Parse("", "x.y.z")
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)
}

func TestParse_TokenMalformado(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}
