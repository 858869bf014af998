package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/gevp/gevp-api/pkg/jwt"
)

const (
	testSecret  = "test-secret-key-for-unit-tests"
	testUserID  = "00000000-0000-0000-0000-000000000001"
	testCountry = "00000000-0000-0000-0000-000000000002"
	testIssuer  = "gevp-api-test"
	testExpMin  = 30
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "HS256", testUserID, "EDITOR", testCountry, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, countryID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "EDITOR", role)
	assert.Equal(t, testCountry, countryID)
}

func TestJWT_AlgoritmosHMACAlternativos(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		tok, err := pkgjwt.Generate(testSecret, alg, testUserID, "SUPER_ADMIN", "", testIssuer, testExpMin)
		require.NoError(t, err, alg)

		userID, role, _, err := pkgjwt.Parse(testSecret, tok)
		require.NoError(t, err, alg)
		assert.Equal(t, testUserID, userID)
		assert.Equal(t, "SUPER_ADMIN", role)
	}
}

func TestJWT_AlgoritmoNoHMAC_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate(testSecret, "RS256", testUserID, "EDITOR", "", testIssuer, testExpMin)
	assert.Error(t, err, "algoritmos fuera de la familia HMAC deben rechazarse")
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, "HS256", testUserID, "EDITOR", "", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "HS256", testUserID, "EDITOR", "", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_TokenMalformado_RetornaError(t *testing.T) {
	_, _, _, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}
