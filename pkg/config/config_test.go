package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gevp/gevp-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, 30, cfg.JWT.Expiration)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, "gevp-api", cfg.App.Name)
}

func TestLoad_ExpiracionDesdeEnv(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "45")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.JWT.Expiration)
}

// Un valor no numérico no debe convertirse en 0: con expiración 0 todos los
// tokens nacerían ya expirados.
func TestLoad_ExpiracionMalformadaUsaDefault(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "treinta")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.JWT.Expiration)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	url := config.DBConfig{DatabaseURL: "postgresql://u:p@host:5432/db?sslmode=require"}
	assert.Equal(t, "postgresql://u:p@host:5432/db?sslmode=require", url.ConnectionString())

	built := config.DBConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "p@ss/word", DBName: "gevp", SSLMode: "disable"}
	dsn := built.ConnectionString()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%2Fword", "la contraseña debe ir URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}
