package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_DefaultsWithSecretSet(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8, cfg.JWTExpirationHours)
}
