package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SESSION_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Port)
	assert.Equal(t, "sqlite://kurevin.db", cfg.DBURL)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, int64(32<<20), cfg.MaxUploadBytes())
	assert.True(t, cfg.UsesDevSecret())
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_UPLOAD_MB", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, int64(8<<20), cfg.MaxUploadBytes())
	assert.False(t, cfg.UsesDevSecret())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_RejectsZeroUploadLimit(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("MAX_UPLOAD_MB", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_UnsetEnvNeverUsesDevSecret(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	require.NoError(t, os.Unsetenv("APP_ENV"))
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SESSION_SECRET", "s3cret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.UsesDevSecret())
}
