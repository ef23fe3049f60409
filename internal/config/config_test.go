package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DEMO_MODE", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("LOGIN_DELAY_MS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.App.DemoMode)
	assert.Equal(t, "photoshare:current_user", cfg.Session.SnapshotKey)
	assert.Equal(t, 1000, cfg.Session.LoginDelayMS)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DEMO_MODE", "false")
	t.Setenv("LOGIN_DELAY_MS", "0")
	t.Setenv("REDIS_HOST", "redis:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.App.DemoMode)
	assert.Equal(t, 0, cfg.Session.LoginDelayMS)
	assert.Equal(t, "redis:6379", cfg.Redis.Host)
}

func TestProductionRequiresSessionSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestProductionRequiresDBPasswordOutsideDemoMode(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "real-secret")
	t.Setenv("DEMO_MODE", "false")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestNegativeLoginDelayRejected(t *testing.T) {
	t.Setenv("LOGIN_DELAY_MS", "-5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOGIN_DELAY_MS")
}
