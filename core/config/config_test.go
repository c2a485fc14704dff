package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"gamestats/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
	assert.Equal(t, "https://api.fortnitetracker.com/v1", cfg.Provider.BaseURL)
	assert.Equal(t, 5, cfg.Provider.BreakerThreshold)
	assert.False(t, cfg.Storage.Enabled)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "SERVER_PORT=9090\nPROVIDER_API_KEY=secret\nCACHE_DRIVER=none\nPROVIDER_MODES=all=lifeTimeStats,ltm=ltm1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	t.Cleanup(func() {
		for _, k := range []string{"SERVER_PORT", "PROVIDER_API_KEY", "CACHE_DRIVER", "PROVIDER_MODES"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "secret", cfg.Provider.APIKey)
	assert.Equal(t, "none", cfg.Cache.Driver)

	key, ok := cfg.Provider.ModeTable().Key("ltm")
	assert.True(t, ok)
	assert.Equal(t, "ltm1", key)
}
