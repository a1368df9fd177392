package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "LISTEN_ADDR", "DATABASE_PATH", "GIN_MODE", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(EnvPrefix+key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Equal(t, "stellarnotes.db", cfg.DatabasePath)
	require.Equal(t, "release", cfg.GinMode)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 10, cfg.LogMaxSizeMB)
	require.Equal(t, 5, cfg.LogMaxFiles)
	require.False(t, cfg.IsProduction())
}

func TestLoadReadsPrefixedEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"ENV", "production")
	t.Setenv(EnvPrefix+"PORT", "9090")
	t.Setenv(EnvPrefix+"LISTEN_ADDR", "")
	t.Setenv(EnvPrefix+"DATABASE_PATH", "/tmp/notes.db")
	t.Setenv(EnvPrefix+"GIN_MODE", "Debug")
	t.Setenv(EnvPrefix+"LOG_LEVEL", "warn")
	t.Setenv(EnvPrefix+"LOG_MAX_SIZE_MB", "25")

	cfg, err := Load()
	require.NoError(t, err)

	require.True(t, cfg.IsProduction())
	require.Equal(t, ":9090", cfg.ListenAddr)
	require.Equal(t, "/tmp/notes.db", cfg.DatabasePath)
	require.Equal(t, "debug", cfg.GinMode)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, 25, cfg.LogMaxSizeMB)
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv(EnvPrefix+"LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
}
