package config_test

import (
	"testing"
	"time"

	"github.com/rayaboutique242-create/raya-console/internal/config"
	"github.com/stretchr/testify/require"
)

func TestAPIConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("RAYA_API_BASE", "")
		t.Setenv("RAYA_HTTP_TIMEOUT", "")
		c := config.New()
		require.Equal(t, "http://localhost:3000/api", c.GetAPIBaseURL())
		require.Equal(t, 30*time.Second, c.GetHTTPTimeout())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("RAYA_API_BASE", "https://api.raya.example/api/")
		t.Setenv("RAYA_HTTP_TIMEOUT", "5s")
		c := config.New()
		require.Equal(t, "https://api.raya.example/api", c.GetAPIBaseURL())
		require.Equal(t, 5*time.Second, c.GetHTTPTimeout())
	})

	t.Run("bad timeout falls back", func(t *testing.T) {
		t.Setenv("RAYA_HTTP_TIMEOUT", "soon")
		require.Equal(t, 30*time.Second, config.New().GetHTTPTimeout())
	})
}

func TestStorageConfig(t *testing.T) {
	t.Setenv("RAYA_STORE_PATH", config.MemoryStorePath)
	t.Setenv("RAYA_STORE_SECRET", "s3cret")
	c := config.New()
	require.Equal(t, config.MemoryStorePath, c.GetStorePath())
	require.Equal(t, "s3cret", c.GetStoreSecret())
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("APP_NAME", "")
	c := config.New()
	require.Equal(t, "PROD", c.GetEnv())
	require.Equal(t, "debug", c.GetLogLevel())
	require.Equal(t, "Raya Console", c.GetAppName())
}
