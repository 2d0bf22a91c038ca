package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "data/app.db", cfg.DBPath)
	assert.Equal(t, 30*time.Minute, cfg.RouteTTL)
	assert.Equal(t, 3, cfg.RouteAlternatives)
	assert.Equal(t, 4, cfg.GenerateWorkers)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9000\"\ngenerate_workers: 2\nroute_ttl: 10m\n"), 0o644))
	t.Setenv("PORT", "9100")
	t.Setenv("DB_DRIVER", " SQLite ")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, 2, cfg.GenerateWorkers)
	assert.Equal(t, 10*time.Minute, cfg.RouteTTL)
	assert.Equal(t, "sqlite", cfg.DBDriver)
}

func TestLoadValidation(t *testing.T) {
	t.Run("postgres needs url", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		_, err := Load("")
		assert.Error(t, err)

		t.Setenv("DATABASE_URL", "postgres://localhost/places")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "postgres", cfg.DBDriver)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("alternatives", func(t *testing.T) {
		t.Setenv("ROUTE_ALTERNATIVES", "0")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestGet(t *testing.T) {
	t.Setenv("POI_TEST_KEY", "set")
	assert.Equal(t, "set", Get("POI_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", Get("POI_TEST_KEY_UNSET", "fallback"))
}
