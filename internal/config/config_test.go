package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "grillaway_", cfg.Storage.Prefix)
	assert.Equal(t, int64(20000), cfg.Shipping.InternalCost)
	assert.False(t, cfg.Shipping.PriceExternal)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GRILLAWAY_STORAGE_DRIVER", "memory")
	t.Setenv("GRILLAWAY_SHIPPING_PRICE_EXTERNAL", "true")
	t.Setenv("GRILLAWAY_SERVER_SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.True(t, cfg.Shipping.PriceExternal)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_FlagsBeatEnv(t *testing.T) {
	t.Setenv("GRILLAWAY_STORAGE_DRIVER", "memory")

	cfg, err := Load([]string{"--storage", "sqlite", "--data", "/tmp/shop.db", "--addr", ":9090"})
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/shop.db", cfg.Storage.Path)
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grillaway.yaml")
	content := `
shipping:
  internal_cost: 25000
  price_external: true
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load([]string{"--config", path})
	require.NoError(t, err)

	assert.Equal(t, int64(25000), cfg.Shipping.InternalCost)
	assert.True(t, cfg.Shipping.PriceExternal)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "unknown driver", args: []string{"--storage", "mongo"}},
		{name: "bad log level", args: []string{"--log-level", "verbose"}},
		{name: "s3 without bucket", args: []string{"--storage", "s3"}},
		{name: "negative shipping", env: map[string]string{"GRILLAWAY_SHIPPING_INTERNAL_COST": "-1"}},
		{name: "unknown flag", args: []string{"--nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.args)
			assert.Error(t, err)
		})
	}
}
