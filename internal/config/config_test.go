package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "frontend/build", cfg.Server.StaticDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Zero(t, cfg.Economics.BatteryCostPerKWh)
	assert.Zero(t, cfg.Cache.Capacity)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  addr: ":9000"
logging:
  level: debug
  pretty: true
economics:
  battery_cost_per_kwh: 1200
catalog:
  modules:
    - name: Acme Ultra
      efficiency: 0.23
      price_per_watt: 3.1
cache:
  capacity: 32
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
	assert.InDelta(t, 1200, cfg.Economics.BatteryCostPerKWh, 1e-9)
	require.Len(t, cfg.Catalog.Modules, 1)
	assert.Equal(t, "Acme Ultra", cfg.Catalog.Modules[0].Name)
	assert.Equal(t, 32, cfg.Cache.Capacity)
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"server": {"addr": ":7070", "static_dir": "public"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "public", cfg.Server.StaticDir)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PV_SERVER__ADDR", ":6060")
	t.Setenv("PV_LOGGING__LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9000\"\n"), 0o644))
	t.Setenv("PV_SERVER__ADDR", ":5050")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":5050", cfg.Server.Addr)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("config.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_Ranges(t *testing.T) {
	cfg := Config{}
	cfg.Economics.BatteryCostPerKWh = -1
	assert.Error(t, cfg.Validate())

	cfg = Config{}
	cfg.Cache.Capacity = -1
	assert.Error(t, cfg.Validate())
}
