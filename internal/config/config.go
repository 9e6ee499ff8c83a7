// Package config loads the service configuration from an optional YAML/JSON
// file with PV_ environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/labsnomad/pv-storage-optimizer/internal/catalog"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Logging   LoggingConfig   `json:"logging"`
	Economics EconomicsConfig `json:"economics"`
	Catalog   CatalogConfig   `json:"catalog"`
	Cache     CacheConfig     `json:"cache"`
}

type ServerConfig struct {
	// Addr is the HTTP listen address.
	Addr string `json:"addr"`
	// StaticDir is served at / when the directory exists.
	StaticDir string `json:"static_dir"`
}

type LoggingConfig struct {
	Level  string `json:"level"`
	Pretty bool   `json:"pretty"`
}

type EconomicsConfig struct {
	// BatteryCostPerKWh overrides the heuristic storage unit cost.
	BatteryCostPerKWh float64 `json:"battery_cost_per_kwh"`
}

type CatalogConfig struct {
	// Modules are merged into the built-in PV module catalog.
	Modules []catalog.ModuleSpec `json:"modules"`
}

type CacheConfig struct {
	// Capacity bounds the number of retained evaluations.
	Capacity int `json:"capacity"`
}

// SetDefaults applies sane defaults for unset fields.
func (c *Config) SetDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = "frontend/build"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks field ranges not already covered by package-level checks.
func (c Config) Validate() error {
	if c.Economics.BatteryCostPerKWh < 0 {
		return fmt.Errorf("economics.battery_cost_per_kwh must be >= 0")
	}
	if c.Cache.Capacity < 0 {
		return fmt.Errorf("cache.capacity must be >= 0")
	}
	return nil
}

// Load reads the config file at path (YAML or JSON by extension) and applies
// PV_ environment overrides. An empty path yields defaults + environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}

	// Environment overrides: PV_SERVER__ADDR=:9090 → server.addr
	if err := k.Load(env.Provider("PV_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "pv_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
