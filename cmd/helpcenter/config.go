package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/helpcenter"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override the
// config file.
const EnvPrefix = "HELPCENTER_"

// Config holds settings read from the optional config file and environment.
type Config struct {
	DBPath          string           `koanf:"db_path"`
	CatalogPath     string           `koanf:"catalog_path"`
	DefaultTheme    helpcenter.Theme `koanf:"default_theme"`
	ListenAddr      string           `koanf:"listen_addr"`
	AllowAllOrigins bool             `koanf:"allow_all_origins"`
	ScanRPS         float64          `koanf:"scan_rps"`
	ScanConcurrency int              `koanf:"scan_concurrency"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		DBPath:          defaultDBPath(),
		DefaultTheme:    helpcenter.ThemeLight,
		ListenAddr:      "127.0.0.1:8080",
		ScanRPS:         2,
		ScanConcurrency: 4,
	}
}

// LoadConfig reads the YAML file at path, if it exists, then overlays
// HELPCENTER_* environment variables (HELPCENTER_DB_PATH -> db_path).
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return helpcenter.Errorf(helpcenter.EINVALID, "db_path is required")
	}
	if err := c.DefaultTheme.Validate(); err != nil {
		return helpcenter.Errorf(helpcenter.EINVALID, "default_theme: %s", helpcenter.ErrorMessage(err))
	}
	if c.ScanRPS < 0 {
		return helpcenter.Errorf(helpcenter.EINVALID, "scan_rps must be non-negative")
	}
	if c.ScanConcurrency < 1 {
		return helpcenter.Errorf(helpcenter.EINVALID, "scan_concurrency must be at least 1")
	}
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "helpcenter.db"
	}
	return filepath.Join(home, ".helpcenter", "helpcenter.db")
}
