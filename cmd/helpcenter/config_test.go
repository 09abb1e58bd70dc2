package main_test

import (
	"testing"

	"github.com/fwojciec/helpcenter"
	main "github.com/fwojciec/helpcenter/cmd/helpcenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("returns defaults when file is missing", func(t *testing.T) {
		cfg, err := main.LoadConfig("/nonexistent/helpcenter.yaml")

		require.NoError(t, err)
		assert.Equal(t, helpcenter.ThemeLight, cfg.DefaultTheme)
		assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
		assert.NotEmpty(t, cfg.DBPath)
	})

	t.Run("reads values from YAML file", func(t *testing.T) {
		path := writeTempFile(t, "helpcenter.yaml", `
db_path: /tmp/hc.db
catalog_path: catalog.yaml
default_theme: dark
listen_addr: ":9000"
allow_all_origins: true
scan_rps: 0.5
scan_concurrency: 8
`)

		cfg, err := main.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, &main.Config{
			DBPath:          "/tmp/hc.db",
			CatalogPath:     "catalog.yaml",
			DefaultTheme:    helpcenter.ThemeDark,
			ListenAddr:      ":9000",
			AllowAllOrigins: true,
			ScanRPS:         0.5,
			ScanConcurrency: 8,
		}, cfg)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeTempFile(t, "helpcenter.yaml", "default_theme: dark\nlisten_addr: \":9000\"\n")
		t.Setenv("HELPCENTER_LISTEN_ADDR", ":7000")
		t.Setenv("HELPCENTER_DEFAULT_THEME", "light")

		cfg, err := main.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, ":7000", cfg.ListenAddr)
		assert.Equal(t, helpcenter.ThemeLight, cfg.DefaultTheme)
	})

	t.Run("rejects unsupported theme", func(t *testing.T) {
		path := writeTempFile(t, "helpcenter.yaml", "default_theme: sepia\n")

		_, err := main.LoadConfig(path)

		require.Error(t, err)
		assert.Equal(t, helpcenter.EINVALID, helpcenter.ErrorCode(err))
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		path := writeTempFile(t, "helpcenter.yaml", "listen_addr: [\n")

		_, err := main.LoadConfig(path)

		require.Error(t, err)
	})
}
