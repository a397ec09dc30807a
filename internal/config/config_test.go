package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "static", cfg.Site.Dir)
	assert.Equal(t, "index.html", cfg.Site.Page)
	assert.Equal(t, "data/portfolio.json", cfg.Site.DataPath)
	assert.Equal(t, "web", cfg.Site.DefaultFilter)
	assert.Empty(t, cfg.Site.DataBaseURL)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "WARN", cfg.Log.Levels["render"])
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORTFOLIO_SERVER_ADDR", ":9090")
	t.Setenv("PORTFOLIO_SITE_DIR", "public")
	t.Setenv("PORTFOLIO_SITE_DEFAULT_FILTER", "all")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "public", cfg.Site.Dir)
	assert.Equal(t, "all", cfg.Site.DefaultFilter)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: "127.0.0.1:3000"
site:
  dir: ./site
  data_base_url: https://cdn.test/
log:
  format: json
  level: debug
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:3000", cfg.Server.Addr)
	assert.Equal(t, "./site", cfg.Site.Dir)
	assert.Equal(t, "https://cdn.test/", cfg.Site.DataBaseURL)
	assert.Equal(t, "index.html", cfg.Site.Page, "unset keys keep defaults")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown filter", yaml: "site:\n  default_filter: games\n"},
		{name: "bad log format", yaml: "log:\n  format: xml\n"},
		{name: "empty page", yaml: "site:\n  page: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			_, err := Load(path)
			assert.ErrorContains(t, err, "config validation failed")
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
