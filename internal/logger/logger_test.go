package logger

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/config"
)

func TestManagerPackageLevels(t *testing.T) {
	m, err := NewManager(&config.LogConfig{
		Level:  "info",
		Format: "json",
		Levels: map[string]string{
			"loader": "debug",
			"render": "warn",
		},
	})
	require.NoError(t, err)
	defer m.Close()

	tests := []struct {
		pkg   string
		level zerolog.Level
	}{
		{pkg: "loader", level: zerolog.DebugLevel},
		{pkg: "render", level: zerolog.WarnLevel},
		{pkg: "api", level: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.pkg, func(t *testing.T) {
			assert.Equal(t, tt.level, m.GetLogger(tt.pkg).GetLevel())
		})
	}
}

func TestManagerFileOutput(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain", "portfolio.log")
	rotated := filepath.Join(dir, "rotated", "portfolio.log")

	m, err := NewManager(&config.LogConfig{
		Level:  "info",
		Format: "json",
		Output: []config.LogOutputConfig{
			{Type: "file", Enabled: true, Path: plain},
			{Type: "file", Enabled: true, Path: rotated, Rotate: config.LogRotateConfig{MaxSizeMB: 1}},
			{Type: "console", Enabled: false},
		},
	})
	require.NoError(t, err)

	log := m.GetLogger("loader")
	log.Warn().Str("path", "data/portfolio.json").Msg("load failed")
	require.NoError(t, m.Close())

	for _, path := range []string{plain, rotated} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"pkg":"loader"`)
		assert.Contains(t, string(data), `"message":"load failed"`)
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestManagerCloseReachesEveryOutput(t *testing.T) {
	var closed []string
	failing := func(name string) io.Closer {
		return closerFunc(func() error {
			closed = append(closed, name)
			return errors.New(name + " failed")
		})
	}
	m := &Manager{closers: []io.Closer{
		failing("first"),
		closerFunc(func() error { closed = append(closed, "second"); return nil }),
		failing("third"),
	}}

	err := m.Close()
	assert.Equal(t, []string{"first", "second", "third"}, closed)
	assert.ErrorContains(t, err, "first failed")
	assert.ErrorContains(t, err, "third failed")
}

func TestManagerRejectsUnknownOutput(t *testing.T) {
	_, err := NewManager(&config.LogConfig{
		Output: []config.LogOutputConfig{{Type: "syslog", Enabled: true}},
	})
	assert.ErrorContains(t, err, "unsupported output type: syslog")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARNING"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("Error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
}
