package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

lexical_service:
  base_url: "http://localhost:8000"
  timeout: "3s"

index:
  path: "/tmp/uri.csv"

endings:
  path: "endings.json"

log:
  level: "debug"
  format: "text"

cors:
  allowed_origins: "https://a.example, https://b.example"
  max_age: 60
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", writeYAML(t, dir, validYAML))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "http://localhost:8000", cfg.LexicalService.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.LexicalService.Timeout)
	assert.Equal(t, "/tmp/uri.csv", cfg.Index.Path)
	assert.Equal(t, "endings.json", cfg.Endings.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.Origins())
	assert.Equal(t, 60, cfg.CORS.MaxAge)
	// Unset in YAML, so the default applies.
	assert.Equal(t, []string{"GET", "OPTIONS"}, cfg.CORS.Methods())
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", writeYAML(t, dir, validYAML))
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Defaults(t *testing.T) {
	// No CONFIG_PATH and no ./config.yaml in the package directory.
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://latinwordnet.exeter.ac.uk", cfg.LexicalService.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.LexicalService.Timeout)
	assert.Equal(t, "uri.csv", cfg.Index.Path)
	assert.Empty(t, cfg.Endings.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port zero", "SERVER_PORT", "0"},
		{"port too high", "SERVER_PORT", "70000"},
		{"relative base url", "LWN_BASE_URL", "latinwordnet"},
		{"zero timeout", "LWN_TIMEOUT", "0s"},
		{"bad log format", "LOG_FORMAT", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_PATH", "")
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,, b "))
}
