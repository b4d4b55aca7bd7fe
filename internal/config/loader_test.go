package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default search paths at an empty home directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// --- HAPPY PATH TESTS ---

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	isolate(t)
	loader := NewLoader(viper.New(), "")

	cfg, err := loader.Load()

	require.NoError(t, err)
	defaults := DefaultConfig()
	assert.Equal(t, defaults.Root, cfg.Root)
	assert.Equal(t, SandboxModeStrict, cfg.Sandbox.Mode)
	assert.Equal(t, int64(512000), cfg.Read.MaxWindow)
	assert.Equal(t, int64(10*1024*1024), cfg.Search.PerFileLimit)
	assert.False(t, cfg.Write.Enabled)
	assert.Equal(t, defaults.Server.ShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_YAMLFile_OverridesDefaults(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "fileview.yaml", `
root: /srv/logs
sandbox:
  mode: strip
read:
  max_window: 1024
search:
  per_file_limit: 2048
  exclude: ["*.gz", "tmp/"]
write:
  enabled: true
server:
  listen: "127.0.0.1:9000"
  shutdown_timeout: 30s
`)
	loader := NewLoader(viper.New(), path)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "/srv/logs", cfg.Root)
	assert.Equal(t, SandboxModeStrip, cfg.Sandbox.Mode)
	assert.Equal(t, int64(1024), cfg.Read.MaxWindow)
	assert.Equal(t, int64(2048), cfg.Search.PerFileLimit)
	assert.Equal(t, []string{"*.gz", "tmp/"}, cfg.Search.Exclude)
	assert.True(t, cfg.Write.Enabled)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)

	// Untouched keys keep their defaults
	assert.Equal(t, int64(0), cfg.Read.MaxOffsetRead)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ExplicitZeroValue_OverridesDefault(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "fileview.json", `{"metrics": {"enabled": false}}`)

	cfg, err := NewLoader(viper.New(), path).Load()

	require.NoError(t, err)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "fileview.yaml", "read:\n  max_window: 1024\n")
	t.Setenv("FILEVIEW_READ_MAX_WINDOW", "4096")
	t.Setenv("FILEVIEW_WRITE_ENABLED", "true")

	cfg, err := NewLoader(viper.New(), path).Load()

	require.NoError(t, err)
	assert.Equal(t, int64(4096), cfg.Read.MaxWindow)
	assert.True(t, cfg.Write.Enabled)
}

func TestLoad_ExplicitSetOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FILEVIEW_ROOT", "/from/env")
	v := viper.New()
	v.Set("root", "/from/flag")

	cfg, err := NewLoader(v, "").Load()

	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.Root)
}

// --- ERROR TESTS ---

func TestLoad_MissingExplicitFile_ReturnsError(t *testing.T) {
	isolate(t)
	loader := NewLoader(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := loader.Load()

	assert.Error(t, err)
}

func TestLoad_MalformedFile_ReturnsError(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "fileview.json", `{"read": {"max_window": `)

	_, err := NewLoader(viper.New(), path).Load()

	assert.Error(t, err)
}

func TestLoad_InvalidValues_FailValidation(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "fileview.yaml", "auth:\n  username: admin\n")

	_, err := NewLoader(viper.New(), path).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}
