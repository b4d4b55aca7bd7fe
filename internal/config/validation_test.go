package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"Empty Root Fails", func(c *Config) { c.Root = "" }, "root"},
		{"Unknown Sandbox Mode Fails", func(c *Config) { c.Sandbox.Mode = "loose" }, "sandbox.mode"},
		{"Zero Max Window Fails", func(c *Config) { c.Read.MaxWindow = 0 }, "read.max_window"},
		{"Negative Offset Read Fails", func(c *Config) { c.Read.MaxOffsetRead = -1 }, "read.max_offset_read"},
		{"Zero Per File Limit Fails", func(c *Config) { c.Search.PerFileLimit = 0 }, "search.per_file_limit"},
		{"Negative Max File Size Fails", func(c *Config) { c.Search.MaxFileSize = -5 }, "search.max_file_size"},
		{"Negative Context Lines Fails", func(c *Config) { c.Search.MaxContextLines = -1 }, "search.max_context_lines"},
		{"Username Without Password Fails", func(c *Config) { c.Auth.Username = "admin" }, "auth.username"},
		{"Password Without Username Fails", func(c *Config) { c.Auth.Password = "secret" }, "auth.password"},
		{"Empty Listen Fails", func(c *Config) { c.Server.Listen = "" }, "server.listen"},
		{"Zero Shutdown Timeout Fails", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "server.shutdown_timeout"},
		{"Negative Upload Size Fails", func(c *Config) { c.Server.MaxUploadSize = -1 }, "server.max_upload_size"},
		{"Unknown Log Level Fails", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"Unknown Log Format Fails", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_AllowedValues(t *testing.T) {
	t.Run("Strip Mode Pass", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Sandbox.Mode = SandboxModeStrip
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Credential Pair Pass", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Auth.Username = "admin"
		cfg.Auth.Password = "secret"
		assert.NoError(t, cfg.Validate())
		assert.True(t, cfg.Auth.Enabled())
	})

	// Zero means unbounded for the optional caps
	t.Run("Zero Optional Caps Pass", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Read.MaxOffsetRead = 0
		cfg.Search.MaxFileSize = 0
		cfg.Search.MaxContextLines = 0
		cfg.Server.MaxUploadSize = 0
		cfg.Server.ShutdownTimeout = time.Second
		assert.NoError(t, cfg.Validate())
	})
}

func TestValidate_MultipleErrorsReported(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Read.MaxWindow = 0
	cfg.Log.Format = "xml"

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read.max_window")
	assert.Contains(t, err.Error(), "log.format")
}
