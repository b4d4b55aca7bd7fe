package config

import (
	"fmt"
)

// Validate checks config values for correctness.
// Every violation is collected so a bad config file is fixed in one pass.
func (c *Config) Validate() error {
	var errs []string

	if c.Root == "" {
		errs = append(errs, "root must not be empty")
	}

	switch c.Sandbox.Mode {
	case SandboxModeStrict, SandboxModeStrip:
	default:
		errs = append(errs, fmt.Sprintf("sandbox.mode must be %q or %q, got %q", SandboxModeStrict, SandboxModeStrip, c.Sandbox.Mode))
	}

	// Read
	if c.Read.MaxWindow < 1 {
		errs = append(errs, "read.max_window must be >= 1")
	}
	if c.Read.MaxOffsetRead < 0 {
		errs = append(errs, "read.max_offset_read must be >= 0")
	}

	// Search
	if c.Search.PerFileLimit < 1 {
		errs = append(errs, "search.per_file_limit must be >= 1")
	}
	if c.Search.MaxFileSize < 0 {
		errs = append(errs, "search.max_file_size must be >= 0")
	}
	if c.Search.MaxContextLines < 0 {
		errs = append(errs, "search.max_context_lines must be >= 0")
	}

	// Auth: both or neither
	if (c.Auth.Username == "") != (c.Auth.Password == "") {
		errs = append(errs, "auth.username and auth.password must be set together")
	}

	// Server
	if c.Server.Listen == "" {
		errs = append(errs, "server.listen must not be empty")
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "server.shutdown_timeout must be > 0")
	}
	if c.Server.MaxUploadSize < 0 {
		errs = append(errs, "server.max_upload_size must be >= 0")
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or console, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
