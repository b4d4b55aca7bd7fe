package config

import "time"

// Sandbox modes accepted by sandbox.mode.
const (
	SandboxModeStrict = "strict"
	SandboxModeStrip  = "strip"
)

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via config file,
// FILEVIEW_* environment variables and command line flags.
// NOTE: Values from any source override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Root    string        `mapstructure:"root" json:"root"`
	Sandbox SandboxConfig `mapstructure:"sandbox" json:"sandbox"`
	Read    ReadConfig    `mapstructure:"read" json:"read"`
	Search  SearchConfig  `mapstructure:"search" json:"search"`
	Write   WriteConfig   `mapstructure:"write" json:"write"`
	Auth    AuthConfig    `mapstructure:"auth" json:"auth"`
	Server  ServerConfig  `mapstructure:"server" json:"server"`
	Log     LogConfig     `mapstructure:"log" json:"log"`
	Metrics MetricsConfig `mapstructure:"metrics" json:"metrics"`
}

type SandboxConfig struct {
	Mode string `mapstructure:"mode" json:"mode"` // Default: "strict"
}

type ReadConfig struct {
	MaxWindow     int64 `mapstructure:"max_window" json:"max_window"`           // Default: 512000
	MaxOffsetRead int64 `mapstructure:"max_offset_read" json:"max_offset_read"` // Default: 0 (unbounded)
}

type SearchConfig struct {
	PerFileLimit     int64    `mapstructure:"per_file_limit" json:"per_file_limit"`       // Default: 10 * 1024 * 1024 (10MiB)
	MaxFileSize      int64    `mapstructure:"max_file_size" json:"max_file_size"`         // Default: 0 (unbounded)
	MaxContextLines  int      `mapstructure:"max_context_lines" json:"max_context_lines"` // Default: 10000
	Exclude          []string `mapstructure:"exclude" json:"exclude"`
	RespectGitignore bool     `mapstructure:"respect_gitignore" json:"respect_gitignore"` // Default: false
}

type WriteConfig struct {
	Enabled bool `mapstructure:"enabled" json:"enabled"` // Default: false
}

type AuthConfig struct {
	Username      string `mapstructure:"username" json:"username"`
	Password      string `mapstructure:"password" json:"-"`
	SessionSecret string `mapstructure:"session_secret" json:"-"`
}

// Enabled reports whether login is required.
func (a AuthConfig) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

type ServerConfig struct {
	Listen          string        `mapstructure:"listen" json:"listen"`                     // Default: ":8000"
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" json:"shutdown_timeout"` // Default: 10s
	MaxUploadSize   int64         `mapstructure:"max_upload_size" json:"max_upload_size"`   // Default: 0 (unbounded)
}

type LogConfig struct {
	Level      string `mapstructure:"level" json:"level"`             // Default: "info"
	Format     string `mapstructure:"format" json:"format"`           // Default: "console"
	OutputPath string `mapstructure:"output_path" json:"output_path"` // Default: "stderr"
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" json:"enabled"` // Default: true
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Root: ".",
		Sandbox: SandboxConfig{
			Mode: SandboxModeStrict,
		},
		Read: ReadConfig{
			MaxWindow:     512000,
			MaxOffsetRead: 0,
		},
		Search: SearchConfig{
			PerFileLimit:     10 * 1024 * 1024,
			MaxFileSize:      0,
			MaxContextLines:  10000,
			Exclude:          []string{},
			RespectGitignore: false,
		},
		Write: WriteConfig{
			Enabled: false,
		},
		Server: ServerConfig{
			Listen:          ":8000",
			ShutdownTimeout: 10 * time.Second,
			MaxUploadSize:   0,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stderr",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}
