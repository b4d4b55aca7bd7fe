package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "fileview"
	// ConfigName is the config file name without extension
	ConfigName = "fileview"
	// EnvPrefix prefixes every environment override (FILEVIEW_READ_MAX_WINDOW, ...)
	EnvPrefix = "FILEVIEW"
)

// Loader handles configuration loading on top of a viper instance.
// Flags bound to the same viper instance take precedence over env and file values.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader creates a Loader. configFile may be empty, in which case
// fileview.{yaml,json,toml} is looked up in ~/.config/fileview and the
// working directory.
func NewLoader(v *viper.Viper, configFile string) *Loader {
	if v == nil {
		v = viper.New()
	}
	return &Loader{v: v, configFile: configFile}
}

// Viper exposes the underlying instance so callers can bind flags before Load.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load merges defaults, the config file, FILEVIEW_* environment variables and
// bound flags, then validates the result.
// A missing config file is not an error unless it was named explicitly.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(l.v, cfg)

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName(ConfigName)
		if homeDir, err := os.UserHomeDir(); err == nil {
			l.v.AddConfigPath(filepath.Join(homeDir, ".config", ConfigDir))
		}
		l.v.AddConfigPath(".")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("root", cfg.Root)
	v.SetDefault("sandbox.mode", cfg.Sandbox.Mode)
	v.SetDefault("read.max_window", cfg.Read.MaxWindow)
	v.SetDefault("read.max_offset_read", cfg.Read.MaxOffsetRead)
	v.SetDefault("search.per_file_limit", cfg.Search.PerFileLimit)
	v.SetDefault("search.max_file_size", cfg.Search.MaxFileSize)
	v.SetDefault("search.max_context_lines", cfg.Search.MaxContextLines)
	v.SetDefault("search.exclude", cfg.Search.Exclude)
	v.SetDefault("search.respect_gitignore", cfg.Search.RespectGitignore)
	v.SetDefault("write.enabled", cfg.Write.Enabled)
	v.SetDefault("auth.username", cfg.Auth.Username)
	v.SetDefault("auth.password", cfg.Auth.Password)
	v.SetDefault("auth.session_secret", cfg.Auth.SessionSecret)
	v.SetDefault("server.listen", cfg.Server.Listen)
	v.SetDefault("server.shutdown_timeout", cfg.Server.ShutdownTimeout)
	v.SetDefault("server.max_upload_size", cfg.Server.MaxUploadSize)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.output_path", cfg.Log.OutputPath)
	v.SetDefault("metrics.enabled", cfg.Metrics.Enabled)
}
