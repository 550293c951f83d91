// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

// Package config loads and validates FieldPass configuration.
//
// Precedence, lowest to highest: built-in defaults, YAML config file,
// command-line flags, environment overrides (DATABASE_URL,
// FIELDPASS_JWT_SECRET). The result is an immutable Config passed down from
// the process entry point; nothing else reads flags, files, or the
// environment.
package config

import (
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Environment overrides. The signing secret in particular should come from
// the environment in production rather than a file on disk.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvJWTSecret   = "FIELDPASS_JWT_SECRET"
)

// Config is the full FieldPass configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
	Log      LogConfig      `koanf:"log"`
}

// ServerConfig configures the API HTTP server.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// MetricsConfig configures the observability listener.
type MetricsConfig struct {
	// Addr is the metrics/health listen address. Empty disables the listener.
	Addr string `koanf:"addr"`
}

// DatabaseConfig configures the credential store connection.
type DatabaseConfig struct {
	URL string `koanf:"url"`
}

// AuthConfig configures hashing-adjacent and token settings.
type AuthConfig struct {
	// Secret signs session tokens. Required; there is no default on purpose.
	Secret string `koanf:"secret"`

	// TokenTTL bounds token lifetime. Zero falls back to the auth package
	// default.
	TokenTTL time.Duration `koanf:"token_ttl"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Format string `koanf:"format"` // "json" or "text"
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "",
			Port:            5000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Metrics: MetricsConfig{
			Addr: "127.0.0.1:9100",
		},
		Auth: AuthConfig{
			TokenTTL: 24 * time.Hour,
		},
		Log: LogConfig{
			Format: "json",
		},
	}
}

// Load builds the configuration from the optional YAML file at path, the
// given flag set (flag names mirror config keys, e.g. --server.port), and
// environment overrides.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_FILE_FAILED").
				With("path", path).
				Wrap(err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, oops.Code("CONFIG_FLAGS_FAILED").Wrap(err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_PARSE_FAILED").Wrap(err)
	}

	if url := os.Getenv(EnvDatabaseURL); url != "" {
		cfg.Database.URL = url
	}
	if secret := os.Getenv(EnvJWTSecret); secret != "" {
		cfg.Auth.Secret = secret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return oops.Code("CONFIG_INVALID").
			Errorf("database URL is required (database.url or %s)", EnvDatabaseURL)
	}
	if c.Auth.Secret == "" {
		return oops.Code("CONFIG_INVALID").
			Errorf("token signing secret is required (auth.secret or %s)", EnvJWTSecret)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return oops.Code("CONFIG_INVALID").
			With("port", c.Server.Port).
			Errorf("server port must be in 1..65535")
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return oops.Code("CONFIG_INVALID").
			With("format", c.Log.Format).
			Errorf("log format must be 'json' or 'text'")
	}
	return nil
}
