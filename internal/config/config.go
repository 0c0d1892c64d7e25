// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package config

import (
	"errors"
	"log/slog"
	"strings"

	fkerr "github.com/factkit/factkit/pkg/errors"
	"github.com/spf13/viper"
)

// Output formats accepted by output.format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the top-level factkit configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Output  OutputConfig  `mapstructure:"output"`
	Dataset DatasetConfig `mapstructure:"dataset"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig controls how command results are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// DatasetConfig points at the YAML dataset. An empty path selects the
// built-in demo data.
type DatasetConfig struct {
	Path string `mapstructure:"path"`
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SetDefaults registers every key with its default so env overrides and
// Unmarshal see the full key set.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("output.format", FormatText)
	v.SetDefault("output.color", true)
	v.SetDefault("dataset.path", "")
}

// SetupEnv maps FACTKIT_<SECTION>_<KEY> variables onto config keys.
func SetupEnv(v *viper.Viper) {
	v.SetEnvPrefix("FACTKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads configuration from the given path (or defaults) with
// environment variable overrides (prefix FACTKIT_).
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	SetupEnv(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fkerr.Errorf(fkerr.CodeConfigLoadReadFailure, "reading config %s: %w", path, err)
		}
	}

	return FromViper(v)
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fkerr.Errorf(fkerr.CodeConfigParseInvalidFormat, "unmarshalling config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fkerr.Errorf(fkerr.CodeConfigValidateInvalidValue, "validating config: %w", errors.Join(errs...))
	}

	return &cfg, nil
}

// Validate checks the configuration for logical errors.
// It returns a slice of all validation errors found, collecting all issues
// rather than stopping at the first one.
func (c *Config) Validate() []error {
	var errs []error

	if _, ok := logLevels[c.Log.Level]; !ok {
		errs = append(errs, fkerr.Errorf(fkerr.CodeConfigValidateInvalidValue,
			"config: log.level must be one of [debug, info, warn, error], got %q", c.Log.Level))
	}

	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fkerr.Errorf(fkerr.CodeConfigValidateInvalidValue,
			"config: output.format must be one of [text, json], got %q", c.Output.Format))
	}

	if c.Dataset.Path != "" && strings.TrimSpace(c.Dataset.Path) == "" {
		errs = append(errs, fkerr.Errorf(fkerr.CodeConfigValidateInvalidValue,
			"config: dataset.path must not be blank"))
	}

	return errs
}

// SlogLevel returns the configured level, or Info when unset.
func (l LogConfig) SlogLevel() slog.Level {
	if level, ok := logLevels[l.Level]; ok {
		return level
	}
	return slog.LevelInfo
}
