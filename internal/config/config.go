// Package config loads diamond settings from a YAML file, DIAMOND_*
// environment variables and defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// Ancestry is how many D values back a PS: "shared" or "duplicated".
	Ancestry string        `mapstructure:"ancestry" validate:"required,oneof=shared duplicated"`
	Logging  LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
	Output string `mapstructure:"output" validate:"required"`
}

// Default returns the configuration used when nothing else is given.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero values and normalizes case.
func ApplyDefaults(cfg *Config) {
	if cfg.Ancestry == "" {
		cfg.Ancestry = "shared"
	}
	cfg.Ancestry = strings.ToLower(cfg.Ancestry)

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "WARN"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}

var validate = validator.New()

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	return validate.Struct(cfg)
}

// Load loads configuration.
//
// Precedence (highest to lowest):
//  1. Environment variables (DIAMOND_*)
//  2. Configuration file
//  3. Default values
//
// An empty configPath reads no file. A configPath that does not exist is an
// error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DIAMOND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about.
	v.SetDefault("ancestry", "")
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.output", "")

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("configuration file not found: %s: %w", configPath, err)
		}
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}
