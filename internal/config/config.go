// Package config provides configuration management for the mstparse CLI
// using Viper, loading values from a YAML file (.mstparse.yml), environment
// variables with the MSTPARSE_ prefix, and bound command-line flags.
//
// The parser engine itself performs no validation on Limits values (zero is
// legal and meaningful); validation here only rejects values that cannot
// express any limit, such as negatives, and unknown output formats.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/conneroisu/mstparse/pkg/parser"
)

// Config is the CLI runtime configuration.
type Config struct {
	Limits LimitsConfig `yaml:"limits" mapstructure:"limits"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log"    mapstructure:"log"`
}

// LimitsConfig mirrors parser.Limits for file/env/flag loading.
type LimitsConfig struct {
	MaxDepth int `yaml:"max_depth" mapstructure:"max_depth"`
	MaxNodes int `yaml:"max_nodes" mapstructure:"max_nodes"`
}

// OutputConfig controls how parse results are printed.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level"  mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	Trace  bool   `yaml:"trace"  mapstructure:"trace"`
}

// SetDefaults registers the default values with viper. Call once before
// reading config sources so unset keys resolve to usable values.
func SetDefaults() {
	defaults := parser.DefaultLimits()
	viper.SetDefault("limits.max_depth", defaults.MaxDepth)
	viper.SetDefault("limits.max_nodes", defaults.MaxNodes)
	viper.SetDefault("output.format", "text")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("log.trace", false)
}

// Load unmarshals the current viper state into a validated Config.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects values no limit or format can be built from.
func (c *Config) Validate() error {
	if c.Limits.MaxDepth < 0 {
		return fmt.Errorf("limits.max_depth must not be negative, got %d", c.Limits.MaxDepth)
	}
	if c.Limits.MaxNodes < 0 {
		return fmt.Errorf("limits.max_nodes must not be negative, got %d", c.Limits.MaxNodes)
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("output.format must be one of text, json, yaml; got %q", c.Output.Format)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// ParserLimits converts the configured limits into a parser.Limits value.
func (c *Config) ParserLimits() parser.Limits {
	return parser.Limits{
		MaxDepth: c.Limits.MaxDepth,
		MaxNodes: c.Limits.MaxNodes,
	}
}
