// Package config resolves lvkit settings from flags, LVKIT_* environment
// variables and an optional YAML config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. LVKIT_CAPACITY.
const EnvPrefix = "LVKIT"

// Keys shared by flags, environment variables and the config file.
const (
	KeyCapacity  = "capacity"
	KeyLines     = "lines"
	KeyOutput    = "output"
	KeyDebug     = "debug"
	KeyQuiet     = "quiet"
	KeyLogFormat = "log-format"
	KeyLogFile   = "log-file"
)

// CapacityUnset marks a capacity that no source provided.
const CapacityUnset = -1

// ErrInvalidConfig is returned when a resolved value is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the resolved command configuration.
type Config struct {
	// Capacity is the knapsack weight budget; CapacityUnset if not given.
	Capacity int `mapstructure:"capacity"`

	// Lines is the window size of the tail command.
	Lines int `mapstructure:"lines"`

	// Output selects the renderer: table, yaml or json.
	Output string `mapstructure:"output"`

	Debug     bool   `mapstructure:"debug"`
	Quiet     bool   `mapstructure:"quiet"`
	LogFormat string `mapstructure:"log-format"`
	LogFile   string `mapstructure:"log-file"`
}

// SetDefaults registers default values and environment binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCapacity, CapacityUnset)
	v.SetDefault(KeyLines, 10)
	v.SetDefault(KeyOutput, "table")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads cfgFile (if not empty) into v and unmarshals the result.
// SetDefaults must have been called on v.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges. Capacity is validated by the solver itself.
func (c *Config) Validate() error {
	if c.Lines <= 0 {
		return fmt.Errorf("%w: lines must be positive, got %d", ErrInvalidConfig, c.Lines)
	}
	switch c.Output {
	case "table", "yaml", "json":
	default:
		return fmt.Errorf("%w: unknown output %q (want table, yaml or json)", ErrInvalidConfig, c.Output)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q (want text or json)", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}
