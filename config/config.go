// SPDX-License-Identifier: MIT

// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd/phylotree).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/viper"
)

// Setting keys, shared with the cobra flag bindings.
const (
	KeyPrintWidth  = "print.width"
	KeyPrintFill   = "print.fill"
	KeyPrintFormat = "print.format"
	KeyLogLevel    = "log.level"
	KeyMetricsFile = "metrics.file"
)

// Output formats accepted by PrintConfig.Format.
const (
	FormatIndented = "indented"
	FormatNewick   = "newick"
	FormatBoth     = "both"
)

// EnvPrefix prefixes environment overrides, e.g. PHYLOTREE_PRINT_WIDTH.
const EnvPrefix = "PHYLOTREE"

// ErrInvalid indicates a setting failed validation.
var ErrInvalid = errors.New("config: invalid setting")

// PrintConfig controls tree rendering.
type PrintConfig struct {
	// fill characters used for the deepest node of the indented view
	Width int `mapstructure:"width"`

	// single character used for indentation
	Fill string `mapstructure:"fill"`

	// one of indented, newick, both
	Format string `mapstructure:"format"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	// slog level name: debug, info, warn, error
	Level string `mapstructure:"level"`
}

// MetricsConfig controls metrics export.
type MetricsConfig struct {
	// Prometheus textfile to write after the run; empty disables export
	File string `mapstructure:"file"`
}

// Config is the root-level settings struct and is a mix of settings from
// an optional config file, PHYLOTREE_* environment variables and flags.
type Config struct {
	Print   PrintConfig   `mapstructure:"print"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// SetDefaults registers the default value of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPrintWidth, 80)
	v.SetDefault(KeyPrintFill, ".")
	v.SetDefault(KeyPrintFormat, FormatBoth)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyMetricsFile, "")
}

// NewViper returns a viper instance with defaults and environment overrides.
// If configFile is not empty it is read as well.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unable to decode into struct: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if c.Print.Width <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, KeyPrintWidth, c.Print.Width)
	}
	if utf8.RuneCountInString(c.Print.Fill) != 1 || unicode.IsControl(c.Print.FillRune()) {
		return fmt.Errorf("%w: %s must be one printable character, got %q", ErrInvalid, KeyPrintFill, c.Print.Fill)
	}
	switch c.Print.Format {
	case FormatIndented, FormatNewick, FormatBoth:
	default:
		return fmt.Errorf("%w: %s must be indented, newick or both, got %q", ErrInvalid, KeyPrintFormat, c.Print.Format)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// FillRune returns the fill character.
func (p PrintConfig) FillRune() rune {
	r, _ := utf8.DecodeRuneInString(p.Fill)

	return r
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLogLevel, err)
	}

	return level, nil
}
