// Package config holds nwalign CLI configuration loaded from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "nwalign.yaml"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all nwalign settings.
type Config struct {
	// Gap is the single character written into gap columns.
	Gap string `yaml:"gap"`

	// Format selects text or json output.
	Format string `yaml:"format"`

	// ShowMatrix prints the score and flag tables before the alignment.
	ShowMatrix bool `yaml:"show_matrix"`

	// Midline prints a match line between the aligned sequences (text format).
	Midline bool `yaml:"midline"`

	// AllowGapInSequence accepts inputs containing the gap character.
	AllowGapInSequence bool `yaml:"allow_gap_in_sequence"`

	// FASTA treats positional sequence arguments as FASTA file paths.
	FASTA bool `yaml:"fasta"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Gap:      "-",
		Format:   FormatText,
		LogLevel: "warn",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Gap) != 1 {
		return fmt.Errorf("%w: gap must be exactly one character, got %q", ErrInvalid, c.Gap)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalid, c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
	}

	return nil
}

// GapRune returns the gap as a rune. Call after Validate.
func (c *Config) GapRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Gap)
	return r
}
