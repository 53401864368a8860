// internal/appconfig/appconfig.go

// Package appconfig loads and validates the tracelens configuration file.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultConfigPath is where the CLI looks for settings first.
	DefaultConfigPath = "config/config.json"

	// LegacyConfigPath keeps older setups working when the config file
	// still lives next to the binary.
	LegacyConfigPath = "config.json"

	// DefaultLongTaskThreshold is the long-task cutoff in milliseconds.
	DefaultLongTaskThreshold = 50.0

	// DefaultConfidenceLevel is recorded with every run; no computation
	// consumes it yet.
	DefaultConfidenceLevel = 0.95

	defaultOutputFormat = "console"
	DefaultLogFile      = "tracelens.log"
)

// VariantRule maps a trace file-name marker to a variant label. Rules
// apply in the order they are listed.
type VariantRule struct {
	Marker string `json:"marker"`
	Name   string `json:"name"`
}

// Config mirrors the JSON configuration file. Zero values fall back to
// the documented defaults through the accessor methods.
type Config struct {
	OutputFormat      string        `json:"outputFormat,omitempty"`
	LongTaskThreshold float64       `json:"longTaskThreshold,omitempty"`
	IncludeDetails    bool          `json:"includeDetails,omitempty"`
	ConfidenceLevel   float64       `json:"confidenceLevel,omitempty"`
	Variants          []VariantRule `json:"variants,omitempty"`
	LogFile           string        `json:"logFile,omitempty"`
	Output            string        `json:"output,omitempty"`
	Debug             bool          `json:"debug,omitempty"`

	ConfigPath string `json:"-"`
}

// Format returns the normalized output format, defaulting to console.
func (c Config) Format() string {
	f := strings.ToLower(strings.TrimSpace(c.OutputFormat))
	if f == "" {
		return defaultOutputFormat
	}
	return f
}

// Threshold returns the configured long-task cutoff or the default.
func (c Config) Threshold() float64 {
	if c.LongTaskThreshold <= 0 {
		return DefaultLongTaskThreshold
	}
	return c.LongTaskThreshold
}

// Confidence returns the configured confidence level or the default.
func (c Config) Confidence() float64 {
	if c.ConfidenceLevel <= 0 {
		return DefaultConfidenceLevel
	}
	return c.ConfidenceLevel
}

// LogFilePath returns the log destination, defaulting to tracelens.log.
func (c Config) LogFilePath() string {
	if c.LogFile == "" {
		return DefaultLogFile
	}
	return c.LogFile
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{"console", "json", "csv"}
}

// IsValidFormat reports whether format names a supported renderer.
func IsValidFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "json", "csv":
		return true
	}
	return false
}

// Load reads the configuration from path. An empty path means the
// default location, with a fallback to the legacy file next to the
// binary when the default does not exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	cfg, err := loadFromPath(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) || path != DefaultConfigPath {
		return nil, err
	}
	cfg, legacyErr := loadFromPath(LegacyConfigPath)
	if legacyErr == nil {
		return cfg, nil
	}
	if errors.Is(legacyErr, os.ErrNotExist) {
		return nil, fmt.Errorf("no configuration file found (searched %q and %q)", path, LegacyConfigPath)
	}
	return nil, legacyErr
}

func loadFromPath(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config %s: %w", path, err)
	}
	if cfg.OutputFormat != "" && !IsValidFormat(cfg.OutputFormat) {
		return nil, fmt.Errorf("config %s: unknown output format %q (expected one of %s)", path, cfg.OutputFormat, strings.Join(Formats(), ", "))
	}
	if cfg.LongTaskThreshold < 0 {
		return nil, fmt.Errorf("config %s: longTaskThreshold must not be negative", path)
	}
	if cfg.ConfidenceLevel < 0 || cfg.ConfidenceLevel > 1 {
		return nil, fmt.Errorf("config %s: confidenceLevel must be between 0 and 1", path)
	}
	cfg.ConfigPath = path
	return &cfg, nil
}
