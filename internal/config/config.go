// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/seo-content-engine/internal/health"
	"github.com/jonathan/seo-content-engine/internal/validation"
)

// Environment variables that override file values
const (
	EnvStoreURL      = "SEO_STORE_URL"
	EnvPluginProfile = "SEO_PLUGIN_PROFILE"
	EnvLogLevel      = "SEO_LOG_LEVEL"
)

// DefaultPluginProfile is used when neither the file nor the environment names one
const DefaultPluginProfile = "yoast"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Store
	StoreURL      string `json:"store_url,omitempty" validate:"omitempty,url"` // Base URL used for internal links
	PluginProfile string `json:"plugin_profile,omitempty"`                      // SEO plugin profile name
	ProfilesFile  string `json:"profiles_file,omitempty"`                       // Extra YAML profile definitions

	// Behavior
	LogLevel    string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Verbose     bool   `json:"verbose,omitempty"`                        // Print detailed debug information
	Concurrency int    `json:"concurrency,omitempty" validate:"gte=0"` // Health batch worker limit, 0 = unbounded

	// Health thresholds
	MetaTitleMinChars        int     `json:"meta_title_min_chars,omitempty" validate:"gte=0"`
	MetaDescriptionMinChars  int     `json:"meta_description_min_chars,omitempty" validate:"gte=0"`
	ShortDescriptionMinWords int     `json:"short_description_min_words,omitempty" validate:"gte=0"`
	LongDescriptionMinWords  int     `json:"long_description_min_words,omitempty" validate:"gte=0"`
	PoorWeight               float64 `json:"poor_weight,omitempty" validate:"gte=0,lt=1"`
	TopMissing               int     `json:"top_missing,omitempty" validate:"gte=0"`

	// Advisory content targets
	TargetWordCount int     `json:"target_word_count,omitempty" validate:"gte=0"`
	DensityMin      float64 `json:"density_min,omitempty" validate:"gte=0"`
	DensityMax      float64 `json:"density_max,omitempty" validate:"gte=0"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Defaults returns the built-in configuration
func Defaults() Config {
	th := health.DefaultThresholds()
	soft := validation.DefaultSoftTargets()
	return Config{
		PluginProfile:            DefaultPluginProfile,
		LogLevel:                 "info",
		MetaTitleMinChars:        th.MetaTitleMinChars,
		MetaDescriptionMinChars:  th.MetaDescriptionMinChars,
		ShortDescriptionMinWords: th.ShortDescriptionMinWords,
		LongDescriptionMinWords:  th.LongDescriptionMinWords,
		PoorWeight:               th.PoorWeight,
		TopMissing:               th.TopMissing,
		TargetWordCount:          soft.TargetWordCount,
		DensityMin:               soft.DensityMin,
		DensityMax:               soft.DensityMax,
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return &Error{Message: "invalid field value", Cause: err}
	}

	if c.DensityMax > 0 && c.DensityMin > c.DensityMax {
		return &Error{Message: "'density_min' must not exceed 'density_max'"}
	}

	if c.ProfilesFile != "" {
		if _, err := os.Stat(c.ProfilesFile); os.IsNotExist(err) {
			return &Error{Message: fmt.Sprintf("profiles file not found: %s", c.ProfilesFile)}
		}
	}

	return nil
}

// ApplyEnv overrides fields from SEO_* environment variables when they are set
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvStoreURL)); v != "" {
		c.StoreURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPluginProfile)); v != "" {
		c.PluginProfile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.StoreURL == "" {
		result.StoreURL = defaults.StoreURL
	}
	if result.PluginProfile == "" {
		result.PluginProfile = defaults.PluginProfile
	}
	if result.ProfilesFile == "" {
		result.ProfilesFile = defaults.ProfilesFile
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Int fields: use default if zero
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.MetaTitleMinChars == 0 {
		result.MetaTitleMinChars = defaults.MetaTitleMinChars
	}
	if result.MetaDescriptionMinChars == 0 {
		result.MetaDescriptionMinChars = defaults.MetaDescriptionMinChars
	}
	if result.ShortDescriptionMinWords == 0 {
		result.ShortDescriptionMinWords = defaults.ShortDescriptionMinWords
	}
	if result.LongDescriptionMinWords == 0 {
		result.LongDescriptionMinWords = defaults.LongDescriptionMinWords
	}
	if result.TopMissing == 0 {
		result.TopMissing = defaults.TopMissing
	}
	if result.TargetWordCount == 0 {
		result.TargetWordCount = defaults.TargetWordCount
	}

	// Float fields
	if result.PoorWeight == 0 {
		result.PoorWeight = defaults.PoorWeight
	}
	if result.DensityMin == 0 {
		result.DensityMin = defaults.DensityMin
	}
	if result.DensityMax == 0 {
		result.DensityMax = defaults.DensityMax
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Thresholds returns the health scorer settings
func (c *Config) Thresholds() health.Thresholds {
	return health.Thresholds{
		MetaTitleMinChars:        c.MetaTitleMinChars,
		MetaDescriptionMinChars:  c.MetaDescriptionMinChars,
		ShortDescriptionMinWords: c.ShortDescriptionMinWords,
		LongDescriptionMinWords:  c.LongDescriptionMinWords,
		PoorWeight:               c.PoorWeight,
		TopMissing:               c.TopMissing,
	}
}

// SoftTargets returns the advisory content targets
func (c *Config) SoftTargets() validation.SoftTargets {
	return validation.SoftTargets{
		TargetWordCount: c.TargetWordCount,
		DensityMin:      c.DensityMin,
		DensityMax:      c.DensityMax,
	}
}
