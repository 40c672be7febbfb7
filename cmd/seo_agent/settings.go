package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/seo-content-engine/internal/config"
	"github.com/jonathan/seo-content-engine/internal/observability"
	"github.com/jonathan/seo-content-engine/internal/profiles"
	"github.com/jonathan/seo-content-engine/internal/schemas"
	"github.com/spf13/cobra"
)

// loadSettings resolves configuration in order: flags, environment, config file, defaults
func loadSettings() (config.Config, error) {
	fileCfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}
	fileCfg.ApplyEnv()

	cfg := fileCfg.MergeWithDefaults(config.Defaults())
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildRegistry returns the built-in profiles plus any from the configured profiles file
func buildRegistry(cfg config.Config) (*profiles.Registry, error) {
	registry := profiles.NewRegistry()
	if cfg.ProfilesFile != "" {
		if err := registry.LoadFile(cfg.ProfilesFile); err != nil {
			return nil, fmt.Errorf("failed to load profiles: %w", err)
		}
	}
	return registry, nil
}

// resolveProfile looks up the named profile, falling back to the configured one
func resolveProfile(cfg config.Config, name string) (profiles.Profile, error) {
	registry, err := buildRegistry(cfg)
	if err != nil {
		return profiles.Profile{}, err
	}
	if name == "" {
		name = cfg.PluginProfile
	}
	return registry.Get(name)
}

func newLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	return observability.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// writeJSON writes v as indented JSON, creating the parent directory
func writeJSON(path string, v any) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// checkSchema validates v against a repository schema (non-fatal)
func checkSchema(stderr io.Writer, relPath, label string, v any) {
	schemaPath := schemas.ResolveSchemaPath(relPath)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateValue(schemaPath, v); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(stderr, "Warning: Generated %s does not validate against schema: %v\n", label, err)
		} else if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(stderr, "Warning: Could not validate %s against schema (schema loading failed): %v\n", label, err)
		} else {
			_, _ = fmt.Fprintf(stderr, "Warning: Could not validate %s against schema: %v\n", label, err)
		}
	}
}
