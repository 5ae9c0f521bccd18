// Package config loads the oefencheck settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectFile is looked up in the working directory when no --config is given.
const ProjectFile = ".oefencheck.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the report and run settings.
type Config struct {
	// Domain forces every item through one validator. Empty infers the
	// domain per item.
	Domain string `yaml:"domain"`

	// Format is "text" or "json". Default: "text".
	Format string `yaml:"format"`

	// Color is "auto", "always" or "never". Default: "auto".
	Color string `yaml:"color"`

	ShowInfos      bool `yaml:"show_infos"`
	FailOnWarnings bool `yaml:"fail_on_warnings"`

	// XLSX is an optional path for a spreadsheet export of the run.
	XLSX string `yaml:"xlsx"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:    FormatText,
		Color:     ColorAuto,
		ShowInfos: true,
	}
}

// Load reads a settings file on top of the defaults. Unknown keys are an
// error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads settings from r on top of the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve returns the settings for a run: the explicit file when one is
// named (OEFENCHECK_CONFIG stands in for a missing flag), otherwise
// ProjectFile when it exists, otherwise the defaults.
func Resolve(explicit string) (Config, error) {
	if explicit == "" {
		explicit = os.Getenv("OEFENCHECK_CONFIG")
	}
	if explicit != "" {
		return Load(explicit)
	}
	cfg, err := Load(ProjectFile)
	switch {
	case err == nil:
		slog.Debug("loaded project config", "path", ProjectFile)
		return cfg, nil
	case errors.Is(err, os.ErrNotExist):
		return Default(), nil
	default:
		return Config{}, err
	}
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, c.Format)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	return nil
}
