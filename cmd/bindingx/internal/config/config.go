package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-directory configuration file.
const FileName = "bindingx.yaml"

const (
	defaultFPS     = 60
	defaultDensity = 1.0
	maxFPS         = 240
)

// Config represents the optional bindingx.yaml configuration.
type Config struct {
	Replay ReplayConfig `yaml:"replay"`
}

// ReplayConfig contains replay defaults.
type ReplayConfig struct {
	FPS     int     `yaml:"fps,omitempty"`
	Density float64 `yaml:"density,omitempty"`
	Verbose bool    `yaml:"verbose,omitempty"`
}

// Resolved contains resolved configuration values. Environment variables
// override the file; command-line flags override both.
type Resolved struct {
	Root    string
	FPS     int     `env:"BINDINGX_FPS"`
	Density float64 `env:"BINDINGX_DENSITY"`
	Verbose bool    `env:"BINDINGX_VERBOSE"`
}

// LoadOptional reads bindingx.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads bindingx.yaml (if present), fills defaults and applies
// environment overrides.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Root:    dir,
		FPS:     cfg.Replay.FPS,
		Density: cfg.Replay.Density,
		Verbose: cfg.Replay.Verbose,
	}
	if r.FPS == 0 {
		r.FPS = defaultFPS
	}
	if r.Density == 0 {
		r.Density = defaultDensity
	}

	// Unset variables leave the file values in place.
	if err := env.Parse(r); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks that the values are usable for replay.
func (r *Resolved) Validate() error {
	if r.FPS < 1 || r.FPS > maxFPS {
		return fmt.Errorf("fps must be between 1 and %d, got %d", maxFPS, r.FPS)
	}
	if r.Density <= 0 {
		return fmt.Errorf("density must be positive, got %g", r.Density)
	}
	return nil
}
