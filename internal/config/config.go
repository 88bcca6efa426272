// Package config loads gowall settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gowall/pkg/face"
	"github.com/philipparndt/gowall/pkg/geometry"
)

// Config holds settings shared by all commands.
type Config struct {
	// UpAxis is the vertical axis of the model (x, y or z).
	UpAxis geometry.Axis `yaml:"up_axis"`

	// VertexTolerance welds vertices and bounds plane distance when faces
	// are resolved.
	VertexTolerance float64 `yaml:"vertex_tolerance"`

	// Unit labels lengths in text output.
	Unit string `yaml:"unit"`

	// DB is a SQLite file receiving every measured segment. Empty disables
	// persistence.
	DB string `yaml:"db,omitempty"`

	// Debounce delays reloads after file changes in watch mode.
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		UpAxis:          geometry.AxisY,
		VertexTolerance: face.DefaultTolerance,
		Unit:            "units",
		Debounce:        500 * time.Millisecond,
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if !c.UpAxis.Valid() {
		return fmt.Errorf("up_axis %d out of range", int(c.UpAxis))
	}
	if c.VertexTolerance <= 0 {
		return fmt.Errorf("vertex_tolerance must be positive, got %g", c.VertexTolerance)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative, got %s", c.Debounce)
	}
	return nil
}
