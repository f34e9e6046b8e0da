// Package config loads CLI defaults from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/philipparndt/goshade/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// DefaultFile is loaded from the working directory when no file is given
const DefaultFile = "goshade.yaml"

// Render holds the image settings of the render command
type Render struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	LineWidth  float64 `yaml:"lineWidth"`
	Background string  `yaml:"background"`
	Foreground string  `yaml:"foreground"`
}

// Config holds the values shared by all commands
type Config struct {
	Projection []float64     `yaml:"projection"`
	Workers    int           `yaml:"workers"`
	Debounce   time.Duration `yaml:"debounce"`
	Render     Render        `yaml:"render"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Projection: []float64{0, 0, 1},
		Workers:    0,
		Debounce:   200 * time.Millisecond,
		Render: Render{
			Width:      800,
			Height:     800,
			LineWidth:  1,
			Background: "#ffffff",
			Foreground: "#141414",
		},
	}
}

// Load reads a configuration file over the defaults. An empty path loads
// DefaultFile if it exists and the defaults otherwise.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configured values
func (c *Config) Validate() error {
	if _, err := c.ProjectionVector(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative, got %v", c.Debounce)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.LineWidth <= 0 {
		return fmt.Errorf("line width must be positive, got %v", c.Render.LineWidth)
	}
	if _, err := ParseColor(c.Render.Background); err != nil {
		return err
	}
	if _, err := ParseColor(c.Render.Foreground); err != nil {
		return err
	}
	return nil
}

// ProjectionVector returns the projection as a vector
func (c *Config) ProjectionVector() (geometry.Vector3, error) {
	if len(c.Projection) != 3 {
		return geometry.Vector3{}, fmt.Errorf("projection needs 3 components, got %d", len(c.Projection))
	}
	v := geometry.NewVector3(c.Projection[0], c.Projection[1], c.Projection[2])
	if v.IsZero() {
		return geometry.Vector3{}, errors.New("projection vector must not be zero")
	}
	return v, nil
}

// SetProjection parses "x,y,z" into the projection
func (c *Config) SetProjection(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return fmt.Errorf("projection %q: expected x,y,z", value)
	}

	projection := make([]float64, 3)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("projection %q: %w", value, err)
		}
		projection[i] = f
	}

	old := c.Projection
	c.Projection = projection
	if _, err := c.ProjectionVector(); err != nil {
		c.Projection = old
		return err
	}
	return nil
}

// ParseColor parses a "#rrggbb" or "#rrggbbaa" color
func ParseColor(value string) (color.RGBA, error) {
	hex := strings.TrimPrefix(value, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", value)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	return color.RGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}
