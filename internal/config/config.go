package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config holds the startup parameters for the application. It is built once
// at startup, validated, and passed by value to the parts that need it.
type Config struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	CellSize     int     `json:"cell_size"`
	FPS          int     `json:"fps"`
	MinSpeed     int     `json:"min_speed"`
	MaxSpeed     int     `json:"max_speed"`
	DefaultSpeed int     `json:"default_speed"`
	Density      float64 `json:"density"`
	Seed         int64   `json:"seed"`
	Headless     bool    `json:"headless"`
	Generations  int     `json:"generations"`
}

// Default returns the baseline configuration: an 800x800 window of 20px
// cells at 60 FPS with speed range 1..10.
func Default() Config {
	return Config{
		Width:        800,
		Height:       800,
		CellSize:     20,
		FPS:          60,
		MinSpeed:     1,
		MaxSpeed:     10,
		DefaultSpeed: 5,
		Density:      0.3,
		Seed:         42,
		Generations:  200,
	}
}

// Load overlays the defaults with values from a JSON file.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parsing %s", path)
	}
	return cfg, nil
}

// Validate reports the first constraint violation, if any.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("config: window dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("config: cell size must be positive, got %d", c.CellSize)
	}
	if c.CellSize > c.Width || c.CellSize > c.Height {
		return errors.Errorf("config: cell size %d exceeds window %dx%d", c.CellSize, c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return errors.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if c.MinSpeed < 1 || c.MinSpeed > c.MaxSpeed {
		return errors.Errorf("config: speed range [%d, %d] is invalid", c.MinSpeed, c.MaxSpeed)
	}
	if c.DefaultSpeed < c.MinSpeed || c.DefaultSpeed > c.MaxSpeed {
		return errors.Errorf("config: default speed %d outside [%d, %d]", c.DefaultSpeed, c.MinSpeed, c.MaxSpeed)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("config: density %v outside [0, 1]", c.Density)
	}
	if c.Generations < 0 {
		return errors.Errorf("config: generations must be non-negative, got %d", c.Generations)
	}
	return nil
}

// Rows returns the number of grid rows derived from the window height.
func (c Config) Rows() int { return c.Height / c.CellSize }

// Cols returns the number of grid columns derived from the window width.
func (c Config) Cols() int { return c.Width / c.CellSize }
