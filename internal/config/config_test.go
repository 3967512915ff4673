package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDerivedGridDimensions(t *testing.T) {
	cfg := Default()
	if rows, cols := cfg.Rows(), cfg.Cols(); rows != 40 || cols != 40 {
		t.Fatalf("derived grid = %dx%d, expected 40x40", rows, cols)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":            func(c *Config) { c.Width = 0 },
		"negative height":       func(c *Config) { c.Height = -1 },
		"zero cell size":        func(c *Config) { c.CellSize = 0 },
		"oversized cell":        func(c *Config) { c.CellSize = c.Width + 1 },
		"zero fps":              func(c *Config) { c.FPS = 0 },
		"inverted speed bounds": func(c *Config) { c.MinSpeed = 8; c.MaxSpeed = 2 },
		"zero min speed":        func(c *Config) { c.MinSpeed = 0 },
		"default below min":     func(c *Config) { c.DefaultSpeed = 0 },
		"default above max":     func(c *Config) { c.DefaultSpeed = c.MaxSpeed + 1 },
		"density above one":     func(c *Config) { c.Density = 1.5 },
		"negative generations":  func(c *Config) { c.Generations = -1 },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: Validate accepted invalid config", name)
		}
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": 400, "cell_size": 10}`), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 400 || cfg.CellSize != 10 {
		t.Fatalf("overridden fields not applied: %+v", cfg)
	}
	if cfg.Height != 800 || cfg.FPS != 60 {
		t.Fatalf("unspecified fields lost their defaults: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("Load succeeded on a missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed JSON")
	}
}
