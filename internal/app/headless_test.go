package app

import (
	"testing"

	"golife/internal/config"
	"golife/internal/life"
)

func TestRunHeadlessIsDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Generations = 25
	cfg.Density = 0.4

	run := func() int {
		grid, err := life.New(20, 20)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		grid.Reseed(cfg.Seed)
		RunHeadless(cfg, grid)
		return grid.Population()
	}

	if a, b := run(), run(); a != b {
		t.Fatalf("identical seeds produced populations %d and %d", a, b)
	}
}
