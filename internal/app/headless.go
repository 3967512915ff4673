package app

import (
	"fmt"
	"time"

	"golife/internal/config"
	"golife/internal/life"

	"github.com/logrusorgru/aurora"
)

// RunHeadless seeds the board and steps it for the configured number of
// generations without opening a window, reporting progress on the console.
func RunHeadless(cfg config.Config, grid *life.Grid) {
	grid.Randomize(cfg.Density)

	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", grid.Cols(), grid.Rows())
	fmt.Printf("  Generations: %v\n", cfg.Generations)
	fmt.Printf("  Density: %v\n", cfg.Density)
	fmt.Printf("  Seed: %v\n", cfg.Seed)

	fmt.Printf("\nSimulation %v...\n", aurora.Cyan("started"))
	start := time.Now()

	for i := 1; i <= cfg.Generations; i++ {
		grid.Step()
		if i%10 == 0 {
			fmt.Printf("  Generations done: %v\n", i)
		}
	}

	total := time.Since(start).Round(time.Millisecond)
	fmt.Printf("\n%v:\n", aurora.Green("Finished"))
	fmt.Printf("  Last generation: %v\n", cfg.Generations)
	fmt.Printf("  Live cells: %v\n", grid.Population())
	fmt.Printf("  Total time: %v\n", total)
}
