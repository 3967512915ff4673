package main

import (
	"errors"
	"log"
	"os"

	"golife/internal/app"
	"golife/internal/config"
	"golife/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
)

const configFile = "config.json"

func main() {
	cfg := config.Default()
	if _, err := os.Stat(configFile); err == nil {
		loaded, err := config.Load(configFile)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	flaggy.SetName("golife")
	flaggy.SetDescription("Conway's Game of Life on a toroidal grid")
	flaggy.Int(&cfg.Width, "x", "width", "Window width in pixels")
	flaggy.Int(&cfg.Height, "y", "height", "Window height in pixels")
	flaggy.Int(&cfg.CellSize, "c", "cell-size", "Cell size in pixels")
	flaggy.Int(&cfg.FPS, "f", "fps", "Frame rate")
	flaggy.Int(&cfg.MinSpeed, "", "min-speed", "Lowest simulation speed")
	flaggy.Int(&cfg.MaxSpeed, "", "max-speed", "Highest simulation speed")
	flaggy.Int(&cfg.DefaultSpeed, "", "speed", "Initial simulation speed")
	flaggy.Float64(&cfg.Density, "d", "density", "Live-cell density for random boards")
	flaggy.Int64(&cfg.Seed, "s", "seed", "Seed for random boards")
	flaggy.Bool(&cfg.Headless, "n", "headless", "Run without a window")
	flaggy.Int(&cfg.Generations, "g", "generations", "Generations to run in headless mode")
	flaggy.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	grid, err := life.New(cfg.Rows(), cfg.Cols())
	if err != nil {
		log.Fatal(err)
	}
	grid.Reseed(cfg.Seed)

	if cfg.Headless {
		app.RunHeadless(cfg, grid)
		return
	}

	game := app.New(cfg, config.DefaultPalette(), grid)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
