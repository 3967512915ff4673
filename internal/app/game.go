package app

import (
	"golife/internal/config"
	"golife/internal/core"
	"golife/internal/life"
	"golife/internal/render"
	"golife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game wires the grid engine, pacer, painter and HUD into the ebiten.Game
// interface. It owns the auxiliary state the engine does not: the
// generation counter, the playing flag and the speed setting.
type Game struct {
	cfg     config.Config
	palette config.Palette
	grid    *life.Grid
	pacer   *core.StepPacer
	painter *render.GridPainter
	hud     *ui.HUD

	generation int
	playing    bool
	stepOnce   bool
}

// New constructs a Game around the provided grid.
func New(cfg config.Config, palette config.Palette, grid *life.Grid) *Game {
	return &Game{
		cfg:     cfg,
		palette: palette,
		grid:    grid,
		pacer:   core.NewStepPacer(cfg.FPS, cfg.DefaultSpeed),
		painter: render.NewGridPainter(grid.Cols(), grid.Rows()),
		hud:     ui.NewHUD(palette.Text),
	}
}

// Update polls input and advances the simulation when the pacer fires.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.playing = !g.playing
		g.pacer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.grid.Clear()
		g.playing = false
		g.generation = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.grid.Randomize(g.cfg.Density)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.playing {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.setSpeed(g.pacer.Speed() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.setSpeed(g.pacer.Speed() - 1)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.grid.Toggle(y/g.cfg.CellSize, x/g.cfg.CellSize)
	}

	if (g.playing && g.pacer.Advance()) || g.stepOnce {
		g.grid.Step()
		g.generation++
		g.stepOnce = false
	}
	return nil
}

// Draw renders the board, the cell boundaries and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)
	g.painter.Blit(screen, g.grid.Cells(), g.palette.Cell, g.palette.Background, g.cfg.CellSize)
	g.painter.DrawGridLines(screen, g.cfg.CellSize, g.palette.GridLine)
	g.hud.Draw(screen, ui.Status{
		Generation: g.generation,
		Population: g.grid.Population(),
		Speed:      g.pacer.Speed(),
		Playing:    g.playing,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *Game) setSpeed(speed int) {
	if speed < g.cfg.MinSpeed {
		speed = g.cfg.MinSpeed
	}
	if speed > g.cfg.MaxSpeed {
		speed = g.cfg.MaxSpeed
	}
	g.pacer.SetSpeed(speed)
}
