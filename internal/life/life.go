package life

import "github.com/pkg/errors"

// Grid holds the live/dead state of a fixed-size board with toroidal
// wrapping. Cells are stored row-major in a flat slice; Step writes into a
// back buffer and swaps, so readers never observe a half-updated board.
type Grid struct {
	rows, cols int
	cur        []uint8
	nxt        []uint8
	rng        *RNG
}

// New returns an all-dead grid with the given dimensions.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Errorf("life: invalid grid dimensions %dx%d", rows, cols)
	}
	cells := make([]uint8, rows*cols)
	return &Grid{
		rows: rows,
		cols: cols,
		cur:  cells,
		nxt:  make([]uint8, len(cells)),
		rng:  NewRNG(1),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Cells exposes the current board in row-major order for rendering.
func (g *Grid) Cells() []uint8 { return g.cur }

// Alive reports whether the cell at (row, col) is live. Out-of-range
// coordinates read as dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cur[row*g.cols+col] == 1
}

// Toggle flips the cell at (row, col) and reports whether the coordinates
// were in range. Out-of-range toggles are a no-op.
func (g *Grid) Toggle(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	g.cur[row*g.cols+col] ^= 1
	return true
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = 0
	}
}

// Reseed makes subsequent Randomize calls deterministic for the given seed.
func (g *Grid) Reseed(seed int64) {
	g.rng = NewRNG(seed)
}

// Randomize sets each cell live independently with the given probability.
// Density is clamped to [0, 1].
func (g *Grid) Randomize(density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	for i := range g.cur {
		if g.rng.Float64() < density {
			g.cur[i] = 1
		} else {
			g.cur[i] = 0
		}
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		n += int(c)
	}
	return n
}

// LiveNeighbors counts the live cells among the 8 neighbors of (row, col),
// wrapping across edges so the board forms a torus.
func (g *Grid) LiveNeighbors(row, col int) int {
	neighbors := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr + g.rows) % g.rows
			nc := (col + dc + g.cols) % g.cols
			neighbors += int(g.cur[nr*g.cols+nc])
		}
	}
	return neighbors
}

// Step advances the board by one generation. All neighbor counts are taken
// against the pre-step board; the new generation replaces the old one in a
// single buffer swap.
func (g *Grid) Step() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			idx := row*g.cols + col
			neighbors := g.LiveNeighbors(row, col)
			alive := g.cur[idx] == 1
			g.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				g.nxt[idx] = 1
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}
