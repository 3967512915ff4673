package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads binary cell data into a cached one-pixel-per-cell
// image and draws it scaled so each cell covers cellSize screen pixels.
type GridPainter struct {
	cols, rows int
	img        *ebiten.Image
	buf        []byte
	pixel      *ebiten.Image
}

// NewGridPainter allocates a painter for a cols x rows board.
func NewGridPainter(cols, rows int) *GridPainter {
	gp := &GridPainter{
		cols: cols,
		rows: rows,
		buf:  make([]byte, 4*cols*rows),
	}
	gp.img = ebiten.NewImage(cols, rows)
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	return gp
}

// Blit draws the cells onto dst with the given live/dead colors.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, cellSize int) {
	if len(cells) != gp.cols*gp.rows {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}

// DrawGridLines overlays the cell boundaries onto dst.
func (gp *GridPainter) DrawGridLines(dst *ebiten.Image, cellSize int, col color.Color) {
	w := gp.cols * cellSize
	h := gp.rows * cellSize
	for row := 0; row <= gp.rows; row++ {
		gp.fillRect(dst, 0, float64(row*cellSize), float64(w), 1, col)
	}
	for c := 0; c <= gp.cols; c++ {
		gp.fillRect(dst, float64(c*cellSize), 0, 1, float64(h), col)
	}
}

func (gp *GridPainter) fillRect(dst *ebiten.Image, x, y, w, h float64, col color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(gp.pixel, op)
}
