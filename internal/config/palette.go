package config

import "image/color"

// Palette names the colors used by the renderer and HUD.
type Palette struct {
	Background color.RGBA
	Cell       color.RGBA
	GridLine   color.RGBA
	Text       color.RGBA
}

// DefaultPalette returns grey board, yellow cells, black lines and text.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 128, G: 128, B: 128, A: 255},
		Cell:       color.RGBA{R: 255, G: 255, B: 0, A: 255},
		GridLine:   color.RGBA{A: 255},
		Text:       color.RGBA{A: 255},
	}
}
