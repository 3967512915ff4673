package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status is the per-frame state the HUD reports.
type Status struct {
	Generation int
	Population int
	Speed      int
	Playing    bool
}

var controlHelp = []string{
	"Space: Play/Pause",
	"C: Clear",
	"R: Random",
	"N: Step",
	"Up/Down: Speed",
	"Click: Toggle Cell",
	"Q/Esc: Quit",
}

// HUD draws the status line and control help in the top-left corner.
type HUD struct {
	textColor color.Color
}

// NewHUD constructs a HUD using the provided text color.
func NewHUD(textColor color.Color) *HUD {
	return &HUD{textColor: textColor}
}

// Draw renders the status and the control list onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	face := basicfont.Face7x13

	mode := "Paused"
	if st.Playing {
		mode = "Running"
	}
	status := fmt.Sprintf("Generation: %d | Population: %d | Speed: %dx | %s",
		st.Generation, st.Population, st.Speed, mode)
	text.Draw(screen, status, face, 10, 20, h.textColor)

	for i, line := range controlHelp {
		text.Draw(screen, line, face, 10, 44+i*16, h.textColor)
	}
}
