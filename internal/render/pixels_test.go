package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0, 1}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 255, G: 255, B: 0, A: 255}
	off := color.RGBA{R: 128, G: 128, B: 128, A: 255}

	fillBinaryRGBA(buf, cells, on, off)

	want := []byte{
		255, 255, 0, 255,
		128, 128, 128, 255,
		255, 255, 0, 255,
	}
	for i, b := range want {
		if buf[i] != b {
			t.Fatalf("buf[%d] = %d, expected %d", i, buf[i], b)
		}
	}
}
