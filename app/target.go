package app

import (
	"image/color"
	"strconv"

	"tinygo.org/x/tinyfont"

	"homestead/hal"
)

var (
	colorOn  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorOff = color.RGBA{A: 0xFF}
)

// displayTarget adapts the HAL displayer to the rasterizer's monochrome
// Target.
type displayTarget struct {
	d hal.Displayer
}

func (t displayTarget) Size() (int16, int16) { return t.d.Size() }

func (t displayTarget) SetPixel(x, y int16, on bool) {
	c := colorOff
	if on {
		c = colorOn
	}
	t.d.SetPixel(x, y, c)
}

// drawFPS overlays the last reported frame count in the top-left corner.
func (a *App) drawFPS(d hal.Displayer) {
	var buf [5]byte
	s := strconv.AppendUint(buf[:0], uint64(a.fps.Last()), 10)
	tinyfont.WriteLine(d, &tinyfont.TomThumb, 1, 6, string(s), colorOn)
}
