//go:build !tinygo

package hal

import (
	"image/color"
	"testing"
)

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

func TestMonoPacking(t *testing.T) {
	buf := make([]byte, monoBufferLen(128, 64))
	if len(buf) != 128*8 {
		t.Fatalf("buffer length %d", len(buf))
	}

	monoSet(buf, 128, 0, 0, true)
	if buf[0] != 0x01 {
		t.Fatalf("pixel (0,0) packed as %#x", buf[0])
	}
	monoSet(buf, 128, 0, 7, true)
	if buf[0] != 0x81 {
		t.Fatalf("pixel (0,7) packed as %#x", buf[0])
	}
	monoSet(buf, 128, 5, 9, true)
	if buf[128+5] != 0x02 {
		t.Fatalf("pixel (5,9) packed as %#x", buf[128+5])
	}
	if !monoGet(buf, 128, 5, 9) || monoGet(buf, 128, 5, 10) {
		t.Fatalf("monoGet readback wrong")
	}
	monoSet(buf, 128, 0, 0, false)
	if monoGet(buf, 128, 0, 0) {
		t.Fatalf("pixel (0,0) not cleared")
	}
}

func TestHostDisplayFlushPublishes(t *testing.T) {
	d := newHostDisplay(DisplayWidth, DisplayHeight)

	d.SetPixel(3, 11, white)
	if d.pixelOn(3, 11) {
		t.Fatalf("pixel visible before Display()")
	}
	if err := d.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if !d.pixelOn(3, 11) {
		t.Fatalf("pixel not visible after Display()")
	}

	// Clearing the draw buffer does not retract the shown frame until the
	// next flush.
	d.ClearBuffer()
	if !d.pixelOn(3, 11) {
		t.Fatalf("shown frame mutated by ClearBuffer")
	}
	if err := d.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if d.pixelOn(3, 11) {
		t.Fatalf("pixel survived clear+flush")
	}
}

func TestHostDisplayIgnoresOutOfRangeAndBlack(t *testing.T) {
	d := newHostDisplay(DisplayWidth, DisplayHeight)
	d.SetPixel(-1, 0, white)
	d.SetPixel(DisplayWidth, 0, white)
	d.SetPixel(0, DisplayHeight, white)
	d.SetPixel(9, 9, black) // black draws "off"
	_ = d.Display()
	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			if d.pixelOn(x, y) {
				t.Fatalf("unexpected pixel at (%d,%d)", x, y)
			}
		}
	}
}
