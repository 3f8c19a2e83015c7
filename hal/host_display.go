//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostDisplay simulates the SSD1306: a page-packed 1bpp buffer that drawing
// mutates and Display() publishes for the window to present.
type hostDisplay struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []byte
	shown  []byte
}

func newHostDisplay(width, height int) *hostDisplay {
	return &hostDisplay{
		width:  width,
		height: height,
		buf:    make([]byte, monoBufferLen(width, height)),
		shown:  make([]byte, monoBufferLen(width, height)),
	}
}

func (d *hostDisplay) Size() (int16, int16) { return int16(d.width), int16(d.height) }

func (d *hostDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || int(x) >= d.width || y < 0 || int(y) >= d.height {
		return
	}
	on := c.R != 0 || c.G != 0 || c.B != 0
	d.mu.Lock()
	monoSet(d.buf, d.width, int(x), int(y), on)
	d.mu.Unlock()
}

func (d *hostDisplay) ClearBuffer() {
	d.mu.Lock()
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.mu.Unlock()
}

func (d *hostDisplay) Display() error {
	d.mu.Lock()
	copy(d.shown, d.buf)
	d.mu.Unlock()
	return nil
}

// snapshot copies the last flushed frame for presentation.
func (d *hostDisplay) snapshot(dst []byte) {
	d.mu.Lock()
	copy(dst, d.shown)
	d.mu.Unlock()
}

func (d *hostDisplay) pixelOn(x, y int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return monoGet(d.shown, d.width, x, y)
}
