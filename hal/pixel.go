package hal

// Monochrome framebuffer helpers. The buffer layout is the SSD1306 GDDRAM
// page layout: one byte covers an 8-pixel-tall column slice, pages stacked
// top to bottom, so the host framebuffer mirrors what the panel RAM holds.

func monoBufferLen(w, h int) int { return w * ((h + 7) / 8) }

func monoSet(buf []byte, w int, x, y int, on bool) {
	idx := x + (y/8)*w
	if idx < 0 || idx >= len(buf) {
		return
	}
	mask := byte(1) << (y % 8)
	if on {
		buf[idx] |= mask
	} else {
		buf[idx] &^= mask
	}
}

func monoGet(buf []byte, w int, x, y int) bool {
	idx := x + (y/8)*w
	if idx < 0 || idx >= len(buf) {
		return false
	}
	return buf[idx]&(byte(1)<<(y%8)) != 0
}
