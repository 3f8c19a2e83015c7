package hal

import "tinygo.org/x/drivers"

// Logger writes newline-delimited log lines.
//
// On device this is the UART; the frame counter reports through it.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

// DisplayWidth and DisplayHeight are the panel dimensions. The display is a
// fixed 128x64 monochrome OLED on every backend.
const (
	DisplayWidth  = 128
	DisplayHeight = 64
)

// Displayer is the monochrome pixel surface the renderer draws into.
//
// It is the drawing contract of tinygo.org/x/drivers displays plus a buffer
// clear, so a driver device can back it directly on hardware. Display()
// flushes the buffered frame to the panel and may fail; a flush failure is
// fatal to callers.
type Displayer interface {
	drivers.Displayer
	ClearBuffer()
}

// Time provides a base tick stream.
//
// Ticks are nominally 1ms apart; higher-level intervals are derived in
// userland. Delivery is best-effort: a slow consumer sees gaps in the
// sequence numbers, never a blocked producer.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the renderer and the outside
// world.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Displayer
	Time() Time
}
