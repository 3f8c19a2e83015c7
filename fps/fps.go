// Package fps counts rendered frames against a periodic interval signal.
//
// The counter spans two execution contexts: the render loop owns the count
// and polls once per frame, while the timing source (a hardware timer on
// device) only raises a single interval flag. The flag is the sole shared
// state and is accessed exclusively through atomics, because the producer
// context cannot block. It is a single-slot handoff, not a queue: intervals
// that elapse between two polls collapse into one observed boundary, which
// makes a late report cover a multiple of the nominal period. That is the
// intended approximate-FPS semantics.
package fps

import (
	"strconv"
	"sync/atomic"

	"homestead/hal"
)

// Counter reports the number of Update calls per observed interval.
type Counter struct {
	ready atomic.Bool

	// Owned by the consumer (render loop) context.
	count uint16
	last  uint16
	out   hal.Logger
}

// New returns a counter reporting to out. A nil out counts but stays silent.
func New(out hal.Logger) *Counter {
	return &Counter{out: out}
}

// Boundary marks the end of an interval. It is the producer side of the
// handoff: one release store, nothing else, so it is safe to call from a
// timer interrupt or any other context that must not block.
func (c *Counter) Boundary() {
	c.ready.Store(true)
}

// Update records one rendered frame. When an interval boundary has been
// observed it emits the frame count since the previous boundary as a single
// decimal line and starts the next interval at zero. Call it once per render
// loop iteration, from that one context only.
func (c *Counter) Update() {
	c.count++
	if c.ready.Swap(false) {
		c.last = c.count
		if c.out != nil {
			var buf [5]byte
			c.out.WriteLineBytes(strconv.AppendUint(buf[:0], uint64(c.count), 10))
		}
		c.count = 0
	}
}

// Last returns the most recently reported count, zero before the first
// boundary. Consumer context only.
func (c *Counter) Last() uint16 { return c.last }
