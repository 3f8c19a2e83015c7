package app

import (
	"errors"
	"image/color"
	"testing"

	"homestead/hal"
)

type fakeDisplay struct {
	on      map[[2]int16]bool
	clears  int
	flushes int
	flushed int // pixels lit at last flush
	failErr error
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{on: make(map[[2]int16]bool)}
}

func (d *fakeDisplay) Size() (int16, int16) { return hal.DisplayWidth, hal.DisplayHeight }

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= hal.DisplayWidth || y < 0 || y >= hal.DisplayHeight {
		panic("pixel out of bounds")
	}
	if c.R != 0 || c.G != 0 || c.B != 0 {
		d.on[[2]int16{x, y}] = true
	} else {
		delete(d.on, [2]int16{x, y})
	}
}

func (d *fakeDisplay) ClearBuffer() {
	d.clears++
	d.on = make(map[[2]int16]bool)
}

func (d *fakeDisplay) Display() error {
	if d.failErr != nil {
		return d.failErr
	}
	d.flushes++
	d.flushed = len(d.on)
	return nil
}

type fakeLED struct {
	highs, lows int
}

func (l *fakeLED) High() { l.highs++ }
func (l *fakeLED) Low()  { l.lows++ }

type fakeHAL struct {
	disp *fakeDisplay
	led  *fakeLED
}

func (h *fakeHAL) Logger() hal.Logger     { return nil }
func (h *fakeHAL) LED() hal.LED           { return h.led }
func (h *fakeHAL) Display() hal.Displayer { return h.disp }
func (h *fakeHAL) Time() hal.Time         { return nil }

func newFakeHAL() *fakeHAL {
	return &fakeHAL{disp: newFakeDisplay(), led: &fakeLED{}}
}

func TestStepDrawsScene(t *testing.T) {
	h := newFakeHAL()
	a := NewWithConfig(h, Config{NoReport: true})

	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if h.disp.clears != 1 {
		t.Fatalf("clears = %d, want 1", h.disp.clears)
	}
	if h.disp.flushes != 1 {
		t.Fatalf("flushes = %d, want 1", h.disp.flushes)
	}
	if h.disp.flushed == 0 {
		t.Fatalf("frame flushed with no pixels")
	}
}

func TestStepClearsBeforeDrawing(t *testing.T) {
	h := newFakeHAL()
	a := NewWithConfig(h, Config{NoReport: true})

	// A stale pixel from a previous frame must not survive unless the new
	// frame happens to redraw it. (0,0) is never part of the scene.
	h.disp.on[[2]int16{0, 0}] = true
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if h.disp.on[[2]int16{0, 0}] {
		t.Fatalf("stale pixel survived the clear")
	}
}

func TestStepIsDeterministic(t *testing.T) {
	h1 := newFakeHAL()
	h2 := newFakeHAL()
	a1 := NewWithConfig(h1, Config{NoReport: true})
	a2 := NewWithConfig(h2, Config{NoReport: true})

	for i := 0; i < 10; i++ {
		if err := a1.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
		if err := a2.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if len(h1.disp.on) != len(h2.disp.on) {
		t.Fatalf("frames differ: %d vs %d pixels", len(h1.disp.on), len(h2.disp.on))
	}
	for p := range h1.disp.on {
		if !h2.disp.on[p] {
			t.Fatalf("pixel %v missing from second run", p)
		}
	}
}

func TestStepPropagatesFlushFailure(t *testing.T) {
	h := newFakeHAL()
	a := NewWithConfig(h, Config{NoReport: true})

	want := errors.New("i2c stalled")
	h.disp.failErr = want
	if err := a.Step(); !errors.Is(err, want) {
		t.Fatalf("Step err = %v, want %v", err, want)
	}
}

func TestHeartbeatTogglesPerRevolution(t *testing.T) {
	h := newFakeHAL()
	a := NewWithConfig(h, Config{NoReport: true})

	for i := 0; i < 240; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if h.led.highs != 1 || h.led.lows != 1 {
		t.Fatalf("led highs=%d lows=%d, want 1/1 after two revolutions", h.led.highs, h.led.lows)
	}
}
