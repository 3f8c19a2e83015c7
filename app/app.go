// Package app wires the renderer to a HAL and drives the frame loop.
package app

import (
	"homestead/fps"
	"homestead/hal"
	"homestead/scene"
	"homestead/wiregl"
)

// reportTicks is the frame-count reporting interval in HAL ticks (1ms each).
const reportTicks uint64 = 1000

// Config adjusts optional behavior; the zero value is the production setup.
type Config struct {
	// ShowFPS draws the last reported frame count onto the display.
	ShowFPS bool

	// NoReport disables the serial frame-count line.
	NoReport bool
}

// App renders the rotating homestead scene, one frame per Step call.
//
// All frame state lives here; nothing carries over between frames except the
// view's rotation/location vectors and the frame counter.
type App struct {
	h   hal.HAL
	cfg Config

	view   wiregl.View
	screen [scene.VertexCount]wiregl.Vec2
	fps    *fps.Counter
	ledOn  bool
}

// New initializes the app with default config.
func New(h hal.HAL) *App { return NewWithConfig(h, Config{}) }

// NewWithConfig initializes the app and starts the interval watcher feeding
// the frame counter.
func NewWithConfig(h hal.HAL, cfg Config) *App {
	a := &App{
		h:    h,
		cfg:  cfg,
		view: wiregl.NewView(),
	}

	var sink hal.Logger
	if !cfg.NoReport {
		sink = h.Logger()
	}
	a.fps = fps.New(sink)

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go watchIntervals(ch, reportTicks, a.fps)
		}
	}
	return a
}

// Run drives the app forever (TinyGo/native entrypoint). A step failure is a
// fatal fault: it is logged once and the program halts.
func Run(h hal.HAL) {
	a := New(h)
	for {
		if err := a.Step(); err != nil {
			halt(h, err)
		}
	}
}

// Step renders exactly one frame. The order is fixed: advance the animation
// state, project, clear, draw, flush, then update the frame counter.
func (a *App) Step() error {
	if a.view.Advance() {
		a.blink()
	}
	a.view.Project(scene.Homestead.Vertices, a.screen[:])

	d := a.h.Display()
	d.ClearBuffer()

	t := displayTarget{d: d}
	for _, e := range scene.Homestead.Edges {
		wiregl.DrawLine(t, a.screen[e[0]], a.screen[e[1]])
	}

	if a.cfg.ShowFPS {
		a.drawFPS(d)
	}

	if err := d.Display(); err != nil {
		return err
	}

	a.fps.Update()
	return nil
}

// blink toggles the heartbeat LED, once per full model revolution.
func (a *App) blink() {
	led := a.h.LED()
	if led == nil {
		return
	}
	a.ledOn = !a.ledOn
	if a.ledOn {
		led.High()
	} else {
		led.Low()
	}
}

// watchIntervals derives interval boundaries from the raw tick stream and
// raises the counter flag. This goroutine is the producer-side context; it
// only ever touches the counter through Boundary.
func watchIntervals(ch <-chan uint64, every uint64, c *fps.Counter) {
	next := every
	for seq := range ch {
		if seq < next {
			continue
		}
		for next <= seq {
			next += every
		}
		c.Boundary()
	}
}

// halt parks the program after a fatal fault. There is no recovery path.
func halt(h hal.HAL, err error) {
	if l := h.Logger(); l != nil {
		l.WriteLineString("fatal: " + err.Error())
	}
	select {}
}
