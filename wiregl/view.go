package wiregl

// Per-frame animation deltas. Recomputing these at runtime would need the
// trigonometry this representation exists to avoid, so they are baked in.
var (
	// rotationDelta advances the model 3° per frame about its vertical
	// axis. From the equation round(4096*exp(3j*pi/180)).
	rotationDelta = Vec2{X: 0x0ffa, Y: 0x00d6}

	// locationDelta advances the orbit/bob oscillator 1° per frame.
	// From the equation round(4096*exp(1j*pi/180)).
	locationDelta = Vec2{X: 0x0fff, Y: 0x0047}

	// unit is the canonical start value of both state vectors, 1.0 + 0i.
	unit = Vec2{X: One, Y: 0}
)

const (
	// rotationPeriod and locationPeriod are the frame counts of one full
	// revolution at the deltas above. Each state vector is re-snapped to
	// unit at its period so fixed-point drift never accumulates past one
	// revolution.
	rotationPeriod uint16 = 120
	locationPeriod uint16 = 360

	// meshDepth pushes the rotated model away from the camera before the
	// perspective divide. It is chosen so the coarse depth divisor below
	// can never reach zero for any vertex of a mesh that fits the Q4.12
	// range used by the built-in scene; the divide is unchecked.
	meshDepth Scalar = 0x2a00

	// ScreenWidth and ScreenHeight are the fixed target dimensions.
	ScreenWidth  = 128
	ScreenHeight = 64
)

// screenCenter places the projected origin mid-display.
var screenCenter = Vec2{X: ScreenWidth / 2, Y: ScreenHeight / 2}

// View is the per-frame transform state: a rotation vector and a location
// (oscillator) vector, each unit magnitude, advanced by complex
// multiplication with a constant delta.
//
// The zero View is not valid; use NewView.
type View struct {
	Rotation Vec2
	Location Vec2

	rotFrames uint16
	locFrames uint16
}

// NewView returns a View in the canonical start state.
func NewView() View {
	return View{Rotation: unit, Location: unit}
}

// Advance steps both state vectors by one frame and applies the revolution
// reset. It reports whether the rotation state completed a revolution this
// frame.
func (v *View) Advance() (wrapped bool) {
	v.Rotation = v.Rotation.Rotate(rotationDelta)
	v.Location = v.Location.Rotate(locationDelta)

	v.rotFrames++
	v.locFrames++

	if v.rotFrames >= rotationPeriod {
		v.rotFrames = 0
		v.Rotation = unit
		wrapped = true
	}
	if v.locFrames >= locationPeriod {
		v.locFrames = 0
		v.Location = unit
	}
	return wrapped
}

// Project transforms model-space vertices into screen-space points,
// overwriting dst. dst must be at least as long as verts.
//
// Per vertex: (x, z) is rotated about the vertical axis, translated by the
// swapped location vector, the y axis picks up a bob term from location.x,
// and a single truncating division by the coarse depth divisor stands in for
// perspective projection.
func (v *View) Project(verts []Vec3, dst []Vec2) {
	for i, p := range verts {
		moved := Vec2{X: p.X, Y: p.Z}.Rotate(v.Rotation).Add(v.Location.Swap())

		x := moved.X
		y := p.Y + v.Location.X>>2
		z := moved.Y

		zPrime := (z + meshDepth) >> 6
		dst[i] = Vec2{X: x / zPrime, Y: y / zPrime}.Add(screenCenter)
	}
}
