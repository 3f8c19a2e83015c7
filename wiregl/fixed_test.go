package wiregl

import "testing"

func TestMulWidensBeforeRescale(t *testing.T) {
	// 4.0 * 1.5 = 6.0. The int16 product of the raw words would overflow;
	// only the widened intermediate gives the right answer.
	got := Mul(4*One, One+One/2)
	if want := Scalar(6 * One); got != want {
		t.Fatalf("Mul(4.0, 1.5) = %#x, want %#x", got, want)
	}

	if got := Mul(-One, One); got != -One {
		t.Fatalf("Mul(-1.0, 1.0) = %#x, want %#x", got, -One)
	}
}

func TestAddWrapsLikeInt16(t *testing.T) {
	a := Vec2{X: 0x7fff, Y: -0x8000}
	got := a.Add(Vec2{X: 1, Y: -1})
	if got.X != -0x8000 || got.Y != 0x7fff {
		t.Fatalf("wraparound add = %v", got)
	}
}

func TestSwapAndAbs(t *testing.T) {
	v := Vec2{X: -3, Y: 7}
	if got := v.Swap(); got != (Vec2{X: 7, Y: -3}) {
		t.Fatalf("Swap = %v", got)
	}
	if got := v.Abs(); got != (Vec2{X: 3, Y: 7}) {
		t.Fatalf("Abs = %v", got)
	}
	if got := v.Sub(Vec2{X: -3, Y: 7}); got != (Vec2{}) {
		t.Fatalf("Sub = %v", got)
	}
}

func TestRotateOfUnitIsIdentityOnRotor(t *testing.T) {
	// rotate(1+0i, r) must reproduce r exactly: 0x1000*x >> 12 == x.
	for _, r := range []Vec2{rotationDelta, locationDelta, {X: -0x123, Y: 0x456}} {
		if got := unit.Rotate(r); got != r {
			t.Fatalf("unit.Rotate(%v) = %v", r, got)
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	// Multiplying by i maps (x, y) to (-y, x) with no precision loss.
	i := Vec2{X: 0, Y: One}
	if got := (Vec2{X: 0x800, Y: 0x300}).Rotate(i); got != (Vec2{X: -0x300, Y: 0x800}) {
		t.Fatalf("rotate by i = %v", got)
	}
}

func TestFullRevolutionDriftBounded(t *testing.T) {
	// 120 steps of the 3° rotor come back near 1+0i. The drift is fixed by
	// the rounding of each step, not accumulated across revolutions.
	v := unit
	for i := 0; i < 120; i++ {
		v = v.Rotate(rotationDelta)
	}
	if v != (Vec2{X: 4040, Y: -42}) {
		t.Fatalf("after 120 steps: %v", v)
	}
	d := v.Sub(unit).Abs()
	if d.X > 64 || d.Y > 64 {
		t.Fatalf("drift %v exceeds bound", d)
	}
}
