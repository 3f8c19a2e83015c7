package wiregl

// Scalar is the Q4.12 fixed-point number used by all WireGL math.
//
// The layout is a signed 16-bit integer with 12 fractional bits: granularity
// 1/4096 with an integer range of [-8, 7]. Addition and subtraction wrap per
// native int16 semantics; overflow is accepted, not checked. Multiplication
// must go through Mul, which widens to int32 before the product so the
// rescale shift does not lose the high bits.
type Scalar = int16

// scalarShift is the number of fractional bits in a Scalar.
const scalarShift = 12

// One is the Scalar representation of 1.0.
const One Scalar = 1 << scalarShift

// Mul multiplies two Scalars with a widened int32 intermediate.
func Mul(a, b Scalar) Scalar { return Scalar((int32(a) * int32(b)) >> scalarShift) }

// Vec2 is a 2D vector of Scalars.
type Vec2 struct {
	X, Y Scalar
}

// Vec3 is a 3D vector of Scalars.
//
// It is storage only: transforms decompose it into Vec2 rotations, it is
// never transformed as a 3-vector.
type Vec3 struct {
	X, Y, Z Scalar
}

func V2(x, y Scalar) Vec2    { return Vec2{X: x, Y: y} }
func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Swap exchanges the components.
func (v Vec2) Swap() Vec2 { return Vec2{v.Y, v.X} }

// Abs takes the component-wise absolute value. It is meant for magnitude
// comparisons on screen-bounded values; Abs of -8.0 overflows like any other
// int16 negation.
func (v Vec2) Abs() Vec2 {
	if v.X < 0 {
		v.X = -v.X
	}
	if v.Y < 0 {
		v.Y = -v.Y
	}
	return v
}

// Rotate multiplies v by o as complex numbers (v.X + i*v.Y), rescaling the
// widened products back to Q4.12. A unit-magnitude o rotates v by the angle
// o encodes; this is the only vector transform in the pipeline.
func (v Vec2) Rotate(o Vec2) Vec2 {
	x1, y1 := int32(v.X), int32(v.Y)
	x2, y2 := int32(o.X), int32(o.Y)
	return Vec2{
		X: Scalar((x1*x2 - y1*y2) >> scalarShift),
		Y: Scalar((x1*y2 + y1*x2) >> scalarShift),
	}
}
