// Package wiregl is a minimal fixed-point software renderer for monochrome
// wireframe scenes.
//
// WireGL targets microcontrollers without a floating point unit: every value
// in the pipeline is a Q4.12 signed 16-bit fixed-point number and the hot
// path performs no allocations and no floating point math.
//
// Pipeline (fixed):
//
//	Mesh → Rotate/Translate → Perspective divide → Bresenham lines → Target.
//
// Rotation is complex multiplication of 2D vectors rather than a matrix
// stack: a unit vector advanced by a constant per-frame delta stands in for
// the angle, and a periodic re-snap to the canonical unit value bounds the
// rounding drift of repeated fixed-point multiplies.
//
// The renderer draws into a caller-provided Target and clips point-by-point;
// it does not require a full framebuffer.
package wiregl
