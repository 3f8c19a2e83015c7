package wiregl

// Target is the pixel surface DrawLine renders into.
//
// SetPixel is only called with coordinates inside [0,w) × [0,h); the
// rasterizer performs the visibility test itself.
type Target interface {
	Size() (w, h int16)
	SetPixel(x, y int16, on bool)
}

// DrawLine rasterizes the segment p0–p1 with an integer-only Bresenham walk.
//
// Endpoints are screen-space points (whole pixels stored in Scalars). Points
// outside the target are skipped individually, so a partially off-screen
// segment comes out visually truncated rather than geometrically clipped.
func DrawLine(t Target, p0, p1 Vec2) {
	w, h := t.Size()

	// Walk along the longer axis: transpose when |Δy| > |Δx|.
	d := p1.Sub(p0).Abs()
	steep := d.Y > d.X
	if steep {
		p0 = p0.Swap()
		p1 = p1.Swap()
	}
	if p0.X > p1.X {
		p0, p1 = p1, p0
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	yStep := Scalar(1)
	if dy < 0 {
		yStep = -1
		dy = -dy
	}

	halfDiff := -(dx >> 1)
	y := p0.Y
	for x := p0.X; x <= p1.X; x++ {
		px, py := x, y
		if steep {
			px, py = py, px
		}
		if px >= 0 && px < w && py >= 0 && py < h {
			t.SetPixel(px, py, true)
		}
		halfDiff += dy
		if halfDiff > 0 {
			halfDiff -= dx
			y += yStep
		}
	}
}
