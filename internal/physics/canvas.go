package physics

// Canvas is the drawing surface the simulation draws into. The core emits
// only these primitive calls; the host supplies an implementation backed by
// an actual renderer and decides styling, colors, and extent.
type Canvas interface {
	// Size returns the drawable extent in world units. Infinite shapes use
	// it to bound what they draw.
	Size() (width, height float32)
	// Line draws a segment from a to b.
	Line(a, b Vec2)
	// CircleOutline draws the outline of the circle centered at pos.
	CircleOutline(pos Vec2, r float32)
}
