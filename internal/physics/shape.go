package physics

import "errors"

// Geometry is one piece of static, immovable scene geometry. The set of
// geometry kinds is closed: every kind implements the narrow-phase test
// against each body shape, so a new kind without its tests does not compile.
type Geometry interface {
	// Draw emits the shape's outline to the canvas.
	Draw(cv Canvas)

	collideCircle(body Circle) CollisionResult
}

// FiniteShape is a bounded shape. It can serve both as a body's collision
// shape and as static geometry.
type FiniteShape interface {
	Geometry

	collideAt(pos Vec2, g Geometry) CollisionResult
	drawAt(cv Canvas, pos Vec2, angle float32)
}

// InfiniteShape is an unbounded shape; it can only be placed as static
// geometry, never carried by a body.
type InfiniteShape interface {
	Geometry

	infinite()
}

// Circle is a disc with center Pos and radius R. R must be positive. When a
// circle serves as a body's shape, Pos is ignored and the body's position is
// used instead.
type Circle struct {
	Pos Vec2
	R   float32
}

// Draw emits the circle outline.
func (c Circle) Draw(cv Canvas) {
	cv.CircleOutline(c.Pos, c.R)
}

func (c Circle) collideCircle(body Circle) CollisionResult {
	return CircleToCircle(body, c)
}

func (c Circle) collideAt(pos Vec2, g Geometry) CollisionResult {
	return g.collideCircle(Circle{Pos: pos, R: c.R})
}

// drawAt draws the circle as a body shape: the outline at pos plus two
// orthogonal diameter ticks rotated by angle, so spin is visible.
func (c Circle) drawAt(cv Canvas, pos Vec2, angle float32) {
	cv.CircleOutline(pos, c.R)

	xdelta := Vec2{X: c.R}.Rotate(angle)
	ydelta := Vec2{Y: c.R}.Rotate(angle)
	cv.Line(pos.Add(xdelta), pos.Sub(xdelta))
	cv.Line(pos.Add(ydelta), pos.Sub(ydelta))
}

// Line is the infinite line A·x + B·y + C = 0. A and B must not both be
// zero; NewLine enforces this. Lines are one-sided: the half-plane where the
// signed distance is negative counts as solid.
type Line struct {
	A, B, C float32
}

// NewLine returns the line A·x + B·y + C = 0. The degenerate case
// a == b == 0 describes no line at all and is rejected.
func NewLine(a, b, c float32) (Line, error) {
	if a == 0 && b == 0 {
		return Line{}, errors.New("line coefficients a and b cannot both be zero")
	}
	return Line{A: a, B: b, C: c}, nil
}

// drawOvershoot is how far line segments extend past the canvas on each side.
const drawOvershoot = 10

// Draw emits a segment approximating the infinite line across the canvas
// extent, overshooting a little on both ends.
func (l Line) Draw(cv Canvas) {
	w, h := cv.Size()
	if l.B == 0 {
		// Vertical: x is fixed at -C/A.
		x := -l.C / l.A
		cv.Line(Vec2{X: x, Y: -drawOvershoot}, Vec2{X: x, Y: h + drawOvershoot})
		return
	}
	x1 := float32(-drawOvershoot)
	x2 := w + drawOvershoot
	y1 := -(l.C + l.A*x1) / l.B
	y2 := -(l.C + l.A*x2) / l.B
	cv.Line(Vec2{X: x1, Y: y1}, Vec2{X: x2, Y: y2})
}

func (l Line) collideCircle(body Circle) CollisionResult {
	return CircleToLine(body, l)
}

func (l Line) infinite() {}
