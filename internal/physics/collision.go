// Package physics implements a minimal 2D rigid-body simulation: disc bodies
// under accumulated forces and torques, narrow-phase penetration tests
// against static circles and one-sided infinite lines, and an elastic
// velocity reflection as the collision response.
package physics

import (
	"fmt"

	"github.com/chewxy/math32"
)

// CollisionKind classifies the outcome of a narrow-phase test.
type CollisionKind uint8

const (
	// NoCollision means the shapes are disjoint.
	NoCollision CollisionKind = iota
	// Penetrating means the shapes overlap partially and a contact is
	// available.
	Penetrating
	// FullOverlap means one shape's reference point is inside or behind the
	// other, so no single separating normal is well-defined.
	FullOverlap
)

func (k CollisionKind) String() string {
	switch k {
	case NoCollision:
		return "NoCollision"
	case Penetrating:
		return "Penetrating"
	case FullOverlap:
		return "FullOverlap"
	default:
		return fmt.Sprintf("CollisionKind(%d)", uint8(k))
	}
}

// Penetration describes a partial overlap: the contact point on the body
// shape's surface, the unit normal pointing from the obstacle toward the
// body, and the overlap depth along that normal.
type Penetration struct {
	Pos    Vec2
	Normal Vec2
	Depth  float32
}

// CollisionResult is the tri-state outcome of a narrow-phase test. The
// Penetration field is meaningful only when Kind is Penetrating.
type CollisionResult struct {
	Kind        CollisionKind
	Penetration Penetration
}

// CircleToCircle tests the body circle c1 against the obstacle circle c2.
func CircleToCircle(c1, c2 Circle) CollisionResult {
	diff := c1.Pos.Sub(c2.Pos)
	dist := diff.Length()

	if dist > c1.R+c2.R {
		return CollisionResult{Kind: NoCollision}
	}
	if dist > c2.R {
		normal := diff.Normalize()
		return CollisionResult{
			Kind: Penetrating,
			Penetration: Penetration{
				Pos:    c1.Pos.Sub(normal.Scale(c1.R)),
				Normal: normal,
				Depth:  c1.R + c2.R - dist,
			},
		}
	}
	// The center of c1 sits inside c2; the center difference alone gives no
	// separating direction.
	return CollisionResult{Kind: FullOverlap}
}

// CircleToLine tests the body circle c against the one-sided line l. The
// half-plane with positive signed distance is open space, the other half is
// solid: a circle far on the solid side reads as engulfed, not disjoint.
func CircleToLine(c Circle, l Line) CollisionResult {
	// The center projects onto the line at c.Pos - (A·t, B·t), so (A·t, B·t)
	// is the perpendicular offset from the foot point up to the center.
	t := (l.A*c.Pos.X + l.B*c.Pos.Y + l.C) / (l.A*l.A + l.B*l.B)
	diff := Vec2{X: l.A * t, Y: l.B * t}
	dist := diff.Length()

	if dist > c.R {
		if t > 0 {
			return CollisionResult{Kind: NoCollision}
		}
		return CollisionResult{Kind: FullOverlap}
	}

	normal := diff.Normalize()
	// Depth is signed by t, not by dist: once the center has crossed the
	// line (t < 0) the overlap keeps growing past R instead of shrinking.
	depth := c.R - dist*signum(t)
	return CollisionResult{
		Kind: Penetrating,
		Penetration: Penetration{
			Pos:    c.Pos.Sub(normal.Scale(c.R)),
			Normal: normal,
			Depth:  depth,
		},
	}
}

// signum returns ±1 carrying the sign of x. Zero keeps its sign bit, so
// +0 → 1 and -0 → -1.
func signum(x float32) float32 {
	return math32.Copysign(1, x)
}
