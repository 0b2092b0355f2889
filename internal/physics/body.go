package physics

import (
	"errors"
	"fmt"
)

// Body is a rigid body with linear and angular state. Forces and torques
// accumulate between steps and are consumed (zeroed) by Step; nothing else
// touches the accumulators.
type Body struct {
	Mass    float32
	Inertia float32
	Shape   FiniteShape

	Pos   Vec2
	Vel   Vec2
	Force Vec2

	Angle  float32
	Omega  float32
	Torque float32
}

// NewBody returns a body at rest at pos with the given shape and initial
// angle. Mass and inertia must be positive; Step divides by both and there
// is no runtime check there.
func NewBody(mass, inertia float32, shape FiniteShape, pos Vec2, angle float32) (*Body, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("body mass must be positive, got %g", mass)
	}
	if inertia <= 0 {
		return nil, fmt.Errorf("body inertia must be positive, got %g", inertia)
	}
	if shape == nil {
		return nil, errors.New("body needs a shape")
	}
	return &Body{
		Mass:    mass,
		Inertia: inertia,
		Shape:   shape,
		Pos:     pos,
		Angle:   angle,
	}, nil
}

// ApplyForce adds f to the force accumulator for the next Step.
func (b *Body) ApplyForce(f Vec2) {
	b.Force = b.Force.Add(f)
}

// ApplyTorque adds t to the torque accumulator for the next Step.
func (b *Body) ApplyTorque(t float32) {
	b.Torque += t
}

// Step advances the body by dt seconds with semi-implicit Euler: velocity
// picks up the accumulated force first, then position moves with the new
// velocity. The same scheme integrates omega and angle from torque. Both
// accumulators are zeroed here, exactly once per tick.
func (b *Body) Step(dt float32) {
	acc := b.Force.Scale(1 / b.Mass)
	b.Vel = b.Vel.Add(acc.Scale(dt))
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.Force = Vec2{}

	alpha := b.Torque / b.Inertia
	b.Omega += alpha * dt
	b.Angle += b.Omega * dt
	b.Torque = 0
}

// Collide tests the body against one piece of geometry and, on partial
// overlap, reflects the velocity about the contact normal: the normal
// component flips sign, the tangential component stays. NoCollision and
// FullOverlap leave the body untouched.
func (b *Body) Collide(g Geometry) {
	res := b.Shape.collideAt(b.Pos, g)
	if res.Kind != Penetrating {
		return
	}
	n := res.Penetration.Normal
	b.Vel = b.Vel.Sub(n.Scale(2 * b.Vel.Dot(n)))
	// TODO: also push the body out of overlap (pos += depth·n); the
	// reflection alone leaves it penetrating until velocity carries it out.
}

// Draw emits the body's shape at its current position and orientation.
func (b *Body) Draw(cv Canvas) {
	b.Shape.drawAt(cv, b.Pos, b.Angle)
}
