package physics

import "testing"

func TestStateSetGravityAccumulates(t *testing.T) {
	s := NewState()
	b1 := mustBody(t, 1, 1000, Circle{R: 20}, Vec2{X: 100, Y: 100}, 0)
	b2 := mustBody(t, 2, 1000, Circle{R: 10}, Vec2{X: 200, Y: 100}, 0)
	s.AddBody(b1)
	s.AddBody(b2)

	s.SetGravity(Vec2{Y: 200})
	s.SetGravity(Vec2{Y: 200})

	want := Vec2{Y: 400}
	if b1.Force != want {
		t.Errorf("b1.Force = %v, want %v", b1.Force, want)
	}
	if b2.Force != want {
		t.Errorf("b2.Force = %v, want %v", b2.Force, want)
	}
}

func TestStateStepIntegratesThenCollides(t *testing.T) {
	s := NewState()
	s.AddGeometry(mustLine(t, 0, -1, 500))
	b := mustBody(t, 1, 1000, Circle{R: 20}, Vec2{X: 100, Y: 470}, 0)
	b.Vel = Vec2{Y: 60}
	s.AddBody(b)

	// At y=470 the body clears the floor; only the moved position at y=485
	// penetrates. A collide-before-move order would miss the contact.
	s.Step(0.25)

	if !almostEqual(b.Pos.Y, 485) {
		t.Errorf("Pos.Y = %g, want 485", b.Pos.Y)
	}
	if !almostEqual(b.Vel.Y, -60) {
		t.Errorf("Vel.Y = %g, want -60 (reflected after the move)", b.Vel.Y)
	}
}

func TestStateStepIdleBodiesUnchanged(t *testing.T) {
	s := NewState()
	s.AddGeometry(mustLine(t, 0, -1, 500))
	pos := Vec2{X: 300, Y: 100}
	b := mustBody(t, 1, 1000, Circle{R: 20}, pos, 0)
	s.AddBody(b)

	for i := 0; i < 50; i++ {
		s.Step(1.0 / 60)
	}

	if b.Pos != pos || b.Vel != (Vec2{}) {
		t.Errorf("idle body moved: Pos %v Vel %v", b.Pos, b.Vel)
	}
}

func TestStateCollideAppliesEveryContact(t *testing.T) {
	s := NewState()
	s.AddGeometry(mustLine(t, 0, -1, 500)) // floor y = 500
	s.AddGeometry(mustLine(t, -1, 0, 500)) // wall x = 500
	b := mustBody(t, 1, 1000, Circle{R: 20}, Vec2{X: 490, Y: 490}, 0)
	b.Vel = Vec2{X: 3, Y: 4}
	s.AddBody(b)

	s.Collide()

	// Both contacts fire in geometry order; each flips one component.
	if want := (Vec2{X: -3, Y: -4}); !vecAlmostEqual(b.Vel, want) {
		t.Errorf("Vel = %v, want %v after corner contact", b.Vel, want)
	}
}

func TestStateDropOntoFloorBouncesElastically(t *testing.T) {
	const dt = float32(1.0 / 60)
	gravity := Vec2{Y: 200}

	s := NewState()
	s.AddGeometry(mustLine(t, 0, -1, 500))
	b := mustBody(t, 1, 1000, Circle{R: 20}, Vec2{X: 500, Y: 200}, 1)
	b.Vel = Vec2{X: 7}
	s.AddBody(b)

	for i := 0; i < 2000; i++ {
		// Velocity the integrator will produce this tick if nothing hits.
		incoming := b.Vel.Y + gravity.Y*dt
		s.SetGravity(gravity)
		s.Step(dt)

		if b.Vel.Y < 0 {
			if !almostEqual(b.Vel.Y, -incoming) {
				t.Errorf("tick %d: bounce Vel.Y = %g, want %g (elastic)", i, b.Vel.Y, -incoming)
			}
			if b.Vel.X != 7 {
				t.Errorf("tick %d: bounce changed Vel.X to %g, want 7", i, b.Vel.X)
			}
			if b.Pos.Y+20 < 500 {
				t.Errorf("tick %d: bounced at Pos.Y = %g without reaching the floor", i, b.Pos.Y)
			}
			return
		}
	}
	t.Fatal("body never bounced off the floor")
}

func TestStateDrawGeometryBeforeBodies(t *testing.T) {
	s := NewState()
	s.AddGeometry(mustLine(t, 0, -1, 500))
	static := Circle{Pos: Vec2{X: 600, Y: 400}, R: 150}
	s.AddGeometry(static)
	s.AddBody(mustBody(t, 1, 1000, Circle{R: 20}, Vec2{X: 100, Y: 100}, 0))

	cv := &recordingCanvas{w: 800, h: 600}
	s.Draw(cv)

	// One floor segment plus the body's two diameter ticks.
	if len(cv.lines) != 3 {
		t.Fatalf("drew %d line segments, want 3", len(cv.lines))
	}
	if y := cv.lines[0][0].Y; !almostEqual(y, 500) {
		t.Errorf("first segment starts at y = %g, want the floor at 500", y)
	}
	// Static circle before the body's outline.
	if len(cv.circles) != 2 {
		t.Fatalf("drew %d circles, want 2", len(cv.circles))
	}
	if cv.circles[0] != static {
		t.Errorf("first circle = %+v, want the static obstacle %+v", cv.circles[0], static)
	}
	if got := cv.circles[1]; got.Pos != (Vec2{X: 100, Y: 100}) || got.R != 20 {
		t.Errorf("second circle = %+v, want the body outline", got)
	}
}
