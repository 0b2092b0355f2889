package physics

// State owns one simulated scene: the static geometry and the dynamic
// bodies. Geometry never changes after setup; bodies are mutated every tick
// and live for the whole run.
type State struct {
	Geometry []Geometry
	Bodies   []*Body
}

// NewState returns an empty scene.
func NewState() *State {
	return &State{}
}

// AddGeometry appends a static obstacle. Insertion order is kept and is the
// order collisions resolve in.
func (s *State) AddGeometry(g Geometry) {
	s.Geometry = append(s.Geometry, g)
}

// AddBody appends a body. The state owns it from here on.
func (s *State) AddBody(b *Body) {
	s.Bodies = append(s.Bodies, b)
}

// SetGravity adds f to every body's force accumulator. Purely additive and
// consumed by the next Step, so the host applies it once per tick.
func (s *State) SetGravity(f Vec2) {
	for _, b := range s.Bodies {
		b.ApplyForce(f)
	}
}

// Collide runs every body against every piece of geometry, bodies outer,
// geometry inner. A body touching several obstacles in one tick gets each
// reflection applied in turn; simultaneous contacts are not reconciled.
func (s *State) Collide() {
	for _, b := range s.Bodies {
		for _, g := range s.Geometry {
			b.Collide(g)
		}
	}
}

// Step advances the whole scene by dt seconds: every body integrates first,
// then Collide corrects velocities against the already-moved positions. A
// large dt can carry a fast body through thin geometry; there is no
// sub-stepping.
func (s *State) Step(dt float32) {
	for _, b := range s.Bodies {
		b.Step(dt)
	}
	s.Collide()
}

// Draw emits the whole scene to the canvas: geometry first, bodies on top.
func (s *State) Draw(cv Canvas) {
	for _, g := range s.Geometry {
		g.Draw(cv)
	}
	for _, b := range s.Bodies {
		b.Draw(cv)
	}
}
