// Package scene turns declarative scene definitions into live simulation
// state: YAML defs in, a built physics.State out, with snapshot and reset
// layered on top.
package scene

import (
	"fmt"
	"os"

	"github.com/mbernat/pheng/internal/physics"
	"gopkg.in/yaml.v3"
)

// Def is the YAML definition of a scene (e.g. assets/scenes/demo.yaml).
// Entries are validated when the scene is built, not when the file decodes.
type Def struct {
	Name     string        `yaml:"name"`
	Gravity  [2]float32    `yaml:"gravity"`
	Geometry []GeometryDef `yaml:"geometry"`
	Bodies   []BodyDef     `yaml:"bodies"`
}

// GeometryDef is one piece of static geometry. Type selects the shape:
// "circle" uses Pos and R, "line" uses the coefficients A, B, C of the
// implicit line a·x + b·y + c = 0.
type GeometryDef struct {
	Type string     `yaml:"type"`
	Pos  [2]float32 `yaml:"pos,omitempty"`
	R    float32    `yaml:"r,omitempty"`
	A    float32    `yaml:"a,omitempty"`
	B    float32    `yaml:"b,omitempty"`
	C    float32    `yaml:"c,omitempty"`
}

// BodyDef is one rigid body. Bodies start at rest.
type BodyDef struct {
	Mass    float32    `yaml:"mass"`
	Inertia float32    `yaml:"inertia"`
	Shape   ShapeDef   `yaml:"shape"`
	Pos     [2]float32 `yaml:"pos"`
	Angle   float32    `yaml:"angle,omitempty"`
}

// ShapeDef is a body's collision shape. "circle" is the only type a body
// can carry.
type ShapeDef struct {
	Type string  `yaml:"type"`
	R    float32 `yaml:"r"`
}

// Default returns the built-in demo scene: a floor, a left wall, one big
// static circle, and a single disc dropped from above.
func Default() Def {
	return Def{
		Name:    "demo",
		Gravity: [2]float32{0, 200},
		Geometry: []GeometryDef{
			{Type: "line", A: 0, B: -1, C: 500},
			{Type: "line", A: 1, B: 0, C: 0},
			{Type: "circle", Pos: [2]float32{600, 400}, R: 150},
		},
		Bodies: []BodyDef{
			{Mass: 1, Inertia: 1000, Shape: ShapeDef{Type: "circle", R: 20}, Pos: [2]float32{500, 200}, Angle: 1},
		},
	}
}

// Load reads a scene definition from path. An empty path or a missing file
// falls back to Default, so the sandbox always has something to run; a file
// that exists but does not parse is an error.
func Load(path string) (Def, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Def{}, fmt.Errorf("scene %q: %w", path, err)
	}
	var d Def
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Def{}, fmt.Errorf("scene %q: %w", path, err)
	}
	return d, nil
}

// Scene is a built, runnable scene. Tick drives it; Reset returns it to the
// state it had right after New.
type Scene struct {
	Name    string
	Gravity physics.Vec2
	State   *physics.State

	initial *physics.State
}

// New validates d and builds the live scene, keeping a snapshot of the
// freshly built state for Reset.
func New(d Def) (*Scene, error) {
	state := physics.NewState()
	for i, gd := range d.Geometry {
		g, err := buildGeometry(gd)
		if err != nil {
			return nil, fmt.Errorf("geometry[%d]: %w", i, err)
		}
		state.AddGeometry(g)
	}
	for i, bd := range d.Bodies {
		shape, err := buildShape(bd.Shape)
		if err != nil {
			return nil, fmt.Errorf("bodies[%d]: %w", i, err)
		}
		b, err := physics.NewBody(bd.Mass, bd.Inertia, shape, vec(bd.Pos), bd.Angle)
		if err != nil {
			return nil, fmt.Errorf("bodies[%d]: %w", i, err)
		}
		state.AddBody(b)
	}

	s := &Scene{
		Name:    d.Name,
		Gravity: vec(d.Gravity),
		State:   state,
	}
	initial, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	s.initial = initial
	return s, nil
}

// Tick advances the scene by dt seconds: gravity lands in every body's force
// accumulator, then the state integrates and resolves collisions.
func (s *Scene) Tick(dt float32) {
	s.State.SetGravity(s.Gravity)
	s.State.Step(dt)
}

// Default spawn body, matching the demo scene's disc.
const (
	spawnMass    = 1
	spawnInertia = 1000
	spawnRadius  = 20
)

// Spawn drops one default disc at pos, at rest. Spawned bodies are not part
// of the initial snapshot, so Reset removes them again.
func (s *Scene) Spawn(pos physics.Vec2) error {
	b, err := physics.NewBody(spawnMass, spawnInertia, physics.Circle{R: spawnRadius}, pos, 0)
	if err != nil {
		return err
	}
	s.State.AddBody(b)
	return nil
}

func buildGeometry(d GeometryDef) (physics.Geometry, error) {
	switch d.Type {
	case "circle":
		if d.R <= 0 {
			return nil, fmt.Errorf("circle radius must be positive, got %g", d.R)
		}
		return physics.Circle{Pos: vec(d.Pos), R: d.R}, nil
	case "line":
		return physics.NewLine(d.A, d.B, d.C)
	default:
		return nil, fmt.Errorf("unknown geometry type %q (use circle or line)", d.Type)
	}
}

func buildShape(d ShapeDef) (physics.FiniteShape, error) {
	switch d.Type {
	case "circle":
		if d.R <= 0 {
			return nil, fmt.Errorf("circle radius must be positive, got %g", d.R)
		}
		return physics.Circle{R: d.R}, nil
	default:
		return nil, fmt.Errorf("unknown shape type %q (bodies carry circles)", d.Type)
	}
}

func vec(p [2]float32) physics.Vec2 {
	return physics.Vec2{X: p[0], Y: p[1]}
}
