package scene

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// GenOptions controls procedural scene generation. Width/Height are the
// world extent the generated geometry encloses. Seed controls randomness;
// Seed == 0 uses a time-based seed.
type GenOptions struct {
	Width     float32
	Height    float32
	Obstacles int
	Bodies    int

	Seed int64
}

// DefaultGenOptions returns a sane default configuration.
func DefaultGenOptions() GenOptions {
	return GenOptions{
		Width:     1024,
		Height:    768,
		Obstacles: 6,
		Bodies:    8,
	}
}

// Generate builds a random scene def: a floor and two side walls enclosing
// the extent, a mid-field of static circle obstacles, and a band of discs
// dropped from the top. The same seed yields the same def.
func Generate(opts GenOptions) Def {
	if opts.Width <= 0 {
		opts.Width = 1024
	}
	if opts.Height <= 0 {
		opts.Height = 768
	}
	if opts.Obstacles < 0 {
		opts.Obstacles = 0
	}
	if opts.Bodies < 1 {
		opts.Bodies = 1
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w, h := opts.Width, opts.Height
	d := Def{
		Name:    fmt.Sprintf("generated (seed %d)", seed),
		Gravity: [2]float32{0, 200},
		Geometry: []GeometryDef{
			{Type: "line", A: 0, B: -1, C: h}, // floor, solid below
			{Type: "line", A: 1, B: 0, C: 0},  // left wall, solid at x < 0
			{Type: "line", A: -1, B: 0, C: w}, // right wall, solid at x > w
		},
	}

	for i := 0; i < opts.Obstacles; i++ {
		r := 20 + rng.Float32()*40
		d.Geometry = append(d.Geometry, GeometryDef{
			Type: "circle",
			Pos: [2]float32{
				r + rng.Float32()*(w-2*r),
				h*0.4 + rng.Float32()*(h*0.4),
			},
			R: r,
		})
	}

	for i := 0; i < opts.Bodies; i++ {
		r := 10 + rng.Float32()*15
		d.Bodies = append(d.Bodies, BodyDef{
			Mass:    1,
			Inertia: 1000,
			Shape:   ShapeDef{Type: "circle", R: r},
			Pos: [2]float32{
				40 + rng.Float32()*(w-80),
				40 + rng.Float32()*(h*0.25),
			},
			Angle: rng.Float32() * 2 * math.Pi,
		})
	}

	return d
}
