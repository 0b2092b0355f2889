package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mbernat/pheng/internal/physics"
)

var _ physics.Canvas = ScreenCanvas{}

// shapeColor is the single stroke color for simulation shapes.
var shapeColor = rl.White

// ScreenCanvas draws simulation primitives with raylib in screen space. It
// implements physics.Canvas; the zero value is ready to use. Calls must land
// between BeginDrawing and EndDrawing.
type ScreenCanvas struct{}

// Size reports the current drawable extent, tracking window resizes.
func (ScreenCanvas) Size() (float32, float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

// Line draws a segment from a to b.
func (ScreenCanvas) Line(a, b physics.Vec2) {
	rl.DrawLineV(rl.NewVector2(a.X, a.Y), rl.NewVector2(b.X, b.Y), shapeColor)
}

// CircleOutline draws the outline of the circle centered at pos.
func (ScreenCanvas) CircleOutline(pos physics.Vec2, r float32) {
	rl.DrawCircleLinesV(rl.NewVector2(pos.X, pos.Y), r, shapeColor)
}
