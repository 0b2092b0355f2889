package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	gridMinorStep  = 25
	gridMajorStep  = 100
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// DrawGrid draws a screen-space grid with major/minor lines plus axis lines
// along the top and left edges (world origin is the top-left corner). Call
// between BeginDrawing and EndDrawing, before the scene so shapes stay on
// top.
func DrawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)

	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())

	for x := int32(gridMinorStep); x <= w; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		rl.DrawLine(x, 0, x, h, c)
	}
	for y := int32(gridMinorStep); y <= h; y += gridMinorStep {
		c := major
		if y%gridMajorStep != 0 {
			c = minor
		}
		rl.DrawLine(0, y, w, y, c)
	}

	// Axis lines (x=red, y=green).
	rl.DrawLine(0, 0, w, 0, axisX)
	rl.DrawLine(0, 0, 0, h, axisY)
}
