package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1024
	windowHeight = 768
	windowTitle  = "Pheng"
)

// Run opens the window and drives the main loop. Each frame it calls update
// with the previous frame's duration in seconds, then clears the screen and
// calls draw. The simulation itself never touches raylib directly; it comes
// in through these two callbacks.
func Run(targetFPS int32, update func(dt float32), draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
