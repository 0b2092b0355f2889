package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mbernat/pheng/internal/physics"
)

// Input is one frame's worth of controls. Toggles fire on the frame the key
// went down, never while it is held.
type Input struct {
	TogglePause bool
	ResetScene  bool
	ToggleFPS   bool
	ToggleMem   bool
	ToggleGrid  bool

	SpawnAt bool
	Mouse   physics.Vec2
}

// PollInput reads this frame's controls: Space pauses, R resets the scene,
// F and M flip the debug overlays, G flips the grid, left click spawns a
// body at the cursor. Call once per frame, before updating the simulation.
func PollInput() Input {
	in := Input{
		TogglePause: rl.IsKeyPressed(rl.KeySpace),
		ResetScene:  rl.IsKeyPressed(rl.KeyR),
		ToggleFPS:   rl.IsKeyPressed(rl.KeyF),
		ToggleMem:   rl.IsKeyPressed(rl.KeyM),
		ToggleGrid:  rl.IsKeyPressed(rl.KeyG),
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		in.SpawnAt = true
		pos := rl.GetMousePosition()
		in.Mouse = physics.Vec2{X: pos.X, Y: pos.Y}
	}
	return in
}
