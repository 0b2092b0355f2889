package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays (FPS, heap, simulation stats). All
// overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowSimStats bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastSimText  string
	lastMemStats runtime.MemStats

	bodies   int
	geometry int
	paused   bool
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap allocation counter is drawn (under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetShowSimStats sets whether the simulation stats line is drawn (bottom of the stack).
func (d *Debug) SetShowSimStats(show bool) {
	d.ShowSimStats = show
}

// SetSimStats records what the sim-stats line shows. Call once per frame;
// the line redraws immediately when a value changed, so pausing is never
// half a second late.
func (d *Debug) SetSimStats(bodies, geometry int, paused bool) {
	if bodies != d.bodies || geometry != d.geometry || paused != d.paused {
		d.lastSimText = ""
	}
	d.bodies, d.geometry, d.paused = bodies, geometry, paused
}

// Draw renders any enabled debug overlays, stacked top-right. Call after the
// scene in the draw loop so the text stays on top. Text is only recomputed
// every updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}
	if d.ShowSimStats && d.lastSimText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawLine(d.lastFpsText, screenW, y)
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawLine(d.lastMemText, screenW, y)
		y += lineHeight
	}

	if d.ShowSimStats {
		if update {
			d.lastSimText = fmt.Sprintf("Sim: %d bodies, %d static", d.bodies, d.geometry)
			if d.paused {
				d.lastSimText += " (paused)"
			}
		}
		drawLine(d.lastSimText, screenW, y)
	}
}

// drawLine right-aligns one overlay line at the given y.
func drawLine(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
}
