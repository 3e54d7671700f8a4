// Package debug draws the on-screen diagnostics overlay.
package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shapeshift/internal/scene"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
)

// Status is what the overlay reports besides FPS.
type Status struct {
	Active  scene.WallID
	Elapsed float64
	Frames  uint64
}

// Debug holds the overlay toggles. All overlays are off by default.
type Debug struct {
	ShowFPS        bool
	ShowActiveWall bool

	frameCount  uint32
	lastFpsText string
	lastActive  scene.WallID
	activeText  string
}

// New returns an overlay with everything hidden.
func New() *Debug {
	return &Debug{lastActive: scene.NoWall}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowActiveWall sets whether the active wall, elapsed time and frame count are drawn.
func (d *Debug) SetShowActiveWall(show bool) {
	d.ShowActiveWall = show
}

// Lines returns the overlay text for st. fps is only consulted when ShowFPS is set.
func (d *Debug) Lines(st Status, fps func() int32) []string {
	d.frameCount++
	var lines []string
	if d.ShowFPS {
		if d.lastFpsText == "" || d.frameCount%updateInterval == 0 {
			d.lastFpsText = fmt.Sprintf("FPS: %d", fps())
		}
		lines = append(lines, d.lastFpsText)
	}
	if d.ShowActiveWall {
		if d.activeText == "" || st.Active != d.lastActive {
			d.lastActive = st.Active
			d.activeText = "Wall: " + st.Active.String()
		}
		lines = append(lines, d.activeText, fmt.Sprintf("Time: %.1fs  Frame: %d", st.Elapsed, st.Frames))
	}
	return lines
}

// Draw renders the enabled overlays right aligned at the top of the screen. Call after the
// scene and before the console.
func (d *Debug) Draw(st Status) {
	lines := d.Lines(st, rl.GetFPS)
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range lines {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
