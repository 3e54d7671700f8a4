// Package loop advances the scene one frame at a time and forwards viewport changes.
package loop

import (
	"github.com/charmbracelet/log"

	"shapeshift/internal/assets"
	"shapeshift/internal/geom"
	"shapeshift/internal/scene"
)

// Rotation speed of the central object, radians per second about each axis.
var spin = geom.Euler{X: 0.3, Y: 0.5, Z: 0.2}

// Controls is the camera collaborator updated once per frame.
type Controls interface {
	Update() bool
}

// Detector decides which wall the camera faces.
type Detector interface {
	Update() bool
}

// Renderer draws a scene.
type Renderer interface {
	SetSize(width, height int)
	Render(s *scene.Scene)
}

// Driver runs the per-frame sequence. It does not own the frame clock; the platform calls
// Tick with the elapsed time and Resize when the viewport changes.
type Driver struct {
	scene    *scene.Scene
	shaded   []*assets.Surface
	controls Controls
	detector Detector
	renderer Renderer
	log      *log.Logger

	elapsed float64
	frames  uint64
}

// New returns a driver over the given scene and shaded surfaces.
func New(s *scene.Scene, shaded map[string]*assets.Surface, controls Controls, detector Detector, renderer Renderer, logger *log.Logger) *Driver {
	d := &Driver{
		scene:    s,
		controls: controls,
		detector: detector,
		renderer: renderer,
		log:      logger,
	}
	for _, surf := range shaded {
		if surf != nil && surf.Effect != nil {
			d.shaded = append(d.shaded, surf)
		}
	}
	return d
}

// Tick advances one frame at elapsed seconds since start: effect time, object spin, camera
// controls, wall facing, light follow, draw.
func (d *Driver) Tick(elapsed float64) {
	d.elapsed = elapsed
	d.frames++

	t := float32(elapsed)
	for _, surf := range d.shaded {
		surf.Effect.SetTime(t)
	}

	d.scene.Object.Rotation = geom.Euler{X: spin.X * t, Y: spin.Y * t, Z: spin.Z * t}

	if d.controls != nil {
		d.controls.Update()
	}
	if d.detector.Update() {
		d.log.Debug("active wall changed", "frame", d.frames, "t", elapsed)
	}

	d.scene.Light.Position = d.scene.Camera.Position

	d.renderer.Render(d.scene)
}

// Resize updates the camera aspect, the renderer and every effect's resolution uniform.
func (d *Driver) Resize(width, height int) {
	d.scene.SetViewport(width, height)
	d.renderer.SetSize(width, height)
	// A minimised window reports a zero size; keep the last real resolution in the shaders.
	if width <= 0 || height <= 0 {
		return
	}
	for _, surf := range d.shaded {
		surf.Effect.SetResolution(width, height)
	}
	d.log.Debug("viewport resized", "width", width, "height", height)
}

// Elapsed returns the time passed to the last Tick.
func (d *Driver) Elapsed() float64 {
	return d.elapsed
}

// Frames returns the number of ticks so far.
func (d *Driver) Frames() uint64 {
	return d.frames
}
