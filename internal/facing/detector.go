// Package facing decides, every frame, which enclosure wall the camera looks through and
// morphs the central object when that wall changes.
package facing

import (
	"github.com/charmbracelet/log"

	"shapeshift/internal/scene"
)

const (
	// DefaultThreshold is the dot product a wall must strictly exceed to become dominant.
	DefaultThreshold = 0.9
	// DefaultOpacityScale maps the facing dot product to wall opacity.
	DefaultOpacityScale = 2
)

// Options tunes the detector.
type Options struct {
	Threshold    float32
	OpacityScale float32
}

// DefaultOptions returns the threshold and opacity scale the scene is designed around.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, OpacityScale: DefaultOpacityScale}
}

// Detector owns the active-wall state. It is the only writer of the central object's
// shape and surface.
type Detector struct {
	scene  *scene.Scene
	opts   Options
	active scene.WallID
	log    *log.Logger
}

// New returns a detector with no active wall.
func New(s *scene.Scene, opts Options, logger *log.Logger) *Detector {
	return &Detector{scene: s, opts: opts, active: scene.NoWall, log: logger}
}

// Active returns the wall currently driving the central object, or scene.NoWall.
func (d *Detector) Active() scene.WallID {
	return d.active
}

// Update runs one frame: every wall's opacity is set to OpacityScale times the dot product of
// its facing direction and the camera's forward direction, and the first wall in evaluation
// order whose dot product exceeds Threshold becomes dominant. It reports whether the
// dominant wall differed from the active one and a morph happened.
func (d *Detector) Update() bool {
	forward := d.scene.Camera.Forward()
	dominant := scene.NoWall
	for _, id := range scene.WallIDs() {
		w := d.scene.Walls[id]
		if w == nil {
			continue
		}
		dot := w.Facing().Dot(forward)
		w.Surface.Opacity = d.opts.OpacityScale * dot
		if dominant == scene.NoWall && dot > d.opts.Threshold {
			dominant = id
		}
	}
	if dominant == scene.NoWall || dominant == d.active {
		return false
	}
	d.active = dominant
	d.Apply(dominant)
	return true
}

// Apply morphs the central object into the variant registered for id. An id without a
// registered wall leaves the object as it is.
func (d *Detector) Apply(id scene.WallID) {
	w := d.scene.Wall(id)
	if w == nil {
		d.log.Debug("no transformation registered", "wall", id)
		return
	}
	d.scene.Object.Morph(w.Variant)
	d.log.Info("object morphed", "wall", id, "shape", w.Variant.Shape.Name, "effect", w.Variant.Surface.Name)
}

// Force makes id the active wall as if the camera had turned to face it. It reports false,
// and changes nothing, for an unknown id or the wall that is already active.
func (d *Detector) Force(id scene.WallID) bool {
	if d.scene.Wall(id) == nil || id == d.active {
		return false
	}
	d.active = id
	d.Apply(id)
	return true
}
