// Package orbit moves a scene camera around its target with damped, pointer-driven orbiting.
package orbit

import (
	"github.com/chewxy/math32"

	"shapeshift/internal/geom"
	"shapeshift/internal/scene"
)

const polarEpsilon = 1e-3

// Input is the per-frame pointer state the controls consume.
type Input interface {
	// RotateDelta returns pointer movement in pixels since the last frame while the rotate
	// button is held.
	RotateDelta() (dx, dy float32, held bool)
	// PanDelta is RotateDelta for the pan button.
	PanDelta() (dx, dy float32, held bool)
	// WheelDelta is positive when scrolling away from the user (zoom in).
	WheelDelta() float32
	// ViewportHeight is the viewport height in pixels; drags are scaled against it.
	ViewportHeight() int
}

// Options configures the controls.
type Options struct {
	EnableDamping bool
	DampingFactor float32
	EnablePan     bool
	RotateSpeed   float32
	ZoomSpeed     float32
	PanSpeed      float32
	MinDistance   float32
	MaxDistance   float32
	// MinPolar and MaxPolar bound the angle from +Y, in radians.
	MinPolar float32
	MaxPolar float32
}

// DefaultOptions returns damping on, panning off.
func DefaultOptions() Options {
	return Options{
		EnableDamping: true,
		DampingFactor: 0.05,
		EnablePan:     false,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		MinDistance:   2,
		MaxDistance:   30,
		MinPolar:      0,
		MaxPolar:      math32.Pi,
	}
}

// Controls orbits a camera around its target. Call Update once per frame.
type Controls struct {
	cam  *scene.Camera
	in   Input
	opts Options

	thetaDelta float32
	phiDelta   float32
	panDelta   geom.Vec3
	scale      float32
}

// New returns controls that drive cam from in.
func New(cam *scene.Camera, in Input, opts Options) *Controls {
	return &Controls{cam: cam, in: in, opts: opts, scale: 1}
}

// Options returns the current options.
func (c *Controls) Options() Options {
	return c.opts
}

// Update consumes this frame's input, applies it (a fraction of it when damping) and moves
// the camera. It reports whether the camera moved.
func (c *Controls) Update() bool {
	c.readInput()

	offset := c.cam.Position.Sub(c.cam.Target)
	radius := offset.Length()
	if radius == 0 {
		radius = polarEpsilon
	}
	theta := math32.Atan2(offset.X, offset.Z)
	phi := math32.Acos(clamp(offset.Y/radius, -1, 1))

	f := float32(1)
	if c.opts.EnableDamping {
		f = c.opts.DampingFactor
	}
	theta += c.thetaDelta * f
	phi += c.phiDelta * f
	phi = clamp(phi, max(c.opts.MinPolar, polarEpsilon), min(c.opts.MaxPolar, math32.Pi-polarEpsilon))

	radius = clamp(radius*c.scale, c.opts.MinDistance, c.opts.MaxDistance)

	target := c.cam.Target.Add(c.panDelta.Scale(f))
	sinPhi := math32.Sin(phi)
	pos := target.Add(geom.V3(
		radius*sinPhi*math32.Sin(theta),
		radius*math32.Cos(phi),
		radius*sinPhi*math32.Cos(theta),
	))

	moved := !pos.ApproxEqual(c.cam.Position, 1e-5) || !target.ApproxEqual(c.cam.Target, 1e-5)
	c.cam.Position = pos
	c.cam.Target = target

	if c.opts.EnableDamping {
		decay := 1 - c.opts.DampingFactor
		c.thetaDelta *= decay
		c.phiDelta *= decay
		c.panDelta = c.panDelta.Scale(decay)
	} else {
		c.thetaDelta, c.phiDelta = 0, 0
		c.panDelta = geom.Zero
	}
	c.scale = 1
	return moved
}

func (c *Controls) readInput() {
	h := float32(c.in.ViewportHeight())
	if h <= 0 {
		h = 1
	}
	if dx, dy, held := c.in.RotateDelta(); held {
		c.thetaDelta -= 2 * math32.Pi * dx / h * c.opts.RotateSpeed
		c.phiDelta -= 2 * math32.Pi * dy / h * c.opts.RotateSpeed
	}
	if wheel := c.in.WheelDelta(); wheel != 0 {
		zoom := math32.Pow(0.95, c.opts.ZoomSpeed)
		if wheel > 0 {
			c.scale *= zoom
		} else {
			c.scale /= zoom
		}
	}
	if !c.opts.EnablePan {
		return
	}
	if dx, dy, held := c.in.PanDelta(); held {
		offset := c.cam.Position.Sub(c.cam.Target)
		// Pixels to world units at the target distance.
		perPixel := 2 * offset.Length() * math32.Tan(geom.DegToRad(c.cam.Fovy)/2) / h
		forward := offset.Scale(-1).Normalize()
		right := forward.Cross(c.cam.Up).Normalize()
		up := right.Cross(forward)
		move := right.Scale(-dx * perPixel * c.opts.PanSpeed).Add(up.Scale(dy * perPixel * c.opts.PanSpeed))
		c.panDelta = c.panDelta.Add(move)
	}
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(hi, v))
}
