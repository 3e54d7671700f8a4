package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Input reads pointer state from raylib for the orbit controls. Left drag rotates, right drag
// pans and the wheel zooms. While Captured reports true (the console is open) no input is
// reported.
type Input struct {
	Captured func() bool
}

func (in *Input) blocked() bool {
	return in.Captured != nil && in.Captured()
}

// RotateDelta returns the pointer movement while the left button is held.
func (in *Input) RotateDelta() (float32, float32, bool) {
	return in.drag(rl.MouseButtonLeft)
}

// PanDelta returns the pointer movement while the right button is held.
func (in *Input) PanDelta() (float32, float32, bool) {
	return in.drag(rl.MouseButtonRight)
}

func (in *Input) drag(button rl.MouseButton) (float32, float32, bool) {
	if in.blocked() || !rl.IsMouseButtonDown(button) {
		return 0, 0, false
	}
	d := rl.GetMouseDelta()
	return d.X, d.Y, true
}

// WheelDelta returns this frame's wheel movement.
func (in *Input) WheelDelta() float32 {
	if in.blocked() {
		return 0
	}
	return rl.GetMouseWheelMove()
}

// ViewportHeight returns the window height in pixels.
func (in *Input) ViewportHeight() int {
	return rl.GetScreenHeight()
}
