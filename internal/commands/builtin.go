package commands

import (
	"errors"
	"fmt"

	"shapeshift/internal/scene"
)

// AllEffects asks reload to recompile every effect.
const AllEffects = "all"

var errUsage = errors.New("usage")

// WallStatus is one row of "cmd walls".
type WallStatus struct {
	ID      scene.WallID
	Opacity float32
	Shape   string
	Effect  string
}

// Host is what the built-in commands act on.
type Host interface {
	// Face forces the given wall active; false means nothing changed.
	Face(id scene.WallID) bool
	Active() scene.WallID
	SetShowFPS(show bool)
	SetShowActiveWall(show bool)
	// Reload recompiles one effect, or every effect for AllEffects.
	Reload(effect string) error
	Walls() []WallStatus
	SaveConfig() (path string, err error)
}

// RegisterBuiltins adds face, fps, wall, reload, walls and config. out receives command output.
func RegisterBuiltins(r *Registry, h Host, out func(string)) {
	faceFS := NewFlagSet("face")
	r.Register("face", faceFS, func() error {
		if faceFS.NArg() != 1 {
			return fmt.Errorf("%w: cmd face <front|back|right|left|bottom|top>", errUsage)
		}
		id, ok := scene.ParseWallID(faceFS.Arg(0))
		if !ok {
			return fmt.Errorf("face: unknown wall %q", faceFS.Arg(0))
		}
		if !h.Face(id) {
			out("already facing " + id.String())
			return nil
		}
		out("facing " + id.String())
		return nil
	})

	fpsFS := NewFlagSet("fps")
	show := fpsFS.Bool("show", false, "show the FPS counter")
	hide := fpsFS.Bool("hide", false, "hide the FPS counter")
	r.Register("fps", fpsFS, func() error {
		if *show == *hide {
			return fmt.Errorf("%w: cmd fps --show|--hide", errUsage)
		}
		h.SetShowFPS(*show)
		return nil
	})

	wallFS := NewFlagSet("wall")
	showWall := wallFS.Bool("show", false, "show the active wall line")
	hideWall := wallFS.Bool("hide", false, "hide the active wall line")
	r.Register("wall", wallFS, func() error {
		if *showWall == *hideWall {
			return fmt.Errorf("%w: cmd wall --show|--hide", errUsage)
		}
		h.SetShowActiveWall(*showWall)
		return nil
	})

	reloadFS := NewFlagSet("reload")
	r.Register("reload", reloadFS, func() error {
		if reloadFS.NArg() != 1 {
			return fmt.Errorf("%w: cmd reload <effect|all>", errUsage)
		}
		name := reloadFS.Arg(0)
		if err := h.Reload(name); err != nil {
			return fmt.Errorf("reload: %w", err)
		}
		out("reloaded " + name)
		return nil
	})

	wallsFS := NewFlagSet("walls")
	r.Register("walls", wallsFS, func() error {
		active := h.Active()
		for _, w := range h.Walls() {
			mark := ""
			if w.ID == active {
				mark = " *"
			}
			out(fmt.Sprintf("%-6s opacity=%5.2f %s/%s%s", w.ID, w.Opacity, w.Shape, w.Effect, mark))
		}
		return nil
	})

	configFS := NewFlagSet("config")
	save := configFS.Bool("save", false, "write the current settings to disk")
	r.Register("config", configFS, func() error {
		if !*save {
			return fmt.Errorf("%w: cmd config --save", errUsage)
		}
		path, err := h.SaveConfig()
		if err != nil {
			return err
		}
		out("saved " + path)
		return nil
	})
}
