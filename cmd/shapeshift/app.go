package main

import (
	"fmt"

	"shapeshift/internal/assets"
	"shapeshift/internal/commands"
	"shapeshift/internal/config"
	"shapeshift/internal/debug"
	"shapeshift/internal/effects"
	"shapeshift/internal/facing"
	"shapeshift/internal/graphics"
	"shapeshift/internal/logger"
	"shapeshift/internal/loop"
	"shapeshift/internal/orbit"
	"shapeshift/internal/scene"
	"shapeshift/internal/terminal"
)

// app wires the scene to the window. It is also the console's command host.
type app struct {
	cfg     config.Config
	cfgPath string
	log     *logger.Logger

	cache    *assets.Cache
	scene    *scene.Scene
	detector *facing.Detector
	driver   *loop.Driver
	renderer *graphics.Renderer
	reloader *loop.Reloader
	watcher  *effects.Watcher
	term     *terminal.Terminal
	overlay  *debug.Debug
}

func newApp(cfg config.Config, cfgPath string, lg *logger.Logger, width, height int) (a *app, err error) {
	cache := assets.NewCache(graphics.NewDevice(lg.WithPrefix("device")), lg.WithPrefix("assets"))
	defer func() {
		if err != nil {
			cache.Release()
		}
	}()
	if err := cache.Preload(); err != nil {
		return nil, err
	}
	defs, err := effects.ApplyOverrides(cfg.Effects.Dir, effects.Definitions())
	if err != nil {
		return nil, err
	}
	shaded, err := cache.PreloadShadedSurfaces(defs, width, height)
	if err != nil {
		return nil, err
	}
	base, err := cache.PreloadBaseSurfaces()
	if err != nil {
		return nil, err
	}
	s, err := scene.Assemble(cache, shaded, base, width, height)
	if err != nil {
		return nil, err
	}

	a = &app{
		cfg:      cfg,
		cfgPath:  cfgPath,
		log:      lg,
		cache:    cache,
		scene:    s,
		detector: facing.New(s, facing.Options{Threshold: cfg.Facing.Threshold, OpacityScale: cfg.Facing.OpacityScale}, lg.WithPrefix("facing")),
		renderer: graphics.NewRenderer(lg.WithPrefix("render")),
		reloader: loop.NewReloader(cache, shaded, cfg.Effects.Dir, lg.WithPrefix("reload")),
		overlay:  debug.New(),
	}
	a.overlay.SetShowFPS(cfg.Debug.ShowFPS)
	a.overlay.SetShowActiveWall(cfg.Debug.ShowActiveWall)

	reg := commands.NewRegistry()
	a.term = terminal.New(lg, reg)
	commands.RegisterBuiltins(reg, a, a.term.Print)

	controls := orbit.New(&s.Camera, &graphics.Input{Captured: a.term.IsOpen}, orbitOptions(cfg.Orbit))
	a.renderer.SetSize(width, height)
	a.driver = loop.New(s, shaded, controls, a.detector, a.renderer, lg.WithPrefix("loop"))

	if cfg.Effects.Dir != "" && cfg.Effects.Watch {
		w, err := effects.Watch(cfg.Effects.Dir, lg.WithPrefix("watch"))
		if err != nil {
			lg.Warn("shader hot reload disabled", "dir", cfg.Effects.Dir, "err", err)
		} else {
			a.watcher = w
		}
	}
	lg.Info("scene ready", "width", width, "height", height, "effects", len(shaded))
	return a, nil
}

func orbitOptions(c config.Orbit) orbit.Options {
	o := orbit.DefaultOptions()
	o.EnableDamping = c.EnableDamping
	o.DampingFactor = c.DampingFactor
	o.EnablePan = c.EnablePan
	o.RotateSpeed = c.RotateSpeed
	o.ZoomSpeed = c.ZoomSpeed
	o.MinDistance = c.MinDistance
	o.MaxDistance = c.MaxDistance
	return o
}

func (a *app) Update() {
	a.term.Update()
	if a.watcher != nil {
		a.reloader.Poll(a.watcher)
	}
}

func (a *app) Resize(width, height int) { a.driver.Resize(width, height) }

func (a *app) Tick(elapsed float64) { a.driver.Tick(elapsed) }

func (a *app) Overlay() {
	a.overlay.Draw(debug.Status{Active: a.detector.Active(), Elapsed: a.driver.Elapsed(), Frames: a.driver.Frames()})
	a.term.Draw()
}

func (a *app) Close() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("close shader watcher", "err", err)
		}
	}
	a.renderer.Close()
	a.cache.Release()
}

func (a *app) Face(id scene.WallID) bool { return a.detector.Force(id) }

func (a *app) Active() scene.WallID { return a.detector.Active() }

func (a *app) SetShowFPS(show bool) {
	a.overlay.SetShowFPS(show)
	a.cfg.Debug.ShowFPS = show
}

func (a *app) SetShowActiveWall(show bool) {
	a.overlay.SetShowActiveWall(show)
	a.cfg.Debug.ShowActiveWall = show
}

func (a *app) Reload(effect string) error { return a.reloader.Reload(effect) }

func (a *app) Walls() []commands.WallStatus {
	out := make([]commands.WallStatus, 0, scene.WallCount)
	for _, w := range a.scene.Walls {
		if w == nil {
			continue
		}
		out = append(out, commands.WallStatus{
			ID:      w.ID,
			Opacity: w.Surface.Opacity,
			Shape:   w.Variant.Shape.Name,
			Effect:  w.Variant.Surface.Name,
		})
	}
	return out
}

func (a *app) SaveConfig() (string, error) {
	if err := config.Save(a.cfgPath, a.cfg); err != nil {
		return "", fmt.Errorf("save config: %w", err)
	}
	return a.cfgPath, nil
}
