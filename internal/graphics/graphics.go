// Package graphics is the raylib backend: the window and frame loop, the GPU device the asset
// cache allocates through, the scene renderer, and pointer input for the orbit controls.
package graphics

import (
	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configures the window.
type Options struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	TargetFPS int
}

// App is driven by Run once the window exists.
type App interface {
	// Update handles input and background work before the frame is drawn.
	Update()
	// Resize is called with the new framebuffer size before the next Tick.
	Resize(width, height int)
	// Tick advances and draws the 3D scene; elapsed is seconds since the window opened.
	Tick(elapsed float64)
	// Overlay draws 2D content on top of the scene.
	Overlay()
	// Close releases GPU resources while the context still exists.
	Close()
}

// Run opens the window, builds the app with start and drives it until the window closes.
// start runs after the GL context exists, so it may allocate GPU resources.
func Run(opts Options, logger *log.Logger, start func(width, height int) (App, error)) error {
	routeTraceLog(logger)

	flags := uint32(rl.FlagMsaa4xHint)
	if opts.Resizable {
		flags |= rl.FlagWindowResizable
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()

	// ESC toggles the console; close via the window button.
	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}

	app, err := start(rl.GetScreenWidth(), rl.GetScreenHeight())
	if err != nil {
		return err
	}
	defer app.Close()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			app.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		app.Update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		app.Tick(rl.GetTime())
		app.Overlay()
		rl.EndDrawing()
	}
	return nil
}

// routeTraceLog sends raylib's own messages through logger.
func routeTraceLog(logger *log.Logger) {
	l := logger.WithPrefix("raylib")
	rl.SetTraceLogCallback(func(level int, msg string) {
		switch rl.TraceLogLevel(level) {
		case rl.LogTrace, rl.LogDebug:
			l.Debug(msg)
		case rl.LogWarning:
			l.Warn(msg)
		case rl.LogError, rl.LogFatal:
			l.Error(msg)
		default:
			l.Info(msg)
		}
	})
}
