// Package assetstest provides an in-memory assets.Device for tests that need a populated
// cache without a GL context.
package assetstest

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"shapeshift/internal/assets"
	"shapeshift/internal/effects"
)

// Handle is a fake mesh or program. Unloaded counts Unload calls.
type Handle struct {
	Label    string
	Unloaded int
}

func (h *Handle) Unload() { h.Unloaded++ }

// Device records every allocation it is asked for. While FailCompile is set, CompileProgram
// returns it.
type Device struct {
	Meshes      []*Handle
	Programs    []*Handle
	Fragments   []string
	FailCompile error
}

func (d *Device) BuildMesh(spec assets.ShapeSpec) (assets.Mesh, error) {
	h := &Handle{Label: spec.Kind.String()}
	d.Meshes = append(d.Meshes, h)
	return h, nil
}

func (d *Device) CompileProgram(vertex, fragment string) (assets.Program, error) {
	if d.FailCompile != nil {
		return nil, d.FailCompile
	}
	d.Fragments = append(d.Fragments, fragment)
	h := &Handle{Label: "program"}
	d.Programs = append(d.Programs, h)
	return h, nil
}

// Loaded is a fully preloaded cache together with its surfaces.
type Loaded struct {
	Device *Device
	Cache  *assets.Cache
	Shaded map[string]*assets.Surface
	Base   assets.BaseSurfaces
}

// Preload runs every preload step against a fresh fake device with the given viewport.
func Preload(t testing.TB, width, height int) *Loaded {
	t.Helper()
	dev := &Device{}
	cache := assets.NewCache(dev, log.New(io.Discard))
	if err := cache.Preload(); err != nil {
		t.Fatalf("preload: %v", err)
	}
	shaded, err := cache.PreloadShadedSurfaces(effects.Definitions(), width, height)
	if err != nil {
		t.Fatalf("preload shaded surfaces: %v", err)
	}
	base, err := cache.PreloadBaseSurfaces()
	if err != nil {
		t.Fatalf("preload base surfaces: %v", err)
	}
	return &Loaded{Device: dev, Cache: cache, Shaded: shaded, Base: base}
}
