package assets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"shapeshift/internal/effects"
)

var (
	// ErrAlreadyPreloaded is returned by a second call to Preload.
	ErrAlreadyPreloaded = errors.New("assets: shapes already preloaded")
	// ErrUnknownShape is returned for a shape name the cache does not hold.
	ErrUnknownShape = errors.New("assets: unknown shape")
)

// Cache owns every GPU resource the scene uses. Everything is created once at startup
// and reused; nothing is allocated while animating.
type Cache struct {
	device   Device
	log      *log.Logger
	shapes   map[string]*Shape
	surfaces []*Surface

	preloaded bool
}

// NewCache returns an empty cache that allocates through device.
func NewCache(device Device, logger *log.Logger) *Cache {
	return &Cache{
		device: device,
		log:    logger,
		shapes: make(map[string]*Shape),
	}
}

// Preload builds every named shape exactly once. Calling it again returns ErrAlreadyPreloaded
// without touching the device.
func (c *Cache) Preload() error {
	if c.preloaded {
		return ErrAlreadyPreloaded
	}
	c.preloaded = true
	for _, s := range shapeSpecs() {
		mesh, err := c.device.BuildMesh(s.spec)
		if err != nil {
			return fmt.Errorf("assets: build %s: %w", s.name, err)
		}
		c.shapes[s.name] = &Shape{Name: s.name, Spec: s.spec, Mesh: mesh}
		c.log.Debug("shape ready", "name", s.name, "kind", s.spec.Kind)
	}
	return nil
}

// Shape returns the cached shape called name.
func (c *Cache) Shape(name string) (*Shape, error) {
	s, ok := c.shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (known: %s)", ErrUnknownShape, name, strings.Join(shapeNames(), ", "))
	}
	return s, nil
}

// PreloadShadedSurfaces compiles every effect and wraps a fresh effects.Instance, seeded with
// the viewport size and zero time, in a shared Surface. The result is keyed by effect name.
func (c *Cache) PreloadShadedSurfaces(defs []effects.Definition, width, height int) (map[string]*Surface, error) {
	out := make(map[string]*Surface, len(defs))
	for _, def := range defs {
		def := def // per-iteration copy: &def is retained below (go1.21 loop semantics)
		prog, err := c.device.CompileProgram(def.Vertex, def.Fragment)
		if err != nil {
			return nil, fmt.Errorf("assets: compile effect %s: %w", def.Name, err)
		}
		s := &Surface{
			Name:       def.Name,
			Kind:       Shaded,
			Program:    prog,
			Effect:     effects.NewInstance(&def, width, height),
			Color:      Color{1, 1, 1, 1},
			Opacity:    1,
			DepthWrite: true,
		}
		out[def.Name] = s
		c.surfaces = append(c.surfaces, s)
		c.log.Debug("effect ready", "name", def.Name, "width", width, "height", height)
	}
	return out, nil
}

// PreloadBaseSurfaces builds the lit surface for the central object and the translucent
// template the walls clone.
func (c *Cache) PreloadBaseSurfaces() (BaseSurfaces, error) {
	prog, err := c.device.CompileProgram(litVS, litFS)
	if err != nil {
		return BaseSurfaces{}, fmt.Errorf("assets: compile lit program: %w", err)
	}
	object := &Surface{
		Name:       "object",
		Kind:       Lit,
		Program:    prog,
		Color:      objectColor,
		Opacity:    1,
		DepthWrite: true,
	}
	wall := &Surface{
		Name:        "wall",
		Kind:        Translucent,
		Color:       wallColor,
		Opacity:     0,
		Transparent: true,
		DoubleSided: true,
	}
	c.surfaces = append(c.surfaces, object, wall)
	return BaseSurfaces{Object: object, Wall: wall}, nil
}

// ReloadEffect recompiles a shaded surface from def. On failure the surface keeps its
// current program. Uniform values survive the reload.
func (c *Cache) ReloadEffect(s *Surface, def effects.Definition) error {
	if s == nil || s.Kind != Shaded {
		return fmt.Errorf("assets: %w: not a shaded surface", effects.ErrUnknownEffect)
	}
	prog, err := c.device.CompileProgram(def.Vertex, def.Fragment)
	if err != nil {
		return fmt.Errorf("assets: recompile effect %s: %w", def.Name, err)
	}
	if s.Program != nil {
		s.Program.Unload()
	}
	s.Program = prog
	s.Effect.Def = &def
	c.log.Info("effect reloaded", "name", def.Name)
	return nil
}

// Release unloads every mesh and program the cache created.
func (c *Cache) Release() {
	for _, s := range c.shapes {
		if s.Mesh != nil {
			s.Mesh.Unload()
		}
	}
	for _, s := range c.surfaces {
		if s.Program != nil {
			s.Program.Unload()
		}
	}
	c.shapes = make(map[string]*Shape)
	c.surfaces = nil
}
