package scene

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jinzhu/copier"

	"shapeshift/internal/assets"
	"shapeshift/internal/geom"
)

const (
	cameraFovy     = 30
	cameraNear     = 0.1
	cameraFar      = 100
	objectScale    = 0.75
	lightIntensity = 1.0
)

var (
	cameraStart = geom.V3(4, 3, 6)
	lightStart  = geom.V3(1, 1, 1)
)

// Camera is a perspective camera looking at Target.
type Camera struct {
	Position geom.Vec3
	Target   geom.Vec3
	Up       geom.Vec3
	Fovy     float32 // vertical field of view, degrees
	Aspect   float32
	Near     float32
	Far      float32
}

// Forward returns the unit direction the camera looks in.
func (c *Camera) Forward() geom.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Light is a directional light shining from Position towards Target.
type Light struct {
	Position  geom.Vec3
	Target    geom.Vec3
	Color     assets.Color
	Intensity float32
}

// Direction returns the unit direction from the target towards the light.
func (l *Light) Direction() geom.Vec3 {
	return l.Position.Sub(l.Target).Normalize()
}

// Object is the shape-shifting centerpiece.
type Object struct {
	Shape    *assets.Shape
	Surface  *assets.Surface
	Scale    float32
	Rotation geom.Euler
}

// Morph swaps shape and surface together, so the object never shows half a variant.
func (o *Object) Morph(v Variant) {
	o.Shape, o.Surface = v.Shape, v.Surface
}

// Current returns the pair the object is drawn with.
func (o *Object) Current() Variant {
	return Variant{Shape: o.Shape, Surface: o.Surface}
}

// Scene holds the camera, light, central object and the six walls of the enclosure.
type Scene struct {
	Camera Camera
	Light  Light
	Object Object
	Walls  [WallCount]*Wall
}

// Wall returns the wall with the given id, or nil for an unknown id.
func (s *Scene) Wall(id WallID) *Wall {
	if !id.Valid() {
		return nil
	}
	return s.Walls[id]
}

// Assemble builds the scene from preloaded assets. shaded is the effect-name keyed map from
// Cache.PreloadShadedSurfaces; width and height are the current viewport in pixels.
// Camera: position (4,3,6), target origin, up +Y, fovy 30°. The object starts as a 0.75 scaled
// cube with the lit surface.
func Assemble(cache *assets.Cache, shaded map[string]*assets.Surface, base assets.BaseSurfaces, width, height int) (*Scene, error) {
	box, err := cache.Shape(assets.Box)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	panel, err := cache.Shape(assets.Panel)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if base.Object == nil || base.Wall == nil {
		return nil, fmt.Errorf("scene: base surfaces not preloaded")
	}

	s := &Scene{
		Camera: Camera{
			Position: cameraStart,
			Target:   geom.Zero,
			Up:       geom.UnitY,
			Fovy:     cameraFovy,
			Aspect:   aspect(width, height),
			Near:     cameraNear,
			Far:      cameraFar,
		},
		Light: Light{
			Position:  lightStart,
			Target:    geom.Zero,
			Color:     assets.Color{R: 1, G: 0.98, B: 0.95, A: 1},
			Intensity: lightIntensity,
		},
		Object: Object{
			Shape:   box,
			Surface: base.Object,
			Scale:   objectScale,
		},
	}

	for _, id := range WallIDs() {
		v := variants[id]
		shape, err := cache.Shape(v.shape)
		if err != nil {
			return nil, fmt.Errorf("scene: %s wall: %w", id, err)
		}
		surface, ok := shaded[v.effect]
		if !ok {
			return nil, fmt.Errorf("scene: %s wall: missing effect %q", id, v.effect)
		}
		// Each wall fades on its own, so it needs its own surface.
		var own assets.Surface
		if err := copier.Copy(&own, base.Wall); err != nil {
			return nil, fmt.Errorf("scene: clone wall surface: %w", err)
		}
		own.Name = base.Wall.Name + "-" + id.String()
		s.Walls[id] = &Wall{
			ID:       id,
			Shape:    panel,
			Surface:  &own,
			Position: placement[id].pos,
			Rotation: placement[id].rot,
			Variant:  Variant{Shape: shape, Surface: surface},
		}
	}
	return s, nil
}

// SetViewport updates the camera aspect ratio.
func (s *Scene) SetViewport(width, height int) {
	s.Camera.Aspect = aspect(width, height)
}

// WallsBackToFront appends the scene's walls to dst, farthest from the camera first, the order
// translucent panels must be blended in.
func (s *Scene) WallsBackToFront(dst []*Wall) []*Wall {
	dst = dst[:0]
	for _, w := range s.Walls {
		if w != nil {
			dst = append(dst, w)
		}
	}
	eye := s.Camera.Position
	slices.SortStableFunc(dst, func(a, b *Wall) int {
		da := a.Position.Sub(eye).Length()
		db := b.Position.Sub(eye).Length()
		return cmp.Compare(db, da)
	})
	return dst
}

func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
