package facing

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapeshift/internal/assets"
	"shapeshift/internal/assets/assetstest"
	"shapeshift/internal/geom"
	"shapeshift/internal/scene"
)

type fixture struct {
	scene  *scene.Scene
	loaded *assetstest.Loaded
	det    *Detector
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	l := assetstest.Preload(t, 800, 600)
	s, err := scene.Assemble(l.Cache, l.Shaded, l.Base, 800, 600)
	require.NoError(t, err)
	return &fixture{scene: s, loaded: l, det: New(s, opts, log.New(io.Discard))}
}

// look points the camera along dir from a distance of 6.
func (f *fixture) look(dir geom.Vec3) {
	f.scene.Camera.Target = geom.Zero
	f.scene.Camera.Position = dir.Normalize().Scale(-6)
}

func (f *fixture) shape(t *testing.T, name string) *assets.Shape {
	s, err := f.loaded.Cache.Shape(name)
	require.NoError(t, err)
	return s
}

func TestInitialState(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	assert.Equal(t, scene.NoWall, f.det.Active())

	// The start position faces no wall closely enough.
	assert.False(t, f.det.Update())
	assert.Equal(t, scene.NoWall, f.det.Active())
	assert.Same(t, f.shape(t, assets.Box), f.scene.Object.Shape)
	assert.Same(t, f.loaded.Base.Object, f.scene.Object.Surface)
}

func TestFrontThenBack(t *testing.T) {
	f := newFixture(t, DefaultOptions())

	f.look(geom.V3(0, 0, -1))
	assert.True(t, f.det.Update())
	assert.Equal(t, scene.Front, f.det.Active())
	assert.Same(t, f.shape(t, assets.Cylinder), f.scene.Object.Shape)
	assert.Same(t, f.loaded.Shaded["everflow"], f.scene.Object.Surface)

	f.look(geom.V3(0, 0, 1))
	assert.True(t, f.det.Update())
	assert.Equal(t, scene.Back, f.det.Active())
	assert.Same(t, f.shape(t, assets.Sphere), f.scene.Object.Shape)
	assert.Same(t, f.loaded.Shaded["pulse"], f.scene.Object.Surface)
}

func TestEveryWallMorphsToItsOwnVariant(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	for _, id := range scene.WallIDs() {
		w := f.scene.Walls[id]
		f.look(w.Facing())
		require.True(t, f.det.Update(), id.String())
		assert.Equal(t, id, f.det.Active())
		assert.Same(t, w.Variant.Shape, f.scene.Object.Shape, id.String())
		assert.Same(t, w.Variant.Surface, f.scene.Object.Surface, id.String())

		for _, other := range f.scene.Walls {
			if other.ID == id {
				continue
			}
			assert.False(t, other.Variant.Shape == f.scene.Object.Shape && other.Variant.Surface == f.scene.Object.Surface)
		}
	}
}

func TestApplyMatchesRegisteredPair(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	for _, id := range scene.WallIDs() {
		f.det.Apply(id)
		assert.Equal(t, f.scene.Walls[id].Variant, f.scene.Object.Current(), id.String())
	}
}

func TestStayingOnWallDoesNotRetrigger(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	f.look(geom.V3(0, -1, 0)) // looking down through the top wall
	require.True(t, f.det.Update())
	require.Equal(t, scene.Top, f.det.Active())
	shape, surface := f.scene.Object.Shape, f.scene.Object.Surface

	// Replace the registered pair: a re-trigger would now be visible.
	f.scene.Walls[scene.Top].Variant = f.scene.Walls[scene.Front].Variant

	f.scene.Camera.Position = f.scene.Camera.Position.Add(geom.V3(0.1, 0, 0))
	assert.False(t, f.det.Update())
	assert.Same(t, shape, f.scene.Object.Shape)
	assert.Same(t, surface, f.scene.Object.Surface)
}

func TestNoQualifyingWallKeepsLastAppearance(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	f.look(geom.V3(1, 0, 0))
	require.True(t, f.det.Update())
	require.Equal(t, scene.Left, f.det.Active())
	before := f.scene.Object.Current()

	f.look(geom.V3(1, 1, 1))
	assert.False(t, f.det.Update())
	assert.Equal(t, scene.Left, f.det.Active())
	assert.Equal(t, before, f.scene.Object.Current())
}

func TestThresholdIsStrict(t *testing.T) {
	// Back's facing direction is exactly +Z, so looking along +Z gives a dot of exactly 1.
	f := newFixture(t, Options{Threshold: 1, OpacityScale: DefaultOpacityScale})
	f.look(geom.V3(0, 0, 1))
	assert.False(t, f.det.Update())
	assert.Equal(t, scene.NoWall, f.det.Active())

	f = newFixture(t, Options{Threshold: 0.999, OpacityScale: DefaultOpacityScale})
	f.look(geom.V3(0, 0, 1))
	assert.True(t, f.det.Update())
	assert.Equal(t, scene.Back, f.det.Active())
}

func TestEarlierWallWinsTies(t *testing.T) {
	f := newFixture(t, Options{Threshold: 0.5, OpacityScale: DefaultOpacityScale})
	// Halfway between front (0,0,-1) and right (-1,0,0): both dots are ~0.707.
	f.look(geom.V3(-1, 0, -1))
	assert.True(t, f.det.Update())
	assert.Equal(t, scene.Front, f.det.Active())

	// Halfway between left (1,0,0) and bottom (0,1,0): left comes first.
	f.look(geom.V3(1, 1, 0))
	assert.True(t, f.det.Update())
	assert.Equal(t, scene.Left, f.det.Active())
}

func TestTieBrokenByOrderNotMagnitude(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	// Make the back wall face the same way as the front wall so both share the same dot product.
	f.scene.Walls[scene.Back].Rotation = f.scene.Walls[scene.Front].Rotation
	f.look(geom.V3(0, 0, -1))
	assert.True(t, f.det.Update())
	assert.Equal(t, scene.Front, f.det.Active())

	// Now the right wall faces the camera more directly than front, but front still wins.
	f.scene.Walls[scene.Right].Rotation = geom.Euler{Y: math32.Pi}
	f.scene.Walls[scene.Front].Rotation = geom.Euler{Y: math32.Pi + 0.3}
	f.det.active = scene.NoWall
	assert.True(t, f.det.Update())
	assert.Equal(t, scene.Front, f.det.Active())
}

func TestOpacityIsTwiceTheDot(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	for _, angle := range []float32{0, 0.3, 1, math32.Pi / 2, 2.2, math32.Pi} {
		// Rotate the view in the XZ plane starting from looking through the front wall.
		dir := geom.V3(-math32.Sin(angle), 0, -math32.Cos(angle))
		f.look(dir)
		f.det.Update()
		forward := f.scene.Camera.Forward()
		for _, w := range f.scene.Walls {
			x := w.Facing().Dot(forward)
			assert.GreaterOrEqual(t, x, float32(-1.0001))
			assert.LessOrEqual(t, x, float32(1.0001))
			assert.InDelta(t, 2*x, w.Surface.Opacity, 1e-5, "%s at %v", w.ID, angle)
		}
		assert.InDelta(t, 2*math32.Cos(angle), f.scene.Walls[scene.Front].Surface.Opacity, 1e-4)
	}
}

func TestOpacityUsesConfiguredScale(t *testing.T) {
	f := newFixture(t, Options{Threshold: DefaultThreshold, OpacityScale: 1})
	f.look(geom.V3(0, 0, -1))
	f.det.Update()
	assert.InDelta(t, 1, f.scene.Walls[scene.Front].Surface.Opacity, 1e-5)
	assert.InDelta(t, -1, f.scene.Walls[scene.Back].Surface.Opacity, 1e-5)
}

func TestApplyUnknownWallIsNoop(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	before := f.scene.Object.Current()
	f.det.Apply(scene.NoWall)
	f.det.Apply(scene.WallID(42))
	assert.Equal(t, before, f.scene.Object.Current())

	f.scene.Walls[scene.Top] = nil
	f.look(geom.V3(0, -1, 0))
	assert.False(t, f.det.Update())
	f.det.Apply(scene.Top)
	assert.Equal(t, before, f.scene.Object.Current())
}

func TestForce(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	assert.True(t, f.det.Force(scene.Bottom))
	assert.Equal(t, scene.Bottom, f.det.Active())
	assert.Same(t, f.shape(t, assets.Torus), f.scene.Object.Shape)
	assert.Same(t, f.loaded.Shaded["maze"], f.scene.Object.Surface)

	assert.False(t, f.det.Force(scene.Bottom))
	assert.False(t, f.det.Force(scene.NoWall))
	assert.Equal(t, scene.Bottom, f.det.Active())
}

func TestActiveChangesAtMostOncePerFrame(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	dirs := []geom.Vec3{
		geom.V3(0, 0, -1), geom.V3(0, 0, -1), geom.V3(0.1, 0, -1),
		geom.V3(1, 1, 1), geom.V3(0, 0, 1), geom.V3(-1, 0, 0), geom.V3(-1, 0.05, 0),
	}
	prev := f.det.Active()
	for _, d := range dirs {
		f.look(d)
		changed := f.det.Update()
		assert.Equal(t, changed, prev != f.det.Active())
		prev = f.det.Active()
	}
	assert.Equal(t, scene.Right, f.det.Active())
}
