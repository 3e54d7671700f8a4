package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapeshift/internal/assets"
	"shapeshift/internal/assets/assetstest"
	"shapeshift/internal/geom"
)

func assemble(t *testing.T) (*Scene, *assetstest.Loaded) {
	t.Helper()
	l := assetstest.Preload(t, 800, 600)
	s, err := Assemble(l.Cache, l.Shaded, l.Base, 800, 600)
	require.NoError(t, err)
	return s, l
}

func TestAssembleCamera(t *testing.T) {
	s, _ := assemble(t)
	assert.Equal(t, float32(30), s.Camera.Fovy)
	assert.Equal(t, geom.Zero, s.Camera.Target)
	assert.Equal(t, geom.UnitY, s.Camera.Up)
	assert.InDelta(t, 800.0/600.0, s.Camera.Aspect, 1e-6)
	assert.InDelta(t, 1, s.Camera.Forward().Length(), 1e-5)

	s.SetViewport(1920, 1080)
	assert.InDelta(t, 1920.0/1080.0, s.Camera.Aspect, 1e-6)
	s.SetViewport(10, 0)
	assert.Equal(t, float32(1), s.Camera.Aspect)
}

func TestAssembleObjectStartsAsCube(t *testing.T) {
	s, l := assemble(t)
	box, _ := l.Cache.Shape(assets.Box)
	assert.Same(t, box, s.Object.Shape)
	assert.Same(t, l.Base.Object, s.Object.Surface)
	assert.Equal(t, float32(0.75), s.Object.Scale)
	assert.Equal(t, float32(1), s.Light.Intensity)
}

func TestAssembleWalls(t *testing.T) {
	s, l := assemble(t)
	panel, _ := l.Cache.Shape(assets.Panel)

	want := map[WallID]struct {
		shape, effect string
		facing        geom.Vec3
	}{
		Front:  {assets.Cylinder, "everflow", geom.V3(0, 0, -1)},
		Back:   {assets.Sphere, "pulse", geom.V3(0, 0, 1)},
		Right:  {assets.Cone, "random", geom.V3(-1, 0, 0)},
		Left:   {assets.Tetrahedron, "fallen-rose", geom.V3(1, 0, 0)},
		Bottom: {assets.Torus, "maze", geom.V3(0, 1, 0)},
		Top:    {assets.Octahedron, "rain", geom.V3(0, -1, 0)},
	}

	for i, w := range s.Walls {
		require.NotNil(t, w)
		assert.Equal(t, WallID(i), w.ID)
		assert.Same(t, panel, w.Shape)

		exp := want[w.ID]
		shape, _ := l.Cache.Shape(exp.shape)
		assert.Same(t, shape, w.Variant.Shape, w.ID.String())
		assert.Same(t, l.Shaded[exp.effect], w.Variant.Surface, w.ID.String())

		facing := w.Facing()
		assert.True(t, facing.ApproxEqual(exp.facing, 1e-5), "%s faces %v", w.ID, facing)
		assert.InDelta(t, 1, w.Position.Length(), 1e-6)
		assert.InDelta(t, -1, facing.Dot(w.Position), 1e-5, "%s must face the center", w.ID)
	}
}

func TestWallSurfacesAreIndependentClones(t *testing.T) {
	s, l := assemble(t)
	for i, a := range s.Walls {
		assert.NotSame(t, l.Base.Wall, a.Surface)
		assert.Equal(t, assets.Translucent, a.Surface.Kind)
		assert.Equal(t, l.Base.Wall.Color, a.Surface.Color)
		assert.True(t, a.Surface.Transparent)
		for _, b := range s.Walls[i+1:] {
			assert.NotSame(t, a.Surface, b.Surface)
		}
	}

	s.Walls[Front].Surface.Opacity = 0.8
	assert.Equal(t, float32(0), s.Walls[Back].Surface.Opacity)
	assert.Equal(t, float32(0), l.Base.Wall.Opacity)
}

func TestAssembleMissingEffect(t *testing.T) {
	l := assetstest.Preload(t, 800, 600)
	delete(l.Shaded, "maze")
	_, err := Assemble(l.Cache, l.Shaded, l.Base, 800, 600)
	assert.ErrorContains(t, err, "maze")
}

func TestAssembleRequiresPreload(t *testing.T) {
	l := assetstest.Preload(t, 800, 600)
	l.Cache.Release()
	_, err := Assemble(l.Cache, l.Shaded, l.Base, 800, 600)
	assert.ErrorIs(t, err, assets.ErrUnknownShape)
}

func TestMorphSwapsPair(t *testing.T) {
	s, _ := assemble(t)
	v := s.Walls[Top].Variant
	s.Object.Morph(v)
	assert.Equal(t, v, s.Object.Current())
}

func TestWallIDs(t *testing.T) {
	assert.Equal(t, [WallCount]WallID{Front, Back, Right, Left, Bottom, Top}, WallIDs())
	assert.Equal(t, "none", NoWall.String())
	assert.Equal(t, "bottom", Bottom.String())
	assert.False(t, WallID(6).Valid())

	id, ok := ParseWallID("left")
	assert.True(t, ok)
	assert.Equal(t, Left, id)
	_, ok = ParseWallID("ceiling")
	assert.False(t, ok)

	s, _ := assemble(t)
	assert.Nil(t, s.Wall(NoWall))
	assert.Equal(t, Right, s.Wall(Right).ID)
}

func TestLightDirection(t *testing.T) {
	l := Light{Position: geom.V3(0, 0, 5)}
	assert.Equal(t, geom.UnitZ, l.Direction())
}

func TestWallsBackToFront(t *testing.T) {
	s, _ := assemble(t)
	s.Camera.Position = geom.V3(0, 0, 6)
	order := s.WallsBackToFront(nil)
	require.Len(t, order, WallCount)
	assert.Equal(t, Back, order[0].ID)
	assert.Equal(t, Front, order[WallCount-1].ID)
	// The four side walls are equidistant and keep enumeration order.
	assert.Equal(t, []WallID{Right, Left, Bottom, Top}, []WallID{order[1].ID, order[2].ID, order[3].ID, order[4].ID})

	s.Camera.Position = geom.V3(5, 0.5, 0)
	order = s.WallsBackToFront(order)
	require.Len(t, order, WallCount)
	assert.Equal(t, Left, order[0].ID)
	assert.Equal(t, Right, order[WallCount-1].ID)
	assert.Equal(t, Top, order[WallCount-2].ID)

	s.Walls[Top] = nil
	assert.Len(t, s.WallsBackToFront(order), WallCount-1)
}
