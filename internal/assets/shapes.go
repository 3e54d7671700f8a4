package assets

import "shapeshift/internal/geom"

// Shape names held by the cache.
const (
	Box         = "box"
	Cylinder    = "cylinder"
	Sphere      = "sphere"
	Cone        = "cone"
	Tetrahedron = "tetrahedron"
	Torus       = "torus"
	Octahedron  = "octahedron"
	Panel       = "panel"
)

// Shape is an immutable cached geometry. Consumers hold *Shape and compare by pointer.
type Shape struct {
	Name string
	Spec ShapeSpec
	Mesh Mesh
}

// hexSegments turns the cylinder into a hexagonal prism.
const hexSegments = 6

const (
	defaultSphereRings   = 24
	defaultSphereSlices  = 24
	defaultConeSlices    = 24
	defaultTorusSegments = 32
	defaultTorusSides    = 16
	panelSize            = 2
	panelThickness       = 0.02
)

// shapeSpecs lists every preloaded shape in allocation order. Sizes roughly match a unit
// cube so the central object reads the same size whatever it morphs into.
func shapeSpecs() []struct {
	name string
	spec ShapeSpec
} {
	standing := geom.V3(0, -0.5, 0)
	return []struct {
		name string
		spec ShapeSpec
	}{
		{Box, ShapeSpec{Kind: KindBox, Width: 1, Height: 1, Depth: 1}},
		{Cylinder, ShapeSpec{Kind: KindCylinder, Radius: 0.6, Height: 1, Segments: hexSegments, Offset: standing}},
		{Sphere, ShapeSpec{Kind: KindSphere, Radius: 0.65, Rings: defaultSphereRings, Segments: defaultSphereSlices}},
		{Cone, ShapeSpec{Kind: KindCone, Radius: 0.6, Height: 1, Segments: defaultConeSlices, Offset: standing}},
		{Tetrahedron, ShapeSpec{Kind: KindPolyhedron, Polyhedron: NewTetrahedron(0.8)}},
		{Torus, ShapeSpec{Kind: KindTorus, Width: 1.2, TubeRadius: 0.35, Segments: defaultTorusSegments, Rings: defaultTorusSides}},
		{Octahedron, ShapeSpec{Kind: KindPolyhedron, Polyhedron: NewOctahedron(0.75)}},
		{Panel, ShapeSpec{Kind: KindBox, Width: panelSize, Height: panelSize, Depth: panelThickness}},
	}
}

// shapeNames returns the names of every preloaded shape.
func shapeNames() []string {
	specs := shapeSpecs()
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.name
	}
	return names
}
