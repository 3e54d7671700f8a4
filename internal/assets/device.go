package assets

import "shapeshift/internal/geom"

// Mesh is a GPU-resident geometry handle created by a Device.
type Mesh interface {
	Unload()
}

// Program is a compiled vertex+fragment program handle created by a Device.
type Program interface {
	Unload()
}

// Device allocates GPU resources. The raylib implementation lives in internal/graphics and
// may only be constructed once the window (and with it the GL context) exists.
type Device interface {
	BuildMesh(spec ShapeSpec) (Mesh, error)
	CompileProgram(vertex, fragment string) (Program, error)
}

// ShapeKind selects the generator used for a ShapeSpec.
type ShapeKind int

const (
	KindBox ShapeKind = iota
	KindCylinder
	KindSphere
	KindCone
	KindTorus
	KindPolyhedron
)

func (k ShapeKind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindCylinder:
		return "cylinder"
	case KindSphere:
		return "sphere"
	case KindCone:
		return "cone"
	case KindTorus:
		return "torus"
	case KindPolyhedron:
		return "polyhedron"
	}
	return "unknown"
}

// ShapeSpec describes how to generate one mesh. Which fields apply depends on Kind:
//
//	box:        Width, Height, Depth
//	cylinder:   Radius, Height, Segments
//	sphere:     Radius, Rings, Segments
//	cone:       Radius, Height, Segments
//	torus:      Width (outer diameter), TubeRadius (tube/ring ratio, 0.1..1), Segments, Rings
//	polyhedron: Polyhedron
//
// Offset is applied in model space before any scale or rotation so the mesh is centered on
// the origin (cylinders and cones are generated standing on y=0).
type ShapeSpec struct {
	Kind       ShapeKind
	Width      float32
	Height     float32
	Depth      float32
	Radius     float32
	TubeRadius float32
	Segments   int
	Rings      int
	Polyhedron *Polyhedron
	Offset     geom.Vec3
}
