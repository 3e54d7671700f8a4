package assets

import "shapeshift/internal/geom"

// Polyhedron is a flat-shaded triangle soup: every triangle owns its three corners,
// so each face gets its own normal. Triangles are wound counter-clockwise seen from outside.
type Polyhedron struct {
	Vertices []geom.Vec3
	Normals  []geom.Vec3
	UVs      [][2]float32
}

// TriangleCount returns the number of triangles.
func (p *Polyhedron) TriangleCount() int {
	return len(p.Vertices) / 3
}

// NewTetrahedron returns a regular tetrahedron with its corners on a sphere of the given radius.
func NewTetrahedron(radius float32) *Polyhedron {
	corners := []geom.Vec3{
		geom.V3(1, 1, 1),
		geom.V3(-1, -1, 1),
		geom.V3(-1, 1, -1),
		geom.V3(1, -1, -1),
	}
	faces := [][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	return flatPolyhedron(corners, faces, radius)
}

// NewOctahedron returns a regular octahedron with its corners on a sphere of the given radius.
func NewOctahedron(radius float32) *Polyhedron {
	corners := []geom.Vec3{
		geom.UnitX, geom.UnitX.Scale(-1),
		geom.UnitY, geom.UnitY.Scale(-1),
		geom.UnitZ, geom.UnitZ.Scale(-1),
	}
	faces := [][3]int{
		{0, 2, 4}, {0, 2, 5}, {0, 3, 4}, {0, 3, 5},
		{1, 2, 4}, {1, 2, 5}, {1, 3, 4}, {1, 3, 5},
	}
	return flatPolyhedron(corners, faces, radius)
}

// flatPolyhedron builds a convex polyhedron centered on the origin. Face winding is fixed up
// so normals point away from the center.
func flatPolyhedron(corners []geom.Vec3, faces [][3]int, radius float32) *Polyhedron {
	p := &Polyhedron{
		Vertices: make([]geom.Vec3, 0, len(faces)*3),
		Normals:  make([]geom.Vec3, 0, len(faces)*3),
		UVs:      make([][2]float32, 0, len(faces)*3),
	}
	for _, f := range faces {
		a := corners[f[0]].Normalize().Scale(radius)
		b := corners[f[1]].Normalize().Scale(radius)
		c := corners[f[2]].Normalize().Scale(radius)
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		centroid := a.Add(b).Add(c)
		if n.Dot(centroid) < 0 {
			b, c = c, b
			n = n.Scale(-1)
		}
		p.Vertices = append(p.Vertices, a, b, c)
		p.Normals = append(p.Normals, n, n, n)
		p.UVs = append(p.UVs, [2]float32{0, 0}, [2]float32{1, 0}, [2]float32{0.5, 1})
	}
	return p
}
