package geom

import "github.com/chewxy/math32"

// Euler is a rotation in radians applied in X, then Y, then Z order (intrinsic XYZ,
// the same convention raylib's MatrixRotateXYZ uses).
type Euler struct {
	X, Y, Z float32
}

// Apply rotates v by e.
func (e Euler) Apply(v Vec3) Vec3 {
	sx, cx := math32.Sincos(e.X)
	sy, cy := math32.Sincos(e.Y)
	sz, cz := math32.Sincos(e.Z)

	// about X
	v = Vec3{v.X, v.Y*cx - v.Z*sx, v.Y*sx + v.Z*cx}
	// about Y
	v = Vec3{v.X*cy + v.Z*sy, v.Y, -v.X*sy + v.Z*cy}
	// about Z
	return Vec3{v.X*cz - v.Y*sz, v.X*sz + v.Y*cz, v.Z}
}

// Array returns the angles as an array.
func (e Euler) Array() [3]float32 {
	return [3]float32{e.X, e.Y, e.Z}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}
