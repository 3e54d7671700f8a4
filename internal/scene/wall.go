package scene

import (
	"github.com/chewxy/math32"

	"shapeshift/internal/assets"
	"shapeshift/internal/geom"
)

// WallID identifies one enclosure wall. The numeric order is the construction and
// evaluation order: front, back, right, left, bottom, top.
type WallID int

const (
	// NoWall is the facing state before any wall has been faced.
	NoWall WallID = iota - 1
	Front
	Back
	Right
	Left
	Bottom
	Top

	// WallCount is the number of enclosure walls.
	WallCount = 6
)

var wallNames = [WallCount]string{"front", "back", "right", "left", "bottom", "top"}

// Valid reports whether id names one of the six walls.
func (id WallID) Valid() bool {
	return id >= Front && id <= Top
}

func (id WallID) String() string {
	if !id.Valid() {
		return "none"
	}
	return wallNames[id]
}

// ParseWallID returns the wall called name.
func ParseWallID(name string) (WallID, bool) {
	for i, n := range wallNames {
		if n == name {
			return WallID(i), true
		}
	}
	return NoWall, false
}

// WallIDs returns every wall in evaluation order.
func WallIDs() [WallCount]WallID {
	return [WallCount]WallID{Front, Back, Right, Left, Bottom, Top}
}

// Variant is the shape + surface pair a wall morphs the central object into.
type Variant struct {
	Shape   *assets.Shape
	Surface *assets.Surface
}

// Wall is one translucent enclosure panel. Its surface is a private clone so its opacity can
// change independently of the other walls.
type Wall struct {
	ID       WallID
	Shape    *assets.Shape
	Surface  *assets.Surface
	Position geom.Vec3
	Rotation geom.Euler
	Variant  Variant
}

// Facing returns the unit direction the panel's face points in: its local +Z axis in world
// space. Every panel is rotated so this points at the enclosure center.
func (w *Wall) Facing() geom.Vec3 {
	return w.Rotation.Apply(geom.UnitZ).Normalize()
}

// placement is where each wall sits (unit distance from the center) and how it is rotated
// so its face looks inward.
var placement = [WallCount]struct {
	pos geom.Vec3
	rot geom.Euler
}{
	Front:  {geom.V3(0, 0, 1), geom.Euler{Y: math32.Pi}},
	Back:   {geom.V3(0, 0, -1), geom.Euler{}},
	Right:  {geom.V3(1, 0, 0), geom.Euler{Y: -math32.Pi / 2}},
	Left:   {geom.V3(-1, 0, 0), geom.Euler{Y: math32.Pi / 2}},
	Bottom: {geom.V3(0, -1, 0), geom.Euler{X: -math32.Pi / 2}},
	Top:    {geom.V3(0, 1, 0), geom.Euler{X: math32.Pi / 2}},
}

// variants maps each wall to the shape and effect it morphs the central object into.
var variants = [WallCount]struct {
	shape  string
	effect string
}{
	Front:  {assets.Cylinder, "everflow"},
	Back:   {assets.Sphere, "pulse"},
	Right:  {assets.Cone, "random"},
	Left:   {assets.Tetrahedron, "fallen-rose"},
	Bottom: {assets.Torus, "maze"},
	Top:    {assets.Octahedron, "rain"},
}
