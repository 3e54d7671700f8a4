package geom

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func TestVecBasics(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)
	assert.Equal(t, V3(5, 7, 9), a.Add(b))
	assert.Equal(t, V3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, V3(-3, 6, -3), a.Cross(b))
	assert.Equal(t, UnitZ, UnitX.Cross(UnitY))
}

func TestNormalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	assert.InDelta(t, 1, n.Length(), eps)
	assert.True(t, n.ApproxEqual(V3(0.6, 0, 0.8), eps))
	assert.Equal(t, Zero, Zero.Normalize())
}

func TestEulerApply(t *testing.T) {
	half := math32.Pi / 2
	cases := []struct {
		name string
		rot  Euler
		want Vec3
	}{
		{"identity", Euler{}, UnitZ},
		{"yaw half turn", Euler{Y: math32.Pi}, V3(0, 0, -1)},
		{"yaw quarter", Euler{Y: half}, UnitX},
		{"yaw negative quarter", Euler{Y: -half}, V3(-1, 0, 0)},
		{"pitch quarter", Euler{X: half}, V3(0, -1, 0)},
		{"pitch negative quarter", Euler{X: -half}, UnitY},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.rot.Apply(UnitZ)
			assert.True(t, got.ApproxEqual(c.want, eps), "got %v want %v", got, c.want)
		})
	}
}

func TestEulerPreservesLength(t *testing.T) {
	v := V3(1, -2, 0.5)
	got := Euler{X: 0.3, Y: 1.1, Z: -2.4}.Apply(v)
	assert.InDelta(t, v.Length(), got.Length(), eps)
}

func TestDegToRad(t *testing.T) {
	assert.InDelta(t, math32.Pi/6, DegToRad(30), eps)
}
