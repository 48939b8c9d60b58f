package geometry

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
)

func TestOrient3D_UnitTetrahedron(t *testing.T) {
	o := r3.Vector{}
	x := r3.Vector{X: 1}
	y := r3.Vector{Y: 1}
	z := r3.Vector{Z: 1}

	assert.Equal(t, Positive, Orient3D(o, x, y, z))
	assert.Equal(t, Negative, Orient3D(x, o, y, z), "odd permutation flips the sign")
	assert.Equal(t, Positive, Orient3D(x, y, o, z), "even permutation keeps the sign")
	assert.Equal(t, Negative, Orient3D(o, x, y, r3.Vector{Z: -1}))
	assert.InDelta(t, 1.0/6, SignedVolume(o, x, y, z), 1e-15)
}

func TestOrient3D_Coplanar(t *testing.T) {
	a := r3.Vector{X: 0, Y: 0, Z: 1}
	b := r3.Vector{X: 1, Y: 0, Z: 1}
	c := r3.Vector{X: 0, Y: 1, Z: 1}
	d := r3.Vector{X: 3, Y: -7, Z: 1}

	assert.Equal(t, Zero, Orient3D(a, b, c, d))
	assert.True(t, Coplanar(a, b, c, d))
	assert.Equal(t, Zero, Orient3D(a, a, c, d), "repeated point is degenerate")
}

func TestOrient3D_OneUlpOffPlane(t *testing.T) {
	// The query points sit one ulp off the plane z=1 spanned by a, b, c.
	a := r3.Vector{X: 0.1, Y: 0.1, Z: 1}
	b := r3.Vector{X: 1e10, Y: 0.3, Z: 1}
	c := r3.Vector{X: 0.7, Y: 1e10, Z: 1}
	above := r3.Vector{X: 5, Y: 5, Z: 1.0000000000000002}
	below := r3.Vector{X: 5, Y: 5, Z: 0.9999999999999999}

	assert.Equal(t, Positive, Orient3D(a, b, c, above))
	assert.Equal(t, Negative, Orient3D(a, b, c, below))
	assert.Equal(t, exactOrient3D(a, b, c, above), Orient3D(a, b, c, above))
}

func TestSign_String(t *testing.T) {
	assert.Equal(t, "positive", Positive.String())
	assert.Equal(t, "negative", Negative.String())
	assert.Equal(t, "zero", Zero.String())
}

func TestExactOrient3D_AgreesWithFilter(t *testing.T) {
	pts := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 0.7071067811865476, Y: 0, Z: 0.7071067811865476},
		{X: 0, Y: 0.7071067811865476, Z: 0},
		{X: -0.7071067811865476, Y: 0, Z: 0.7071067811865476},
		{X: 0, Y: -0.7071067811865476, Z: 0.7071067811865476},
		{X: 0, Y: 0, Z: 2},
	}
	for i := range pts {
		for j := range pts {
			for k := range pts {
				for l := range pts {
					assert.Equal(t, exactOrient3D(pts[i], pts[j], pts[k], pts[l]),
						Orient3D(pts[i], pts[j], pts[k], pts[l]), "%d %d %d %d", i, j, k, l)
				}
			}
		}
	}
}
