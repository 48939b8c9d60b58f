// SPDX-License-Identifier: MIT
// Package: bistellar/builder
//
// impl_bipyramid.go: cells arranged around one interior edge.
//
// Both fixtures emit points and cells in a fixed, documented order, so the
// resulting VertexIDs and storage order are stable across runs.

package builder

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/katalvlaran/bistellar/core"
)

// canonicalPoints are the six points of the bipyramid fixture; s = 1/√2.
// Points 1 and 3 span the interior edge; 0 and 5 are the poles of the
// wedge pairs and 2, 4 complete the ring around the edge.
var canonicalPoints = []r3.Vector{
	{X: 0, Y: 0, Z: 0},
	{X: math.Sqrt2 / 2, Y: 0, Z: math.Sqrt2 / 2},
	{X: 0, Y: math.Sqrt2 / 2, Z: 0},
	{X: -math.Sqrt2 / 2, Y: 0, Z: math.Sqrt2 / 2},
	{X: 0, Y: -math.Sqrt2 / 2, Z: math.Sqrt2 / 2},
	{X: 0, Y: 0, Z: 2},
}

// canonicalCells circulate the edge (1,3); the ring reads 5, 4, 0, 2.
var canonicalCells = [][4]int{
	{1, 3, 5, 4},
	{1, 3, 4, 0},
	{1, 3, 0, 2},
	{1, 3, 2, 5},
}

// CanonicalBipyramid returns the six-point fixture: four finite cells around
// the edge between points 1 and 3, thirteen finite edges, six vertices.
// Complexity: O(1).
func CanonicalBipyramid() Constructor {
	return func(t *core.Triangulation, cfg builderConfig) error {
		if err := Soup(canonicalPoints, canonicalCells)(t, cfg); err != nil {
			return errors.Wrap(err, MethodCanonicalBipyramid)
		}

		return nil
	}
}

// AxialBipyramid returns n cells sharing the axis from (0,0,-1) to (0,0,1),
// with the ring points on the unit circle in the plane z=0.
//
// Point order: 0 is the bottom apex, 1 the top apex, 2..n+1 the ring
// counterclockwise from (1,0,0). Cell k is (bottom, top, ring k, ring k+1).
// For n == PivotDegree this is the regular octahedron.
//
// Errors: ErrTooFewVertices if n < MinBipyramidSides.
// Complexity: O(n).
func AxialBipyramid(n int) Constructor {
	return func(t *core.Triangulation, cfg builderConfig) error {
		if n < MinBipyramidSides {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < %d", MethodAxialBipyramid, n, MinBipyramidSides)
		}
		points := make([]r3.Vector, 0, n+2)
		points = append(points, r3.Vector{Z: -1}, r3.Vector{Z: 1})
		for k := 0; k < n; k++ {
			points = append(points, ringPoint(k, n))
		}
		cells := make([][4]int, n)
		for k := 0; k < n; k++ {
			cells[k] = [4]int{0, 1, 2 + k, 2 + (k+1)%n}
		}
		if err := Soup(points, cells)(t, cfg); err != nil {
			return errors.Wrap(err, MethodAxialBipyramid)
		}

		return nil
	}
}

// ringPoint returns the k-th of n points on the unit circle, snapping the
// quarter turns to exact coordinates.
func ringPoint(k, n int) r3.Vector {
	if (4*k)%n == 0 {
		switch (4 * k) / n {
		case 0:
			return r3.Vector{X: 1}
		case 1:
			return r3.Vector{Y: 1}
		case 2:
			return r3.Vector{X: -1}
		case 3:
			return r3.Vector{Y: -1}
		}
	}
	sin, cos := math.Sincos(2 * math.Pi * float64(k) / float64(n))

	return r3.Vector{X: cos, Y: sin}
}
