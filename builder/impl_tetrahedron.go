// SPDX-License-Identifier: MIT
// Package: bistellar/builder

package builder

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/katalvlaran/bistellar/core"
)

var unitTetrahedron = []r3.Vector{
	{X: 0, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
}

// Tetrahedron returns the corner tetrahedron of the unit cube: one finite
// cell, four infinite cells, no interior edge.
// Complexity: O(1).
func Tetrahedron() Constructor {
	return func(t *core.Triangulation, cfg builderConfig) error {
		if err := Soup(unitTetrahedron, [][4]int{{0, 1, 2, 3}})(t, cfg); err != nil {
			return errors.Wrap(err, MethodTetrahedron)
		}

		return nil
	}
}
