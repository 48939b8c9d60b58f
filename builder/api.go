// SPDX-License-Identifier: MIT
// Package: bistellar/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(con, opts...). Creates t, resolves cfg, runs con.
//   - Factories are declared here and implemented in impl_*.go.
//   - Determinism: same inputs and options ⇒ identical handles and cells.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/bistellar/core"
)

// Constructor populates an empty triangulation using the resolved
// builderConfig. Constructors validate parameters before touching t and
// return sentinel errors; they never panic.
type Constructor func(t *core.Triangulation, cfg builderConfig) error

// Build creates a new core.Triangulation, resolves the builder
// configuration from opts, and applies con. A failed build returns no
// triangulation; partial results are discarded.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Whatever the constructor returns, wrapped with "Build".
//
// Complexity: the constructor's cost plus O(len(opts)).
func Build(con Constructor, opts ...BuilderOption) (*core.Triangulation, error) {
	if con == nil {
		return nil, errors.Wrapf(ErrConstructFailed, "%s: nil constructor", MethodBuild)
	}
	cfg := newBuilderConfig(opts...)
	t := core.NewTriangulation()
	if err := con(t, cfg); err != nil {
		return nil, errors.Wrap(err, MethodBuild)
	}
	klog.V(2).Infof("builder: %v", t.Stats())

	return t, nil
}

// =============================================================================
// Fixture factories (declarations) - implemented in impl_*.go
// =============================================================================

// Soup assembles the tetrahedra tets over points and closes the hull.
// Complexity: O(P + T) with hashing of facet keys.
//func Soup(points []r3.Vector, tets [][4]int) Constructor

// CanonicalBipyramid builds four cells around one interior edge of six points.
// Complexity: O(1).
//func CanonicalBipyramid() Constructor

// AxialBipyramid builds n cells around the axis of an n-gon bipyramid (n ≥ 3).
// Complexity: O(n).
//func AxialBipyramid(n int) Constructor

// Tetrahedron builds a single finite cell.
// Complexity: O(1).
//func Tetrahedron() Constructor
