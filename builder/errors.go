// SPDX-License-Identifier: MIT
// Package: bistellar/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with errors.Wrapf(ErrX, "<Method>: ...").
//   • Constructors never panic; option constructors (WithX) do.

package builder

import (
	"github.com/pkg/errors"
)

// ErrTooFewVertices indicates a size parameter below the constructor minimum
// (fewer than 4 points for a soup, fewer than 3 sides for a bipyramid).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrDegenerateCell indicates an input cell whose four points are coplanar,
// or which names the same point twice.
var ErrDegenerateCell = errors.New("builder: degenerate cell")

// ErrNonManifold indicates a facet shared by more than two cells.
var ErrNonManifold = errors.New("builder: non-manifold facet")

// ErrConstructFailed indicates the assembled complex failed its self-check,
// or that a constructor was nil.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an input that refers outside its own data,
// such as a cell naming a point index that does not exist.
var ErrOptionViolation = errors.New("builder: invalid option value")
