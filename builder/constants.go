// Package builder defines shared constants used by the triangulation
// builders, keeping error contexts and size limits in one place.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for the Build orchestrator.
	MethodBuild = "Build"
	// MethodSoup is the canonical name for the Soup constructor.
	MethodSoup = "Soup"
	// MethodCanonicalBipyramid is the canonical name for the CanonicalBipyramid constructor.
	MethodCanonicalBipyramid = "CanonicalBipyramid"
	// MethodAxialBipyramid is the canonical name for the AxialBipyramid constructor.
	MethodAxialBipyramid = "AxialBipyramid"
	// MethodTetrahedron is the canonical name for the Tetrahedron constructor.
	MethodTetrahedron = "Tetrahedron"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinSoupPoints is the smallest point set that can carry a cell.
const MinSoupPoints = 4

// MinBipyramidSides is the smallest ring around a bipyramid axis.
// Fewer than 3 ring points do not enclose the axis.
const MinBipyramidSides = 3

// PivotDegree is the axis degree at which AxialBipyramid yields a 4-4 flip
// configuration: the regular octahedron.
const PivotDegree = 4

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultScale is the uniform scale applied to fixture coordinates.
const DefaultScale = 1.0
