// Package geometry is the numeric kernel behind the triangulation builders:
// an orientation predicate whose sign is always exact.
//
// Orient3D first evaluates the determinant in float64 and accepts the result
// when it clears a static error bound; only inconclusive cases pay for
// multiple-precision arithmetic through r3.PreciseVector.
//
// The combinatorial flip itself never calls into this package. It is used to
// orient input cells, to reject degenerate ones, and by tests that check a
// geometrically valid flip keeps every cell positively oriented.
package geometry
