// Package flip implements the 4-4 bistellar flip on a core.Triangulation,
// together with the combinatorial queries it is built from.
//
// A pivot edge surrounded by exactly four finite cells has a link of four
// vertices. Choosing two opposite link vertices as poles (top, bottom), the
// flip replaces the four cells around the pivot edge (pf1, pf2) with four
// cells around the edge joining the other two link vertices (pt1, pt2):
//
//	before: (pf1, pf2, pole, pt) for each pole and pt
//	after:  (pole, pf, pt1, pt2) for each pole and pf
//
// The outer boundary of the region is preserved, vertices never move, and
// the eight exterior neighbors are re-linked to the new cells.
//
// Queries:
//
//	FiniteCells / FiniteEdges / FiniteVertices      // enumeration
//	IncidentCells / EdgeDegree / VerticesOf         // incidence
//	IncidentCellsOfVertex / FindEdge / Ring / OppositePoles
//	FindPivotEdge / PivotEdges                      // degree-4 witnesses
//
// Flip:
//
//	res, err := flip.Bistellar(t, e, top, bottom)
//	if errors.Is(err, flip.ErrDegreeMismatch) { ... }
//
// Bistellar validates everything it can before touching t, and undoes its
// own mutations when the post-repair check fails, so a failed call leaves t
// combinatorially unchanged.
//
// Concurrency: none. Flips touching overlapping neighborhoods must be
// serialized by the caller, as must readers running during a flip.
package flip
