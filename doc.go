// Package bistellar performs 4-4 bistellar flips on three-dimensional
// Delaunay triangulations: an interior edge shared by exactly four finite
// tetrahedra is replaced by the other diagonal of its link, and the four
// cells around it are rebuilt around the new edge.
//
// 🚀 What is in the box?
//
//	• Core structure: an arena of tetrahedral cells closed by a vertex at
//	  infinity, with generation-checked handles and self-checks
//	• Geometry: exact orientation predicates on golang/geo r3 vectors
//	• Builders: a point/cell soup loader and ready-made bipyramid fixtures
//	• Traversal: breadth-first walks over cell adjacency with hooks
//	• Flip engine: edge and cell enumeration, pivot discovery, pole
//	  selection and the transactional 4-4 flip itself
//
// ✨ Guarantees
//
//   - A failed flip leaves the triangulation combinatorially unchanged
//   - Enumeration order is deterministic for a given triangulation
//   - Every error wraps a package sentinel; branch with errors.Is
//
// Packages:
//
//	core/         Triangulation, CellID, Edge; circulation and validity checks
//	geometry/     Orient3D, SignedVolume, Coplanar
//	builder/      Build, Soup, CanonicalBipyramid, AxialBipyramid, Tetrahedron
//	bfs/          BFS over cells with depth limits, filters and hooks
//	flip/         FiniteEdges, FindPivotEdge, OppositePoles, Bistellar
//	cmd/flipdemo  command-line driver
//
// Quick start:
//
//	tr, _ := builder.Build(builder.CanonicalBipyramid())
//	e, ok := flip.FindPivotEdge(tr, flip.FiniteEdges(tr))
//	if ok {
//		top, bottom, _ := flip.OppositePoles(tr, e)
//		res, err := flip.Bistellar(tr, e, top, bottom)
//		...
//	}
//
// A Triangulation has no internal locking: run one flip at a time.
package bistellar
