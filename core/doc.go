// Package core provides the combinatorial triangulation structure that the
// flip engine operates on: an arena of tetrahedral cells over an arena of
// vertices, closed by a vertex at infinity.
//
// The complex T = (V, C) obeys these invariants:
//
//   - Every cell holds 4 distinct vertices and 4 neighbor slots; slot i names
//     the unique cell across the facet opposite vertex i.
//   - Neighbor relations are symmetric (the "mirror" relation).
//   - Every boundary facet of the finite cells is closed by an infinite cell
//     (∞, x, y, z), so every facet has exactly two cells.
//   - Orientation is consistent: adjacent cells see their shared facet with
//     opposite cyclic order (see FacetVertices).
//
// Handles:
//
//	VertexID  dense index; 0 is InfiniteVertex. Vertices are never destroyed.
//	CellID    slot + generation. Deleting a cell bumps the generation, so stale
//	          handles are rejected rather than aliased to a recycled slot.
//	Edge      (cell, i, j) transient descriptor; checked by IsEdgeHandle.
//
// Core Methods:
//
//	// Vertex arena
//	AddVertex(p, info) VertexID              // O(1)
//	Vertex(v) / Point(v) / FindVertex(p)     // O(1) / O(1) / O(V)
//
//	// Cell arena
//	CreateCell(v0,v1,v2,v3) (CellID, error)  // O(1)
//	DeleteCell(c) / DetachCell(c) / ReattachCell(c)
//	Cells() []CellID                         // O(slots), storage order
//
//	// Adjacency
//	Neighbor / SetNeighbor / SetNeighbors / IndexOfNeighbor
//	MirrorIndex / MirrorVertex / OppositeSlot / FacetVertices
//
//	// Queries
//	CellsAroundEdge(e)   // circulation, O(degree)
//	VertexCell(v)        // seed for vertex stars walked by package bfs
//
//	// Self-checks
//	IsCellValid(c) / IsValid() / Reorient() / ReorientFrom(c)
//
// Concurrency: a Triangulation has no internal locking. Mutations must be
// serialized by the caller; readers must not overlap with a mutation.
package core
