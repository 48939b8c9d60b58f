// Package bfs walks the cell-adjacency (dual) graph of a core.Triangulation
// breadth-first, returning visit order, depths and parent links.
//
// What
//
//   - Explore cells in non-decreasing facet distance from a start cell.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → facet steps from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Hooks: OnEnqueue, OnVisit (may abort with an error).
//   - WithFilterNeighbor prunes individual facet steps; the flip package
//     uses it to stay inside the star of a vertex.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in slot order 0..3, so for a given triangulation
//	(and its storage history) the visit sequence is reproducible.
//
// Complexity (C = live cells)
//
//   - Time:   O(C)   (each cell has 4 neighbors)
//   - Memory: O(C)
//
// Usage
//
//	res, err := bfs.BFS(t, start,
//		bfs.WithFilterNeighbor(func(_, next core.CellID, _ int) bool {
//			return !t.IsInfiniteCell(next)
//		}))
package bfs
