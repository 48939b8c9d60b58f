// File: methods_clone.go
// Role: Deep copies of a triangulation.
// Determinism:
//   - Clone preserves every handle: slots, generations and the free list, so a
//     CellID or Edge taken on the source is valid on the clone.

package core

import "github.com/emirpasic/gods/stacks/arraystack"

// Clone returns an independent deep copy of t.
// Complexity: O(V + slots).
func (t *Triangulation) Clone() *Triangulation {
	out := &Triangulation{
		vertices: make([]vertexRecord, len(t.vertices)),
		cells:    make([]cellRecord, len(t.cells)),
		free:     arraystack.New(),
		live:     t.live,
	}
	copy(out.vertices, t.vertices)
	copy(out.cells, t.cells)

	// arraystack.Values is top-first; push bottom-first to keep pop order.
	vals := t.free.Values()
	for i := len(vals) - 1; i >= 0; i-- {
		out.free.Push(vals[i])
	}

	return out
}

// Restore overwrites t with snap, a copy previously taken by t.Clone().
// Handles issued before the snapshot become valid again; handles issued
// after it may turn stale.
// Complexity: O(V + slots).
func (t *Triangulation) Restore(snap *Triangulation) {
	c := snap.Clone()
	t.vertices, t.cells, t.free, t.live = c.vertices, c.cells, c.free, c.live
}
