// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries for diagnostics and tests.
// Policy:
//   - No mutation here; every function is a pure query over the arenas.

package core

import (
	"fmt"
	"strings"
)

// Stats is a snapshot of arena sizes.
type Stats struct {
	Vertices      int // finite vertices
	Cells         int // live cells, infinite included
	FiniteCells   int // live cells not incident to infinity
	InfiniteCells int // live cells incident to infinity
	FreeSlots     int // recycled slots waiting for reuse
}

// Stats produces a snapshot of the current sizes.
// Complexity: O(slots).
func (t *Triangulation) Stats() Stats {
	finite := t.FiniteCellCount()

	return Stats{
		Vertices:      t.VertexCount(),
		Cells:         t.live,
		FiniteCells:   finite,
		InfiniteCells: t.live - finite,
		FreeSlots:     t.free.Size(),
	}
}

// String renders the counts in one line, e.g. "vertices=6 cells=12 (finite=4 infinite=8)".
func (s Stats) String() string {
	return fmt.Sprintf("vertices=%d cells=%d (finite=%d infinite=%d)",
		s.Vertices, s.Cells, s.FiniteCells, s.InfiniteCells)
}

// String lists every live cell with its vertices and neighbors.
func (t *Triangulation) String() string {
	var b strings.Builder
	b.WriteString(t.Stats().String())
	for _, c := range t.Cells() {
		rec := &t.cells[c.slot()]
		fmt.Fprintf(&b, "\n  %v v=%v n=%v", c, rec.vertices, rec.neighbors)
	}

	return b.String()
}
