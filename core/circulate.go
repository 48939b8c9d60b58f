// File: circulate.go
// Role: Circulation around edges.
// Determinism:
//   - CellsAroundEdge starts at the edge's own cell and leaves it across the
//     facet opposite the lower of the two remaining slots.
//   - Vertex stars are walked by package bfs, seeded from VertexCell.

package core

import (
	"github.com/pkg/errors"
)

// IsEdgeHandle reports whether e still denotes an edge: its cell is live and
// I, J are distinct slots.
func (t *Triangulation) IsEdgeHandle(e Edge) bool {
	return t.IsCell(e.Cell) && e.I >= 0 && e.I < 4 && e.J >= 0 && e.J < 4 && e.I != e.J
}

// EdgeVertices returns the two endpoints of e.
func (t *Triangulation) EdgeVertices(e Edge) (VertexID, VertexID, error) {
	if !t.IsEdgeHandle(e) {
		return NoVertex, NoVertex, errors.Wrapf(ErrStaleEdge, "edge %v", e)
	}
	rec := &t.cells[e.Cell.slot()]

	return rec.vertices[e.I], rec.vertices[e.J], nil
}

// IsFiniteEdge reports whether neither endpoint of e is the vertex at infinity.
func (t *Triangulation) IsFiniteEdge(e Edge) bool {
	u, w, err := t.EdgeVertices(e)

	return err == nil && u != InfiniteVertex && w != InfiniteVertex
}

// CellsAroundEdge returns every cell containing e, infinite ones included,
// in cyclic adjacency order starting with e.Cell.
//
// The walk remembers where it came from instead of relying on orientation,
// so it also works on a triangulation whose orientation is being repaired.
//
// Errors:
//   - ErrStaleEdge if e is not a valid edge handle.
//   - ErrBrokenCycle if the adjacency does not close back on e.Cell.
//
// Complexity: O(degree(e)).
func (t *Triangulation) CellsAroundEdge(e Edge) ([]CellID, error) {
	u, w, err := t.EdgeVertices(e)
	if err != nil {
		return nil, err
	}

	out := make([]CellID, 0, 8)
	prev, cur := NoCell, e.Cell
	for {
		if len(out) > t.live {
			return nil, errors.Wrapf(ErrBrokenCycle, "edge (%d,%d) does not close", u, w)
		}
		out = append(out, cur)

		rec, err := t.record(cur, false)
		if err != nil {
			return nil, errors.Wrapf(ErrBrokenCycle, "edge (%d,%d): %v", u, w, err)
		}
		k, l := -1, -1
		for i, v := range rec.vertices {
			if v == u || v == w {
				continue
			}
			if k < 0 {
				k = i
			} else {
				l = i
			}
		}
		if l < 0 {
			return nil, errors.Wrapf(ErrBrokenCycle, "cell %v lost edge (%d,%d)", cur, u, w)
		}

		next := rec.neighbors[k]
		if next == prev {
			next = rec.neighbors[l]
		}
		if !t.HasVertex(next, u) || !t.HasVertex(next, w) {
			return nil, errors.Wrapf(ErrBrokenCycle, "neighbor %v of %v lost edge (%d,%d)", next, cur, u, w)
		}
		prev, cur = cur, next
		if cur == e.Cell {
			return out, nil
		}
	}
}
