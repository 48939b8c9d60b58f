// File: validate.go
// Role: Local and global self-checks, and orientation repair.
// Policy:
//   - Checks are purely combinatorial; geometry is the numeric kernel's concern.
//   - Reorient never changes which cells exist or who their neighbors are.

package core

import (
	"github.com/pkg/errors"
)

// IsCellValid checks a single live cell: four distinct known vertices, four
// live neighbors, and every neighbor pointing back across the same facet
// with the opposite orientation.
// Complexity: O(1).
func (t *Triangulation) IsCellValid(c CellID) error {
	rec, err := t.record(c, false)
	if err != nil {
		return errors.Wrap(ErrInvalidCell, err.Error())
	}
	for i, v := range rec.vertices {
		if !t.HasVertexID(v) {
			return errors.Wrapf(ErrInvalidCell, "%v: vertex %d unknown", c, v)
		}
		for j := 0; j < i; j++ {
			if rec.vertices[j] == v {
				return errors.Wrapf(ErrInvalidCell, "%v: vertex %d repeated", c, v)
			}
		}
	}
	for i := 0; i < 4; i++ {
		n := rec.neighbors[i]
		if !t.IsCell(n) {
			return errors.Wrapf(ErrInvalidCell, "%v: neighbor %d (%v) is not live", c, i, n)
		}
		j, err := t.MirrorIndex(c, i)
		if err != nil {
			return errors.Wrapf(ErrInvalidCell, "%v: neighbor %d: %v", c, i, err)
		}
		a, _ := t.FacetVertices(c, i)
		b, _ := t.FacetVertices(n, j)
		if !sameSet(a, b) {
			return errors.Wrapf(ErrInvalidCell, "%v: facet %d %v differs from %v facet %d %v", c, i, a, n, j, b)
		}
		if !reversedCycle(a, b) {
			return errors.Wrapf(ErrInvalidCell, "%v: facet %d orientation agrees with %v", c, i, n)
		}
	}

	return nil
}

// IsValid runs the global self-check: every live cell is locally valid and
// every vertex used by a cell knows a live incident cell containing it.
// Complexity: O(cells + vertices).
func (t *Triangulation) IsValid() error {
	used := make([]bool, len(t.vertices))
	for _, c := range t.Cells() {
		if err := t.IsCellValid(c); err != nil {
			return errors.Wrap(ErrInconsistent, err.Error())
		}
		vs, _ := t.CellVertices(c)
		for _, v := range vs {
			used[v] = true
		}
	}
	for v, u := range used {
		if !u {
			continue
		}
		if !t.HasVertex(t.VertexCell(VertexID(v)), VertexID(v)) {
			return errors.Wrapf(ErrInconsistent, "vertex %d has no live incident cell", v)
		}
	}

	return nil
}

// Reorient makes orientation consistent across every connected component,
// keeping the orientation of the first live cell of each component.
func (t *Triangulation) Reorient() error {
	return t.reorient(NoCell)
}

// ReorientFrom is Reorient with the component of ref seeded from ref, whose
// orientation is kept as is.
func (t *Triangulation) ReorientFrom(ref CellID) error {
	if !t.IsCell(ref) {
		return errors.Wrapf(ErrCellNotFound, "ReorientFrom: %v", ref)
	}

	return t.reorient(ref)
}

// reorient flips cells breadth-first until every shared facet is seen with
// opposite orientations. A cell is flipped by swapping slots 2 and 3, which
// keeps InfiniteVertex in slot 0 of infinite cells.
func (t *Triangulation) reorient(seed CellID) error {
	seen := make(map[CellID]struct{}, t.live)
	cells := t.Cells()
	if seed != NoCell {
		cells = append([]CellID{seed}, cells...)
	}
	for _, root := range cells {
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		queue := []CellID{root}
		for head := 0; head < len(queue); head++ {
			c := queue[head]
			for i := 0; i < 4; i++ {
				n := t.Neighbor(c, i)
				if !t.IsCell(n) {
					continue
				}
				if _, ok := t.IndexOfNeighbor(n, c); !ok {
					return errors.Wrapf(ErrNotNeighbor, "reorient: %v does not point back at %v", n, c)
				}
				_, visited := seen[n]
				if t.ConsistentFacet(c, i) {
					if !visited {
						seen[n] = struct{}{}
						queue = append(queue, n)
					}
					continue
				}
				if visited {
					return errors.Wrapf(ErrNonOrientable, "reorient: %v and %v disagree", c, n)
				}
				if err := t.SwapSlots(n, 2, 3); err != nil {
					return err
				}
				seen[n] = struct{}{}
				queue = append(queue, n)
			}
		}
	}

	return nil
}
