// File: methods_adjacent.go
// Role: Neighbor slots, mirror relations and oriented facets.
// Invariants:
//   - Neighbor i of cell c is the cell sharing the facet opposite vertex i.
//   - Adjacency is symmetric: if Neighbor(c,i)==n then n holds c at MirrorIndex(c,i).
//   - Facet triples follow one fixed table, so two consistently oriented
//     neighbors see their shared facet with opposite cyclic order.

package core

import (
	"github.com/pkg/errors"
)

// facetTriple lists, for each opposite index, the facet's vertex slots in
// oriented order.
var facetTriple = [4][3]int{
	{1, 3, 2},
	{0, 2, 3},
	{0, 3, 1},
	{0, 1, 2},
}

// Neighbor returns the cell across the facet opposite slot i, or NoCell.
func (t *Triangulation) Neighbor(c CellID, i int) CellID {
	rec, err := t.record(c, false)
	if err != nil || i < 0 || i > 3 {
		return NoCell
	}

	return rec.neighbors[i]
}

// Neighbors returns all four neighbor slots of c.
func (t *Triangulation) Neighbors(c CellID) ([4]CellID, error) {
	rec, err := t.record(c, false)
	if err != nil {
		return [4]CellID{}, err
	}

	return rec.neighbors, nil
}

// SetNeighbor points slot i of c at n. Only c is modified; keeping the
// relation symmetric is the caller's responsibility.
func (t *Triangulation) SetNeighbor(c CellID, i int, n CellID) error {
	rec, err := t.record(c, false)
	if err != nil {
		return errors.Wrap(err, "SetNeighbor")
	}
	if i < 0 || i > 3 {
		return errors.Wrapf(ErrBadIndex, "SetNeighbor: slot %d", i)
	}
	rec.neighbors[i] = n

	return nil
}

// SetNeighbors assigns all four neighbor slots of c at once.
func (t *Triangulation) SetNeighbors(c CellID, ns [4]CellID) error {
	rec, err := t.record(c, false)
	if err != nil {
		return errors.Wrap(err, "SetNeighbors")
	}
	rec.neighbors = ns

	return nil
}

// IndexOfNeighbor returns the slot of c that points at n.
func (t *Triangulation) IndexOfNeighbor(c, n CellID) (int, bool) {
	rec, err := t.record(c, false)
	if err != nil {
		return -1, false
	}
	for i, m := range rec.neighbors {
		if m == n {
			return i, true
		}
	}

	return -1, false
}

// MirrorIndex returns the slot j of n = Neighbor(c,i) such that Neighbor(n,j) == c.
func (t *Triangulation) MirrorIndex(c CellID, i int) (int, error) {
	if i < 0 || i > 3 {
		return -1, errors.Wrapf(ErrBadIndex, "MirrorIndex: slot %d", i)
	}
	n := t.Neighbor(c, i)
	if !t.IsCell(n) {
		return -1, errors.Wrapf(ErrCellNotFound, "MirrorIndex: neighbor %d of %v", i, c)
	}
	j, ok := t.IndexOfNeighbor(n, c)
	if !ok {
		return -1, errors.Wrapf(ErrNotNeighbor, "MirrorIndex: %v does not point back at %v", n, c)
	}

	return j, nil
}

// MirrorVertex returns the vertex of Neighbor(c,i) that is not on the shared facet.
func (t *Triangulation) MirrorVertex(c CellID, i int) (VertexID, error) {
	j, err := t.MirrorIndex(c, i)
	if err != nil {
		return NoVertex, err
	}

	return t.VertexAt(t.Neighbor(c, i), j), nil
}

// OppositeSlot returns the slot of n holding the vertex that is not one of
// the three facet vertices. This is how a neighbor's mirror slot is found
// from vertices alone, before any neighbor pointer has been written.
func (t *Triangulation) OppositeSlot(n CellID, facet [3]VertexID) (int, error) {
	vs, err := t.CellVertices(n)
	if err != nil {
		return -1, err
	}
	slot := -1
	for i, v := range vs {
		if v != facet[0] && v != facet[1] && v != facet[2] {
			if slot >= 0 {
				return -1, errors.Wrapf(ErrNotNeighbor, "OppositeSlot: %v does not contain facet %v", n, facet)
			}
			slot = i
		}
	}
	if slot < 0 {
		return -1, errors.Wrapf(ErrNotNeighbor, "OppositeSlot: facet %v has a repeated vertex", facet)
	}

	return slot, nil
}

// FacetVertices returns the vertices of the facet opposite slot i, in
// oriented order.
func (t *Triangulation) FacetVertices(c CellID, i int) ([3]VertexID, error) {
	rec, err := t.record(c, false)
	if err != nil {
		return [3]VertexID{}, err
	}
	if i < 0 || i > 3 {
		return [3]VertexID{}, errors.Wrapf(ErrBadIndex, "FacetVertices: slot %d", i)
	}
	tr := facetTriple[i]

	return [3]VertexID{rec.vertices[tr[0]], rec.vertices[tr[1]], rec.vertices[tr[2]]}, nil
}

// ConsistentFacet reports whether c and Neighbor(c,i) induce opposite
// orientations on their shared facet.
func (t *Triangulation) ConsistentFacet(c CellID, i int) bool {
	j, err := t.MirrorIndex(c, i)
	if err != nil {
		return false
	}
	a, err := t.FacetVertices(c, i)
	if err != nil {
		return false
	}
	b, err := t.FacetVertices(t.Neighbor(c, i), j)
	if err != nil {
		return false
	}

	return reversedCycle(a, b)
}

// reversedCycle reports whether b is a rotation of a read backwards.
func reversedCycle(a, b [3]VertexID) bool {
	r := [3]VertexID{a[0], a[2], a[1]}
	for k := 0; k < 3; k++ {
		if b[0] == r[k] && b[1] == r[(k+1)%3] && b[2] == r[(k+2)%3] {
			return true
		}
	}

	return false
}

// sameSet reports whether two facet triples hold the same vertices.
func sameSet(a, b [3]VertexID) bool {
	for _, v := range a {
		if v != b[0] && v != b[1] && v != b[2] {
			return false
		}
	}

	return true
}
