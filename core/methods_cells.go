// File: methods_cells.go
// Role: Cell arena lifecycle: create, delete, detach/reattach and slot recycling.
// Determinism:
//   - Freed slots are recycled LIFO; Cells() walks slots in ascending order.
// Concurrency:
//   - None. The caller owns the triangulation exclusively while mutating.

package core

import (
	"github.com/pkg/errors"
)

// CreateCell allocates a cell on the four given vertices, in that order.
// All neighbor slots start as NoCell; the caller wires them afterwards.
// Each vertex's incident cell is updated to the new cell.
//
// Errors: ErrVertexNotFound, ErrDuplicateVertex.
// Complexity: O(1).
func (t *Triangulation) CreateCell(v0, v1, v2, v3 VertexID) (CellID, error) {
	// 1) Validate: known and pairwise distinct vertices.
	vs := [4]VertexID{v0, v1, v2, v3}
	for i, v := range vs {
		if !t.HasVertexID(v) {
			return NoCell, errors.Wrapf(ErrVertexNotFound, "CreateCell: vertex %d", v)
		}
		for j := 0; j < i; j++ {
			if vs[j] == v {
				return NoCell, errors.Wrapf(ErrDuplicateVertex, "CreateCell: vertex %d", v)
			}
		}
	}

	// 2) Take a recycled slot if one is free, else grow the arena.
	var slot int
	if top, ok := t.free.Pop(); ok {
		slot = top.(int)
	} else {
		t.cells = append(t.cells, cellRecord{})
		slot = len(t.cells) - 1
	}
	// 3) Bump the generation so handles to the slot's previous occupant stay stale.
	rec := &t.cells[slot]
	rec.gen++
	rec.state = cellLive
	rec.vertices = vs
	rec.neighbors = [4]CellID{}
	t.live++

	// 4) Every vertex now knows a live incident cell.
	c := makeCellID(slot, rec.gen)
	for _, v := range vs {
		t.vertices[v].cell = c
	}

	return c, nil
}

// DeleteCell releases a live or detached cell. The slot is recycled and every
// outstanding handle to it becomes stale. Neighbors still pointing at the
// cell are not touched; repairing them is the caller's job.
// Complexity: O(1).
func (t *Triangulation) DeleteCell(c CellID) error {
	rec, err := t.record(c, true)
	if err != nil {
		return errors.Wrap(err, "DeleteCell")
	}
	// Detached cells were already taken out of the live count.
	if rec.state == cellLive {
		t.live--
	}
	rec.state = cellFree
	rec.gen++ // invalidate c immediately, even before the slot is reused
	t.free.Push(c.slot())

	return nil
}

// DetachCell removes a cell from the live set without releasing its slot,
// so it can be restored verbatim by ReattachCell or released by DeleteCell.
func (t *Triangulation) DetachCell(c CellID) error {
	rec, err := t.record(c, false)
	if err != nil {
		return errors.Wrap(err, "DetachCell")
	}
	rec.state = cellDetached
	t.live--

	return nil
}

// ReattachCell restores a detached cell with its vertices and neighbors intact.
func (t *Triangulation) ReattachCell(c CellID) error {
	rec, err := t.record(c, true)
	if err != nil {
		return errors.Wrap(err, "ReattachCell")
	}
	if rec.state != cellDetached {
		return errors.Wrapf(ErrCellNotFound, "ReattachCell: %v is not detached", c)
	}
	rec.state = cellLive
	t.live++

	return nil
}

// IsCell reports whether c is a live cell handle.
func (t *Triangulation) IsCell(c CellID) bool {
	_, err := t.record(c, false)

	return err == nil
}

// IsInfiniteCell reports whether c is incident to the vertex at infinity.
func (t *Triangulation) IsInfiniteCell(c CellID) bool {
	return t.HasVertex(c, InfiniteVertex)
}

// Cells returns every live cell in storage (slot) order.
// Complexity: O(slots).
func (t *Triangulation) Cells() []CellID {
	out := make([]CellID, 0, t.live)
	for slot := 1; slot < len(t.cells); slot++ { // slot 0 is reserved
		rec := &t.cells[slot]
		if rec.state == cellLive {
			out = append(out, makeCellID(slot, rec.gen))
		}
	}

	return out
}

// CellCount returns the number of live cells, infinite ones included.
func (t *Triangulation) CellCount() int {
	return t.live
}

// FiniteCellCount returns the number of live cells not incident to infinity.
// Complexity: O(slots).
func (t *Triangulation) FiniteCellCount() int {
	n := 0
	for _, c := range t.Cells() {
		if !t.IsInfiniteCell(c) {
			n++
		}
	}

	return n
}

// CellVertices returns the four vertices of c in slot order.
func (t *Triangulation) CellVertices(c CellID) ([4]VertexID, error) {
	rec, err := t.record(c, false)
	if err != nil {
		return [4]VertexID{}, err
	}

	return rec.vertices, nil
}

// VertexAt returns the vertex in slot i of c, or NoVertex.
func (t *Triangulation) VertexAt(c CellID, i int) VertexID {
	rec, err := t.record(c, false)
	if err != nil || i < 0 || i > 3 {
		return NoVertex
	}

	return rec.vertices[i]
}

// IndexOf returns the slot of v in c.
func (t *Triangulation) IndexOf(c CellID, v VertexID) (int, bool) {
	rec, err := t.record(c, false)
	if err != nil {
		return -1, false
	}
	for i, w := range rec.vertices {
		if w == v {
			return i, true
		}
	}

	return -1, false
}

// HasVertex reports whether live cell c contains v.
func (t *Triangulation) HasVertex(c CellID, v VertexID) bool {
	_, ok := t.IndexOf(c, v)

	return ok
}

// SwapSlots exchanges slots a and b of c: both the vertices and the opposite
// neighbors move together, so adjacency is preserved and orientation flips.
func (t *Triangulation) SwapSlots(c CellID, a, b int) error {
	rec, err := t.record(c, false)
	if err != nil {
		return err
	}
	if a < 0 || a > 3 || b < 0 || b > 3 {
		return errors.Wrapf(ErrBadIndex, "SwapSlots(%d,%d)", a, b)
	}
	rec.vertices[a], rec.vertices[b] = rec.vertices[b], rec.vertices[a]
	rec.neighbors[a], rec.neighbors[b] = rec.neighbors[b], rec.neighbors[a]

	return nil
}

// record resolves a handle. Detached cells resolve only when allowDetached is set.
func (t *Triangulation) record(c CellID, allowDetached bool) (*cellRecord, error) {
	slot := c.slot()
	if c == NoCell || slot <= 0 || slot >= len(t.cells) {
		return nil, errors.Wrapf(ErrCellNotFound, "cell %v", c)
	}
	rec := &t.cells[slot]
	if rec.gen != c.gen() {
		return nil, errors.Wrapf(ErrCellNotFound, "cell %v is stale", c)
	}
	switch rec.state {
	case cellLive:
		return rec, nil
	case cellDetached:
		if allowDetached {
			return rec, nil
		}
	}

	return nil, errors.Wrapf(ErrCellNotFound, "cell %v is not live", c)
}
