// File: methods_vertices.go
// Role: Vertex arena: insertion of points, lookups and vertex→cell bookkeeping.
// Policy:
//   - Vertices are never destroyed; the core only ever adds them.
//   - VertexID 0 is the vertex at infinity and carries no point.

package core

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// AddVertex appends a vertex embedding p and returns its identity.
// No cell is created; the vertex stays isolated until a cell references it.
// Complexity: O(1) amortized.
func (t *Triangulation) AddVertex(p r3.Vector, info int) VertexID {
	t.vertices = append(t.vertices, vertexRecord{point: p, info: info})

	return VertexID(len(t.vertices) - 1)
}

// HasVertexID reports whether v names a vertex of the arena (including infinity).
func (t *Triangulation) HasVertexID(v VertexID) bool {
	return v >= 0 && int(v) < len(t.vertices)
}

// IsInfiniteVertex reports whether v is the vertex at infinity.
func (t *Triangulation) IsInfiniteVertex(v VertexID) bool {
	return v == InfiniteVertex
}

// Vertex returns a snapshot of the vertex record.
func (t *Triangulation) Vertex(v VertexID) (Vertex, error) {
	if !t.HasVertexID(v) {
		return Vertex{}, errors.Wrapf(ErrVertexNotFound, "vertex %d", v)
	}
	rec := t.vertices[v]

	return Vertex{ID: v, Point: rec.point, Info: rec.info, Cell: rec.cell}, nil
}

// Point returns the position of v; the zero vector for unknown or infinite vertices.
func (t *Triangulation) Point(v VertexID) r3.Vector {
	if !t.HasVertexID(v) {
		return r3.Vector{}
	}

	return t.vertices[v].point
}

// VertexCell returns one live cell incident to v, or NoCell.
func (t *Triangulation) VertexCell(v VertexID) CellID {
	if !t.HasVertexID(v) {
		return NoCell
	}
	c := t.vertices[v].cell
	if !t.IsCell(c) {
		return NoCell
	}

	return c
}

// SetVertexCell records c as the incident cell of v.
func (t *Triangulation) SetVertexCell(v VertexID, c CellID) error {
	if !t.HasVertexID(v) {
		return errors.Wrapf(ErrVertexNotFound, "vertex %d", v)
	}
	if c != NoCell && !t.HasVertex(c, v) {
		return errors.Wrapf(ErrInvalidCell, "cell %v does not contain vertex %d", c, v)
	}
	t.vertices[v].cell = c

	return nil
}

// FindVertex returns the finite vertex located exactly at p.
// This is how callers recover handles for points they inserted earlier.
// Complexity: O(V).
func (t *Triangulation) FindVertex(p r3.Vector) (VertexID, bool) {
	for i := 1; i < len(t.vertices); i++ {
		if t.vertices[i].point == p {
			return VertexID(i), true
		}
	}

	return NoVertex, false
}

// VertexIDs returns every vertex identity, the vertex at infinity first.
func (t *Triangulation) VertexIDs() []VertexID {
	out := make([]VertexID, len(t.vertices))
	for i := range t.vertices {
		out[i] = VertexID(i)
	}

	return out
}

// VertexCount returns the number of finite vertices.
func (t *Triangulation) VertexCount() int {
	return len(t.vertices) - 1
}
