package flip

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pkg/errors"

	"github.com/katalvlaran/bistellar/bfs"
	"github.com/katalvlaran/bistellar/core"
)

// IncidentCells returns the finite cells around e in circulation order,
// starting from e.Cell when it is finite.
//
// Errors: ErrNilTriangulation, ErrStaleEdgeHandle, core.ErrBrokenCycle.
// Complexity: O(degree(e)).
func IncidentCells(t *core.Triangulation, e core.Edge) ([]core.CellID, error) {
	_, finite, err := circulate(t, e)

	return finite, err
}

// EdgeDegree returns the number of finite cells around e.
func EdgeDegree(t *core.Triangulation, e core.Edge) (int, error) {
	cells, err := IncidentCells(t, e)

	return len(cells), err
}

// circulate returns the full cycle around e and its finite part.
func circulate(t *core.Triangulation, e core.Edge) (all, finite []core.CellID, err error) {
	if t == nil {
		return nil, nil, ErrNilTriangulation
	}
	if !t.IsEdgeHandle(e) {
		return nil, nil, errors.Wrapf(ErrStaleEdgeHandle, "edge %v/%d/%d", e.Cell, e.I, e.J)
	}
	all, err = t.CellsAroundEdge(e)
	if err != nil {
		return nil, nil, err
	}
	finite = make([]core.CellID, 0, len(all))
	for _, c := range all {
		if !t.IsInfiniteCell(c) {
			finite = append(finite, c)
		}
	}

	return all, finite, nil
}

// VerticesOf returns the distinct vertices of cells in order of first
// encounter. Handles that are not live cells are skipped.
//
// The order carries no geometric meaning; callers needing a canonical
// order must sort.
func VerticesOf(t *core.Triangulation, cells []core.CellID) []core.VertexID {
	if t == nil {
		return nil
	}
	set := linkedhashset.New()
	for _, c := range cells {
		vs, err := t.CellVertices(c)
		if err != nil {
			continue
		}
		for _, v := range vs {
			set.Add(v)
		}
	}
	out := make([]core.VertexID, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(core.VertexID))
	}

	return out
}

// star walks the cells containing v, infinite ones included, in BFS order.
func star(t *core.Triangulation, v core.VertexID) ([]core.CellID, error) {
	if t == nil {
		return nil, ErrNilTriangulation
	}
	if !t.HasVertexID(v) {
		return nil, errors.Wrapf(core.ErrVertexNotFound, "vertex %d", v)
	}
	start := t.VertexCell(v)
	if start == core.NoCell {
		return nil, nil
	}
	res, err := bfs.BFS(t, start, bfs.WithFilterNeighbor(func(_, next core.CellID, _ int) bool {
		return t.HasVertex(next, v)
	}))
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// IncidentCellsOfVertex returns the finite cells containing v.
// The vertex at infinity has none.
// Complexity: O(star(v)).
func IncidentCellsOfVertex(t *core.Triangulation, v core.VertexID) ([]core.CellID, error) {
	cells, err := star(t, v)
	if err != nil {
		return nil, err
	}
	out := cells[:0]
	for _, c := range cells {
		if !t.IsInfiniteCell(c) {
			out = append(out, c)
		}
	}

	return out, nil
}

// FindEdge returns a descriptor for the edge between u and w, preferring a
// finite incident cell. ok is false when no cell holds both vertices.
// Complexity: O(star(u)).
func FindEdge(t *core.Triangulation, u, w core.VertexID) (e core.Edge, ok bool) {
	if u == w {
		return core.Edge{}, false
	}
	cells, err := star(t, u)
	if err != nil {
		return core.Edge{}, false
	}
	for _, c := range cells {
		j, has := t.IndexOf(c, w)
		if !has {
			continue
		}
		i, _ := t.IndexOf(c, u)
		if !ok || (t.IsInfiniteCell(e.Cell) && !t.IsInfiniteCell(c)) {
			e, ok = core.Edge{Cell: c, I: i, J: j}, true
		}
	}

	return e, ok
}

// Ring returns the link of e: the vertices opposite e around its full
// circulation, infinite cells included. ring[k] is the vertex shared by the
// k-th and (k+1)-th cells of the circulation.
// Complexity: O(degree(e)).
func Ring(t *core.Triangulation, e core.Edge) ([]core.VertexID, error) {
	all, _, err := circulate(t, e)
	if err != nil {
		return nil, err
	}
	u, w, _ := t.EdgeVertices(e)
	out := make([]core.VertexID, len(all))
	for k, c := range all {
		next := all[(k+1)%len(all)]
		vs, _ := t.CellVertices(c)
		for _, v := range vs {
			if v != u && v != w && t.HasVertex(next, v) {
				out[k] = v
			}
		}
	}

	return out, nil
}

// OppositePoles returns two pole vertices for flipping e: ring[0] and
// ring[2], which are never neighbors in the link.
//
// Errors: ErrDegreeMismatch unless e is surrounded by exactly four finite
// cells, plus the errors of Ring.
func OppositePoles(t *core.Triangulation, e core.Edge) (top, bottom core.VertexID, err error) {
	ring, err := Ring(t, e)
	if err != nil {
		return core.NoVertex, core.NoVertex, err
	}
	if len(ring) != 4 {
		return core.NoVertex, core.NoVertex, errors.Wrapf(ErrDegreeMismatch, "ring has %d vertices", len(ring))
	}
	for _, v := range ring {
		if v == core.InfiniteVertex {
			return core.NoVertex, core.NoVertex, errors.Wrap(ErrDegreeMismatch, "edge is on the hull")
		}
	}

	return ring[0], ring[2], nil
}
