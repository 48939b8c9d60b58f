package flip

import (
	"github.com/katalvlaran/bistellar/core"
)

// FiniteCells returns every live cell not incident to the vertex at
// infinity, in storage order.
func FiniteCells(t *core.Triangulation) []core.CellID {
	if t == nil {
		return nil
	}
	all := t.Cells()
	out := make([]core.CellID, 0, len(all))
	for _, c := range all {
		if !t.IsInfiniteCell(c) {
			out = append(out, c)
		}
	}

	return out
}

// FiniteEdges returns one descriptor per distinct finite edge. Each edge is
// expressed through the first finite cell (in storage order) containing it,
// with I < J the slots of its endpoints in that cell.
// Complexity: O(cells).
func FiniteEdges(t *core.Triangulation) []core.Edge {
	if t == nil {
		return nil
	}
	seen := make(map[[2]core.VertexID]struct{})
	var out []core.Edge
	for _, c := range FiniteCells(t) {
		vs, _ := t.CellVertices(c)
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				k := edgeKey(vs[i], vs[j])
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				out = append(out, core.Edge{Cell: c, I: i, J: j})
			}
		}
	}

	return out
}

// FiniteVertices returns every vertex except the vertex at infinity.
func FiniteVertices(t *core.Triangulation) []core.VertexID {
	if t == nil {
		return nil
	}
	ids := t.VertexIDs()

	return ids[1:]
}

func edgeKey(u, w core.VertexID) [2]core.VertexID {
	if u > w {
		u, w = w, u
	}

	return [2]core.VertexID{u, w}
}
