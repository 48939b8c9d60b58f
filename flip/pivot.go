package flip

import (
	"github.com/katalvlaran/bistellar/core"
)

// FindPivotEdge returns the first edge of edges with exactly four finite
// incident cells. Stale descriptors are skipped. It is an existence witness
// only: choosing which edge to flip, and which poles to use, is the
// caller's policy.
// Complexity: O(Σ degree) over the scanned prefix.
func FindPivotEdge(t *core.Triangulation, edges []core.Edge) (core.Edge, bool) {
	for _, e := range edges {
		if d, err := EdgeDegree(t, e); err == nil && d == 4 {
			return e, true
		}
	}

	return core.Edge{}, false
}

// PivotEdges returns every edge of edges with exactly four finite incident
// cells, in input order.
func PivotEdges(t *core.Triangulation, edges []core.Edge) []core.Edge {
	var out []core.Edge
	for _, e := range edges {
		if d, err := EdgeDegree(t, e); err == nil && d == 4 {
			out = append(out, e)
		}
	}

	return out
}
