package flip

import (
	"fmt"
	"io"

	"github.com/katalvlaran/bistellar/core"
)

// FormatEdge renders e as "u-w (x,y,z)-(x,y,z)", or "stale edge" when e no
// longer denotes an edge.
func FormatEdge(t *core.Triangulation, e core.Edge) string {
	if t == nil {
		return "stale edge"
	}
	u, w, err := t.EdgeVertices(e)
	if err != nil {
		return "stale edge"
	}

	return fmt.Sprintf("%d-%d %s-%s", u, w, formatPoint(t, u), formatPoint(t, w))
}

func formatPoint(t *core.Triangulation, v core.VertexID) string {
	if v == core.InfiniteVertex {
		return "(inf)"
	}
	p := t.Point(v)

	return fmt.Sprintf("(%.6g,%.6g,%.6g)", p.X, p.Y, p.Z)
}

// PrintEdge writes FormatEdge(t, e) and a newline to w.
func PrintEdge(w io.Writer, t *core.Triangulation, e core.Edge) error {
	_, err := fmt.Fprintln(w, FormatEdge(t, e))

	return err
}

// WriteSummary writes the finite cell, edge and vertex counts of t to w.
func WriteSummary(w io.Writer, t *core.Triangulation) error {
	_, err := fmt.Fprintf(w, "finite cells: %d\nfinite edges: %d\nfinite vertices: %d\n",
		len(FiniteCells(t)), len(FiniteEdges(t)), len(FiniteVertices(t)))

	return err
}
