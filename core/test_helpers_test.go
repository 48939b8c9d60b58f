package core_test

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bistellar/core"
)

// closedTetrahedron wires one finite cell and its four infinite neighbors by
// hand. It returns the triangulation and the finite cell.
func closedTetrahedron(t *testing.T) (*core.Triangulation, core.CellID) {
	t.Helper()
	tr := core.NewTriangulation()
	for i, p := range []r3.Vector{{}, {X: 1}, {Y: 1}, {Z: 1}} {
		tr.AddVertex(p, i)
	}
	a, err := tr.CreateCell(1, 2, 3, 4)
	require.NoError(t, err)

	cells := []core.CellID{a}
	for i := 0; i < 4; i++ {
		f, err := tr.FacetVertices(a, i)
		require.NoError(t, err)
		inf, err := tr.CreateCell(core.InfiniteVertex, f[0], f[1], f[2])
		require.NoError(t, err)
		cells = append(cells, inf)
	}
	glueAll(t, tr, cells)
	require.NoError(t, tr.IsValid())

	return tr, a
}

// glueAll links every pair of cells sharing three vertices.
func glueAll(t *testing.T, tr *core.Triangulation, cells []core.CellID) {
	t.Helper()
	for _, c := range cells {
		for _, n := range cells {
			if c == n {
				continue
			}
			vc, _ := tr.CellVertices(c)
			shared, slot := 0, -1
			for i, v := range vc {
				if tr.HasVertex(n, v) {
					shared++
				} else {
					slot = i
				}
			}
			if shared == 3 {
				require.NoError(t, tr.SetNeighbor(c, slot, n))
			}
		}
	}
}
