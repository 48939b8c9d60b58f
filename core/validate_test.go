package core_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bistellar/core"
)

func TestIsCellValid_BrokenSymmetry(t *testing.T) {
	tr, a := closedTetrahedron(t)
	n := tr.Neighbor(a, 2)
	require.NoError(t, tr.SetNeighbor(n, 0, core.NoCell))

	assert.True(t, errors.Is(tr.IsCellValid(a), core.ErrInvalidCell))
	assert.True(t, errors.Is(tr.IsValid(), core.ErrInconsistent))
}

func TestIsValid_MissingVertexLink(t *testing.T) {
	tr, _ := closedTetrahedron(t)
	require.NoError(t, tr.SetVertexCell(2, core.NoCell))

	assert.True(t, errors.Is(tr.IsValid(), core.ErrInconsistent))
}

func TestSetVertexCell_MustContainVertex(t *testing.T) {
	tr, a := closedTetrahedron(t)
	inf := tr.Neighbor(a, 0) // opposite vertex 1

	assert.True(t, errors.Is(tr.SetVertexCell(1, inf), core.ErrInvalidCell))
	assert.NoError(t, tr.SetVertexCell(1, a))
	assert.Equal(t, a, tr.VertexCell(1))
}

func TestReorient(t *testing.T) {
	tr, a := closedTetrahedron(t)
	require.NoError(t, tr.SwapSlots(a, 0, 1))
	assert.False(t, tr.ConsistentFacet(a, 2))
	assert.True(t, errors.Is(tr.IsValid(), core.ErrInconsistent))

	require.NoError(t, tr.Reorient())
	require.NoError(t, tr.IsValid())
	vs, _ := tr.CellVertices(a)
	assert.Equal(t, [4]core.VertexID{2, 1, 3, 4}, vs, "the first cell keeps its orientation")
	requireInfiniteAtSlotZero(t, tr)
}

func requireInfiniteAtSlotZero(t *testing.T, tr *core.Triangulation) {
	t.Helper()
	for _, c := range tr.Cells() {
		if tr.IsInfiniteCell(c) {
			require.Equal(t, core.InfiniteVertex, tr.VertexAt(c, 0), "cell %v", c)
		}
	}
}

func TestReorientFrom(t *testing.T) {
	tr, a := closedTetrahedron(t)
	inf := tr.Neighbor(a, 3)
	require.NoError(t, tr.SwapSlots(a, 0, 1))

	require.NoError(t, tr.ReorientFrom(inf))
	require.NoError(t, tr.IsValid())
	vs, _ := tr.CellVertices(a)
	assert.Equal(t, [4]core.VertexID{2, 1, 4, 3}, vs, "the seed's orientation wins")
	requireInfiniteAtSlotZero(t, tr)

	assert.True(t, errors.Is(tr.ReorientFrom(core.NoCell), core.ErrCellNotFound))
	assert.True(t, errors.Is(tr.SwapSlots(a, 0, 4), core.ErrBadIndex))
}
