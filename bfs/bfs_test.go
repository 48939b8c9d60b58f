package bfs_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bistellar/bfs"
	"github.com/katalvlaran/bistellar/builder"
	"github.com/katalvlaran/bistellar/core"
)

func octahedron(t testing.TB) *core.Triangulation {
	tr, err := builder.Build(builder.AxialBipyramid(4))
	require.NoError(t, err)

	return tr
}

func finiteOnly(tr *core.Triangulation) bfs.Option {
	return bfs.WithFilterNeighbor(func(_, next core.CellID, _ int) bool {
		return !tr.IsInfiniteCell(next)
	})
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, core.NoCell)
	assert.True(t, errors.Is(err, bfs.ErrGraphNil))

	tr := octahedron(t)
	_, err = bfs.BFS(tr, core.NoCell)
	assert.True(t, errors.Is(err, bfs.ErrStartCellNotFound))

	_, err = bfs.BFS(tr, tr.Cells()[0], bfs.WithMaxDepth(-1))
	assert.True(t, errors.Is(err, bfs.ErrOptionViolation))
}

// TestBFS_VisitsEveryCell checks the dual graph of a closed triangulation is connected.
func TestBFS_VisitsEveryCell(t *testing.T) {
	tr := octahedron(t)
	res, err := bfs.BFS(tr, tr.Cells()[0])
	require.NoError(t, err)

	assert.Len(t, res.Order, tr.CellCount())
	assert.ElementsMatch(t, tr.Cells(), res.Order)
}

// TestBFS_FiniteRing walks the four finite cells around the axis.
func TestBFS_FiniteRing(t *testing.T) {
	tr := octahedron(t)
	cells := tr.Cells()
	res, err := bfs.BFS(tr, cells[0], finiteOnly(tr))
	require.NoError(t, err)

	assert.Equal(t, []core.CellID{cells[0], cells[1], cells[3], cells[2]}, res.Order)
	assert.Equal(t, 0, res.Depth[cells[0]])
	assert.Equal(t, 1, res.Depth[cells[1]])
	assert.Equal(t, 1, res.Depth[cells[3]])
	assert.Equal(t, 2, res.Depth[cells[2]])

	path, err := res.PathTo(cells[2])
	require.NoError(t, err)
	assert.Equal(t, []core.CellID{cells[0], cells[1], cells[2]}, path)

	_, err = res.PathTo(cells[4])
	assert.Error(t, err, "infinite cells were filtered out")
}

func TestBFS_MaxDepth(t *testing.T) {
	tr := octahedron(t)
	res, err := bfs.BFS(tr, tr.Cells()[0], finiteOnly(tr), bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
}

func TestBFS_Hooks(t *testing.T) {
	tr := octahedron(t)
	var enq []core.CellID
	stop := errors.New("stop")
	res, err := bfs.BFS(tr, tr.Cells()[0],
		bfs.WithOnEnqueue(func(c core.CellID, _ int) { enq = append(enq, c) }),
		bfs.WithOnVisit(func(_ core.CellID, depth int) error {
			if depth == 1 {
				return stop
			}
			return nil
		}))
	assert.True(t, errors.Is(err, stop))
	assert.Len(t, res.Order, 2, "aborted on the first depth-1 visit")
	assert.Len(t, enq, 5, "start plus its four neighbors")
}

func TestBFS_Cancelled(t *testing.T) {
	tr := octahedron(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(tr, tr.Cells()[0], bfs.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}
