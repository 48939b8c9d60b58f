package builder_test

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bistellar/builder"
	"github.com/katalvlaran/bistellar/core"
	"github.com/katalvlaran/bistellar/geometry"
)

// finiteEdgeCount counts distinct vertex pairs over the finite cells.
func finiteEdgeCount(t *core.Triangulation) int {
	seen := make(map[[2]core.VertexID]struct{})
	for _, c := range t.Cells() {
		if t.IsInfiniteCell(c) {
			continue
		}
		vs, _ := t.CellVertices(c)
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				a, b := vs[i], vs[j]
				if a > b {
					a, b = b, a
				}
				seen[[2]core.VertexID{a, b}] = struct{}{}
			}
		}
	}

	return len(seen)
}

// requirePositive asserts every finite cell is positively oriented.
func requirePositive(t *testing.T, tr *core.Triangulation) {
	t.Helper()
	for _, c := range tr.Cells() {
		if tr.IsInfiniteCell(c) {
			continue
		}
		vs, err := tr.CellVertices(c)
		require.NoError(t, err)
		assert.Equal(t, geometry.Positive,
			geometry.Orient3D(tr.Point(vs[0]), tr.Point(vs[1]), tr.Point(vs[2]), tr.Point(vs[3])), "cell %v", c)
	}
}

func TestCanonicalBipyramid_Counts(t *testing.T) {
	tr, err := builder.Build(builder.CanonicalBipyramid())
	require.NoError(t, err)
	require.NoError(t, tr.IsValid())

	assert.Equal(t, 6, tr.VertexCount())
	assert.Equal(t, 4, tr.FiniteCellCount())
	assert.Equal(t, 8, tr.CellCount()-tr.FiniteCellCount())
	assert.Equal(t, 13, finiteEdgeCount(tr))
	requirePositive(t, tr)
}

func TestCanonicalBipyramid_VertexOrder(t *testing.T) {
	tr, err := builder.Build(builder.CanonicalBipyramid())
	require.NoError(t, err)

	v, ok := tr.FindVertex(r3.Vector{Z: 2})
	require.True(t, ok)
	assert.Equal(t, core.VertexID(6), v, "point i becomes VertexID i+1")
	vx, err := tr.Vertex(v)
	require.NoError(t, err)
	assert.Equal(t, 5, vx.Info)
}

func TestAxialBipyramid_Sizes(t *testing.T) {
	for _, n := range []int{3, 4, 5, 8} {
		tr, err := builder.Build(builder.AxialBipyramid(n))
		require.NoError(t, err, "n=%d", n)
		require.NoError(t, tr.IsValid(), "n=%d", n)

		assert.Equal(t, n+2, tr.VertexCount(), "n=%d", n)
		assert.Equal(t, n, tr.FiniteCellCount(), "n=%d", n)
		assert.Equal(t, 3*n, tr.CellCount(), "n=%d", n)
		requirePositive(t, tr)
	}
}

func TestAxialBipyramid_TooFewSides(t *testing.T) {
	tr, err := builder.Build(builder.AxialBipyramid(2))
	assert.Nil(t, tr)
	assert.True(t, errors.Is(err, builder.ErrTooFewVertices))
}

func TestTetrahedron(t *testing.T) {
	tr, err := builder.Build(builder.Tetrahedron())
	require.NoError(t, err)
	require.NoError(t, tr.IsValid())

	assert.Equal(t, 1, tr.FiniteCellCount())
	assert.Equal(t, 5, tr.CellCount())
	assert.Equal(t, 6, finiteEdgeCount(tr))
}

func TestOptions_ScaleAndOrigin(t *testing.T) {
	origin := r3.Vector{X: 10, Y: -3, Z: 1}
	tr, err := builder.Build(builder.Tetrahedron(),
		builder.WithScale(2), builder.WithOrigin(origin), builder.WithInfo(func(i int) int { return 100 + i }))
	require.NoError(t, err)

	v, ok := tr.FindVertex(r3.Vector{X: 12, Y: -3, Z: 1})
	require.True(t, ok)
	vx, err := tr.Vertex(v)
	require.NoError(t, err)
	assert.Equal(t, 101, vx.Info)
	requirePositive(t, tr)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithScale(0) })
	assert.Panics(t, func() { builder.WithScale(-1) })
	assert.Panics(t, func() { builder.WithInfo(nil) })
}

func TestBuild_NilConstructor(t *testing.T) {
	_, err := builder.Build(nil)
	assert.True(t, errors.Is(err, builder.ErrConstructFailed))
}

func TestSoup_Errors(t *testing.T) {
	unit := []r3.Vector{{}, {X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: 1}}

	cases := []struct {
		name   string
		points []r3.Vector
		tets   [][4]int
		want   error
	}{
		{"too few points", unit[:3], [][4]int{{0, 1, 2, 0}}, builder.ErrTooFewVertices},
		{"no cells", unit, nil, builder.ErrTooFewVertices},
		{"index out of range", unit, [][4]int{{0, 1, 2, 9}}, builder.ErrOptionViolation},
		{"repeated index", unit, [][4]int{{0, 1, 1, 3}}, builder.ErrDegenerateCell},
		{"flat cell", unit, [][4]int{{0, 1, 2, 4}}, builder.ErrDegenerateCell},
		{"three cells on one facet", []r3.Vector{{}, {X: 1}, {Y: 1}, {Z: 1}, {Z: -1}, {X: 1, Y: 1, Z: 1}},
			[][4]int{{0, 1, 2, 3}, {0, 1, 2, 4}, {0, 1, 2, 5}}, builder.ErrNonManifold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := builder.Build(builder.Soup(tc.points, tc.tets))
			assert.Nil(t, tr)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestSoup_NegativeInputIsReoriented(t *testing.T) {
	points := []r3.Vector{{}, {X: 1}, {Y: 1}, {Z: 1}}
	tr, err := builder.Build(builder.Soup(points, [][4]int{{1, 0, 2, 3}}))
	require.NoError(t, err)
	requirePositive(t, tr)
}
