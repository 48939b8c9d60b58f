package flip_test

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bistellar/builder"
	"github.com/katalvlaran/bistellar/core"
	"github.com/katalvlaran/bistellar/geometry"
)

const s = math.Sqrt2 / 2

// Canonical fixture points; VertexID = index+1.
var canonicalPoints = []r3.Vector{
	{X: 0, Y: 0, Z: 0},
	{X: s, Y: 0, Z: s},
	{X: 0, Y: s, Z: 0},
	{X: -s, Y: 0, Z: s},
	{X: 0, Y: -s, Z: s},
	{X: 0, Y: 0, Z: 2},
}

var canonicalCells = [][4]int{{1, 3, 5, 4}, {1, 3, 4, 0}, {1, 3, 0, 2}, {1, 3, 2, 5}}

// vid maps a fixture point index to its vertex.
func vid(i int) core.VertexID { return core.VertexID(i + 1) }

func canonical(t testing.TB) *core.Triangulation {
	tr, err := builder.Build(builder.CanonicalBipyramid())
	require.NoError(t, err)

	return tr
}

func octahedron(t testing.TB) *core.Triangulation {
	tr, err := builder.Build(builder.AxialBipyramid(4))
	require.NoError(t, err)

	return tr
}

// signature describes t up to handle renaming: every cell as its sorted
// vertex set followed by the vertex sets of its neighbors.
func signature(t *core.Triangulation) []string {
	set := func(c core.CellID) []core.VertexID {
		vs, _ := t.CellVertices(c)
		out := vs[:]
		sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
		return out
	}
	var sig []string
	for _, c := range t.Cells() {
		ns, _ := t.Neighbors(c)
		var nb []string
		for _, n := range ns {
			nb = append(nb, fmt.Sprint(set(n)))
		}
		sort.Strings(nb)
		sig = append(sig, fmt.Sprint(set(c), nb))
	}
	sort.Strings(sig)

	return sig
}

// requireSymmetric checks every neighbor slot is mirrored.
func requireSymmetric(t *testing.T, tr *core.Triangulation) {
	t.Helper()
	for _, c := range tr.Cells() {
		for i := 0; i < 4; i++ {
			n := tr.Neighbor(c, i)
			j, err := tr.MirrorIndex(c, i)
			require.NoError(t, err, "cell %v slot %d", c, i)
			require.Equal(t, c, tr.Neighbor(n, j), "cell %v slot %d", c, i)
		}
	}
}

// requirePositive checks every finite cell is positively oriented.
func requirePositive(t *testing.T, tr *core.Triangulation) {
	t.Helper()
	for _, c := range tr.Cells() {
		if tr.IsInfiniteCell(c) {
			continue
		}
		vs, _ := tr.CellVertices(c)
		assert.Equal(t, geometry.Positive,
			geometry.Orient3D(tr.Point(vs[0]), tr.Point(vs[1]), tr.Point(vs[2]), tr.Point(vs[3])), "cell %v", c)
	}
}
