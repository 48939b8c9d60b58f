package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/bistellar/bfs"
	"github.com/katalvlaran/bistellar/builder"
	"github.com/katalvlaran/bistellar/core"
)

// ExampleBFS walks the four finite cells around the axis of the octahedron.
func ExampleBFS() {
	tr, err := builder.Build(builder.AxialBipyramid(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(tr, tr.Cells()[0], bfs.WithFilterNeighbor(func(_, next core.CellID, _ int) bool {
		return !tr.IsInfiniteCell(next)
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range res.Order {
		fmt.Println(c, res.Depth[c])
	}
	// Output:
	// c1.1 0
	// c2.1 1
	// c4.1 1
	// c3.1 2
}
