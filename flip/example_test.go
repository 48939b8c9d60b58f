package flip_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/bistellar/builder"
	"github.com/katalvlaran/bistellar/flip"
)

// ExampleBistellar flips the interior edge of the six-point bipyramid,
// using its apexes (0,0,2) and (0,0,0) as poles.
func ExampleBistellar() {
	tr, err := builder.Build(builder.CanonicalBipyramid())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	e, ok := flip.FindPivotEdge(tr, flip.FiniteEdges(tr))
	if !ok {
		fmt.Println("no pivot edge")
		return
	}

	res, err := flip.Bistellar(tr, e, 6, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("flipped %d-%d to %d-%d\n", res.PivotFrom[0], res.PivotFrom[1], res.PivotTo[0], res.PivotTo[1])
	_ = flip.WriteSummary(os.Stdout, tr)
	// Output:
	// flipped 2-4 to 3-5
	// finite cells: 4
	// finite edges: 13
	// finite vertices: 6
}

// ExampleOppositePoles picks poles for the axis of the regular octahedron.
func ExampleOppositePoles() {
	tr, err := builder.Build(builder.AxialBipyramid(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	e, _ := flip.FindEdge(tr, 1, 2)
	ring, _ := flip.Ring(tr, e)
	top, bottom, _ := flip.OppositePoles(tr, e)
	fmt.Println(len(ring), top != bottom, top == ring[0], bottom == ring[2])
	// Output:
	// 4 true true true
}
