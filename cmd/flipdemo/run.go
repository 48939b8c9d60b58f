package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/bistellar/builder"
	"github.com/katalvlaran/bistellar/core"
	"github.com/katalvlaran/bistellar/flip"
)

var (
	errBadConfig     = errors.New("flipdemo: bad configuration")
	errNoPivotEdge   = errors.New("flipdemo: no edge with four finite incident cells")
	errNotReversible = errors.New("flipdemo: flipping back did not restore the triangulation")
)

func buildFixture(cfg demoConfig) (*core.Triangulation, error) {
	con := builder.CanonicalBipyramid()
	if cfg.Fixture == fixtureAxial {
		con = builder.AxialBipyramid(cfg.Sides)
	}

	return builder.Build(con, builder.WithScale(cfg.Scale))
}

func run(w io.Writer, cfg demoConfig) error {
	tr, err := buildFixture(cfg)
	if err != nil {
		return err
	}
	klog.V(1).Infof("flipdemo: %s fixture: %v", cfg.Fixture, tr.Stats())
	if err = flip.WriteSummary(w, tr); err != nil {
		return err
	}

	e, ok := flip.FindPivotEdge(tr, flip.FiniteEdges(tr))
	if !ok {
		return errNoPivotEdge
	}
	top, bottom, err := flip.OppositePoles(tr, e)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "pivot edge: %s\n", flip.FormatEdge(tr, e))
	fmt.Fprintf(w, "poles: %d %d\n", top, bottom)

	var opts []flip.Option
	if cfg.GlobalCheck {
		opts = append(opts, flip.WithGlobalCheck())
	}
	before := cellSets(tr)
	res, err := flip.Bistellar(tr, e, top, bottom, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "new edge: %s\n", flip.FormatEdge(tr, res.NewPivot))
	if err = flip.WriteSummary(w, tr); err != nil {
		return err
	}
	if !cfg.RoundTrip {
		return nil
	}

	back, err := flip.Bistellar(tr, res.NewPivot, res.PivotFrom[0], res.PivotFrom[1], opts...)
	if err != nil {
		return errors.Wrap(err, "flip back")
	}
	if cellSets(tr) != before {
		return errors.Wrapf(errNotReversible, "restored edge %s", flip.FormatEdge(tr, back.NewPivot))
	}
	fmt.Fprintf(w, "round trip: restored edge %d-%d\n", back.PivotTo[0], back.PivotTo[1])

	return nil
}

// cellSets renders every live cell as its sorted vertex set, one per line,
// in sorted order. Two triangulations over the same vertices agree
// combinatorially exactly when their cellSets are equal.
func cellSets(t *core.Triangulation) string {
	lines := make([]string, 0, t.CellCount())
	for _, c := range t.Cells() {
		vs, _ := t.CellVertices(c)
		sort.Slice(vs[:], func(i, j int) bool { return vs[i] < vs[j] })
		lines = append(lines, fmt.Sprint(vs))
	}
	sort.Strings(lines)

	return strings.Join(lines, "\n")
}
