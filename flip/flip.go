// File: flip.go
// Role: The 4-4 bistellar flip.
// Policy:
//   - Every check that can run before mutation does. Validating and
//     Classifying never modify the triangulation.
//   - Mutation is transactional: old cells are detached rather than freed
//     until the rewired cells pass their self-check, so any failure can be
//     rolled back.

package flip

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/bistellar/core"
)

// Option configures a single flip.
type Option func(*config)

type config struct {
	globalCheck bool
	reorient    bool
}

// WithGlobalCheck runs core's global IsValid after repair instead of the
// local check of the twelve touched cells. O(cells) per flip.
func WithGlobalCheck() Option {
	return func(c *config) { c.globalCheck = true }
}

// WithoutReorient disables the orientation repair attempted when the
// post-repair check fails; the flip is rolled back immediately instead.
func WithoutReorient() Option {
	return func(c *config) { c.reorient = false }
}

// Result describes a successful flip.
type Result struct {
	// Triangulation is the mutated input, returned for convenience.
	Triangulation *core.Triangulation

	// PivotFrom are the endpoints of the removed edge, PivotTo those of the
	// new one, in ascending VertexID order.
	PivotFrom [2]core.VertexID
	PivotTo   [2]core.VertexID

	Top, Bottom core.VertexID

	// Removed are the handles of the four old cells; they are stale now.
	Removed [4]core.CellID

	// Created are the four new cells: (top,pf1) (top,pf2) (bottom,pf1) (bottom,pf2).
	Created [4]core.CellID

	// NewPivot is a descriptor for the new edge, valid until the next mutation.
	NewPivot core.Edge
}

// plan is everything the mutation needs, gathered before it starts.
//
// Indexing: p selects a pole, m a new pivot vertex pt_m, k an old pivot
// vertex pf_k. The old cell before[p][m] is (pole_p, pf_0, pf_1, pt_m). Its
// facet opposite pf_{1-k} is (pole_p, pt_m, pf_k), and ext[p][m][k] is the
// cell across it. After the flip that facet belongs to the new cell
// (pole_p, pf_k, pt_0, pt_1), opposite its pt_{1-m}.
type plan struct {
	pf     [2]core.VertexID     // endpoints of the old edge, ascending
	pt     [2]core.VertexID     // endpoints of the new edge, ascending
	pole   [2]core.VertexID     // top, bottom
	before [2][2]core.CellID    // [pole][pt]
	ext    [2][2][2]core.CellID // [pole][pt][pf]: across facet (pole, pt, pf)
	links  map[core.VertexID]core.CellID
}

// Bistellar replaces the four cells around e by four cells around the edge
// joining the two remaining link vertices. top and bottom must be opposite
// vertices of the link of e (see OppositePoles).
//
// The new cells are (pole, pf_k, pt1, pt2) for each pole and each endpoint
// pf_k of e, where pt1 < pt2 are the link vertices other than the poles.
// The labels pt1 and pt2 are interchangeable; the ascending order only
// makes results reproducible.
//
// On failure the result is nil and the triangulation is combinatorially
// unchanged. Errors wrap one of the package sentinels; branch with errors.Is.
//
// Complexity: O(1) for the flip itself, O(star) for the existence check of
// the new edge, O(cells) with WithGlobalCheck or when orientation repair runs.
func Bistellar(t *core.Triangulation, e core.Edge, top, bottom core.VertexID, opts ...Option) (*Result, error) {
	cfg := config{reorient: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	p, err := prepare(t, e, top, bottom)
	if err != nil {
		klog.V(2).Infof("flip: %v", err)
		return nil, err
	}

	x := &txn{t: t}
	n, err := p.apply(x, cfg)
	if err != nil {
		x.rollback(p.links)
		klog.V(1).Infof("flip: rolled back: %v", err)
		return nil, err
	}

	res := &Result{
		Triangulation: t,
		PivotFrom:     p.pf,
		PivotTo:       p.pt,
		Top:           top,
		Bottom:        bottom,
		Removed:       [4]core.CellID{p.before[0][0], p.before[0][1], p.before[1][0], p.before[1][1]},
		Created:       [4]core.CellID{n[0][0], n[0][1], n[1][0], n[1][1]},
	}
	for _, c := range res.Removed {
		if err = t.DeleteCell(c); err != nil {
			return nil, errors.Wrapf(ErrRepairFailed, "release %v: %v", c, err)
		}
	}
	i, _ := t.IndexOf(n[0][0], p.pt[0])
	j, _ := t.IndexOf(n[0][0], p.pt[1])
	res.NewPivot = core.Edge{Cell: n[0][0], I: i, J: j}
	klog.V(2).Infof("flip: (%d,%d) -> (%d,%d); %v", p.pf[0], p.pf[1], p.pt[0], p.pt[1], t.Stats())

	return res, nil
}

// prepare runs the Validating and Classifying stages.
func prepare(t *core.Triangulation, e core.Edge, top, bottom core.VertexID) (*plan, error) {
	// 1) Circulate the edge; a bad handle or a broken cycle stops here.
	all, cells, err := circulate(t, e)
	switch {
	case err == nil:
	case errors.Is(err, ErrNilTriangulation), errors.Is(err, ErrStaleEdgeHandle):
		return nil, errors.Wrap(err, StageValidating.String())
	default:
		return nil, errors.Wrapf(ErrInvalidCell, "%v: %v", StageValidating, err)
	}
	// Only finite cells count toward the degree. A hull edge with four
	// finite cells passes here and is rejected while classifying, since its
	// finite cells carry one link vertex too many.
	if len(cells) != 4 {
		return nil, errors.Wrapf(ErrDegreeMismatch, "%v: %d finite of %d cells around the edge",
			StageValidating, len(cells), len(all))
	}

	// 2) Every cell we are about to replace must itself be sound.
	for _, c := range cells {
		if err = t.IsCellValid(c); err != nil {
			return nil, errors.Wrapf(ErrInvalidCell, "%v: %v", StageValidating, err)
		}
	}

	// 3) Split the link: drop the edge endpoints and the poles; the two
	//    vertices left over span the new edge.
	p := &plan{pole: [2]core.VertexID{top, bottom}}
	p.pf[0], p.pf[1], _ = t.EdgeVertices(e)
	if p.pf[0] > p.pf[1] {
		p.pf[0], p.pf[1] = p.pf[1], p.pf[0]
	}

	var rest []core.VertexID
	for _, v := range VerticesOf(t, cells) {
		if v != p.pf[0] && v != p.pf[1] && v != top && v != bottom {
			rest = append(rest, v)
		}
	}
	if len(rest) != 2 {
		return nil, errors.Wrapf(ErrPivotVertexCountMismatch, "%v: poles (%d,%d) leave %v",
			StageClassifying, top, bottom, rest)
	}
	if rest[0] > rest[1] {
		rest[0], rest[1] = rest[1], rest[0]
	}
	p.pt = [2]core.VertexID{rest[0], rest[1]}

	// 4) Each old cell holds exactly one pole and one new pivot vertex, and
	//    each (pole, pt) pair occurs once: the double pinwheel.
	for _, c := range cells {
		pi, okPole := whichOf(t, c, p.pole)
		mi, okPt := whichOf(t, c, p.pt)
		if !okPole || !okPt || p.before[pi][mi] != core.NoCell {
			return nil, errors.Wrapf(ErrNotPinwheel, "%v: cell %v with poles (%d,%d) and pivots (%d,%d)",
				StageClassifying, c, top, bottom, p.pt[0], p.pt[1])
		}
		p.before[pi][mi] = c
	}
	// 5) The new edge must not exist yet, or the result is not a complex.
	if _, exists := FindEdge(t, p.pt[0], p.pt[1]); exists {
		return nil, errors.Wrapf(ErrPivotEdgeExists, "%v: (%d,%d)", StageClassifying, p.pt[0], p.pt[1])
	}

	// 6) Capture the eight exterior cells; each must point back.
	for pi := 0; pi < 2; pi++ {
		for mi := 0; mi < 2; mi++ {
			b := p.before[pi][mi]
			for k := 0; k < 2; k++ {
				i, _ := t.IndexOf(b, p.pf[1-k])
				if _, err = t.MirrorIndex(b, i); err != nil {
					return nil, errors.Wrapf(ErrInvalidCell, "%v: exterior of %v: %v", StageClassifying, b, err)
				}
				p.ext[pi][mi][k] = t.Neighbor(b, i)
			}
		}
	}

	// 7) Remember vertex links; CreateCell rewrites them and rollback needs
	//    the originals back.
	p.links = make(map[core.VertexID]core.CellID, 6)
	for _, v := range []core.VertexID{p.pf[0], p.pf[1], p.pt[0], p.pt[1], top, bottom} {
		p.links[v] = t.VertexCell(v)
	}

	return p, nil
}

// whichOf returns the index of the one vertex of pair held by c.
func whichOf(t *core.Triangulation, c core.CellID, pair [2]core.VertexID) (int, bool) {
	a, b := t.HasVertex(c, pair[0]), t.HasVertex(c, pair[1])
	switch {
	case a && !b:
		return 0, true
	case b && !a:
		return 1, true
	default:
		return -1, false
	}
}

// apply runs Detaching, Reattaching and Repairing. It returns the new
// cells indexed [pole][pf].
func (p *plan) apply(x *txn, cfg config) ([2][2]core.CellID, error) {
	t := x.t
	var n [2][2]core.CellID

	// 1) Detach the old cells. Their slots stay reserved for rollback.
	for pi := 0; pi < 2; pi++ {
		for mi := 0; mi < 2; mi++ {
			if err := t.DetachCell(p.before[pi][mi]); err != nil {
				return n, errors.Wrapf(ErrRepairFailed, "%v: %v", StageDetaching, err)
			}
			x.detached = append(x.detached, p.before[pi][mi])
		}
	}
	klog.V(2).Infof("flip: %v: %d cells after deleting", StageDetaching, t.CellCount())

	// 2) Create (pole_p, pf_k, pt_0, pt_1) for each pole and old endpoint.
	for pi := 0; pi < 2; pi++ {
		for k := 0; k < 2; k++ {
			c, err := t.CreateCell(p.pole[pi], p.pf[k], p.pt[0], p.pt[1])
			if err != nil {
				return n, errors.Wrapf(ErrRepairFailed, "%v: %v", StageReattaching, err)
			}
			x.created = append(x.created, c)
			n[pi][k] = c
		}
	}
	// 3) Wire neighbors slot by slot: opposite the pole is the twin at the
	//    other pole, opposite pf_k the sibling holding pf_{1-k}, opposite
	//    pt_m the exterior cell across (pole, pt_{1-m}, pf_k).
	for pi := 0; pi < 2; pi++ {
		for k := 0; k < 2; k++ {
			ns := [4]core.CellID{n[1-pi][k], n[pi][1-k], p.ext[pi][1][k], p.ext[pi][0][k]}
			if err := t.SetNeighbors(n[pi][k], ns); err != nil {
				return n, errors.Wrapf(ErrRepairFailed, "%v: %v", StageReattaching, err)
			}
		}
	}
	klog.V(2).Infof("flip: %v: %d cells after adding", StageReattaching, t.CellCount())

	// 4) Point each exterior cell back at its new neighbor, logging the old
	//    value so rollback can restore it.
	touched := make([]core.CellID, 0, 12)
	seen := make(map[core.CellID]struct{}, 12)
	for pi := 0; pi < 2; pi++ {
		for mi := 0; mi < 2; mi++ {
			for k := 0; k < 2; k++ {
				ex := p.ext[pi][mi][k]
				slot, err := t.OppositeSlot(ex, [3]core.VertexID{p.pole[pi], p.pt[mi], p.pf[k]})
				if err != nil {
					return n, errors.Wrapf(ErrRepairFailed, "%v: %v", StageRepairing, err)
				}
				x.repaired = append(x.repaired, slotRef{cell: ex, slot: slot, old: t.Neighbor(ex, slot)})
				if err = t.SetNeighbor(ex, slot, n[pi][k]); err != nil {
					return n, errors.Wrapf(ErrRepairFailed, "%v: %v", StageRepairing, err)
				}
				if _, ok := seen[ex]; !ok {
					seen[ex] = struct{}{}
					touched = append(touched, ex)
				}
			}
		}
	}
	// 5) Match each new cell's orientation to its exterior neighbor across
	//    slot 2; swapping the pt slots keeps pole and pf in place.
	for pi := 0; pi < 2; pi++ {
		for k := 0; k < 2; k++ {
			c := n[pi][k]
			if !t.ConsistentFacet(c, 2) {
				if err := t.SwapSlots(c, 2, 3); err != nil {
					return n, errors.Wrapf(ErrRepairFailed, "%v: %v", StageRepairing, err)
				}
			}
			touched = append(touched, c)
		}
	}

	// 6) Self-check; on failure try one reorientation under a snapshot.
	err := check(t, cfg, touched)
	if err == nil {
		return n, nil
	}
	if !cfg.reorient {
		return n, errors.Wrapf(ErrRepairFailed, "%v: %v", StageRepairing, err)
	}
	klog.V(1).Infof("flip: %v: %v; reorienting", StageRepairing, err)
	snap := t.Clone()
	if err = t.Reorient(); err == nil {
		err = check(t, cfg, touched)
	}
	if err != nil {
		t.Restore(snap)
		return n, errors.Wrapf(ErrRepairFailed, "%v: after reorient: %v", StageRepairing, err)
	}

	return n, nil
}

func check(t *core.Triangulation, cfg config, touched []core.CellID) error {
	if cfg.globalCheck {
		return t.IsValid()
	}
	for _, c := range touched {
		if err := t.IsCellValid(c); err != nil {
			return err
		}
	}

	return nil
}

type slotRef struct {
	cell core.CellID
	slot int
	old  core.CellID
}

// txn records the mutations of one flip so they can be undone.
type txn struct {
	t        *core.Triangulation
	detached []core.CellID
	created  []core.CellID
	repaired []slotRef
}

// rollback undoes the recorded mutations in reverse order and restores the
// vertex links captured before the flip.
func (x *txn) rollback(links map[core.VertexID]core.CellID) {
	for i := len(x.repaired) - 1; i >= 0; i-- {
		r := x.repaired[i]
		_ = x.t.SetNeighbor(r.cell, r.slot, r.old)
	}
	for _, c := range x.created {
		_ = x.t.DeleteCell(c)
	}
	for _, c := range x.detached {
		_ = x.t.ReattachCell(c)
	}
	for v, c := range links {
		_ = x.t.SetVertexCell(v, c)
	}
}
