// SPDX-License-Identifier: MIT
// Package: bistellar/builder
//
// impl_soup.go: tetrahedron soup → closed triangulation.
//
// Steps:
//   1. Add one vertex per point (VertexID = index+1).
//   2. Create each cell positively oriented; reject coplanar cells.
//   3. Glue finite cells along facets with equal vertex sets.
//   4. Close each remaining facet with an infinite cell (∞, x, y, z).
//   5. Glue the infinite cells to each other along their ∞-facets.
//   6. Self-check, with one orientation repair attempt.

package builder

import (
	"sort"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/bistellar/core"
	"github.com/katalvlaran/bistellar/geometry"
)

// Soup returns a Constructor that assembles tets, each a 4-tuple of indices
// into points, into a closed triangulation.
//
// Errors:
//   - ErrTooFewVertices if len(points) < MinSoupPoints or tets is empty.
//   - ErrOptionViolation if a cell names an index outside points.
//   - ErrDegenerateCell for a repeated index or four coplanar points.
//   - ErrNonManifold if more than two cells share a facet.
//   - ErrConstructFailed if the result fails core's self-check.
func Soup(points []r3.Vector, tets [][4]int) Constructor {
	return func(t *core.Triangulation, cfg builderConfig) error {
		if len(points) < MinSoupPoints {
			return errors.Wrapf(ErrTooFewVertices, "%s: %d points", MethodSoup, len(points))
		}
		if len(tets) == 0 {
			return errors.Wrapf(ErrTooFewVertices, "%s: no cells", MethodSoup)
		}

		placed := make([]r3.Vector, len(points))
		ids := make([]core.VertexID, len(points))
		for i, p := range points {
			placed[i] = cfg.place(p)
			ids[i] = t.AddVertex(placed[i], cfg.infoFn(i))
		}

		finite := make([]core.CellID, 0, len(tets))
		for k, tet := range tets {
			for i, idx := range tet {
				if idx < 0 || idx >= len(points) {
					return errors.Wrapf(ErrOptionViolation, "%s: cell %d names point %d", MethodSoup, k, idx)
				}
				for j := 0; j < i; j++ {
					if tet[j] == idx {
						return errors.Wrapf(ErrDegenerateCell, "%s: cell %d repeats point %d", MethodSoup, k, idx)
					}
				}
			}
			switch geometry.Orient3D(placed[tet[0]], placed[tet[1]], placed[tet[2]], placed[tet[3]]) {
			case geometry.Zero:
				return errors.Wrapf(ErrDegenerateCell, "%s: cell %d %v is flat", MethodSoup, k, tet)
			case geometry.Negative:
				tet[0], tet[1] = tet[1], tet[0]
			}
			c, err := t.CreateCell(ids[tet[0]], ids[tet[1]], ids[tet[2]], ids[tet[3]])
			if err != nil {
				return errors.Wrapf(err, "%s: cell %d", MethodSoup, k)
			}
			finite = append(finite, c)
		}
		if err := glue(t, finite); err != nil {
			return err
		}

		hull, err := closeHull(t, finite)
		if err != nil {
			return err
		}
		if err = glue(t, hull); err != nil {
			return err
		}
		for _, c := range hull {
			for i := 0; i < 4; i++ {
				if t.Neighbor(c, i) == core.NoCell {
					return errors.Wrapf(ErrConstructFailed, "%s: hull is not closed at %v", MethodSoup, c)
				}
			}
		}
		klog.V(3).Infof("builder: soup of %d cells closed by %d infinite cells", len(finite), len(hull))

		if err = t.IsValid(); err == nil {
			return nil
		}
		klog.V(2).Infof("builder: soup needs orientation repair: %v", err)
		if rerr := t.ReorientFrom(finite[0]); rerr != nil {
			return errors.Wrapf(ErrConstructFailed, "%s: %v", MethodSoup, rerr)
		}
		if err = t.IsValid(); err != nil {
			return errors.Wrapf(ErrConstructFailed, "%s: %v", MethodSoup, err)
		}

		return nil
	}
}

type facetKey [3]core.VertexID

func keyOf(f [3]core.VertexID) facetKey {
	k := facetKey(f)
	sort.Slice(k[:], func(a, b int) bool { return k[a] < k[b] })

	return k
}

// glue pairs up the still-open facets of cells that hold the same vertices.
// Facets are visited in cell order, then slot order.
func glue(t *core.Triangulation, cells []core.CellID) error {
	open := make(map[facetKey][]core.Facet)
	var order []facetKey
	for _, c := range cells {
		for i := 0; i < 4; i++ {
			if t.Neighbor(c, i) != core.NoCell {
				continue
			}
			f, err := t.FacetVertices(c, i)
			if err != nil {
				return errors.Wrapf(ErrConstructFailed, "glue: %v", err)
			}
			k := keyOf(f)
			if _, ok := open[k]; !ok {
				order = append(order, k)
			}
			open[k] = append(open[k], core.Facet{Cell: c, I: i})
		}
	}

	for _, k := range order {
		fs := open[k]
		switch len(fs) {
		case 1:
			continue
		case 2:
			if err := t.SetNeighbor(fs[0].Cell, fs[0].I, fs[1].Cell); err != nil {
				return err
			}
			if err := t.SetNeighbor(fs[1].Cell, fs[1].I, fs[0].Cell); err != nil {
				return err
			}
		default:
			return errors.Wrapf(ErrNonManifold, "facet %v is shared by %d cells", k, len(fs))
		}
	}

	return nil
}

// closeHull caps every open facet of cells with an infinite cell. The facet
// triple is copied in oriented order behind ∞, so the new cell sees the
// shared facet reversed and orientation stays consistent.
func closeHull(t *core.Triangulation, cells []core.CellID) ([]core.CellID, error) {
	var hull []core.CellID
	for _, c := range cells {
		for i := 0; i < 4; i++ {
			if t.Neighbor(c, i) != core.NoCell {
				continue
			}
			f, err := t.FacetVertices(c, i)
			if err != nil {
				return nil, err
			}
			inf, err := t.CreateCell(core.InfiniteVertex, f[0], f[1], f[2])
			if err != nil {
				return nil, err
			}
			if err = t.SetNeighbor(c, i, inf); err != nil {
				return nil, err
			}
			if err = t.SetNeighbor(inf, 0, c); err != nil {
				return nil, err
			}
			hull = append(hull, inf)
		}
	}
	if len(hull) == 0 {
		return nil, errors.Wrapf(ErrConstructFailed, "%s: cells have no boundary", MethodSoup)
	}

	return hull, nil
}
