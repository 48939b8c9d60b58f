// File: types.go
// Role: Options, sentinel errors and the result type for cell BFS.

package bfs

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/bistellar/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartCellNotFound is returned when the start handle is not a live cell.
	ErrStartCellNotFound = errors.New("bfs: start cell not found")

	// ErrGraphNil is returned if a nil triangulation pointer is passed.
	ErrGraphNil = errors.New("bfs: triangulation is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	OnEnqueue func(c core.CellID, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c core.CellID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip a step by returning false. It receives the
	// current cell, the neighbor and the slot of curr the step crosses.
	FilterNeighbor func(curr, next core.CellID, facet int) bool

	err error
}

// DefaultOptions returns a BFSOptions with:
//   - context.Background()
//   - no depth limit
//   - no filtering
//   - no-op hooks
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(core.CellID, int) {},
		OnVisit:        func(core.CellID, int) error { return nil },
		FilterNeighbor: func(_, _ core.CellID, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c core.CellID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c core.CellID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips steps for which fn returns false.
func WithFilterNeighbor(fn func(curr, next core.CellID, facet int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: facet-steps from the start cell.
//   - Parent: predecessor in the BFS tree (absent for the start cell).
type BFSResult struct {
	Order  []core.CellID
	Depth  map[core.CellID]int
	Parent map[core.CellID]core.CellID
}

// PathTo reconstructs the cell path from the start cell to dest.
func (r *BFSResult) PathTo(dest core.CellID) ([]core.CellID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Errorf("bfs: no path to %v", dest)
	}
	path := []core.CellID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
