package bfs

import (
	"context"

	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/pkg/errors"

	"github.com/katalvlaran/bistellar/core"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  core.CellID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	tr      *core.Triangulation
	opts    BFSOptions
	ctx     context.Context
	queue   *arrayqueue.Queue
	visited map[core.CellID]bool
	res     *BFSResult
}

// BFS runs breadth-first search from start across shared facets, visiting
// neighbors in slot order. Infinite cells are ordinary nodes; filter them
// with WithFilterNeighbor when only the finite part matters.
//
// Returns ErrGraphNil or ErrStartCellNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error.
func BFS(t *core.Triangulation, start core.CellID, opts ...Option) (*BFSResult, error) {
	if t == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !t.IsCell(start) {
		return nil, errors.Wrapf(ErrStartCellNotFound, "%v", start)
	}

	w := &walker{
		tr:      t,
		opts:    o,
		ctx:     o.Ctx,
		queue:   arrayqueue.New(),
		visited: make(map[core.CellID]bool),
		res: &BFSResult{
			Depth:  make(map[core.CellID]int),
			Parent: make(map[core.CellID]core.CellID),
		},
	}
	w.enqueue(start, 0, core.NoCell)

	return w.res, w.loop()
}

func (w *walker) enqueue(c core.CellID, d int, parent core.CellID) {
	w.visited[c] = true
	w.res.Depth[c] = d
	if parent != core.NoCell {
		w.res.Parent[c] = parent
	}
	w.opts.OnEnqueue(c, d)
	w.queue.Enqueue(queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v, ok := w.queue.Dequeue()
		if !ok {
			return nil
		}
		item := v.(queueItem)
		w.res.Order = append(w.res.Order, item.cell)
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return errors.Wrapf(err, "bfs: OnVisit at %v", item.cell)
		}
		w.enqueueNeighbors(item)
	}
}

func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for i := 0; i < 4; i++ {
		n := w.tr.Neighbor(item.cell, i)
		if !w.tr.IsCell(n) || w.visited[n] {
			continue
		}
		if !w.opts.FilterNeighbor(item.cell, n, i) {
			continue
		}
		w.enqueue(n, next, item.cell)
	}
}
