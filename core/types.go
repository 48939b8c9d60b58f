// Package core defines the central Triangulation, Vertex, Cell and Edge types,
// and provides the combinatorial primitives the flip engine is built on.
//
// Cells and vertices live in arenas addressed by stable integer handles:
// a VertexID indexes the vertex arena, a CellID packs a cell slot with the
// slot's generation so that a handle to a deleted (and possibly recycled)
// slot is detected as stale instead of silently aliasing a new cell.
//
// Errors:
//
//	ErrVertexNotFound  - vertex ID outside the vertex arena.
//	ErrDuplicateVertex - a cell was given the same vertex twice.
//	ErrCellNotFound    - cell handle is stale or was never issued.
//	ErrBadIndex        - local index outside 0..3.
//	ErrStaleEdge       - edge descriptor no longer denotes an edge.
//	ErrBrokenCycle     - circulation around an edge does not close.
//	ErrNotNeighbor     - two cells are not adjacent.
//	ErrInvalidCell     - a cell fails its local validity predicate.
//	ErrInconsistent    - global self-check failed.
//	ErrNonOrientable   - orientation cannot be made consistent.
package core

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Sentinel errors for core triangulation operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex outside the arena.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates a cell was given the same vertex more than once.
	ErrDuplicateVertex = errors.New("core: duplicate vertex in cell")

	// ErrCellNotFound indicates a stale or never-issued cell handle.
	ErrCellNotFound = errors.New("core: cell not found")

	// ErrBadIndex indicates a local vertex/neighbor index outside 0..3.
	ErrBadIndex = errors.New("core: local index out of range")

	// ErrStaleEdge indicates that an edge descriptor no longer denotes an edge.
	ErrStaleEdge = errors.New("core: stale edge handle")

	// ErrBrokenCycle indicates that the cells around an edge do not form a closed cycle.
	ErrBrokenCycle = errors.New("core: broken cycle around edge")

	// ErrNotNeighbor indicates that two cells do not share a facet.
	ErrNotNeighbor = errors.New("core: cells are not neighbors")

	// ErrInvalidCell indicates a cell failed its local validity predicate.
	ErrInvalidCell = errors.New("core: invalid cell")

	// ErrInconsistent indicates the global self-check failed.
	ErrInconsistent = errors.New("core: triangulation is inconsistent")

	// ErrNonOrientable indicates the cells cannot be oriented consistently.
	ErrNonOrientable = errors.New("core: triangulation is not orientable")
)

// VertexID identifies a vertex by identity. IDs are dense indices into the
// vertex arena; the vertex at infinity is always InfiniteVertex.
type VertexID int

const (
	// InfiniteVertex is the conceptual vertex closing the complex beyond the hull.
	InfiniteVertex VertexID = 0

	// NoVertex is returned by lookups that found nothing.
	NoVertex VertexID = -1
)

// CellID is a generation-checked handle into the cell arena.
// The low 32 bits hold the slot, the high 32 bits the slot generation.
// The zero value is NoCell and never denotes a live cell.
type CellID uint64

// NoCell is the empty cell handle.
const NoCell CellID = 0

func makeCellID(slot int, gen uint32) CellID {
	return CellID(uint64(gen)<<32 | uint64(uint32(slot)))
}

func (c CellID) slot() int      { return int(uint32(c)) }
func (c CellID) gen() uint32    { return uint32(c >> 32) }
func (c CellID) String() string { return fmt.Sprintf("c%d.%d", c.slot(), c.gen()) }

// Vertex is a read-only view of a vertex record.
type Vertex struct {
	// ID is the vertex identity.
	ID VertexID

	// Point is the embedded position. Meaningless for InfiniteVertex.
	Point r3.Vector

	// Info is caller-defined data (builders store the input point index).
	Info int

	// Cell is one live cell incident to the vertex, or NoCell.
	Cell CellID
}

// Edge is a transient edge descriptor: a cell incident to the edge and the
// local indices of the two endpoints inside that cell.
type Edge struct {
	Cell CellID
	I, J int
}

// Facet is a cell plus the local index of the vertex opposite the facet.
type Facet struct {
	Cell CellID
	I    int
}

type vertexRecord struct {
	point r3.Vector
	info  int
	cell  CellID
}

type cellState uint8

const (
	cellFree cellState = iota
	cellLive
	cellDetached
)

type cellRecord struct {
	gen       uint32
	state     cellState
	vertices  [4]VertexID
	neighbors [4]CellID
}

// TriangulationOption configures a Triangulation before first use.
type TriangulationOption func(t *Triangulation)

// WithCellCapacity preallocates room for n cells.
func WithCellCapacity(n int) TriangulationOption {
	return func(t *Triangulation) {
		if n > 0 {
			t.cells = make([]cellRecord, 1, n+1)
		}
	}
}

// WithVertexCapacity preallocates room for n finite vertices.
func WithVertexCapacity(n int) TriangulationOption {
	return func(t *Triangulation) {
		if n > 0 {
			t.vertices = make([]vertexRecord, 1, n+1)
		}
	}
}

// Triangulation is a closed 3-dimensional simplicial complex: the finite
// cells triangulate a region of space and one infinite cell per boundary
// facet, each incident to InfiniteVertex, closes it into a sphere.
//
// The structure owns all cells and vertices. It carries no internal locking:
// callers must serialize mutations (one flip at a time).
type Triangulation struct {
	vertices []vertexRecord // index 0 is the vertex at infinity
	cells    []cellRecord   // slot 0 is reserved so that NoCell never resolves
	free     *arraystack.Stack
	live     int
}

// NewTriangulation creates an empty triangulation holding only the vertex at infinity.
// Complexity: O(1).
func NewTriangulation(opts ...TriangulationOption) *Triangulation {
	t := &Triangulation{
		vertices: make([]vertexRecord, 1),
		cells:    make([]cellRecord, 1),
		free:     arraystack.New(),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}
