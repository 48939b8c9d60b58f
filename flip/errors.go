package flip

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/bistellar/core"
)

// Sentinel errors returned by the flip engine. Every error returned by
// Bistellar wraps exactly one of them and is prefixed with the Stage that
// detected it.
var (
	// ErrNilTriangulation indicates a nil *core.Triangulation.
	ErrNilTriangulation = errors.New("flip: triangulation is nil")

	// ErrStaleEdgeHandle indicates the edge descriptor no longer denotes an
	// edge. It is the same value as core.ErrStaleEdge.
	ErrStaleEdgeHandle = core.ErrStaleEdge

	// ErrDegreeMismatch indicates the pivot edge is not surrounded by
	// exactly four finite cells.
	ErrDegreeMismatch = errors.New("flip: pivot edge degree is not 4")

	// ErrInvalidCell indicates a cell around the pivot fails its validity check.
	ErrInvalidCell = errors.New("flip: invalid cell")

	// ErrPivotVertexCountMismatch indicates that removing the edge endpoints
	// and the poles did not leave exactly two vertices.
	ErrPivotVertexCountMismatch = errors.New("flip: expected exactly two new pivot vertices")

	// ErrNotPinwheel indicates the four cells do not pair each pole with
	// each new pivot vertex exactly once.
	ErrNotPinwheel = errors.New("flip: cells do not form a double pinwheel")

	// ErrPivotEdgeExists indicates the edge the flip would create is
	// already present elsewhere in the triangulation.
	ErrPivotEdgeExists = errors.New("flip: new pivot edge already exists")

	// ErrRepairFailed indicates the rewired cells failed their self-check.
	// The triangulation has been rolled back.
	ErrRepairFailed = errors.New("flip: repair failed")
)

// Stage names a step of the flip state machine.
type Stage int

const (
	StageValidating Stage = iota
	StageClassifying
	StageDetaching
	StageReattaching
	StageRepairing
)

func (s Stage) String() string {
	switch s {
	case StageValidating:
		return "validating"
	case StageClassifying:
		return "classifying"
	case StageDetaching:
		return "detaching"
	case StageReattaching:
		return "reattaching"
	case StageRepairing:
		return "repairing"
	default:
		return "unknown"
	}
}
