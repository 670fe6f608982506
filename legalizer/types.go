package legalizer

import (
	"errors"

	"github.com/vdumont/gplace/geom"
)

// ErrBadExport indicates a Distributor exported a position for a cell
// index the input never contained.
var ErrBadExport = errors.New("legalizer: exported position for unknown cell")

// MovableCell is one spreadable cell of the legalizer input: its area
// (the capacity it occupies), its current position, and its index in the
// placement so results can be routed back.
type MovableCell struct {
	Area  int64
	Pos   geom.Point
	Index int
}

// FixedCell is an obstacle: a blocked rectangle given by size and
// position. Fixed cells export no positions.
type FixedCell struct {
	Size geom.IPoint
	Pos  geom.Point
}

// Input is the marshalled form consumed by a Distributor.
type Input struct {
	Surface geom.Box
	Movable []MovableCell
	Fixed   []FixedCell
}

// SpreadPosition is one exported result: the placement index of a
// movable cell and its spread position.
type SpreadPosition struct {
	Index int
	Pos   geom.Point
}

// Distributor is the contract of the external rough legalizer: consume
// the marshalled cells and surface, produce one spread position per
// movable cell. Implementations must be pure with respect to the input —
// the bridge may call them with snapshots and compare runs.
type Distributor interface {
	Spread(in *Input) ([]SpreadPosition, error)
}
