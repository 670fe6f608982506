package qp

import (
	"math"

	"github.com/vdumont/gplace/geom"
	"github.com/vdumont/gplace/linsys"
)

// NoMaxPins is an open upper bound for the (minPins, maxPins) window:
// no net has this many pins.
const NoMaxPins = math.MaxInt

// rsmtAccuracy is the lookup degree forwarded to the Steiner topology
// builder, matching the effort used by table-driven RSMT constructions.
const rsmtAccuracy = 8

// Pin1D is the projection of a pin onto one axis: the owning cell's
// internal index, the absolute 1-D position (cell position + offset),
// the 1-D offset itself, and whether the cell may move on this axis.
type Pin1D struct {
	Cell    int
	Pos     float64
	Offset  float64
	Movable bool
}

// Pin2D carries a pin's absolute 2-D position and offset. The X and Y
// accessors derive the per-axis views; they are the only projection
// policy in the package, so topology consumers and the 1-D projector
// can never disagree on which offset component belongs to which axis.
type Pin2D struct {
	Cell     int
	Pos      geom.Point
	Offset   geom.Point
	XMovable bool
	YMovable bool
}

// X returns the x-axis view of the pin.
func (p Pin2D) X() Pin1D {
	return Pin1D{Cell: p.Cell, Pos: p.Pos.X, Offset: p.Offset.X, Movable: p.XMovable}
}

// Y returns the y-axis view of the pin.
func (p Pin2D) Y() Pin1D {
	return Pin1D{Cell: p.Cell, Pos: p.Pos.Y, Offset: p.Offset.Y, Movable: p.YMovable}
}

// SystemPair bundles the two independent axis systems of one assembly.
type SystemPair struct {
	X, Y *linsys.System
}
