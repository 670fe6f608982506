// Package netlist declares the cell/net/pin value types, movability
// attributes, and the sentinel errors returned by the Builder.
package netlist

import (
	"errors"

	"github.com/vdumont/gplace/geom"
)

// Sentinel errors for netlist construction.
var (
	// ErrDuplicateCell indicates that AddCell was called twice with the same external ID,
	// or AddNet twice with the same net ID.
	ErrDuplicateCell = errors.New("netlist: duplicate cell ID")

	// ErrUnknownCell indicates that a pin or lookup referenced an external ID that was never added.
	ErrUnknownCell = errors.New("netlist: unknown cell ID")

	// ErrUnknownNet indicates that a lookup referenced a net ID that was never added.
	ErrUnknownNet = errors.New("netlist: unknown net ID")

	// ErrBadWeight indicates a negative or non-finite net weight.
	ErrBadWeight = errors.New("netlist: net weight must be finite and non-negative")

	// ErrNotFinite indicates a pin offset containing NaN or ±Inf.
	ErrNotFinite = errors.New("netlist: pin offset must be finite")
)

// Attribute is a bitmask of per-cell capabilities. The core interprets
// XMovable and YMovable; any higher bits are host-defined and opaque.
type Attribute uint32

const (
	// XMovable marks a cell whose x coordinate the solver may change.
	XMovable Attribute = 1 << iota

	// YMovable marks a cell whose y coordinate the solver may change.
	YMovable
)

// Movable is the attribute set of a cell that is free on both axes.
const Movable = XMovable | YMovable

// Has reports whether every flag in f is present in a.
func (a Attribute) Has(f Attribute) bool { return a&f == f }

// Cell is the read view of one cell: an integer area (its capacity for
// the legalizer), an integer 2-D size, and its attribute set. Cells are
// immutable once the netlist is built.
type Cell struct {
	Area       int64
	Size       geom.IPoint
	Attributes Attribute
}

// CellSpec describes one cell to the Builder.
type CellSpec struct {
	Area       int64
	Size       geom.IPoint
	Attributes Attribute
}

// PinSpec describes one pin of a net to the Builder: the external ID of
// the owning cell and the pin's offset from the cell's reference point.
type PinSpec struct {
	Cell   string
	Offset geom.Point
}
