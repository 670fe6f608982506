package qp

import (
	"github.com/vdumont/gplace/geom"
	"github.com/vdumont/gplace/netlist"
	"github.com/vdumont/gplace/placement"
)

// pinAbs returns the absolute position of pin p: cell position plus pin
// offset. Every wirelength metric and projector goes through this one
// function.
func pinAbs(nl *netlist.Netlist, pl *placement.Placement, p int) geom.Point {
	return pl.Positions[nl.PinCell(p)].Add(nl.PinOffset(p))
}

// Pins2D returns the 2-D pin views of net i, in the net's pin order.
func Pins2D(nl *netlist.Netlist, pl *placement.Placement, i int) []Pin2D {
	lo, hi := nl.NetPins(i)
	pins := make([]Pin2D, 0, hi-lo)
	for p := lo; p < hi; p++ {
		cell := nl.PinCell(p)
		attrs := nl.Cell(cell).Attributes
		pins = append(pins, Pin2D{
			Cell:     cell,
			Pos:      pinAbs(nl, pl, p),
			Offset:   nl.PinOffset(p),
			XMovable: attrs.Has(netlist.XMovable),
			YMovable: attrs.Has(netlist.YMovable),
		})
	}
	return pins
}

// Pins1D returns the two per-axis pin lists of net i, both in the net's
// pin order. The views are derived from Pins2D so both projectors share
// one projection policy.
func Pins1D(nl *netlist.Netlist, pl *placement.Placement, i int) (xs, ys []Pin1D) {
	pins := Pins2D(nl, pl, i)
	xs = make([]Pin1D, len(pins))
	ys = make([]Pin1D, len(pins))
	for k, p := range pins {
		xs[k] = p.X()
		ys[k] = p.Y()
	}
	return xs, ys
}

// netPoints collects the absolute pin positions of net i for the
// topology builders.
func netPoints(nl *netlist.Netlist, pl *placement.Placement, i int) []geom.Point {
	lo, hi := nl.NetPins(i)
	points := make([]geom.Point, 0, hi-lo)
	for p := lo; p < hi; p++ {
		points = append(points, pinAbs(nl, pl, p))
	}
	return points
}
