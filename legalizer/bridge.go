package legalizer

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vdumont/gplace/geom"
	"github.com/vdumont/gplace/netlist"
	"github.com/vdumont/gplace/placement"
)

// MakeInput partitions the netlist's cells for the rough legalizer:
// cells with any movability bit become movable entries carrying their
// area, everything else becomes a fixed obstacle carrying its size.
func MakeInput(nl *netlist.Netlist, pl *placement.Placement, surface geom.Box) *Input {
	in := &Input{Surface: surface}
	for i := 0; i < nl.CellCnt(); i++ {
		c := nl.Cell(i)
		if c.Attributes&(netlist.XMovable|netlist.YMovable) != 0 {
			in.Movable = append(in.Movable, MovableCell{Area: c.Area, Pos: pl.Positions[i], Index: i})
		} else {
			in.Fixed = append(in.Fixed, FixedCell{Size: c.Size, Pos: pl.Positions[i]})
		}
	}
	return in
}

// ApplyOutput writes each exported spread position into the placement.
// Returns ErrBadExport if a result references an index outside the
// placement.
func ApplyOutput(pl *placement.Placement, out []SpreadPosition) error {
	for _, sp := range out {
		if sp.Index < 0 || sp.Index >= pl.CellCnt() {
			return fmt.Errorf("ApplyOutput: index %d: %w", sp.Index, ErrBadExport)
		}
		pl.Positions[sp.Index] = sp.Pos
	}
	return nil
}

// Options configures the bridge's one-call form.
type Options struct {
	Logger *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger directs the bridge's records to the given logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Run marshals the placement, invokes the distributor, applies its
// output in place, and logs the disruption between the placement before
// and after legalization. The pre-legalization snapshot plays the
// lower-bound role in the disruption metrics.
func Run(nl *netlist.Netlist, pl *placement.Placement, surface geom.Box, d Distributor, opts ...Option) error {
	o := Options{Logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	before := pl.Clone()
	out, err := d.Spread(MakeInput(nl, pl, surface))
	if err != nil {
		return fmt.Errorf("legalizer: spread: %w", err)
	}
	if err := ApplyOutput(pl, out); err != nil {
		return err
	}
	pl.Selfcheck()

	o.Logger.Debug("rough legalization applied",
		"movable", len(out),
		"linear_disruption", MeanLinearDisruption(nl, before, pl),
		"quadratic_disruption", MeanQuadraticDisruption(nl, before, pl))
	return nil
}
