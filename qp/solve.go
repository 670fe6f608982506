package qp

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vdumont/gplace/netlist"
	"github.com/vdumont/gplace/placement"
)

// SolveOptions configures the solve driver. Use the With... options;
// the zero value resolved through defaults logs to log.Default(), which
// suppresses the driver's Debug records unless the host raises the level.
type SolveOptions struct {
	Logger *log.Logger
}

// SolveOption mutates SolveOptions.
type SolveOption func(*SolveOptions)

// WithLogger directs the driver's per-solve records to the given logger.
func WithLogger(l *log.Logger) SolveOption {
	return func(o *SolveOptions) { o.Logger = l }
}

// Solve runs conjugate gradient on both axis systems concurrently, with
// the current placement as the initial guess and maxIters as the sole
// bound on solver work, then writes each solution coordinate back only
// where the cell's movability bit for that axis is set.
//
// The two solves share no data; assembly happened-before this call on
// the caller's goroutine and writeback starts only after both solutions
// exist. A non-finite solution entry on a movable axis is a contract
// violation and panics; non-convergence within maxIters is not an error.
func Solve(sys *SystemPair, nl *netlist.Netlist, pl *placement.Placement, maxIters int, opts ...SolveOption) {
	o := SolveOptions{Logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	n := nl.CellCnt()
	if sys.X.InternalSize() != n || sys.Y.InternalSize() != n {
		panic(fmt.Sprintf("qp: Solve: system sizes %d/%d, netlist %d cells",
			sys.X.InternalSize(), sys.Y.InternalSize(), n))
	}
	if pl.CellCnt() != n {
		panic(fmt.Sprintf("qp: Solve: placement covers %d cells, netlist %d", pl.CellCnt(), n))
	}

	xGuess := make([]float64, n)
	yGuess := make([]float64, n)
	for i := 0; i < n; i++ {
		xGuess[i] = pl.Positions[i].X
		yGuess[i] = pl.Positions[i].Y
	}

	var xSol, ySol []float64
	var xDur, yDur time.Duration
	var g errgroup.Group
	g.Go(func() error {
		start := time.Now()
		xSol = sys.X.SolveCG(xGuess, maxIters)
		xDur = time.Since(start)
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		ySol = sys.Y.SolveCG(yGuess, maxIters)
		yDur = time.Since(start)
		return nil
	})
	_ = g.Wait() // the closures never fail; Wait is the join

	for i := 0; i < n; i++ {
		attrs := nl.Cell(i).Attributes
		if attrs.Has(netlist.XMovable) {
			if math.IsNaN(xSol[i]) || math.IsInf(xSol[i], 0) {
				panic(fmt.Sprintf("qp: Solve: non-finite x solution for cell %d", i))
			}
			pl.Positions[i].X = xSol[i]
		}
		if attrs.Has(netlist.YMovable) {
			if math.IsNaN(ySol[i]) || math.IsInf(ySol[i], 0) {
				panic(fmt.Sprintf("qp: Solve: non-finite y solution for cell %d", i))
			}
			pl.Positions[i].Y = ySol[i]
		}
	}

	o.Logger.Debug("axis systems solved",
		"cells", n,
		"max_iters", maxIters,
		"x_vars", sys.X.Size(),
		"y_vars", sys.Y.Size(),
		"x_solve", xDur,
		"y_solve", yDur)
}
