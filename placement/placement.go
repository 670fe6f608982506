package placement

import (
	"fmt"

	"github.com/vdumont/gplace/geom"
)

// Placement maps each cell internal index to a position and an
// orientation vector. Fields are exported: the solve driver and the
// legalizer bridge write positions directly on their hot paths.
type Placement struct {
	Positions    []geom.Point
	Orientations []geom.Point
}

// New returns a placement for cellCnt cells with every position at the
// origin and every orientation at (1, 1) (no mirroring on either axis).
func New(cellCnt int) *Placement {
	pl := &Placement{
		Positions:    make([]geom.Point, cellCnt),
		Orientations: make([]geom.Point, cellCnt),
	}
	for i := range pl.Orientations {
		pl.Orientations[i] = geom.Pt(1, 1)
	}
	return pl
}

// CellCnt returns the number of cells this placement covers.
func (pl *Placement) CellCnt() int { return len(pl.Positions) }

// Clone returns a deep copy. The copy shares nothing with the receiver,
// so the caller may keep it as an upper- or lower-bound snapshot while
// the original keeps moving.
func (pl *Placement) Clone() *Placement {
	return &Placement{
		Positions:    append([]geom.Point(nil), pl.Positions...),
		Orientations: append([]geom.Point(nil), pl.Orientations...),
	}
}

// Selfcheck panics if any position or orientation coordinate is NaN or
// infinite. Violations are programmer errors, not recoverable conditions.
func (pl *Placement) Selfcheck() {
	if len(pl.Orientations) != len(pl.Positions) {
		panic("placement: positions and orientations disagree on cell count")
	}
	for i, p := range pl.Positions {
		if !p.IsFinite() {
			panic(fmt.Sprintf("placement: cell %d has non-finite position", i))
		}
	}
	for i, o := range pl.Orientations {
		if !o.IsFinite() {
			panic(fmt.Sprintf("placement: cell %d has non-finite orientation", i))
		}
	}
}
