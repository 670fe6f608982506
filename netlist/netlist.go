package netlist

import (
	"fmt"

	"github.com/vdumont/gplace/geom"
)

// Netlist is the immutable CSR circuit store. All slices are parallel
// arrays indexed by dense internal indices; Build is the only way to
// obtain one.
type Netlist struct {
	// Per-cell attributes, all of length cellCnt.
	cellAreas []int64
	cellSizes []geom.IPoint
	cellAttrs []Attribute

	// Per-net attributes, of length netCnt.
	netWeights []float64

	// Pins in net-major order: net i owns pins [netLimits[i], netLimits[i+1]).
	netLimits  []int
	pinCells   []int
	pinOffsets []geom.Point

	// Cell-major view: cell c owns pin indices cellPins[cellLimits[c]:cellLimits[c+1]].
	cellLimits []int
	cellPins   []int

	// External↔internal bijections.
	cellIDs   []string
	cellIndex map[string]int
	netIDs    []string
	netIndex  map[string]int
}

// CellCnt returns the number of cells.
func (nl *Netlist) CellCnt() int { return len(nl.cellAreas) }

// NetCnt returns the number of nets.
func (nl *Netlist) NetCnt() int { return len(nl.netWeights) }

// PinCnt returns the total number of pins.
func (nl *Netlist) PinCnt() int { return len(nl.pinCells) }

// Cell returns the read view of cell i. Panics if i is out of range.
func (nl *Netlist) Cell(i int) Cell {
	return Cell{Area: nl.cellAreas[i], Size: nl.cellSizes[i], Attributes: nl.cellAttrs[i]}
}

// NetWeight returns the weight of net i. Panics if i is out of range.
func (nl *Netlist) NetWeight(i int) float64 { return nl.netWeights[i] }

// NetPinCnt returns the number of pins of net i.
func (nl *Netlist) NetPinCnt(i int) int { return nl.netLimits[i+1] - nl.netLimits[i] }

// NetPins returns the half-open pin index range [lo, hi) of net i.
// Iterate with PinCell and PinOffset:
//
//	lo, hi := nl.NetPins(i)
//	for p := lo; p < hi; p++ { _ = nl.PinCell(p) }
func (nl *Netlist) NetPins(i int) (lo, hi int) { return nl.netLimits[i], nl.netLimits[i+1] }

// PinCell returns the internal index of the cell owning pin p.
func (nl *Netlist) PinCell(p int) int { return nl.pinCells[p] }

// PinOffset returns pin p's offset from its cell's reference point.
func (nl *Netlist) PinOffset(p int) geom.Point { return nl.pinOffsets[p] }

// CellPins returns the pin indices attached to cell c, in net order.
// The returned slice aliases internal storage and must not be modified.
func (nl *Netlist) CellPins(c int) []int {
	return nl.cellPins[nl.cellLimits[c]:nl.cellLimits[c+1]]
}

// CellIndex resolves an external cell ID to its internal index.
func (nl *Netlist) CellIndex(id string) (int, error) {
	i, ok := nl.cellIndex[id]
	if !ok {
		return 0, fmt.Errorf("CellIndex %q: %w", id, ErrUnknownCell)
	}
	return i, nil
}

// CellID returns the external ID of cell i.
func (nl *Netlist) CellID(i int) string { return nl.cellIDs[i] }

// NetIndex resolves an external net ID to its internal index.
func (nl *Netlist) NetIndex(id string) (int, error) {
	i, ok := nl.netIndex[id]
	if !ok {
		return 0, fmt.Errorf("NetIndex %q: %w", id, ErrUnknownNet)
	}
	return i, nil
}

// NetID returns the external ID of net i.
func (nl *Netlist) NetID(i int) string { return nl.netIDs[i] }

// Selfcheck validates the store invariants: boundary arrays partition the
// pin range on both the cell and the net axis, every pin offset is
// finite, and the external↔internal mappings are bijections. A failure is
// a programmer error (the store is immutable after Build), so Selfcheck
// panics rather than returning an error.
func (nl *Netlist) Selfcheck() {
	cellCnt, netCnt, pinCnt := nl.CellCnt(), nl.NetCnt(), nl.PinCnt()

	if len(nl.cellSizes) != cellCnt || len(nl.cellAttrs) != cellCnt {
		panic("netlist: cell attribute arrays disagree on cell count")
	}
	if len(nl.cellLimits) != cellCnt+1 || len(nl.netLimits) != netCnt+1 {
		panic("netlist: boundary array has wrong length")
	}
	if len(nl.pinOffsets) != pinCnt {
		panic("netlist: pin arrays disagree on pin count")
	}
	checkPartition := func(limits []int, name string) {
		if limits[0] != 0 || limits[len(limits)-1] != pinCnt {
			panic("netlist: " + name + " limits do not cover the pin range")
		}
		for i := 1; i < len(limits); i++ {
			if limits[i] < limits[i-1] {
				panic("netlist: " + name + " limits are not monotone")
			}
		}
	}
	checkPartition(nl.netLimits, "net")
	checkPartition(nl.cellLimits, "cell")
	if len(nl.cellPins) != pinCnt {
		panic("netlist: cell-major pin view has wrong length")
	}

	for p, off := range nl.pinOffsets {
		if !off.IsFinite() {
			panic(fmt.Sprintf("netlist: pin %d has non-finite offset", p))
		}
		if c := nl.pinCells[p]; c < 0 || c >= cellCnt {
			panic(fmt.Sprintf("netlist: pin %d references cell %d out of range", p, c))
		}
	}

	if len(nl.cellIDs) != cellCnt || len(nl.cellIndex) != cellCnt {
		panic("netlist: cell ID mapping is not a bijection")
	}
	for i, id := range nl.cellIDs {
		if nl.cellIndex[id] != i {
			panic(fmt.Sprintf("netlist: cell mapping mismatch for %q", id))
		}
	}
	if len(nl.netIDs) != netCnt || len(nl.netIndex) != netCnt {
		panic("netlist: net ID mapping is not a bijection")
	}
	for i, id := range nl.netIDs {
		if nl.netIndex[id] != i {
			panic(fmt.Sprintf("netlist: net mapping mismatch for %q", id))
		}
	}
}
