package netlist

import (
	"fmt"
	"math"

	"github.com/vdumont/gplace/geom"
)

// Builder accumulates cells and nets and produces an immutable Netlist.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	cells     []CellSpec
	cellIDs   []string
	cellIndex map[string]int

	netIDs     []string
	netIndex   map[string]int
	netWeights []float64
	netPins    [][]PinSpec
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		cellIndex: make(map[string]int),
		netIndex:  make(map[string]int),
	}
}

// AddCell registers a cell under an external ID and returns its internal
// index. The index is dense: the k-th added cell gets index k.
// Returns ErrDuplicateCell if the ID was already registered.
func (b *Builder) AddCell(id string, spec CellSpec) (int, error) {
	if _, ok := b.cellIndex[id]; ok {
		return 0, fmt.Errorf("AddCell %q: %w", id, ErrDuplicateCell)
	}
	idx := len(b.cells)
	b.cellIndex[id] = idx
	b.cellIDs = append(b.cellIDs, id)
	b.cells = append(b.cells, spec)
	return idx, nil
}

// AddNet registers a net under an external ID with its weight and ordered
// pin list, and returns its internal index. Pin order is preserved; the
// assemblers rely on it for deterministic tie-breaking.
//
// Returns ErrDuplicateCell if the net ID was already registered (net and
// cell namespaces are independent), ErrBadWeight for a negative or
// non-finite weight, ErrUnknownCell if a pin references an unregistered
// cell, and ErrNotFinite for a NaN/Inf pin offset.
func (b *Builder) AddNet(id string, weight float64, pins []PinSpec) (int, error) {
	if _, ok := b.netIndex[id]; ok {
		return 0, fmt.Errorf("AddNet %q: %w", id, ErrDuplicateCell)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, fmt.Errorf("AddNet %q: weight %g: %w", id, weight, ErrBadWeight)
	}
	for _, p := range pins {
		if _, ok := b.cellIndex[p.Cell]; !ok {
			return 0, fmt.Errorf("AddNet %q: pin on %q: %w", id, p.Cell, ErrUnknownCell)
		}
		if !p.Offset.IsFinite() {
			return 0, fmt.Errorf("AddNet %q: pin on %q: %w", id, p.Cell, ErrNotFinite)
		}
	}
	idx := len(b.netWeights)
	b.netIndex[id] = idx
	b.netIDs = append(b.netIDs, id)
	b.netWeights = append(b.netWeights, weight)
	b.netPins = append(b.netPins, append([]PinSpec(nil), pins...))
	return idx, nil
}

// Build freezes the accumulated cells and nets into a Netlist. All input
// was validated by AddCell/AddNet, so Build cannot fail on legal use; the
// error return mirrors the validating constructors of the rest of the
// module and reports nothing today.
func (b *Builder) Build() (*Netlist, error) {
	cellCnt, netCnt := len(b.cells), len(b.netWeights)

	nl := &Netlist{
		cellAreas:  make([]int64, cellCnt),
		cellSizes:  make([]geom.IPoint, cellCnt),
		cellAttrs:  make([]Attribute, cellCnt),
		netWeights: append([]float64(nil), b.netWeights...),
		netLimits:  make([]int, netCnt+1),
		cellLimits: make([]int, cellCnt+1),
		cellIDs:    append([]string(nil), b.cellIDs...),
		cellIndex:  make(map[string]int, cellCnt),
		netIDs:     append([]string(nil), b.netIDs...),
		netIndex:   make(map[string]int, netCnt),
	}
	for i, c := range b.cells {
		nl.cellAreas[i] = c.Area
		nl.cellSizes[i] = c.Size
		nl.cellAttrs[i] = c.Attributes
	}
	for id, i := range b.cellIndex {
		nl.cellIndex[id] = i
	}
	for id, i := range b.netIndex {
		nl.netIndex[id] = i
	}

	// Net-major pin arrays and the net boundary array.
	pinCnt := 0
	for _, pins := range b.netPins {
		pinCnt += len(pins)
	}
	nl.pinCells = make([]int, 0, pinCnt)
	nl.pinOffsets = make([]geom.Point, 0, pinCnt)
	for i, pins := range b.netPins {
		nl.netLimits[i] = len(nl.pinCells)
		for _, p := range pins {
			nl.pinCells = append(nl.pinCells, b.cellIndex[p.Cell])
			nl.pinOffsets = append(nl.pinOffsets, p.Offset)
		}
	}
	nl.netLimits[netCnt] = pinCnt

	// Cell-major view via counting sort over pin owners.
	counts := make([]int, cellCnt)
	for _, c := range nl.pinCells {
		counts[c]++
	}
	for c := 0; c < cellCnt; c++ {
		nl.cellLimits[c+1] = nl.cellLimits[c] + counts[c]
	}
	nl.cellPins = make([]int, pinCnt)
	next := append([]int(nil), nl.cellLimits[:cellCnt]...)
	for p, c := range nl.pinCells {
		nl.cellPins[next[c]] = p
		next[c]++
	}

	return nl, nil
}
