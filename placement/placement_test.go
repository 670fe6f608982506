package placement_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vdumont/gplace/geom"
	"github.com/vdumont/gplace/placement"
)

func TestNew_Defaults(t *testing.T) {
	pl := placement.New(3)
	assert.Equal(t, 3, pl.CellCnt())
	assert.Equal(t, geom.Pt(0, 0), pl.Positions[2])
	assert.Equal(t, geom.Pt(1, 1), pl.Orientations[2])
	assert.NotPanics(t, pl.Selfcheck)
}

func TestClone_IsDeep(t *testing.T) {
	pl := placement.New(2)
	pl.Positions[0] = geom.Pt(3, 4)

	cp := pl.Clone()
	cp.Positions[0] = geom.Pt(-1, -1)
	cp.Orientations[1] = geom.Pt(-1, 1)

	// The original is untouched by writes to the clone.
	assert.Equal(t, geom.Pt(3, 4), pl.Positions[0])
	assert.Equal(t, geom.Pt(1, 1), pl.Orientations[1])
}

func TestSelfcheck_PanicsOnNaN(t *testing.T) {
	pl := placement.New(1)
	pl.Positions[0].X = math.NaN()
	assert.Panics(t, pl.Selfcheck)

	pl = placement.New(1)
	pl.Orientations[0].Y = math.Inf(-1)
	assert.Panics(t, pl.Selfcheck)
}
