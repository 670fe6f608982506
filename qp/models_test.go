package qp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/vdumont/gplace/geom"
	"github.com/vdumont/gplace/linsys"
	"github.com/vdumont/gplace/netlist"
	"github.com/vdumont/gplace/placement"
	"github.com/vdumont/gplace/qp"
)

// cellDef is the compact cell description used by the test fixtures.
type cellDef struct {
	id    string
	area  int64
	attrs netlist.Attribute
	pos   geom.Point
}

// netDef connects the listed cells with the given pin offsets (nil means
// all-zero offsets).
type netDef struct {
	id      string
	weight  float64
	cells   []string
	offsets []geom.Point
}

func buildCase(t *testing.T, cells []cellDef, nets []netDef) (*netlist.Netlist, *placement.Placement) {
	t.Helper()
	b := netlist.NewBuilder()
	for _, c := range cells {
		_, err := b.AddCell(c.id, netlist.CellSpec{Area: c.area, Attributes: c.attrs})
		require.NoError(t, err)
	}
	for _, n := range nets {
		pins := make([]netlist.PinSpec, len(n.cells))
		for k, id := range n.cells {
			pins[k].Cell = id
			if n.offsets != nil {
				pins[k].Offset = n.offsets[k]
			}
		}
		_, err := b.AddNet(n.id, n.weight, pins)
		require.NoError(t, err)
	}
	nl, err := b.Build()
	require.NoError(t, err)
	nl.Selfcheck()

	pl := placement.New(nl.CellCnt())
	for i, c := range cells {
		pl.Positions[i] = c.pos
	}
	return nl, pl
}

// builders enumerates the six model assemblers under their names.
var builders = map[string]func(*netlist.Netlist, *placement.Placement, float64, int, int) *qp.SystemPair{
	"hpwlf":  qp.BuildHPWLF,
	"hpwlr":  qp.BuildHPWLR,
	"star":   qp.BuildStar,
	"clique": qp.BuildClique,
	"mst":    qp.BuildMST,
	"rsmt":   qp.BuildRSMT,
}

// mixedFixture: five cells, one fixed per axis behavior, three nets of
// pin counts 2, 3 and 4, with non-trivial offsets.
func mixedFixture(t *testing.T) (*netlist.Netlist, *placement.Placement) {
	return buildCase(t,
		[]cellDef{
			{"f", 4, 0, geom.Pt(0, 0)}, // fixed on both axes
			{"a", 1, netlist.Movable, geom.Pt(2, 1)},
			{"b", 2, netlist.Movable, geom.Pt(5, 4)},
			{"c", 1, netlist.Movable, geom.Pt(1, 6)},
			{"d", 3, netlist.Movable, geom.Pt(7, 2)},
		},
		[]netDef{
			{"n2", 1, []string{"f", "a"}, nil},
			{"n3", 1, []string{"a", "b", "c"}, []geom.Point{{X: 0.5, Y: 0}, {X: -0.5, Y: 0.25}, {}}},
			{"n4", 1, []string{"f", "b", "c", "d"}, nil},
		})
}

// TestBuilders_SymmetricMatrices: property 1 — every builder produces a
// symmetric matrix. Symmetry is probed through matrix-vector products
// against basis vectors, so asymmetric stamping cannot hide behind the
// symmetric dense export.
func TestBuilders_SymmetricMatrices(t *testing.T) {
	nl, pl := mixedFixture(t)
	for name, build := range builders {
		sys := build(nl, pl, 1e-3, 0, qp.NoMaxPins)
		for _, axis := range []*linsys.System{sys.X, sys.Y} {
			n := axis.Size()
			cols := make([][]float64, n)
			for j := 0; j < n; j++ {
				e := make([]float64, n)
				e[j] = 1
				cols[j] = axis.MulVec(e)
			}
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					assert.Equal(t, cols[j][i], cols[i][j], "%s: A[%d,%d] != A[%d,%d]", name, i, j, j, i)
				}
			}
		}
	}
}

// TestBuilders_PositiveDefinite: property 2 — with a fixed cell on each
// axis, every assembled matrix admits a Cholesky factorization.
func TestBuilders_PositiveDefinite(t *testing.T) {
	nl, pl := mixedFixture(t)
	for name, build := range builders {
		sys := build(nl, pl, 1e-3, 0, qp.NoMaxPins)
		var ch mat.Cholesky
		assert.True(t, ch.Factorize(sys.X.Dense()), "%s: x system not PD", name)
		assert.True(t, ch.Factorize(sys.Y.Dense()), "%s: y system not PD", name)
	}
}

// TestScenario_TwoMovableCells is S1: a two-pin net between two movable
// cells collapses them onto one x coordinate without pulling, and keeps
// them near their start with quadratic pulling.
func TestScenario_TwoMovableCells(t *testing.T) {
	build := func(t *testing.T) (*netlist.Netlist, *placement.Placement) {
		return buildCase(t,
			[]cellDef{
				{"c0", 1, netlist.Movable, geom.Pt(0, 0)},
				{"c1", 1, netlist.Movable, geom.Pt(10, 0)},
			},
			[]netDef{{"n", 1, []string{"c0", "c1"}, nil}})
	}

	t.Run("without pulling the cells coincide", func(t *testing.T) {
		nl, pl := build(t)
		sys := qp.BuildClique(nl, pl, 1e-3, 2, qp.NoMaxPins)
		qp.Solve(sys, nl, pl, 100)
		assert.InDelta(t, pl.Positions[0].X, pl.Positions[1].X, 1e-6)
		pl.Selfcheck()
	})

	t.Run("with pulling the cells stay near their start", func(t *testing.T) {
		nl, pl := build(t)
		sys := qp.BuildClique(nl, pl, 1e-3, 2, qp.NoMaxPins)
		qp.AddQuadraticPulling(sys, nl, pl, 1.0)
		qp.Solve(sys, nl, pl, 100)
		assert.Less(t, math.Abs(pl.Positions[0].X-0), 1.0)
		assert.Less(t, math.Abs(pl.Positions[1].X-10), 1.0)
	})
}

// TestScenario_FixedAnchor is S2: one movable cell wired to a fixed one
// lands on the fixed cell's x; its y never changes.
func TestScenario_FixedAnchor(t *testing.T) {
	nl, pl := buildCase(t,
		[]cellDef{
			{"m", 1, netlist.Movable, geom.Pt(5, 0)},
			{"f", 1, 0, geom.Pt(0, 0)},
		},
		[]netDef{{"n", 1, []string{"m", "f"}, nil}})

	yBefore := pl.Positions[0].Y
	sys := qp.BuildHPWLF(nl, pl, 1e-3, 2, qp.NoMaxPins)
	qp.Solve(sys, nl, pl, 100)

	assert.InDelta(t, 0.0, pl.Positions[0].X, 1e-6)
	assert.Equal(t, yBefore, pl.Positions[0].Y)
	// The fixed cell did not move at all.
	assert.Equal(t, geom.Pt(0, 0), pl.Positions[1])
}

// TestScenario_StarStabilization is S3: the auxiliary row of an
// out-of-window net carries a unit diagonal and the solve stays finite.
func TestScenario_StarStabilization(t *testing.T) {
	nl, pl := buildCase(t,
		[]cellDef{
			{"a", 1, netlist.Movable, geom.Pt(0, 0)},
			{"b", 1, netlist.Movable, geom.Pt(2, 0)},
			{"c", 1, netlist.Movable, geom.Pt(0, 2)},
		},
		[]netDef{
			{"big", 1, []string{"a", "b", "c"}, nil},
			{"lone", 1, []string{"c"}, nil},
		})

	sys := qp.BuildStar(nl, pl, 1e-3, 2, 100)
	auxB := nl.CellCnt() + 1
	assert.Equal(t, 1.0, sys.X.Dense().At(auxB, auxB))
	assert.Equal(t, 1.0, sys.Y.Dense().At(auxB, auxB))

	qp.Solve(sys, nl, pl, 100)
	pl.Selfcheck()
}

// TestScenario_MovabilityMask is S4: an axis with a clear movability bit
// keeps its coordinate bit-for-bit across any build + solve.
func TestScenario_MovabilityMask(t *testing.T) {
	for name, build := range builders {
		nl, pl := buildCase(t,
			[]cellDef{
				{"half", 1, netlist.XMovable, geom.Pt(3, 7)},
				{"f", 1, 0, geom.Pt(0, 0)},
				{"m", 1, netlist.Movable, geom.Pt(1, 1)},
			},
			[]netDef{{"n", 1, []string{"half", "f", "m"}, nil}})

		sys := build(nl, pl, 1e-3, 0, qp.NoMaxPins)
		qp.Solve(sys, nl, pl, 50)
		assert.Equal(t, 7.0, pl.Positions[0].Y, "%s: y must be untouched", name)
		assert.Equal(t, geom.Pt(0, 0), pl.Positions[1], "%s: fixed cell moved", name)
		pl.Selfcheck()
	}
}

// TestStar_AuxiliaryCentroid is round-trip 7: with cells held by stiff
// pulling anchors, the star center of a net converges to the centroid of
// its pins' absolute positions.
func TestStar_AuxiliaryCentroid(t *testing.T) {
	nl, pl := buildCase(t,
		[]cellDef{
			{"a", 1, netlist.Movable, geom.Pt(0, 0)},
			{"b", 1, netlist.Movable, geom.Pt(3, 0)},
			{"c", 1, netlist.Movable, geom.Pt(0, 6)},
		},
		[]netDef{{"n", 1, []string{"a", "b", "c"}, nil}})

	sys := qp.BuildStar(nl, pl, 1e-3, 2, qp.NoMaxPins)
	qp.AddQuadraticPulling(sys, nl, pl, 1e-4)

	guessX := []float64{0, 3, 0}
	guessY := []float64{0, 0, 6}
	solX := sys.X.SolveCG(guessX, 300)
	solY := sys.Y.SolveCG(guessY, 300)

	aux := nl.CellCnt()
	assert.InDelta(t, 1.0, solX[aux], 1e-2)
	assert.InDelta(t, 2.0, solY[aux], 1e-2)
}

// TestCliqueStar_OptimaAgree is round-trip 8: on a symmetric single-net
// instance both models admit the same optimum for the movable pin.
func TestCliqueStar_OptimaAgree(t *testing.T) {
	fixture := func(t *testing.T) (*netlist.Netlist, *placement.Placement) {
		return buildCase(t,
			[]cellDef{
				{"f0", 1, 0, geom.Pt(0, 0)},
				{"f1", 1, 0, geom.Pt(4, 4)},
				{"m", 1, netlist.Movable, geom.Pt(2, 2)},
			},
			[]netDef{{"n", 1, []string{"f0", "f1", "m"}, nil}})
	}

	nl, plClique := fixture(t)
	qp.Solve(qp.BuildClique(nl, plClique, 1e-3, 2, qp.NoMaxPins), nl, plClique, 200)

	_, plStar := fixture(t)
	qp.Solve(qp.BuildStar(nl, plStar, 1e-3, 2, qp.NoMaxPins), nl, plStar, 200)

	assert.InDelta(t, plClique.Positions[2].X, plStar.Positions[2].X, 1e-5)
	assert.InDelta(t, plClique.Positions[2].Y, plStar.Positions[2].Y, 1e-5)
	assert.InDelta(t, 2.0, plStar.Positions[2].X, 1e-5)
	assert.InDelta(t, 2.0, plStar.Positions[2].Y, 1e-5)
}

// TestHPWL_DescendsOnConvexCase is property 5: from a deliberately bad
// start on a convex single-net instance, one solve strictly decreases
// the half-perimeter wirelength.
func TestHPWL_DescendsOnConvexCase(t *testing.T) {
	nl, pl := buildCase(t,
		[]cellDef{
			{"f", 1, 0, geom.Pt(0, 0)},
			{"m1", 1, netlist.Movable, geom.Pt(10, 0)},
			{"m2", 1, netlist.Movable, geom.Pt(20, 0)},
		},
		[]netDef{{"n", 1, []string{"f", "m1", "m2"}, nil}})

	before := qp.HPWL(nl, pl)
	sys := qp.BuildHPWLF(nl, pl, 1e-3, 2, qp.NoMaxPins)
	qp.Solve(sys, nl, pl, 1)
	after := qp.HPWL(nl, pl)

	assert.Less(t, after, before)
	pl.Selfcheck()
}

// TestWindow_ExcludesNets: a window that excludes every net leaves only
// the fixed-cell seeds in the system.
func TestWindow_ExcludesNets(t *testing.T) {
	nl, pl := mixedFixture(t)
	sys := qp.BuildClique(nl, pl, 1e-3, 10, qp.NoMaxPins)

	// Only the fixed cell's unit diagonal remains on each axis.
	a := sys.X.Dense()
	for i := 0; i < nl.CellCnt(); i++ {
		for j := 0; j < nl.CellCnt(); j++ {
			want := 0.0
			if i == j && i == 0 {
				want = 1.0
			}
			assert.Equal(t, want, a.At(i, j))
		}
	}
}

// TestBuilders_TolContract: a non-positive tol is a programmer error.
func TestBuilders_TolContract(t *testing.T) {
	nl, pl := mixedFixture(t)
	for name, build := range builders {
		assert.Panics(t, func() { build(nl, pl, 0, 0, qp.NoMaxPins) }, name)
	}
}
