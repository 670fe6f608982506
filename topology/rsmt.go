package topology

import (
	"math"

	"github.com/vdumont/gplace/geom"
)

// steinerExactLimit is the largest pin count for which the Steiner tree
// degenerates to the half-perimeter and is built exactly.
const steinerExactLimit = 3

// RSMT builds a rectilinear Steiner minimum tree approximation and
// returns its axis decomposition: one edge list per axis, each edge a
// pair of pin indices with From < To. For ≤ 3 pins the topology is
// exact; larger nets reuse the MST topology on both axes. accuracy
// selects the effort of table-driven builders (the classical lookup
// degree, 8 by default upstream); the MST fallback ignores it.
func RSMT(points []geom.Point, accuracy int) (xEdges, yEdges []Edge) {
	switch n := len(points); {
	case n < 2:
		return nil, nil
	case n == 2:
		e := []Edge{{From: 0, To: 1}}
		return e, append([]Edge(nil), e...)
	case n == steinerExactLimit:
		// Three pins route through the (median x, median y) Steiner
		// corner; per axis that is a chain through the median pin.
		return medianChain(points, func(p geom.Point) float64 { return p.X }),
			medianChain(points, func(p geom.Point) float64 { return p.Y })
	default:
		mst := MST(points)
		return mst, append([]Edge(nil), mst...)
	}
}

// medianChain connects the axis-median pin of three points to the other
// two. Ties on the coordinate break on the lowest index.
func medianChain(points []geom.Point, axis func(geom.Point) float64) []Edge {
	ord := []int{0, 1, 2}
	// Three-element stable insertion sort by coordinate.
	for i := 1; i < len(ord); i++ {
		for j := i; j > 0 && axis(points[ord[j]]) < axis(points[ord[j-1]]); j-- {
			ord[j], ord[j-1] = ord[j-1], ord[j]
		}
	}
	med := ord[1]
	edges := make([]Edge, 0, 2)
	for _, v := range []int{ord[0], ord[2]} {
		if v < med {
			edges = append(edges, Edge{From: v, To: med})
		} else {
			edges = append(edges, Edge{From: med, To: v})
		}
	}
	return edges
}

// RSMTLength returns the Manhattan length of the Steiner approximation.
// For ≤ 3 pins this is the exact Steiner length, which equals the
// half-perimeter of the pin bounding box; larger nets report the MST
// length of the fallback topology.
func RSMTLength(points []geom.Point, accuracy int) float64 {
	switch n := len(points); {
	case n < 2:
		return 0
	case n <= steinerExactLimit:
		xMin, xMax := math.Inf(1), math.Inf(-1)
		yMin, yMax := math.Inf(1), math.Inf(-1)
		for _, p := range points {
			xMin, xMax = math.Min(xMin, p.X), math.Max(xMax, p.X)
			yMin, yMax = math.Min(yMin, p.Y), math.Max(yMax, p.Y)
		}
		return (xMax - xMin) + (yMax - yMin)
	default:
		return MSTLength(points)
	}
}
