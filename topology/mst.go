package topology

import (
	"math"

	"github.com/vdumont/gplace/geom"
)

// Edge connects two pin indices of a point slice, with From < To.
type Edge struct {
	From, To int
}

func manhattan(a, b geom.Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// MST computes a rectilinear minimum spanning tree over the given points
// with Prim's algorithm on the implicit complete graph. Returns n−1
// edges for n ≥ 2 and nil otherwise.
//
// Time: O(n²). Space: O(n).
func MST(points []geom.Point) []Edge {
	n := len(points)
	if n < 2 {
		return nil
	}

	// bestCost[v] is the cheapest connection from v into the grown tree,
	// parent[v] the tree endpoint realizing it.
	inTree := make([]bool, n)
	bestCost := make([]float64, n)
	parent := make([]int, n)
	for v := range bestCost {
		bestCost[v] = math.Inf(1)
		parent[v] = -1
	}
	bestCost[0] = 0

	edges := make([]Edge, 0, n-1)
	for it := 0; it < n; it++ {
		// Pick the cheapest un-grown vertex; the strict < keeps the
		// lowest index on ties, so the tree is deterministic.
		u, minW := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		inTree[u] = true
		if p := parent[u]; p >= 0 {
			if p < u {
				edges = append(edges, Edge{From: p, To: u})
			} else {
				edges = append(edges, Edge{From: u, To: p})
			}
		}
		for v := 0; v < n; v++ {
			if !inTree[v] {
				if d := manhattan(points[u], points[v]); d < bestCost[v] {
					bestCost[v] = d
					parent[v] = u
				}
			}
		}
	}
	return edges
}

// MSTLength returns the total Manhattan length of the rectilinear MST
// over the points; zero for degenerate inputs.
func MSTLength(points []geom.Point) float64 {
	var sum float64
	for _, e := range MST(points) {
		sum += manhattan(points[e.From], points[e.To])
	}
	return sum
}
