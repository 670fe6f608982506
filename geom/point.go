package geom

import "math"

// Point is a real-valued 2-D coordinate. It is used both for absolute
// positions and for relative offsets.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the component-wise difference p − q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Manhattan returns the L1 norm |X| + |Y|.
func (p Point) Manhattan() float64 { return math.Abs(p.X) + math.Abs(p.Y) }

// IsFinite reports whether both coordinates are finite (no NaN, no ±Inf).
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// IPoint is an integer 2-D extent, used for cell sizes (width, height).
type IPoint struct {
	X, Y int64
}

// Box is an axis-aligned rectangle, used for placement surfaces.
type Box struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns XMax − XMin.
func (b Box) Width() float64 { return b.XMax - b.XMin }

// Height returns YMax − YMin.
func (b Box) Height() float64 { return b.YMax - b.YMin }
