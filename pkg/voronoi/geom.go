package voronoi

import (
	"math"
	"sort"
)

// Point is a coordinate in the plane.
type Point struct {
	X float64
	Y float64
}

// Site is an input point, the center of a Voronoi cell. Sites are compared
// by identity: the engine never treats two distinct *Site values as equal,
// and assumes distinct input coordinates.
type Site struct {
	X float64
	Y float64
}

// Point returns the site coordinate as a Point.
func (s *Site) Point() Point {
	return Point{s.X, s.Y}
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (p Point) finite() bool {
	return finite(p.X) && finite(p.Y)
}

func midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// parabolaY evaluates, at horizontal coordinate x, the parabola with focus f
// and horizontal directrix y=d. The result is non-finite when d = f.Y
// (the sweepline passes through the focus); callers skip non-finite values.
func parabolaY(f Point, d, x float64) float64 {
	dy := d - f.Y
	return (dy*dy-(x-f.X)*(x-f.X))/(2*dy) + f.Y
}

// circumcircle returns the circumcenter and radius of the triangle abc.
// The points are sorted by (y, x) first so the result is bit-stable under
// argument reordering. Degenerate input (collinear or coincident points)
// yields a non-finite center; callers filter.
func circumcircle(a, b, c Point) (Point, float64) {
	p := []Point{a, b, c}
	sort.Slice(p, func(i, j int) bool {
		if p[i].Y != p[j].Y {
			return p[i].Y < p[j].Y
		}
		return p[i].X < p[j].X
	})
	a, b, c = p[0], p[1], p[2]

	// Inverse gradients of the perpendicular bisectors of ab and bc.
	// A horizontal side gives a vertical bisector and a non-finite gradient,
	// in which case that bisector pins the x coordinate directly.
	g1 := -(b.X - a.X) / (b.Y - a.Y)
	g2 := -(c.X - b.X) / (c.Y - b.Y)
	mab := midpoint(a, b)
	mbc := midpoint(b, c)

	var x, y float64
	switch {
	case !finite(g1) && finite(g2):
		x = mab.X
		y = g2*(x-mbc.X) + mbc.Y
	case finite(g1) && !finite(g2):
		x = mbc.X
		y = g1*(x-mab.X) + mab.Y
	default:
		x = (g1*mab.X - g2*mbc.X + mbc.Y - mab.Y) / (g1 - g2)
		y = g1*(x-mab.X) + mab.Y
	}

	center := Point{x, y}
	return center, math.Hypot(a.X-x, a.Y-y)
}

// bisectorY evaluates the perpendicular bisector of ab at horizontal
// coordinate x. When a.Y = b.Y the bisector is vertical; the zero
// denominator is replaced with the smallest positive float64 instead of
// producing a division by zero. Only finalization calls this, with far-x
// values where the linear term dominates.
func bisectorY(a, b Point, x float64) float64 {
	den := b.Y - a.Y
	if den == 0 {
		den = math.SmallestNonzeroFloat64
	}
	m := (a.X - b.X) / den
	mid := midpoint(a, b)
	return m*(x-mid.X) + mid.Y
}

// segmentY evaluates the infinite line through a and b at horizontal
// coordinate x. A vertical line yields a non-finite result.
func segmentY(a, b Point, x float64) float64 {
	m := (b.Y - a.Y) / (b.X - a.X)
	return m*(x-a.X) + a.Y
}

// planeDistance is the signed perpendicular distance of p from the directed
// infinite line a->b, using the right-hand normal. Positive means p lies on
// the right-hand side relative to a->b. Only the sign is meaningful to the
// engine.
func planeDistance(a, b, p Point) float64 {
	nx := b.Y - a.Y
	ny := -(b.X - a.X)
	n := math.Hypot(nx, ny)
	return ((p.X-a.X)*nx + (p.Y-a.Y)*ny) / n
}

// cross is the z component of (b-a) x (c-a).
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
