package voronoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParabolaY(t *testing.T) {
	f := Point{0, 10}

	// Vertex of the parabola sits midway between focus and directrix.
	assert.InDelta(t, 5.0, parabolaY(f, 0, 0), 1e-12)
	// On the directrix-width opening the parabola passes through y = f.Y.
	assert.InDelta(t, 10.0, parabolaY(f, 0, 10), 1e-12)
	assert.InDelta(t, 25.0, parabolaY(f, 0, 20), 1e-12)

	// Sweepline through the focus degenerates the parabola.
	assert.False(t, finite(parabolaY(f, 10, 3)))
}

func TestCircumcircle(t *testing.T) {
	center, r := circumcircle(Point{0, 0}, Point{4, 0}, Point{2, 4})
	assert.InDelta(t, 2.0, center.X, 1e-12)
	assert.InDelta(t, 1.5, center.Y, 1e-12)
	assert.InDelta(t, 2.5, r, 1e-12)
}

func TestCircumcircleOrderStable(t *testing.T) {
	a, b, c := Point{3, 3}, Point{8, 5}, Point{10, 5}
	c1, r1 := circumcircle(a, b, c)
	c2, r2 := circumcircle(c, a, b)
	c3, r3 := circumcircle(b, c, a)

	// Bit-identical, not merely close: arguments are sorted first.
	assert.Equal(t, c1, c2)
	assert.Equal(t, c1, c3)
	assert.Equal(t, r1, r2)
	assert.Equal(t, r1, r3)
}

func TestCircumcircleVerticalBisector(t *testing.T) {
	// (8,5)-(10,5) is horizontal, so its bisector pins x = 9.
	center, _ := circumcircle(Point{3, 3}, Point{8, 5}, Point{10, 5})
	assert.InDelta(t, 9.0, center.X, 1e-12)
	assert.InDelta(t, -4.75, center.Y, 1e-12)
}

func TestCircumcircleDegenerate(t *testing.T) {
	center, _ := circumcircle(Point{0, 0}, Point{1, 1}, Point{2, 2})
	assert.False(t, center.finite())

	center, _ = circumcircle(Point{0, 2}, Point{1, 2}, Point{2, 2})
	assert.False(t, center.finite())
}

func TestBisectorY(t *testing.T) {
	a, b := Point{2, 4}, Point{0, 0}
	y := bisectorY(a, b, -100)
	assert.InDelta(t, 52.5, y, 1e-9)

	// Any point it yields is equidistant from both foci.
	p := Point{-100, y}
	da := math.Hypot(p.X-a.X, p.Y-a.Y)
	db := math.Hypot(p.X-b.X, p.Y-b.Y)
	assert.InDelta(t, da, db, 1e-6)
}

func TestBisectorYVertical(t *testing.T) {
	// Equal y: the zero denominator is replaced, not branched on, and the
	// far-x evaluation blows out along the near-vertical line.
	y := bisectorY(Point{0, 0}, Point{2, 0}, 100)
	require.True(t, y < 0)

	y = bisectorY(Point{0, 0}, Point{2, 0}, -100)
	require.True(t, y > 0)
}

func TestSegmentY(t *testing.T) {
	assert.InDelta(t, 5.0, segmentY(Point{0, 1}, Point{2, 3}, 4), 1e-12)
	assert.False(t, finite(segmentY(Point{1, 0}, Point{1, 5}, 3)))
}

func TestPlaneDistanceSign(t *testing.T) {
	a, b := Point{0, 0}, Point{4, 0}

	// Right-hand side of a->b is below the segment.
	assert.Greater(t, planeDistance(a, b, Point{2, -1}), 0.0)
	assert.Less(t, planeDistance(a, b, Point{2, 1}), 0.0)
	assert.InDelta(t, 0.0, planeDistance(a, b, Point{2, 0}), 1e-12)

	// Reversing the direction flips the sign.
	assert.Less(t, planeDistance(b, a, Point{2, -1}), 0.0)
}
