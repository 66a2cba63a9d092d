package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVertexSlots(t *testing.T) {
	e := newEdge(&Site{X: 0, Y: 0}, &Site{X: 4, Y: 0})

	// Right-hand side of leftFace->rightFace fills the first slot.
	e.setVertex(Point{2, -1}, nil)
	require.NotNil(t, e.FirstVertex)
	assert.Nil(t, e.LastVertex)
	assert.Equal(t, Point{2, -1}, *e.FirstVertex)

	e.setVertex(Point{2, 3}, nil)
	require.NotNil(t, e.LastVertex)
	assert.Equal(t, Point{2, 3}, *e.LastVertex)
	assert.True(t, e.Bounded())
}

func TestSetVertexDoubleWriteDropped(t *testing.T) {
	sink := NewCountingSink()
	e := newEdge(&Site{X: 0, Y: 0}, &Site{X: 4, Y: 0})

	e.setVertex(Point{1, -1}, sink)
	e.setVertex(Point{3, -1}, sink)

	// Second write to the occupied slot is dropped and reported.
	assert.Equal(t, Point{1, -1}, *e.FirstVertex)
	assert.Nil(t, e.LastVertex)
	assert.Equal(t, 1, sink.Counts[DoubleVertexAssignment])
}

func TestHasFaces(t *testing.T) {
	a := &Site{X: 0, Y: 0}
	b := &Site{X: 1, Y: 0}
	twin := &Site{X: 1, Y: 0}
	e := newEdge(a, b)

	assert.True(t, e.hasFaces(a, b))
	assert.True(t, e.hasFaces(b, a))
	// Faces compare by identity, not by coordinate.
	assert.False(t, e.hasFaces(a, twin))
}

func TestEdgeMidpoint(t *testing.T) {
	e := newEdge(&Site{X: 0, Y: 0}, &Site{X: 4, Y: 2})
	assert.Equal(t, Point{2, 1}, e.Midpoint())
}
