package voronoi

// Edge is one Voronoi edge: the boundary traced between the cells of its
// two faces. Vertices are absent until vertex events fill them in; an
// unbounded edge keeps a missing endpoint until finalization extends it to
// the far-x envelope.
type Edge struct {
	LeftFace  *Site
	RightFace *Site

	FirstVertex *Point
	LastVertex  *Point
}

func newEdge(left, right *Site) *Edge {
	return &Edge{LeftFace: left, RightFace: right}
}

// Midpoint returns the midpoint of the two faces. The edge lies on the
// perpendicular bisector through this point.
func (e *Edge) Midpoint() Point {
	return midpoint(e.LeftFace.Point(), e.RightFace.Point())
}

// Bounded reports whether both endpoints have been written.
func (e *Edge) Bounded() bool {
	return e.FirstVertex != nil && e.LastVertex != nil
}

// hasFaces reports whether the edge separates the cells of a and b, in
// either orientation. Faces match by identity.
func (e *Edge) hasFaces(a, b *Site) bool {
	return (e.LeftFace == a && e.RightFace == b) || (e.LeftFace == b && e.RightFace == a)
}

// setVertex writes v into the endpoint slot chosen by the sign of its
// perpendicular distance from the directed segment leftFace->rightFace:
// positive picks FirstVertex, otherwise LastVertex. At most two vertices
// ever attach to an edge; a write into an occupied slot is dropped and
// reported.
func (e *Edge) setVertex(v Point, diag DiagnosticSink) {
	if planeDistance(e.LeftFace.Point(), e.RightFace.Point(), v) > 0 {
		if e.FirstVertex != nil {
			report(diag, DoubleVertexAssignment, v)
			return
		}
		e.FirstVertex = &v
	} else {
		if e.LastVertex != nil {
			report(diag, DoubleVertexAssignment, v)
			return
		}
		e.LastVertex = &v
	}
}
