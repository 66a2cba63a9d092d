package voronoi

import "fmt"

// DefaultEnvelope is the far-x coordinate unbounded edges are extended to.
const DefaultEnvelope = 100

// Voronoi runs Fortune's sweepline over a set of sites and accumulates the
// Voronoi edges. The sweep moves top to bottom: events are consumed in
// strictly descending y, ties on lowest x first. Single-threaded; no
// operation is reentrant.
type Voronoi struct {
	active []*ActiveSite
	edges  []*Edge
	sweep  float64
	queue  eventQueue

	envelope  float64
	tracer    Tracer
	diag      DiagnosticSink
	finalized bool
}

// Option configures a Voronoi.
type Option func(*Voronoi)

// WithTracer installs trace hooks. The default is silent.
func WithTracer(t Tracer) Option {
	return func(v *Voronoi) { v.tracer = t }
}

// WithDiagnostics installs a sink for non-fatal warnings.
func WithDiagnostics(d DiagnosticSink) Option {
	return func(v *Voronoi) { v.diag = d }
}

// WithEnvelope overrides the far-x envelope used for unbounded edges.
func WithEnvelope(farX float64) Option {
	return func(v *Voronoi) { v.envelope = farX }
}

// New seeds the queue with the given sites and bootstraps the beachline
// from the two topmost. Input must hold at least two finite, pairwise
// distinct coordinates.
func New(points []Point, opts ...Option) (*Voronoi, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("voronoi: need at least 2 sites, got %d", len(points))
	}
	seen := make(map[Point]struct{}, len(points))
	sites := make([]*Site, len(points))
	for i, p := range points {
		if !p.finite() {
			return nil, fmt.Errorf("voronoi: site %d is not finite: %v", i, p)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("voronoi: duplicate site %v", p)
		}
		seen[p] = struct{}{}
		sites[i] = &Site{X: p.X, Y: p.Y}
	}

	v := &Voronoi{envelope: DefaultEnvelope}
	for _, opt := range opts {
		opt(v)
	}
	v.queue.pushSites(sites)
	v.bootstrap()
	return v, nil
}

// bootstrap seeds the beachline from the two topmost sites: the first
// contributes the outer pair of arcs, the second the middle, and the edge
// between the two opens with no vertices. When the two share a y the outer
// right arc is unreachable but harmless; the beachline degenerates to the
// two-arc split at the next event.
func (v *Voronoi) bootstrap() {
	first, _ := v.queue.pop()
	second, _ := v.queue.pop()

	a := &ActiveSite{Site: first}
	b := &ActiveSite{Site: second}

	leftArc := &Arc{owner: a}
	middleArc := &Arc{owner: b}
	rightArc := &Arc{owner: a}
	leftArc.right = middleArc
	middleArc.left = leftArc
	middleArc.right = rightArc
	rightArc.left = middleArc

	a.arcs = []*Arc{leftArc, rightArc}
	b.arcs = []*Arc{middleArc}
	v.active = append(v.active, a, b)

	v.edges = append(v.edges, newEdge(first, second))
	v.sweep = second.Y

	if v.tracer != nil {
		v.tracer.BeachlineDump(v.beachlineSites())
	}
}

// Step consumes one event. It returns false once the queue has drained, at
// which point the diagram has been finalized.
func (v *Voronoi) Step() bool {
	site, vertex := v.queue.pop()
	switch {
	case site != nil:
		v.handleSiteEvent(site)
	case vertex != nil:
		if vertex.EventPoint.Y > v.sweep {
			report(v.diag, StaleVertexEvent, vertex.EventPoint)
			return true
		}
		v.handleVertexEvent(vertex)
	default:
		v.Finalize()
		return false
	}
	return true
}

// Compute runs the sweep to completion and finalizes.
func (v *Voronoi) Compute() {
	for v.Step() {
	}
}

// Finalize extends every edge still missing an endpoint to the far-x
// envelope along the perpendicular bisector of its faces. The envelope side
// is the one holding the face midpoint relative to the endpoint already
// present. Finalizing an already finalized diagram changes nothing.
func (v *Voronoi) Finalize() {
	for _, e := range v.edges {
		if e.Bounded() {
			continue
		}
		lf, rf := e.LeftFace.Point(), e.RightFace.Point()
		mid := midpoint(lf, rf)
		if e.FirstVertex == nil && e.LastVertex == nil {
			report(v.diag, UnboundEdgeMissingBothVertices, mid)
		}
		if e.FirstVertex == nil {
			x := -v.envelope
			if e.LastVertex != nil && mid.X > e.LastVertex.X {
				x = v.envelope
			}
			e.FirstVertex = &Point{x, bisectorY(lf, rf, x)}
		}
		if e.LastVertex == nil {
			x := -v.envelope
			if mid.X > e.FirstVertex.X {
				x = v.envelope
			}
			e.LastVertex = &Point{x, bisectorY(lf, rf, x)}
		}
	}
	v.finalized = true
	if v.tracer != nil {
		v.tracer.EdgeDump(v.edges)
	}
}

// Edges returns the diagram's edges in insertion order: construction-time
// edges first, then the edges vertex events emitted.
func (v *Voronoi) Edges() []*Edge {
	return v.edges
}

// ActiveSites returns the sites in the order they entered the beachline.
func (v *Voronoi) ActiveSites() []*ActiveSite {
	return v.active
}

// Sweep returns the current sweepline y.
func (v *Voronoi) Sweep() float64 {
	return v.sweep
}

// Done reports whether the queue has drained.
func (v *Voronoi) Done() bool {
	return v.queue.empty()
}
