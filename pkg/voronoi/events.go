package voronoi

// handleSiteEvent splits the arc above the new site and opens the edge
// between the new site and the split arc's owner.
func (v *Voronoi) handleSiteEvent(site *Site) {
	v.sweep = site.Y
	if v.tracer != nil {
		v.tracer.SiteEvent(site.Point(), v.sweep)
	}

	hit := v.locateArc(site.X)
	hitOwner := hit.owner

	active := &ActiveSite{Site: site}
	v.active = append(v.active, active)
	middle := &Arc{owner: active}
	active.arcs = []*Arc{middle}

	v.splitArc(hit, middle)

	v.edges = append(v.edges, newEdge(site, hitOwner.Site))

	// The split destroyed hit; every queued event naming it is void.
	v.queue.removeVertexEvents(v.queue.referencing(hit))

	// Fresh adjacency around the two copies of the split arc, one step
	// outward on each side.
	v.makeVertexEvent(middle.left)
	if middle.left != nil {
		v.makeVertexEvent(middle.left.left)
	}
	v.makeVertexEvent(middle.right)
	if middle.right != nil {
		v.makeVertexEvent(middle.right.right)
	}

	if v.tracer != nil {
		v.tracer.BeachlineDump(v.beachlineSites())
	}
}

// handleVertexEvent removes the collapsed middle arc, emits the Voronoi
// vertex into the two edges it bounded, and opens the closure edge between
// the surviving neighbors.
func (v *Voronoi) handleVertexEvent(e *VertexEvent) {
	v.sweep = e.EventPoint.Y
	if v.tracer != nil {
		v.tracer.VertexEvent(e.VertexPoint, e.EventPoint, v.sweep)
	}

	l, m, r := e.Left, e.Middle, e.Right
	v.removeArc(m)
	v.queue.removeVertexEvents(v.queue.referencing(m))

	closure := newEdge(l.owner.Site, r.owner.Site)
	v.edges = append(v.edges, closure)
	closure.setVertex(e.VertexPoint, v.diag)

	if edge := v.findEdge(l.owner.Site, m.owner.Site); edge != nil {
		edge.setVertex(e.VertexPoint, v.diag)
	}
	if edge := v.findEdge(m.owner.Site, r.owner.Site); edge != nil {
		edge.setVertex(e.VertexPoint, v.diag)
	}

	v.makeVertexEvent(l)
	v.makeVertexEvent(r)

	if v.tracer != nil {
		v.tracer.BeachlineDump(v.beachlineSites())
	}
}

// findEdge returns the most recent edge between the cells of a and b.
func (v *Voronoi) findEdge(a, b *Site) *Edge {
	for i := len(v.edges) - 1; i >= 0; i-- {
		if v.edges[i].hasFaces(a, b) {
			return v.edges[i]
		}
	}
	return nil
}

// makeVertexEvent queues a vertex event for the triple centered on middle,
// unless the triple cannot collapse: a shared site, breakpoints that do not
// converge, a degenerate circle, or a sweepline position already passed.
func (v *Voronoi) makeVertexEvent(middle *Arc) {
	if middle == nil || middle.left == nil || middle.right == nil {
		return
	}
	ls := middle.left.owner.Site
	ms := middle.owner.Site
	rs := middle.right.owner.Site
	if ls == ms || ms == rs || ls == rs {
		return
	}
	if ls.X > rs.X {
		return
	}
	// Left-to-right, a collapsing triple turns right around the middle
	// site. A left turn means the breakpoints diverge below the triple.
	if cross(ms.Point(), ls.Point(), rs.Point()) <= convergeEpsilon {
		return
	}
	center, radius := circumcircle(ls.Point(), ms.Point(), rs.Point())
	if !center.finite() || !finite(radius) {
		report(v.diag, DegenerateCircle, ms.Point())
		return
	}
	eventY := center.Y - radius
	if eventY > v.sweep {
		return
	}
	v.queue.pushVertexEvents(&VertexEvent{
		Left:        middle.left,
		Middle:      middle,
		Right:       middle.right,
		EventPoint:  Point{center.X, eventY},
		VertexPoint: center,
	})
}

const convergeEpsilon = 1e-12
