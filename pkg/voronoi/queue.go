package voronoi

import "sort"

// VertexEvent marks the sweepline position at which the middle arc of an
// adjacent triple shrinks to zero width. EventPoint is where the sweepline
// meets the circle through the three sites; VertexPoint is the circumcenter,
// the Voronoi vertex emitted when the event fires.
type VertexEvent struct {
	Left   *Arc
	Middle *Arc
	Right  *Arc

	EventPoint  Point
	VertexPoint Point
}

// references reports whether the event's triple names the given arc.
func (e *VertexEvent) references(a *Arc) bool {
	return e.Left == a || e.Middle == a || e.Right == a
}

// eventQueue interleaves site events and vertex events. Both sequences are
// kept sorted so the last element pops next: highest y first, ties by
// lowest x. Vertex events are removed by identity, never by value.
type eventQueue struct {
	sites  []*Site
	vertex []*VertexEvent
}

func eventLess(ay, ax, by, bx float64) bool {
	if ay != by {
		return ay < by
	}
	return ax > bx
}

func (q *eventQueue) pushSites(sites []*Site) {
	q.sites = append(q.sites[:0], sites...)
	sort.SliceStable(q.sites, func(i, j int) bool {
		return eventLess(q.sites[i].Y, q.sites[i].X, q.sites[j].Y, q.sites[j].X)
	})
}

func (q *eventQueue) pushVertexEvents(events ...*VertexEvent) {
	q.vertex = append(q.vertex, events...)
	q.sortVertexEvents()
}

func (q *eventQueue) removeVertexEvents(events []*VertexEvent) {
	if len(events) == 0 {
		return
	}
	kept := q.vertex[:0]
	for _, e := range q.vertex {
		removed := false
		for _, r := range events {
			if e == r {
				removed = true
				break
			}
		}
		if !removed {
			kept = append(kept, e)
		}
	}
	q.vertex = kept
	q.sortVertexEvents()
}

func (q *eventQueue) sortVertexEvents() {
	sort.SliceStable(q.vertex, func(i, j int) bool {
		a, b := q.vertex[i].EventPoint, q.vertex[j].EventPoint
		return eventLess(a.Y, a.X, b.Y, b.X)
	})
}

// referencing returns the queued vertex events whose triple names arc.
func (q *eventQueue) referencing(arc *Arc) []*VertexEvent {
	var out []*VertexEvent
	for _, e := range q.vertex {
		if e.references(arc) {
			out = append(out, e)
		}
	}
	return out
}

// pop returns the next event: exactly one of the results is non-nil. When a
// site and a vertex event tie on y, the site event wins.
func (q *eventQueue) pop() (*Site, *VertexEvent) {
	ns, nv := len(q.sites), len(q.vertex)
	switch {
	case ns == 0 && nv == 0:
		return nil, nil
	case ns == 0:
		e := q.vertex[nv-1]
		q.vertex = q.vertex[:nv-1]
		return nil, e
	case nv == 0:
		s := q.sites[ns-1]
		q.sites = q.sites[:ns-1]
		return s, nil
	}
	if q.sites[ns-1].Y < q.vertex[nv-1].EventPoint.Y {
		e := q.vertex[nv-1]
		q.vertex = q.vertex[:nv-1]
		return nil, e
	}
	s := q.sites[ns-1]
	q.sites = q.sites[:ns-1]
	return s, nil
}

func (q *eventQueue) empty() bool {
	return len(q.sites) == 0 && len(q.vertex) == 0
}
