package voronoi

import (
	"math"
	"sort"
)

// Arc is one node of the beachline: a maximal piece of its owner's parabola.
// Arcs form a doubly linked sequence in left-to-right breakpoint order.
type Arc struct {
	owner *ActiveSite
	left  *Arc
	right *Arc
}

// Owner returns the active site whose parabola the arc belongs to.
func (a *Arc) Owner() *ActiveSite { return a.owner }

// Left returns the left neighbor, or nil for the leftmost arc.
func (a *Arc) Left() *Arc { return a.left }

// Right returns the right neighbor, or nil for the rightmost arc.
func (a *Arc) Right() *Arc { return a.right }

// ActiveSite is a site that has entered the beachline, together with the
// set of arcs its parabola currently contributes. The arc set is a relation
// onto the beachline, kept in left-to-right order; it may become empty, but
// the active site itself is never removed.
type ActiveSite struct {
	Site *Site
	arcs []*Arc
}

// Arcs returns the site's beachline arcs in left-to-right order.
func (s *ActiveSite) Arcs() []*Arc { return s.arcs }

// arcOrderKey approximates an arc's position: the x of the right neighbor's
// site, or +Inf for the rightmost arc. A site holding several arcs was
// split by later sites, so the right-neighbor site sits near the breakpoint
// bounding each piece on the right.
func arcOrderKey(a *Arc) float64 {
	if a.right == nil {
		return math.Inf(1)
	}
	return a.right.owner.Site.X
}

func (s *ActiveSite) sortArcs() {
	sort.SliceStable(s.arcs, func(i, j int) bool {
		return arcOrderKey(s.arcs[i]) < arcOrderKey(s.arcs[j])
	})
}

func (s *ActiveSite) addArc(a *Arc) {
	s.arcs = append(s.arcs, a)
	s.sortArcs()
}

func (s *ActiveSite) dropArc(a *Arc) {
	for i, b := range s.arcs {
		if b == a {
			s.arcs = append(s.arcs[:i], s.arcs[i+1:]...)
			return
		}
	}
}

// locateArc finds the arc vertically above x at the current sweepline. The
// owning site is the one whose parabola forms the beachline there, i.e. has
// the lowest finite y at x; sites the sweepline passes through evaluate
// non-finite and are skipped. When every parabola is degenerate (all active
// sites share the sweepline y) the nearest site by x stands in.
func (v *Voronoi) locateArc(x float64) *Arc {
	var best *ActiveSite
	bestY := math.Inf(1)
	for _, s := range v.active {
		if len(s.arcs) == 0 {
			continue
		}
		y := parabolaY(s.Site.Point(), v.sweep, x)
		if !finite(y) {
			continue
		}
		if y < bestY {
			bestY = y
			best = s
		}
	}
	if best == nil {
		best = v.nearestActiveByX(x)
	}
	if best == nil {
		return nil
	}
	if len(best.arcs) == 1 {
		return best.arcs[0]
	}
	// A multi-arc site: the containing piece is the first whose right
	// neighbor belongs to another site lying right of x. No match means the
	// rightmost piece.
	for _, a := range best.arcs {
		if a.right != nil && a.right.owner != best && a.right.owner.Site.X > x {
			return a
		}
	}
	return best.arcs[len(best.arcs)-1]
}

func (v *Voronoi) nearestActiveByX(x float64) *ActiveSite {
	var best *ActiveSite
	bestDist := math.Inf(1)
	for _, s := range v.active {
		if len(s.arcs) == 0 {
			continue
		}
		d := math.Abs(s.Site.X - x)
		if d < bestDist {
			bestDist = d
			best = s
		}
	}
	return best
}

// splitArc replaces old with the triple (leftCopy, middle, rightCopy); the
// two copies keep old's owner. old leaves its owner's arc set and the
// beachline.
func (v *Voronoi) splitArc(old, middle *Arc) {
	owner := old.owner
	leftCopy := &Arc{owner: owner, left: old.left, right: middle}
	rightCopy := &Arc{owner: owner, left: middle, right: old.right}
	middle.left = leftCopy
	middle.right = rightCopy
	if old.left != nil {
		old.left.right = leftCopy
	}
	if old.right != nil {
		old.right.left = rightCopy
	}
	owner.dropArc(old)
	owner.arcs = append(owner.arcs, leftCopy, rightCopy)
	owner.sortArcs()
}

// removeArc unlinks arc from the beachline and its owner's arc set,
// joining its neighbors.
func (v *Voronoi) removeArc(arc *Arc) {
	arc.owner.dropArc(arc)
	if arc.left != nil {
		arc.left.right = arc.right
	}
	if arc.right != nil {
		arc.right.left = arc.left
	}
}

// leftmostArc returns the head of the beachline, or nil before bootstrap.
func (v *Voronoi) leftmostArc() *Arc {
	for _, s := range v.active {
		if len(s.arcs) == 0 {
			continue
		}
		a := s.arcs[0]
		for a.left != nil {
			a = a.left
		}
		return a
	}
	return nil
}

// beachlineSites lists the owning site of each arc, left to right. Used by
// trace hooks and tests.
func (v *Voronoi) beachlineSites() []Point {
	var out []Point
	for a := v.leftmostArc(); a != nil; a = a.right {
		out = append(out, a.owner.Site.Point())
	}
	return out
}
