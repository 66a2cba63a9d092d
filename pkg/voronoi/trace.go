package voronoi

import "go.uber.org/zap"

// Diagnostic identifies a non-fatal condition the engine degrades through.
type Diagnostic int

const (
	// DegenerateCircle: a candidate triple's sites are collinear or
	// coincident; the vertex event is skipped.
	DegenerateCircle Diagnostic = iota
	// StaleVertexEvent: a popped event's sweepline position was already
	// passed; the event is discarded.
	StaleVertexEvent
	// DoubleVertexAssignment: an edge's chosen endpoint slot was already
	// populated; the second write is dropped.
	DoubleVertexAssignment
	// UnboundEdgeMissingBothVertices: an edge reached finalization with no
	// vertices at all.
	UnboundEdgeMissingBothVertices
)

func (d Diagnostic) String() string {
	switch d {
	case DegenerateCircle:
		return "degenerate circle"
	case StaleVertexEvent:
		return "stale vertex event"
	case DoubleVertexAssignment:
		return "double vertex assignment"
	case UnboundEdgeMissingBothVertices:
		return "unbound edge missing both vertices"
	}
	return "unknown"
}

// DiagnosticSink receives non-fatal warnings. There are no retries and no
// recoverable failures: every reported condition has already been degraded
// to a skipped event or an envelope clip.
type DiagnosticSink interface {
	Report(d Diagnostic, at Point)
}

func report(sink DiagnosticSink, d Diagnostic, at Point) {
	if sink != nil {
		sink.Report(d, at)
	}
}

// CountingSink tallies diagnostics by kind.
type CountingSink struct {
	Counts map[Diagnostic]int
}

func NewCountingSink() *CountingSink {
	return &CountingSink{Counts: make(map[Diagnostic]int)}
}

func (s *CountingSink) Report(d Diagnostic, at Point) {
	s.Counts[d]++
}

// Tracer observes the sweep. Every hook is optional; a nil tracer keeps the
// engine silent.
type Tracer interface {
	SiteEvent(site Point, sweep float64)
	VertexEvent(vertex, event Point, sweep float64)
	BeachlineDump(owners []Point)
	EdgeDump(edges []*Edge)
}

// ZapTracer logs every hook through a zap logger.
type ZapTracer struct {
	log *zap.Logger
}

func NewZapTracer(log *zap.Logger) *ZapTracer {
	return &ZapTracer{log: log}
}

func (t *ZapTracer) SiteEvent(site Point, sweep float64) {
	t.log.Info("site event", zap.Any("site", site), zap.Float64("sweep", sweep))
}

func (t *ZapTracer) VertexEvent(vertex, event Point, sweep float64) {
	t.log.Info("vertex event",
		zap.Any("vertex", vertex),
		zap.Any("event", event),
		zap.Float64("sweep", sweep))
}

func (t *ZapTracer) BeachlineDump(owners []Point) {
	t.log.Debug("beachline", zap.Any("arcs", owners))
}

func (t *ZapTracer) EdgeDump(edges []*Edge) {
	for i, e := range edges {
		t.log.Debug("edge",
			zap.Int("i", i),
			zap.Any("left", e.LeftFace.Point()),
			zap.Any("right", e.RightFace.Point()),
			zap.Any("first", e.FirstVertex),
			zap.Any("last", e.LastVertex))
	}
}

// ZapSink logs diagnostics as warnings.
type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

func (s *ZapSink) Report(d Diagnostic, at Point) {
	s.log.Warn("diagnostic", zap.String("kind", d.String()), zap.Any("at", at))
}
