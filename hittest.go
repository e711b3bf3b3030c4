package starfield

import "math"

const (
	// hitMaxDepth excludes far stars from picking: beyond this depth their
	// projections are too small to hit reliably.
	hitMaxDepth = 1000.0
	// hitRadius is the pick threshold in screen pixels.
	hitRadius = 50.0
)

// HitTester maps a 2D pointer coordinate back to the best-matching
// interactive star, using the identical projection law the renderer draws
// with. It holds only the viewport center, so resizing invalidates nothing
// but that.
type HitTester struct {
	cx, cy float64
}

// NewHitTester creates a hit-tester for a (w x h) viewport.
func NewHitTester(w, h int) *HitTester {
	t := &HitTester{}
	t.Resize(w, h)
	return t
}

// Resize updates the cached viewport center.
func (t *HitTester) Resize(w, h int) {
	t.cx = float64(w) / 2
	t.cy = float64(h) / 2
}

// Pick returns the interactive star whose projection is nearest to (x, y)
// within the pick threshold, or nil if none qualifies. Only stars with
// HasContent set and depth at most 1000 are candidates. Equal distances are
// broken by field iteration order: the first encountered wins.
// Out-of-viewport coordinates simply match nothing.
//
// The returned pointer aliases the field's pool; use it within the event
// that produced it and do not retain it across ticks.
func (t *HitTester) Pick(stars []Star, x, y float64) *Star {
	var best *Star
	bestDist := hitRadius
	for i := range stars {
		s := &stars[i]
		if !s.HasContent || s.Depth > hitMaxDepth {
			continue
		}
		sx, sy := Project(s.Pos, s.Depth, t.cx, t.cy)
		d := math.Hypot(x-sx, y-sy)
		if d < bestDist {
			bestDist = d
			best = s
		}
	}
	return best
}
