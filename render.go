package starfield

import "math"

const (
	// warpClearAlpha is the translucent clear used while warp is active so
	// previous frames bleed through as motion trails.
	warpClearAlpha = 0.3
	// haloScaleGate draws a halo around any star whose projection scale
	// exceeds it, pulsing or not — near stars glow.
	haloScaleGate = 1.5
	// haloSizeFactor is the halo radius as a multiple of the drawn size.
	haloSizeFactor = 4.0
	// trailDepthLimit gates warp trails: only stars nearer than this streak.
	trailDepthLimit = 1500.0
	// trailLookahead is how many speed-multiples farther away the trail's
	// tail end is projected from.
	trailLookahead = 5.0
	// trailMaxLen caps trail length in pixels.
	trailMaxLen = 50.0
)

// renderEntry pairs a star index with its depth for the per-frame sort.
type renderEntry struct {
	index int
	depth float64
}

// Renderer produces the visible frame from current field state: it projects
// every star, re-sorts far-to-near, and composites back-to-front with alpha
// and size falloff (painter's algorithm, no z-buffer). All derived visual
// attributes are recomputed every frame; nothing is cached between frames.
type Renderer struct {
	surface Surface

	// Background tints the per-frame clear. Alpha is ignored; the clear's
	// alpha is decided by warp state.
	Background Color

	entries []renderEntry
	sortBuf []renderEntry
}

// NewRenderer creates a renderer drawing onto the given surface.
// A nil surface is a host wiring bug and panics immediately rather than
// failing on the first frame.
func NewRenderer(s Surface) *Renderer {
	if s == nil {
		panic("starfield: NewRenderer called with nil Surface")
	}
	return &Renderer{surface: s}
}

// Draw renders one frame of the field. A zero-sized surface or an empty
// field produces an empty frame, not an error.
func (r *Renderer) Draw(f *Field) {
	w, h := r.surface.Size()
	if w <= 0 || h <= 0 {
		return
	}
	cx := float64(w) / 2
	cy := float64(h) / 2

	warp := f.Warp()
	speed := f.Speed()

	clearAlpha := 1.0
	if warp {
		clearAlpha = warpClearAlpha
	}
	r.surface.FillRect(0, 0, float64(w), float64(h), r.Background.withAlpha(clearAlpha))

	stars := f.Stars()
	r.sortByDepth(stars)

	for _, e := range r.entries {
		s := &stars[e.index]
		scale := DepthScale(s.Depth)
		sx := cx + s.Pos.X*scale
		sy := cy + s.Pos.Y*scale

		size := screenSize(s.Size, scale)
		alpha := depthAlpha(s.Depth)
		if s.Twinkle {
			alpha *= 0.7 + 0.3*math.Sin(s.TwinklePhase)
		}
		if s.Pulsing {
			boost := 1 + 0.5*math.Sin(s.PulsePhase)
			size *= boost
			alpha = clamp01(alpha * boost)
		}
		if alpha <= 0 {
			continue
		}

		if warp && s.Depth < trailDepthLimit {
			r.drawTrail(s, sx, sy, cx, cy, speed, size, alpha)
		}
		if s.Pulsing || scale > haloScaleGate {
			r.surface.FillRadialGradient(sx, sy, size*haloSizeFactor, s.Color.withAlpha(alpha))
		}
		r.surface.FillCircle(sx, sy, size, s.Color.withAlpha(alpha))
	}
}

// drawTrail strokes a streak from the star's screen position toward where it
// would project trailLookahead speed-multiples farther away. Length is
// proportional to proximity and capped at trailMaxLen pixels.
func (r *Renderer) drawTrail(s *Star, sx, sy, cx, cy, speed, size, alpha float64) {
	tx, ty := Project(s.Pos, s.Depth+speed*trailLookahead, cx, cy)
	dx := tx - sx
	dy := ty - sy
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	maxLen := trailMaxLen * (trailDepthLimit - s.Depth) / trailDepthLimit
	if dist > maxLen {
		k := maxLen / dist
		tx = sx + dx*k
		ty = sy + dy*k
	}
	r.surface.StrokeLine(sx, sy, tx, ty, size, s.Color.withAlpha(alpha*0.6))
}

// sortByDepth rebuilds r.entries sorted far-to-near. Depth is the sole key;
// ties break by original index so visually adjacent stars never flicker
// order between frames. Zero allocations once the buffers reach their
// high-water mark.
func (r *Renderer) sortByDepth(stars []Star) {
	if cap(r.entries) < len(stars) {
		r.entries = make([]renderEntry, len(stars))
	}
	r.entries = r.entries[:len(stars)]
	for i := range stars {
		r.entries[i] = renderEntry{index: i, depth: stars[i].Depth}
	}
	r.mergeSort()
}

// entryLessOrEqual returns true if a should sort before or at the same
// position as b: deeper first, ties by index. Using <= on the tie-break
// keeps the sort stable.
func entryLessOrEqual(a, b renderEntry) bool {
	if a.depth != b.depth {
		return a.depth > b.depth
	}
	return a.index <= b.index
}

// mergeSort sorts r.entries in-place using r.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches
// high-water mark. This sort is the dominant per-frame cost.
func (r *Renderer) mergeSort() {
	n := len(r.entries)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]renderEntry, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a := r.entries
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := lo + width
			if mid > n {
				mid = n
			}
			hi := lo + 2*width
			if hi > n {
				hi = n
			}
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(r.entries, r.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []renderEntry, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if entryLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
