package starfield

import "math"

// MaxDepth is the far plane: the depth a star is reset to when recycled, and
// the upper bound of every star's depth at all times.
const MaxDepth = 2000.0

const (
	pulseChance = 0.001 // per-tick trigger probability while interactive
	pulseStep   = 0.1   // pulse phase advance per tick
)

// Star is a single star in the field: a camera-centered plane position, a
// depth along the view axis, and the visual attributes the renderer derives
// screen state from. Stars are pool-owned by a [Field] and recycled in place;
// hold references only transiently (e.g. inside an OnPick callback).
type Star struct {
	// Pos is the star's position in the camera-centered plane, unbounded.
	Pos Vec2
	// Depth is the distance from the camera along the view axis, in
	// [0, MaxDepth]. The recycling lifecycle enforces the bounds; nothing
	// else clamps.
	Depth float64
	// Size is the base radius before projection scaling.
	Size float64
	// Color is rolled from Palette at spawn time.
	Color Color
	// Twinkle drives a sinusoidal brightness modulation of the star.
	Twinkle      bool
	TwinklePhase float64
	TwinkleSpeed float64
	// HasContent marks the star as interactive: eligible for hit-testing,
	// pulsing, and special rendering. Re-rolled only when the star recycles,
	// never mid-life.
	HasContent bool
	// Pulsing is a transient radius/alpha amplification that triggers
	// probabilistically while HasContent is set and clears itself after one
	// full phase cycle.
	Pulsing    bool
	PulsePhase float64
}

// advance moves the star toward the camera and recycles it in place once it
// crosses the near plane. Recycling happens lazily here, not in a separate
// sweep.
func (f *Field) advance(s *Star, speed float64) {
	s.Depth -= speed
	if s.Depth <= 0 {
		f.recycle(s)
	}
}

// tickEffects advances the star's twinkle and pulse state by one tick.
// The pulse trigger is a fixed per-tick probability; its rate follows the
// tick rate, not wall time.
func (f *Field) tickEffects(s *Star) {
	if s.Twinkle {
		// Unbounded; sin wraps it implicitly.
		s.TwinklePhase += s.TwinkleSpeed
	}
	if s.HasContent && !s.Pulsing && f.rng.Float64() < pulseChance {
		s.Pulsing = true
		s.PulsePhase = 0
	}
	if s.Pulsing {
		s.PulsePhase += pulseStep
		if s.PulsePhase > 2*math.Pi {
			s.Pulsing = false
			s.PulsePhase = 0
		}
	}
}

// spawn initializes a star from scratch: uniform angle, radius scaled to the
// full viewport extent, random depth, and freshly rolled visual attributes.
func (f *Field) spawn(s *Star) {
	f.placeAt(s, f.extent())
	s.Depth = f.rng.Float64() * MaxDepth
	f.rollAttributes(s)
}

// recycle resets a star that crossed the near plane: depth returns to the far
// plane and the position is redrawn from the same angular distribution,
// scaled to 80% of the viewport extent so recycled stars re-enter slightly
// inside the frame.
func (f *Field) recycle(s *Star) {
	f.placeAt(s, f.extent()*0.8)
	s.Depth = MaxDepth
	f.rollAttributes(s)
}

// placeAt draws a plane position with a uniform angle and a radius in
// [0, maxRadius).
func (f *Field) placeAt(s *Star, maxRadius float64) {
	angle := f.rng.Float64() * 2 * math.Pi
	radius := f.rng.Float64() * maxRadius
	s.Pos.X = math.Cos(angle) * radius
	s.Pos.Y = math.Sin(angle) * radius
}

// rollAttributes re-rolls size, color, twinkle, and content eligibility, and
// clears any pulse in progress.
func (f *Field) rollAttributes(s *Star) {
	s.Size = f.cfg.SizeRange.Random(f.rng)
	s.Color = Palette[f.rng.IntN(len(Palette))]
	s.Twinkle = f.rng.Float64() < f.cfg.TwinkleChance
	s.TwinklePhase = f.rng.Float64() * 2 * math.Pi
	s.TwinkleSpeed = f.cfg.TwinkleSpeed.Random(f.rng)
	s.HasContent = f.rng.Float64() < f.cfg.ContentChance
	s.Pulsing = false
	s.PulsePhase = 0
}
