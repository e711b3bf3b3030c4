package starfield

import (
	"math"
	"math/rand/v2"
	"time"
)

// ParallaxConfig controls the secondary 2D star layer used as the quote
// backdrop. Zero values select the defaults noted on each field.
type ParallaxConfig struct {
	// Count is the number of backdrop stars. Default 120.
	Count int
	// Speed is the range of per-star drift multipliers, giving the layer
	// its parallax: faster stars read as nearer. Default [0.2, 1].
	Speed Range
	// Size is the range of star radii in pixels. Default [0.5, 1.5].
	Size Range
	// TwinkleSpeed is the range of twinkle phase speeds per second.
	// Default [1, 3].
	TwinkleSpeed Range
	// Rand is the random source; nil selects a time-seeded PCG.
	Rand *rand.Rand
}

// parallaxStar is one backdrop star. Unlike the 3D field there is no depth
// axis: the speed multiplier alone fakes distance.
type parallaxStar struct {
	pos          Vec2
	speed        float64
	size         float64
	twinklePhase float64
	twinkleSpeed float64
}

// ParallaxLayer is the simpler 2D companion to Field: stars drift across the
// viewport with per-star speed, wrap around the edges, and twinkle
// sinusoidally. It has no projection and no hit-testing.
type ParallaxLayer struct {
	cfg   ParallaxConfig
	rng   *rand.Rand
	stars []parallaxStar
	w, h  float64
	drift Vec2
}

// NewParallaxLayer creates a layer covering a (w x h) viewport.
func NewParallaxLayer(cfg ParallaxConfig, w, h float64) *ParallaxLayer {
	if cfg.Count == 0 {
		cfg.Count = 120
	}
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	if cfg.Speed == (Range{}) {
		cfg.Speed = Range{0.2, 1}
	}
	if cfg.Size == (Range{}) {
		cfg.Size = Range{0.5, 1.5}
	}
	if cfg.TwinkleSpeed == (Range{}) {
		cfg.TwinkleSpeed = Range{1, 3}
	}
	rng := cfg.Rand
	if rng == nil {
		now := time.Now()
		rng = rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.UnixMicro())))
	}

	l := &ParallaxLayer{
		cfg:   cfg,
		rng:   rng,
		stars: make([]parallaxStar, cfg.Count),
		w:     w,
		h:     h,
		drift: Vec2{X: 8, Y: 0},
	}
	for i := range l.stars {
		s := &l.stars[i]
		s.pos = Vec2{X: rng.Float64() * w, Y: rng.Float64() * h}
		s.speed = cfg.Speed.Random(rng)
		s.size = cfg.Size.Random(rng)
		s.twinklePhase = rng.Float64() * 2 * math.Pi
		s.twinkleSpeed = cfg.TwinkleSpeed.Random(rng)
	}
	return l
}

// SetDrift sets the base drift velocity in pixels per second; each star
// scales it by its own speed multiplier.
func (l *ParallaxLayer) SetDrift(v Vec2) {
	l.drift = v
}

// Advance moves and twinkles the layer by dt seconds. Stars leaving the
// viewport wrap to the opposite edge, keeping the layer a torus.
func (l *ParallaxLayer) Advance(dt float64) {
	for i := range l.stars {
		s := &l.stars[i]
		s.pos.X += l.drift.X * s.speed * dt
		s.pos.Y += l.drift.Y * s.speed * dt

		if l.w > 0 {
			if s.pos.X < 0 {
				s.pos.X += l.w
			} else if s.pos.X >= l.w {
				s.pos.X -= l.w
			}
		}
		if l.h > 0 {
			if s.pos.Y < 0 {
				s.pos.Y += l.h
			} else if s.pos.Y >= l.h {
				s.pos.Y -= l.h
			}
		}

		s.twinklePhase += s.twinkleSpeed * dt
	}
}

// Draw paints the layer onto the surface. Brightness oscillates between 20%
// and 100% with each star's twinkle phase.
func (l *ParallaxLayer) Draw(s Surface) {
	for i := range l.stars {
		st := &l.stars[i]
		alpha := 0.6 + 0.4*math.Sin(st.twinklePhase)
		s.FillCircle(st.pos.X, st.pos.Y, st.size, ColorWhite.withAlpha(alpha))
	}
}

// Resize updates the wrap bounds. Star positions are kept; stars outside the
// new bounds wrap back in on the next Advance.
func (l *ParallaxLayer) Resize(w, h float64) {
	l.w = w
	l.h = h
}

// Count returns the number of backdrop stars.
func (l *ParallaxLayer) Count() int {
	return len(l.stars)
}
