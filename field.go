package starfield

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// speedSmoothing is the first-order low-pass factor applied per tick, giving
// a smooth warp spin-up/down instead of a step change.
const speedSmoothing = 0.02

// FieldConfig controls how a Field spawns and advances its stars.
// Zero values select the defaults noted on each field.
type FieldConfig struct {
	// StarCount is the fixed pool size. No star is ever added or removed
	// after initialization. Default 400. Zero-star fields are valid and
	// tick as no-ops; use a negative count to request an empty field.
	StarCount int
	// BaseSpeed is the cruising target speed in depth units per tick.
	// Default 2.
	BaseSpeed float64
	// WarpSpeed is the target speed while warp is active. Default 20.
	WarpSpeed float64
	// WarpDuration is how long warp stays active before the timed revert
	// fires. Default 3 seconds.
	WarpDuration time.Duration
	// ContentChance is the probability a spawned star is interactive.
	// Default 0.1.
	ContentChance float64
	// TwinkleChance is the probability a spawned star twinkles. Default 0.6.
	TwinkleChance float64
	// TwinkleSpeed is the range twinkle phase speeds are rolled from.
	// Default [0.01, 0.05].
	TwinkleSpeed Range
	// SizeRange is the range base radii are rolled from. Default [0.5, 2].
	SizeRange Range
	// Rand is the random source for every attribute roll. Supply a seeded
	// source for reproducible fields; nil selects a time-seeded PCG.
	Rand *rand.Rand
}

// Field owns the star pool and the per-tick depth advance. It is the only
// owner of its stars; Renderer and HitTester borrow the slice per call and
// never retain it.
type Field struct {
	cfg   FieldConfig
	rng   *rand.Rand
	stars []Star

	viewW, viewH float64
	current      float64

	// mu guards the warp state, which the timed revert writes from a timer
	// goroutine. Everything else is single-threaded by contract.
	mu     sync.Mutex
	target float64
	warp   bool
	revert *time.Timer
}

// NewField creates a field sized for a (viewW x viewH) viewport with all
// stars spawned. A zero or negative viewport is tolerated: stars spawn at the
// plane origin and spread out on the first resize.
func NewField(cfg FieldConfig, viewW, viewH float64) *Field {
	if cfg.StarCount == 0 {
		cfg.StarCount = 400
	}
	if cfg.StarCount < 0 {
		cfg.StarCount = 0
	}
	if cfg.BaseSpeed == 0 {
		cfg.BaseSpeed = 2
	}
	if cfg.WarpSpeed == 0 {
		cfg.WarpSpeed = 20
	}
	if cfg.WarpDuration == 0 {
		cfg.WarpDuration = 3 * time.Second
	}
	if cfg.ContentChance == 0 {
		cfg.ContentChance = 0.1
	}
	if cfg.TwinkleChance == 0 {
		cfg.TwinkleChance = 0.6
	}
	if cfg.TwinkleSpeed == (Range{}) {
		cfg.TwinkleSpeed = Range{0.01, 0.05}
	}
	if cfg.SizeRange == (Range{}) {
		cfg.SizeRange = Range{0.5, 2}
	}
	rng := cfg.Rand
	if rng == nil {
		now := time.Now()
		rng = rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.UnixMicro())))
	}

	f := &Field{
		cfg:     cfg,
		rng:     rng,
		stars:   make([]Star, cfg.StarCount),
		viewW:   viewW,
		viewH:   viewH,
		current: cfg.BaseSpeed,
		target:  cfg.BaseSpeed,
	}
	for i := range f.stars {
		f.spawn(&f.stars[i])
	}
	return f
}

// Advance runs one simulation tick: the current speed eases toward its
// target, then every star advances and ticks its visual effects. The
// simulation is tick-coupled by contract — speeds are in depth units per
// tick, and the pulse trigger probability is per tick — so Advance assumes
// it is driven once per frame at a fixed rate.
func (f *Field) Advance() {
	f.mu.Lock()
	target := f.target
	f.mu.Unlock()

	f.current += (target - f.current) * speedSmoothing
	for i := range f.stars {
		s := &f.stars[i]
		f.advance(s, f.current)
		f.tickEffects(s)
	}
}

// ActivateWarp raises the target speed to WarpSpeed and schedules the timed
// revert. Calling while warp is already active reschedules the revert
// instead of stacking a second one.
func (f *Field) ActivateWarp() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warp = true
	f.target = f.cfg.WarpSpeed
	if f.revert != nil {
		f.revert.Stop()
	}
	f.revert = time.AfterFunc(f.cfg.WarpDuration, f.revertWarp)
}

// revertWarp is the timed revert. It only flips the warp target; the speed
// itself decays back through the low-pass in Advance.
func (f *Field) revertWarp() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warp = false
	f.target = f.cfg.BaseSpeed
}

// Warp reports whether warp mode is currently active.
func (f *Field) Warp() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.warp
}

// Speed returns the current (smoothed) speed in depth units per tick.
func (f *Field) Speed() float64 {
	return f.current
}

// Stars returns the live star pool for rendering and hit-testing.
// The returned slice MUST NOT be mutated or retained across ticks.
func (f *Field) Stars() []Star {
	return f.stars
}

// Count returns the fixed pool size.
func (f *Field) Count() int {
	return len(f.stars)
}

// Resize updates the viewport extent used when spawning and recycling stars.
// Existing star state is untouched; stars continue from their current depth.
func (f *Field) Resize(viewW, viewH float64) {
	f.viewW = viewW
	f.viewH = viewH
}

// extent is the spawn radius scale: the larger viewport dimension.
func (f *Field) extent() float64 {
	return math.Max(f.viewW, f.viewH)
}
