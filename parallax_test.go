package starfield

import (
	"math"
	"testing"
)

func TestParallaxDefaults(t *testing.T) {
	l := NewParallaxLayer(ParallaxConfig{Rand: newTestRand()}, 320, 200)
	if l.Count() != 120 {
		t.Errorf("Count = %d, want default 120", l.Count())
	}
	for i := range l.stars {
		s := &l.stars[i]
		if s.pos.X < 0 || s.pos.X >= 320 || s.pos.Y < 0 || s.pos.Y >= 200 {
			t.Fatalf("star %d spawned at (%v, %v), outside viewport", i, s.pos.X, s.pos.Y)
		}
		if s.speed < 0.2 || s.speed > 1 {
			t.Fatalf("star %d speed = %v, outside [0.2, 1]", i, s.speed)
		}
		if s.size < 0.5 || s.size > 1.5 {
			t.Fatalf("star %d size = %v, outside [0.5, 1.5]", i, s.size)
		}
	}
}

func TestParallaxZeroCount(t *testing.T) {
	l := NewParallaxLayer(ParallaxConfig{Count: -1, Rand: newTestRand()}, 320, 200)
	if l.Count() != 0 {
		t.Errorf("Count = %d, want 0", l.Count())
	}
	l.Advance(1.0) // must not panic
}

func TestParallaxDriftScalesPerStar(t *testing.T) {
	l := NewParallaxLayer(ParallaxConfig{Count: 1, Rand: newTestRand()}, 1000, 1000)
	s := &l.stars[0]
	s.pos = Vec2{X: 100, Y: 100}
	s.speed = 0.5

	l.SetDrift(Vec2{X: 10, Y: -4})
	l.Advance(2.0)

	assertNear(t, "x after drift", s.pos.X, 100+10*0.5*2)
	assertNear(t, "y after drift", s.pos.Y, 100-4*0.5*2)
}

func TestParallaxWrapsAroundEdges(t *testing.T) {
	l := NewParallaxLayer(ParallaxConfig{Count: 1, Rand: newTestRand()}, 100, 80)
	s := &l.stars[0]
	s.speed = 1

	s.pos = Vec2{X: 99, Y: 40}
	l.SetDrift(Vec2{X: 5, Y: 0})
	l.Advance(1.0)
	assertNear(t, "wrap right to left", s.pos.X, 4)

	s.pos = Vec2{X: 2, Y: 40}
	l.SetDrift(Vec2{X: -5, Y: 0})
	l.Advance(1.0)
	assertNear(t, "wrap left to right", s.pos.X, 97)

	s.pos = Vec2{X: 50, Y: 79}
	l.SetDrift(Vec2{X: 0, Y: 5})
	l.Advance(1.0)
	assertNear(t, "wrap bottom to top", s.pos.Y, 4)
}

func TestParallaxTwinkleAlphaBounds(t *testing.T) {
	l := NewParallaxLayer(ParallaxConfig{Count: 30, Rand: newTestRand()}, 320, 200)
	rec := &recordingSurface{width: 320, height: 200}

	for step := 0; step < 60; step++ {
		l.Advance(1.0 / 60.0)
		rec.ops = rec.ops[:0]
		l.Draw(rec)

		circles := rec.opsOfKind("circle")
		if len(circles) != 30 {
			t.Fatalf("drew %d circles, want 30", len(circles))
		}
		for _, op := range circles {
			if op.color.A < 0.2-1e-9 || op.color.A > 1+1e-9 {
				t.Fatalf("twinkle alpha = %v, outside [0.2, 1]", op.color.A)
			}
		}
	}
}

func TestParallaxTwinkleOscillates(t *testing.T) {
	l := NewParallaxLayer(ParallaxConfig{Count: 1, Rand: newTestRand()}, 320, 200)
	s := &l.stars[0]
	s.twinklePhase = 0
	s.twinkleSpeed = 1

	rec := &recordingSurface{width: 320, height: 200}
	l.Draw(rec)
	assertNear(t, "alpha at phase 0", rec.opsOfKind("circle")[0].color.A, 0.6)

	s.twinklePhase = math.Pi / 2
	rec.ops = rec.ops[:0]
	l.Draw(rec)
	assertNear(t, "alpha at peak", rec.opsOfKind("circle")[0].color.A, 1.0)

	s.twinklePhase = -math.Pi / 2
	rec.ops = rec.ops[:0]
	l.Draw(rec)
	assertNear(t, "alpha at trough", rec.opsOfKind("circle")[0].color.A, 0.2)
}

func TestParallaxResize(t *testing.T) {
	l := NewParallaxLayer(ParallaxConfig{Count: 1, Rand: newTestRand()}, 200, 200)
	s := &l.stars[0]
	s.pos = Vec2{X: 150, Y: 150}
	s.speed = 1

	l.Resize(100, 100)
	l.SetDrift(Vec2{X: 1, Y: 1})
	l.Advance(1.0)

	if s.pos.X >= 100 || s.pos.Y >= 100 {
		t.Errorf("star at (%v, %v) did not wrap into the new bounds", s.pos.X, s.pos.Y)
	}
}

func BenchmarkParallaxAdvance_120(b *testing.B) {
	l := NewParallaxLayer(ParallaxConfig{Rand: newTestRand()}, 1920, 1080)
	l.SetDrift(Vec2{X: 8, Y: 2})
	for b.Loop() {
		l.Advance(1.0 / 60.0)
	}
}
