package starfield

import (
	"math"
	"math/rand/v2"
	"testing"
)

// newTestRand returns a deterministic random source for reproducible rolls.
func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestRangeRandom(t *testing.T) {
	rng := newTestRand()
	r := Range{10, 20}
	for i := 0; i < 100; i++ {
		v := r.Random(rng)
		if v < 10 || v > 20 {
			t.Fatalf("Random() = %f, outside [10, 20]", v)
		}
	}

	// Equal min/max.
	r2 := Range{5, 5}
	for i := 0; i < 10; i++ {
		if r2.Random(rng) != 5 {
			t.Fatal("Random() with Min==Max should return Min")
		}
	}
}

func TestLerp(t *testing.T) {
	assertNear(t, "lerp(0,10,0)", lerp(0, 10, 0), 0)
	assertNear(t, "lerp(0,10,0.5)", lerp(0, 10, 0.5), 5)
	assertNear(t, "lerp(0,10,1)", lerp(0, 10, 1), 10)
}

func TestClamp(t *testing.T) {
	assertNear(t, "clamp below", clamp(-1, 0, 4), 0)
	assertNear(t, "clamp inside", clamp(2, 0, 4), 2)
	assertNear(t, "clamp above", clamp(9, 0, 4), 4)
}

func TestColorToNRGBA(t *testing.T) {
	c := Color{1, 0, 0.5, 1}.toNRGBA()
	if c.R != 255 || c.G != 0 || c.A != 255 {
		t.Errorf("toNRGBA = %+v", c)
	}
	if c.B != 127 {
		t.Errorf("B = %d, want 127", c.B)
	}

	// Components outside [0, 1] clamp instead of wrapping.
	over := Color{2, -1, 0, 3}.toNRGBA()
	if over.R != 255 || over.G != 0 || over.A != 255 {
		t.Errorf("clamped toNRGBA = %+v", over)
	}
}

func TestWithAlpha(t *testing.T) {
	c := ColorWhite.withAlpha(0.25)
	if c.A != 0.25 || c.R != 1 {
		t.Errorf("withAlpha = %+v", c)
	}
}
