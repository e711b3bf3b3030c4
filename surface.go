package starfield

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the 2D immediate-mode drawing contract the renderer requires:
// filled rectangles, filled circles, stroked line segments, radial gradient
// fills, and a viewport size query. [Canvas] is the production Ebitengine
// implementation; tests substitute a recording fake.
type Surface interface {
	// Size returns the current viewport dimensions in pixels.
	Size() (w, h int)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)
	// FillCircle fills a circle centered at (x, y).
	FillCircle(x, y, r float64, c Color)
	// StrokeLine strokes a line segment with the given width.
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	// FillRadialGradient fills a circle centered at (x, y) with a soft
	// three-stop gradient: full color at the center fading to transparent
	// at radius r.
	FillRadialGradient(x, y, r float64, c Color)
}

// Canvas is the Ebitengine-backed Surface. It draws onto a target image set
// per frame via SetTarget, and caches procedurally generated gradient
// sprites keyed by quantized radius.
type Canvas struct {
	target    *ebiten.Image
	haloCache map[int]*ebiten.Image
	imgOp     ebiten.DrawImageOptions
}

// NewCanvas creates a canvas with no target. Call SetTarget with the frame's
// screen image before drawing.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// SetTarget points the canvas at the image subsequent draws render into.
// Call once per frame with the screen handed to ebiten.Game.Draw.
func (c *Canvas) SetTarget(img *ebiten.Image) {
	c.target = img
}

// Size returns the target's dimensions, or (0, 0) when no target is set.
func (c *Canvas) Size() (int, int) {
	if c.target == nil {
		return 0, 0
	}
	b := c.target.Bounds()
	return b.Dx(), b.Dy()
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if c.target == nil {
		return
	}
	vector.DrawFilledRect(c.target, float32(x), float32(y), float32(w), float32(h), col.toNRGBA(), false)
}

// FillCircle fills a circle centered at (x, y).
func (c *Canvas) FillCircle(x, y, r float64, col Color) {
	if c.target == nil {
		return
	}
	vector.DrawFilledCircle(c.target, float32(x), float32(y), float32(r), col.toNRGBA(), true)
}

// StrokeLine strokes a line segment.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col Color) {
	if c.target == nil {
		return
	}
	vector.StrokeLine(c.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), col.toNRGBA(), true)
}

// FillRadialGradient draws a cached gradient sprite scaled to radius r and
// tinted with col. The sprite is white with premultiplied alpha, so tinting
// reduces to a ColorScale multiply.
func (c *Canvas) FillRadialGradient(x, y, r float64, col Color) {
	if c.target == nil || r <= 0 {
		return
	}
	img := c.getHalo(r)
	sz := float64(img.Bounds().Dx())

	op := &c.imgOp
	op.GeoM.Reset()
	d := r * 2
	op.GeoM.Scale(d/sz, d/sz)
	op.GeoM.Translate(x-r, y-r)
	a := float32(clamp01(col.A))
	op.ColorScale.Reset()
	op.ColorScale.Scale(float32(col.R)*a, float32(col.G)*a, float32(col.B)*a, a)
	c.target.DrawImage(img, op)
}

// getHalo returns a cached gradient sprite for the given radius, generating
// one if needed. Radius is quantized to the nearest integer to avoid
// separate textures for tiny differences.
func (c *Canvas) getHalo(radius float64) *ebiten.Image {
	key := int(math.Ceil(radius))
	if key < 1 {
		key = 1
	}
	if c.haloCache == nil {
		c.haloCache = make(map[int]*ebiten.Image)
	}
	if img, ok := c.haloCache[key]; ok {
		return img
	}
	img := generateHalo(float64(key))
	c.haloCache[key] = img
	return img
}

// Dispose releases the cached gradient sprites.
func (c *Canvas) Dispose() {
	for _, img := range c.haloCache {
		img.Deallocate()
	}
	c.haloCache = nil
	c.target = nil
}

// generateHalo creates a white radial gradient image with the given radius
// and premultiplied alpha, using the three-stop profile haloProfile.
func generateHalo(radius float64) *ebiten.Image {
	size := int(math.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	pix := make([]byte, size*size*4)

	cx, cy := radius, radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := math.Sqrt(dx*dx+dy*dy) / radius

			a := uint8(haloProfile(dist) * 255)
			off := (y*size + x) * 4
			pix[off+0] = a // premultiplied white
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	img.WritePixels(pix)
	return img
}

// haloProfile is the three-stop alpha ramp of the halo gradient: opaque at
// the center, 40% at the 30% stop, transparent at the rim, with linear
// interpolation between stops.
func haloProfile(t float64) float64 {
	switch {
	case t <= 0:
		return 1
	case t < 0.3:
		return lerp(1, 0.4, t/0.3)
	case t < 1:
		return lerp(0.4, 0, (t-0.3)/0.7)
	default:
		return 0
	}
}
