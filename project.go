package starfield

// projectionK is the pinhole-camera constant of the perspective divide.
const projectionK = 1000.0

// DepthScale returns the projection scale factor for a depth: K/(depth+1).
// Depth 0 is the near plane (star at the viewer), MaxDepth the far plane.
func DepthScale(depth float64) float64 {
	return projectionK / (depth + 1)
}

// Project maps a star's plane position and depth to screen coordinates
// around the given center. This is the single projection law shared by the
// renderer and the hit-tester; both must stay in exact agreement for
// hit-testing to land on what was drawn.
func Project(pos Vec2, depth, centerX, centerY float64) (sx, sy float64) {
	scale := DepthScale(depth)
	return centerX + pos.X*scale, centerY + pos.Y*scale
}

// screenSize derives the drawn radius from a star's base size and projection
// scale, clamped so near stars don't bloom into discs and far stars stay
// sub-pixel rather than vanishing.
func screenSize(size, scale float64) float64 {
	return clamp(size*scale*0.5, 0.1, 4.0)
}

// depthAlpha derives the base opacity from depth: stars fade in as they
// approach from the far plane and are fully opaque from mid-range inward.
func depthAlpha(depth float64) float64 {
	return clamp01((MaxDepth - depth) / 1000)
}
