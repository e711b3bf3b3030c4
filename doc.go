// Package starfield renders a decorative pseudo-3D starfield for [Ebitengine],
// simulating a camera flying through a star cloud.
//
// The core is a perspective-projection particle engine: a [Field] owns a
// fixed pool of stars and advances their depth each tick, recycling stars in
// place as they cross the near plane; a [Renderer] projects them onto a 2D
// [Surface] with depth-sorted back-to-front compositing, alpha and size
// falloff, halos, and warp trails; a [HitTester] maps pointer coordinates
// back to the nearest interactive star using the same projection law.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	err := starfield.Run(starfield.RunConfig{
//		Title: "Starfield", Width: 800, Height: 600,
//		OnPick: func(s *starfield.Star) { fmt.Println("picked a star") },
//	})
//
// For full control, implement [ebiten.Game] yourself and drive the pieces
// directly:
//
//	field := starfield.NewField(starfield.FieldConfig{}, 800, 600)
//	canvas := starfield.NewCanvas()
//	renderer := starfield.NewRenderer(canvas)
//
//	// per Update: field.Advance()
//	// per Draw:   canvas.SetTarget(screen); renderer.Draw(field)
//
// # Warp mode
//
// [Field.ActivateWarp] raises the target speed for a fixed duration and then
// reverts automatically. Speed eases toward its target with a first-order
// low-pass, so warp spins up and down smoothly. While warp is active the
// renderer clears with a translucent fill and strokes motion trails behind
// near stars.
//
// # Collaborators
//
// Beyond the core, the package ships the supporting pieces a screensaver
// host needs: a time-of-day [SceneTable] interpolating named
// scene parameters, a deduplicating [QuotePicker] with optional persistence
// via [gdata], a depthless [ParallaxLayer] with sinusoidal twinkling for the
// quote backdrop, a [QuoteDisplay] fader built on [gween] tweens, and a
// synthesized [WarpSound].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [gdata]: https://github.com/quasilyte/gdata
package starfield
