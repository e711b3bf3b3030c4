package starfield

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window and game loop created by [Run].
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window dimensions in pixels.
	Width, Height int
	// Field configures the star pool. The zero value selects defaults.
	Field FieldConfig
	// Background tints the per-frame clear.
	Background Color
	// OnPick is invoked when a click lands on an interactive star. The star
	// pointer is valid for the duration of the callback only.
	OnPick func(*Star)
	// OnTick, if set, runs once per update after the field advances, with
	// the tick delta in seconds. Hosts hang collaborator updates off it.
	OnTick func(dt float64)
	// OnDraw, if set, runs once per frame after the starfield renders,
	// with the canvas still targeted at the screen. Hosts draw overlays
	// here.
	OnDraw func(*Canvas, *ebiten.Image)
	// WarpKey triggers warp mode when just pressed. Default ebiten.KeyW.
	WarpKey ebiten.Key
	// Mute disables the synthesized warp sound.
	Mute bool
	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool
}

// Run opens a window and drives the starfield until the window closes:
// one Advance per update tick, one Draw per frame, clicks routed through the
// hit-tester, and the warp key wired to [Field.ActivateWarp]. It blocks
// until the game loop ends and returns its error.
func Run(cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.WarpKey == 0 {
		cfg.WarpKey = ebiten.KeyW
	}

	g := &game{
		cfg:    cfg,
		field:  NewField(cfg.Field, float64(cfg.Width), float64(cfg.Height)),
		canvas: NewCanvas(),
		hit:    NewHitTester(cfg.Width, cfg.Height),
		w:      cfg.Width,
		h:      cfg.Height,
	}
	g.renderer = NewRenderer(g.canvas)
	g.renderer.Background = cfg.Background
	if !cfg.Mute {
		g.sound = NewWarpSound(0.6)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// game adapts the starfield pieces to the ebiten.Game loop.
type game struct {
	cfg      RunConfig
	field    *Field
	renderer *Renderer
	canvas   *Canvas
	hit      *HitTester
	sound    *WarpSound
	w, h     int
}

// Update runs one tick: input first, so picking reads the snapshot between
// ticks, then the field advance.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(g.cfg.WarpKey) {
		g.field.ActivateWarp()
		if g.sound != nil {
			g.sound.Play()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if s := g.hit.Pick(g.field.Stars(), float64(mx), float64(my)); s != nil && g.cfg.OnPick != nil {
			g.cfg.OnPick(s)
		}
	}

	g.field.Advance()
	if g.cfg.OnTick != nil {
		g.cfg.OnTick(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

// Draw renders the frame and any host overlay.
func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.SetTarget(screen)
	g.renderer.Draw(g.field)
	if g.cfg.OnDraw != nil {
		g.cfg.OnDraw(g.canvas, screen)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout tracks window resizes: only the spawn extent and the cached
// viewport center change; star state carries on from its current depth.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w = outsideWidth
		g.h = outsideHeight
		g.field.Resize(float64(outsideWidth), float64(outsideHeight))
		g.hit.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
