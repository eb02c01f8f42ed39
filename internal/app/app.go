//go:build ebiten

package app

import (
	"image/color"
	"time"

	"conway/internal/core"
	"conway/internal/render"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	clock   *core.Clock

	onColor  [4]byte
	offColor [4]byte

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. When showHUD is set a
// parameter panel is drawn to the right of the grid.
func New(sim core.Sim, scale int, seed int64, showHUD bool) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, scale),
		clock:    core.NewClock(),
		onColor:  render.RGBA(color.White),
		offColor: render.RGBA(color.Black),
		scale:    scale,
		seed:     seed,
	}
	if showHUD {
		g.hud = ui.NewHUD(sim, hudWidth)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation by the wall
// time elapsed since the previous frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	if g.hud != nil {
		g.hud.Update(g.gridWidth())
	}

	elapsed := g.clock.Lap()
	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused:
		g.sim.Advance(elapsed)
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.paused)
	if g.hud != nil {
		g.hud.Draw(screen, g.gridWidth(), g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	w := g.gridWidth()
	if g.hud != nil {
		w += hudWidth
	}
	return w, s.H * g.scale
}

func (g *Game) gridWidth() int { return g.sim.Size().W * g.scale }

// WindowSize returns the initial window size in device-independent pixels.
func (g *Game) WindowSize() (int, int) { return g.Layout(0, 0) }
