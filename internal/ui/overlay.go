//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"conway/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type chunkProvider interface {
	ChunkRects() []image.Rectangle
}

// Overlay draws optional debugging visuals on top of the base simulation:
// the worker chunk partition (key 1) and a status line (key 2).
type Overlay struct {
	sim        core.Sim
	scale      int
	showChunks bool
	showStatus bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showStatus: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showChunks = !o.showChunks
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showStatus = !o.showStatus
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showChunks {
		if provider, ok := o.sim.(chunkProvider); ok {
			o.drawChunks(screen, provider.ChunkRects(), scale)
		}
	}
	if o.showStatus {
		status := fmt.Sprintf("gen %d", o.sim.Generation())
		if paused {
			status += " [paused]"
		}
		text.Draw(screen, status, basicfont.Face7x13, 4, 14, color.RGBA{R: 80, G: 220, B: 120, A: 255})
	}
}

func (o *Overlay) drawChunks(screen *ebiten.Image, rects []image.Rectangle, scale int) {
	col := color.RGBA{R: 255, G: 120, B: 40, A: 160}
	s := float64(scale)
	for _, r := range rects {
		if r.Empty() {
			continue
		}
		x0, y0 := float64(r.Min.X)*s, float64(r.Min.Y)*s
		x1, y1 := float64(r.Max.X)*s, float64(r.Max.Y)*s
		o.drawLine(screen, x0, y0, x1, y0, 1, col)
		o.drawLine(screen, x0, y1, x1, y1, 1, col)
		o.drawLine(screen, x0, y0, x0, y1, 1, col)
		o.drawLine(screen, x1, y0, x1, y1, 1, col)
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
