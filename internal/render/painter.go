//go:build ebiten

package render

import (
	"log"

	"conway/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a simulation's pixels into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, BufferSize(w, h))}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws the sim's published generation scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, on, off [4]byte, scale int) {
	if err := sim.Draw(on, off, gp.buf); err != nil {
		log.Printf("render: %v", err)
		return
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
