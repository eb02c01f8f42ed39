package render

import (
	"fmt"
	"image/color"

	"conway/internal/core"
)

// RGBA converts c into the 4-byte non-premultiplied-alpha form written into
// pixel buffers.
func RGBA(c color.Color) [4]byte {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [4]byte{n.R, n.G, n.B, n.A}
}

// BufferSize returns the byte length of an RGBA buffer for a w*h grid.
func BufferSize(w, h int) int { return w * h * 4 }

// FillCells writes on for every live cell of g and off for every dead one,
// 4 bytes per cell in row-major order. buf must be exactly w*h*4 bytes.
func FillCells(buf []byte, g core.Grid, on, off [4]byte) error {
	w, h := g.Size()
	if want := BufferSize(w, h); len(buf) != want {
		return fmt.Errorf("%w: got %d bytes, want %d for %dx%d", core.ErrBufferSize, len(buf), want, w, h)
	}
	i := 0
	for c := range g.All() {
		if c.State == core.Alive {
			copy(buf[i:i+4], on[:])
		} else {
			copy(buf[i:i+4], off[:])
		}
		i += 4
	}
	return nil
}
