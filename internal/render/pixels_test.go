package render

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"conway/internal/core"
)

func TestRGBA(t *testing.T) {
	cases := []struct {
		in   color.Color
		want [4]byte
	}{
		{color.White, [4]byte{0xff, 0xff, 0xff, 0xff}},
		{color.Black, [4]byte{0, 0, 0, 0xff}},
		{color.Transparent, [4]byte{0, 0, 0, 0}},
		{color.RGBA{R: 10, G: 20, B: 30, A: 255}, [4]byte{10, 20, 30, 255}},
	}
	for _, tc := range cases {
		if got := RGBA(tc.in); got != tc.want {
			t.Fatalf("RGBA(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFillCells(t *testing.T) {
	g := core.NewArrayGrid(3, 2)
	g.Set(1, 0, core.Alive)
	g.Set(2, 1, core.Alive)
	on := [4]byte{1, 2, 3, 4}
	off := [4]byte{9, 9, 9, 9}
	buf := make([]byte, BufferSize(3, 2))
	if err := FillCells(buf, g, on, off); err != nil {
		t.Fatalf("FillCells: %v", err)
	}
	for i := 0; i < 6; i++ {
		want := off
		if i == 1 || i == 5 {
			want = on
		}
		if !bytes.Equal(buf[i*4:i*4+4], want[:]) {
			t.Fatalf("pixel %d = %v, want %v", i, buf[i*4:i*4+4], want)
		}
	}
}

func TestFillCellsRejectsWrongSize(t *testing.T) {
	g := core.NewPackedGrid(4, 4)
	for _, n := range []int{0, 63, 65} {
		err := FillCells(make([]byte, n), g, [4]byte{}, [4]byte{})
		if !errors.Is(err, core.ErrBufferSize) {
			t.Fatalf("len %d: err = %v, want ErrBufferSize", n, err)
		}
	}
}
