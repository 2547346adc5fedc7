package gfx

import "image/color"

// Target is a pixel sink. Implementations clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.RGBA)
	Clear(c color.RGBA)
}

// RGB565Target renders into a little-endian RGB565 buffer.
//
// Callers provide the backing buffer and layout; nothing is allocated.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) valid() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Target) Clear(c color.RGBA) {
	if !t.valid() {
		return
	}
	p := PackRGB565(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c color.RGBA) {
	if !t.valid() {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := PackRGB565(c.R, c.G, c.B)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// At reads back the pixel at (x, y). Out-of-bounds reads return transparent black.
func (t *RGB565Target) At(x, y int) color.RGBA {
	if !t.valid() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return color.RGBA{}
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return color.RGBA{}
	}
	r, g, b := UnpackRGB565(uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
