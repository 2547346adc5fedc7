package hal

import (
	"image"
	"sync"

	"spinsquare/gfx"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }
func (f *hostFramebuffer) Present() error      { return nil }

// toRGBA expands the framebuffer into dst, reallocating it when the size
// does not match.
func (f *hostFramebuffer) toRGBA(dst *image.RGBA) *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()

	if dst == nil || dst.Bounds().Dx() != f.width || dst.Bounds().Dy() != f.height {
		dst = image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	}
	for y := 0; y < f.height; y++ {
		src := f.buf[y*f.stride:]
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < f.width; x++ {
			r, g, b := gfx.UnpackRGB565(uint16(src[x*2]) | uint16(src[x*2+1])<<8)
			j := x * 4
			row[j+0] = r
			row[j+1] = g
			row[j+2] = b
			row[j+3] = 0xFF
		}
	}
	return dst
}
