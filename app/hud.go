package app

import (
	"fmt"
	"image/color"
	"math"

	"spinsquare/anim"
	"spinsquare/gfx"
	"spinsquare/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// hud prints the animation state in the top-left corner.
type hud struct {
	d          *fbDisplayer
	font       tinyfont.Fonter
	lineHeight int16
}

func newHUD(fb hal.Framebuffer) *hud {
	return &hud{
		d:          &fbDisplayer{fb: fb},
		font:       &proggy.TinySZ8pt7b,
		lineHeight: 10,
	}
}

func (h *hud) draw(s anim.State, c color.RGBA) {
	h.line(0, fmt.Sprintf("hue %5.1f", math.Mod(s.Hue, 360)), c)
	h.line(1, fmt.Sprintf("rot %5.2f", math.Mod(s.Rotation, 2*math.Pi)), c)
}

func (h *hud) line(n int16, s string, c color.RGBA) {
	tinyfont.WriteLine(h.d, h.font, 3, (n+1)*h.lineHeight, s, c)
}

// fbDisplayer lets tinyfont draw straight into an RGB565 framebuffer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	t := gfx.RGB565Target{
		Buf:    d.fb.Buffer(),
		Stride: d.fb.StrideBytes(),
		W:      d.fb.Width(),
		H:      d.fb.Height(),
	}
	t.SetPixel(int(x), int(y), c)
}

func (d *fbDisplayer) Display() error { return nil }
