// Package hsl converts hues on the HSL color wheel to normalized RGBA.
//
// Conversion goes through 8-bit channels, so every channel of a returned
// RGBA is a multiple of 1/255.
package hsl

import (
	"image/color"
	"math"
)

const (
	// Saturation and Lightness used by HueToRGBA: a fully saturated,
	// mid-lightness color.
	Saturation = 1.0
	Lightness  = 0.5
)

// RGBA is a color with channels normalized to [0,1].
type RGBA struct {
	R, G, B, A float32
}

// HueToRGBA returns the opaque color at hue degrees on the HSL wheel, with
// Saturation and Lightness fixed. Hues outside [0,360) wrap.
func HueToRGBA(hue float64) RGBA {
	r, g, b := HSLToRGB8(hue, Saturation, Lightness)
	return RGBA{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// Complement returns the hue opposite to hue on the wheel.
func Complement(hue float64) float64 {
	return math.Mod(hue+180.0, 360.0)
}

// HSLToRGB8 converts h (degrees, any range), s and l (0..1) to 8-bit RGB.
func HSLToRGB8(h, s, l float64) (r, g, b uint8) {
	if s == 0 {
		v := toByte(l)
		return v, v, v
	}

	t := wrapDegrees(h) / 360.0

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return toByte(hueToChannel(p, q, t+1.0/3.0)),
		toByte(hueToChannel(p, q, t)),
		toByte(hueToChannel(p, q, t-1.0/3.0))
}

// RGB8 returns the color as 8-bit channels, ignoring alpha.
func (c RGBA) RGB8() (r, g, b uint8) {
	return unitToByte(c.R), unitToByte(c.G), unitToByte(c.B)
}

// Color returns c as an image/color value.
func (c RGBA) Color() color.RGBA {
	r, g, b := c.RGB8()
	return color.RGBA{R: r, G: g, B: b, A: unitToByte(c.A)}
}

func wrapDegrees(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	return h
}

// hueToChannel evaluates one channel's piecewise-linear ramp at t (turns).
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

func toByte(v float64) uint8 {
	v = math.Round(v * 255.0)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func unitToByte(v float32) uint8 {
	return toByte(float64(v))
}
