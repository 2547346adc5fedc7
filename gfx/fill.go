package gfx

import (
	"image/color"
	"math"
)

// Rect is an axis-aligned rectangle in local (pre-transform) space.
type Rect struct {
	X, Y, W, H float64
}

// Square returns a size×size rectangle with its top-left corner at (x, y).
func Square(x, y, size float64) Rect {
	return Rect{X: x, Y: y, W: size, H: size}
}

// FillRect fills r mapped through m. A pixel is covered when its center lies
// inside the transformed quad.
func FillRect(t Target, r Rect, m Affine, c color.RGBA) {
	if t == nil || r.W <= 0 || r.H <= 0 {
		return
	}
	var q [4][2]float64
	q[0][0], q[0][1] = m.Apply(r.X, r.Y)
	q[1][0], q[1][1] = m.Apply(r.X+r.W, r.Y)
	q[2][0], q[2][1] = m.Apply(r.X+r.W, r.Y+r.H)
	q[3][0], q[3][1] = m.Apply(r.X, r.Y+r.H)
	fillConvexQuad(t, q, c)
}

func fillConvexQuad(t Target, q [4][2]float64, c color.RGBA) {
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}

	minX, maxX := q[0][0], q[0][0]
	minY, maxY := q[0][1], q[0][1]
	for _, p := range q[1:] {
		minX = math.Min(minX, p[0])
		maxX = math.Max(maxX, p[0])
		minY = math.Min(minY, p[1])
		maxY = math.Max(maxY, p[1])
	}

	x0 := clampInt(int(math.Floor(minX)), 0, w-1)
	x1 := clampInt(int(math.Ceil(maxX)), 0, w-1)
	y0 := clampInt(int(math.Floor(minY)), 0, h-1)
	y1 := clampInt(int(math.Ceil(maxY)), 0, h-1)
	if maxX < 0 || maxY < 0 || minX >= float64(w) || minY >= float64(h) {
		return
	}

	for y := y0; y <= y1; y++ {
		py := float64(y) + 0.5
		for x := x0; x <= x1; x++ {
			px := float64(x) + 0.5
			if insideConvex(q, px, py) {
				t.SetPixel(x, y, c)
			}
		}
	}
}

// insideConvex accepts either winding: all edge functions share a sign.
func insideConvex(q [4][2]float64, px, py float64) bool {
	var pos, neg bool
	for i := range q {
		a := q[i]
		b := q[(i+1)%len(q)]
		e := edgeFn(a[0], a[1], b[0], b[1], px, py)
		if e > 0 {
			pos = true
		} else if e < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

func edgeFn(x0, y0, x1, y1, x, y float64) float64 {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
