package gfx

import "math"

// Affine is a 2D affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Mul returns m·n: n is applied first.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// Trans appends a translation.
func (m Affine) Trans(x, y float64) Affine {
	return m.Mul(Affine{A: 1, C: x, E: 1, F: y})
}

// Rot appends a rotation by rad radians, clockwise on screen.
func (m Affine) Rot(rad float64) Affine {
	s, c := math.Sincos(rad)
	return m.Mul(Affine{A: c, B: -s, D: s, E: c})
}

// Apply maps a point through m.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}
