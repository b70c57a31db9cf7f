package ledcanvas

import (
	"math"

	"github.com/gogpu/ledcanvas/internal/geom"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Note that the canvas transform(a, b, c, d, e, f) call uses column
// order; see FromCanvas.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate creates a rotation matrix (angle in radians, clockwise on screen).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// RotateAbout creates a rotation about (cx, cy).
func RotateAbout(angle, cx, cy float64) Matrix {
	return Translate(cx, cy).Multiply(Rotate(angle)).Multiply(Translate(-cx, -cy))
}

// FromCanvas builds a matrix from the canvas argument order
// (a, b, c, d, e, f), which maps x' = a*x + c*y + e and y' = b*x + d*y + f.
func FromCanvas(a, b, c, d, e, f float64) Matrix {
	return Matrix{
		A: a, B: c, C: e,
		D: b, E: d, F: f,
	}
}

// Multiply multiplies two matrices (m * other). The result applies
// other first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// IsInvertible reports whether the matrix has a usable inverse and every
// entry is finite.
func (m Matrix) IsInvertible() bool {
	for _, v := range [...]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return math.Abs(m.Determinant()) >= 1e-12
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	if !m.IsInvertible() {
		return Identity()
	}
	invDet := 1.0 / m.Determinant()
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

func (m Matrix) affine() geom.Affine {
	return geom.Affine{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

func (m Matrix) apply(p geom.Point) geom.Point {
	return m.affine().Apply(p)
}

// IsTranslationOnly reports whether the linear part is the identity.
func (m Matrix) IsTranslationOnly() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// MaxScaleFactor returns the largest factor by which the matrix stretches
// a unit vector, the larger singular value of the linear part.
func (m Matrix) MaxScaleFactor() float64 {
	s := m.A*m.A + m.B*m.B + m.D*m.D + m.E*m.E
	det := m.Determinant()
	disc := math.Max(0, s*s-4*det*det)
	return math.Sqrt((s + math.Sqrt(disc)) / 2)
}
