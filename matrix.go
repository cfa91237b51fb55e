package compositor

import "math"

// Matrix represents a 2D affine transformation matrix.
// It is the top two rows of a 3x3 homogeneous matrix in row-major order;
// the implicit third row is (0, 0, 1):
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other). The result applies other
// first, then m.
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
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix. The second result is false when the
// matrix is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, false
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv, B: -m.B * inv, C: (m.B*m.F - m.E*m.C) * inv,
		D: -m.D * inv, E: m.A * inv, F: (m.D*m.C - m.A*m.F) * inv,
	}, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// IsAxisAligned reports whether the matrix maps axis-aligned rectangles to
// axis-aligned rectangles (scale and translation only).
func (m Matrix) IsAxisAligned() bool {
	return m.B == 0 && m.D == 0
}

// MapRect returns the bounding box of r after transformation.
func (m Matrix) MapRect(r Rect) Rect {
	if r.IsEmpty() {
		return Rect{}
	}
	c := r.Corners()
	p := m.TransformPoint(c[0])
	minX, maxX, minY, maxY := p.X, p.X, p.Y, p.Y
	for _, corner := range c[1:] {
		p = m.TransformPoint(corner)
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// MappedArea returns the area of the quadrilateral r maps to. Unlike
// MapRect(r).Area() this is exact for rotations and shears.
func (m Matrix) MappedArea(r Rect) float64 {
	if r.IsEmpty() {
		return 0
	}
	c := r.Corners()
	var area float64
	for i := range c {
		p := m.TransformPoint(c[i])
		q := m.TransformPoint(c[(i+1)%len(c)])
		area += p.Cross(q)
	}
	return math.Abs(area / 2)
}
