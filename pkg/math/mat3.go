package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Mat3 is a 3x3 matrix in row-major order.
type Mat3 [9]float32

// Identity3 returns an identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat3) At(r, c int) float32 {
	return m[mat3Index(r, c)]
}

// Set writes the element at row r, column c.
func (m *Mat3) Set(r, c int, v float32) {
	m[mat3Index(r, c)] = v
}

func mat3Index(r, c int) int {
	if r < 0 || r >= 3 || c < 0 || c >= 3 {
		panic(fmt.Sprintf("math: Mat3 index (%d,%d) out of range", r, c))
	}
	return r*3 + c
}

// Mul multiplies this matrix by another (m * other).
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			result[r*3+c] = m[r*3]*other[c] + m[r*3+1]*other[3+c] + m[r*3+2]*other[6+c]
		}
	}
	return result
}

// MulVec multiplies the matrix by a column vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transpose transposes the matrix in place and returns it.
func (m *Mat3) Transpose() *Mat3 {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
	return m
}

// Transposed returns a transposed copy.
func (m Mat3) Transposed() Mat3 {
	m.Transpose()
	return m
}

// FillRow writes v into row, starting at column 0. Panics if row is out of
// range or v has more components than the matrix has columns.
func (m *Mat3) FillRow(row int, v Vector) *Mat3 {
	if row < 0 || row >= 3 {
		panic(fmt.Sprintf("math: Mat3.FillRow row %d out of range [0,3)", row))
	}
	if v.Len() > 3 {
		panic(fmt.Sprintf("math: Mat3.FillRow vector of length %d exceeds 3 columns", v.Len()))
	}
	for i := 0; i < v.Len(); i++ {
		m[row*3+i] = v.At(i)
	}
	return m
}

// FillCol writes v into col, starting at row 0. Panics if col is out of
// range or v has more components than the matrix has rows.
func (m *Mat3) FillCol(col int, v Vector) *Mat3 {
	if col < 0 || col >= 3 {
		panic(fmt.Sprintf("math: Mat3.FillCol column %d out of range [0,3)", col))
	}
	if v.Len() > 3 {
		panic(fmt.Sprintf("math: Mat3.FillCol vector of length %d exceeds 3 rows", v.Len()))
	}
	for i := 0; i < v.Len(); i++ {
		m[i*3+col] = v.At(i)
	}
	return m
}

// Flat returns the elements in row-major order.
func (m Mat3) Flat() [9]float32 {
	return m
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat3) ApproxEqual(other Mat3, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// Determinant returns det(m); zero means m collapses a dimension.
func (m Mat3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}
