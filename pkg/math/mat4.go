package math

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Mat4 is a 4x4 matrix in row-major order.
// Layout: [m0  m1  m2  m3 ]
//
//	[m4  m5  m6  m7 ]
//	[m8  m9  m10 m11]
//	[m12 m13 m14 m15]
//
// Translation lives in column 3 (m3, m7, m11). Upload with transpose=true
// or convert to column-major first.
type Mat4 [16]float32

// Identity4 returns an identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float32 {
	return m[mat4Index(r, c)]
}

// Set writes the element at row r, column c.
func (m *Mat4) Set(r, c int, v float32) {
	m[mat4Index(r, c)] = v
}

func mat4Index(r, c int) int {
	if r < 0 || r >= 4 || c < 0 || c >= 4 {
		panic(fmt.Sprintf("math: Mat4 index (%d,%d) out of range", r, c))
	}
	return r*4 + c
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r*4+c] =
				m[r*4+0]*other[0*4+c] +
					m[r*4+1]*other[1*4+c] +
					m[r*4+2]*other[2*4+c] +
					m[r*4+3]*other[3*4+c]
		}
	}
	return result
}

// MulVec multiplies the matrix by a column vector.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// MulVec3 transforms a point (w=1) and drops w without dividing.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	return m.MulVec(v.Vec4(1)).Vec3()
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return m.MulVec(d.Vec4(0)).Vec3()
}

// Transpose transposes the matrix in place and returns it.
func (m *Mat4) Transpose() *Mat4 {
	for r := 0; r < 4; r++ {
		for c := r + 1; c < 4; c++ {
			m[r*4+c], m[c*4+r] = m[c*4+r], m[r*4+c]
		}
	}
	return m
}

// Transposed returns a transposed copy.
func (m Mat4) Transposed() Mat4 {
	m.Transpose()
	return m
}

// FillRow writes v into row, starting at column 0. Panics if row is out of
// range or v has more components than the matrix has columns.
func (m *Mat4) FillRow(row int, v Vector) *Mat4 {
	if row < 0 || row >= 4 {
		panic(fmt.Sprintf("math: Mat4.FillRow row %d out of range [0,4)", row))
	}
	if v.Len() > 4 {
		panic(fmt.Sprintf("math: Mat4.FillRow vector of length %d exceeds 4 columns", v.Len()))
	}
	for i := 0; i < v.Len(); i++ {
		m[row*4+i] = v.At(i)
	}
	return m
}

// FillCol writes v into col, starting at row 0. Panics if col is out of
// range or v has more components than the matrix has rows.
func (m *Mat4) FillCol(col int, v Vector) *Mat4 {
	if col < 0 || col >= 4 {
		panic(fmt.Sprintf("math: Mat4.FillCol column %d out of range [0,4)", col))
	}
	if v.Len() > 4 {
		panic(fmt.Sprintf("math: Mat4.FillCol vector of length %d exceeds 4 rows", v.Len()))
	}
	for i := 0; i < v.Len(); i++ {
		m[i*4+col] = v.At(i)
	}
	return m
}

// Row returns row r.
func (m Mat4) Row(r int) Vec4 {
	i := mat4Index(r, 0)
	return Vec4{m[i], m[i+1], m[i+2], m[i+3]}
}

// Col returns column c.
func (m Mat4) Col(c int) Vec4 {
	i := mat4Index(0, c)
	return Vec4{m[i], m[i+4], m[i+8], m[i+12]}
}

// Mat3 returns the upper-left 3x3 portion of the matrix.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Flat returns the elements in row-major order, ready for a uniform upload
// with transpose enabled.
func (m Mat4) Flat() [16]float32 {
	return m
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat4) ApproxEqual(other Mat4, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular.
func (m Mat4) Inverse() Mat4 {
	// Cofactor expansion; valid for either storage order since
	// inverse(transpose(M)) == transpose(inverse(M)).
	c00 := m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	c01 := -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	c02 := m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	c03 := -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]

	c10 := -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	c11 := m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	c12 := -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	c13 := m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]

	c20 := m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	c21 := -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	c22 := m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	c23 := -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]

	c30 := -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	c31 := m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	c32 := -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	c33 := m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det := m[0]*c00 + m[4]*c01 + m[8]*c02 + m[12]*c03
	if det == 0 {
		return Identity4()
	}

	invDet := 1.0 / det

	return Mat4{
		c00 * invDet, c01 * invDet, c02 * invDet, c03 * invDet,
		c10 * invDet, c11 * invDet, c12 * invDet, c13 * invDet,
		c20 * invDet, c21 * invDet, c22 * invDet, c23 * invDet,
		c30 * invDet, c31 * invDet, c32 * invDet, c33 * invDet,
	}
}

// String formats the matrix one row per line.
func (m Mat4) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&b, "%10.4f %10.4f %10.4f %10.4f\n", m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
	}
	return b.String()
}
