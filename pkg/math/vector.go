package math

import "fmt"

// Vector is implemented by the fixed-size vector types. Matrices use it to
// inject a vector into a row or column.
type Vector interface {
	Len() int
	At(i int) float32
}

var (
	_ Vector = Vec2{}
	_ Vector = Vec3{}
	_ Vector = Vec4{}
)

func indexPanic(kind string, i, n int) string {
	return fmt.Sprintf("math: %s index %d out of range [0,%d)", kind, i, n)
}
