package renderer

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/affinity/pkg/math"
)

func TestCubeMesh(t *testing.T) {
	m := CubeMesh()
	assert.Equal(t, 24, m.VertexCount())
	assert.Len(t, m.Indices, 36)

	vertex := func(i uint16) (pos, normal math.Vec3) {
		v := m.Vertices[int(i)*vertexStride:]
		return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, math.Vec3{X: v[3], Y: v[4], Z: v[5]}
	}

	for tri := 0; tri < len(m.Indices); tri += 3 {
		a, n := vertex(m.Indices[tri])
		b, _ := vertex(m.Indices[tri+1])
		c, _ := vertex(m.Indices[tri+2])

		assert.Equal(t, float32(1), n.Length())
		// Every corner lies on the face its normal points out of.
		assert.Equal(t, float32(0.5), a.Dot(n))
		// Counter-clockwise winding seen from outside.
		face := b.Sub(a).Cross(c.Sub(a))
		assert.Positive(t, face.Dot(n), "triangle %d winds inward", tri/3)
	}
}

func TestPrimitiveMode(t *testing.T) {
	tests := map[string]uint32{
		"":               gl.TRIANGLES,
		"triangles":      gl.TRIANGLES,
		"triangle-strip": gl.TRIANGLE_STRIP,
		"lines":          gl.LINES,
		"line-loop":      gl.LINE_LOOP,
		"points":         gl.POINTS,
	}
	for name, want := range tests {
		got, err := PrimitiveMode(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
	_, err := PrimitiveMode("quads")
	assert.Error(t, err)
}
