package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is interleaved position + normal data with triangle indices.
type Mesh struct {
	Vertices []float32 // x y z nx ny nz
	Indices  []uint16
}

// vertexStride is the number of floats per vertex.
const vertexStride = 6

// VertexCount returns the number of vertices.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / vertexStride
}

type face struct {
	normal  [3]float32
	corners [4][3]float32
}

// CubeMesh returns a unit cube centered at the origin with one normal per face.
func CubeMesh() Mesh {
	const h = 0.5
	faces := []face{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, h, h}, {-h, -h, h}, {h, -h, h}, {h, h, h}}},     // front
		{[3]float32{0, 0, -1}, [4][3]float32{{h, h, -h}, {h, -h, -h}, {-h, -h, -h}, {-h, h, -h}}}, // back
		{[3]float32{1, 0, 0}, [4][3]float32{{h, h, h}, {h, -h, h}, {h, -h, -h}, {h, h, -h}}},     // right
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, h, -h}, {-h, -h, -h}, {-h, -h, h}, {-h, h, h}}}, // left
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, -h}, {-h, h, h}, {h, h, h}, {h, h, -h}}},     // top
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, h}, {-h, -h, -h}, {h, -h, -h}, {h, -h, h}}}, // bottom
	}

	m := Mesh{
		Vertices: make([]float32, 0, len(faces)*4*vertexStride),
		Indices:  make([]uint16, 0, len(faces)*6),
	}
	for i, f := range faces {
		for _, c := range f.corners {
			m.Vertices = append(m.Vertices, c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2])
		}
		base := uint16(i * 4)
		// Corners wind counter-clockwise seen from outside.
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// PrimitiveMode maps a primitive name to its GL draw mode.
func PrimitiveMode(name string) (uint32, error) {
	switch name {
	case "", "triangles":
		return gl.TRIANGLES, nil
	case "triangle-strip":
		return gl.TRIANGLE_STRIP, nil
	case "lines":
		return gl.LINES, nil
	case "line-loop":
		return gl.LINE_LOOP, nil
	case "points":
		return gl.POINTS, nil
	}
	return 0, fmt.Errorf("unknown primitive %q", name)
}
