package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gokr/internal/driver"
)

// Vertex is one corner of drawable geometry: a position in object space and a
// normalized texture coordinate.
type Vertex struct {
	Position mgl32.Vec2
	UV       mgl32.Vec2
}

// Buffer layout of a Vertex: interleaved position and uv, tightly packed.
const (
	VertexStride   = 4 * 4
	VertexUVOffset = 2 * 4
)

// VertexArray owns one GL vertex buffer holding interleaved vertices.
// Insertion order defines draw order; no index buffer is used.
type VertexArray struct {
	vbo   Handle
	count int
}

// NewVertexArray uploads the vertices into a fresh STATIC_DRAW buffer.
func NewVertexArray(vertices []Vertex) VertexArray {
	data := make([]float32, 0, len(vertices)*4)
	for _, v := range vertices {
		data = append(data, v.Position[0], v.Position[1], v.UV[0], v.UV[1])
	}
	vbo := gfx.GenBuffer()
	gfx.BindBuffer(driver.ArrayBuffer, vbo)
	gfx.BufferData(driver.ArrayBuffer, data, driver.StaticDraw)
	return VertexArray{
		vbo:   newHandle(vbo, func(id uint32) { gfx.DeleteBuffer(id) }),
		count: len(vertices),
	}
}

// Bind makes the buffer the active ARRAY_BUFFER, ready for attribute setup.
func (va *VertexArray) Bind() {
	gfx.BindBuffer(driver.ArrayBuffer, va.vbo.ID())
}

func (va *VertexArray) Unbind() {
	gfx.BindBuffer(driver.ArrayBuffer, 0)
}

// Count returns the number of vertices in the buffer.
func (va *VertexArray) Count() int {
	return va.count
}

// Transfer moves the buffer out of va, leaving it empty.
func (va *VertexArray) Transfer() VertexArray {
	return VertexArray{vbo: va.vbo.Transfer(), count: va.count}
}

// Release frees the GL buffer. Safe to call on an empty VertexArray.
func (va *VertexArray) Release() {
	va.vbo.Release()
}
