package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVertexArrayUploadsInterleaved(t *testing.T) {
	stub := installStub(t)

	va := NewVertexArray([]Vertex{
		{Position: mgl32.Vec2{0, 0}, UV: mgl32.Vec2{0.25, 0.75}},
		{Position: mgl32.Vec2{8, 4}, UV: mgl32.Vec2{1, 0}},
	})

	require.Equal(t, 2, va.Count())
	data := stub.bufferData[va.vbo.ID()]
	assert.Equal(t, []float32{0, 0, 0.25, 0.75, 8, 4, 1, 0}, data)
	assert.Equal(t, 1, stub.calls["BufferData"])
}

func TestVertexArrayTransfer(t *testing.T) {
	stub := installStub(t)

	va := NewVertexArray([]Vertex{{}})
	id := va.vbo.ID()
	moved := va.Transfer()

	va.Release()
	assert.Zero(t, stub.deleted[id])

	moved.Release()
	moved.Release()
	assert.Equal(t, 1, stub.deleted[id])
}

func TestVertexLayoutConstants(t *testing.T) {
	assert.Equal(t, int32(16), int32(VertexStride))
	assert.Equal(t, int32(8), int32(VertexUVOffset))
}
