package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gokg/pkg/geom"
	"github.com/kjkrol/gokr/internal/driver"
)

// RenderTarget is a surface draw calls write into: the default framebuffer
// for the screen, or an off-screen Framebuffer. It carries the pixel size and
// the orthographic projection matching that size (origin top-left, y down).
type RenderTarget struct {
	fbo        Handle
	vao        Handle
	size       geom.Vec[int]
	projection mgl32.Mat4
}

// NewScreen wraps the default framebuffer at the given pixel size.
func NewScreen(width, height int) *RenderTarget {
	rt := &RenderTarget{}
	rt.resize(width, height)
	return rt
}

func (rt *RenderTarget) resize(width, height int) {
	rt.size = geom.NewVec(width, height)
	rt.projection = mgl32.Ortho2D(0, float32(width), float32(height), 0)
}

// Resize updates the size and projection, typically after a window resize.
// Off-screen targets have fixed storage and are not resized this way.
func (rt *RenderTarget) Resize(width, height int) {
	rt.resize(width, height)
}

// Size returns the pixel dimensions of the target.
func (rt *RenderTarget) Size() geom.Vec[int] {
	return rt.size
}

// Projection returns the pixel-space orthographic projection of the target.
func (rt *RenderTarget) Projection() mgl32.Mat4 {
	return rt.projection
}

// Bind makes the target the draw destination and sets the viewport to its
// full size. Core profile requires some vertex array bound, so a shared one
// is created on first use.
func (rt *RenderTarget) Bind() {
	gfx.BindFramebuffer(driver.Framebuffer, rt.fbo.ID())
	if !rt.vao.Valid() {
		rt.vao = newHandle(gfx.GenVertexArray(), func(id uint32) { gfx.DeleteVertexArray(id) })
	}
	gfx.BindVertexArray(rt.vao.ID())
	gfx.Viewport(0, 0, int32(rt.size.X), int32(rt.size.Y))
}

// Clear fills the target with a color and resets the depth and stencil
// planes.
func (rt *RenderTarget) Clear(c color.Color) {
	rt.Bind()
	rgba := colorToFloat(c)
	gfx.ClearColor(rgba[0], rgba[1], rgba[2], rgba[3])
	gfx.Clear(driver.ColorBufferBit | driver.DepthBufferBit | driver.StencilBufferBit)
}

// Draw renders a sprite into the target with the given program and model
// transform. The program's projection, model and sampler uniforms and its
// position/uv attributes follow the stock shader naming.
func (rt *RenderTarget) Draw(sprite *Sprite, program *ShaderProgram, model mgl32.Mat4) {
	rt.Bind()
	program.Use()
	program.SetUniformMat4(UniformProjection, rt.projection)
	program.SetUniformMat4(UniformModel, model)
	if texture := sprite.Texture(); texture != nil {
		texture.Bind(0)
		program.SetUniformInt(UniformTexture, 0)
	}
	geometry := sprite.Geometry()
	geometry.Bind()
	program.SetAttribute(AttributePosition, 2, VertexStride, 0)
	program.SetAttribute(AttributeUV, 2, VertexStride, VertexUVOffset)
	gfx.DrawArrays(driver.Triangles, 0, int32(geometry.Count()))
}

// Release frees the shared vertex array of the target.
func (rt *RenderTarget) Release() {
	rt.vao.Release()
	rt.fbo.Release()
}

func colorToFloat(c color.Color) [4]float32 {
	if c == nil {
		return [4]float32{}
	}
	r, g, b, a := c.RGBA()
	const inv = 1.0 / 65535.0
	return [4]float32{
		float32(r) * inv,
		float32(g) * inv,
		float32(b) * inv,
		float32(a) * inv,
	}
}
