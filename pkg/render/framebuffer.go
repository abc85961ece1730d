package render

import (
	"fmt"

	"github.com/kjkrol/gokr/internal/driver"
)

// Framebuffer is an off-screen RenderTarget backed by a color Texture and a
// depth/stencil renderbuffer. The color texture lives as long as the
// Framebuffer unless moved out with DetachColorTexture; its content can be
// sampled again through NewSpriteFromFramebuffer.
type Framebuffer struct {
	RenderTarget
	color        *Texture
	renderBuffer Handle
}

// NewFramebuffer allocates the backing storage and validates completeness.
// An incomplete target releases everything it allocated and reports an error.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	fbo := gfx.GenFramebuffer()
	gfx.BindFramebuffer(driver.Framebuffer, fbo)

	color := NewTexture(width, height)
	gfx.FramebufferTexture2D(driver.Framebuffer, driver.ColorAttachment0, driver.Texture2D, color.Handle())

	rb := gfx.GenRenderbuffer()
	gfx.BindRenderbuffer(driver.Renderbuffer, rb)
	gfx.RenderbufferStorage(driver.Renderbuffer, driver.Depth24Stencil8, width, height)
	gfx.FramebufferRenderbuffer(driver.Framebuffer, driver.DepthStencilAttachment, driver.Renderbuffer, rb)

	status := gfx.CheckFramebufferStatus(driver.Framebuffer)
	if status != driver.FramebufferComplete {
		gfx.BindFramebuffer(driver.Framebuffer, 0)
		gfx.DeleteRenderbuffer(rb)
		color.Release()
		gfx.DeleteFramebuffer(fbo)
		return nil, fmt.Errorf("render: framebuffer incomplete: status 0x%X", uint32(status))
	}
	gfx.BindFramebuffer(driver.Framebuffer, 0)

	f := &Framebuffer{
		color:        color,
		renderBuffer: newHandle(rb, func(id uint32) { gfx.DeleteRenderbuffer(id) }),
	}
	f.fbo = newHandle(fbo, func(id uint32) { gfx.DeleteFramebuffer(id) })
	f.resize(width, height)
	return f, nil
}

// ColorTexture returns the color attachment, still owned by the Framebuffer.
func (f *Framebuffer) ColorTexture() *Texture {
	return f.color
}

// DetachColorTexture moves the color texture out. The caller owns it from now
// on; the Framebuffer releases only its remaining GL objects.
func (f *Framebuffer) DetachColorTexture() *Texture {
	color := f.color
	f.color = nil
	return color
}

// Release frees the renderbuffer, the framebuffer object and, unless it was
// detached, the color texture.
func (f *Framebuffer) Release() {
	f.renderBuffer.Release()
	if f.color != nil {
		f.color.Release()
		f.color = nil
	}
	f.RenderTarget.Release()
}
