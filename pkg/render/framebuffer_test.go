package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramebufferBackingSize(t *testing.T) {
	stub := installStub(t)

	framebuffer, err := NewFramebuffer(128, 64)
	require.NoError(t, err)

	assert.Equal(t, 128, framebuffer.ColorTexture().Width())
	assert.Equal(t, 64, framebuffer.ColorTexture().Height())
	assert.Equal(t, 128, framebuffer.Size().X)
	assert.Equal(t, 64, framebuffer.Size().Y)

	assert.Equal(t, 1, stub.calls["CheckFramebufferStatus"])
	assert.Equal(t, [][2]int{{128, 64}}, stub.rbStorageSizes)
}

func TestFramebufferIncomplete(t *testing.T) {
	stub := installStub(t)
	stub.fbStatus = 0x8CD6 // incomplete attachment

	framebuffer, err := NewFramebuffer(32, 32)
	require.Error(t, err)
	assert.Nil(t, framebuffer)

	// nothing allocated for the failed target may leak
	assert.Equal(t, 1, stub.calls["DeleteFramebuffer"])
	assert.Equal(t, 1, stub.calls["DeleteRenderbuffer"])
	assert.Equal(t, 1, stub.calls["DeleteTexture"])
}

func TestFramebufferReleaseOnce(t *testing.T) {
	stub := installStub(t)

	framebuffer, err := NewFramebuffer(32, 32)
	require.NoError(t, err)
	textureID := framebuffer.ColorTexture().Handle()

	framebuffer.Release()
	framebuffer.Release()

	assert.Equal(t, 1, stub.calls["DeleteFramebuffer"])
	assert.Equal(t, 1, stub.calls["DeleteRenderbuffer"])
	assert.Equal(t, 1, stub.deleted[textureID])
}

func TestDetachColorTextureTransfersOwnership(t *testing.T) {
	stub := installStub(t)

	framebuffer, err := NewFramebuffer(32, 32)
	require.NoError(t, err)

	texture := framebuffer.DetachColorTexture()
	require.NotNil(t, texture)
	assert.Nil(t, framebuffer.ColorTexture())

	framebuffer.Release()
	assert.Zero(t, stub.deleted[texture.Handle()])

	texture.Release()
	assert.Equal(t, 1, stub.calls["DeleteTexture"])
}

func TestFramebufferDrawBindsOffscreenTarget(t *testing.T) {
	stub := installStub(t)

	framebuffer, err := NewFramebuffer(64, 64)
	require.NoError(t, err)

	fboID := framebuffer.fbo.ID()
	framebuffer.Bind()
	assert.Equal(t, fboID, stub.boundFBOs[len(stub.boundFBOs)-1])
	assert.Equal(t, [4]int32{0, 0, 64, 64}, stub.viewports[len(stub.viewports)-1])
}
