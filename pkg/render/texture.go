package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/kjkrol/gokg/pkg/geom"
	"github.com/kjkrol/gokr/internal/driver"
)

// Texture wraps a GL 2D texture with RGBA8 storage. Sprites only borrow a
// Texture: the GL resource is owned here and freed by Release (or by the
// Framebuffer the texture is attached to).
type Texture struct {
	handle Handle
	size   geom.Vec[int]
}

// NewTexture allocates an empty texture of the given pixel size, with
// NEAREST filtering and edge clamping.
func NewTexture(width, height int) *Texture {
	return newTexture(width, height, nil)
}

// TextureFromImage uploads an already-decoded image. Decoding files is the
// caller's business; any image.Image is accepted and converted to NRGBA
// before upload.
func TextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		converted := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		xdraw.Draw(converted, converted.Bounds(), img, bounds.Min, xdraw.Src)
		nrgba = converted
	}
	return newTexture(bounds.Dx(), bounds.Dy(), nrgba.Pix)
}

func newTexture(width, height int, pixels []byte) *Texture {
	id := gfx.GenTexture()
	gfx.BindTexture(driver.Texture2D, id)
	gfx.TexParameteri(driver.Texture2D, driver.TextureMinFilter, int32(driver.Nearest))
	gfx.TexParameteri(driver.Texture2D, driver.TextureMagFilter, int32(driver.Nearest))
	gfx.TexParameteri(driver.Texture2D, driver.TextureWrapS, int32(driver.ClampToEdge))
	gfx.TexParameteri(driver.Texture2D, driver.TextureWrapT, int32(driver.ClampToEdge))
	gfx.TexImage2D(driver.Texture2D, width, height, pixels)
	return &Texture{
		handle: newHandle(id, func(id uint32) { gfx.DeleteTexture(id) }),
		size:   geom.NewVec(width, height),
	}
}

func (t *Texture) Width() int {
	return t.size.X
}

func (t *Texture) Height() int {
	return t.size.Y
}

// Size returns the pixel dimensions of the texture.
func (t *Texture) Size() geom.Vec[int] {
	return t.size
}

// Handle returns the GL texture id, or zero after Release.
func (t *Texture) Handle() uint32 {
	return t.handle.ID()
}

// Bind makes the texture active on the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gfx.ActiveTexture(driver.Texture0 + driver.Enum(unit))
	gfx.BindTexture(driver.Texture2D, t.handle.ID())
}

// Release frees the GL texture exactly once.
func (t *Texture) Release() {
	t.handle.Release()
}
