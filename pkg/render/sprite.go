package render

import "github.com/go-gl/mathgl/mgl32"

// Sprite is a two-triangle quad showing a region of a texture. It borrows the
// texture (dimensions and binding only) and owns the quad geometry; replacing
// the region rebuilds the geometry in place and never touches the texture.
type Sprite struct {
	texture  *Texture
	geometry VertexArray
	vertices []Vertex
}

// NewSprite builds a sprite covering the whole texture.
func NewSprite(texture *Texture) *Sprite {
	s := &Sprite{texture: texture}
	s.SetTextureRectangle(Rectangle{
		Left:   0,
		Right:  float32(texture.Width()),
		Top:    0,
		Bottom: float32(texture.Height()),
	})
	return s
}

// NewSpriteRegion builds a sprite showing only rectangle of texture.
func NewSpriteRegion(texture *Texture, rectangle Rectangle) *Sprite {
	s := &Sprite{texture: texture}
	s.SetTextureRectangle(rectangle)
	return s
}

// NewSpriteFromFramebuffer builds a sprite sampling the framebuffer's entire
// color output. Render targets store their first row at the bottom, so the
// texture coordinates are flipped vertically relative to NewSprite and cover
// the full [0,1] range with no texel inset.
func NewSpriteFromFramebuffer(framebuffer *Framebuffer) *Sprite {
	texture := framebuffer.ColorTexture()
	s := &Sprite{texture: texture}
	l, r, t, b := float32(0), float32(1), float32(0), float32(1)
	w := float32(texture.Width())
	h := float32(texture.Height())
	s.replaceGeometry([]Vertex{
		{Position: mgl32.Vec2{0, 0}, UV: mgl32.Vec2{l, b}},
		{Position: mgl32.Vec2{0, h}, UV: mgl32.Vec2{l, t}},
		{Position: mgl32.Vec2{w, h}, UV: mgl32.Vec2{r, t}},
		{Position: mgl32.Vec2{0, 0}, UV: mgl32.Vec2{l, b}},
		{Position: mgl32.Vec2{w, h}, UV: mgl32.Vec2{r, t}},
		{Position: mgl32.Vec2{w, 0}, UV: mgl32.Vec2{r, b}},
	})
	return s
}

// SetTextureRectangle rebuilds the quad for a pixel-space region of the
// texture. Sample coordinates are inset by half a texel on every edge, which
// keeps bilinear filtering from bleeding in neighboring atlas regions; the
// quad's object-space extent stays the full rectangle size.
func (s *Sprite) SetTextureRectangle(rectangle Rectangle) {
	l := (rectangle.Left + 0.5) / float32(s.texture.Width())
	r := (rectangle.Right - 0.5) / float32(s.texture.Width())
	t := (rectangle.Top + 0.5) / float32(s.texture.Height())
	b := (rectangle.Bottom - 0.5) / float32(s.texture.Height())
	w := rectangle.Width()
	h := rectangle.Height()
	s.replaceGeometry([]Vertex{
		{Position: mgl32.Vec2{0, 0}, UV: mgl32.Vec2{l, t}},
		{Position: mgl32.Vec2{0, h}, UV: mgl32.Vec2{l, b}},
		{Position: mgl32.Vec2{w, h}, UV: mgl32.Vec2{r, b}},
		{Position: mgl32.Vec2{0, 0}, UV: mgl32.Vec2{l, t}},
		{Position: mgl32.Vec2{w, h}, UV: mgl32.Vec2{r, b}},
		{Position: mgl32.Vec2{w, 0}, UV: mgl32.Vec2{r, t}},
	})
}

func (s *Sprite) replaceGeometry(vertices []Vertex) {
	s.geometry.Release()
	s.geometry = NewVertexArray(vertices)
	s.vertices = vertices
}

// Texture returns the borrowed texture.
func (s *Sprite) Texture() *Texture {
	return s.texture
}

// Geometry returns the sprite's vertex buffer.
func (s *Sprite) Geometry() *VertexArray {
	return &s.geometry
}

// Vertices returns the quad's six vertices in draw order.
func (s *Sprite) Vertices() []Vertex {
	return s.vertices
}

// Release frees the quad geometry. The borrowed texture is untouched.
func (s *Sprite) Release() {
	s.geometry.Release()
	s.vertices = nil
}
