package render

import "github.com/kjkrol/gokg/pkg/geom"

// Rectangle is a region in the pixel space of a texture. Right >= Left and
// Bottom >= Top are expected; a degenerate rectangle is allowed and yields a
// zero-area sprite. Components outside the texture bounds are not an error.
type Rectangle struct {
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
}

func (r Rectangle) Width() float32 {
	return r.Right - r.Left
}

func (r Rectangle) Height() float32 {
	return r.Bottom - r.Top
}

// RectangleFromAABB converts an integer pixel box into a Rectangle.
func RectangleFromAABB(aabb geom.AABB[int]) Rectangle {
	return Rectangle{
		Left:   float32(aabb.TopLeft.X),
		Top:    float32(aabb.TopLeft.Y),
		Right:  float32(aabb.BottomRight.X),
		Bottom: float32(aabb.BottomRight.Y),
	}
}
