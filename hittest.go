package dragdrop

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin
// at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// RectAround returns the rectangle of the given size centered on center.
func RectAround(center dmath.Vec2, width, height float64) Rect {
	return Rect{
		X:      center.X - width/2,
		Y:      center.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// inBounds reports whether the pointer is over the entity's bounds. Pure
// function of the entity's current transform and the two pointer positions.
//
// Entities carrying a UINode component are tested in screen space: bounds
// are the layout-computed size centered on the world position. Everything
// else is tested in world space: bounds are the world scale, multiplied by
// the sprite's pixel size when a loaded sprite is present. An entity with
// no transform, or whose sprite image has not loaded yet, is not hit.
func inBounds(entry *donburi.Entry, screenPos, worldPos dmath.Vec2) bool {
	if !entry.HasComponent(transform.Transform) {
		return false
	}
	center := transform.WorldPosition(entry)

	if entry.HasComponent(UINode) {
		node := UINode.Get(entry)
		return RectAround(center, node.Width, node.Height).
			Contains(screenPos.X, screenPos.Y)
	}

	scale := transform.WorldScale(entry)
	w, h := scale.X, scale.Y
	if entry.HasComponent(Sprite) {
		img := Sprite.Get(entry).Image
		if img == nil {
			return false
		}
		b := img.Bounds()
		w *= float64(b.Dx())
		h *= float64(b.Dy())
	}
	return RectAround(center, w, h).Contains(worldPos.X, worldPos.Y)
}
