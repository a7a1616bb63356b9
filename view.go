package dragdrop

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

// View resolves the pointer's screen position and projects it into world
// space. CursorPosition reports ok=false when there is no usable pointer
// this frame (cursor outside the window); the pipeline then treats the
// frame as "no interaction" rather than erroring.
type View interface {
	CursorPosition() (dmath.Vec2, bool)
	ScreenToWorld(dmath.Vec2) dmath.Vec2
}

// ScreenView is a View with no camera: world coordinates equal screen
// coordinates. Suitable for pure-UI scenes.
type ScreenView struct {
	Width, Height float64
}

// CursorPosition returns the logical cursor position, or ok=false when the
// cursor is outside the viewport.
func (v ScreenView) CursorPosition() (dmath.Vec2, bool) {
	mx, my := ebiten.CursorPosition()
	pos := dmath.Vec2{X: float64(mx), Y: float64(my)}
	if pos.X < 0 || pos.Y < 0 || pos.X > v.Width || pos.Y > v.Height {
		return dmath.Vec2{}, false
	}
	return pos, true
}

// ScreenToWorld is the identity projection.
func (v ScreenView) ScreenToWorld(p dmath.Vec2) dmath.Vec2 { return p }

// Camera is a View over the real cursor with a world-space camera: a center
// position, zoom, and rotation around the viewport center.
type Camera struct {
	// X and Y are the world-space position at the viewport center.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Width and Height are the viewport size in logical pixels.
	Width, Height float64
}

// NewCamera returns an identity camera over a viewport of the given size.
func NewCamera(width, height float64) *Camera {
	return &Camera{Zoom: 1, Width: width, Height: height}
}

// CursorPosition returns the logical cursor position, or ok=false when the
// cursor is outside the viewport.
func (c *Camera) CursorPosition() (dmath.Vec2, bool) {
	mx, my := ebiten.CursorPosition()
	pos := dmath.Vec2{X: float64(mx), Y: float64(my)}
	if pos.X < 0 || pos.Y < 0 || pos.X > c.Width || pos.Y > c.Height {
		return dmath.Vec2{}, false
	}
	return pos, true
}

// ScreenToWorld inverts the view transform: un-center, un-zoom, un-rotate,
// then translate by the camera position.
func (c *Camera) ScreenToWorld(screen dmath.Vec2) dmath.Vec2 {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	dx := (screen.X - c.Width/2) / zoom
	dy := (screen.Y - c.Height/2) / zoom
	sin, cos := math.Sincos(-c.Rotation)
	return dmath.Vec2{
		X: c.X + dx*cos - dy*sin,
		Y: c.Y + dx*sin + dy*cos,
	}
}
