package dragdrop

import (
	"testing"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 25, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 40, 60, true},
		{"left of", 9.9, 40, false},
		{"right of", 40.1, 40, false},
		{"above", 25, 19.9, false},
		{"below", 25, 60.1, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("%s: Contains(%v, %v) = %v, want %v", tc.name, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(dmath.Vec2{X: 100, Y: 50}, 20, 10)
	want := Rect{X: 90, Y: 45, Width: 20, Height: 10}
	if r != want {
		t.Errorf("RectAround = %+v, want %+v", r, want)
	}
}

// --- World-object mode ---

func spawnAt(w donburi.World, x, y, sx, sy float64, extra ...donburi.IComponentType) *donburi.Entry {
	comps := append([]donburi.IComponentType{transform.Transform}, extra...)
	entry := w.Entry(w.Create(comps...))
	td := transform.Transform.Get(entry)
	td.LocalPosition = dmath.Vec2{X: x, Y: y}
	td.LocalScale = dmath.Vec2{X: sx, Y: sy}
	return entry
}

func TestInBoundsWorldMode(t *testing.T) {
	w := donburi.NewWorld()
	// 40x20 box centered at (100, 100); no sprite, so scale is the size.
	entry := spawnAt(w, 100, 100, 40, 20)

	inside := dmath.Vec2{X: 110, Y: 105}
	outside := dmath.Vec2{X: 130, Y: 100}

	// World mode ignores the screen position entirely.
	if !inBounds(entry, dmath.Vec2{X: -999, Y: -999}, inside) {
		t.Error("point inside the scaled box should hit")
	}
	if inBounds(entry, inside, outside) {
		t.Error("point outside the scaled box should miss")
	}
	// Edges are inclusive.
	if !inBounds(entry, dmath.Vec2{}, dmath.Vec2{X: 120, Y: 110}) {
		t.Error("bottom-right edge should hit")
	}
}

func TestInBoundsUnloadedSprite(t *testing.T) {
	w := donburi.NewWorld()
	entry := spawnAt(w, 100, 100, 40, 40, Sprite)
	// Sprite image is nil: the asset has not loaded, so nothing is hit even
	// though the transform alone would contain the point.
	if inBounds(entry, dmath.Vec2{}, dmath.Vec2{X: 100, Y: 100}) {
		t.Error("entity with an unloaded sprite must not be hit")
	}
}

// --- UI-node mode ---

func TestInBoundsUIMode(t *testing.T) {
	w := donburi.NewWorld()
	entry := spawnAt(w, 200, 150, 1, 1, UINode)
	UINode.SetValue(entry, UINodeData{Width: 80, Height: 60})

	// UI mode tests the screen position against the layout size and
	// ignores the world position.
	if !inBounds(entry, dmath.Vec2{X: 220, Y: 160}, dmath.Vec2{X: -999, Y: -999}) {
		t.Error("screen point inside the layout box should hit")
	}
	if inBounds(entry, dmath.Vec2{X: 245, Y: 150}, dmath.Vec2{X: 200, Y: 150}) {
		t.Error("screen point outside the layout box should miss")
	}
}

func TestInBoundsNoTransform(t *testing.T) {
	w := donburi.NewWorld()
	entry := w.Entry(w.Create(Receiver))
	if inBounds(entry, dmath.Vec2{}, dmath.Vec2{}) {
		t.Error("entity without a transform is never hit")
	}
}

func TestInBoundsIdempotent(t *testing.T) {
	w := donburi.NewWorld()
	entry := spawnAt(w, 100, 100, 40, 20)
	screen := dmath.Vec2{X: 100, Y: 100}
	world := dmath.Vec2{X: 105, Y: 95}

	first := inBounds(entry, screen, world)
	for i := 0; i < 10; i++ {
		if got := inBounds(entry, screen, world); got != first {
			t.Fatalf("call %d returned %v, first returned %v", i, got, first)
		}
	}
}
