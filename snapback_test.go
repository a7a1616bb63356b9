package dragdrop

import (
	"math"
	"testing"
	"time"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

func spawnSnapItem(r *rig, x, y, size float64) *donburi.Entry {
	item := r.spawnItem(x, y, size)
	donburi.Add(item, SnapBack, &SnapBackData{Duration: 0.2})
	return item
}

func TestSnapBackReturnsToOrigin(t *testing.T) {
	r := newRig(t)
	item := spawnSnapItem(r, 100, 100, 20)

	r.view.pos = dmath.Vec2{X: 100, Y: 100}
	r.input.Set(LeftClick)
	r.clock.Advance(16 * time.Millisecond)
	r.tick()

	r.view.pos = dmath.Vec2{X: 400, Y: 300}
	r.clock.Advance(16 * time.Millisecond)
	r.tick()

	// Missed drop: nothing at (400, 300).
	r.input.Set(0)
	r.clock.Advance(16 * time.Millisecond)
	r.tick()
	if !item.HasComponent(snapTween) {
		t.Fatal("missed drop should arm the return tween")
	}

	// Run the tween out: 0.2s at ~16ms per frame.
	for i := 0; i < 20; i++ {
		r.clock.Advance(16 * time.Millisecond)
		r.tick()
	}
	pos := transform.WorldPosition(item)
	if math.Abs(pos.X-100) > 0.5 || math.Abs(pos.Y-100) > 0.5 {
		t.Errorf("item at (%v, %v), want near origin (100, 100)", pos.X, pos.Y)
	}
	if item.HasComponent(snapTween) {
		t.Error("finished tween should be removed")
	}
}

func TestSnapBackSkippedOnReceivedDrop(t *testing.T) {
	r := newRig(t)
	item := spawnSnapItem(r, 100, 100, 20)
	r.spawnReceiver(300, 300, 60)

	r.view.pos = dmath.Vec2{X: 100, Y: 100}
	r.input.Set(LeftClick)
	r.tick()

	r.view.pos = dmath.Vec2{X: 300, Y: 300}
	r.tick()

	r.input.Set(0)
	r.tick()
	if item.HasComponent(snapTween) {
		t.Error("a received drop must not snap back")
	}
	pos := transform.WorldPosition(item)
	if pos.X != 300 || pos.Y != 300 {
		t.Errorf("item should stay where it was dropped, got (%v, %v)", pos.X, pos.Y)
	}
}

func TestSnapBackNotArmedWithoutOptIn(t *testing.T) {
	r := newRig(t)
	item := r.spawnItem(100, 100, 20) // no SnapBack component

	r.view.pos = dmath.Vec2{X: 100, Y: 100}
	r.input.Set(LeftClick)
	r.tick()
	r.view.pos = dmath.Vec2{X: 400, Y: 300}
	r.tick()
	r.input.Set(0)
	r.tick()

	if item.HasComponent(snapTween) {
		t.Error("snap-back must be opt-in")
	}
}

func TestSnapBackMidFlightProgress(t *testing.T) {
	r := newRig(t)
	item := spawnSnapItem(r, 100, 100, 20)

	r.view.pos = dmath.Vec2{X: 100, Y: 100}
	r.input.Set(LeftClick)
	r.clock.Advance(16 * time.Millisecond)
	r.tick()
	r.view.pos = dmath.Vec2{X: 500, Y: 100}
	r.clock.Advance(16 * time.Millisecond)
	r.tick()
	r.input.Set(0)
	r.clock.Advance(16 * time.Millisecond)
	r.tick()

	// Halfway through the 0.2s tween the item should be strictly between
	// the drop point and the origin.
	for i := 0; i < 6; i++ {
		r.clock.Advance(16 * time.Millisecond)
		r.tick()
	}
	pos := transform.WorldPosition(item)
	if pos.X <= 100 || pos.X >= 500 {
		t.Errorf("mid-flight X = %v, want strictly between 100 and 500", pos.X)
	}
	if pos.Y != 100 {
		t.Errorf("Y should be unchanged along a horizontal return, got %v", pos.Y)
	}
}
