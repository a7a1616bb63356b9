package dragdrop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

const defaultSnapBackDuration float32 = 0.25 // seconds

// SnapBackData opts an entity into snap-back: when a drag ends with no
// receiver under the pointer, the entity is tweened back to the world
// position it had when the drag began. Entities without this component keep
// their dropped position.
type SnapBackData struct {
	// Duration of the return animation in seconds. Zero uses the default.
	Duration float32
	// Ease is the tween easing function. Nil uses ease.OutQuad.
	Ease ease.TweenFunc
}

// SnapBack opts an entity into the return animation after a missed drop.
var SnapBack = donburi.NewComponentType[SnapBackData]()

// snapTweenData is the in-flight return tween pair.
type snapTweenData struct {
	x, y *gween.Tween
}

var snapTween = donburi.NewComponentType[snapTweenData]()

var querySnapTween = donburi.NewQuery(filter.Contains(snapTween))

// startSnapBack arms the return tween for a missed drop if the entity
// opted in.
func (p *Plugin) startSnapBack(entry *donburi.Entry, origin dmath.Vec2) {
	if !entry.HasComponent(SnapBack) || !entry.HasComponent(transform.Transform) {
		return
	}
	cfg := SnapBack.Get(entry)
	fn := cfg.Ease
	if fn == nil {
		fn = ease.OutQuad
	}
	dur := cfg.Duration
	if dur <= 0 {
		dur = defaultSnapBackDuration
	}
	pos := transform.WorldPosition(entry)
	donburi.Add(entry, snapTween, &snapTweenData{
		x: gween.New(float32(pos.X), float32(origin.X), dur, fn),
		y: gween.New(float32(pos.Y), float32(origin.Y), dur, fn),
	})
	p.logf("snap-back %d to (%v, %v)", entry.Entity().Id(), origin.X, origin.Y)
}

// snapBackSystem advances active return tweens. Registered after
// DropResolve so a tween armed this frame takes its first step next frame.
func (p *Plugin) snapBackSystem(e *ecs.ECS) {
	dt := p.frameDelta()
	var finished []*donburi.Entry
	querySnapTween.Each(e.World, func(entry *donburi.Entry) {
		tw := snapTween.Get(entry)
		x, doneX := tw.x.Update(dt)
		y, doneY := tw.y.Update(dt)
		if entry.HasComponent(transform.Transform) {
			transform.SetWorldPosition(entry, dmath.Vec2{X: float64(x), Y: float64(y)})
		}
		if doneX && doneY {
			finished = append(finished, entry)
		}
	})
	for _, entry := range finished {
		entry.RemoveComponent(snapTween)
	}
}
