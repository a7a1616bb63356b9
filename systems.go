package dragdrop

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

// draggedZIndex is forced onto a UI entity's layout style while it is
// dragged so it renders above everything else.
const draggedZIndex = 1000

var (
	queryDraggable = donburi.NewQuery(filter.Contains(Draggable))
	queryReceiver  = donburi.NewQuery(filter.Contains(Receiver))
	queryAwaiting  = donburi.NewQuery(filter.Contains(AwaitingDrag))
	queryDragging  = donburi.NewQuery(filter.Contains(Dragging))
)

// --- StartDrag: Idle → AwaitingDrag | Dragging ---

// StartDrag promotes an idle draggable under the pointer into AwaitingDrag
// or Dragging. It refuses to act while any drag session exists, which is
// what enforces the global at-most-one invariant the other systems rely on.
//
// Among qualifying candidates the greatest stacking depth wins; ties go to
// the first seen in iteration order.
func (p *Plugin) StartDrag(e *ecs.ECS) {
	w := e.World
	inputs := ReadInputs(p.Input)
	if !inputs.Intersects(Clicks) {
		return
	}
	if queryDragging.Count(w) > 0 || queryAwaiting.Count(w) > 0 {
		return
	}
	screen, ok := p.View.CursorPosition()
	if !ok {
		return
	}
	world := p.View.ScreenToWorld(screen)

	var best *donburi.Entry
	var bestZ float64
	queryDraggable.Each(w, func(entry *donburi.Entry) {
		d := Draggable.Get(entry)
		if !inputs.Contains(d.Required) || inputs.Intersects(d.Disallowed) {
			return
		}
		if !inBounds(entry, screen, world) {
			return
		}
		z := stackDepth(entry)
		if best == nil || z > bestZ {
			best, bestZ = entry, z
		}
	})
	if best == nil {
		return
	}

	if d := Draggable.Get(best); d.MinimumHeld > 0 {
		donburi.Add(best, AwaitingDrag, &AwaitingDragData{
			Ends: p.Clock.Elapsed() + d.MinimumHeld,
		})
		DragAwaitEvent.Publish(w, DragAwait{Awaiting: best.Entity(), Inputs: inputs})
		p.logf("await %d until %v", best.Entity().Id(), p.Clock.Elapsed()+d.MinimumHeld)
		return
	}
	p.beginDrag(w, best, inputs)
}

// stackDepth resolves an entity's stacking order for candidate selection:
// Depth when present, else the layout ZIndex, else zero.
func stackDepth(entry *donburi.Entry) float64 {
	if entry.HasComponent(Depth) {
		return Depth.Get(entry).Z
	}
	if entry.HasComponent(Layout) {
		return float64(Layout.Get(entry).ZIndex)
	}
	return 0
}

// beginDrag attaches Dragging, capturing the world position as the snap-back
// origin, and publishes Dragged.
func (p *Plugin) beginDrag(w donburi.World, entry *donburi.Entry, inputs InputFlags) {
	var origin dmath.Vec2
	if entry.HasComponent(transform.Transform) {
		origin = transform.WorldPosition(entry)
	}
	donburi.Add(entry, Dragging, &DraggingData{Origin: origin})
	DraggedEvent.Publish(w, Dragged{Dragged: entry.Entity(), Inputs: inputs})
	p.logf("drag %d", entry.Entity().Id())
}

// --- AwaitDrag: AwaitingDrag → Dragging | Idle ---

// AwaitDrag confirms or cancels a pending hold timer. Breaking the input
// chord before the deadline cancels silently; holding it past the deadline
// promotes the entity to Dragging and publishes Dragged.
//
// Only the first awaiting entity is examined: StartDrag's precondition
// guarantees at most one exists, so this is equivalent to examining all of
// them. Revisit if multiple concurrent sessions are ever allowed.
func (p *Plugin) AwaitDrag(e *ecs.ECS) {
	w := e.World
	entry, ok := queryAwaiting.First(w)
	if !ok {
		return
	}
	if !entry.HasComponent(Draggable) {
		p.logf("awaiting entity %d lost its Draggable; cancelling", entry.Entity().Id())
		entry.RemoveComponent(AwaitingDrag)
		return
	}
	inputs := ReadInputs(p.Input)
	d := Draggable.Get(entry)
	if !inputs.Contains(d.Required) || inputs.Intersects(d.Disallowed) {
		entry.RemoveComponent(AwaitingDrag)
		p.logf("await %d cancelled", entry.Entity().Id())
		return
	}
	if p.Clock.Elapsed() >= AwaitingDrag.Get(entry).Ends {
		entry.RemoveComponent(AwaitingDrag)
		p.beginDrag(w, entry, inputs)
	}
}

// --- DragUpdate: reposition and track hover ---

// DragUpdate repositions the dragged entity under the pointer and tracks
// which receiver it is hovering. It must run strictly before DropResolve in
// the same frame so a drop never resolves against a stale hover; Install
// fixes that order.
//
// Receiver ties are broken by iteration order: the first receiver whose
// bounds contain the pointer wins. Donburi iteration is archetype-stable,
// so the winner is deterministic for a static scene.
func (p *Plugin) DragUpdate(e *ecs.ECS) {
	w := e.World
	entry, ok := queryDragging.First(w)
	if !ok {
		return
	}
	screen, ok := p.View.CursorPosition()
	if !ok {
		return
	}
	world := p.View.ScreenToWorld(screen)
	inputs := ReadInputs(p.Input)
	drag := Dragging.Get(entry)

	var offset DragOffsetData
	if entry.HasComponent(DragOffset) {
		offset = *DragOffset.Get(entry)
	}

	// One-time detach from the layout parent so the entity can be
	// positioned independently of its container.
	if !drag.Reparented && entry.HasComponent(transform.Transform) {
		if _, hasParent := transform.GetParent(entry); hasParent {
			transform.RemoveParent(entry, true)
			drag.Reparented = true
			p.logf("reparented %d to root", entry.Entity().Id())
		}
	}

	switch {
	case entry.HasComponent(Layout) && drag.Reparented:
		// Detached UI entity: absolute screen positioning at the pointer,
		// minus the anchor offset. Conflicting edges and margin are reset
		// and the entity is forced visible and on top.
		style := Layout.Get(entry)
		style.Absolute = true
		style.Left = Px(screen.X - offset.X)
		style.Top = Px(screen.Y - offset.Y)
		style.Right = Auto
		style.Bottom = Auto
		style.Margin = Px(0)
		style.Hidden = false
		style.ZIndex = draggedZIndex
	case entry.HasComponent(Layout):
		// Still inside its container: transform feedback only.
		if hasParent(entry) {
			transform.SetWorldPosition(entry, world)
		}
	default:
		// Pure world object: follow the pointer's world position.
		if entry.HasComponent(transform.Transform) {
			transform.SetWorldPosition(entry, world)
		}
	}

	hover := p.receiverAt(w, screen, world)
	if hover != nil {
		if drag.Hovering != nil && *drag.Hovering == *hover {
			return
		}
		HoveredChangeEvent.Publish(w, HoveredChange{
			Hovered:      entry.Entity(),
			Receiver:     hover,
			PrevReceiver: drag.Hovering,
			Inputs:       inputs,
		})
		drag.Hovering = hover
		return
	}
	if drag.Hovering != nil {
		HoveredChangeEvent.Publish(w, HoveredChange{
			Hovered:      entry.Entity(),
			Receiver:     nil,
			PrevReceiver: drag.Hovering,
			Inputs:       inputs,
		})
		drag.Hovering = nil
	}
}

func hasParent(entry *donburi.Entry) bool {
	if !entry.HasComponent(transform.Transform) {
		return false
	}
	_, ok := transform.GetParent(entry)
	return ok
}

// receiverAt returns the first receiver whose bounds contain the pointer,
// or nil when none do.
func (p *Plugin) receiverAt(w donburi.World, screen, world dmath.Vec2) *donburi.Entity {
	var found *donburi.Entity
	queryReceiver.Each(w, func(entry *donburi.Entry) {
		if found != nil {
			return
		}
		if inBounds(entry, screen, world) {
			ent := entry.Entity()
			found = &ent
		}
	})
	return found
}

// --- DropResolve: Dragging → Idle ---

// DropResolve ends the drag once the required click buttons are no longer
// held. It re-runs receiver hit testing at the current pointer position,
// publishes a final hover clear followed by Dropped, and removes Dragging,
// making the entity eligible for a new drag next frame. A missed drop arms
// snap-back when the entity opted in.
func (p *Plugin) DropResolve(e *ecs.ECS) {
	w := e.World
	entry, ok := queryDragging.First(w)
	if !ok {
		return
	}
	if !entry.HasComponent(Draggable) {
		p.logf("dragging entity %d lost its Draggable; ending drag", entry.Entity().Id())
		entry.RemoveComponent(Dragging)
		return
	}
	inputs := ReadInputs(p.Input)
	d := Draggable.Get(entry)
	if inputs.Intersects(d.Required & Clicks) {
		return // still held
	}
	screen, ok := p.View.CursorPosition()
	if !ok {
		return
	}
	world := p.View.ScreenToWorld(screen)

	drag := Dragging.Get(entry)
	received := p.receiverAt(w, screen, world)

	HoveredChangeEvent.Publish(w, HoveredChange{
		Hovered:      entry.Entity(),
		Receiver:     nil,
		PrevReceiver: drag.Hovering,
		Inputs:       inputs,
	})
	DroppedEvent.Publish(w, Dropped{
		Dropped:  entry.Entity(),
		Received: received,
		Inputs:   inputs,
	})
	origin := drag.Origin
	entry.RemoveComponent(Dragging)
	p.logf("drop %d", entry.Entity().Id())

	if received == nil {
		p.startSnapBack(entry, origin)
	}
}
