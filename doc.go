// Package dragdrop is a pointer-driven drag-and-drop layer for [Donburi]
// ECS worlds rendered with [Ebitengine].
//
// Attach [Draggable] to any entity with a transform to let the pointer pick
// it up, and tag drop targets with [Receiver]. The plugin manages the full
// lifecycle (pick-up, optional hold-to-drag delay, per-frame repositioning,
// hover tracking over receivers, drop resolution) and publishes typed
// events ([Dragged], [DragAwait], [HoveredChange], [Dropped]) that the host
// application consumes.
//
// # Quick start
//
//	world := donburi.NewWorld()
//	e := ecs.NewECS(world)
//
//	plugin := dragdrop.NewPlugin(dragdrop.ScreenView{Width: 640, Height: 480})
//	plugin.Install(e)
//
//	item := world.Entry(world.Create(
//		transform.Transform, dragdrop.Sprite, dragdrop.Draggable,
//	))
//	transform.SetWorldPosition(item, math.NewVec2(100, 100))
//
//	dragdrop.DroppedEvent.Subscribe(world, func(w donburi.World, ev dragdrop.Dropped) {
//		// ev.Received is the receiver under the pointer, nil on a miss.
//	})
//
// Call e.Update() once per frame; the plugin's systems run in a fixed order
// inside it.
//
// # State machine
//
// Each frame the pipeline runs StartDrag, AwaitDrag, DragUpdate, and
// DropResolve, in that order. At most one entity is ever awaiting or
// dragging; StartDrag refuses to begin a new session while one exists.
// An entity whose [Draggable] declares a MinimumHeld duration passes
// through AwaitingDrag first and only becomes Dragging once the hold timer
// elapses with the input chord still intact.
//
// # Host collaborators
//
// The plugin never owns entity identity or polls devices directly. Input
// comes from an [InputSource] (the real [Device] by default, or
// [ScriptedInput] for tests), pointer projection from a [View] ([Camera] or
// [ScreenView]), and time from a [Clock]. All three are injectable, so the
// whole state machine runs headless under test.
//
// [Donburi]: https://github.com/yohamta/donburi
// [Ebitengine]: https://ebitengine.org
package dragdrop
