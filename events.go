package dragdrop

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Dragged is published when an entity begins being dragged, either on the
// qualifying press or once its hold timer elapses.
type Dragged struct {
	// Dragged is the entity now being dragged.
	Dragged donburi.Entity
	// Inputs is the snapshot at the time of the transition.
	Inputs InputFlags
}

// DragAwait is published when a qualifying press arms a hold timer.
type DragAwait struct {
	// Awaiting is the entity whose timer is running.
	Awaiting donburi.Entity
	// Inputs is the snapshot at the time of the transition.
	Inputs InputFlags
}

// HoveredChange is published when the receiver under a dragged entity
// changes, and once more with a nil Receiver when the entity is dropped.
type HoveredChange struct {
	// Hovered is the entity being dragged.
	Hovered donburi.Entity
	// Receiver is the receiver now under the pointer, nil when none.
	Receiver *donburi.Entity
	// PrevReceiver is the receiver previously under the pointer, if any.
	PrevReceiver *donburi.Entity
	// Inputs is the snapshot at the time of the transition.
	Inputs InputFlags
}

// Dropped is published when a drag ends.
type Dropped struct {
	// Dropped is the entity that was released.
	Dropped donburi.Entity
	// Received is the receiver under the pointer at release, nil on a miss.
	Received *donburi.Entity
	// Inputs is the snapshot at the time of the transition.
	Inputs InputFlags
}

// Event queues for the four lifecycle events. Subscribe with the event
// type's Subscribe method; the installed pipeline pumps all queues at the
// end of each frame.
var (
	DraggedEvent       = events.NewEventType[Dragged]()
	DragAwaitEvent     = events.NewEventType[DragAwait]()
	HoveredChangeEvent = events.NewEventType[HoveredChange]()
	DroppedEvent       = events.NewEventType[Dropped]()
)
