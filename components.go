package dragdrop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// --- Configuration components ---

// DraggableData marks an entity as draggable and declares the input chord
// that starts a drag. Attach it at scene construction; the pipeline never
// removes it.
//
// Required and Disallowed are not validated for disjointness. A bit present
// in both can never form a qualifying chord: holding it satisfies Required
// but also trips Disallowed, so the entity simply never starts a drag.
type DraggableData struct {
	// Required bits must all be held for dragging to start or continue.
	Required InputFlags
	// Disallowed bits veto the drag while any of them is held.
	Disallowed InputFlags
	// MinimumHeld is how long the chord must be held before the drag is
	// confirmed. Zero starts the drag on the same frame as the press.
	MinimumHeld time.Duration
}

// DefaultDraggable is the common configuration: plain left-click drag,
// vetoed while the right or middle button is down.
func DefaultDraggable() DraggableData {
	return DraggableData{
		Required:   LeftClick,
		Disallowed: RightClick | MiddleClick,
	}
}

// Draggable marks an entity as draggable.
var Draggable = donburi.NewComponentType[DraggableData](DefaultDraggable())

// Receiver tags an entity as able to accept a dropped draggable.
var Receiver = donburi.NewTag().SetName("Receiver")

// DragOffsetData is the fixed displacement between the pointer and the
// dragged entity's rendered anchor, preserved through the drag.
type DragOffsetData struct {
	X, Y float64
}

// DragOffset holds the pointer-to-anchor offset for a draggable.
var DragOffset = donburi.NewComponentType[DragOffsetData]()

// DepthData is an optional stacking order for candidate selection. When two
// draggables overlap under the pointer, the greatest depth wins the drag.
// UI entities may rely on LayoutData.ZIndex instead.
type DepthData struct {
	Z float64
}

// Depth holds an entity's stacking order.
var Depth = donburi.NewComponentType[DepthData]()

// --- State components ---

// AwaitingDragData is attached while a hold-to-drag timer runs. Ends is an
// absolute deadline on the plugin clock, re-checked every frame; no
// goroutine or timer sleeps behind it.
type AwaitingDragData struct {
	Ends time.Duration
}

// AwaitingDrag marks the (single) entity waiting out its hold timer.
var AwaitingDrag = donburi.NewComponentType[AwaitingDragData]()

// DraggingData is attached while an entity is actively dragged.
type DraggingData struct {
	// Hovering is the receiver currently under the pointer, nil when none.
	// Always names a live Receiver entity while set.
	Hovering *donburi.Entity
	// Reparented is set once the entity has been detached from its layout
	// parent for independent positioning. One-time transition.
	Reparented bool
	// Origin is the entity's world position when the drag began. Snap-back
	// returns the entity here after a missed drop.
	Origin dmath.Vec2
}

// Dragging marks the (single) entity currently being dragged.
var Dragging = donburi.NewComponentType[DraggingData]()

// --- Host layout and sprite bindings ---

// UINodeData carries the size computed by the host layout system. Its
// presence switches hit testing to screen space: the entity's bounds are
// this size centered on its world position, tested against the logical
// cursor position.
type UINodeData struct {
	Width, Height float64
}

// UINode holds a layout node's computed size.
var UINode = donburi.NewComponentType[UINodeData]()

// Val is a layout length: a pixel amount or Auto.
type Val struct {
	Px   float64
	Auto bool
}

// Px returns a pixel-valued layout length.
func Px(v float64) Val { return Val{Px: v} }

// Auto is the automatic layout length.
var Auto = Val{Auto: true}

// LayoutData is the style block shared with the host layout system. While a
// UI entity is dragged, DragUpdate switches it to absolute positioning at
// the pointer, resets conflicting edges and margin, and forces it visible
// and on top.
type LayoutData struct {
	Absolute bool
	Left     Val
	Top      Val
	Right    Val
	Bottom   Val
	Margin   Val
	Hidden   bool
	ZIndex   int
}

// Layout holds an entity's layout style.
var Layout = donburi.NewComponentType[LayoutData]()

// SpriteData binds a loaded image to a world-space entity. Hit testing
// multiplies the entity's world scale by the image's pixel size. A nil
// Image means the asset has not finished loading; the entity is then never
// hit rather than erroring.
type SpriteData struct {
	Image *ebiten.Image
}

// Sprite holds an entity's image binding.
var Sprite = donburi.NewComponentType[SpriteData]()
