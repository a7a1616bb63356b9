package dragdrop

import (
	"fmt"
	"os"
	"time"

	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// maxFrameDelta caps the per-frame time step fed to snap-back tweens so a
// stalled process doesn't jump the animation to its end.
const maxFrameDelta = 100 * time.Millisecond

// Plugin owns the drag-and-drop pipeline and the host collaborators it
// samples each frame. Construct with NewPlugin, override fields as needed,
// then Install into the scheduler before the first Update.
type Plugin struct {
	// Input supplies button and modifier state. Defaults to the real Device.
	Input InputSource
	// View resolves and projects the pointer.
	View View
	// Clock supplies monotonic elapsed time for hold deadlines and tweens.
	// Defaults to a wall clock started at construction.
	Clock Clock
	// Debug routes per-frame diagnostics to stderr.
	Debug bool

	lastTick time.Duration
	ticked   bool
}

// NewPlugin returns a Plugin over the given view with the real input device
// and a wall clock.
func NewPlugin(view View) *Plugin {
	return &Plugin{
		Input: Device{},
		View:  view,
		Clock: NewClock(),
	}
}

// Install registers the pipeline into the scheduler as an explicit ordered
// list: StartDrag, AwaitDrag, DragUpdate, DropResolve, then snap-back and
// event dispatch. DragUpdate runs strictly before DropResolve within a
// frame, so drop resolution never sees a hover computed from the previous
// frame's pointer position.
func (p *Plugin) Install(e *ecs.ECS) {
	e.AddSystem(p.StartDrag)
	e.AddSystem(p.AwaitDrag)
	e.AddSystem(p.DragUpdate)
	e.AddSystem(p.DropResolve)
	e.AddSystem(p.snapBackSystem)
	e.AddSystem(p.dispatchEvents)
}

// dispatchEvents pumps every registered event queue, delivering this
// frame's transitions to subscribers. Final pipeline stage.
func (p *Plugin) dispatchEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

// frameDelta returns seconds since the previous call, clamped to
// maxFrameDelta.
func (p *Plugin) frameDelta() float32 {
	now := p.Clock.Elapsed()
	var dt time.Duration
	if p.ticked {
		dt = now - p.lastTick
	}
	p.lastTick = now
	p.ticked = true
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	return float32(dt.Seconds())
}

// logf prints a diagnostic line to stderr when Debug is set. Never called
// for control flow; disabling it changes nothing but the output.
func (p *Plugin) logf(format string, args ...any) {
	if !p.Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[dragdrop] "+format+"\n", args...)
}
