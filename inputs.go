package dragdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Input flags ---

// InputFlags is a bitmask of the pointer buttons and keyboard modifiers
// sampled into one per-frame snapshot. Values combine with bitwise OR
// (e.g. LeftClick | Shift).
type InputFlags uint8

const (
	LeftClick   InputFlags = 1 << iota // primary (left) mouse button
	RightClick                         // secondary (right) mouse button
	MiddleClick                        // middle mouse button
	Shift                              // either Shift key
	Ctrl                               // either Control key
	Alt                                // either Alt / Option key
)

const (
	// Clicks masks the three pointer buttons.
	Clicks = LeftClick | RightClick | MiddleClick
	// Modifiers masks the three keyboard modifiers.
	Modifiers = Shift | Ctrl | Alt
)

// Contains reports whether every bit of other is set in f.
func (f InputFlags) Contains(other InputFlags) bool { return f&other == other }

// Intersects reports whether f and other share any bit.
func (f InputFlags) Intersects(other InputFlags) bool { return f&other != 0 }

// Union returns the bits set in either f or other.
func (f InputFlags) Union(other InputFlags) InputFlags { return f | other }

// Left reports whether the left mouse button bit is set.
func (f InputFlags) Left() bool { return f&LeftClick != 0 }

// Right reports whether the right mouse button bit is set.
func (f InputFlags) Right() bool { return f&RightClick != 0 }

// Middle reports whether the middle mouse button bit is set.
func (f InputFlags) Middle() bool { return f&MiddleClick != 0 }

// HasShift reports whether the Shift bit is set.
func (f InputFlags) HasShift() bool { return f&Shift != 0 }

// HasCtrl reports whether the Ctrl bit is set.
func (f InputFlags) HasCtrl() bool { return f&Ctrl != 0 }

// HasAlt reports whether the Alt bit is set.
func (f InputFlags) HasAlt() bool { return f&Alt != 0 }

// --- Input sources ---

// InputSource supplies instantaneous press state for pointer buttons and
// modifier keys. The real device is [Device]; [ScriptedInput] drives the
// pipeline from code.
type InputSource interface {
	ButtonPressed(ebiten.MouseButton) bool
	KeyPressed(ebiten.Key) bool
}

// Device reads the real mouse and keyboard via Ebitengine.
type Device struct{}

// ButtonPressed reports whether the given mouse button is held down.
func (Device) ButtonPressed(b ebiten.MouseButton) bool { return ebiten.IsMouseButtonPressed(b) }

// KeyPressed reports whether the given key is held down.
func (Device) KeyPressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }

// ReadInputs samples src into a single snapshot value. Pure function of the
// source's current state; nothing is persisted between calls.
func ReadInputs(src InputSource) InputFlags {
	var f InputFlags
	if src.ButtonPressed(ebiten.MouseButtonLeft) {
		f |= LeftClick
	}
	if src.ButtonPressed(ebiten.MouseButtonRight) {
		f |= RightClick
	}
	if src.ButtonPressed(ebiten.MouseButtonMiddle) {
		f |= MiddleClick
	}
	if src.KeyPressed(ebiten.KeyShiftLeft) || src.KeyPressed(ebiten.KeyShiftRight) {
		f |= Shift
	}
	if src.KeyPressed(ebiten.KeyControlLeft) || src.KeyPressed(ebiten.KeyControlRight) {
		f |= Ctrl
	}
	if src.KeyPressed(ebiten.KeyAltLeft) || src.KeyPressed(ebiten.KeyAltRight) {
		f |= Alt
	}
	return f
}

// --- Scripted input ---

// ScriptedInput is an InputSource driven from code instead of a device.
// Set the current state directly, or queue a sequence of per-frame states
// with Push and step through it with Advance before each tick. Used by the
// package tests and useful for input automation.
type ScriptedInput struct {
	current InputFlags
	queue   []InputFlags
}

// Set replaces the current input state.
func (s *ScriptedInput) Set(f InputFlags) { s.current = f }

// Push appends states to the queue, one per subsequent Advance call.
func (s *ScriptedInput) Push(states ...InputFlags) {
	s.queue = append(s.queue, states...)
}

// Advance pops the next queued state into the current state and returns it.
// With an empty queue the current state is kept, so a held chord persists
// across frames without re-pushing.
func (s *ScriptedInput) Advance() InputFlags {
	if len(s.queue) > 0 {
		s.current = s.queue[0]
		copy(s.queue, s.queue[1:])
		s.queue = s.queue[:len(s.queue)-1]
	}
	return s.current
}

// ButtonPressed reports button state derived from the current flags.
func (s *ScriptedInput) ButtonPressed(b ebiten.MouseButton) bool {
	switch b {
	case ebiten.MouseButtonLeft:
		return s.current.Left()
	case ebiten.MouseButtonRight:
		return s.current.Right()
	case ebiten.MouseButtonMiddle:
		return s.current.Middle()
	}
	return false
}

// KeyPressed reports modifier state derived from the current flags.
func (s *ScriptedInput) KeyPressed(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyShiftLeft, ebiten.KeyShiftRight:
		return s.current.HasShift()
	case ebiten.KeyControlLeft, ebiten.KeyControlRight:
		return s.current.HasCtrl()
	case ebiten.KeyAltLeft, ebiten.KeyAltRight:
		return s.current.HasAlt()
	}
	return false
}
