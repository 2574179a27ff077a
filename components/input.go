package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PointerEvent is a pointer move or pointer down sample in window coordinates.
// Handlers may stop propagation so outer layers ignore the event.
type PointerEvent struct {
	X, Y   float64
	Button ebiten.MouseButton

	defaultPrevented   bool
	propagationStopped bool
}

func (e *PointerEvent) PreventDefault()          { e.defaultPrevented = true }
func (e *PointerEvent) StopPropagation()         { e.propagationStopped = true }
func (e *PointerEvent) DefaultPrevented() bool   { return e.defaultPrevented }
func (e *PointerEvent) PropagationStopped() bool { return e.propagationStopped }

// ResizeEvent carries the new viewport size
type ResizeEvent struct {
	Width, Height int
}

// KeyEvent is a key press
type KeyEvent struct {
	Key ebiten.Key
}

// Input event types. Listeners subscribe and unsubscribe on the world;
// events are delivered when the input system processes them.
var (
	PointerMoveEvent = events.NewEventType[*PointerEvent]()
	PointerDownEvent = events.NewEventType[*PointerEvent]()
	ResizeEventType  = events.NewEventType[ResizeEvent]()
	KeyDownEvent     = events.NewEventType[KeyEvent]()
)

// InputData stores the last polled input state (singleton)
type InputData struct {
	CursorX, CursorY int
	ViewportWidth    int
	ViewportHeight   int
	// Set when the viewport changed since the last resize dispatch
	ResizePending bool
	// Set when a pointer-down this frame was stopped by a listener
	PointerConsumed bool
}

var Input = donburi.NewComponentType[InputData]()
