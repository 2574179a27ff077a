package systems

import (
	"github.com/automoto/glasspane/components"
	cfg "github.com/automoto/glasspane/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for just-pressed keys to avoid allocations
var pressedKeys []ebiten.Key

// UpdateInput polls raw input and dispatches it to the subscribed listeners
// in order: resize, pointer move, pointer down, key down.
// Must run BEFORE the page chrome update.
func UpdateInput(e *ecs.ECS) {
	w := e.World
	input := getOrCreateInput(w)
	input.PointerConsumed = false

	if input.ResizePending {
		input.ResizePending = false
		DispatchResize(w, input.ViewportWidth, input.ViewportHeight)
	}

	x, y := ebiten.CursorPosition()
	if x != input.CursorX || y != input.CursorY {
		input.CursorX, input.CursorY = x, y
		DispatchPointerMove(w, float64(x), float64(y))
	}

	for _, btn := range cfg.Input.Bindings[cfg.ActionSmash].MouseButtons {
		if !inpututil.IsMouseButtonJustPressed(btn) {
			continue
		}
		if ev := DispatchPointerDown(w, float64(x), float64(y), btn); ev.PropagationStopped() {
			input.PointerConsumed = true
		}
	}

	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	for _, key := range pressedKeys {
		DispatchKeyDown(w, key)
	}
}

// SetViewport records the layout size. A change is dispatched as a resize
// on the next input update.
func SetViewport(w donburi.World, width, height int) {
	input := getOrCreateInput(w)
	if input.ViewportWidth == width && input.ViewportHeight == height {
		return
	}
	input.ViewportWidth = width
	input.ViewportHeight = height
	input.ResizePending = true
}

// Viewport returns the last recorded layout size, or the configured window
// size before the first layout
func Viewport(w donburi.World) (int, int) {
	input := getOrCreateInput(w)
	if input.ViewportWidth == 0 || input.ViewportHeight == 0 {
		return cfg.C.Width, cfg.C.Height
	}
	return input.ViewportWidth, input.ViewportHeight
}

// PointerConsumed reports whether a listener stopped this frame's pointer-down
func PointerConsumed(w donburi.World) bool {
	return getOrCreateInput(w).PointerConsumed
}

// DispatchPointerMove delivers a pointer move to the subscribed listeners
func DispatchPointerMove(w donburi.World, x, y float64) {
	components.PointerMoveEvent.Publish(w, &components.PointerEvent{X: x, Y: y})
	components.PointerMoveEvent.ProcessEvents(w)
}

// DispatchPointerDown delivers a pointer down and returns the event so the
// caller can see whether a listener claimed it
func DispatchPointerDown(w donburi.World, x, y float64, button ebiten.MouseButton) *components.PointerEvent {
	ev := &components.PointerEvent{X: x, Y: y, Button: button}
	components.PointerDownEvent.Publish(w, ev)
	components.PointerDownEvent.ProcessEvents(w)
	return ev
}

// DispatchResize delivers a viewport resize to the subscribed listeners
func DispatchResize(w donburi.World, width, height int) {
	components.ResizeEventType.Publish(w, components.ResizeEvent{Width: width, Height: height})
	components.ResizeEventType.ProcessEvents(w)
}

// DispatchKeyDown delivers a key press to the subscribed listeners
func DispatchKeyDown(w donburi.World, key ebiten.Key) {
	components.KeyDownEvent.Publish(w, components.KeyEvent{Key: key})
	components.KeyDownEvent.ProcessEvents(w)
}

func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
	}
	return components.Input.Get(entry)
}
