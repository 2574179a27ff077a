package systems

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/automoto/glasspane/components"
	cfg "github.com/automoto/glasspane/config"
	"github.com/automoto/glasspane/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ErrTriggerNotFound is returned when the activation trigger is missing
var ErrTriggerNotFound = errors.New("destruction mode trigger not found")

// Trigger is an activation control the user can click
type Trigger interface {
	OnActivate(fn func())
}

// TriggerFinder resolves triggers by identifier
type TriggerFinder interface {
	Trigger(id string) (Trigger, bool)
}

// setCursorMode is replaced in tests, where no window exists
var setCursorMode = ebiten.SetCursorMode

// InitDestructionMode binds the trigger with the given id to Activate and
// creates the inactive session. A missing trigger is logged and reported
// without touching the world.
func InitDestructionMode(w donburi.World, finder TriggerFinder, buttonID string) error {
	trigger, ok := finder.Trigger(buttonID)
	if !ok {
		log.Printf("destruction mode button with id %q not found", buttonID)
		return fmt.Errorf("init destruction mode: %w", ErrTriggerNotFound)
	}

	if _, ok := components.Mode.First(w); !ok {
		factory.CreateSession(w)
	}
	GetOrCreatePane(w)

	trigger.OnActivate(func() {
		Activate(w)
	})
	return nil
}

// Activate enters destruction mode. Activating an active session does nothing.
func Activate(w donburi.World) {
	mode, ok := GetMode(w)
	if !ok || mode.State == components.ModeActive {
		return
	}
	mode.State = components.ModeActive

	width, height := Viewport(w)
	ResizePane(w, width, height)

	ShowHint(w)
	After(w, cfg.Destruction.HintDuration, func() {
		HideHint(w)
	})

	components.PointerMoveEvent.Subscribe(w, onPointerMove)
	components.PointerDownEvent.Subscribe(w, onPointerDown)
	components.ResizeEventType.Subscribe(w, onResize)
	components.KeyDownEvent.Subscribe(w, onKeyDown)

	setCursorMode(ebiten.CursorModeHidden)
}

// Deactivate leaves destruction mode and wipes the cracks. Shards already
// falling finish on their own schedule.
func Deactivate(w donburi.World) {
	mode, ok := GetMode(w)
	if !ok || mode.State != components.ModeActive {
		return
	}
	mode.State = components.ModeInactive

	components.PointerMoveEvent.Unsubscribe(w, onPointerMove)
	components.PointerDownEvent.Unsubscribe(w, onPointerDown)
	components.ResizeEventType.Unsubscribe(w, onResize)
	components.KeyDownEvent.Unsubscribe(w, onKeyDown)

	HideHint(w)
	ClearPane(w)

	setCursorMode(ebiten.CursorModeVisible)
}

// IsActive reports whether destruction mode is on
func IsActive(w donburi.World) bool {
	mode, ok := GetMode(w)
	return ok && mode.State == components.ModeActive
}

// GetMode returns the session mode singleton
func GetMode(w donburi.World) (*components.ModeData, bool) {
	entry, ok := components.Mode.First(w)
	if !ok {
		return nil, false
	}
	return components.Mode.Get(entry), true
}

func onPointerMove(w donburi.World, e *components.PointerEvent) {
	MoveAvatar(w, e.X, e.Y)
}

// onPointerDown claims the click, then cracks, shards and sound in that order
func onPointerDown(w donburi.World, e *components.PointerEvent) {
	e.PreventDefault()
	e.StopPropagation()

	SwingAvatar(w)
	DrawShatter(w, e.X, e.Y)
	CreateFallingShards(w, e.X, e.Y)
	PlayImpactSound(w)
}

func onResize(w donburi.World, e components.ResizeEvent) {
	ResizePane(w, e.Width, e.Height)
}

func onKeyDown(w donburi.World, e components.KeyEvent) {
	if slices.Contains(cfg.Input.Bindings[cfg.ActionCancel].Keys, e.Key) {
		Deactivate(w)
	}
}
