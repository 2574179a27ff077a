package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/glasspane/config"
	"github.com/automoto/glasspane/systems"
	"github.com/automoto/glasspane/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DestructionScene shows the page with destruction mode wired to its button
type DestructionScene struct {
	ecs      *ecs.ECS
	page     *ui.Page
	saved    *systems.SavedSettings
	buttonID string
	once     sync.Once
}

// NewDestructionScene creates the scene. saved may be nil; buttonID is the
// trigger the mode binds to.
func NewDestructionScene(saved *systems.SavedSettings, buttonID string) *DestructionScene {
	return &DestructionScene{saved: saved, buttonID: buttonID}
}

func (ds *DestructionScene) Update() {
	ds.once.Do(ds.configure)

	// Timers, settings shortcuts, input listeners, animations
	ds.ecs.Update()

	if ds.pageAcceptsInput() {
		ds.page.Update()
	}
}

// pageAcceptsInput reports whether the page may see this frame's input. The
// glass covers the page while active; ebitenui keeps button state across
// frames, so a skipped frame alone would replay a held press later.
func (ds *DestructionScene) pageAcceptsInput() bool {
	w := ds.ecs.World
	return !systems.IsActive(w) && !systems.PointerConsumed(w)
}

func (ds *DestructionScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Slate)

	if ds.ecs == nil {
		return
	}

	ds.page.Draw(screen)
	ds.ecs.Draw(screen)
}

// Layout records the window size as the viewport
func (ds *DestructionScene) Layout(width, height int) {
	ds.once.Do(ds.configure)
	systems.SetViewport(ds.ecs.World, width, height)
}

func (ds *DestructionScene) configure() {
	world := donburi.NewWorld()
	ds.ecs = ecs.NewECS(world)

	systems.GetOrCreateSettings(world)
	systems.ApplySavedSettings(world, ds.saved)

	ds.page = ui.NewPage(cfg.Destruction.ButtonID)
	if err := systems.InitDestructionMode(world, ds.page, ds.buttonID); err != nil {
		log.Printf("Warning: destruction mode disabled: %v", err)
	}

	// Clock first so deadlines see this tick
	ds.ecs.AddSystem(systems.UpdateTimers)
	ds.ecs.AddSystem(systems.UpdateSettings)
	ds.ecs.AddSystem(systems.UpdateInput)
	ds.ecs.AddSystem(systems.UpdateAvatar)
	ds.ecs.AddSystem(systems.UpdateShards)

	// Renderers, back to front
	ds.ecs.AddRenderer(cfg.Default, systems.DrawPane)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawShards)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawHint)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawAvatar)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
}
