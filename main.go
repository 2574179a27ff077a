package main

import (
	"flag"
	"log"

	"github.com/automoto/glasspane/config"
	"github.com/automoto/glasspane/fonts"
	"github.com/automoto/glasspane/scenes"
	"github.com/automoto/glasspane/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

type Game struct {
	scene Scene
}

func NewGame(saved *systems.SavedSettings, buttonID string) *Game {
	return &Game{
		scene: scenes.NewDestructionScene(saved, buttonID),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the glass always covers the whole viewport
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.Layout(width, height)
	return width, height
}

func main() {
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "show the debug overlay")
	flag.BoolVar(&config.Debug.Mute, "mute", false, "mute impact sounds for this run")
	buttonID := flag.String("button", config.Destruction.ButtonID, "identifier of the activation button")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	var saved *systems.SavedSettings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else if s, err := systems.LoadSettings(); err == nil {
		saved = s
	}

	if err := ebiten.RunGame(NewGame(saved, *buttonID)); err != nil {
		log.Fatal(err)
	}
}
