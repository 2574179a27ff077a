package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/glasspane/config"
	"github.com/automoto/glasspane/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Page is the chrome behind the glass: a title, some copy and the
// activation button. Buttons are registered under identifiers so the
// destruction mode can find its trigger.
type Page struct {
	UI *ebitenui.UI

	buttons map[string]*widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// buttonTrigger adapts an ebitenui button to systems.Trigger
type buttonTrigger struct {
	button *widget.Button
}

func (t buttonTrigger) OnActivate(fn func()) {
	t.button.ClickedEvent.AddHandler(func(args interface{}) {
		fn()
	})
}

// NewPage builds the page with the activation button registered under id.
// The OS cursor is left to the destruction mode.
func NewPage(id string) *Page {
	input.CursorManagementEnabled = false

	p := &Page{
		buttons: make(map[string]*widget.Button),
	}

	p.loadFonts()
	p.buildUI(id)

	return p
}

// Trigger returns the button registered under id
func (p *Page) Trigger(id string) (systems.Trigger, bool) {
	b, ok := p.buttons[id]
	if !ok {
		return nil, false
	}
	return buttonTrigger{button: b}, true
}

// Register makes b findable under id
func (p *Page) Register(id string, b *widget.Button) {
	p.buttons[id] = b
}

func (p *Page) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	p.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   32,
	}
	p.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	p.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (p *Page) buildUI(id string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Slate)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.C.Title, &p.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Had enough of this page? Break it.", &p.normalFace, &widget.LabelColor{
			Idle: color.RGBA{203, 213, 225, 255},
		}),
	))

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 40),
		),
		widget.ButtonOpts.Image(p.buttonImage()),
		widget.ButtonOpts.Text(cfg.Destruction.ButtonLabel, &p.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
	)
	p.Register(id, button)
	contentContainer.AddChild(button)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("+/- volume   M mute   F11 fullscreen   F3 debug", &p.smallFace, &widget.LabelColor{
			Idle: color.RGBA{148, 163, 184, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (p *Page) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.DarkBlue)
	hover := image.NewNineSliceColor(cfg.LightBlue)
	pressed := image.NewNineSliceColor(color.RGBA{40, 70, 120, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update calls the UI's Update method
func (p *Page) Update() {
	p.UI.Update()
}

// Draw renders the page
func (p *Page) Draw(screen *ebiten.Image) {
	p.UI.Draw(screen)
}
