package systems

import (
	"image/color"

	"github.com/automoto/glasspane/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// imageSurface is a Surface backed by an offscreen ebiten image
type imageSurface struct {
	img           *ebiten.Image
	width, height int
}

// NewImageSurface returns an empty surface; it allocates on the first Resize.
func NewImageSurface() components.Surface {
	return &imageSurface{}
}

// Resize reallocates the image, discarding its pixels like a canvas resize
func (s *imageSurface) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(width, height)
	s.width, s.height = width, height
}

func (s *imageSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *imageSurface) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(s.img, x0, y0, x1, y1, width, clr, true)
}

func (s *imageSurface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

func (s *imageSurface) Draw(screen *ebiten.Image) {
	if s.img == nil {
		return
	}
	screen.DrawImage(s.img, nil)
}

// ResizePane sizes the drawing surface to the viewport
func ResizePane(w donburi.World, width, height int) {
	pane := GetOrCreatePane(w)
	pane.ViewportWidth = width
	pane.ViewportHeight = height
	pane.Surface.Resize(width, height)
}

// ClearPane erases every crack from the surface
func ClearPane(w donburi.World) {
	GetOrCreatePane(w).Surface.Clear()
}

// DrawPane renders the accumulated cracks
func DrawPane(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.GlassPane.First(e.World)
	if !ok {
		return
	}
	components.GlassPane.Get(entry).Surface.Draw(screen)
}

// SetSurface installs the drawing surface, creating the pane if needed
func SetSurface(w donburi.World, surface components.Surface) {
	GetOrCreatePane(w).Surface = surface
}

// GetOrCreatePane returns the singleton GlassPane component, creating it if needed
func GetOrCreatePane(w donburi.World) *components.GlassPaneData {
	entry, ok := components.GlassPane.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.GlassPane))
		components.GlassPane.SetValue(entry, components.GlassPaneData{
			Surface: NewImageSurface(),
		})
	}
	return components.GlassPane.Get(entry)
}
