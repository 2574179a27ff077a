package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Surface is the persistent raster the cracks are drawn onto.
// Setting its size discards its contents.
type Surface interface {
	Resize(width, height int)
	Size() (width, height int)
	StrokeLine(x0, y0, x1, y1, width float32, clr color.Color)
	Clear()
	Draw(screen *ebiten.Image)
}

// GlassPaneData holds the drawing surface and the last known viewport
type GlassPaneData struct {
	Surface        Surface
	ViewportWidth  int
	ViewportHeight int
}

var GlassPane = donburi.NewComponentType[GlassPaneData]()
