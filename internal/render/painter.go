package render

import (
	"image/color"

	"lifefx/internal/core"
	"lifefx/pkg/sims/life"
)

// Surface is a drawing target addressed in logical (unscaled) pixels. Each
// implementation applies its own device scale.
type Surface interface {
	Clear(c color.NRGBA)
	FillSquare(x, y, size float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
}

// Painter draws a life grid onto a Surface.
type Painter struct {
	Layout  core.Layout
	Palette Palette
	Shape   Shape
}

// NewPainter returns a painter using the default palette.
func NewPainter(layout core.Layout, shape Shape) *Painter {
	return &Painter{Layout: layout, Palette: DefaultPalette(), Shape: shape}
}

// Paint clears dst and draws every cell with a positive alpha. It returns the
// number of cells drawn.
func (p *Painter) Paint(dst Surface, g *life.Grid) int {
	if dst == nil {
		return 0
	}
	dst.Clear(p.Palette.Background)
	if g == nil || g.Empty() {
		return 0
	}

	size := p.Layout.CellSize
	radius := size / 2
	cols := g.Cols()
	drawn := 0
	for i, c := range g.Cells() {
		if c.Alpha <= 0 {
			continue
		}
		x, y := p.Layout.Origin(i%cols, i/cols)
		fill := p.Palette.Fade(c.Alpha)
		if p.Shape == ShapeSquare {
			dst.FillSquare(x, y, size, fill)
		} else {
			dst.FillCircle(x+radius, y+radius, radius, fill)
		}
		drawn++
	}
	return drawn
}
