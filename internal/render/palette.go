package render

import (
	"fmt"
	"image/color"
	"math"
)

// Shape selects how a live cell is drawn.
type Shape int

const (
	// ShapeCircle draws a filled dot inscribed in the cell.
	ShapeCircle Shape = iota
	// ShapeSquare fills the whole cell.
	ShapeSquare
)

func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	default:
		return "circle"
	}
}

// ParseShape maps a config value onto a Shape.
func ParseShape(v string) (Shape, error) {
	switch v {
	case "", "circle":
		return ShapeCircle, nil
	case "square":
		return ShapeSquare, nil
	}
	return ShapeCircle, fmt.Errorf("unknown shape %q", v)
}

// Palette holds the fixed background and live colours. The alpha channel of
// Live is ignored; cell alpha supplies it.
type Palette struct {
	Background color.NRGBA
	Live       color.NRGBA
}

// DefaultPalette is a green dot field on a near-black background.
func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 255},
		Live:       color.NRGBA{R: 34, G: 197, B: 94, A: 255},
	}
}

// Fade returns the live colour with its opacity set to alpha.
func (p Palette) Fade(alpha float64) color.NRGBA {
	c := p.Live
	c.A = alphaByte(alpha)
	return c
}

// Flatten composites the faded live colour over the background, for surfaces
// that cannot draw translucently.
func (p Palette) Flatten(alpha float64) color.NRGBA {
	return blendColors(p.Background, p.Live, alpha)
}

func alphaByte(alpha float64) uint8 {
	return uint8(math.Round(clamp01(alpha) * 255))
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb := float64(base.R), float64(base.G), float64(base.B)
	or, og, ob := float64(overlay.R), float64(overlay.G), float64(overlay.B)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: 255,
	}
}
