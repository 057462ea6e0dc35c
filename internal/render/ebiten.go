//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an ebiten image whose backing size is the logical
// viewport multiplied by the device scale factor.
type EbitenSurface struct {
	dst   *ebiten.Image
	scale float64
}

// NewEbitenSurface returns a surface without a target; call Target before
// painting.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{scale: 1}
}

// Target points the surface at dst with the given device scale.
func (s *EbitenSurface) Target(dst *ebiten.Image, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.dst = dst
	s.scale = scale
}

// Clear fills the target with c.
func (s *EbitenSurface) Clear(c color.NRGBA) {
	if s.dst == nil {
		return
	}
	s.dst.Fill(c)
}

// FillSquare draws an anti-aliased filled square.
func (s *EbitenSurface) FillSquare(x, y, size float64, c color.NRGBA) {
	if s.dst == nil {
		return
	}
	k := s.scale
	vector.DrawFilledRect(s.dst, float32(x*k), float32(y*k), float32(size*k), float32(size*k), c, true)
}

// FillCircle draws an anti-aliased filled circle.
func (s *EbitenSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if s.dst == nil {
		return
	}
	k := s.scale
	vector.DrawFilledCircle(s.dst, float32(cx*k), float32(cy*k), float32(r*k), c, true)
}
