package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"lifefx/internal/core"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// ImageSurface rasterises onto an in-memory RGBA buffer. The backing buffer is
// the logical size multiplied by the device scale.
type ImageSurface struct {
	view  core.Size
	scale float64
	img   *image.RGBA
	z     *vector.Rasterizer
	mask  *image.Alpha
}

// NewImageSurface allocates a surface for a logical viewport at the given
// device scale. Non-positive scales fall back to 1.
func NewImageSurface(view core.Size, scale float64) *ImageSurface {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(float64(max(view.W, 0)) * scale))
	h := int(math.Ceil(float64(max(view.H, 0)) * scale))
	z := vector.NewRasterizer(1, 1)
	return &ImageSurface{view: view, scale: scale, img: image.NewRGBA(image.Rect(0, 0, w, h)), z: z}
}

// Image exposes the backing buffer.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Size returns the logical viewport size.
func (s *ImageSurface) Size() core.Size { return s.view }

// Scale returns the device scale applied to every draw.
func (s *ImageSurface) Scale() float64 { return s.scale }

// Clear fills the whole buffer with c.
func (s *ImageSurface) Clear(c color.NRGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillSquare composites an axis-aligned square over the buffer.
func (s *ImageSurface) FillSquare(x, y, size float64, c color.NRGBA) {
	x0, y0 := x*s.scale, y*s.scale
	side := size * s.scale
	box := s.begin(x0, y0, x0+side, y0+side)
	ox, oy := float32(x0)-float32(box.Min.X), float32(y0)-float32(box.Min.Y)
	w := float32(side)
	s.z.MoveTo(ox, oy)
	s.z.LineTo(ox+w, oy)
	s.z.LineTo(ox+w, oy+w)
	s.z.LineTo(ox, oy+w)
	s.z.ClosePath()
	s.composite(box, c)
}

// FillCircle composites a filled circle over the buffer.
func (s *ImageSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	sx, sy, sr := cx*s.scale, cy*s.scale, r*s.scale
	box := s.begin(sx-sr, sy-sr, sx+sr, sy+sr)
	x, y := float32(sx)-float32(box.Min.X), float32(sy)-float32(box.Min.Y)
	rr := float32(sr)
	k := float32(kappa) * rr
	s.z.MoveTo(x+rr, y)
	s.z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	s.z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	s.z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	s.z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	s.z.ClosePath()
	s.composite(box, c)
}

// begin sizes the rasterizer to the whole-pixel box covering the shape.
func (s *ImageSurface) begin(x0, y0, x1, y1 float64) image.Rectangle {
	box := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	)
	s.z.Reset(max(box.Dx(), 1), max(box.Dy(), 1))
	return box
}

// composite rasterises the pending path into a coverage mask and blends c
// through it onto the part of box that lies inside the buffer.
func (s *ImageSurface) composite(box image.Rectangle, c color.NRGBA) {
	clipped := box.Intersect(s.img.Bounds())
	if clipped.Empty() {
		return
	}
	size := s.z.Size()
	if s.mask == nil || s.mask.Bounds().Size() != size {
		s.mask = image.NewAlpha(image.Rectangle{Max: size})
	}
	s.z.DrawOp = draw.Src
	s.z.Draw(s.mask, s.mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(s.img, clipped, image.NewUniform(c), image.Point{}, s.mask, clipped.Min.Sub(box.Min), draw.Over)
}
