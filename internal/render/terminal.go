package render

import (
	"image/color"
	"math"

	"lifefx/internal/core"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TermLayout maps one logical pixel to one cell of the terminal grid.
func TermLayout() core.Layout {
	return core.Layout{CellSize: 1, Gap: 0}
}

// TermSurface draws onto a tcell screen. Each logical pixel spans two
// terminal columns so cells look roughly square. Terminals cannot blend, so
// colours are flattened against the background.
type TermSurface struct {
	screen tcell.Screen
	bg     color.NRGBA
	dot    rune
}

// NewTermSurface wraps a tcell screen.
func NewTermSurface(screen tcell.Screen) *TermSurface {
	return &TermSurface{screen: screen, dot: dotGlyph(runewidth.DefaultCondition)}
}

// dotGlyph returns the circle glyph, or a narrow fallback when cond renders
// the dot two columns wide (East Asian ambiguous width).
func dotGlyph(cond *runewidth.Condition) rune {
	if cond.RuneWidth('●') == 1 {
		return '●'
	}
	return 'o'
}

// Size returns the logical viewport: half the terminal width, full height.
func (s *TermSurface) Size() core.Size {
	if s.screen == nil {
		return core.Size{}
	}
	w, h := s.screen.Size()
	return core.Size{W: w / 2, H: h}
}

// Clear paints every terminal cell with c.
func (s *TermSurface) Clear(c color.NRGBA) {
	if s.screen == nil {
		return
	}
	s.bg = c
	style := tcell.StyleDefault.Background(toTcell(c)).Foreground(toTcell(c))
	s.screen.Fill(' ', style)
}

// FillSquare fills the terminal cells under the logical pixel at (x, y).
func (s *TermSurface) FillSquare(x, y, _ float64, c color.NRGBA) {
	flat := toTcell(blendColors(s.bg, c, float64(c.A)/255))
	s.put(x, y, ' ', ' ', tcell.StyleDefault.Background(flat).Foreground(flat))
}

// FillCircle draws a dot glyph centred on the logical pixel containing (cx, cy).
func (s *TermSurface) FillCircle(cx, cy, _ float64, c color.NRGBA) {
	flat := toTcell(blendColors(s.bg, c, float64(c.A)/255))
	s.put(cx, cy, s.dot, ' ', tcell.StyleDefault.Background(toTcell(s.bg)).Foreground(flat))
}

// Show flushes pending changes to the terminal.
func (s *TermSurface) Show() {
	if s.screen != nil {
		s.screen.Show()
	}
}

func (s *TermSurface) put(x, y float64, left, right rune, style tcell.Style) {
	if s.screen == nil {
		return
	}
	col := int(math.Floor(x)) * 2
	row := int(math.Floor(y))
	w, h := s.screen.Size()
	if col < 0 || row < 0 || col+1 >= w || row >= h {
		return
	}
	s.screen.SetContent(col, row, left, nil, style)
	s.screen.SetContent(col+1, row, right, nil, style)
}

func toTcell(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
