package core

import "math"

// Size describes viewport dimensions in logical (unscaled) pixels.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Layout fixes the on-screen geometry of a single cell.
type Layout struct {
	CellSize float64
	Gap      float64
}

// DefaultLayout returns 8px cells separated by a 1px gap.
func DefaultLayout() Layout {
	return Layout{CellSize: 8, Gap: 1}
}

// Pitch is the distance between the origins of adjacent cells.
func (l Layout) Pitch() float64 { return l.CellSize + l.Gap }

// Dims returns how many whole cells fit into the viewport.
func (l Layout) Dims(view Size) (cols, rows int) {
	pitch := l.Pitch()
	if pitch <= 0 || view.Empty() {
		return 0, 0
	}
	return int(math.Floor(float64(view.W) / pitch)), int(math.Floor(float64(view.H) / pitch))
}

// Origin returns the top-left corner of cell (x, y).
func (l Layout) Origin(x, y int) (float64, float64) {
	pitch := l.Pitch()
	return float64(x) * pitch, float64(y) * pitch
}
