package life

// FadeSpeed is the per-generation alpha step applied to every cell.
const FadeSpeed = 0.15

// Cell is a single Game of Life cell. Alpha is a render-only fade value that
// trails the logical state.
type Cell struct {
	Alive bool
	Next  bool
	Alpha float64
}

// Grid implements Conway's Game of Life (B3/S23) on a toroidal board.
type Grid struct {
	cols, rows int
	cells      []Cell
	generation uint64
}

// New returns an all-dead grid with the provided dimensions. Non-positive
// dimensions produce an empty grid on which every operation is a no-op.
func New(cols, rows int) *Grid {
	if cols <= 0 || rows <= 0 {
		return &Grid{}
	}
	return &Grid{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool { return len(g.cells) == 0 }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// Generation returns the number of generations in which at least one cell flipped.
func (g *Grid) Generation() uint64 { return g.generation }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.cols + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	if g.Empty() {
		return 0, 0
	}
	x = (x%g.cols + g.cols) % g.cols
	y = (y%g.rows + g.rows) % g.rows
	return x, y
}

// At returns the cell at (x, y) after wrapping, or nil on an empty grid.
func (g *Grid) At(x, y int) *Cell {
	if g.Empty() {
		return nil
	}
	x, y = g.Wrap(x, y)
	return &g.cells[g.Index(x, y)]
}

// Place marks the wrapped cell live and fully opaque.
func (g *Grid) Place(x, y int) {
	c := g.At(x, y)
	if c == nil {
		return
	}
	c.Alive = true
	c.Alpha = 1
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Alive {
			n++
		}
	}
	return n
}

// Neighbors counts live cells among the 8 toroidal neighbours of (x, y).
func (g *Grid) Neighbors(x, y int) int {
	if g.Empty() {
		return 0
	}
	cols, rows := g.cols, g.rows
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + cols) % cols
			ny := (y + dy + rows) % rows
			if g.cells[ny*cols+nx].Alive {
				count++
			}
		}
	}
	return count
}

// Rule applies B3/S23 to a cell with the given state and neighbour count.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Advance computes the next generation. Every Next value is computed before
// any Alive value is committed. It reports whether any cell flipped.
func (g *Grid) Advance() bool {
	if g.Empty() {
		return false
	}
	cols, rows := g.cols, g.rows
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := &g.cells[y*cols+x]
			c.Next = Rule(c.Alive, g.Neighbors(x, y))
		}
	}

	changed := false
	for i := range g.cells {
		c := &g.cells[i]
		if c.Alive != c.Next {
			changed = true
			c.Alive = c.Next
		}
		if c.Alive {
			c.Alpha = min(1, c.Alpha+FadeSpeed)
		} else {
			c.Alpha = max(0, c.Alpha-FadeSpeed)
		}
	}

	if changed {
		g.generation++
	}
	return changed
}
