package term

import (
	"fmt"

	"lifefx/internal/driver"

	"github.com/gdamore/tcell/v2"
)

var statusStyle = tcell.StyleDefault.
	Foreground(tcell.NewRGBColor(220, 220, 230)).
	Background(tcell.NewRGBColor(16, 16, 20))

// statusLine formats the bottom-row readout.
func statusLine(s *driver.Simulation) string {
	state := "running"
	if !s.Running() {
		state = "paused"
	}
	return fmt.Sprintf(" gen %d  pop %d  speed %d/s  %s  [space] play/pause  [F5] reset  [+/-] speed  [q] quit ",
		s.Generation(), s.Population(), s.Speed(), state)
}

// drawStatus writes line on the bottom row.
func drawStatus(screen tcell.Screen, line string) {
	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	col := 0
	for _, r := range line {
		if col >= w {
			break
		}
		screen.SetContent(col, h-1, r, nil, statusStyle)
		col++
	}
}
