package term

import (
	"lifefx/internal/driver"
	"lifefx/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Action is a user intent decoded from a terminal event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionResize
	ActionReset
	ActionToggle
	ActionFaster
	ActionSlower
)

// Translate decodes a tcell event.
func Translate(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return ActionResize
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyF5, tcell.KeyCtrlR:
			return ActionReset
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'r', 'R':
				if ev.Modifiers()&tcell.ModCtrl != 0 {
					return ActionReset
				}
			case 'q':
				return ActionQuit
			case ' ':
				return ActionToggle
			case '+', '=':
				return ActionFaster
			case '-':
				return ActionSlower
			}
		}
	}
	return ActionNone
}

// Apply performs action on the simulation. It must run on the loop goroutine.
func Apply(action Action, s *driver.Simulation, surface *render.TermSurface) {
	switch action {
	case ActionResize:
		s.Resize(surface.Size())
	case ActionReset:
		s.Reset()
	case ActionToggle:
		s.Toggle()
	case ActionFaster:
		s.SetSpeed(s.Speed() + 1)
	case ActionSlower:
		s.SetSpeed(s.Speed() - 1)
	}
}
