// Package term runs the effect inside a terminal using tcell.
package term

import (
	"context"
	"errors"
	"fmt"

	"lifefx/internal/app"
	"lifefx/internal/driver"
	"lifefx/internal/render"

	"github.com/gdamore/tcell/v2"
)

// ErrNoSurface is returned when the terminal cannot provide a drawing surface.
var ErrNoSurface = errors.New("terminal surface unavailable")

// Run opens the terminal and blocks until the user quits or ctx is done.
func Run(ctx context.Context, cfg *app.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoSurface, err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrNoSurface, err)
	}
	defer screen.Fini()
	return Attach(ctx, screen, cfg)
}

// Attach drives an already initialised screen.
func Attach(ctx context.Context, screen tcell.Screen, cfg *app.Config) error {
	opts, shape, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.Layout = render.TermLayout()
	painter := render.NewPainter(opts.Layout, shape)
	sim, err := driver.New(opts, painter)
	if err != nil {
		return fmt.Errorf("create simulation: %w", err)
	}

	surface := render.NewTermSurface(screen)
	sim.Mount(surface, surface.Size())

	loop := driver.NewLoop(sim)
	defer loop.Stop()
	frames, stopFrames := driver.Ticker(cfg.TPS)
	defer stopFrames()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch action := Translate(ev); action {
			case ActionNone:
			case ActionQuit:
				loop.Stop()
				return
			default:
				loop.Do(func(s *driver.Simulation) { Apply(action, s, surface) })
			}
			select {
			case <-loop.Done():
				return
			default:
			}
		}
	}()

	// Pausing and speed changes repaint nothing, so the status line is also
	// refreshed whenever its text changes.
	var shown string
	return loop.Run(ctx, frames, func(s *driver.Simulation, _ bool) {
		painted := s.Flush()
		line := statusLine(s)
		if !painted && line == shown {
			return
		}
		drawStatus(screen, line)
		surface.Show()
		shown = line
	})
}
