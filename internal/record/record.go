// Package record renders the effect headlessly into an animated GIF.
package record

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"lifefx/internal/app"
	"lifefx/internal/core"
	"lifefx/internal/driver"
	"lifefx/internal/render"
)

// Options controls a recording.
type Options struct {
	Generations int
	Scale       float64
}

// Result summarises a finished recording.
type Result struct {
	Frames      int
	Generation  uint64
	Population  int
	SeedAttempt int
}

// Record runs cfg's simulation for opts.Generations steps on an offscreen
// surface and encodes one GIF frame per paint.
func Record(w io.Writer, cfg *app.Config, opts Options) (Result, error) {
	if opts.Generations <= 0 {
		return Result{}, fmt.Errorf("generations must be positive, got %d", opts.Generations)
	}
	dopts, shape, err := cfg.Options()
	if err != nil {
		return Result{}, err
	}
	painter := render.NewPainter(dopts.Layout, shape)
	sim, err := driver.New(dopts, painter)
	if err != nil {
		return Result{}, fmt.Errorf("create simulation: %w", err)
	}

	view := core.Size{W: cfg.Width, H: cfg.Height}
	surface := render.NewImageSurface(view, opts.Scale)
	sim.Mount(surface, view)

	palette := fadePalette(painter.Palette)
	anim := &gif.GIF{}
	tick := time.Second / time.Duration(max(cfg.TPS, 1))
	now := time.Unix(0, 0)
	var shot time.Time
	capture := func() {
		// A frame is shown until the next paint, so its delay is only known
		// once that paint happens.
		if n := len(anim.Delay); n > 0 {
			anim.Delay[n-1] = centiseconds(now.Sub(shot))
		}
		frame := image.NewPaletted(surface.Image().Bounds(), palette)
		draw.Draw(frame, frame.Rect, surface.Image(), image.Point{}, draw.Src)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, centiseconds(time.Second/time.Duration(sim.Speed())))
		shot = now
	}
	if sim.Flush() {
		capture()
	}

	for steps := 0; steps < opts.Generations; {
		now = now.Add(tick)
		if sim.Frame(now) {
			steps++
		}
		if sim.Flush() {
			capture()
		}
	}
	if n := len(anim.Delay); n > 1 {
		anim.Delay[n-1] = anim.Delay[n-2]
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return Result{}, fmt.Errorf("encode gif: %w", err)
	}
	return Result{
		Frames:      len(anim.Image),
		Generation:  sim.Generation(),
		Population:  sim.Population(),
		SeedAttempt: sim.SeedStats().Attempts,
	}, nil
}

// centiseconds rounds d to GIF delay units. Browsers treat delays below 2 as
// a default, so shorter frames are clamped.
func centiseconds(d time.Duration) int {
	return max(int((d+5*time.Millisecond)/(10*time.Millisecond)), 2)
}

// fadePalette spans every blend between background and live colour, which
// covers all pixels the painter can produce.
func fadePalette(p render.Palette) color.Palette {
	out := make(color.Palette, 256)
	for i := range out {
		out[i] = p.Flatten(float64(i) / 255)
	}
	return out
}
