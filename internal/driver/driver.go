// Package driver owns the animation loop: it paces generation steps against
// frame callbacks and repaints the grid after every step.
package driver

import (
	"fmt"
	"strconv"
	"time"

	"lifefx/internal/core"
	"lifefx/internal/render"
	rng "lifefx/pkg/core"
	"lifefx/pkg/sims/life"
)

// Options configures a Simulation.
type Options struct {
	Layout  core.Layout
	Seeding life.Config
	Speed   int
	Seed    int64
}

// DefaultOptions returns the stock layout, seeding and speed.
func DefaultOptions() Options {
	return Options{
		Layout:  core.DefaultLayout(),
		Seeding: life.DefaultConfig(),
		Speed:   core.DefaultSpeed,
		Seed:    1,
	}
}

// Simulation is the shared context between the frame loop, the grid engine
// and the controls. It is not safe for concurrent use; every call must come
// from the goroutine that delivers frames.
type Simulation struct {
	opts    Options
	painter *render.Painter
	surface render.Surface

	view  core.Size
	grid  *life.Grid
	seeds *rng.RNG
	stats life.SeedStats
	pacer *core.Pacer

	running bool
	pending bool
	dirty   bool
}

// New validates opts and returns a stopped simulation with an empty grid.
func New(opts Options, painter *render.Painter) (*Simulation, error) {
	if _, ok := life.LookupPlacement(opts.Seeding.Placement); !ok {
		return nil, fmt.Errorf("unknown placement %q (have %v)", opts.Seeding.Placement, life.PlacementNames())
	}
	if opts.Layout.Pitch() <= 0 {
		return nil, fmt.Errorf("cell pitch must be positive, got %v", opts.Layout.Pitch())
	}
	if painter == nil {
		painter = render.NewPainter(opts.Layout, render.ShapeCircle)
	}
	return &Simulation{
		opts:    opts,
		painter: painter,
		grid:    life.New(0, 0),
		seeds:   rng.NewRNG(opts.Seed),
		pacer:   core.NewPacer(opts.Speed),
	}, nil
}

// Mount attaches a surface, sizes and seeds the grid, paints it and starts
// running.
func (s *Simulation) Mount(surface render.Surface, view core.Size) {
	s.surface = surface
	s.Resize(view)
	s.Start()
}

// Frame is the per-refresh callback. It runs only when a callback is pending,
// steps and repaints when the pacing interval has elapsed, and schedules the
// next callback only while running. It reports whether a step was taken.
func (s *Simulation) Frame(now time.Time) bool {
	if !s.pending {
		return false
	}
	s.pending = false

	stepped := false
	if s.pacer.Due(now) {
		s.grid.Advance()
		s.Paint()
		stepped = true
	}

	if s.running {
		s.pending = true
	}
	return stepped
}

// Start sets the running flag, resets pacing and schedules a callback.
func (s *Simulation) Start() {
	s.running = true
	s.pacer.Reset()
	s.pending = true
}

// Stop clears the running flag and cancels any pending callback.
func (s *Simulation) Stop() {
	s.running = false
	s.pending = false
}

// Toggle flips between running and stopped.
func (s *Simulation) Toggle() {
	if s.running {
		s.Stop()
		return
	}
	s.Start()
}

// Resize cancels the pending callback, replaces the grid with a freshly seeded
// one sized to view and resumes if the simulation was running.
func (s *Simulation) Resize(view core.Size) {
	s.pending = false
	s.view = view
	s.reseed()
	if s.running {
		s.pending = true
	}
}

// Reset stops, reseeds with a new seed and resumes.
func (s *Simulation) Reset() {
	s.Stop()
	s.reseed()
	s.Start()
}

// Paint draws the current grid onto the surface, if one is attached.
func (s *Simulation) Paint() {
	if s.surface == nil {
		return
	}
	s.painter.Paint(s.surface, s.grid)
	s.dirty = true
}

// Flush reports whether the surface was painted since the last Flush.
func (s *Simulation) Flush() bool {
	d := s.dirty
	s.dirty = false
	return d
}

func (s *Simulation) reseed() {
	cols, rows := s.opts.Layout.Dims(s.view)
	s.grid, s.stats = life.NewSeeded(cols, rows, s.opts.Seeding, s.seeds.Int64())
	s.Paint()
}

// SetSpeed changes the generations-per-second target, clamped to 1..60.
func (s *Simulation) SetSpeed(speed int) { s.pacer.SetSpeed(speed) }

// Speed returns the generations-per-second target.
func (s *Simulation) Speed() int { return s.pacer.Speed() }

// Running reports the running flag.
func (s *Simulation) Running() bool { return s.running }

// Pending reports whether a frame callback is scheduled.
func (s *Simulation) Pending() bool { return s.pending }

// Grid returns the current grid.
func (s *Simulation) Grid() *life.Grid { return s.grid }

// Generation returns the grid's generation counter.
func (s *Simulation) Generation() uint64 { return s.grid.Generation() }

// Population returns the number of live cells.
func (s *Simulation) Population() int { return s.grid.Population() }

// SeedStats describes the most recent seeding pass.
func (s *Simulation) SeedStats() life.SeedStats { return s.stats }

// Parameters exposes live values for the HUD.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "speed", Label: "Speed", Type: core.ParamTypeInt, Value: strconv.Itoa(s.Speed())},
		{Key: "running", Label: "Running", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.running)},
		{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(s.Generation(), 10)},
		{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(s.Population())},
	}}
}

// ParameterControls lists the adjustable parameters.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "speed", Label: "Speed", Step: 1, Min: core.MinSpeed, Max: core.MaxSpeed},
	}
}

// SetIntParameter updates an adjustable parameter by key.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	switch key {
	case "speed":
		s.SetSpeed(value)
		return true
	}
	return false
}
