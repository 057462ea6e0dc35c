package driver

import (
	"context"
	"sync"
	"time"
)

// Loop drives a Simulation from a single goroutine. Frames and commands are
// handled strictly one after another, so the grid is never shared across
// goroutines.
type Loop struct {
	sim      *Simulation
	commands chan func(*Simulation)
	stop     chan struct{}
	once     sync.Once
}

// NewLoop wraps sim.
func NewLoop(sim *Simulation) *Loop {
	return &Loop{
		sim:      sim,
		commands: make(chan func(*Simulation), 16),
		stop:     make(chan struct{}),
	}
}

// Do queues cmd to run on the loop goroutine between frames. It drops the
// command once the loop has been stopped.
func (l *Loop) Do(cmd func(*Simulation)) {
	select {
	case l.commands <- cmd:
	case <-l.stop:
	}
}

// Stop signals Run to return. It is safe to call more than once.
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.stop) })
}

// Done is closed once Stop has been called.
func (l *Loop) Done() <-chan struct{} { return l.stop }

// Run handles frame ticks and queued commands until ctx is done or Stop is
// called. onFrame, when non-nil, runs after every frame callback.
func (l *Loop) Run(ctx context.Context, frames <-chan time.Time, onFrame func(sim *Simulation, stepped bool)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		case cmd := <-l.commands:
			cmd(l.sim)
		case now := <-frames:
			stepped := l.sim.Frame(now)
			if onFrame != nil {
				onFrame(l.sim, stepped)
			}
		}
	}
}

// Ticker returns a channel delivering frame times at fps and a function
// releasing it.
func Ticker(fps int) (<-chan time.Time, func()) {
	if fps <= 0 {
		fps = 60
	}
	t := time.NewTicker(time.Second / time.Duration(fps))
	return t.C, t.Stop
}
