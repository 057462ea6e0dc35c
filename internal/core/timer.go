package core

import "time"

const (
	// MinSpeed and MaxSpeed bound the generations-per-second target.
	MinSpeed = 1
	MaxSpeed = 60
	// DefaultSpeed is the generations-per-second target on start-up.
	DefaultSpeed = 10
)

// ClampSpeed forces speed into [MinSpeed, MaxSpeed].
func ClampSpeed(speed int) int {
	return min(max(speed, MinSpeed), MaxSpeed)
}

// Pacer decides on which frame callbacks a generation step is due. At most one
// step is due per callback; idle time never turns into a burst.
type Pacer struct {
	speed    int
	interval time.Duration
	last     time.Time
	primed   bool
}

// NewPacer constructs a Pacer targeting the given generations per second.
func NewPacer(speed int) *Pacer {
	p := &Pacer{}
	p.SetSpeed(speed)
	return p
}

// SetSpeed changes the target rate. It is safe to call from the main loop.
func (p *Pacer) SetSpeed(speed int) {
	p.speed = ClampSpeed(speed)
	p.interval = time.Second / time.Duration(p.speed)
}

// Speed returns the clamped generations-per-second target.
func (p *Pacer) Speed() int { return p.speed }

// Interval returns the minimum spacing between steps.
func (p *Pacer) Interval() time.Duration { return p.interval }

// Reset forgets the last step time so the next Due call only primes the clock.
func (p *Pacer) Reset() {
	p.primed = false
	p.last = time.Time{}
}

// Due reports whether a step should run for a callback at now. A due step
// moves the pacing timestamp to now.
func (p *Pacer) Due(now time.Time) bool {
	if !p.primed {
		p.last = now
		p.primed = true
	}
	if now.Sub(p.last) > p.interval {
		p.last = now
		return true
	}
	return false
}
