package core

import "time"

// DefaultInterval is the tick cadence used when none is configured.
const DefaultInterval = 500 * time.Millisecond

// FixedStep paces simulation ticks at a steady interval independent of the
// rate at which the driver loop wakes up.
type FixedStep struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	maxCatchUp  int
}

// NewFixedStep constructs a FixedStep controller with the given interval.
// The first call to Due reports a pending tick.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{maxCatchUp: 4}
	fs.SetInterval(interval)
	fs.accumulator = fs.interval
	return fs
}

// NewFixedStepTPS constructs a FixedStep targeting ticks per second.
func NewFixedStepTPS(tps int) *FixedStep {
	if tps <= 0 {
		return NewFixedStep(DefaultInterval)
	}
	return NewFixedStep(time.Second / time.Duration(tps))
}

// SetInterval changes the tick cadence. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	f.interval = d
}

// Interval reports the configured cadence.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// Due reports how many ticks should run at time now. At most maxCatchUp
// ticks are reported so a stalled driver does not spiral.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta < 0 {
		delta = 0
	}
	f.last = now
	f.accumulator += delta
	n := 0
	for f.accumulator >= f.interval {
		f.accumulator -= f.interval
		n++
	}
	if n > f.maxCatchUp {
		n = f.maxCatchUp
		f.accumulator = 0
	}
	return n
}
