package clock

import (
	"time"

	"github.com/outofforest/pchase/types"
)

// Clock is the monotonic tick source used to time the chase.
type Clock interface {
	// Now returns current tick count.
	Now() types.Tick

	// TicksPerSecond returns the resolution of the clock.
	TicksPerSecond() uint64
}

// NewNanosecondClock returns clock counting nanoseconds since it was created.
func NewNanosecondClock() *MonotonicClock {
	return newMonotonicClock(time.Nanosecond)
}

// NewMicrosecondClock returns clock counting microseconds since it was created.
func NewMicrosecondClock() *MonotonicClock {
	return newMonotonicClock(time.Microsecond)
}

func newMonotonicClock(unit time.Duration) *MonotonicClock {
	return &MonotonicClock{
		origin: time.Now(),
		unit:   unit,
	}
}

// MonotonicClock reads ticks from the monotonic reading of the runtime clock.
type MonotonicClock struct {
	origin time.Time
	unit   time.Duration
}

// Now returns number of ticks elapsed since the clock was created.
func (c *MonotonicClock) Now() types.Tick {
	return types.Tick(time.Since(c.origin) / c.unit)
}

// TicksPerSecond returns the resolution of the clock.
func (c *MonotonicClock) TicksPerSecond() uint64 {
	return uint64(time.Second / c.unit)
}

// NewManualClock returns clock advancing by step on every read.
func NewManualClock(step types.Tick, ticksPerSecond uint64) *ManualClock {
	return &ManualClock{
		step:           step,
		ticksPerSecond: ticksPerSecond,
	}
}

// ManualClock is the deterministic clock used in tests.
type ManualClock struct {
	now            types.Tick
	step           types.Tick
	ticksPerSecond uint64
	reads          uint64
}

// Now advances the clock by step and returns the new value.
func (c *ManualClock) Now() types.Tick {
	c.now += c.step
	c.reads++
	return c.now
}

// TicksPerSecond returns the configured resolution.
func (c *ManualClock) TicksPerSecond() uint64 {
	return c.ticksPerSecond
}

// Reads returns how many times the clock was read.
func (c *ManualClock) Reads() uint64 {
	return c.reads
}
