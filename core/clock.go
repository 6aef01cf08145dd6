package core

import "time"

// Clock is the per-frame time source handed to animators.
type Clock interface {
	// ElapsedSeconds is the time since the loop started.
	ElapsedSeconds() float32
	// DeltaSeconds is the time since the previous frame.
	DeltaSeconds() float32
	Frame() uint64
}

// ManualClock is a Clock advanced explicitly, for headless loops and tests.
type ManualClock struct {
	elapsed time.Duration
	delta   time.Duration
	frame   uint64
}

// Advance moves the clock forward by one frame of length dt.
func (c *ManualClock) Advance(dt time.Duration) {
	c.delta = dt
	c.elapsed += dt
	c.frame++
}

// AdvanceSeconds is Advance for fractional seconds.
func (c *ManualClock) AdvanceSeconds(dt float64) {
	c.Advance(time.Duration(dt * float64(time.Second)))
}

func (c *ManualClock) ElapsedSeconds() float32 { return float32(c.elapsed.Seconds()) }
func (c *ManualClock) DeltaSeconds() float32   { return float32(c.delta.Seconds()) }
func (c *ManualClock) Frame() uint64           { return c.frame }
