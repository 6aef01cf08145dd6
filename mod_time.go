package gallery

import (
	"time"

	"github.com/gekko3d/gallery/core"
)

// Time is the frame clock resource. It satisfies core.Clock so animators
// read it directly.
type Time struct {
	Time    time.Time
	Dt      time.Duration
	Elapsed time.Duration
	Count   uint64

	// FixedStep replaces wall-clock deltas when set.
	FixedStep time.Duration
}

func (t *Time) ElapsedSeconds() float32 { return float32(t.Elapsed.Seconds()) }
func (t *Time) DeltaSeconds() float32   { return float32(t.Dt.Seconds()) }
func (t *Time) Frame() uint64           { return t.Count }

var _ core.Clock = (*Time)(nil)

// TimeModule advances Time in the Prelude stage. A zero FixedStep follows the
// wall clock; the headless driver uses a fixed step for reproducible runs.
type TimeModule struct {
	FixedStep time.Duration
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time:      time.Now(),
		Dt:        0,
		FixedStep: mod.FixedStep,
	})
	cmd.UseSystem(System(timeSystem).InStage(Prelude))
}

func timeSystem(timeResource *Time) {
	if timeResource.FixedStep > 0 {
		timeResource.Advance(timeResource.FixedStep)
		return
	}
	now := time.Now()
	timeResource.Advance(now.Sub(timeResource.Time))
}

// Advance moves the clock forward one frame of length dt.
func (t *Time) Advance(dt time.Duration) {
	t.Dt = dt
	t.Time = t.Time.Add(dt)
	t.Elapsed += dt
	t.Count++
}
