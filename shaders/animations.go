package shaders

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gekko3d/gallery/core"
	"github.com/go-gl/mathgl/mgl32"
)

// TimeAnimator adds the frame delta, scaled by Speed, to a float uniform.
// A zero Speed means 1.
type TimeAnimator struct {
	Uniform string
	Speed   float32
}

func (a TimeAnimator) Update(u core.UniformMap, clock core.Clock) error {
	speed := a.Speed
	if speed == 0 {
		speed = 1
	}
	if !u.AddFloat(a.Uniform, clock.DeltaSeconds()*speed) {
		return fmt.Errorf("no float uniform %q", a.Uniform)
	}
	return nil
}

// WaveAnimator sets a float uniform to Offset + Amplitude*sin(2π·t/Period).
type WaveAnimator struct {
	Uniform   string
	Amplitude float32
	Offset    float32
	Period    float32
}

func (a WaveAnimator) Update(u core.UniformMap, clock core.Clock) error {
	if a.Period <= 0 {
		return fmt.Errorf("wave period must be positive, got %v", a.Period)
	}
	v := a.Offset + a.Amplitude*math32.Sin(2*math32.Pi*clock.ElapsedSeconds()/a.Period)
	if !u.SetFloat(a.Uniform, v) {
		return fmt.Errorf("no float uniform %q", a.Uniform)
	}
	return nil
}

// PulseAnimator swings a color uniform between From and To once per Period.
type PulseAnimator struct {
	Uniform string
	From    mgl32.Vec3
	To      mgl32.Vec3
	Period  float32
}

func (a PulseAnimator) Update(u core.UniformMap, clock core.Clock) error {
	if a.Period <= 0 {
		return fmt.Errorf("pulse period must be positive, got %v", a.Period)
	}
	t := 0.5 - 0.5*math32.Cos(2*math32.Pi*clock.ElapsedSeconds()/a.Period)
	c := a.From.Mul(1 - t).Add(a.To.Mul(t))
	if !u.SetVec3(a.Uniform, c) {
		return fmt.Errorf("no color uniform %q", a.Uniform)
	}
	return nil
}

// Sequence runs animators in order and stops at the first error.
type Sequence []core.Animator

func (s Sequence) Update(u core.UniformMap, clock core.Clock) error {
	for _, a := range s {
		if err := a.Update(u, clock); err != nil {
			return err
		}
	}
	return nil
}

// AnimationSpec names an animator for shaders loaded from manifests.
type AnimationSpec struct {
	Kind      string
	Uniform   string
	Speed     float32
	Amplitude float32
	Offset    float32
	Period    float32
}

// NewAnimation builds the animator an AnimationSpec describes. Kinds are
// "time" (accumulate delta) and "wave" (sine of elapsed time).
func NewAnimation(spec AnimationSpec) (core.Animator, error) {
	uniform := spec.Uniform
	if uniform == "" {
		uniform = "time"
	}
	switch spec.Kind {
	case "time":
		return TimeAnimator{Uniform: uniform, Speed: spec.Speed}, nil
	case "wave":
		if spec.Period <= 0 {
			return nil, fmt.Errorf("wave animation on %q needs a positive period", uniform)
		}
		amp := spec.Amplitude
		if amp == 0 {
			amp = 1
		}
		return WaveAnimator{Uniform: uniform, Amplitude: amp, Offset: spec.Offset, Period: spec.Period}, nil
	}
	return nil, fmt.Errorf("unknown animation kind %q", spec.Kind)
}
