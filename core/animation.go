package core

import (
	"errors"
	"fmt"
	"reflect"
)

var errKeySetChanged = errors.New("update added or removed uniforms")

// OnFrame runs the current shader's animator, if it has one, against a copy
// of the current material's uniforms. The animator runs without the
// selection lock held, so it may call back into the selection. A failing
// update is reported and returned as an *UpdateRoutineError; the uniforms
// then keep the values they had before this tick and the next frame tries
// again. A tick whose material was replaced while the animator ran is
// dropped.
func (s *Selection) OnFrame(clock Clock) error {
	s.mu.RLock()
	shader, mat := s.shader, s.material
	if shader == nil || mat == nil || shader.Animator == nil {
		s.mu.RUnlock()
		return nil
	}
	base := mat.Uniforms.Clone()
	s.mu.RUnlock()

	scratch := base.Clone()
	err := runAnimator(shader.Animator, scratch, clock)
	if err == nil {
		err = checkUpdate(scratch, base)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.material != mat {
		return nil
	}
	if err != nil {
		uerr := &UpdateRoutineError{Shader: shader.Name, Frame: clock.Frame(), Err: err}
		s.reportLocked(SeverityError, "animation skipped for this frame", uerr)
		return uerr
	}
	// Only values the animator changed are written, so a SetParameter that
	// landed while it ran is kept. Live *Uniform pointers stay the same.
	for name, u := range scratch {
		if !reflect.DeepEqual(u.Value, base[name].Value) {
			mat.Uniforms[name].Value = u.Value
		}
	}
	return nil
}

func runAnimator(a Animator, scratch UniformMap, clock Clock) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return a.Update(scratch, clock)
}

// checkUpdate rejects an update that changed the key set or a type, or left
// an invalid or non-finite value.
func checkUpdate(scratch, base UniformMap) error {
	if !scratch.sameKeys(base) {
		return errKeySetChanged
	}
	for name, u := range scratch {
		if u == nil || u.Type != base[name].Type {
			return fmt.Errorf("uniform %q changed type", name)
		}
		if err := u.Validate(); err != nil {
			return fmt.Errorf("uniform %q: %w", name, err)
		}
		if !u.Finite() {
			return fmt.Errorf("uniform %q is not finite", name)
		}
	}
	return nil
}
