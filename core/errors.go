package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrTypeMismatch     = errors.New("uniform type mismatch")
	ErrNotReady         = errors.New("selection not bootstrapped")
	ErrAlreadyReady     = errors.New("selection already bootstrapped")
)

// CatalogLookupError is returned when a selection names an entry the catalog
// does not hold. It matches ErrNotFound with errors.Is.
type CatalogLookupError struct {
	Catalog string
	Name    string
}

func (e *CatalogLookupError) Error() string {
	return fmt.Sprintf("%s catalog: no entry named %q", e.Catalog, e.Name)
}

func (e *CatalogLookupError) Unwrap() error { return ErrNotFound }

// MalformedShaderError is returned by the binder when a definition cannot be
// turned into a material.
type MalformedShaderError struct {
	Name   string
	Reason string
}

func (e *MalformedShaderError) Error() string {
	if e.Name == "" {
		return "malformed shader: " + e.Reason
	}
	return fmt.Sprintf("malformed shader %q: %s", e.Name, e.Reason)
}

// UpdateRoutineError wraps a failure raised by an animated shader's per-frame
// update. The uniforms keep the values they had before the failing tick.
type UpdateRoutineError struct {
	Shader string
	Frame  uint64
	Err    error
}

func (e *UpdateRoutineError) Error() string {
	return fmt.Sprintf("shader %q update failed on frame %d: %v", e.Shader, e.Frame, e.Err)
}

func (e *UpdateRoutineError) Unwrap() error { return e.Err }

// BootstrapError means the default shader could not be applied at startup.
// It is not recoverable.
type BootstrapError struct {
	Name string
	Err  error
}

func (e *BootstrapError) Error() string {
	return fmt.Sprintf("bootstrap with default shader %q failed: %v", e.Name, e.Err)
}

func (e *BootstrapError) Unwrap() error { return e.Err }
