package core

import "strings"

type ShaderKind int

const (
	// ShaderStatic shaders keep their uniform values until the user changes them.
	ShaderStatic ShaderKind = iota
	// ShaderAnimated shaders carry an Animator that runs once per frame.
	ShaderAnimated
)

func (k ShaderKind) String() string {
	if k == ShaderAnimated {
		return "animated"
	}
	return "static"
}

// Animator is the per-frame hook of an animated shader. Update may change the
// values of existing uniforms in place. It must not add or remove keys and it
// runs on the frame loop, so it must return quickly. It works on a copy and
// is called without the selection lock held.
type Animator interface {
	Update(uniforms UniformMap, clock Clock) error
}

// AnimatorFunc adapts a plain function to Animator.
type AnimatorFunc func(uniforms UniformMap, clock Clock) error

func (f AnimatorFunc) Update(uniforms UniformMap, clock Clock) error {
	return f(uniforms, clock)
}

// ShaderDefinition is one catalog entry. Definitions are shared, never copied
// and mutated: the binder clones Uniforms before anything writes to them.
type ShaderDefinition struct {
	Name           string
	VertexSource   string
	FragmentSource string
	// Uniforms is nil when the shader declares no parameters of its own.
	Uniforms UniformMap
	// Animator is nil for static shaders.
	Animator Animator
}

func (d *ShaderDefinition) EntryName() string { return d.Name }

func (d *ShaderDefinition) Kind() ShaderKind {
	if d.Animator != nil {
		return ShaderAnimated
	}
	return ShaderStatic
}

func (d *ShaderDefinition) HasUniforms() bool { return d.Uniforms != nil }

func (d *ShaderDefinition) validate() error {
	if d == nil {
		return &MalformedShaderError{Reason: "nil definition"}
	}
	if strings.TrimSpace(d.VertexSource) == "" {
		return &MalformedShaderError{Name: d.Name, Reason: "missing vertex source"}
	}
	if strings.TrimSpace(d.FragmentSource) == "" {
		return &MalformedShaderError{Name: d.Name, Reason: "missing fragment source"}
	}
	for name, u := range d.Uniforms {
		if err := u.Validate(); err != nil {
			return &MalformedShaderError{Name: d.Name, Reason: "uniform " + name + ": " + err.Error()}
		}
	}
	return nil
}
