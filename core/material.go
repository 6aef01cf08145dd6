package core

import (
	"github.com/google/uuid"
)

// MaterialDescriptor is a shader bound to its runtime uniform values, ready
// for the renderer. A new descriptor is built on every shader selection.
type MaterialDescriptor struct {
	// ID is unique per bind, so a renderer can tell a rebind of the same
	// shader apart from the material it already uploaded.
	ID         string
	ShaderName string
	// Uniforms holds the lighting set with the shader's declared uniforms
	// layered on top. Animators write values here.
	Uniforms        UniformMap
	VertexSource    string
	FragmentSource  string
	LightingEnabled bool

	declared UniformView
}

// DeclaredUniforms is the shader's own parameter set, without lighting
// inputs. Controls are built from this view only.
func (m *MaterialDescriptor) DeclaredUniforms() UniformView { return m.declared }

// Binder builds materials against a lighting source.
type Binder struct {
	lighting LightingSource
}

func NewBinder(lighting LightingSource) *Binder {
	if lighting == nil {
		lighting = DefaultLighting()
	}
	return &Binder{lighting: lighting}
}

func (b *Binder) ApplyShader(def *ShaderDefinition) (*MaterialDescriptor, error) {
	return ApplyShader(def, b.lighting.LightingUniforms())
}

// ApplyShader merges the definition's declared uniforms over lighting and
// returns a self-contained descriptor. Declared values win on a name
// collision. Neither input map is modified and the result shares no Uniform
// with them or with any earlier descriptor.
func ApplyShader(def *ShaderDefinition, lighting UniformMap) (*MaterialDescriptor, error) {
	if err := def.validate(); err != nil {
		return nil, err
	}
	merged := Merge(lighting, def.Uniforms)
	return &MaterialDescriptor{
		ID:              uuid.NewString(),
		ShaderName:      def.Name,
		Uniforms:        merged,
		VertexSource:    def.VertexSource,
		FragmentSource:  def.FragmentSource,
		LightingEnabled: true,
		declared:        UniformView{m: def.Uniforms},
	}, nil
}

// UniformView is a read-only window onto a uniform set. Lookups hand out
// copies so callers cannot write through it.
type UniformView struct {
	m UniformMap
}

func (v UniformView) Len() int        { return len(v.m) }
func (v UniformView) Names() []string { return v.m.Names() }

func (v UniformView) Has(name string) bool {
	_, ok := v.m[name]
	return ok
}

func (v UniformView) Lookup(name string) (Uniform, bool) {
	u, ok := v.m[name]
	if !ok {
		return Uniform{}, false
	}
	return *u.Clone(), true
}
