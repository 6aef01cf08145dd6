// Package manifest loads shader and shape catalogs from YAML or TOML files.
//
// A manifest lists shaders with their GLSL sources (inline or as paths
// relative to the manifest), their declared uniforms and an optional
// animation, plus the shapes to offer:
//
//	defaultShader: Pulse
//	shaders:
//	  - name: Pulse
//	    vertex: pulse.vert
//	    fragment: pulse.frag
//	    uniforms:
//	      color: {type: c, value: tomato}
//	      time:  {type: f, value: 0}
//	    animation: {kind: time}
//	shapes:
//	  - name: Ring
//	    geometry: TorusGeometry
//	    args: [100, 20, 16, 64]
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gekko3d/gallery/core"
	"github.com/gekko3d/gallery/shaders"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("manifest %s: unsupported extension", path)
}

type UniformEntry struct {
	Type  string `yaml:"type" toml:"type"`
	Value any    `yaml:"value" toml:"value"`
}

type AnimationEntry struct {
	Kind      string  `yaml:"kind" toml:"kind"`
	Uniform   string  `yaml:"uniform,omitempty" toml:"uniform,omitempty"`
	Speed     float32 `yaml:"speed,omitempty" toml:"speed,omitempty"`
	Amplitude float32 `yaml:"amplitude,omitempty" toml:"amplitude,omitempty"`
	Offset    float32 `yaml:"offset,omitempty" toml:"offset,omitempty"`
	Period    float32 `yaml:"period,omitempty" toml:"period,omitempty"`
}

type ShaderEntry struct {
	Name           string                  `yaml:"name" toml:"name"`
	Vertex         string                  `yaml:"vertex,omitempty" toml:"vertex,omitempty"`
	Fragment       string                  `yaml:"fragment,omitempty" toml:"fragment,omitempty"`
	VertexSource   string                  `yaml:"vertexSource,omitempty" toml:"vertexSource,omitempty"`
	FragmentSource string                  `yaml:"fragmentSource,omitempty" toml:"fragmentSource,omitempty"`
	Uniforms       map[string]UniformEntry `yaml:"uniforms,omitempty" toml:"uniforms,omitempty"`
	Animation      *AnimationEntry         `yaml:"animation,omitempty" toml:"animation,omitempty"`
}

type ShapeEntry struct {
	Name     string    `yaml:"name" toml:"name"`
	Geometry string    `yaml:"geometry" toml:"geometry"`
	Args     []float32 `yaml:"args,omitempty" toml:"args,omitempty"`
}

type Manifest struct {
	DefaultShader string        `yaml:"defaultShader,omitempty" toml:"defaultShader,omitempty"`
	Shaders       []ShaderEntry `yaml:"shaders,omitempty" toml:"shaders,omitempty"`
	Shapes        []ShapeEntry  `yaml:"shapes,omitempty" toml:"shapes,omitempty"`

	// dir resolves relative source paths.
	dir string
}

// Load reads and decodes a manifest file.
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// Parse decodes manifest bytes. Relative source paths resolve against the
// working directory.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &m)
	default:
		err = yaml.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ShaderDefinitions converts the shader entries in file order. A shader with
// no source at all is kept: the binder rejects it when it is selected.
func (m *Manifest) ShaderDefinitions() ([]*core.ShaderDefinition, error) {
	defs := make([]*core.ShaderDefinition, 0, len(m.Shaders))
	for _, e := range m.Shaders {
		def, err := m.shaderDefinition(e)
		if err != nil {
			return nil, fmt.Errorf("shader %q: %w", e.Name, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (m *Manifest) shaderDefinition(e ShaderEntry) (*core.ShaderDefinition, error) {
	def := &core.ShaderDefinition{Name: e.Name}

	var err error
	if def.VertexSource, err = m.source(e.VertexSource, e.Vertex); err != nil {
		return nil, err
	}
	if def.FragmentSource, err = m.source(e.FragmentSource, e.Fragment); err != nil {
		return nil, err
	}

	if e.Uniforms != nil {
		def.Uniforms = make(core.UniformMap, len(e.Uniforms))
		for name, ue := range e.Uniforms {
			u, err := decodeUniform(ue)
			if err != nil {
				return nil, fmt.Errorf("uniform %q: %w", name, err)
			}
			def.Uniforms[name] = u
		}
	}

	if e.Animation != nil {
		a, err := shaders.NewAnimation(shaders.AnimationSpec{
			Kind:      e.Animation.Kind,
			Uniform:   e.Animation.Uniform,
			Speed:     e.Animation.Speed,
			Amplitude: e.Animation.Amplitude,
			Offset:    e.Animation.Offset,
			Period:    e.Animation.Period,
		})
		if err != nil {
			return nil, err
		}
		def.Animator = a
	}
	return def, nil
}

func (m *Manifest) source(inline, path string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if path == "" {
		return "", nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.dir, path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (m *Manifest) ShapeDefinitions() ([]*core.ShapeDefinition, error) {
	defs := make([]*core.ShapeDefinition, 0, len(m.Shapes))
	for _, e := range m.Shapes {
		kind, err := core.ParseGeometryKind(e.Geometry)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", e.Name, err)
		}
		if n := len(kind.ArgNames()); len(e.Args) > n {
			return nil, fmt.Errorf("shape %q: %s takes at most %d args, got %d", e.Name, kind, n, len(e.Args))
		}
		defs = append(defs, &core.ShapeDefinition{Name: e.Name, Geometry: kind, Args: e.Args})
	}
	return defs, nil
}

// Catalogs builds both catalogs. A section the manifest leaves out comes
// back as a nil catalog so the caller can fall back to the built-ins.
func (m *Manifest) Catalogs() (*core.ShaderCatalog, *core.ShapeCatalog, error) {
	var (
		shaderCat *core.ShaderCatalog
		shapeCat  *core.ShapeCatalog
	)
	if len(m.Shaders) > 0 {
		defs, err := m.ShaderDefinitions()
		if err != nil {
			return nil, nil, err
		}
		if shaderCat, err = core.NewShaderCatalog(defs...); err != nil {
			return nil, nil, err
		}
	}
	if len(m.Shapes) > 0 {
		defs, err := m.ShapeDefinitions()
		if err != nil {
			return nil, nil, err
		}
		if shapeCat, err = core.NewShapeCatalog(defs...); err != nil {
			return nil, nil, err
		}
	}
	return shaderCat, shapeCat, nil
}
