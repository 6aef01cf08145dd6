package core

import (
	"fmt"
	"sync"
)

type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseReady
)

func (p Phase) String() string {
	if p == PhaseReady {
		return "ready"
	}
	return "uninitialized"
}

// DefaultShaderName is the shader applied at startup.
const DefaultShaderName = "Basic Color"

// Selection is the gallery's current choice of shape, shader and material.
// The shader definition and its material are always swapped together under
// the lock, so readers never see one without the other.
type Selection struct {
	mu sync.RWMutex

	shaders  *ShaderCatalog
	shapes   *ShapeCatalog
	binder   *Binder
	reporter Reporter
	notices  *Notices

	phase            Phase
	shape            *ShapeDefinition
	shader           *ShaderDefinition
	material         *MaterialDescriptor
	codePanelVisible bool
}

// NewSelection starts uninitialized with the first shape of the catalog as
// the current shape. Call Bootstrap before anything reads the material.
func NewSelection(shaders *ShaderCatalog, shapes *ShapeCatalog, binder *Binder) *Selection {
	if binder == nil {
		binder = NewBinder(nil)
	}
	s := &Selection{
		shaders:  shaders,
		shapes:   shapes,
		binder:   binder,
		reporter: nopReporter{},
		notices:  NewNotices(DefaultNoticeLimit),
	}
	if shapes != nil && shapes.Len() > 0 {
		s.shape = shapes.At(0)
	}
	return s
}

func (s *Selection) SetReporter(r Reporter) {
	if r == nil {
		r = nopReporter{}
	}
	s.mu.Lock()
	s.reporter = r
	s.mu.Unlock()
}

func (s *Selection) Notices() *Notices { return s.notices }

func (s *Selection) ShaderCatalog() *ShaderCatalog { return s.shaders }
func (s *Selection) ShapeCatalog() *ShapeCatalog   { return s.shapes }

// Bootstrap applies the default shader and moves the selection to Ready. It
// runs once; a missing or malformed default is a *BootstrapError and the
// caller must not start rendering.
func (s *Selection) Bootstrap(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseReady {
		return ErrAlreadyReady
	}
	if s.shaders == nil {
		return &BootstrapError{Name: name, Err: fmt.Errorf("no shader catalog")}
	}
	def, mat, err := s.bind(name)
	if err != nil {
		return &BootstrapError{Name: name, Err: err}
	}
	s.shader, s.material = def, mat
	s.phase = PhaseReady
	return nil
}

func (s *Selection) bind(name string) (*ShaderDefinition, *MaterialDescriptor, error) {
	def, err := s.shaders.Find(name)
	if err != nil {
		return nil, nil, err
	}
	mat, err := s.binder.ApplyShader(def)
	if err != nil {
		return nil, nil, err
	}
	return def, mat, nil
}

// SelectShader binds the named shader and replaces the current definition and
// material together. On any error the previous selection stays in place and
// a notice is queued.
func (s *Selection) SelectShader(name string) error {
	s.mu.RLock()
	phase := s.phase
	s.mu.RUnlock()
	if phase != PhaseReady {
		return ErrNotReady
	}

	// Binding happens outside the lock; only the swap needs it.
	def, mat, err := s.bind(name)
	if err != nil {
		s.report(SeverityWarning, fmt.Sprintf("shader %q not applied", name), err)
		return err
	}

	s.mu.Lock()
	s.shader, s.material = def, mat
	s.mu.Unlock()
	return nil
}

// SelectShape replaces the current shape. Unknown names leave it unchanged.
func (s *Selection) SelectShape(name string) error {
	if s.shapes == nil {
		err := &CatalogLookupError{Catalog: "shape", Name: name}
		s.report(SeverityWarning, fmt.Sprintf("shape %q not applied", name), err)
		return err
	}
	shape, err := s.shapes.Find(name)
	if err != nil {
		s.report(SeverityWarning, fmt.Sprintf("shape %q not applied", name), err)
		return err
	}
	s.mu.Lock()
	s.shape = shape
	s.mu.Unlock()
	return nil
}

func (s *Selection) SetCodePanelVisible(visible bool) {
	s.mu.Lock()
	s.codePanelVisible = visible
	s.mu.Unlock()
}

// SetParameter writes a live value into the current material. Only the
// shader's declared uniforms are tunable; lighting inputs are rejected with
// ErrUnknownParameter.
func (s *Selection) SetParameter(name string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.material == nil {
		return ErrNotReady
	}
	if !s.material.declared.Has(name) {
		err := fmt.Errorf("%w: %q is not declared by shader %q", ErrUnknownParameter, name, s.material.ShaderName)
		s.reportLocked(SeverityWarning, "parameter not applied", err)
		return err
	}
	if err := s.material.Uniforms.Set(name, value); err != nil {
		s.reportLocked(SeverityWarning, "parameter not applied", err)
		return err
	}
	return nil
}

func (s *Selection) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

func (s *Selection) CurrentShape() *ShapeDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shape
}

func (s *Selection) CurrentShader() *ShaderDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shader
}

func (s *Selection) CurrentMaterial() *MaterialDescriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.material
}

// MaterialCopy returns the current material with its uniform values cloned
// under the lock, for readers on another goroutine than the animation loop.
func (s *Selection) MaterialCopy() *MaterialDescriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.material == nil {
		return nil
	}
	c := *s.material
	c.Uniforms = s.material.Uniforms.Clone()
	return &c
}

func (s *Selection) CodePanelVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.codePanelVisible
}

// DeclaredUniforms is the parameter set the controls UI builds widgets for.
// It is empty before bootstrap.
func (s *Selection) DeclaredUniforms() UniformView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.material == nil {
		return UniformView{}
	}
	return s.material.declared
}

// Snapshot is a consistent copy of the selection references.
type Snapshot struct {
	Phase            Phase
	Shape            *ShapeDefinition
	Shader           *ShaderDefinition
	Material         *MaterialDescriptor
	CodePanelVisible bool
}

func (s *Selection) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Phase:            s.phase,
		Shape:            s.shape,
		Shader:           s.shader,
		Material:         s.material,
		CodePanelVisible: s.codePanelVisible,
	}
}

// CodeView is what the code pane shows.
type CodeView struct {
	Visible        bool
	ShaderName     string
	VertexSource   string
	FragmentSource string
}

// CodeView returns the current shader's raw source; all strings are empty
// before bootstrap.
func (s *Selection) CodeView() CodeView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cv := CodeView{Visible: s.codePanelVisible}
	if s.shader != nil {
		cv.ShaderName = s.shader.Name
		cv.VertexSource = s.shader.VertexSource
		cv.FragmentSource = s.shader.FragmentSource
	}
	return cv
}

func (s *Selection) report(sev Severity, msg string, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.reportLocked(sev, msg, err)
}

func (s *Selection) reportLocked(sev Severity, msg string, err error) {
	if sev == SeverityError {
		s.reporter.Errorf("%s: %v", msg, err)
	} else {
		s.reporter.Warnf("%s: %v", msg, err)
	}
	s.notices.Push(Notice{Severity: sev, Message: msg, Err: err})
}
