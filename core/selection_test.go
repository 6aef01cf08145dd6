package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	warnings []string
	errors   []string
}

func (r *recordingReporter) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func matrixDefinition() *ShaderDefinition {
	return &ShaderDefinition{
		Name:           "Matrix",
		VertexSource:   "v",
		FragmentSource: "f",
		Uniforms:       UniformMap{"time": Float(0)},
		Animator: AnimatorFunc(func(u UniformMap, clock Clock) error {
			u.AddFloat("time", clock.DeltaSeconds())
			return nil
		}),
	}
}

func newTestSelection(t *testing.T, extra ...*ShaderDefinition) *Selection {
	t.Helper()
	defs := append([]*ShaderDefinition{
		{Name: "Basic Color", VertexSource: "v", FragmentSource: "f"},
		matrixDefinition(),
		{Name: "Broken", VertexSource: "v"},
	}, extra...)
	shaders, err := NewShaderCatalog(defs...)
	require.NoError(t, err)
	shapes, err := NewShapeCatalog(
		&ShapeDefinition{Name: "Cube", Geometry: GeometryBox, Args: []float32{200, 200, 200, 50, 50, 50}},
		&ShapeDefinition{Name: "Torus Knot", Geometry: GeometryTorusKnot, Args: []float32{100, 30, 100, 16}},
	)
	require.NoError(t, err)
	return NewSelection(shaders, shapes, NewBinder(StaticLighting(testLighting())))
}

func TestSelection_Bootstrap(t *testing.T) {
	sel := newTestSelection(t)
	assert.Equal(t, PhaseUninitialized, sel.Phase())
	assert.Nil(t, sel.CurrentMaterial())
	assert.Equal(t, "Cube", sel.CurrentShape().Name)
	assert.Equal(t, CodeView{}, sel.CodeView())

	require.NoError(t, sel.Bootstrap(DefaultShaderName))

	assert.Equal(t, PhaseReady, sel.Phase())
	assert.Equal(t, "Basic Color", sel.CurrentShader().Name)
	assert.Equal(t, testLighting(), sel.CurrentMaterial().Uniforms)
	assert.Equal(t, 0, sel.DeclaredUniforms().Len())

	assert.ErrorIs(t, sel.Bootstrap(DefaultShaderName), ErrAlreadyReady)
}

func TestSelection_BootstrapFailure(t *testing.T) {
	sel := newTestSelection(t)

	err := sel.Bootstrap("Missing")
	var berr *BootstrapError
	require.ErrorAs(t, err, &berr)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, PhaseUninitialized, sel.Phase())

	err = sel.Bootstrap("Broken")
	var merr *MalformedShaderError
	assert.ErrorAs(t, err, &merr)
	assert.Equal(t, PhaseUninitialized, sel.Phase())
	assert.Nil(t, sel.CurrentShader())
}

func TestSelection_SelectBeforeBootstrap(t *testing.T) {
	sel := newTestSelection(t)
	assert.ErrorIs(t, sel.SelectShader("Matrix"), ErrNotReady)
	assert.Nil(t, sel.CurrentShader())
}

func TestSelection_SelectShader(t *testing.T) {
	sel := newTestSelection(t)
	require.NoError(t, sel.Bootstrap(DefaultShaderName))

	require.NoError(t, sel.SelectShader("Matrix"))
	snap := sel.Snapshot()
	assert.Equal(t, "Matrix", snap.Shader.Name)
	assert.Equal(t, "Matrix", snap.Material.ShaderName)
	assert.Equal(t, []string{"time"}, sel.DeclaredUniforms().Names())
}

func TestSelection_SelectShaderIdempotent(t *testing.T) {
	sel := newTestSelection(t)
	require.NoError(t, sel.Bootstrap(DefaultShaderName))

	require.NoError(t, sel.SelectShader("Matrix"))
	first := sel.Snapshot()
	require.NoError(t, sel.SelectShader("Matrix"))
	second := sel.Snapshot()

	assert.Same(t, first.Shader, second.Shader)
	assert.Equal(t, first.Material.Uniforms, second.Material.Uniforms)
	assert.Equal(t, first.Material.VertexSource, second.Material.VertexSource)
	assert.Equal(t, first.Material.FragmentSource, second.Material.FragmentSource)
	assert.Equal(t, first.Shape, second.Shape)
	assert.Equal(t, first.CodePanelVisible, second.CodePanelVisible)
}

func TestSelection_SelectUnknownShader(t *testing.T) {
	sel := newTestSelection(t)
	rep := &recordingReporter{}
	sel.SetReporter(rep)
	require.NoError(t, sel.Bootstrap(DefaultShaderName))
	before := sel.Snapshot()

	err := sel.SelectShader("does-not-exist")

	var lerr *CatalogLookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "does-not-exist", lerr.Name)
	after := sel.Snapshot()
	assert.Same(t, before.Shader, after.Shader)
	assert.Same(t, before.Material, after.Material)

	notices := sel.Notices().Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, SeverityWarning, notices[0].Severity)
	assert.True(t, errors.Is(notices[0].Err, ErrNotFound))
	assert.Len(t, rep.warnings, 1)
}

func TestSelection_SelectMalformedShader(t *testing.T) {
	sel := newTestSelection(t)
	require.NoError(t, sel.Bootstrap(DefaultShaderName))
	require.NoError(t, sel.SelectShader("Matrix"))
	before := sel.Snapshot()

	err := sel.SelectShader("Broken")

	var merr *MalformedShaderError
	require.ErrorAs(t, err, &merr)
	after := sel.Snapshot()
	assert.Same(t, before.Shader, after.Shader)
	assert.Same(t, before.Material, after.Material)
	assert.Equal(t, 1, sel.Notices().Len())
}

func TestSelection_SelectShape(t *testing.T) {
	sel := newTestSelection(t)
	require.NoError(t, sel.Bootstrap(DefaultShaderName))
	shader := sel.CurrentShader()

	require.NoError(t, sel.SelectShape("Torus Knot"))
	assert.Equal(t, "Torus Knot", sel.CurrentShape().Name)
	assert.Same(t, shader, sel.CurrentShader())

	err := sel.SelectShape("Dodecahedron")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Torus Knot", sel.CurrentShape().Name)
}

func TestSelection_CodePanelToggle(t *testing.T) {
	sel := newTestSelection(t)
	require.NoError(t, sel.Bootstrap(DefaultShaderName))
	before := sel.Snapshot()

	sel.SetCodePanelVisible(true)
	cv := sel.CodeView()
	assert.True(t, cv.Visible)
	assert.Equal(t, "Basic Color", cv.ShaderName)
	assert.Equal(t, "v", cv.VertexSource)
	assert.Equal(t, "f", cv.FragmentSource)

	sel.SetCodePanelVisible(false)
	assert.Equal(t, before, sel.Snapshot())
}

func TestSelection_SetParameter(t *testing.T) {
	sel := newTestSelection(t)
	require.NoError(t, sel.Bootstrap(DefaultShaderName))
	require.NoError(t, sel.SelectShader("Matrix"))

	require.NoError(t, sel.SetParameter("time", 2.5))
	assert.Equal(t, float32(2.5), sel.CurrentMaterial().Uniforms.Float("time"))

	err := sel.SetParameter(UniformAmbientLightColor, [3]float32{1, 1, 1})
	assert.ErrorIs(t, err, ErrUnknownParameter)

	err = sel.SetParameter("time", "soon")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, float32(2.5), sel.CurrentMaterial().Uniforms.Float("time"))

	// The catalog definition keeps its declared default.
	assert.Equal(t, float32(0), sel.CurrentShader().Uniforms.Float("time"))
}

func TestSelection_SwitchResetsUniforms(t *testing.T) {
	sel := newTestSelection(t)
	require.NoError(t, sel.Bootstrap(DefaultShaderName))
	require.NoError(t, sel.SelectShader("Matrix"))
	require.NoError(t, sel.SetParameter("time", 10))

	require.NoError(t, sel.SelectShader("Basic Color"))
	_, leaked := sel.CurrentMaterial().Uniforms["time"]
	assert.False(t, leaked)

	require.NoError(t, sel.SelectShader("Matrix"))
	assert.Equal(t, float32(0), sel.CurrentMaterial().Uniforms.Float("time"))
}
