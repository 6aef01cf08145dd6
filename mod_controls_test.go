package gallery

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gekko3d/gallery/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildControls(t *testing.T) {
	def := &core.ShaderDefinition{
		Name:           "Mixed",
		VertexSource:   "v",
		FragmentSource: "f",
		Uniforms: core.UniformMap{
			"speed":   core.Float(0.5),
			"steps":   core.Int(3),
			"tint":    core.RGB(1, 0.5, 0),
			"offset":  core.Vec2(mgl32.Vec2{1, 2}),
			"enabled": core.Bool(true),
			"model":   core.Mat4(mgl32.Ident4()),
		},
	}
	mat, err := core.ApplyShader(def, core.DefaultLighting().LightingUniforms())
	require.NoError(t, err)
	mat.Uniforms.SetFloat("speed", 2)

	controls := BuildControls(mat.DeclaredUniforms(), mat)
	require.Len(t, controls, 6)

	names := make([]string, len(controls))
	kinds := map[string]ControlKind{}
	for i, c := range controls {
		names[i] = c.Name
		kinds[c.Name] = c.Kind
	}
	assert.Equal(t, []string{"enabled", "model", "offset", "speed", "steps", "tint"}, names)
	assert.Equal(t, map[string]ControlKind{
		"enabled": ControlCheckbox,
		"model":   ControlReadout,
		"offset":  ControlVectorEditor,
		"speed":   ControlSlider,
		"steps":   ControlSlider,
		"tint":    ControlColorPicker,
	}, kinds)

	// Live value, not the declared default.
	assert.Equal(t, float32(2), controls[3].Value)
	assert.Equal(t, float32(0.01), controls[3].Step)
	assert.Equal(t, float32(1), controls[4].Step)

	// Without a material the declared defaults are shown.
	controls = BuildControls(mat.DeclaredUniforms(), nil)
	assert.Equal(t, float32(0.5), controls[3].Value)
}

func TestBuildControls_NoDeclaredUniforms(t *testing.T) {
	def := &core.ShaderDefinition{Name: "Plain", VertexSource: "v", FragmentSource: "f"}
	mat, err := core.ApplyShader(def, core.DefaultLighting().LightingUniforms())
	require.NoError(t, err)
	assert.Empty(t, BuildControls(mat.DeclaredUniforms(), mat))
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#ff8000", HexColor(mgl32.Vec3{1, 0.5, 0}))
	assert.Equal(t, "#000000", HexColor(mgl32.Vec3{-1, 0, 0}))
}

func TestUiTable_String(t *testing.T) {
	table := UiTable{
		Headers: []string{"a", "bb"},
		Rows:    [][]string{{"long", "x"}},
	}
	assert.Equal(t, ""+
		"+------+----+\n"+
		"| a    | bb |\n"+
		"+------+----+\n"+
		"| long | x  |\n"+
		"+------+----+\n", table.String())
	assert.Empty(t, UiTable{}.String())
}

func TestControlsModule(t *testing.T) {
	var logs bytes.Buffer
	app := newTestApp(t, &logs, GalleryModule{}).UseModules(ControlsModule{})
	panel := Resource[ControlPanel](app)
	require.NotNil(t, panel)

	app.Step()
	assert.Empty(t, panel.Controls)
	assert.True(t, panel.Shaders.Items[0].Selected)

	app.Commands().Submit(SelectShaderIntent{Name: "Clock"}, SelectShaderIntent{Name: "Nope"})
	app.Step()

	require.Len(t, panel.Controls, 2)
	assert.Equal(t, "color", panel.Controls[0].Name)
	assert.Equal(t, "time", panel.Controls[1].Name)
	assert.InDelta(t, 0.1, panel.Controls[1].Value, 1e-6)
	assert.True(t, panel.Shaders.Items[1].Selected)

	out := panel.String()
	assert.Contains(t, out, "> Clock")
	assert.Contains(t, out, "#ff0000")
	assert.True(t, strings.HasPrefix(out, "Shaders\n"))

	notices := panel.TakeNotices()
	require.Len(t, notices, 1)
	assert.ErrorIs(t, notices[0].Err, core.ErrNotFound)
	assert.Empty(t, panel.TakeNotices())
}

func TestControlsModule_RequiresGallery(t *testing.T) {
	assert.Panics(t, func() { NewApp().UseModules(ControlsModule{}) })
}

func TestCodeViewModule(t *testing.T) {
	var logs bytes.Buffer
	app := newTestApp(t, &logs, GalleryModule{}).UseModules(CodeViewModule{Format: "noop"})
	pane := Resource[CodePane](app)

	app.Step()
	assert.False(t, pane.Visible)
	assert.Empty(t, pane.Text)

	app.Commands().Submit(ShowCodeIntent{Visible: true}, SelectShaderIntent{Name: "Clock"})
	app.Step()
	assert.True(t, pane.Visible)
	assert.Equal(t, "Clock", pane.ShaderName)
	assert.True(t, strings.HasPrefix(pane.Text, "== Clock ==\n-- vertex --\nv"))

	app.Commands().Submit(ShowCodeIntent{Visible: false})
	app.Step()
	assert.Empty(t, pane.Text)
}

func TestCodeViewModule_UnknownStyle(t *testing.T) {
	var logs bytes.Buffer
	app := newTestApp(t, &logs, GalleryModule{}).UseModules(CodeViewModule{Style: "no-such-style", Format: "noop"})
	assert.Contains(t, logs.String(), `WARN: code view style "no-such-style" is not registered`)

	app.Commands().Submit(ShowCodeIntent{Visible: true})
	app.Step()
	assert.NotEmpty(t, Resource[CodePane](app).Text)
}
