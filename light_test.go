package gallery

import (
	"testing"

	"github.com/gekko3d/gallery/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestLighting_Uniforms(t *testing.T) {
	l := &Lighting{
		Ambient: colornames.Black,
		Lights: []Light{
			{Type: LightTypeAmbient, Color: colornames.White, Intensity: 0.25},
			{Type: LightTypeDirectional, Direction: mgl32.Vec3{0, 2, 0}},
			{Type: LightTypePoint, Color: colornames.Red, Position: mgl32.Vec3{1, 2, 3}, Range: 50},
		},
	}
	u := l.LightingUniforms()

	assert.Equal(t, core.UniformColor, u[core.UniformAmbientLightColor].Type)
	ambient := u.Vec3(core.UniformAmbientLightColor)
	assert.InDeltaSlice(t, []float32{0.25, 0.25, 0.25}, ambient[:], 1e-6)
	assert.Equal(t, []mgl32.Vec3{{0, 1, 0}}, u[core.UniformDirectionalLightDirection].Value)
	assert.Equal(t, []mgl32.Vec3{{1, 1, 1}}, u[core.UniformDirectionalLightColor].Value)
	assert.Equal(t, []mgl32.Vec3{{1, 0, 0}}, u[core.UniformPointLightColor].Value)
	assert.Equal(t, []mgl32.Vec3{{1, 2, 3}}, u[core.UniformPointLightPosition].Value)
	assert.Equal(t, []float32{50}, u[core.UniformPointLightDistance].Value)

	for name, uniform := range u {
		assert.NoError(t, uniform.Validate(), name)
	}
}

func TestLightingModule_Defaults(t *testing.T) {
	app := NewApp().UseModules(LightingModule{})
	l := Resource[Lighting](app)
	assert.Equal(t, DefaultLights(), l.Lights)

	app = NewApp().UseModules(LightingModule{Lights: []Light{}})
	u := Resource[Lighting](app).LightingUniforms()
	assert.Empty(t, u[core.UniformDirectionalLightColor].Value)
	assert.Equal(t, mgl32.Vec3{0.2, 0.2, 0.2}, u.Vec3(core.UniformAmbientLightColor))
}
