package gallery

import (
	"image/color"

	"github.com/gekko3d/gallery/core"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

type LightType uint32

const (
	LightTypePoint       LightType = 0
	LightTypeDirectional LightType = 1
	LightTypeAmbient     LightType = 3
)

// Light is one scene light feeding the standard lighting uniforms.
type Light struct {
	Type      LightType
	Color     color.Color // nil means white
	Intensity float32     // 0 means 1
	Position  mgl32.Vec3  // point lights
	Direction mgl32.Vec3  // directional lights, towards the light
	Range     float32     // point lights, 0 is unlimited
}

func (l Light) rgb() mgl32.Vec3 {
	c := l.Color
	if c == nil {
		c = colornames.White
	}
	i := l.Intensity
	if i == 0 {
		i = 1
	}
	return core.ColorVec3(c).Mul(i)
}

// Lighting is the scene's lighting environment. Materials bound while it is
// installed receive its uniforms.
type Lighting struct {
	Ambient color.Color
	Lights  []Light
}

// DefaultLights is a dim ambient term plus one white key light from the
// upper right front.
func DefaultLights() []Light {
	return []Light{
		{Type: LightTypeDirectional, Color: colornames.White, Direction: mgl32.Vec3{1, 1, 1}.Normalize()},
	}
}

// LightingUniforms flattens the lights into the standard lighting uniforms.
// Ambient lights add to the ambient color.
func (l *Lighting) LightingUniforms() core.UniformMap {
	ambient := mgl32.Vec3{0.2, 0.2, 0.2}
	if l.Ambient != nil {
		ambient = core.ColorVec3(l.Ambient)
	}

	var dirColor, dirDir, pointColor, pointPos []mgl32.Vec3
	var pointDist []float32
	for _, light := range l.Lights {
		switch light.Type {
		case LightTypeAmbient:
			ambient = ambient.Add(light.rgb())
		case LightTypeDirectional:
			dir := light.Direction
			if dir.Len() > 0 {
				dir = dir.Normalize()
			}
			dirColor = append(dirColor, light.rgb())
			dirDir = append(dirDir, dir)
		case LightTypePoint:
			pointColor = append(pointColor, light.rgb())
			pointPos = append(pointPos, light.Position)
			pointDist = append(pointDist, light.Range)
		}
	}

	return core.UniformMap{
		core.UniformAmbientLightColor:         core.RGB(ambient[0], ambient[1], ambient[2]),
		core.UniformDirectionalLightColor:     core.Vec3Array(dirColor),
		core.UniformDirectionalLightDirection: core.Vec3Array(dirDir),
		core.UniformPointLightColor:           core.Vec3Array(pointColor),
		core.UniformPointLightPosition:        core.Vec3Array(pointPos),
		core.UniformPointLightDistance:        core.FloatArray(pointDist),
	}
}

var _ core.LightingSource = (*Lighting)(nil)

// LightingModule installs the Lighting resource. A nil Lights slice uses
// DefaultLights; an empty non-nil slice means no lights.
type LightingModule struct {
	Ambient color.Color
	Lights  []Light
}

func (m LightingModule) Install(app *App, cmd *Commands) {
	lights := m.Lights
	if lights == nil {
		lights = DefaultLights()
	}
	cmd.AddResources(&Lighting{Ambient: m.Ambient, Lights: lights})
}
