package core

// Names of the standard lighting uniforms every lit material receives.
const (
	UniformAmbientLightColor         = "ambientLightColor"
	UniformDirectionalLightColor     = "directionalLightColor"
	UniformDirectionalLightDirection = "directionalLightDirection"
	UniformPointLightColor           = "pointLightColor"
	UniformPointLightPosition        = "pointLightPosition"
	UniformPointLightDistance        = "pointLightDistance"
)

// LightingSource supplies the scene's standard lighting uniforms. The binder
// clones whatever it returns, so implementations may hand out shared maps.
type LightingSource interface {
	LightingUniforms() UniformMap
}

// StaticLighting is a LightingSource that always returns the same set.
type StaticLighting UniformMap

func (s StaticLighting) LightingUniforms() UniformMap { return UniformMap(s) }

// DefaultLighting is one white ambient term and no lights.
func DefaultLighting() StaticLighting {
	return StaticLighting{
		UniformAmbientLightColor:         RGB(0.2, 0.2, 0.2),
		UniformDirectionalLightColor:     Vec3Array(nil),
		UniformDirectionalLightDirection: Vec3Array(nil),
		UniformPointLightColor:           Vec3Array(nil),
		UniformPointLightPosition:        Vec3Array(nil),
		UniformPointLightDistance:        FloatArray(nil),
	}
}
