package shaders

import (
	"embed"
	"strings"

	"github.com/gekko3d/gallery/core"
	"golang.org/x/image/colornames"
)

//go:embed glsl
var glslFS embed.FS

const (
	BasicColor       = "Basic Color"
	BasicColorLights = "Basic Color Lights"
	Checker          = "Checker"
	Dots             = "Dots"
	SimpleLines      = "Simple Lines"
	FadedLines       = "Faded Lines"
	Starburst        = "Starburst"
	Normal           = "Normal"
	Matrix           = "Matrix"
	Voronoise        = "Voronoise"
	WoodGrain        = "Wood Grain"
	SimplexNoise3D   = "Simplex Noise 3D"
	PerlinNoise3D    = "Perlin Noise 3D"
	PerlinVertexDisp = "Perlin Vertex Disp"
	PolkaNoise       = "Polka Noise"
	Fresnel2Color    = "Fresnel 2 Color"
)

var (
	simplexChunk = []string{"noise_common.glsl", "noise_simplex3d.glsl"}
	perlinChunk  = []string{"noise_common.glsl", "noise_perlin3d.glsl"}
)

// Source concatenates embedded GLSL files in order. Noise helpers are shared
// this way instead of through #include, which WebGL does not have.
func Source(files ...string) string {
	var sb strings.Builder
	for _, f := range files {
		b, err := glslFS.ReadFile("glsl/" + f)
		if err != nil {
			panic(err)
		}
		sb.Write(b)
		if len(b) > 0 && b[len(b)-1] != '\n' {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func with(chunk []string, file string) []string {
	return append(append([]string(nil), chunk...), file)
}

// Builtin returns the gallery's shaders in menu order. Each call builds new
// definitions, so callers never share uniform maps.
func Builtin() []*core.ShaderDefinition {
	return []*core.ShaderDefinition{
		{
			Name:           BasicColor,
			VertexSource:   Source("uv.vert"),
			FragmentSource: Source("basic_color.frag"),
		},
		{
			Name:           BasicColorLights,
			VertexSource:   Source("lit.vert"),
			FragmentSource: Source("basic_color_lights.frag"),
			Uniforms: core.UniformMap{
				"color": core.Color(colornames.Orange),
			},
		},
		{
			Name:           Checker,
			VertexSource:   Source("uv.vert"),
			FragmentSource: Source("checker.frag"),
			Uniforms: core.UniformMap{
				"color1":    core.Color(colornames.White),
				"color2":    core.Color(colornames.Black),
				"checkSize": core.Float(10),
			},
		},
		{
			Name:           Dots,
			VertexSource:   Source("uv.vert"),
			FragmentSource: Source("dots.frag"),
			Uniforms: core.UniformMap{
				"color1":    core.Color(colornames.Crimson),
				"color2":    core.Color(colornames.Ivory),
				"frequency": core.Float(10),
				"radius":    core.Float(0.5),
			},
		},
		{
			Name:           SimpleLines,
			VertexSource:   Source("uv.vert"),
			FragmentSource: Source("simple_lines.frag"),
			Uniforms: core.UniformMap{
				"color1":    core.Color(colornames.Black),
				"color2":    core.Color(colornames.White),
				"lineCount": core.Float(20),
				"lineWidth": core.Float(0.3),
			},
		},
		{
			Name:           FadedLines,
			VertexSource:   Source("uv.vert"),
			FragmentSource: Source("faded_lines.frag"),
			Uniforms: core.UniformMap{
				"color1":    core.Color(colornames.Steelblue),
				"color2":    core.Color(colornames.White),
				"lineCount": core.Float(20),
				"fade":      core.Float(0.3),
			},
		},
		{
			Name:           Starburst,
			VertexSource:   Source("uv.vert"),
			FragmentSource: Source("starburst.frag"),
			Uniforms: core.UniformMap{
				"color1": core.Color(colornames.Gold),
				"color2": core.Color(colornames.Darkorange),
				"rays":   core.Float(16),
				"time":   core.Float(0),
			},
			Animator: Sequence{
				TimeAnimator{Uniform: "time", Speed: 0.5},
				PulseAnimator{
					Uniform: "color1",
					From:    core.ColorVec3(colornames.Gold),
					To:      core.ColorVec3(colornames.Orangered),
					Period:  4,
				},
			},
		},
		{
			Name:           Normal,
			VertexSource:   Source("normal.vert"),
			FragmentSource: Source("normal.frag"),
		},
		{
			Name:           Matrix,
			VertexSource:   Source("uv.vert"),
			FragmentSource: Source("matrix.frag"),
			Uniforms: core.UniformMap{
				"time":    core.Float(0),
				"color":   core.Color(colornames.Lime),
				"columns": core.Float(40),
			},
			Animator: TimeAnimator{Uniform: "time"},
		},
		{
			Name:           Voronoise,
			VertexSource:   Source("uv.vert"),
			FragmentSource: Source("voronoise.frag"),
			Uniforms: core.UniformMap{
				"scale": core.Float(24),
				"u":     core.Float(1),
				"v":     core.Float(1),
			},
		},
		{
			Name:           WoodGrain,
			VertexSource:   Source("position.vert"),
			FragmentSource: Source(with(simplexChunk, "wood_grain.frag")...),
			Uniforms: core.UniformMap{
				"color1":     core.Color(colornames.Saddlebrown),
				"color2":     core.Color(colornames.Burlywood),
				"frequency":  core.Float(0.02),
				"noiseScale": core.Float(0.01),
				"ringScale":  core.Float(0.6),
				"contrast":   core.Float(4),
			},
		},
		{
			Name:           SimplexNoise3D,
			VertexSource:   Source("position.vert"),
			FragmentSource: Source(with(simplexChunk, "simplex_noise_3d.frag")...),
			Uniforms: core.UniformMap{
				"scale": core.Float(0.02),
				"time":  core.Float(0),
			},
			Animator: TimeAnimator{Uniform: "time", Speed: 0.5},
		},
		{
			Name:           PerlinNoise3D,
			VertexSource:   Source("position.vert"),
			FragmentSource: Source(with(perlinChunk, "perlin_noise_3d.frag")...),
			Uniforms: core.UniformMap{
				"scale": core.Float(0.02),
				"time":  core.Float(0),
			},
			Animator: TimeAnimator{Uniform: "time", Speed: 0.5},
		},
		{
			Name:           PerlinVertexDisp,
			VertexSource:   Source(with(perlinChunk, "perlin_disp.vert")...),
			FragmentSource: Source("perlin_disp.frag"),
			Uniforms: core.UniformMap{
				"color1":       core.Color(colornames.Midnightblue),
				"color2":       core.Color(colornames.Skyblue),
				"scale":        core.Float(0.02),
				"displacement": core.Float(20),
				"time":         core.Float(0),
			},
			Animator: TimeAnimator{Uniform: "time", Speed: 0.3},
		},
		{
			Name:           PolkaNoise,
			VertexSource:   Source("position.vert"),
			FragmentSource: Source(with(simplexChunk, "polka_noise.frag")...),
			Uniforms: core.UniformMap{
				"color1":    core.Color(colornames.Hotpink),
				"color2":    core.Color(colornames.White),
				"frequency": core.Float(12),
				"radius":    core.Float(0.6),
				"time":      core.Float(0),
			},
			Animator: TimeAnimator{Uniform: "time"},
		},
		{
			Name:           Fresnel2Color,
			VertexSource:   Source("fresnel.vert"),
			FragmentSource: Source("fresnel_2color.frag"),
			Uniforms: core.UniformMap{
				"color1":       core.Color(colornames.White),
				"color2":       core.Color(colornames.Navy),
				"fresnelBias":  core.Float(0.1),
				"fresnelScale": core.Float(1),
				"fresnelPower": core.Float(2),
			},
		},
	}
}

// Catalog builds a catalog of the built-in shaders.
func Catalog() (*core.ShaderCatalog, error) {
	return core.NewShaderCatalog(Builtin()...)
}
