package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gekko3d/gallery/core"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

func decodeUniform(e UniformEntry) (*core.Uniform, error) {
	t, err := core.ParseUniformType(e.Type)
	if err != nil {
		return nil, err
	}
	if e.Value == nil {
		return nil, fmt.Errorf("missing value")
	}

	var v any
	switch t {
	case core.UniformFloat, core.UniformInt, core.UniformBool:
		// Scalars go through Uniform.Set, which already widens decoder types.
		v = e.Value
	case core.UniformColor:
		v, err = decodeColor(e.Value)
	case core.UniformVec2:
		var f []float32
		if f, err = floats(e.Value, 2); err == nil {
			v = mgl32.Vec2(f)
		}
	case core.UniformVec3:
		var f []float32
		if f, err = floats(e.Value, 3); err == nil {
			v = mgl32.Vec3(f)
		}
	case core.UniformVec4:
		var f []float32
		if f, err = floats(e.Value, 4); err == nil {
			v = mgl32.Vec4(f)
		}
	case core.UniformMat4:
		var f []float32
		if f, err = floats(e.Value, 16); err == nil {
			v = mgl32.Mat4(f)
		}
	case core.UniformFloatArray:
		v, err = floats(e.Value, -1)
	case core.UniformVec3Array:
		v, err = vec3s(e.Value)
	}
	if err != nil {
		return nil, err
	}

	u := &core.Uniform{Type: t, Value: zeroValue(t)}
	if err := u.Set(v); err != nil {
		return nil, err
	}
	return u, nil
}

func zeroValue(t core.UniformType) any {
	switch t {
	case core.UniformFloat:
		return float32(0)
	case core.UniformInt:
		return int32(0)
	case core.UniformBool:
		return false
	case core.UniformVec2:
		return mgl32.Vec2{}
	case core.UniformVec4:
		return mgl32.Vec4{}
	case core.UniformMat4:
		return mgl32.Ident4()
	case core.UniformFloatArray:
		return []float32(nil)
	case core.UniformVec3Array:
		return []mgl32.Vec3(nil)
	}
	return mgl32.Vec3{}
}

// decodeColor accepts a CSS color name, "#rrggbb", "0xrrggbb" or an [r, g, b]
// list of 0..1 components.
func decodeColor(raw any) (mgl32.Vec3, error) {
	s, ok := raw.(string)
	if !ok {
		f, err := floats(raw, 3)
		if err != nil {
			return mgl32.Vec3{}, err
		}
		return mgl32.Vec3(f), nil
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return core.ColorVec3(c), nil
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(hex) != 6 {
		return mgl32.Vec3{}, fmt.Errorf("unknown color %q", raw)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return mgl32.Vec3{}, fmt.Errorf("unknown color %q", raw)
	}
	return mgl32.Vec3{
		float32(n>>16&0xff) / 255,
		float32(n>>8&0xff) / 255,
		float32(n&0xff) / 255,
	}, nil
}

// floats converts a decoded list to float32s. want < 0 accepts any length.
func floats(raw any, want int) ([]float32, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", raw)
	}
	if want >= 0 && len(list) != want {
		return nil, fmt.Errorf("expected %d components, got %d", want, len(list))
	}
	out := make([]float32, len(list))
	for i, e := range list {
		f, err := number(e)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

func vec3s(raw any) ([]mgl32.Vec3, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", raw)
	}
	out := make([]mgl32.Vec3, len(list))
	for i, e := range list {
		f, err := floats(e, 3)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = mgl32.Vec3(f)
	}
	return out, nil
}

func number(v any) (float32, error) {
	switch n := v.(type) {
	case float64:
		return float32(n), nil
	case int:
		return float32(n), nil
	case int64:
		return float32(n), nil
	case float32:
		return n, nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}
