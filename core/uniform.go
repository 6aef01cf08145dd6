package core

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

type UniformType uint32

const (
	UniformFloat UniformType = iota
	UniformInt
	UniformBool
	UniformVec2
	UniformVec3
	UniformVec4
	UniformColor
	UniformMat4
	UniformFloatArray
	UniformVec3Array
)

// Short tags follow the three.js uniform type letters so catalog manifests
// written for the web gallery keep working.
var uniformTypeTags = [...]string{
	UniformFloat:      "f",
	UniformInt:        "i",
	UniformBool:       "b",
	UniformVec2:       "v2",
	UniformVec3:       "v3",
	UniformVec4:       "v4",
	UniformColor:      "c",
	UniformMat4:       "m4",
	UniformFloatArray: "fv1",
	UniformVec3Array:  "v3v",
}

var uniformTypeAliases = map[string]UniformType{
	"float": UniformFloat,
	"int":   UniformInt,
	"bool":  UniformBool,
	"vec2":  UniformVec2,
	"vec3":  UniformVec3,
	"vec4":  UniformVec4,
	"color": UniformColor,
	"mat4":  UniformMat4,
}

func (t UniformType) String() string {
	if int(t) < len(uniformTypeTags) {
		return uniformTypeTags[t]
	}
	return fmt.Sprintf("UniformType(%d)", uint32(t))
}

// ParseUniformType accepts either a three.js type letter ("f", "c", "v3")
// or a GLSL-ish name ("float", "color", "vec3").
func ParseUniformType(s string) (UniformType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, tag := range uniformTypeTags {
		if tag == s {
			return UniformType(i), nil
		}
	}
	if t, ok := uniformTypeAliases[s]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown uniform type %q", s)
}

// Uniform is a typed shader parameter. Value always holds the Go type that
// matches Type:
//
//	UniformFloat      float32
//	UniformInt        int32
//	UniformBool       bool
//	UniformVec2       mgl32.Vec2
//	UniformVec3       mgl32.Vec3
//	UniformVec4       mgl32.Vec4
//	UniformColor      mgl32.Vec3 (linear RGB, 0..1)
//	UniformMat4       mgl32.Mat4
//	UniformFloatArray []float32
//	UniformVec3Array  []mgl32.Vec3
type Uniform struct {
	Type  UniformType
	Value any
}

func Float(v float32) *Uniform          { return &Uniform{Type: UniformFloat, Value: v} }
func Int(v int32) *Uniform              { return &Uniform{Type: UniformInt, Value: v} }
func Bool(v bool) *Uniform              { return &Uniform{Type: UniformBool, Value: v} }
func Vec2(v mgl32.Vec2) *Uniform        { return &Uniform{Type: UniformVec2, Value: v} }
func Vec3(v mgl32.Vec3) *Uniform        { return &Uniform{Type: UniformVec3, Value: v} }
func Vec4(v mgl32.Vec4) *Uniform        { return &Uniform{Type: UniformVec4, Value: v} }
func Mat4(v mgl32.Mat4) *Uniform        { return &Uniform{Type: UniformMat4, Value: v} }
func RGB(r, g, b float32) *Uniform      { return &Uniform{Type: UniformColor, Value: mgl32.Vec3{r, g, b}} }
func Color(c color.Color) *Uniform      { return &Uniform{Type: UniformColor, Value: ColorVec3(c)} }
func FloatArray(v []float32) *Uniform   { return &Uniform{Type: UniformFloatArray, Value: slices.Clone(v)} }
func Vec3Array(v []mgl32.Vec3) *Uniform { return &Uniform{Type: UniformVec3Array, Value: slices.Clone(v)} }

// ColorVec3 converts any color.Color to a 0..1 RGB vector, ignoring alpha.
func ColorVec3(c color.Color) mgl32.Vec3 {
	r, g, b, _ := c.RGBA()
	return mgl32.Vec3{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff}
}

// Clone returns a deep copy; slice-valued uniforms get their own backing array.
func (u *Uniform) Clone() *Uniform {
	if u == nil {
		return nil
	}
	c := *u
	switch v := u.Value.(type) {
	case []float32:
		c.Value = slices.Clone(v)
	case []mgl32.Vec3:
		c.Value = slices.Clone(v)
	}
	return &c
}

// Validate reports whether Value holds the Go type Type requires.
func (u *Uniform) Validate() error {
	if u == nil {
		return fmt.Errorf("nil uniform")
	}
	ok := false
	switch u.Type {
	case UniformFloat:
		_, ok = u.Value.(float32)
	case UniformInt:
		_, ok = u.Value.(int32)
	case UniformBool:
		_, ok = u.Value.(bool)
	case UniformVec2:
		_, ok = u.Value.(mgl32.Vec2)
	case UniformVec3, UniformColor:
		_, ok = u.Value.(mgl32.Vec3)
	case UniformVec4:
		_, ok = u.Value.(mgl32.Vec4)
	case UniformMat4:
		_, ok = u.Value.(mgl32.Mat4)
	case UniformFloatArray:
		_, ok = u.Value.([]float32)
	case UniformVec3Array:
		_, ok = u.Value.([]mgl32.Vec3)
	}
	if !ok {
		return fmt.Errorf("%w: uniform of type %s holds %T", ErrTypeMismatch, u.Type, u.Value)
	}
	return nil
}

// Set assigns v after converting it to the uniform's Go type. Untyped numeric
// literals (float64, int) and color.Color values are accepted where they make
// sense; anything else is ErrTypeMismatch and leaves the uniform unchanged.
func (u *Uniform) Set(v any) error {
	conv, err := convertUniformValue(u.Type, v)
	if err != nil {
		return err
	}
	u.Value = conv
	return nil
}

func convertUniformValue(t UniformType, v any) (any, error) {
	mismatch := func() (any, error) {
		return nil, fmt.Errorf("%w: cannot use %T as %s", ErrTypeMismatch, v, t)
	}
	switch t {
	case UniformFloat:
		switch n := v.(type) {
		case float32:
			return n, nil
		case float64:
			return float32(n), nil
		case int:
			return float32(n), nil
		case int32:
			return float32(n), nil
		case int64:
			return float32(n), nil
		}
	case UniformInt:
		switch n := v.(type) {
		case int32:
			return n, nil
		case int:
			if n >= math.MinInt32 && n <= math.MaxInt32 {
				return int32(n), nil
			}
		case int64:
			if n >= math.MinInt32 && n <= math.MaxInt32 {
				return int32(n), nil
			}
		case float64:
			if n == math.Trunc(n) && n >= math.MinInt32 && n <= math.MaxInt32 {
				return int32(n), nil
			}
		}
	case UniformBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case UniformVec2:
		switch n := v.(type) {
		case mgl32.Vec2:
			return n, nil
		case [2]float32:
			return mgl32.Vec2(n), nil
		}
	case UniformVec3, UniformColor:
		switch n := v.(type) {
		case mgl32.Vec3:
			return n, nil
		case [3]float32:
			return mgl32.Vec3(n), nil
		case color.Color:
			if t == UniformColor {
				return ColorVec3(n), nil
			}
		}
	case UniformVec4:
		switch n := v.(type) {
		case mgl32.Vec4:
			return n, nil
		case [4]float32:
			return mgl32.Vec4(n), nil
		}
	case UniformMat4:
		if m, ok := v.(mgl32.Mat4); ok {
			return m, nil
		}
	case UniformFloatArray:
		if s, ok := v.([]float32); ok {
			return slices.Clone(s), nil
		}
	case UniformVec3Array:
		if s, ok := v.([]mgl32.Vec3); ok {
			return slices.Clone(s), nil
		}
	}
	return mismatch()
}

// Finite is false when any float component is NaN or ±Inf.
func (u *Uniform) Finite() bool {
	switch v := u.Value.(type) {
	case float32:
		return finite(v)
	case mgl32.Vec2:
		return finite(v[:]...)
	case mgl32.Vec3:
		return finite(v[:]...)
	case mgl32.Vec4:
		return finite(v[:]...)
	case mgl32.Mat4:
		return finite(v[:]...)
	case []float32:
		return finite(v...)
	case []mgl32.Vec3:
		for _, e := range v {
			if !finite(e[:]...) {
				return false
			}
		}
	}
	return true
}

func finite(vs ...float32) bool {
	for _, v := range vs {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// UniformMap is a set of named uniforms. A nil map means "none declared".
type UniformMap map[string]*Uniform

// Clone deep-copies every entry. A nil map clones to nil.
func (m UniformMap) Clone() UniformMap {
	if m == nil {
		return nil
	}
	c := make(UniformMap, len(m))
	for k, u := range m {
		c[k] = u.Clone()
	}
	return c
}

// Names returns the uniform names in sorted order.
func (m UniformMap) Names() []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Set assigns an existing uniform. It never adds keys.
func (m UniformMap) Set(name string, v any) error {
	u, ok := m[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	return u.Set(v)
}

// Float reads a float uniform, returning 0 when it is missing or not a float.
func (m UniformMap) Float(name string) float32 {
	if u, ok := m[name]; ok {
		if f, ok := u.Value.(float32); ok {
			return f
		}
	}
	return 0
}

// SetFloat writes an existing float uniform and reports whether it did.
func (m UniformMap) SetFloat(name string, v float32) bool {
	if u, ok := m[name]; ok && u.Type == UniformFloat {
		u.Value = v
		return true
	}
	return false
}

// AddFloat increments an existing float uniform by d.
func (m UniformMap) AddFloat(name string, d float32) bool {
	return m.SetFloat(name, m.Float(name)+d)
}

// Vec3 reads a vec3 or color uniform.
func (m UniformMap) Vec3(name string) mgl32.Vec3 {
	if u, ok := m[name]; ok {
		if v, ok := u.Value.(mgl32.Vec3); ok {
			return v
		}
	}
	return mgl32.Vec3{}
}

// SetVec3 writes an existing vec3 or color uniform.
func (m UniformMap) SetVec3(name string, v mgl32.Vec3) bool {
	if u, ok := m[name]; ok && (u.Type == UniformVec3 || u.Type == UniformColor) {
		u.Value = v
		return true
	}
	return false
}

func (m UniformMap) sameKeys(o UniformMap) bool {
	if len(m) != len(o) {
		return false
	}
	for k := range m {
		if _, ok := o[k]; !ok {
			return false
		}
	}
	return true
}

// Merge layers the maps left to right into a fresh map of cloned uniforms:
// on a key collision the later map wins. No input is modified.
func Merge(layers ...UniformMap) UniformMap {
	n := 0
	for _, l := range layers {
		n += len(l)
	}
	out := make(UniformMap, n)
	for _, l := range layers {
		for k, u := range l {
			out[k] = u.Clone()
		}
	}
	return out
}
