package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestParseUniformType(t *testing.T) {
	for in, want := range map[string]UniformType{
		"f":     UniformFloat,
		"float": UniformFloat,
		"c":     UniformColor,
		"Color": UniformColor,
		"v3":    UniformVec3,
		"v3v":   UniformVec3Array,
	} {
		got, err := ParseUniformType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseUniformType("sampler2D")
	assert.Error(t, err)
}

func TestUniform_Set(t *testing.T) {
	f := Float(1)
	require.NoError(t, f.Set(0.5))
	assert.Equal(t, float32(0.5), f.Value)
	assert.ErrorIs(t, f.Set("x"), ErrTypeMismatch)
	assert.Equal(t, float32(0.5), f.Value)

	i := Int(1)
	require.NoError(t, i.Set(3.0))
	assert.Equal(t, int32(3), i.Value)
	assert.ErrorIs(t, i.Set(3.5), ErrTypeMismatch)
	assert.ErrorIs(t, i.Set(int64(1)<<33), ErrTypeMismatch)
	assert.ErrorIs(t, i.Set(3e10), ErrTypeMismatch)
	assert.ErrorIs(t, i.Set(-3e10), ErrTypeMismatch)
	assert.Equal(t, int32(3), i.Value)
	require.NoError(t, i.Set(int64(math.MinInt32)))
	assert.Equal(t, int32(math.MinInt32), i.Value)
	require.NoError(t, i.Set(float64(math.MaxInt32)))
	assert.Equal(t, int32(math.MaxInt32), i.Value)

	c := RGB(0, 0, 0)
	require.NoError(t, c.Set(colornames.White))
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, c.Value)

	v := Vec3(mgl32.Vec3{})
	assert.ErrorIs(t, v.Set(colornames.Red), ErrTypeMismatch)
	require.NoError(t, v.Set([3]float32{1, 2, 3}))
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, v.Value)
}

func TestUniform_CloneDeepCopiesSlices(t *testing.T) {
	u := FloatArray([]float32{1, 2})
	c := u.Clone()
	c.Value.([]float32)[0] = 9
	assert.Equal(t, []float32{1, 2}, u.Value)
}

func TestUniformMap_Merge(t *testing.T) {
	base := UniformMap{"a": Float(1), "b": Float(2)}
	over := UniformMap{"b": Float(20), "c": Float(30)}

	m := Merge(base, over)

	assert.Equal(t, []string{"a", "b", "c"}, m.Names())
	assert.Equal(t, float32(20), m.Float("b"))
	assert.Equal(t, float32(2), base.Float("b"))
	assert.NotSame(t, over["c"], m["c"])
}

func TestUniformMap_SetNeverAddsKeys(t *testing.T) {
	m := UniformMap{"a": Float(1)}
	assert.ErrorIs(t, m.Set("b", 1.0), ErrUnknownParameter)
	assert.False(t, m.SetFloat("b", 1))
	assert.False(t, m.SetVec3("a", mgl32.Vec3{}))
	assert.Len(t, m, 1)
}

func TestUniform_Finite(t *testing.T) {
	assert.True(t, Vec3(mgl32.Vec3{1, 2, 3}).Finite())
	nan := float32(0)
	nan = nan / nan
	assert.False(t, Float(nan).Finite())
	assert.False(t, Vec3Array([]mgl32.Vec3{{0, nan, 0}}).Finite())
}
