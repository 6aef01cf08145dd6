package shapes

import (
	"testing"

	"github.com/gekko3d/gallery/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	cat, err := Catalog()
	require.NoError(t, err)
	assert.Equal(t, []string{Cube, Sphere, Cylinder, TorusKnot}, cat.Names())

	knot, err := cat.Find(TorusKnot)
	require.NoError(t, err)
	assert.Equal(t, core.GeometryTorusKnot, knot.Geometry)
	assert.Equal(t, []float32{100, 30, 100, 16}, knot.Args)

	for _, s := range cat.Entries() {
		assert.LessOrEqual(t, len(s.Args), len(s.Geometry.ArgNames()), s.Name)
	}
}
