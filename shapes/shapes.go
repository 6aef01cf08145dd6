package shapes

import "github.com/gekko3d/gallery/core"

const (
	Cube      = "Cube"
	Sphere    = "Sphere"
	Cylinder  = "Cylinder"
	TorusKnot = "Torus Knot"
)

// Builtin returns the gallery's shapes in menu order. The first entry is the
// shape shown at startup.
func Builtin() []*core.ShapeDefinition {
	return []*core.ShapeDefinition{
		{Name: Cube, Geometry: core.GeometryBox, Args: []float32{200, 200, 200, 50, 50, 50}},
		{Name: Sphere, Geometry: core.GeometrySphere, Args: []float32{150, 32, 32}},
		{Name: Cylinder, Geometry: core.GeometryCylinder, Args: []float32{100, 100, 200, 32, 100}},
		{Name: TorusKnot, Geometry: core.GeometryTorusKnot, Args: []float32{100, 30, 100, 16}},
	}
}

func Catalog() (*core.ShapeCatalog, error) {
	return core.NewShapeCatalog(Builtin()...)
}
