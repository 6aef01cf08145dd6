package core

import (
	"fmt"
	"strings"
)

type GeometryKind int

const (
	GeometryBox GeometryKind = iota
	GeometrySphere
	GeometryCylinder
	GeometryTorusKnot
	GeometryTorus
	GeometryPlane
	GeometryIcosahedron
)

type geometryInfo struct {
	name string
	args []string
}

// Positional argument names per geometry family, in constructor order.
var geometries = [...]geometryInfo{
	GeometryBox:         {"BoxGeometry", []string{"width", "height", "depth", "widthSegments", "heightSegments", "depthSegments"}},
	GeometrySphere:      {"SphereGeometry", []string{"radius", "widthSegments", "heightSegments"}},
	GeometryCylinder:    {"CylinderGeometry", []string{"radiusTop", "radiusBottom", "height", "radialSegments", "heightSegments"}},
	GeometryTorusKnot:   {"TorusKnotGeometry", []string{"radius", "tube", "tubularSegments", "radialSegments", "p", "q"}},
	GeometryTorus:       {"TorusGeometry", []string{"radius", "tube", "radialSegments", "tubularSegments"}},
	GeometryPlane:       {"PlaneGeometry", []string{"width", "height", "widthSegments", "heightSegments"}},
	GeometryIcosahedron: {"IcosahedronGeometry", []string{"radius", "detail"}},
}

func (k GeometryKind) String() string {
	if k >= 0 && int(k) < len(geometries) {
		return geometries[k].name
	}
	return fmt.Sprintf("GeometryKind(%d)", int(k))
}

// ArgNames returns the meaning of each positional constructor argument.
func (k GeometryKind) ArgNames() []string {
	if k >= 0 && int(k) < len(geometries) {
		return geometries[k].args
	}
	return nil
}

// ParseGeometryKind accepts "BoxGeometry", "box" or "Box" style names.
func ParseGeometryKind(s string) (GeometryKind, error) {
	want := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "geometry")
	want = strings.ReplaceAll(want, " ", "")
	for i, g := range geometries {
		if strings.ToLower(strings.TrimSuffix(g.name, "Geometry")) == want {
			return GeometryKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown geometry %q", s)
}

// ShapeDefinition names a geometry constructor and its positional arguments.
type ShapeDefinition struct {
	Name     string
	Geometry GeometryKind
	Args     []float32
}

func (s *ShapeDefinition) EntryName() string { return s.Name }

// Arg returns argument i, or def when the definition leaves it out.
func (s *ShapeDefinition) Arg(i int, def float32) float32 {
	if i >= 0 && i < len(s.Args) {
		return s.Args[i]
	}
	return def
}

type ShapeParam struct {
	Name  string
	Value float32
}

// Params pairs each supplied argument with its name for display.
func (s *ShapeDefinition) Params() []ShapeParam {
	names := s.Geometry.ArgNames()
	params := make([]ShapeParam, 0, len(s.Args))
	for i, v := range s.Args {
		name := fmt.Sprintf("arg%d", i)
		if i < len(names) {
			name = names[i]
		}
		params = append(params, ShapeParam{Name: name, Value: v})
	}
	return params
}
