// Package scene assembles shapes and lights into a renderable world.
package scene

import (
	"github.com/rtrace/go-ray-forest/pkg/geometry"
	"github.com/rtrace/go-ray-forest/pkg/lights"
	"github.com/rtrace/go-ray-forest/pkg/math"
)

// Scene is the world a camera renders: a set of shapes, a set of
// lights, and a global ambient term. Shape ids are assigned by
// insertion order and are stable for the lifetime of the scene, which
// lets cached ray trees refer to shapes by id across re-renders.
type Scene struct {
	ambient math.Color
	shapes  geometry.Group
	lights  []lights.Light
}

func New() *Scene {
	return &Scene{ambient: math.Black}
}

// AddShape registers a shape and assigns it the next id.
func (s *Scene) AddShape(shape geometry.Shape) {
	shape.SetID(s.shapes.Len())
	s.shapes.Add(shape)
}

func (s *Scene) AddLight(l lights.Light) {
	s.lights = append(s.lights, l)
}

func (s *Scene) SetAmbient(c math.Color) {
	s.ambient = c
}

func (s *Scene) Ambient() math.Color {
	return s.ambient
}

func (s *Scene) Lights() []lights.Light {
	return s.lights
}

func (s *Scene) Shapes() []geometry.Shape {
	return s.shapes.Shapes()
}

// FindShape looks a shape up by name. Names are not required to be
// unique; the first match by insertion order wins.
func (s *Scene) FindShape(name string) (geometry.Shape, bool) {
	for _, sh := range s.shapes.Shapes() {
		if sh.Name() == name {
			return sh, true
		}
	}
	return nil, false
}

// Intersect returns the nearest hit across all shapes in the scene.
func (s *Scene) Intersect(ray math.Ray) (geometry.Intersection, bool) {
	return s.shapes.Intersect(ray)
}
