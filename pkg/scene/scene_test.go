package scene

import (
	"testing"

	"github.com/rtrace/go-ray-forest/pkg/geometry"
	"github.com/rtrace/go-ray-forest/pkg/material"
	"github.com/rtrace/go-ray-forest/pkg/math"
)

func inertMaterial() material.Material {
	return material.NewPhong(math.Black, math.White, math.White, 60, 0, 0)
}

func TestScene_AddShapeAssignsIDs(t *testing.T) {
	s := New()
	a := geometry.NewNamedSphere("a", inertMaterial())
	b := geometry.NewNamedSphere("b", inertMaterial())
	c := geometry.NewNamedSphere("c", inertMaterial())

	s.AddShape(a)
	s.AddShape(b)
	s.AddShape(c)

	for i, sh := range s.Shapes() {
		if sh.ID() != i {
			t.Errorf("shape %d: id = %d, want %d", i, sh.ID(), i)
		}
	}
}

func TestScene_FindShape(t *testing.T) {
	s := New()
	s.AddShape(geometry.NewNamedSphere("left", inertMaterial()))
	s.AddShape(geometry.NewNamedSphere("right", inertMaterial()))

	sh, ok := s.FindShape("right")
	if !ok {
		t.Fatal("FindShape(right) not found")
	}
	if sh.ID() != 1 {
		t.Errorf("id = %d, want 1", sh.ID())
	}

	if _, ok := s.FindShape("missing"); ok {
		t.Error("FindShape(missing) found a shape")
	}
}

func TestScene_IntersectNearest(t *testing.T) {
	s := New()

	far := geometry.NewNamedSphere("far", inertMaterial())
	far.SetTransform(math.Translate(0, 0, 5))
	s.AddShape(far)

	near := geometry.NewNamedSphere("near", inertMaterial())
	s.AddShape(near)

	ray := math.Ray{
		Origin:    math.Point3{X: 0, Y: 0, Z: -4},
		Direction: math.Vec3{X: 0, Y: 0, Z: 1},
	}
	hit, ok := s.Intersect(ray)
	if !ok {
		t.Fatal("no intersection")
	}
	if hit.ShapeID != near.ID() {
		t.Errorf("hit shape %d, want %d", hit.ShapeID, near.ID())
	}
	if hit.T != 3 {
		t.Errorf("t = %v, want 3", hit.T)
	}
}

func TestDefault(t *testing.T) {
	s := Default()

	if got := len(s.Shapes()); got != 6 {
		t.Errorf("shapes = %d, want 6", got)
	}
	if got := len(s.Lights()); got != 3 {
		t.Errorf("lights = %d, want 3", got)
	}
	if s.Ambient() != (math.Color{R: 0.1, G: 0.1, B: 0.1}) {
		t.Errorf("ambient = %v", s.Ambient())
	}

	blue, ok := s.FindShape("blue")
	if !ok {
		t.Fatal("blue sphere missing")
	}
	if blue.ID() != 1 {
		t.Errorf("blue id = %d, want 1", blue.ID())
	}

	// A ray straight at the blue sphere's center must hit it.
	ray := math.Ray{
		Origin:    math.Point3{X: 1, Y: -1, Z: -8},
		Direction: math.Vec3{X: 0, Y: 0, Z: 1},
	}
	hit, ok := s.Intersect(ray)
	if !ok {
		t.Fatal("no intersection with default scene")
	}
	if hit.ShapeID != blue.ID() {
		t.Errorf("hit shape %d, want %d", hit.ShapeID, blue.ID())
	}
}
