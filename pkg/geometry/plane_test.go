package geometry

import (
	gomath "math"
	"testing"

	"github.com/rtrace/go-ray-forest/pkg/math"
)

func TestPlane_Intersection(t *testing.T) {
	plane := NewPlane(math.NewPoint3(0, -2, 0), math.NewVec3(0, 1, 0), testMaterial())

	ray := math.NewRay(math.NewPoint3(0, 0, 0), math.NewVec3(0, -1, 0))
	hit, ok := plane.Intersect(ray)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if gomath.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected t=2, got %v", hit.T)
	}
	if hit.Normal.Subtract(math.NewVec3(0, 1, 0)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,1,0), got %v", hit.Normal)
	}
	if !hit.Entering {
		t.Error("Expected entering hit")
	}
}

func TestPlane_BackFacingRayMisses(t *testing.T) {
	plane := NewPlane(math.NewPoint3(0, -2, 0), math.NewVec3(0, 1, 0), testMaterial())

	// Moving with the normal, i.e. approaching the plane from behind.
	ray := math.NewRay(math.NewPoint3(0, -4, 0), math.NewVec3(0, 1, 0))
	if _, ok := plane.Intersect(ray); ok {
		t.Error("Expected back-facing ray to miss")
	}
}

func TestPlane_ParallelRayMisses(t *testing.T) {
	plane := NewPlane(math.NewPoint3(0, -2, 0), math.NewVec3(0, 1, 0), testMaterial())

	ray := math.NewRay(math.NewPoint3(0, 0, 0), math.NewVec3(1, 0, 0))
	if _, ok := plane.Intersect(ray); ok {
		t.Error("Expected parallel ray to miss")
	}
}

func TestPlane_TextureBasis(t *testing.T) {
	tests := []struct {
		name   string
		normal math.Vec3
	}{
		{"Y up", math.NewVec3(0, 1, 0)},
		{"Z facing", math.NewVec3(0, 0, -1)},
		{"colinear with the default helper axis", math.NewVec3(1, 0, 0)},
		{"oblique", math.NewVec3(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plane := NewPlane(math.NewPoint3(0, 0, 0), tt.normal, testMaterial())
			n := tt.normal.Normalize()

			if gomath.Abs(plane.u.Dot(n)) > 1e-9 {
				t.Errorf("u axis not in plane: u·n = %v", plane.u.Dot(n))
			}
			if gomath.Abs(plane.v.Dot(n)) > 1e-9 {
				t.Errorf("v axis not in plane: v·n = %v", plane.v.Dot(n))
			}
			if gomath.Abs(plane.u.Dot(plane.v)) > 1e-9 {
				t.Errorf("u and v not orthogonal: u·v = %v", plane.u.Dot(plane.v))
			}
			if gomath.Abs(plane.u.Length()-1) > 1e-9 || gomath.Abs(plane.v.Length()-1) > 1e-9 {
				t.Error("texture axes are not unit length")
			}
		})
	}
}
