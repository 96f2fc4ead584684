package geometry

import (
	gomath "math"
	"testing"

	"github.com/rtrace/go-ray-forest/pkg/math"
)

func TestTriangle_Normal(t *testing.T) {
	// CCW winding puts the normal on +Z.
	tri := NewTriangle(
		math.NewPoint3(0, 0, 0),
		math.NewPoint3(1, 0, 0),
		math.NewPoint3(0, 1, 0),
		testMaterial(),
	)
	if tri.normal.Subtract(math.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,1), got %v", tri.normal)
	}

	// CW winding flips it to -Z.
	tri = NewTriangle(
		math.NewPoint3(1, 0, 0),
		math.NewPoint3(0, 0, 0),
		math.NewPoint3(0, 1, 0),
		testMaterial(),
	)
	if tri.normal.Subtract(math.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,-1), got %v", tri.normal)
	}
}

func TestTriangle_Intersection(t *testing.T) {
	tri := NewTriangle(
		math.NewPoint3(2, -2, 0),
		math.NewPoint3(-2, -2, 0),
		math.NewPoint3(-2, 2, 0),
		testMaterial(),
	)

	ray := math.NewRay(math.NewPoint3(0, 0, -4), math.NewVec3(0, 0, 1))
	hit, ok := tri.Intersect(ray)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if gomath.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %v", hit.T)
	}
	if hit.Point.Subtract(math.NewPoint3(0, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected point at the origin, got %v", hit.Point)
	}
	if hit.Normal.Subtract(math.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal)
	}
	if hit.EyeDir.Subtract(math.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected eye direction (0,0,-1), got %v", hit.EyeDir)
	}
	if !hit.Entering {
		t.Error("Expected entering hit")
	}
}

func TestTriangle_BehindRayMisses(t *testing.T) {
	tri := NewTriangle(
		math.NewPoint3(2, -2, 0),
		math.NewPoint3(-2, -2, 0),
		math.NewPoint3(-2, 2, 0),
		testMaterial(),
	)

	ray := math.NewRay(math.NewPoint3(0, 0, -4), math.NewVec3(0, 0, -1))
	if _, ok := tri.Intersect(ray); ok {
		t.Error("Expected triangle behind the ray to miss")
	}
}

func TestTriangle_OutsideBarycentricRangeMisses(t *testing.T) {
	tri := NewTriangle(
		math.NewPoint3(0, 0, 0),
		math.NewPoint3(1, 0, 0),
		math.NewPoint3(0, 1, 0),
		testMaterial(),
	)

	ray := math.NewRay(math.NewPoint3(0.9, 0.9, -1), math.NewVec3(0, 0, 1))
	if _, ok := tri.Intersect(ray); ok {
		t.Error("Expected hit outside the triangle to miss")
	}
}

func TestTriangle_Transformed(t *testing.T) {
	tri := NewTriangle(
		math.NewPoint3(2, -2, 0),
		math.NewPoint3(-2, -2, 0),
		math.NewPoint3(-2, 2, 0),
		testMaterial(),
	)
	tri.SetTransform(math.Translate(0, 0, 2))

	ray := math.NewRay(math.NewPoint3(0, 0, -4), math.NewVec3(0, 0, 1))
	hit, ok := tri.Intersect(ray)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if gomath.Abs(hit.T-6) > 1e-9 {
		t.Errorf("Expected t=6 after translating the triangle, got %v", hit.T)
	}
	if hit.Point.Subtract(math.NewPoint3(0, 0, 2)).Length() > 1e-9 {
		t.Errorf("Expected point (0,0,2), got %v", hit.Point)
	}
}
