package geometry

import (
	gomath "math"
	"testing"

	"github.com/rtrace/go-ray-forest/pkg/material"
	"github.com/rtrace/go-ray-forest/pkg/math"
)

func testMaterial() material.Material {
	return material.NewPhong(math.White, math.White, math.White, 60, 1, 0)
}

func TestSphere_IntersectionNoTransform(t *testing.T) {
	sph := NewSphere(testMaterial())

	ray := math.NewRay(math.NewPoint3(0, 0, 2), math.NewVec3(0, 0, -1))
	hit, ok := sph.Intersect(ray)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if gomath.Abs(hit.T-1) > 1e-9 {
		t.Errorf("Expected t=1, got %v", hit.T)
	}
	if !hit.Entering {
		t.Error("Expected entering hit")
	}
	if hit.Normal.Subtract(math.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
	if hit.Point.Subtract(math.NewPoint3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected point (0,0,1), got %v", hit.Point)
	}

	miss := math.NewRay(math.NewPoint3(0, 0, 2), math.NewVec3(0, 1, 0))
	if _, ok := sph.Intersect(miss); ok {
		t.Error("Expected a miss")
	}

	edge := math.NewRay(math.NewPoint3(0, 1, 2), math.NewVec3(0, 0, -1))
	hit, ok = sph.Intersect(edge)
	if !ok {
		t.Fatal("Expected a tangent hit")
	}
	if gomath.Abs(hit.T-2) > 1e-6 {
		t.Errorf("Expected t=2, got %v", hit.T)
	}
}

func TestSphere_IntersectionTransform(t *testing.T) {
	sph := NewSphere(testMaterial())
	sph.SetTransform(math.Translate(0, 2, -2).Mul(math.Scale(2, 2, 2)))

	ray := math.NewRay(math.NewPoint3(0, 0, 2), math.NewVec3(0, 0, -1))
	hit, ok := sph.Intersect(ray)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if gomath.Abs(hit.T-4) > 1e-6 {
		t.Errorf("Expected t=4, got %v", hit.T)
	}

	miss := math.NewRay(math.NewPoint3(0, 0, 2), math.NewVec3(0, 1, 0))
	if _, ok := sph.Intersect(miss); ok {
		t.Error("Expected a miss")
	}

	edge := math.NewRay(math.NewPoint3(0, 2, 2), math.NewVec3(0, 0, -1))
	hit, ok = sph.Intersect(edge)
	if !ok {
		t.Fatal("Expected a hit through the scaled center")
	}
	if gomath.Abs(hit.T-2) > 1e-6 {
		t.Errorf("Expected t=2, got %v", hit.T)
	}
}

func TestSphere_RayFromInside(t *testing.T) {
	sph := NewSphere(testMaterial())

	ray := math.NewRay(math.NewPoint3(0, 0, 0), math.NewVec3(0, 0, -1))
	hit, ok := sph.Intersect(ray)
	if !ok {
		t.Fatal("Expected a hit from inside the sphere")
	}
	if hit.Entering {
		t.Error("Expected exiting hit from inside")
	}
	if gomath.Abs(hit.T-1) > 1e-9 {
		t.Errorf("Expected t=1, got %v", hit.T)
	}
	// The normal is flipped to face the ray origin.
	if hit.Normal.Subtract(math.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected inward-facing normal (0,0,1), got %v", hit.Normal)
	}
}

func TestSphere_NonUniformScaleNormal(t *testing.T) {
	sph := NewSphere(testMaterial())
	sph.SetTransform(math.Scale(1, 2, 1))

	// Hit the flank of the stretched sphere; the normal must stay
	// perpendicular to the surface, which only the inverse-transpose gives.
	ray := math.NewRay(math.NewPoint3(2, 0, 0), math.NewVec3(-1, 0, 0))
	hit, ok := sph.Intersect(ray)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.Normal.Subtract(math.NewVec3(1, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected normal (1,0,0), got %v", hit.Normal)
	}
}

func BenchmarkSphere_Intersect(b *testing.B) {
	sph := NewSphere(testMaterial())
	ray := math.NewRay(math.NewPoint3(0, 0, 2), math.NewVec3(0, 0, -1))

	for b.Loop() {
		sph.Intersect(ray)
	}
}
