package geometry

import (
	gomath "math"

	"github.com/rtrace/go-ray-forest/pkg/material"
	"github.com/rtrace/go-ray-forest/pkg/math"
)

const epsilon = 1e-9

// Sphere is the unit sphere at the origin of its local space, positioned and
// scaled in the scene by its placement transform.
type Sphere struct {
	id           int
	name         string
	transform    math.Mat4
	invTransform math.Mat4
	invTranspose math.Mat4
	mat          material.Material
}

// NewSphere creates a unit sphere with the given material.
func NewSphere(mat material.Material) *Sphere {
	return NewNamedSphere("sphere", mat)
}

// NewNamedSphere creates a unit sphere with a name for UI lookups.
func NewNamedSphere(name string, mat material.Material) *Sphere {
	return &Sphere{
		name:         name,
		transform:    math.Identity(),
		invTransform: math.Identity(),
		invTranspose: math.Identity(),
		mat:          mat,
	}
}

// ID returns the sphere's scene id.
func (s *Sphere) ID() int { return s.id }

// SetID sets the sphere's scene id.
func (s *Sphere) SetID(id int) { s.id = id }

// Name returns the sphere's name.
func (s *Sphere) Name() string { return s.name }

// Material returns the sphere's material handle.
func (s *Sphere) Material() material.Material { return s.mat }

// SetTransform sets the placement transform and caches its inverse.
func (s *Sphere) SetTransform(m math.Mat4) {
	s.transform = m
	s.invTransform = m.Inverse()
	s.invTranspose = s.invTransform.Transpose()
}

// Intersect tests the ray against the sphere. The ray is mapped into the
// sphere's local space, tested against the unit sphere, and the hit mapped
// back; the normal goes through the inverse-transpose so it stays
// perpendicular under non-uniform scale.
func (s *Sphere) Intersect(ray math.Ray) (Intersection, bool) {
	local := ray.Transform(s.invTransform)

	l := local.Origin.Vec()
	a := local.Direction.LengthSquared()
	b := 2 * local.Direction.Dot(l)
	c := l.LengthSquared() - 1

	t0, t1, ok := solveQuadratic(a, b, c)
	if !ok {
		return Intersection{}, false
	}
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 < 0 && t1 < 0 {
		return Intersection{}, false
	}

	t := t0
	if t0 < 0 {
		t = t1
	}
	entering := t0 > 0

	localNormal := local.At(t).Vec()
	normal := s.invTranspose.MulVec(localNormal).Normalize()
	if !entering {
		normal = normal.Negate()
	}

	return Intersection{
		ShapeID:  s.id,
		T:        t,
		Point:    ray.At(t),
		EyeDir:   ray.Direction.Normalize().Negate(),
		Normal:   normal,
		Entering: entering,
		Material: s.mat,
		U:        sphereU(normal),
		V:        sphereV(normal),
	}, true
}

// sphereU and sphereV map a unit normal to spherical texture coordinates.
func sphereU(n math.Vec3) float64 {
	return (1 + gomath.Atan2(n.Z, n.X)/gomath.Pi) * 0.5
}

func sphereV(n math.Vec3) float64 {
	return gomath.Acos(gomath.Max(-1, gomath.Min(1, n.Y))) / gomath.Pi
}

// solveQuadratic returns the real roots of ax²+bx+c=0 using the numerically
// stable form that avoids subtracting nearly equal quantities.
func solveQuadratic(a, b, c float64) (float64, float64, bool) {
	discr := b*b - 4*a*c
	if discr < 0 {
		return 0, 0, false
	}
	if gomath.Abs(discr) < epsilon {
		x := -0.5 * b / a
		return x, x, true
	}

	var q float64
	if b > 0 {
		q = -0.5 * (b + gomath.Sqrt(discr))
	} else {
		q = -0.5 * (b - gomath.Sqrt(discr))
	}
	return q / a, c / q, true
}
