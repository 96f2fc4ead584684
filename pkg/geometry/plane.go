package geometry

import (
	gomath "math"

	"github.com/rtrace/go-ray-forest/pkg/material"
	"github.com/rtrace/go-ray-forest/pkg/math"
)

// Plane is an infinite plane through an origin point with a unit normal.
// Rays approaching from behind the normal never hit.
type Plane struct {
	id           int
	name         string
	origin       math.Point3
	normal       math.Vec3
	transform    math.Mat4
	invTransform math.Mat4
	invTranspose math.Mat4
	mat          material.Material

	// Orthonormal in-plane axes for texture coordinates.
	u math.Vec3
	v math.Vec3
}

// NewPlane creates a plane through origin with the given normal.
func NewPlane(origin math.Point3, normal math.Vec3, mat material.Material) *Plane {
	return NewNamedPlane("plane", origin, normal, mat)
}

// NewNamedPlane creates a plane with a name for UI lookups.
func NewNamedPlane(name string, origin math.Point3, normal math.Vec3, mat material.Material) *Plane {
	n := normal.Normalize()

	// Build the texture basis from any axis not colinear with the normal.
	helper := math.NewVec3(1, 0, 0)
	if gomath.Abs(n.Dot(helper)) > 1-epsilon {
		helper = math.NewVec3(0, 1, 0)
	}
	u := helper.Cross(n).Normalize()
	v := n.Cross(u)

	return &Plane{
		name:         name,
		origin:       origin,
		normal:       n,
		transform:    math.Identity(),
		invTransform: math.Identity(),
		invTranspose: math.Identity(),
		mat:          mat,
		u:            u,
		v:            v,
	}
}

// ID returns the plane's scene id.
func (p *Plane) ID() int { return p.id }

// SetID sets the plane's scene id.
func (p *Plane) SetID(id int) { p.id = id }

// Name returns the plane's name.
func (p *Plane) Name() string { return p.name }

// Material returns the plane's material handle.
func (p *Plane) Material() material.Material { return p.mat }

// SetTransform sets the placement transform and caches its inverse.
func (p *Plane) SetTransform(m math.Mat4) {
	p.transform = m
	p.invTransform = m.Inverse()
	p.invTranspose = p.invTransform.Transpose()
}

// Intersect tests the ray against the plane. Back-facing rays are rejected
// by the denominator test, so a plane is one-sided.
func (p *Plane) Intersect(ray math.Ray) (Intersection, bool) {
	local := ray.Transform(p.invTransform)

	denom := -p.normal.Dot(local.Direction)
	if denom <= epsilon {
		// Parallel to or facing away from the plane.
		return Intersection{}, false
	}

	dir := p.origin.Subtract(local.Origin)
	t := -dir.Dot(p.normal) / denom

	point := ray.At(t)
	return Intersection{
		ShapeID:  p.id,
		T:        t,
		Point:    point,
		EyeDir:   ray.Direction.Normalize().Negate(),
		Normal:   p.invTranspose.MulVec(p.normal).Normalize(),
		Entering: t >= 0,
		Material: p.mat,
		U:        p.u.Dot(point.Vec()),
		V:        p.v.Dot(point.Vec()),
	}, true
}
