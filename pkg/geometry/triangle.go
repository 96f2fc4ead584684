package geometry

import (
	gomath "math"

	"github.com/rtrace/go-ray-forest/pkg/material"
	"github.com/rtrace/go-ray-forest/pkg/math"
)

// Triangle is a single triangle defined by three vertices in local space,
// intersected with the Möller-Trumbore algorithm.
type Triangle struct {
	id           int
	name         string
	v0, v1, v2   math.Point3
	normal       math.Vec3 // Cached face normal in local space
	transform    math.Mat4
	invTransform math.Mat4
	invTranspose math.Mat4
	mat          material.Material
}

// NewTriangle creates a triangle from three vertices. The face normal
// follows the right-hand rule over the vertex winding.
func NewTriangle(v0, v1, v2 math.Point3, mat material.Material) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	return &Triangle{
		name:         "triangle",
		v0:           v0,
		v1:           v1,
		v2:           v2,
		normal:       edge1.Cross(edge2).Normalize(),
		transform:    math.Identity(),
		invTransform: math.Identity(),
		invTranspose: math.Identity(),
		mat:          mat,
	}
}

// ID returns the triangle's scene id.
func (t *Triangle) ID() int { return t.id }

// SetID sets the triangle's scene id.
func (t *Triangle) SetID(id int) { t.id = id }

// Name returns the triangle's name.
func (t *Triangle) Name() string { return t.name }

// Material returns the triangle's material handle.
func (t *Triangle) Material() material.Material { return t.mat }

// SetTransform sets the placement transform and caches its inverse.
func (t *Triangle) SetTransform(m math.Mat4) {
	t.transform = m
	t.invTransform = m.Inverse()
	t.invTranspose = t.invTransform.Transpose()
}

// Intersect tests the ray against the triangle. Near-parallel rays and hits
// outside the barycentric range are rejected; the determinant's sign reports
// which side of the face the ray arrived from.
func (t *Triangle) Intersect(ray math.Ray) (Intersection, bool) {
	local := ray.Transform(t.invTransform)

	edge1 := t.v1.Subtract(t.v0)
	edge2 := t.v2.Subtract(t.v0)

	pvec := local.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if gomath.Abs(det) < epsilon {
		return Intersection{}, false
	}
	invDet := 1 / det

	tvec := local.Origin.Subtract(t.v0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return Intersection{}, false
	}

	qvec := tvec.Cross(edge1)
	v := local.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return Intersection{}, false
	}

	tParam := edge2.Dot(qvec) * invDet
	if tParam < 0 {
		return Intersection{}, false
	}

	return Intersection{
		ShapeID:  t.id,
		T:        tParam,
		Point:    ray.At(tParam),
		EyeDir:   ray.Direction.Normalize().Negate(),
		Normal:   t.invTranspose.MulVec(t.normal).Normalize(),
		Entering: det > 0,
		Material: t.mat,
		U:        u,
		V:        v,
	}, true
}
