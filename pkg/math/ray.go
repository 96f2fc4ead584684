package math

// Ray represents a ray with an origin and direction. The direction is not
// required to be unit length; callers normalize where the shading math
// depends on it.
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform applies m to the ray, mapping the origin as a point and the
// direction as a vector. The direction is deliberately not re-normalized so
// that t parameters measured on the transformed ray carry back to the
// original ray unchanged.
func (r Ray) Transform(m Mat4) Ray {
	return Ray{
		Origin:    m.MulPoint(r.Origin),
		Direction: m.MulVec(r.Direction),
	}
}
