package geometry

import (
	"github.com/rtrace/go-ray-forest/pkg/material"
	"github.com/rtrace/go-ray-forest/pkg/math"
)

// Intersection describes where a ray met a shape. Every field is a copy;
// nothing here points back into scene geometry, so an Intersection stored in
// a cache stays valid while materials are edited underneath it.
type Intersection struct {
	ShapeID  int               // Stable id of the shape that was hit
	T        float64           // Ray parameter at the hit
	Point    math.Point3       // World-space hit point
	EyeDir   math.Vec3         // Unit direction from the hit back toward the ray origin
	Normal   math.Vec3         // World-space surface normal at the hit
	Entering bool              // Whether the ray is passing into the surface
	Material material.Material // Material at the hit (shared handle)
	U, V     float64           // Texture coordinates
}

// Shape is anything that exists as a renderable entity in a scene. Shapes
// carry a stable integer id, assigned in insertion order by the scene, which
// the ray forest uses to map material edits back to cached pixels.
type Shape interface {
	ID() int
	SetID(id int)

	// Name identifies the shape for UI listings and lookups.
	Name() string

	// SetTransform positions and scales the shape in the scene. The inverse
	// is computed eagerly; a non-invertible transform panics here rather
	// than poisoning every later intersection test.
	SetTransform(m math.Mat4)

	// Material returns the shape's material handle, shared or otherwise.
	Material() material.Material

	// Intersect tests the ray against the shape and reports the nearest hit.
	Intersect(ray math.Ray) (Intersection, bool)
}

// Group is an ordered collection of shapes searched by linear scan. The scan
// keeps the first shape to report the minimum t, which makes the tie-break
// policy insertion order.
type Group struct {
	shapes []Shape
}

// Add appends a shape to the group.
func (g *Group) Add(s Shape) {
	g.shapes = append(g.shapes, s)
}

// Shapes returns the shapes in insertion order.
func (g *Group) Shapes() []Shape {
	return g.shapes
}

// Len returns the number of shapes in the group.
func (g *Group) Len() int {
	return len(g.shapes)
}

// Intersect returns the nearest hit among all shapes in the group.
func (g *Group) Intersect(ray math.Ray) (Intersection, bool) {
	var nearest Intersection
	found := false
	for _, s := range g.shapes {
		hit, ok := s.Intersect(ray)
		if !ok {
			continue
		}
		if !found || hit.T < nearest.T {
			nearest = hit
			found = true
		}
	}
	return nearest, found
}
