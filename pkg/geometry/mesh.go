package geometry

import (
	"github.com/rtrace/go-ray-forest/pkg/material"
	"github.com/rtrace/go-ray-forest/pkg/math"
)

// Mesh is a composite shape built from triangles that all share one material
// handle, so a single material edit updates every face. The triangles live
// in the mesh's local space and are searched with the same nearest-hit scan
// a scene uses; the mesh presents itself to the scene as one shape with one
// id.
type Mesh struct {
	id           int
	name         string
	transform    math.Mat4
	invTransform math.Mat4
	invTranspose math.Mat4
	mat          material.Material
	faces        Group
}

// NewMesh creates a mesh from indexed triangle vertices. Every three indices
// form one face. Faces all share the given material.
func NewMesh(name string, vertices []math.Point3, indices []int, mat material.Material) *Mesh {
	m := &Mesh{
		name:         name,
		transform:    math.Identity(),
		invTransform: math.Identity(),
		invTranspose: math.Identity(),
		mat:          mat,
	}
	for i := 0; i+2 < len(indices); i += 3 {
		m.faces.Add(NewTriangle(vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]], mat))
	}
	return m
}

// ID returns the mesh's scene id.
func (m *Mesh) ID() int { return m.id }

// SetID sets the mesh's scene id.
func (m *Mesh) SetID(id int) { m.id = id }

// Name returns the mesh's name.
func (m *Mesh) Name() string { return m.name }

// Material returns the shared material handle.
func (m *Mesh) Material() material.Material { return m.mat }

// FaceCount returns the number of triangles in the mesh.
func (m *Mesh) FaceCount() int { return m.faces.Len() }

// SetTransform sets the placement transform and caches its inverse.
func (m *Mesh) SetTransform(mat4 math.Mat4) {
	m.transform = mat4
	m.invTransform = mat4.Inverse()
	m.invTranspose = m.invTransform.Transpose()
}

// Intersect maps the ray into mesh space, finds the nearest face hit, and
// maps the result back. The hit reports the mesh's id, not the face's, so
// cached pixels invalidate against the composite as a whole.
func (m *Mesh) Intersect(ray math.Ray) (Intersection, bool) {
	local := ray.Transform(m.invTransform)

	hit, ok := m.faces.Intersect(local)
	if !ok {
		return Intersection{}, false
	}

	hit.ShapeID = m.id
	hit.Point = ray.At(hit.T)
	hit.EyeDir = ray.Direction.Normalize().Negate()
	hit.Normal = m.invTranspose.MulVec(hit.Normal).Normalize()
	return hit, true
}
