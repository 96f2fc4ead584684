package geometry

import (
	"github.com/rtrace/go-ray-forest/pkg/material"
	"github.com/rtrace/go-ray-forest/pkg/math"
)

// NewCube creates the unit cube centered at the origin, decomposed into 12
// triangles (two per face) that share the given material.
func NewCube(mat material.Material) *Mesh {
	return NewNamedCube("cube", mat)
}

// NewNamedCube creates a unit cube with a name for UI lookups.
func NewNamedCube(name string, mat material.Material) *Mesh {
	// The 8 corners of the unit cube.
	vertices := []math.Point3{
		math.NewPoint3(-0.5, -0.5, -0.5), // 0
		math.NewPoint3(0.5, -0.5, -0.5),  // 1
		math.NewPoint3(0.5, 0.5, -0.5),   // 2
		math.NewPoint3(-0.5, 0.5, -0.5),  // 3
		math.NewPoint3(-0.5, -0.5, 0.5),  // 4
		math.NewPoint3(0.5, -0.5, 0.5),   // 5
		math.NewPoint3(0.5, 0.5, 0.5),    // 6
		math.NewPoint3(-0.5, 0.5, 0.5),   // 7
	}

	// Two triangles per face, wound counter-clockwise seen from outside so
	// each face normal points out of the cube.
	indices := []int{
		0, 2, 1, 0, 3, 2, // -Z
		4, 5, 6, 4, 6, 7, // +Z
		0, 4, 7, 0, 7, 3, // -X
		1, 2, 6, 1, 6, 5, // +X
		0, 1, 5, 0, 5, 4, // -Y
		3, 7, 6, 3, 6, 2, // +Y
	}

	return NewMesh(name, vertices, indices, mat)
}
