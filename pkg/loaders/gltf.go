// Package loaders reads external assets into scene objects.
package loaders

import (
	"fmt"
	gomath "math"

	"github.com/qmuntal/gltf"

	"github.com/rtrace/go-ray-forest/pkg/geometry"
	"github.com/rtrace/go-ray-forest/pkg/material"
	"github.com/rtrace/go-ray-forest/pkg/math"
)

// LoadGLTF reads a glTF or GLB file and flattens every triangle
// primitive in it into a single mesh sharing the given material.
func LoadGLTF(path string, name string, mat material.Material) (*geometry.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var vertices []math.Point3
	var indices []int

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := readPositions(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
			}

			base := len(vertices)
			vertices = append(vertices, positions...)

			if prim.Indices != nil {
				idx, err := readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
				}
				for _, i := range idx {
					indices = append(indices, base+i)
				}
			} else {
				for i := range positions {
					indices = append(indices, base+i)
				}
			}
		}
	}

	if len(indices) == 0 {
		return nil, fmt.Errorf("gltf %q contains no triangles", path)
	}
	return geometry.NewMesh(name, vertices, indices, mat), nil
}

func readPositions(doc *gltf.Document, accessorIdx int) ([]math.Point3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("position accessor is %v/%v, want VEC3/FLOAT", accessor.Type, accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]math.Point3, accessor.Count)
	for i := range result {
		offset := i * stride
		result[i] = math.Point3{
			X: float64(readFloat32(data[offset:])),
			Y: float64(readFloat32(data[offset+4:])),
			Z: float64(readFloat32(data[offset+8:])),
		}
	}
	return result, nil
}

func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("index accessor is %v, want SCALAR", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unsupported index component type %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		offset := i * stride
		switch size {
		case 1:
			result[i] = int(data[offset])
		case 2:
			result[i] = int(uint16(data[offset]) | uint16(data[offset+1])<<8)
		case 4:
			result[i] = int(uint32(data[offset]) |
				uint32(data[offset+1])<<8 |
				uint32(data[offset+2])<<16 |
				uint32(data[offset+3])<<24)
		}
	}
	return result, nil
}

// accessorBytes locates an accessor's raw bytes and its element
// stride. Only buffers embedded in the document are supported.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, defaultStride int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}

	view := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[view.Buffer]
	if buffer.Data == nil {
		return nil, 0, fmt.Errorf("buffer %d has no embedded data", view.Buffer)
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = defaultStride
	}

	start := view.ByteOffset + accessor.ByteOffset
	end := start + (accessor.Count-1)*stride + defaultStride
	if end > len(buffer.Data) {
		return nil, 0, fmt.Errorf("accessor overruns buffer: %d > %d", end, len(buffer.Data))
	}
	return buffer.Data[start:end], stride, nil
}

func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return gomath.Float32frombits(bits)
}
