package loaders

import (
	"encoding/binary"
	gomath "math"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/rtrace/go-ray-forest/pkg/math"
)

// triangleDoc builds an in-memory document holding one triangle with
// float32 positions and uint16 indices in a single embedded buffer.
func triangleDoc(t *testing.T) *gltf.Document {
	t.Helper()

	positions := []float32{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
	}
	data := make([]byte, 0, len(positions)*4+6)
	for _, f := range positions {
		data = binary.LittleEndian.AppendUint32(data, gomath.Float32bits(f))
	}
	posLen := len(data)
	for _, i := range []uint16{0, 1, 2} {
		data = binary.LittleEndian.AppendUint16(data, i)
	}

	posView := 0
	idxView := 1
	return &gltf.Document{
		Buffers: []*gltf.Buffer{
			{ByteLength: len(data), Data: data},
		},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: posLen},
			{Buffer: 0, ByteOffset: posLen, ByteLength: 6},
		},
		Accessors: []*gltf.Accessor{
			{
				BufferView:    &posView,
				ComponentType: gltf.ComponentFloat,
				Type:          gltf.AccessorVec3,
				Count:         3,
			},
			{
				BufferView:    &idxView,
				ComponentType: gltf.ComponentUshort,
				Type:          gltf.AccessorScalar,
				Count:         3,
			},
		},
	}
}

func TestReadPositions(t *testing.T) {
	doc := triangleDoc(t)

	got, err := readPositions(doc, 0)
	if err != nil {
		t.Fatalf("readPositions: %v", err)
	}

	want := []math.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadIndices(t *testing.T) {
	doc := triangleDoc(t)

	got, err := readIndices(doc, 1)
	if err != nil {
		t.Fatalf("readIndices: %v", err)
	}
	want := []int{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestReadIndices_RejectsVecAccessor(t *testing.T) {
	doc := triangleDoc(t)
	if _, err := readIndices(doc, 0); err == nil {
		t.Error("expected error for VEC3 index accessor")
	}
}

func TestAccessorBytes_Overrun(t *testing.T) {
	doc := triangleDoc(t)
	doc.Accessors[0].Count = 100
	if _, _, err := accessorBytes(doc, doc.Accessors[0], 12); err == nil {
		t.Error("expected overrun error")
	}
}
