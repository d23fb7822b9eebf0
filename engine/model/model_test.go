package model

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestGPUTypeSizes(t *testing.T) {
	if got := (&GPUVertex{}).Size(); got != 20 {
		t.Errorf("GPUVertex size: got %d, want 20", got)
	}
	if got := (&GPULitVertex{}).Size(); got != 56 {
		t.Errorf("GPULitVertex size: got %d, want 56", got)
	}
	if got := (&GPUInstance{}).Size(); got != 64 {
		t.Errorf("GPUInstance size: got %d, want 64", got)
	}
	if got := (&GPULitInstance{}).Size(); got != 100 {
		t.Errorf("GPULitInstance size: got %d, want 100", got)
	}
}

func TestGPUVertexMarshalLayout(t *testing.T) {
	v := GPUVertex{
		Position:  [3]float32{1, 2, 3},
		TexCoords: [2]float32{0.5, 0.25},
	}
	buf := v.Marshal()
	if len(buf) != 20 {
		t.Fatalf("got %d bytes, want 20", len(buf))
	}

	want := []float32{1, 2, 3, 0.5, 0.25}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Errorf("float %d: got %f, want %f", i, got, w)
		}
	}
}

func TestGPULitVertexMarshalLayout(t *testing.T) {
	v := GPULitVertex{
		Position:  [3]float32{1, 2, 3},
		TexCoords: [2]float32{4, 5},
		Normal:    [3]float32{6, 7, 8},
		Tangent:   [3]float32{9, 10, 11},
		Bitangent: [3]float32{12, 13, 14},
	}
	buf := v.Marshal()
	if len(buf) != 56 {
		t.Fatalf("got %d bytes, want 56", len(buf))
	}

	// Fields are packed in attribute offset order with no padding.
	for i := 0; i < 14; i++ {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != float32(i+1) {
			t.Errorf("float %d: got %f, want %d", i, got, i+1)
		}
	}
}

func TestInstanceRawRoundTrip(t *testing.T) {
	in := NewInstance(2, 4, 6)
	in.Rotation = [3]float32{0.3, 1.2, -0.5}
	in.Scale = [3]float32{2, 1, 0.5}

	m := in.ModelMatrix()
	g := in.Raw()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if g.ModelCols[c][r] != m[c*4+r] {
				t.Fatalf("col %d row %d: got %f, want %f", c, r, g.ModelCols[c][r], m[c*4+r])
			}
		}
	}
}

func TestInstanceRawLitNormalMatrix(t *testing.T) {
	in := NewInstance(0, 0, 0)
	in.Scale = [3]float32{2, 1, 1}

	g := in.RawLit()

	// Inverse-transpose of diag(2,1,1) is diag(0.5,1,1).
	if g.NormalCols[0][0] != 0.5 {
		t.Errorf("normal col0: got %f, want 0.5", g.NormalCols[0][0])
	}
	if g.NormalCols[1][1] != 1 || g.NormalCols[2][2] != 1 {
		t.Error("unscaled axes should stay unit in the normal matrix")
	}
}

func TestInstanceRawLitSingularFallback(t *testing.T) {
	in := NewInstance(0, 0, 0)
	in.Scale = [3]float32{0, 1, 1}

	g := in.RawLit()

	// Singular upper 3x3 falls back to the model block itself.
	if g.NormalCols[0] != [3]float32{0, 0, 0} {
		t.Errorf("got %v, want zero column from the model block", g.NormalCols[0])
	}
	if g.NormalCols[1][1] != 1 {
		t.Errorf("got %f, want 1 from the model block", g.NormalCols[1][1])
	}
}

func TestInstanceMarshalStrides(t *testing.T) {
	in := NewInstance(1, 2, 3)

	basic := in.Raw()
	if got := len(basic.Marshal()); got != 64 {
		t.Errorf("basic instance bytes: got %d, want 64", got)
	}

	lit := in.RawLit()
	if got := len(lit.Marshal()); got != 100 {
		t.Errorf("lit instance bytes: got %d, want 100", got)
	}
}

func TestMeshVariants(t *testing.T) {
	basic := NewMesh("tri", []GPUVertex{{}, {}, {}}, []uint32{0, 1, 2})
	if basic.Vertices() == nil || basic.LitVertices() != nil {
		t.Error("basic mesh should expose basic vertices only")
	}
	if basic.IndexCount() != 3 {
		t.Errorf("index count: got %d, want 3", basic.IndexCount())
	}
	if got := len(basic.MarshalVertices()); got != 60 {
		t.Errorf("basic vertex bytes: got %d, want 60", got)
	}

	lit := NewLitMesh("tri", []GPULitVertex{{}, {}, {}}, []uint32{0, 1, 2})
	if lit.LitVertices() == nil || lit.Vertices() != nil {
		t.Error("lit mesh should expose lit vertices only")
	}
	if got := len(lit.MarshalVertices()); got != 168 {
		t.Errorf("lit vertex bytes: got %d, want 168", got)
	}
}

func TestMeshMarshalIndices(t *testing.T) {
	m := NewMesh("quad", []GPUVertex{{}, {}, {}, {}}, []uint32{0, 1, 2, 0x01020304})
	buf := m.MarshalIndices()
	if len(buf) != 16 {
		t.Fatalf("got %d bytes, want 16", len(buf))
	}
	if got := binary.LittleEndian.Uint32(buf[12:]); got != 0x01020304 {
		t.Errorf("index 3: got %#x, want 0x01020304", got)
	}
}

func TestLayoutLocationsMatchConstants(t *testing.T) {
	lit := LitVertexLayout()
	wantLocs := []uint32{LocationPosition, LocationTexCoords, LocationNormal, LocationTangent, LocationBitangent}
	for i, attr := range lit.Attributes {
		if attr.ShaderLocation != wantLocs[i] {
			t.Errorf("attribute %d: got location %d, want %d", i, attr.ShaderLocation, wantLocs[i])
		}
	}

	inst := LitInstanceLayout()
	if inst.ArrayStride != 100 {
		t.Errorf("lit instance stride: got %d, want 100", inst.ArrayStride)
	}
	if inst.Attributes[0].ShaderLocation != LocationModelCol0 {
		t.Errorf("first instance location: got %d, want %d", inst.Attributes[0].ShaderLocation, LocationModelCol0)
	}
	if last := inst.Attributes[len(inst.Attributes)-1]; last.ShaderLocation != LocationNormalCol0+2 {
		t.Errorf("last instance location: got %d, want %d", last.ShaderLocation, LocationNormalCol0+2)
	}
}
