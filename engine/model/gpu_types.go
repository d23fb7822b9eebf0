package model

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// Shader attribute locations shared by both pipeline variants. Vertex-rate
// attributes occupy locations 0-4; instance-rate attributes start at 5 so the
// two buffers never collide. These values are part of the wire contract with
// the WGSL vertex shaders and must not be renumbered independently.
const (
	// LocationPosition is the vertex position attribute location.
	LocationPosition = 0
	// LocationTexCoords is the texture coordinate attribute location.
	LocationTexCoords = 1
	// LocationNormal is the vertex normal attribute location (lit variant only).
	LocationNormal = 2
	// LocationTangent is the vertex tangent attribute location (lit variant only).
	LocationTangent = 3
	// LocationBitangent is the vertex bitangent attribute location (lit variant only).
	LocationBitangent = 4
	// LocationModelCol0 is the first of four instance model-matrix column locations (5-8).
	LocationModelCol0 = 5
	// LocationNormalCol0 is the first of three instance normal-matrix column locations (9-11, lit variant only).
	LocationNormalCol0 = 9
)

// GPUVertex is the GPU-aligned representation of a single mesh vertex for the
// basic (unlit) pipeline. Matches the WGSL VertexInput struct layout exactly.
// Size: 20 bytes (tightly packed, no padding required).
type GPUVertex struct {
	Position  [3]float32 // offset  0: vertex position in model space (12 bytes)
	TexCoords [2]float32 // offset 12: UV texture coordinate (8 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 20-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 20)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.TexCoords[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.TexCoords[1]))
	return buf
}

// GPULitVertex is the GPU-aligned representation of a single mesh vertex for
// the lit pipeline. It extends GPUVertex with the tangent-space frame needed
// for normal mapping. Matches the WGSL VertexInput struct layout exactly.
// Size: 56 bytes (tightly packed, no padding required).
type GPULitVertex struct {
	Position  [3]float32 // offset  0: vertex position in model space (12 bytes)
	TexCoords [2]float32 // offset 12: UV texture coordinate (8 bytes)
	Normal    [3]float32 // offset 20: vertex normal in model space (12 bytes)
	Tangent   [3]float32 // offset 32: tangent vector in model space (12 bytes)
	Bitangent [3]float32 // offset 44: bitangent vector in model space (12 bytes)
}

// Size returns the size of the GPULitVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPULitVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULitVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 56-byte buffer ready for GPU upload.
func (g *GPULitVertex) Marshal() []byte {
	buf := make([]byte, 56)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.TexCoords[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.TexCoords[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Normal[2]))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.Tangent[0]))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.Tangent[1]))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.Tangent[2]))
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(g.Bitangent[0]))
	binary.LittleEndian.PutUint32(buf[48:52], math.Float32bits(g.Bitangent[1]))
	binary.LittleEndian.PutUint32(buf[52:56], math.Float32bits(g.Bitangent[2]))
	return buf
}

// GPUInstance is the GPU-aligned representation of a single per-instance
// transform for the basic pipeline: the 4x4 model matrix flattened into four
// vec4 columns, because instance-rate vertex inputs are limited to fixed-width
// vector lanes. The vertex stage reassembles the matrix from these columns.
// Size: 64 bytes (4 x vec4<f32>, tightly packed).
type GPUInstance struct {
	ModelCols [4][4]float32 // offset 0: model matrix columns, in order (64 bytes)
}

// Size returns the size of the GPUInstance struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUInstance) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstance struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload.
func (g *GPUInstance) Marshal() []byte {
	buf := make([]byte, 64)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			binary.LittleEndian.PutUint32(buf[(c*4+r)*4:], math.Float32bits(g.ModelCols[c][r]))
		}
	}
	return buf
}

// GPULitInstance is the GPU-aligned representation of a single per-instance
// transform for the lit pipeline. It extends GPUInstance with the 3x3 normal
// matrix (the inverse-transpose of the model's upper 3x3 block) flattened into
// three vec3 columns. The two matrices must stay mutually consistent or
// lighting is geometrically wrong under non-uniform scale.
// Size: 100 bytes (4 x vec4<f32> + 3 x vec3<f32>, tightly packed).
type GPULitInstance struct {
	ModelCols  [4][4]float32 // offset  0: model matrix columns, in order (64 bytes)
	NormalCols [3][3]float32 // offset 64: normal matrix columns, in order (36 bytes)
}

// Size returns the size of the GPULitInstance struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPULitInstance) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULitInstance struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 100-byte buffer ready for GPU upload.
func (g *GPULitInstance) Marshal() []byte {
	buf := make([]byte, 100)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			binary.LittleEndian.PutUint32(buf[(c*4+r)*4:], math.Float32bits(g.ModelCols[c][r]))
		}
	}
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			binary.LittleEndian.PutUint32(buf[64+(c*3+r)*4:], math.Float32bits(g.NormalCols[c][r]))
		}
	}
	return buf
}

// VertexLayout returns the vertex buffer layout for the basic pipeline:
// position and texture coordinates at locations 0-1, vertex-rate stepping.
//
// Returns:
//   - wgpu.VertexBufferLayout: the basic per-vertex buffer layout
func VertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 20,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: LocationPosition},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: LocationTexCoords},
		},
	}
}

// LitVertexLayout returns the vertex buffer layout for the lit pipeline:
// position, texture coordinates, normal, tangent, and bitangent at locations
// 0-4, vertex-rate stepping.
//
// Returns:
//   - wgpu.VertexBufferLayout: the lit per-vertex buffer layout
func LitVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 56,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: LocationPosition},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: LocationTexCoords},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 20, ShaderLocation: LocationNormal},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 32, ShaderLocation: LocationTangent},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 44, ShaderLocation: LocationBitangent},
		},
	}
}

// InstanceLayout returns the instance buffer layout for the basic pipeline:
// four model-matrix columns as vec4 attributes at locations 5-8,
// instance-rate stepping.
//
// Returns:
//   - wgpu.VertexBufferLayout: the basic per-instance buffer layout
func InstanceLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 64,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: LocationModelCol0},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: LocationModelCol0 + 1},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: LocationModelCol0 + 2},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: LocationModelCol0 + 3},
		},
	}
}

// LitInstanceLayout returns the instance buffer layout for the lit pipeline:
// four model-matrix columns as vec4 attributes at locations 5-8 followed by
// three normal-matrix columns as vec3 attributes at locations 9-11,
// instance-rate stepping.
//
// Returns:
//   - wgpu.VertexBufferLayout: the lit per-instance buffer layout
func LitInstanceLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 100,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: LocationModelCol0},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: LocationModelCol0 + 1},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: LocationModelCol0 + 2},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: LocationModelCol0 + 3},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 64, ShaderLocation: LocationNormalCol0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 76, ShaderLocation: LocationNormalCol0 + 1},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 88, ShaderLocation: LocationNormalCol0 + 2},
		},
	}
}
