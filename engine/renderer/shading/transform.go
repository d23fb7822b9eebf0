package shading

import (
	"github.com/aaronboult/lumen-go/common"
	"github.com/aaronboult/lumen-go/engine/camera"
	"github.com/aaronboult/lumen-go/engine/light"
	"github.com/aaronboult/lumen-go/engine/model"
)

// BasicVarying holds the basic vertex stage outputs: the clip-space position
// consumed by the rasterizer and the interpolants handed to the basic
// fragment stage.
type BasicVarying struct {
	// ClipPosition is the vertex position after model and view-projection
	// transforms, prior to perspective division.
	ClipPosition [4]float32

	// TexCoords is the texture coordinate, passed through unmodified.
	TexCoords [2]float32
}

// LitVarying holds the lit vertex stage outputs: clip-space position plus the
// tangent-space interpolants the lit fragment stage lights with. Positions
// and directions are projected into tangent space at the vertex so the
// fragment stage can compare them directly against normal-map samples, which
// are authored in that frame.
type LitVarying struct {
	// ClipPosition is the vertex position after model and view-projection
	// transforms, prior to perspective division.
	ClipPosition [4]float32

	// TexCoords is the texture coordinate, passed through unmodified.
	TexCoords [2]float32

	// TangentPosition is the world-space vertex position projected into the
	// vertex's tangent-space basis.
	TangentPosition [3]float32

	// TangentLightPosition is the light's world-space position projected into
	// the vertex's tangent-space basis.
	TangentLightPosition [3]float32

	// TangentViewPosition is the camera's world-space eye position projected
	// into the vertex's tangent-space basis.
	TangentViewPosition [3]float32
}

// TransformBasic runs the basic pipeline's vertex stage for one vertex:
// world position = model x object position (w = 1), clip position =
// view-projection x world position, texture coordinates pass through.
// The model matrix is reassembled from the instance's flattened columns.
//
// Parameters:
//   - v: the vertex record
//   - inst: the per-instance flattened transform
//   - cam: the per-frame camera uniform
//
// Returns:
//   - BasicVarying: clip position and interpolants for the fragment stage
func TransformBasic(v model.GPUVertex, inst model.GPUInstance, cam camera.GPUCameraUniform) BasicVarying {
	m := Mat4FromColumns(inst.ModelCols[0], inst.ModelCols[1], inst.ModelCols[2], inst.ModelCols[3])
	world := common.MulVec4(m[:], [4]float32{v.Position[0], v.Position[1], v.Position[2], 1})
	return BasicVarying{
		ClipPosition: common.MulVec4(cam.ViewProj[:], world),
		TexCoords:    v.TexCoords,
	}
}

// TransformLit runs the lit pipeline's vertex stage for one vertex. On top of
// the basic transform it reassembles the instance's normal matrix, transforms
// the vertex's tangent frame to world space (normalizing each axis to guard
// against scale-induced length drift), builds the tangent-space basis whose
// rows are the world tangent, bitangent, and normal, and projects the world
// position, eye position, and light position into that basis.
//
// Parameters:
//   - v: the vertex record with its object-space tangent frame
//   - inst: the per-instance flattened model and normal transforms
//   - cam: the per-frame camera uniform
//   - lt: the light uniform (world-space light position)
//
// Returns:
//   - LitVarying: clip position and tangent-space interpolants
func TransformLit(v model.GPULitVertex, inst model.GPULitInstance, cam camera.GPUCameraUniform, lt light.GPULightUniform) LitVarying {
	m := Mat4FromColumns(inst.ModelCols[0], inst.ModelCols[1], inst.ModelCols[2], inst.ModelCols[3])
	nm := Mat3FromColumns(inst.NormalCols[0], inst.NormalCols[1], inst.NormalCols[2])

	worldNormal := common.Normalize3(common.Mul3Vec3(nm[:], v.Normal))
	worldTangent := common.Normalize3(common.Mul3Vec3(nm[:], v.Tangent))
	worldBitangent := common.Normalize3(common.Mul3Vec3(nm[:], v.Bitangent))

	basis := TangentBasis(worldTangent, worldBitangent, worldNormal)

	world := common.MulVec4(m[:], [4]float32{v.Position[0], v.Position[1], v.Position[2], 1})
	worldPos := [3]float32{world[0], world[1], world[2]}
	eye := [3]float32{cam.ViewPosition[0], cam.ViewPosition[1], cam.ViewPosition[2]}

	return LitVarying{
		ClipPosition:         common.MulVec4(cam.ViewProj[:], world),
		TexCoords:            v.TexCoords,
		TangentPosition:      common.Mul3Vec3(basis[:], worldPos),
		TangentLightPosition: common.Mul3Vec3(basis[:], lt.Position),
		TangentViewPosition:  common.Mul3Vec3(basis[:], eye),
	}
}

// TangentBasis builds the 3x3 matrix that maps world-space directions into
// the tangent space spanned by the given world tangent, bitangent, and
// normal. Its rows are the three input vectors, which makes it the transpose
// of the matrix whose columns are those vectors. The inputs are expected to
// be unit length; TransformLit normalizes them before calling.
//
// Parameters:
//   - tangent, bitangent, normal: the world-space tangent frame axes
//
// Returns:
//   - [9]float32: the world-to-tangent basis matrix (column-major)
func TangentBasis(tangent, bitangent, normal [3]float32) [9]float32 {
	// Column-major storage of a row-matrix: column i holds the i-th component
	// of each row vector.
	return [9]float32{
		tangent[0], bitangent[0], normal[0],
		tangent[1], bitangent[1], normal[1],
		tangent[2], bitangent[2], normal[2],
	}
}
