package model

import (
	"github.com/aaronboult/lumen-go/common"
)

// Instance holds the CPU-side transform state for one drawn copy of a mesh.
// The scene flattens it into GPUInstance / GPULitInstance column vectors each
// frame ("flatten on write"); the vertex stage reconstructs the matrices from
// those columns ("reconstruct on read"). The flattened column layout is the
// actual cross-component contract, so it is kept explicit here rather than
// hidden behind an opaque matrix type.
type Instance struct {
	// Position is the world-space translation.
	Position [3]float32

	// Rotation holds Euler rotation angles in radians around each axis,
	// applied in Y * X * Z order.
	Rotation [3]float32

	// Scale holds the scale factor along each axis. A zero-value Instance has
	// zero scale and produces a degenerate (invisible) transform; use
	// NewInstance for sensible defaults.
	Scale [3]float32
}

// NewInstance creates an Instance at the given position with no rotation and
// unit scale.
//
// Parameters:
//   - x, y, z: world-space position
//
// Returns:
//   - Instance: the initialized instance
func NewInstance(x, y, z float32) Instance {
	return Instance{
		Position: [3]float32{x, y, z},
		Scale:    [3]float32{1, 1, 1},
	}
}

// ModelMatrix builds the 4x4 column-major model matrix for this instance.
//
// Returns:
//   - [16]float32: the object-to-world transform
func (in *Instance) ModelMatrix() [16]float32 {
	var m [16]float32
	common.BuildModelMatrix(m[:],
		in.Position[0], in.Position[1], in.Position[2],
		in.Rotation[0], in.Rotation[1], in.Rotation[2],
		in.Scale[0], in.Scale[1], in.Scale[2],
	)
	return m
}

// Raw flattens the instance's model matrix into the per-instance attribute
// columns consumed by the basic pipeline.
//
// Returns:
//   - GPUInstance: the flattened instance data
func (in *Instance) Raw() GPUInstance {
	m := in.ModelMatrix()
	var g GPUInstance
	for c := 0; c < 4; c++ {
		copy(g.ModelCols[c][:], m[c*4:c*4+4])
	}
	return g
}

// RawLit flattens the instance's model matrix and its derived normal matrix
// (inverse-transpose of the model's upper 3x3) into the per-instance attribute
// columns consumed by the lit pipeline. If the model matrix's upper 3x3 block
// is singular the upper block itself is used in place of the normal matrix;
// the resulting degenerate lighting is the instance author's responsibility,
// mirroring how the shading stages absorb malformed input without validation.
//
// Returns:
//   - GPULitInstance: the flattened instance data
func (in *Instance) RawLit() GPULitInstance {
	m := in.ModelMatrix()

	// Fallback content if inversion fails below.
	nm := [9]float32{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
	common.NormalMatrix3(nm[:], m[:])

	var g GPULitInstance
	for c := 0; c < 4; c++ {
		copy(g.ModelCols[c][:], m[c*4:c*4+4])
	}
	for c := 0; c < 3; c++ {
		copy(g.NormalCols[c][:], nm[c*3:c*3+3])
	}
	return g
}
