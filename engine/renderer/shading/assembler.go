// Package shading implements the executable reference semantics of the
// engine's two render pipeline variants: the per-vertex transform stage and
// the per-fragment shading stage, plus the per-instance matrix reassembly that
// feeds them. The WGSL shaders in the pipeline package mirror these functions
// exactly; this package is the CPU-side source of truth and is what the unit
// tests exercise.
//
// Every function here is pure: no hidden state, no cross-invocation
// communication, identical outputs for identical inputs. That mirrors the GPU
// execution model the stages target, where vertex and fragment invocations run
// data-parallel with no ordering guarantees.
package shading

// Mat4FromColumns reassembles a 4x4 column-major matrix from four vec4
// instance attributes, treating each input vector as one matrix column in
// order. No validation is performed on invertibility or orthonormality;
// malformed input propagates silently into downstream transforms.
//
// Parameters:
//   - c0, c1, c2, c3: the matrix columns as delivered in the instance buffer
//
// Returns:
//   - [16]float32: the reassembled matrix (column-major)
func Mat4FromColumns(c0, c1, c2, c3 [4]float32) [16]float32 {
	var m [16]float32
	copy(m[0:4], c0[:])
	copy(m[4:8], c1[:])
	copy(m[8:12], c2[:])
	copy(m[12:16], c3[:])
	return m
}

// Mat3FromColumns reassembles a 3x3 column-major matrix from three vec3
// instance attributes, treating each input vector as one matrix column in
// order. As with Mat4FromColumns, no validation is performed.
//
// Parameters:
//   - c0, c1, c2: the matrix columns as delivered in the instance buffer
//
// Returns:
//   - [9]float32: the reassembled matrix (column-major)
func Mat3FromColumns(c0, c1, c2 [3]float32) [9]float32 {
	var m [9]float32
	copy(m[0:3], c0[:])
	copy(m[3:6], c1[:])
	copy(m[6:9], c2[:])
	return m
}
