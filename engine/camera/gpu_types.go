package camera

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniform is the GPU-aligned representation of the camera uniform
// buffer, bound once per frame at group "camera", binding 0.
// The eye position comes first and is padded to a vec4 because WGSL uniform
// fields require 16-byte spacing.
// Matches the WGSL CameraUniform struct layout exactly.
// Size: 80 bytes (vec4<f32> + mat4x4<f32>, std140 aligned).
type GPUCameraUniform struct {
	ViewPosition [4]float32  // offset  0: world-space eye position, w = 1 (16 bytes)
	ViewProj     [16]float32 // offset 16: combined view-projection matrix (64 bytes)
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewPosition[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.ViewProj[i]))
	}
	return buf
}
