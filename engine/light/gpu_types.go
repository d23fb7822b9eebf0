package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULightUniform is the GPU-aligned representation of the light uniform
// buffer, bound at group "light", binding 0 (lit pipeline only).
// Both vec3 fields are padded to 16 bytes because WGSL uniform fields require
// 16-byte spacing.
// Matches the WGSL Light struct layout exactly.
// Size: 32 bytes (2 x padded vec3<f32>, std140 aligned).
type GPULightUniform struct {
	Position [3]float32 // offset  0: world-space position (12 bytes)
	_pad0    float32    // offset 12: padding to 16 bytes
	Color    [3]float32 // offset 16: linear RGB intensity (12 bytes)
	_pad1    float32    // offset 28: padding to 32 bytes
}

// Size returns the size of the GPULightUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPULightUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULightUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPULightUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:], 0) // _pad0
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Color[i]))
	}
	binary.LittleEndian.PutUint32(buf[28:], 0) // _pad1
	return buf
}
