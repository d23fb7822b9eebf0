package pipeline

import (
	"fmt"

	"github.com/aaronboult/lumen-go/engine/camera"
	"github.com/aaronboult/lumen-go/engine/light"
	"github.com/aaronboult/lumen-go/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
)

// Bind group indices. Groups are ordered by update frequency: the material
// group is bound per draw call, the camera and light groups once per frame.
const (
	// GroupMaterial holds the texture and sampler bindings for one material.
	GroupMaterial uint32 = 0

	// GroupCamera holds the per-frame camera uniform.
	GroupCamera uint32 = 1

	// GroupLight holds the per-frame light uniform. Only the lit pipeline
	// carries this group.
	GroupLight uint32 = 2
)

// Binding slots within each group.
const (
	// BindingDiffuseTexture is the diffuse texture view in the material group.
	BindingDiffuseTexture uint32 = 0

	// BindingDiffuseSampler is the diffuse sampler in the material group.
	BindingDiffuseSampler uint32 = 1

	// BindingNormalTexture is the normal-map texture view in the material
	// group (lit pipeline only).
	BindingNormalTexture uint32 = 2

	// BindingNormalSampler is the normal-map sampler in the material group
	// (lit pipeline only).
	BindingNormalSampler uint32 = 3

	// BindingCameraUniform is the camera uniform buffer in the camera group.
	BindingCameraUniform uint32 = 0

	// BindingLightUniform is the light uniform buffer in the light group.
	BindingLightUniform uint32 = 0
)

// Vertex buffer slots. Slot 0 steps per vertex, slot 1 per instance.
const (
	SlotVertex   uint32 = 0
	SlotInstance uint32 = 1
)

// BindGroupLayoutDescriptors returns the bind group layout descriptors for a
// pipeline kind, in group index order. The basic kind carries the material
// and camera groups; the lit kind adds the light group and the normal-map
// bindings in the material group.
//
// Parameters:
//   - kind: the shading variant
//
// Returns:
//   - []wgpu.BindGroupLayoutDescriptor: one descriptor per bind group
func BindGroupLayoutDescriptors(kind Kind) []wgpu.BindGroupLayoutDescriptor {
	materialEntries := []wgpu.BindGroupLayoutEntry{
		textureLayoutEntry(BindingDiffuseTexture),
		samplerLayoutEntry(BindingDiffuseSampler),
	}
	if kind == KindLit {
		materialEntries = append(materialEntries,
			textureLayoutEntry(BindingNormalTexture),
			samplerLayoutEntry(BindingNormalSampler),
		)
	}

	var cameraUniform camera.GPUCameraUniform
	descriptors := []wgpu.BindGroupLayoutDescriptor{
		{
			Label:   "material_bind_group_layout",
			Entries: materialEntries,
		},
		{
			Label: "camera_bind_group_layout",
			Entries: []wgpu.BindGroupLayoutEntry{
				uniformLayoutEntry(BindingCameraUniform, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, uint64(cameraUniform.Size())),
			},
		},
	}
	if kind == KindLit {
		var lightUniform light.GPULightUniform
		descriptors = append(descriptors, wgpu.BindGroupLayoutDescriptor{
			Label: "light_bind_group_layout",
			Entries: []wgpu.BindGroupLayoutEntry{
				uniformLayoutEntry(BindingLightUniform, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, uint64(lightUniform.Size())),
			},
		})
	}
	return descriptors
}

// VertexBufferLayouts returns the vertex buffer layouts for a pipeline kind:
// slot 0 is the per-vertex buffer and slot 1 the per-instance buffer.
//
// Parameters:
//   - kind: the shading variant
//
// Returns:
//   - []wgpu.VertexBufferLayout: the two buffer layouts in slot order
func VertexBufferLayouts(kind Kind) []wgpu.VertexBufferLayout {
	if kind == KindLit {
		return []wgpu.VertexBufferLayout{
			model.LitVertexLayout(),
			model.LitInstanceLayout(),
		}
	}
	return []wgpu.VertexBufferLayout{
		model.VertexLayout(),
		model.InstanceLayout(),
	}
}

// ValidateUniformWrite checks that a buffer write destined for one of the
// uniform bind groups carries exactly the byte count the group's layout
// declares. A mismatch is a contract violation and must fail pipeline setup
// rather than reach the GPU.
//
// Parameters:
//   - group: the bind group index (GroupCamera or GroupLight)
//   - size: the staged write's byte length
//
// Returns:
//   - error: an error describing the mismatch, or nil if the size matches
func ValidateUniformWrite(group uint32, size int) error {
	var want int
	switch group {
	case GroupCamera:
		var u camera.GPUCameraUniform
		want = u.Size()
	case GroupLight:
		var u light.GPULightUniform
		want = u.Size()
	default:
		return fmt.Errorf("pipeline: group %d has no uniform binding", group)
	}
	if size != want {
		return fmt.Errorf("pipeline: group %d uniform write is %d bytes, layout requires %d", group, size, want)
	}
	return nil
}

func textureLayoutEntry(binding uint32) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: wgpu.ShaderStageFragment,
		Texture: wgpu.TextureBindingLayout{
			SampleType:    wgpu.TextureSampleTypeFloat,
			ViewDimension: wgpu.TextureViewDimension2D,
			Multisampled:  false,
		},
	}
}

func samplerLayoutEntry(binding uint32) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: wgpu.ShaderStageFragment,
		Sampler: wgpu.SamplerBindingLayout{
			Type: wgpu.SamplerBindingTypeFiltering,
		},
	}
}

func uniformLayoutEntry(binding uint32, visibility wgpu.ShaderStage, size uint64) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: visibility,
		Buffer: wgpu.BufferBindingLayout{
			Type:             wgpu.BufferBindingTypeUniform,
			HasDynamicOffset: false,
			MinBindingSize:   size,
		},
	}
}
