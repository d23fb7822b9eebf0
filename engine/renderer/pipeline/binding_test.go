package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestBindGroupLayoutDescriptors(t *testing.T) {
	tests := []struct {
		name            string
		kind            Kind
		wantGroups      int
		wantMaterialLen int
	}{
		{name: "basic", kind: KindBasic, wantGroups: 2, wantMaterialLen: 2},
		{name: "lit", kind: KindLit, wantGroups: 3, wantMaterialLen: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descs := BindGroupLayoutDescriptors(tt.kind)
			if len(descs) != tt.wantGroups {
				t.Fatalf("group count: got %d, want %d", len(descs), tt.wantGroups)
			}

			material := descs[GroupMaterial]
			if len(material.Entries) != tt.wantMaterialLen {
				t.Fatalf("material entries: got %d, want %d", len(material.Entries), tt.wantMaterialLen)
			}
			if material.Entries[BindingDiffuseTexture].Texture.SampleType != wgpu.TextureSampleTypeFloat {
				t.Error("diffuse texture binding is not a float sampled texture")
			}
			if material.Entries[BindingDiffuseSampler].Sampler.Type != wgpu.SamplerBindingTypeFiltering {
				t.Error("diffuse sampler binding is not a filtering sampler")
			}

			cam := descs[GroupCamera]
			if len(cam.Entries) != 1 {
				t.Fatalf("camera entries: got %d, want 1", len(cam.Entries))
			}
			if cam.Entries[0].Buffer.Type != wgpu.BufferBindingTypeUniform {
				t.Error("camera binding is not a uniform buffer")
			}

			if tt.kind == KindLit {
				if material.Entries[BindingNormalTexture].Texture.SampleType != wgpu.TextureSampleTypeFloat {
					t.Error("normal texture binding is not a float sampled texture")
				}
				lightGroup := descs[GroupLight]
				if len(lightGroup.Entries) != 1 || lightGroup.Entries[0].Buffer.Type != wgpu.BufferBindingTypeUniform {
					t.Error("light group is not a single uniform buffer binding")
				}
			}
		})
	}
}

func TestUniformBindingSizesBackTheBuffers(t *testing.T) {
	// The backend sizes each uniform buffer from the layout entry's
	// MinBindingSize, so a zero here means a zero-byte buffer and a failed
	// bind group. Every declared size must match what ValidateUniformWrite
	// accepts for that group.
	descs := BindGroupLayoutDescriptors(KindLit)

	camSize := descs[GroupCamera].Entries[BindingCameraUniform].Buffer.MinBindingSize
	if camSize == 0 {
		t.Fatal("camera uniform binding declares no size")
	}
	if err := ValidateUniformWrite(GroupCamera, int(camSize)); err != nil {
		t.Errorf("camera binding size %d rejected: %v", camSize, err)
	}

	lightSize := descs[GroupLight].Entries[BindingLightUniform].Buffer.MinBindingSize
	if lightSize == 0 {
		t.Fatal("light uniform binding declares no size")
	}
	if err := ValidateUniformWrite(GroupLight, int(lightSize)); err != nil {
		t.Errorf("light binding size %d rejected: %v", lightSize, err)
	}

	basic := BindGroupLayoutDescriptors(KindBasic)
	if got := basic[GroupCamera].Entries[BindingCameraUniform].Buffer.MinBindingSize; got != camSize {
		t.Errorf("basic camera binding size: got %d, want %d", got, camSize)
	}
}

func TestVertexBufferLayouts(t *testing.T) {
	tests := []struct {
		name               string
		kind               Kind
		wantVertexStride   uint64
		wantInstanceStride uint64
		wantVertexAttrs    int
		wantInstanceAttrs  int
	}{
		{name: "basic", kind: KindBasic, wantVertexStride: 20, wantInstanceStride: 64, wantVertexAttrs: 2, wantInstanceAttrs: 4},
		{name: "lit", kind: KindLit, wantVertexStride: 56, wantInstanceStride: 100, wantVertexAttrs: 5, wantInstanceAttrs: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layouts := VertexBufferLayouts(tt.kind)
			if len(layouts) != 2 {
				t.Fatalf("layout count: got %d, want 2", len(layouts))
			}

			vert := layouts[SlotVertex]
			if vert.ArrayStride != tt.wantVertexStride {
				t.Errorf("vertex stride: got %d, want %d", vert.ArrayStride, tt.wantVertexStride)
			}
			if vert.StepMode != wgpu.VertexStepModeVertex {
				t.Error("vertex buffer does not step per vertex")
			}
			if len(vert.Attributes) != tt.wantVertexAttrs {
				t.Errorf("vertex attributes: got %d, want %d", len(vert.Attributes), tt.wantVertexAttrs)
			}

			inst := layouts[SlotInstance]
			if inst.ArrayStride != tt.wantInstanceStride {
				t.Errorf("instance stride: got %d, want %d", inst.ArrayStride, tt.wantInstanceStride)
			}
			if inst.StepMode != wgpu.VertexStepModeInstance {
				t.Error("instance buffer does not step per instance")
			}
			if len(inst.Attributes) != tt.wantInstanceAttrs {
				t.Errorf("instance attributes: got %d, want %d", len(inst.Attributes), tt.wantInstanceAttrs)
			}
			if inst.Attributes[0].ShaderLocation != 5 {
				t.Errorf("first instance location: got %d, want 5", inst.Attributes[0].ShaderLocation)
			}
		})
	}
}

func TestVertexLocationsAreDisjoint(t *testing.T) {
	for _, kind := range []Kind{KindBasic, KindLit} {
		t.Run(kind.String(), func(t *testing.T) {
			seen := map[uint32]bool{}
			for _, layout := range VertexBufferLayouts(kind) {
				for _, attr := range layout.Attributes {
					if seen[attr.ShaderLocation] {
						t.Errorf("location %d used twice", attr.ShaderLocation)
					}
					seen[attr.ShaderLocation] = true
				}
			}
		})
	}
}

func TestValidateUniformWrite(t *testing.T) {
	tests := []struct {
		name    string
		group   uint32
		size    int
		wantErr bool
	}{
		{name: "camera exact size", group: GroupCamera, size: 80},
		{name: "light exact size", group: GroupLight, size: 32},
		{name: "camera short write", group: GroupCamera, size: 64, wantErr: true},
		{name: "light oversized write", group: GroupLight, size: 48, wantErr: true},
		{name: "material group has no uniform", group: GroupMaterial, size: 80, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUniformWrite(tt.group, tt.size)
			if (err != nil) != tt.wantErr {
				t.Errorf("got err %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("lit_render", KindLit)

	if p.Kind() != KindLit {
		t.Errorf("kind: got %v, want KindLit", p.Kind())
	}
	if !p.DepthTestEnabled() || !p.DepthWriteEnabled() {
		t.Error("depth test and write should default to enabled")
	}
	if p.CullMode() != wgpu.CullModeBack {
		t.Errorf("cull mode: got %v, want back-face culling", p.CullMode())
	}
	if p.Topology() != wgpu.PrimitiveTopologyTriangleList {
		t.Errorf("topology: got %v, want triangle list", p.Topology())
	}
	if got := len(p.BindGroupLayoutDescriptors()); got != 3 {
		t.Errorf("bind group count: got %d, want 3", got)
	}
}
