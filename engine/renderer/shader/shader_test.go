package shader

import (
	"testing"
)

const testSource = `
struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
};

@vertex
fn vs_main(@location(0) position: vec3<f32>) -> VertexOutput {
    var out: VertexOutput;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 1.0, 1.0, 1.0);
}
`

func TestNewShaderParsesEntryPoints(t *testing.T) {
	vert := NewShader("test_vert", ShaderTypeVertex, testSource)
	if vert.EntryPoint() != "vs_main" {
		t.Errorf("vertex entry point: got %q, want %q", vert.EntryPoint(), "vs_main")
	}
	if vert.ShaderType() != ShaderTypeVertex {
		t.Error("shader type not preserved")
	}

	frag := NewShader("test_frag", ShaderTypeFragment, testSource)
	if frag.EntryPoint() != "fs_main" {
		t.Errorf("fragment entry point: got %q, want %q", frag.EntryPoint(), "fs_main")
	}
}

func TestNewShaderModule(t *testing.T) {
	s := NewShader("test", ShaderTypeVertex, testSource)

	mod := s.Module()
	if mod == nil || mod.WGSLDescriptor == nil {
		t.Fatal("missing module descriptor")
	}
	if mod.Label != "test" {
		t.Errorf("label: got %q, want %q", mod.Label, "test")
	}
	if mod.WGSLDescriptor.Code != testSource {
		t.Error("module source does not match input")
	}
}

func TestNewShaderPanics(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		shaderType ShaderType
	}{
		{name: "empty source", source: "", shaderType: ShaderTypeVertex},
		{name: "missing annotation", source: "fn vs_main() {}", shaderType: ShaderTypeVertex},
		{name: "wrong stage", source: "@vertex\nfn vs_main() {}", shaderType: ShaderTypeFragment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			NewShader("bad", tt.shaderType, tt.source)
		})
	}
}

func TestParseEntryPointNewlineBeforeFn(t *testing.T) {
	src := "@vertex\nfn other_name(in: f32) {}"
	s := NewShader("newline", ShaderTypeVertex, src)
	if s.EntryPoint() != "other_name" {
		t.Errorf("got %q, want %q", s.EntryPoint(), "other_name")
	}
}
