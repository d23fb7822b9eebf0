package material

import (
	"testing"

	"github.com/aaronboult/lumen-go/common"
	"github.com/aaronboult/lumen-go/engine/renderer/pipeline"
)

func testTexture(name string) *common.SourcedTexture {
	return &common.SourcedTexture{
		Name:   name,
		Pixels: []byte{255, 255, 255, 255},
		Width:  1,
		Height: 1,
	}
}

func TestKindDerivedFromTextures(t *testing.T) {
	basic := NewMaterial(WithDiffuseTexture(testTexture("diffuse")))
	if basic.Kind() != pipeline.KindBasic {
		t.Errorf("diffuse-only material: got kind %v, want KindBasic", basic.Kind())
	}

	lit := NewMaterial(
		WithDiffuseTexture(testTexture("diffuse")),
		WithNormalTexture(testTexture("normal")),
	)
	if lit.Kind() != pipeline.KindLit {
		t.Errorf("normal-mapped material: got kind %v, want KindLit", lit.Kind())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mat     Material
		wantErr bool
	}{
		{
			name: "complete basic",
			mat:  NewMaterial(WithName("ok"), WithDiffuseTexture(testTexture("d"))),
		},
		{
			name: "complete lit",
			mat: NewMaterial(
				WithName("ok_lit"),
				WithDiffuseTexture(testTexture("d")),
				WithNormalTexture(testTexture("n")),
			),
		},
		{
			name:    "missing diffuse",
			mat:     NewMaterial(WithName("broken")),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mat.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("got err %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGPUResourceSetters(t *testing.T) {
	m := NewMaterial(WithName("cube"), WithDiffuseTexture(testTexture("d")))

	if m.PipelineKey() != "" || m.BindGroupProvider() != nil {
		t.Fatal("GPU resources should start unset")
	}

	m.SetPipelineKey("basic")
	if m.PipelineKey() != "basic" {
		t.Errorf("pipeline key: got %q, want %q", m.PipelineKey(), "basic")
	}
}
