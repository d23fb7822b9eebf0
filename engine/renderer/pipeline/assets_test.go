package pipeline

import (
	"strings"
	"testing"

	"github.com/aaronboult/lumen-go/engine/renderer/shading"
)

func TestLitShaderCarriesDefaultLightingParams(t *testing.T) {
	p := shading.DefaultLightingParams()

	wantAmbient := "const ambient_strength: f32 = " + formatWGSLFloat(p.AmbientStrength) + ";"
	if !strings.Contains(LitShaderSource, wantAmbient) {
		t.Errorf("lit shader is missing %q", wantAmbient)
	}
	wantShininess := "const shininess: f32 = " + formatWGSLFloat(p.Shininess) + ";"
	if !strings.Contains(LitShaderSource, wantShininess) {
		t.Errorf("lit shader is missing %q", wantShininess)
	}
}

func TestWithLightingParamsRewritesConstants(t *testing.T) {
	src := withLightingParams(litShaderTemplate, shading.LightingParams{
		AmbientStrength: 0.25,
		Shininess:       8,
	})

	if !strings.Contains(src, "const ambient_strength: f32 = 0.25;") {
		t.Error("ambient strength was not rewritten")
	}
	if !strings.Contains(src, "const shininess: f32 = 8.0;") {
		t.Error("shininess was not rewritten")
	}
	if strings.Count(src, "const ambient_strength:") != 1 {
		t.Error("ambient strength declaration was duplicated")
	}
}

func TestSetShaderConstPanicsOnMissingDeclaration(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a source with no matching const")
		}
	}()
	setShaderConst("fn fs_main() {}", "ambient_strength", 0.1)
}

func TestFormatWGSLFloat(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{in: 0.1, want: "0.1"},
		{in: 32, want: "32.0"},
		{in: 0.5, want: "0.5"},
	}
	for _, tt := range tests {
		if got := formatWGSLFloat(tt.in); got != tt.want {
			t.Errorf("formatWGSLFloat(%v): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
