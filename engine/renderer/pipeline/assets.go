package pipeline

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/aaronboult/lumen-go/engine/renderer/shader"
	"github.com/aaronboult/lumen-go/engine/renderer/shading"
)

// BasicShaderSource is the canonical WGSL source of the basic pipeline:
// vertex transform plus diffuse texture passthrough.
//
//go:embed assets/basic.wgsl
var BasicShaderSource string

//go:embed assets/lit.wgsl
var litShaderTemplate string

// LitShaderSource is the canonical WGSL source of the lit pipeline: vertex
// transform with tangent-space projection plus Blinn-Phong shading. The
// module-scope lighting constants are rewritten from
// shading.DefaultLightingParams so the GPU stage and the reference stage
// share one tuning source.
var LitShaderSource = withLightingParams(litShaderTemplate, shading.DefaultLightingParams())

func withLightingParams(src string, p shading.LightingParams) string {
	src = setShaderConst(src, "ambient_strength", p.AmbientStrength)
	src = setShaderConst(src, "shininess", p.Shininess)
	return src
}

// setShaderConst rewrites the value of a module-scope f32 const declaration.
// A missing declaration is a programmer error and panics, like a missing
// entry point in shader.NewShader.
func setShaderConst(src, name string, value float32) string {
	decl := "const " + name + ": f32 = "
	start := strings.Index(src, decl)
	if start < 0 {
		panic(fmt.Sprintf("pipeline: shader source has no const %q", name))
	}
	end := strings.Index(src[start:], ";")
	if end < 0 {
		panic(fmt.Sprintf("pipeline: const %q declaration is unterminated", name))
	}
	return src[:start] + decl + formatWGSLFloat(value) + src[start+end:]
}

func formatWGSLFloat(v float32) string {
	s := strconv.FormatFloat(float64(v), 'g', -1, 32)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// kindVertexShader returns the embedded vertex shader for a pipeline kind.
func kindVertexShader(kind Kind) shader.Shader {
	if kind == KindLit {
		return shader.NewShader("lit_vertex", shader.ShaderTypeVertex, LitShaderSource)
	}
	return shader.NewShader("basic_vertex", shader.ShaderTypeVertex, BasicShaderSource)
}

// kindFragmentShader returns the embedded fragment shader for a pipeline kind.
func kindFragmentShader(kind Kind) shader.Shader {
	if kind == KindLit {
		return shader.NewShader("lit_fragment", shader.ShaderTypeFragment, LitShaderSource)
	}
	return shader.NewShader("basic_fragment", shader.ShaderTypeFragment, BasicShaderSource)
}
