// package shader wraps embedded WGSL source in the metadata pipeline creation
// needs. Shaders here are fixed assets shipped with the engine, so layout
// metadata lives in the pipeline package as typed descriptors rather than
// being parsed back out of the source text.
package shader

import (
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies which pipeline stage a shader entry point serves.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

// shader is the implementation of the Shader interface.
type shader struct {
	key        string
	source     string
	shaderType ShaderType
	entryPoint string
	module     *wgpu.ShaderModuleDescriptor
}

// Shader defines the interface for a WGSL shader stage. It exposes the
// shader's unique key, source code, entry point, and the module descriptor
// used during pipeline creation.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// EntryPoint returns the entry point name for this shader.
	//
	// Returns:
	//   - string: the entry point function name (e.g. "vs_main")
	EntryPoint() string

	// Module returns the wgpu.ShaderModuleDescriptor for this shader.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the shader module descriptor containing the WGSL code and label
	Module() *wgpu.ShaderModuleDescriptor

	// ShaderType returns the type of the shader (vertex or fragment).
	//
	// Returns:
	//   - ShaderType: ShaderTypeVertex or ShaderTypeFragment
	ShaderType() ShaderType
}

var _ Shader = &shader{}

// NewShader creates a new Shader from embedded WGSL source. The entry point
// name is read from the @vertex or @fragment annotation matching the shader
// type; a missing annotation is a programmer error and panics.
//
// Parameters:
//   - key: a unique identifier for the shader, used for caching and lookups
//   - shaderType: the stage this shader serves (vertex or fragment)
//   - source: the WGSL source code
//
// Returns:
//   - Shader: a new Shader instance
func NewShader(key string, shaderType ShaderType, source string) Shader {
	if source == "" {
		panic(fmt.Sprintf("shader: %s must have WGSL source provided", key))
	}
	entry := parseEntryPoint(source, shaderType)
	if entry == "" {
		panic(fmt.Sprintf("shader: %s has no entry point for its shader type", key))
	}
	return &shader{
		key:        key,
		source:     source,
		shaderType: shaderType,
		entryPoint: entry,
		module: &wgpu.ShaderModuleDescriptor{
			Label: key,
			WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
				Code: source,
			},
		},
	}
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

// parseEntryPoint finds the function name following the stage annotation for
// the given shader type. Returns an empty string when no matching annotation
// exists in the source.
func parseEntryPoint(source string, shaderType ShaderType) string {
	annotation := "@vertex"
	if shaderType == ShaderTypeFragment {
		annotation = "@fragment"
	}

	idx := strings.Index(source, annotation)
	if idx == -1 {
		return ""
	}

	rest := source[idx+len(annotation):]
	fnIdx := strings.Index(rest, "fn ")
	if fnIdx == -1 {
		return ""
	}

	rest = rest[fnIdx+len("fn "):]
	end := strings.IndexAny(rest, "( \t\r\n")
	if end == -1 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}
