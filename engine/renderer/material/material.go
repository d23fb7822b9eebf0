package material

import (
	"fmt"

	"github.com/aaronboult/lumen-go/common"
	"github.com/aaronboult/lumen-go/engine/renderer/bind_group_provider"
	"github.com/aaronboult/lumen-go/engine/renderer/pipeline"
)

// material is the implementation of the Material interface.
type material struct {
	name              string
	kind              pipeline.Kind
	diffuseTexture    *common.SourcedTexture
	normalTexture     *common.SourcedTexture
	pipelineKey       string
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Material defines the interface for a render material: the texture set backing
// the material bind group plus the GPU resource references needed for draw calls.
//
// Texture references and the shading kind are set at construction and are
// read-only through this interface. GPU resource references (pipeline key, bind
// group provider) are mutable so they can be configured during GPU init.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Kind retrieves the shading variant this material renders with. Materials
	// with a normal texture are lit; materials without one are basic.
	//
	// Returns:
	//   - pipeline.Kind: KindBasic or KindLit
	Kind() pipeline.Kind

	// DiffuseTexture retrieves the diffuse texture data reference, or nil if none is set.
	//
	// Returns:
	//   - *common.SourcedTexture: the diffuse texture, or nil
	DiffuseTexture() *common.SourcedTexture

	// NormalTexture retrieves the normal map texture data reference, or nil if none is set.
	//
	// Returns:
	//   - *common.SourcedTexture: the normal texture, or nil
	NormalTexture() *common.SourcedTexture

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this material.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider, or nil if not yet initialized
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// Validate checks that the material carries every texture its shading kind
	// requires, so a malformed material fails GPU init instead of producing an
	// incomplete bind group.
	//
	// Returns:
	//   - error: an error naming the missing texture, or nil if complete
	Validate() error

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)

	// SetBindGroupProvider sets the bind group provider for this material.
	//
	// Parameters:
	//   - provider: the bind group provider containing GPU resources for this material
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided
// options. The shading kind is derived from the texture set: a material
// gains the lit kind when a normal texture is provided.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		kind: pipeline.KindBasic,
	}
	for _, opt := range options {
		opt(m)
	}
	if m.normalTexture != nil {
		m.kind = pipeline.KindLit
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Kind() pipeline.Kind {
	return m.kind
}

func (m *material) DiffuseTexture() *common.SourcedTexture {
	return m.diffuseTexture
}

func (m *material) NormalTexture() *common.SourcedTexture {
	return m.normalTexture
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *material) Validate() error {
	if m.diffuseTexture == nil {
		return fmt.Errorf("material %q has no diffuse texture", m.name)
	}
	if m.kind == pipeline.KindLit && m.normalTexture == nil {
		return fmt.Errorf("material %q is lit but has no normal texture", m.name)
	}
	return nil
}

func (m *material) SetPipelineKey(key string) {
	m.pipelineKey = key
}

func (m *material) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	m.bindGroupProvider = provider
}
