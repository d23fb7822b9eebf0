// package pipeline holds the engine's two render pipeline variants and the
// binding contract they share with the renderer: which bind groups exist,
// what lives at each binding slot, and how vertex and instance buffers are
// laid out. The WGSL sources are embedded assets; the layout metadata here is
// the single typed source of truth the renderer builds GPU objects from.
package pipeline

import (
	"github.com/aaronboult/lumen-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// Kind identifies which shading variant a pipeline renders with.
type Kind int

const (
	// KindBasic samples the diffuse texture and passes it through unlit.
	KindBasic Kind = iota

	// KindLit shades with tangent-space Blinn-Phong using a diffuse texture
	// and a normal map.
	KindLit
)

// String returns the pipeline kind's name.
//
// Returns:
//   - string: "basic", "lit", or "unknown"
func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindLit:
		return "lit"
	default:
		return "unknown"
	}
}

// pipeline is the implementation of the Pipeline interface.
// It holds the underlying WebGPU pipeline object and the configuration state
// used during pipeline creation.
type pipeline struct {
	kind Kind
	// pipelineKey is the unique identifier for this pipeline, used for caching and lookups
	pipelineKey string

	vertexShader, fragmentShader shader.Shader

	renderPipeline *wgpu.RenderPipeline

	// The following properties are used to configure the pipeline during creation and can be toggled/set with the builder options.

	depthTestEnabled    bool
	depthWriteEnabled   bool
	depthBias           int32
	depthBiasSlopeScale float32
	blendEnabled        bool
	cullMode            wgpu.CullMode
	topology            wgpu.PrimitiveTopology
	frontFace           wgpu.FrontFace
	writeMask           wgpu.ColorWriteMask
	blendState          *wgpu.BlendState
}

// Pipeline defines the interface for a render pipeline variant. It holds the
// shader pair, the compiled GPU pipeline once created, and all configuration
// state required for pipeline creation including depth, blend, cull, and
// topology settings.
type Pipeline interface {
	// Kind returns the shading variant of the pipeline.
	//
	// Returns:
	//   - Kind: KindBasic or KindLit
	Kind() Kind

	// PipelineKey returns the unique key associated with this pipeline, used for caching and lookups.
	//
	// Returns:
	//   - string: the unique key for this pipeline
	PipelineKey() string

	// Shader retrieves the shader associated with the specified type if it exists, nil otherwise.
	//
	// Parameters:
	//   - shaderType: the type of shader to retrieve (vertex or fragment)
	//
	// Returns:
	//   - shader.Shader: the shader associated with the specified type, or nil if not set
	Shader(shaderType shader.ShaderType) shader.Shader

	// RenderPipeline returns the underlying GPU pipeline, or nil before the
	// renderer has created it.
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the compiled render pipeline
	RenderPipeline() *wgpu.RenderPipeline

	// BindGroupLayoutDescriptors returns the bind group layout descriptors
	// for this pipeline's kind, in group index order.
	//
	// Returns:
	//   - []wgpu.BindGroupLayoutDescriptor: one descriptor per bind group
	BindGroupLayoutDescriptors() []wgpu.BindGroupLayoutDescriptor

	// VertexBufferLayouts returns the vertex and instance buffer layouts for
	// this pipeline's kind: slot 0 is the per-vertex buffer and slot 1 the
	// per-instance buffer.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: the two buffer layouts in slot order
	VertexBufferLayouts() []wgpu.VertexBufferLayout

	// DepthTestEnabled returns whether depth testing is enabled for this pipeline.
	//
	// Returns:
	//   - bool: true if depth testing is enabled, false otherwise
	DepthTestEnabled() bool

	// DepthWriteEnabled returns whether depth writing is enabled for this pipeline.
	//
	// Returns:
	//   - bool: true if depth writing is enabled, false otherwise
	DepthWriteEnabled() bool

	// DepthBias returns the depth bias value configured for this pipeline.
	//
	// Returns:
	//   - int32: the depth bias value for this pipeline
	DepthBias() int32

	// DepthBiasSlopeScale returns the depth bias slope scale configured for this pipeline.
	//
	// Returns:
	//   - float32: the depth bias slope scale for this pipeline
	DepthBiasSlopeScale() float32

	// BlendEnabled returns whether blending is enabled for this pipeline.
	//
	// Returns:
	//   - bool: true if blending is enabled, false otherwise
	BlendEnabled() bool

	// CullMode returns the cull mode configured for this pipeline.
	//
	// Returns:
	//   - wgpu.CullMode: the cull mode for this pipeline (e.g., wgpu.CullModeNone, wgpu.CullModeFront, wgpu.CullModeBack)
	CullMode() wgpu.CullMode

	// Topology returns the primitive topology configured for this pipeline.
	//
	// Returns:
	//   - wgpu.PrimitiveTopology: the primitive topology for this pipeline (e.g., wgpu.PrimitiveTopologyTriangleList)
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the front face winding order configured for this pipeline.
	//
	// Returns:
	//   - wgpu.FrontFace: the front face winding order for this pipeline (e.g., wgpu.FrontFaceCCW, wgpu.FrontFaceCW)
	FrontFace() wgpu.FrontFace

	// WriteMask returns the color write mask configured for this pipeline.
	//
	// Returns:
	//   - wgpu.ColorWriteMask: the color write mask for this pipeline (e.g., wgpu.ColorWriteMaskAll)
	WriteMask() wgpu.ColorWriteMask

	// BlendState returns the blend state configured for this pipeline.
	//
	// Returns:
	//   - *wgpu.BlendState: the blend state for this pipeline, or nil if blending is not enabled
	BlendState() *wgpu.BlendState

	// SetRenderPipeline sets the compiled render pipeline.
	//
	// Parameters:
	//   - p: the WebGPU render pipeline to set
	SetRenderPipeline(p *wgpu.RenderPipeline)
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a new render pipeline of the given kind. The kind's
// embedded shader pair is used unless overridden with WithVertexShader /
// WithFragmentShader.
//
// Parameters:
//   - pipelineKey: the unique key for this pipeline
//   - kind: the shading variant (KindBasic or KindLit)
//   - opts: a variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline instance with the specified kind and configuration
func NewPipeline(pipelineKey string, kind Kind, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:       pipelineKey,
		kind:              kind,
		depthTestEnabled:  true,
		depthWriteEnabled: true,
		blendEnabled:      false,
		cullMode:          wgpu.CullModeBack,
		topology:          wgpu.PrimitiveTopologyTriangleList,
		frontFace:         wgpu.FrontFaceCCW,
		writeMask:         wgpu.ColorWriteMaskAll,
		blendState: &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.vertexShader == nil {
		p.vertexShader = kindVertexShader(kind)
	}
	if p.fragmentShader == nil {
		p.fragmentShader = kindFragmentShader(kind)
	}
	return p
}

func (p *pipeline) Kind() Kind {
	return p.kind
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) RenderPipeline() *wgpu.RenderPipeline {
	return p.renderPipeline
}

func (p *pipeline) BindGroupLayoutDescriptors() []wgpu.BindGroupLayoutDescriptor {
	return BindGroupLayoutDescriptors(p.kind)
}

func (p *pipeline) VertexBufferLayouts() []wgpu.VertexBufferLayout {
	return VertexBufferLayouts(p.kind)
}

func (p *pipeline) DepthTestEnabled() bool {
	return p.depthTestEnabled
}

func (p *pipeline) DepthWriteEnabled() bool {
	return p.depthWriteEnabled
}

func (p *pipeline) DepthBias() int32 {
	return p.depthBias
}

func (p *pipeline) DepthBiasSlopeScale() float32 {
	return p.depthBiasSlopeScale
}

func (p *pipeline) BlendEnabled() bool {
	return p.blendEnabled
}

func (p *pipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipeline) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipeline) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *pipeline) WriteMask() wgpu.ColorWriteMask {
	return p.writeMask
}

func (p *pipeline) BlendState() *wgpu.BlendState {
	return p.blendState
}

func (p *pipeline) Shader(shaderType shader.ShaderType) shader.Shader {
	switch shaderType {
	case shader.ShaderTypeVertex:
		return p.vertexShader
	case shader.ShaderTypeFragment:
		return p.fragmentShader
	default:
		return nil
	}
}

func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline) {
	p.renderPipeline = rp
}
