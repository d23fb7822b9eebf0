package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/aaronboult/lumen-go/engine/model"
	"github.com/aaronboult/lumen-go/engine/renderer/bind_group_provider"
	"github.com/aaronboult/lumen-go/engine/renderer/material"
	"github.com/aaronboult/lumen-go/engine/renderer/pipeline"
)

type gameObject struct {
	mu *sync.Mutex

	id      uint64
	enabled atomic.Bool

	mesh      model.Mesh
	mat       material.Material
	instances []model.Instance

	// rotationSpeed is applied to every instance's rotation each frame,
	// scaled by delta time, before the instance data is flattened.
	rotationSpeed [3]float32

	meshProvider bind_group_provider.BindGroupProvider
}

// GameObject defines the interface for a drawable scene entity: one mesh drawn
// with one material, instanced across a list of CPU-side transforms. The scene
// flattens the instance list into the GPU instance buffer each frame, so
// transform mutations through this interface become visible on the next frame.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Mesh returns the mesh geometry drawn by this object.
	//
	// Returns:
	//   - model.Mesh: the mesh, or nil if not set
	Mesh() model.Mesh

	// Material returns the material this object is drawn with.
	//
	// Returns:
	//   - material.Material: the material, or nil if not set
	Material() material.Material

	// InstanceCount returns the number of instances currently drawn.
	//
	// Returns:
	//   - int: the instance count
	InstanceCount() int

	// Instance retrieves a copy of the instance transform at the given index.
	//
	// Parameters:
	//   - index: the instance index
	//
	// Returns:
	//   - model.Instance: the instance transform
	//   - bool: false if the index is out of range
	Instance(index int) (model.Instance, bool)

	// SetInstance replaces the instance transform at the given index.
	// Out-of-range indices are ignored.
	//
	// Parameters:
	//   - index: the instance index
	//   - inst: the new transform
	SetInstance(index int, inst model.Instance)

	// RotationSpeed returns the per-axis rotation speed in radians per second
	// applied to every instance each frame.
	//
	// Returns:
	//   - [3]float32: rotation speed around each axis
	RotationSpeed() [3]float32

	// Advance applies the object's rotation speed to every instance, scaled by
	// the elapsed time. Called by the scene once per frame before flattening.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	Advance(deltaTime float32)

	// MarshalInstances flattens every instance into the packed per-instance
	// attribute bytes matching the material's shading kind: model matrix
	// columns for basic, model plus normal matrix columns for lit.
	//
	// Returns:
	//   - []byte: the serialized instance data ready for GPU upload
	MarshalInstances() []byte

	// MeshProvider returns the bind group provider holding this object's GPU
	// vertex, index, and instance buffers, or nil before GPU init.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider or nil
	MeshProvider() bind_group_provider.BindGroupProvider

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetRotationSpeed sets the per-axis rotation speed in radians per second.
	//
	// Parameters:
	//   - rx, ry, rz: rotation speed around each axis
	SetRotationSpeed(rx, ry, rz float32)

	// SetMeshProvider sets the bind group provider holding this object's GPU
	// mesh buffers. Called by the scene during GPU init.
	//
	// Parameters:
	//   - provider: the mesh provider
	SetMeshProvider(provider bind_group_provider.BindGroupProvider)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects start enabled.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu: &sync.Mutex{},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Mesh() model.Mesh {
	return g.mesh
}

func (g *gameObject) Material() material.Material {
	return g.mat
}

func (g *gameObject) InstanceCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.instances)
}

func (g *gameObject) Instance(index int) (model.Instance, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if index < 0 || index >= len(g.instances) {
		return model.Instance{}, false
	}
	return g.instances[index], true
}

func (g *gameObject) SetInstance(index int, inst model.Instance) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if index < 0 || index >= len(g.instances) {
		return
	}
	g.instances[index] = inst
}

func (g *gameObject) RotationSpeed() [3]float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotationSpeed
}

func (g *gameObject) Advance(deltaTime float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.rotationSpeed == [3]float32{} {
		return
	}
	for i := range g.instances {
		g.instances[i].Rotation[0] += g.rotationSpeed[0] * deltaTime
		g.instances[i].Rotation[1] += g.rotationSpeed[1] * deltaTime
		g.instances[i].Rotation[2] += g.rotationSpeed[2] * deltaTime
	}
}

func (g *gameObject) MarshalInstances() []byte {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.mat != nil && g.mat.Kind() == pipeline.KindLit {
		buf := make([]byte, 0, len(g.instances)*100)
		for i := range g.instances {
			data := g.instances[i].RawLit()
			buf = append(buf, data.Marshal()...)
		}
		return buf
	}
	buf := make([]byte, 0, len(g.instances)*64)
	for i := range g.instances {
		data := g.instances[i].Raw()
		buf = append(buf, data.Marshal()...)
	}
	return buf
}

func (g *gameObject) MeshProvider() bind_group_provider.BindGroupProvider {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.meshProvider
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetRotationSpeed(rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotationSpeed = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetMeshProvider(provider bind_group_provider.BindGroupProvider) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.meshProvider = provider
}
