package scene

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/aaronboult/lumen-go/common"
	"github.com/aaronboult/lumen-go/engine/camera"
	"github.com/aaronboult/lumen-go/engine/game_object"
	"github.com/aaronboult/lumen-go/engine/light"
	"github.com/aaronboult/lumen-go/engine/renderer"
	"github.com/aaronboult/lumen-go/engine/renderer/bind_group_provider"
	"github.com/aaronboult/lumen-go/engine/renderer/material"
	"github.com/aaronboult/lumen-go/engine/renderer/pipeline"
)

// Scene manages a collection of GameObjects with a Camera, an optional Light,
// and a Renderer. Each object is a mesh drawn with a material across a list of
// instance transforms; the scene flattens those transforms into GPU instance
// buffers every frame and issues one instanced draw call per object.
// Scenes can be hot-swapped via the Active flag to switch between different views or levels.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Light returns the scene's light, or nil if none is set.
	Light() light.Light

	// SetLight replaces the scene's light. The light's uniform is uploaded
	// each frame when any lit object is registered.
	//
	// Parameters:
	//   - l: the new light
	SetLight(l light.Light)

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// SetRenderer replaces the scene's renderer.
	//
	// Parameters:
	//   - r: the new renderer
	SetRenderer(r renderer.Renderer)

	// Count returns the number of GameObjects in the scene's registry.
	//
	// Returns:
	//   - int: count of GameObjects in the registry
	Count() int

	// Add adds a GameObject to the scene. The scene's Renderer must be attached
	// and the object must carry a mesh and a material. The scene registers the
	// render pipeline matching the material's shading kind (unless already
	// registered), initializes GPU mesh, instance, and material resources, and
	// persists the object in the registry.
	//
	// Panics if the scene has no Renderer, the object is incomplete, the mesh
	// vertex variant does not match the material kind, or GPU init fails.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//   - pipelineOpts: optional pipeline builder options applied when the
	//     object's pipeline is first registered (e.g. blending)
	//
	// Returns:
	//   - uint64: the assigned object ID
	Add(obj game_object.GameObject, pipelineOpts ...pipeline.PipelineBuilderOption) uint64

	// Get retrieves a GameObject by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove removes a GameObject from the registry by ID.
	// Does not release the object's GPU resources.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// Clear removes all objects from the scene.
	// Does not release GPU resources.
	Clear()

	// Update advances per-object animation state, flattens every object's
	// instance transforms into packed attribute bytes in parallel, and uploads
	// the camera uniform, light uniform, and instance buffers in one coalesced
	// write batch. Must be called once per frame before DrawCalls.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	Update(deltaTime float32)

	// DrawCalls issues one instanced draw call per registered object.
	// Must be called within a BeginFrame/EndFrame block on the renderer.
	//
	// Returns:
	//   - error: error if a draw call fails
	DrawCalls() error

	// CameraBindGroupProvider returns the bind group provider holding the GPU
	// camera uniform buffer.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the camera provider
	CameraBindGroupProvider() bind_group_provider.BindGroupProvider

	// LightBindGroupProvider returns the bind group provider holding the GPU
	// light uniform buffer, or nil if no lit object has been added.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the light provider or nil
	LightBindGroupProvider() bind_group_provider.BindGroupProvider
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]game_object.GameObject
	objects  []game_object.GameObject // insertion order, for deterministic draw order
	nextID   uint64

	cam      camera.Camera
	lightSrc light.Light
	r        renderer.Renderer

	cameraBGP bind_group_provider.BindGroupProvider
	lightBGP  bind_group_provider.BindGroupProvider

	// Pre-allocated slice reused each frame to avoid per-frame allocations.
	writePool []bind_group_provider.BufferWrite

	// flattenPool manages a bounded set of reusable goroutines for the parallel
	// instance-flatten phase of Update. Workers persist across frames, avoiding
	// per-frame goroutine spawn/teardown overhead.
	flattenPool    worker.DynamicWorkerPool
	flattenWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and renderer. Both are
// required and NewScene panics if either is nil. The camera's uniform bind
// group is initialized on the GPU immediately; the light bind group is created
// lazily when the first lit object is added.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}

	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		active:         false,
		cam:            cam,
		r:              r,
		registry:       make(map[uint64]game_object.GameObject),
		nextID:         1,
		flattenWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the flatten pool after options so WithFlattenWorkers can override the default.
	// Queue size of 256 accommodates typical object counts with headroom.
	s.flattenPool = worker.NewDynamicWorkerPool(s.flattenWorkers, 256, 1*time.Second)

	// Initialize the camera's bind group on the GPU. The camera group layout is
	// identical for both pipeline kinds.
	var camUniform camera.GPUCameraUniform
	if err := pipeline.ValidateUniformWrite(pipeline.GroupCamera, camUniform.Size()); err != nil {
		panic(fmt.Sprintf("scene: camera uniform layout mismatch: %v", err))
	}
	cameraBGP := bind_group_provider.NewBindGroupProvider(name + "_camera")
	cameraDesc := pipeline.BindGroupLayoutDescriptors(pipeline.KindBasic)[pipeline.GroupCamera]
	if err := r.InitBindGroup(cameraBGP, cameraDesc, nil, nil); err != nil {
		panic(fmt.Sprintf("scene: failed to init camera bind group: %v", err))
	}
	s.cameraBGP = cameraBGP

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Light() light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lightSrc
}

func (s *scene) SetLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lightSrc = l
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) SetRenderer(r renderer.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = r
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) CameraBindGroupProvider() bind_group_provider.BindGroupProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cameraBGP
}

func (s *scene) LightBindGroupProvider() bind_group_provider.BindGroupProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lightBGP
}

func (s *scene) Add(obj game_object.GameObject, pipelineOpts ...pipeline.PipelineBuilderOption) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		panic("scene: cannot Add without a Renderer attached")
	}

	mesh := obj.Mesh()
	if mesh == nil {
		panic("scene: cannot Add a GameObject without a Mesh")
	}
	mat := obj.Material()
	if mat == nil {
		panic("scene: cannot Add a GameObject without a Material")
	}
	if err := mat.Validate(); err != nil {
		panic(fmt.Sprintf("scene: %v", err))
	}

	kind := mat.Kind()

	// The mesh vertex variant must match the material's shading kind so the
	// vertex buffer stride agrees with the pipeline's vertex layout.
	if kind == pipeline.KindLit && mesh.LitVertices() == nil {
		panic(fmt.Sprintf("scene: lit material %q requires a lit mesh, got basic mesh %q", mat.Name(), mesh.Name()))
	}
	if kind == pipeline.KindBasic && mesh.Vertices() == nil {
		panic(fmt.Sprintf("scene: basic material %q requires a basic mesh, got lit mesh %q", mat.Name(), mesh.Name()))
	}

	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	}

	// Register the render pipeline for this material's kind if not cached.
	// Materials without an explicit pipeline key share one pipeline per kind.
	if mat.PipelineKey() == "" {
		mat.SetPipelineKey(kind.String())
	}
	if s.r.Pipeline(mat.PipelineKey()) == nil {
		p := pipeline.NewPipeline(mat.PipelineKey(), kind, pipelineOpts...)
		if err := s.r.RegisterPipelines(p); err != nil {
			panic(fmt.Sprintf("scene: failed to register %s pipeline: %v", kind, err))
		}
	}

	// Init mesh GPU buffers and the instance buffer sized for the object's
	// instance list.
	if obj.MeshProvider() == nil {
		bgp := bind_group_provider.NewBindGroupProvider(mesh.Name() + "_mesh")
		if err := s.r.InitMeshBuffers(bgp, mesh.MarshalVertices(), mesh.MarshalIndices(), mesh.IndexCount()); err != nil {
			panic(fmt.Sprintf("scene: failed to init mesh buffers for %q: %v", mesh.Name(), err))
		}
		stride := uint64(64)
		if kind == pipeline.KindLit {
			stride = 100
		}
		count := uint64(obj.InstanceCount())
		if count == 0 {
			count = 1
		}
		if err := s.r.InitInstanceBuffer(bgp, count*stride); err != nil {
			panic(fmt.Sprintf("scene: failed to init instance buffer for %q: %v", mesh.Name(), err))
		}
		obj.SetMeshProvider(bgp)
	}

	// Init material GPU resources: textures, samplers, and the material bind group.
	if mat.BindGroupProvider() == nil {
		s.initMaterialGPU(mat, kind)
	}

	// Lit objects need the light uniform bind group; create it on first use.
	if kind == pipeline.KindLit && s.lightBGP == nil {
		var lightUniform light.GPULightUniform
		if err := pipeline.ValidateUniformWrite(pipeline.GroupLight, lightUniform.Size()); err != nil {
			panic(fmt.Sprintf("scene: light uniform layout mismatch: %v", err))
		}
		bgp := bind_group_provider.NewBindGroupProvider(s.name + "_light")
		lightDesc := pipeline.BindGroupLayoutDescriptors(pipeline.KindLit)[pipeline.GroupLight]
		if err := s.r.InitBindGroup(bgp, lightDesc, nil, nil); err != nil {
			panic(fmt.Sprintf("scene: failed to init light bind group: %v", err))
		}
		s.lightBGP = bgp
	}

	s.registry[obj.ID()] = obj
	s.objects = append(s.objects, obj)

	return obj.ID()
}

// initMaterialGPU creates the texture views, samplers, and bind group backing
// a material's GPU resources. Caller must hold s.mu write lock.
//
// Parameters:
//   - mat: the material to initialize (already validated)
//   - kind: the material's shading kind
func (s *scene) initMaterialGPU(mat material.Material, kind pipeline.Kind) {
	bgp := bind_group_provider.NewBindGroupProvider(mat.Name() + "_material")

	diffuse := mat.DiffuseTexture()
	staging, err := diffuse.Staging()
	if err != nil {
		panic(fmt.Sprintf("scene: failed to decode diffuse texture for material %q: %v", mat.Name(), err))
	}
	if err := s.r.InitTextureView(bgp, int(pipeline.BindingDiffuseTexture), *staging); err != nil {
		panic(fmt.Sprintf("scene: failed to init diffuse texture for material %q: %v", mat.Name(), err))
	}
	if err := s.r.InitSampler(bgp, int(pipeline.BindingDiffuseSampler), samplerStaging(diffuse)); err != nil {
		panic(fmt.Sprintf("scene: failed to init diffuse sampler for material %q: %v", mat.Name(), err))
	}

	if kind == pipeline.KindLit {
		normal := mat.NormalTexture()
		normalStaging, err := normal.Staging()
		if err != nil {
			panic(fmt.Sprintf("scene: failed to decode normal texture for material %q: %v", mat.Name(), err))
		}
		if err := s.r.InitTextureView(bgp, int(pipeline.BindingNormalTexture), *normalStaging); err != nil {
			panic(fmt.Sprintf("scene: failed to init normal texture for material %q: %v", mat.Name(), err))
		}
		if err := s.r.InitSampler(bgp, int(pipeline.BindingNormalSampler), samplerStaging(normal)); err != nil {
			panic(fmt.Sprintf("scene: failed to init normal sampler for material %q: %v", mat.Name(), err))
		}
	}

	materialDesc := pipeline.BindGroupLayoutDescriptors(kind)[pipeline.GroupMaterial]
	if err := s.r.InitBindGroup(bgp, materialDesc, nil, nil); err != nil {
		panic(fmt.Sprintf("scene: failed to init material bind group for %q: %v", mat.Name(), err))
	}
	mat.SetBindGroupProvider(bgp)
}

// samplerStaging returns the texture's sampler configuration, or the zero
// value (backend fills in linear/repeat defaults) when none is attached.
func samplerStaging(tex *common.SourcedTexture) common.SamplerStagingData {
	if tex != nil && tex.SamplerData != nil {
		return *tex.SamplerData
	}
	return common.SamplerStagingData{}
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, exists := s.registry[id]
	if !exists {
		return
	}
	delete(s.registry, id)

	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			break
		}
	}
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry = make(map[uint64]game_object.GameObject)
	s.objects = nil
}

func (s *scene) Update(deltaTime float32) {
	// Full lock: Update reuses s.writePool across frames.
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		return
	}

	writes := s.writePool[:0]

	// Camera uniform, once per frame.
	if s.cam != nil && s.cameraBGP != nil {
		camUniform := s.cam.Uniform()
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: s.cameraBGP,
			Binding:  int(pipeline.BindingCameraUniform),
			Offset:   0,
			Data:     camUniform.Marshal(),
		})
	}

	// Light uniform when a lit object has registered the light bind group.
	if s.lightSrc != nil && s.lightBGP != nil {
		lightUniform := s.lightSrc.Uniform()
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: s.lightBGP,
			Binding:  int(pipeline.BindingLightUniform),
			Offset:   0,
			Data:     lightUniform.Marshal(),
		})
	}

	// Parallel flatten phase: fan per-object transform advance and instance
	// marshaling out to the worker pool. A WaitGroup provides the per-frame
	// barrier; pool.Wait() only returns once workers idle-exit.
	targets := make([]game_object.GameObject, 0, len(s.objects))
	for _, obj := range s.objects {
		if obj.Enabled() && obj.InstanceCount() > 0 && obj.MeshProvider() != nil {
			targets = append(targets, obj)
		}
	}

	flattened := make([][]byte, len(targets))
	var wg sync.WaitGroup
	for i, obj := range targets {
		wg.Add(1)
		idx, objCap := i, obj // capture for closure
		s.flattenPool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				objCap.Advance(deltaTime)
				flattened[idx] = objCap.MarshalInstances()
				return nil, nil
			},
		})
	}
	wg.Wait()

	for i, obj := range targets {
		if len(flattened[i]) == 0 {
			continue
		}
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: obj.MeshProvider(),
			Binding:  int(pipeline.SlotInstance),
			Offset:   0,
			Data:     flattened[i],
		})
	}
	s.writePool = writes

	// Single WriteBuffers submission per frame.
	if len(writes) > 0 {
		s.r.WriteBuffers(writes)
	}
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.r == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}

	for _, obj := range s.objects {
		if !obj.Enabled() || obj.InstanceCount() == 0 {
			continue
		}
		meshProvider := obj.MeshProvider()
		if meshProvider == nil {
			continue
		}
		mat := obj.Material()
		if mat == nil || mat.BindGroupProvider() == nil {
			continue
		}

		// Group index order: material, camera, then light for lit materials.
		bindGroups := []bind_group_provider.BindGroupProvider{
			mat.BindGroupProvider(),
			s.cameraBGP,
		}
		if mat.Kind() == pipeline.KindLit {
			if s.lightBGP == nil {
				continue
			}
			bindGroups = append(bindGroups, s.lightBGP)
		}

		if err := s.r.DrawCall(mat.PipelineKey(), meshProvider, uint32(obj.InstanceCount()), bindGroups); err != nil {
			return fmt.Errorf("draw call failed for object %d in scene %q: %w", obj.ID(), s.name, err)
		}
	}

	return nil
}
