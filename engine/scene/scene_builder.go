package scene

import (
	"github.com/aaronboult/lumen-go/engine/light"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithLight sets the scene's light source. The light's uniform is uploaded
// each frame once a lit object has been added.
//
// Parameters:
//   - l: the light to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lightSrc = l
	}
}

// WithFlattenWorkers sets the number of worker goroutines used during the
// parallel instance-flatten phase of Update. Defaults to runtime.NumCPU()-1.
// Higher values may improve throughput with many objects or large instance
// lists; lower values reduce scheduling overhead for simple scenes.
//
// Parameters:
//   - n: the number of flatten workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFlattenWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.flattenWorkers = n
	}
}
