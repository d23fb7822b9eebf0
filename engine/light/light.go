package light

import (
	"sync"
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu *sync.Mutex

	position [3]float32
	color    [3]float32
}

// Light defines the interface for the scene's point light.
//
// The lit pipeline evaluates exactly one light per draw; its world-space
// position and linear RGB intensity are uploaded in the light uniform bound
// at group "light", binding 0, and read by every fragment invocation.
// Position and color are mutable so the scene can animate the light between
// frames; changes become visible at the next uniform upload.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Color returns the light's linear RGB intensity.
	// Values above 1.0 are valid; the lit fragment output is not clamped.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// SetPosition moves the light in world space.
	//
	// Parameters:
	//   - x, y, z: the new position
	SetPosition(x, y, z float32)

	// SetColor sets the light's linear RGB intensity.
	//
	// Parameters:
	//   - r, g, b: the new color
	SetColor(r, g, b float32)

	// Uniform snapshots the light state into the GPU-aligned uniform struct.
	//
	// Returns:
	//   - GPULightUniform: the snapshot ready for Marshal
	Uniform() GPULightUniform
}

var _ Light = &lightImpl{}

// NewLight creates a new Light with the provided options applied.
// Defaults: position (2, 2, 2), white color.
//
// Parameters:
//   - options: a variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:       &sync.Mutex{},
		position: [3]float32{2, 2, 2},
		color:    [3]float32{1, 1, 1},
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *lightImpl) Position() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *lightImpl) Color() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) Uniform() GPULightUniform {
	l.mu.Lock()
	defer l.mu.Unlock()
	return GPULightUniform{
		Position: l.position,
		Color:    l.color,
	}
}
