package game_object

import (
	"github.com/aaronboult/lumen-go/engine/model"
	"github.com/aaronboult/lumen-go/engine/renderer/material"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithMesh sets the mesh geometry drawn by the GameObject.
//
// Parameters:
//   - mesh: the mesh to draw
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the mesh
func WithMesh(mesh model.Mesh) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mesh = mesh
	}
}

// WithMaterial sets the material the GameObject is drawn with.
//
// Parameters:
//   - mat: the material to draw with
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the material
func WithMaterial(mat material.Material) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mat = mat
	}
}

// WithInstances sets the initial instance transform list. The list length
// fixes the object's instance capacity when its GPU instance buffer is
// created during scene add.
//
// Parameters:
//   - instances: the instance transforms to draw
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the instances
func WithInstances(instances []model.Instance) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.instances = instances
	}
}

// WithRotationSpeed sets the per-axis rotation speed in radians per second
// applied to every instance each frame.
//
// Parameters:
//   - rx, ry, rz: rotation speed around each axis
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation speed
func WithRotationSpeed(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotationSpeed = [3]float32{rx, ry, rz}
	}
}
