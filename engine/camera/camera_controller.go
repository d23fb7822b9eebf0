package camera

import (
	"math"
	"sync"

	"github.com/aaronboult/lumen-go/common"
)

// orbitController is the implementation of the CameraController interface.
type orbitController struct {
	mu *sync.Mutex

	cam Camera

	yaw      float32 // radians around the Y axis
	pitch    float32 // radians above the horizon, clamped to avoid gimbal flip
	distance float32 // distance from the orbit target

	rotateSpeed float32 // radians per second while a rotate key is held
	zoomSpeed   float32 // distance units per scroll tick

	keysDown map[uint32]bool
}

// CameraController defines the interface for a controller that drives a
// Camera's pose from user input. The engine forwards key and scroll events to
// the controller and calls Update once per frame with the elapsed time.
type CameraController interface {
	// KeyDown records a pressed key.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common key code constants)
	KeyDown(keyCode uint32)

	// KeyUp records a released key.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyUp(keyCode uint32)

	// Scroll applies a zoom step toward or away from the orbit target.
	//
	// Parameters:
	//   - delta: scroll delta (positive = zoom in)
	Scroll(delta float32)

	// Update advances the controller state by dt seconds and writes the
	// resulting pose to the attached camera.
	//
	// Parameters:
	//   - dt: elapsed time since the previous update, in seconds
	Update(dt float32)
}

var _ CameraController = &orbitController{}

// NewOrbitController creates a CameraController that orbits the attached
// camera around its target. A/D rotate around the Y axis, W/S pitch, and the
// scroll wheel zooms. Panics if cam is nil.
//
// Parameters:
//   - cam: the camera to drive (must not be nil)
//
// Returns:
//   - CameraController: the orbit controller
func NewOrbitController(cam Camera) CameraController {
	if cam == nil {
		panic("camera: NewOrbitController requires a non-nil Camera")
	}

	eye := cam.Eye()
	target := cam.Target()
	offset := common.Sub3(eye, target)
	distance := float32(math.Sqrt(float64(common.Dot3(offset, offset))))
	if distance == 0 {
		distance = 1
	}

	return &orbitController{
		mu:          &sync.Mutex{},
		cam:         cam,
		yaw:         float32(math.Atan2(float64(offset[0]), float64(offset[2]))),
		pitch:       float32(math.Asin(float64(offset[1] / distance))),
		distance:    distance,
		rotateSpeed: 1.5,
		zoomSpeed:   0.25,
		keysDown:    make(map[uint32]bool),
	}
}

func (o *orbitController) KeyDown(keyCode uint32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.keysDown[keyCode] = true
}

func (o *orbitController) KeyUp(keyCode uint32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.keysDown, keyCode)
}

func (o *orbitController) Scroll(delta float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.distance -= delta * o.zoomSpeed
	if o.distance < 0.1 {
		o.distance = 0.1
	}
}

func (o *orbitController) Update(dt float32) {
	o.mu.Lock()
	defer o.mu.Unlock()

	step := o.rotateSpeed * dt
	if o.keysDown[common.KeyA] {
		o.yaw -= step
	}
	if o.keysDown[common.KeyD] {
		o.yaw += step
	}
	if o.keysDown[common.KeyW] {
		o.pitch += step
	}
	if o.keysDown[common.KeyS] {
		o.pitch -= step
	}

	// Keep the eye off the poles so LookAt's up vector stays valid.
	const maxPitch = 1.55
	if o.pitch > maxPitch {
		o.pitch = maxPitch
	}
	if o.pitch < -maxPitch {
		o.pitch = -maxPitch
	}

	target := o.cam.Target()
	cosPitch := float32(math.Cos(float64(o.pitch)))
	eye := [3]float32{
		target[0] + o.distance*cosPitch*float32(math.Sin(float64(o.yaw))),
		target[1] + o.distance*float32(math.Sin(float64(o.pitch))),
		target[2] + o.distance*cosPitch*float32(math.Cos(float64(o.yaw))),
	}
	o.cam.SetEye(eye[0], eye[1], eye[2])
}
