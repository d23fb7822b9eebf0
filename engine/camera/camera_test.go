package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/aaronboult/lumen-go/common"
)

func TestCameraDefaults(t *testing.T) {
	c := NewCamera()

	if got := c.Eye(); got != [3]float32{0, 1, 2} {
		t.Errorf("eye: got %v, want (0,1,2)", got)
	}
	if got := c.Target(); got != [3]float32{0, 0, 0} {
		t.Errorf("target: got %v, want origin", got)
	}
	if got := c.Up(); got != [3]float32{0, 1, 0} {
		t.Errorf("up: got %v, want +Y", got)
	}
	if c.Near() != 0.1 || c.Far() != 100 {
		t.Errorf("clip planes: got %f/%f, want 0.1/100", c.Near(), c.Far())
	}
}

func TestCameraViewProjection(t *testing.T) {
	c := NewCamera(
		WithEye(0, 0, 5),
		WithTarget(0, 0, 0),
	)

	// A point at the origin projects to the center of the viewport.
	vp := c.ViewProjectionMatrix()
	clip := common.MulVec4(vp[:], [4]float32{0, 0, 0, 1})
	if math.Abs(float64(clip[0])) > 1e-5 || math.Abs(float64(clip[1])) > 1e-5 {
		t.Errorf("origin off-center: got (%f, %f)", clip[0], clip[1])
	}
	if clip[3] <= 0 {
		t.Errorf("point in front of camera has non-positive w: %f", clip[3])
	}
}

func TestCameraSettersRecompute(t *testing.T) {
	c := NewCamera()
	before := c.ViewProjectionMatrix()

	c.SetEye(10, 0, 0)
	if c.ViewProjectionMatrix() == before {
		t.Error("SetEye did not recompute the view-projection matrix")
	}

	before = c.ViewProjectionMatrix()
	c.SetAspect(2)
	if c.ViewProjectionMatrix() == before {
		t.Error("SetAspect did not recompute the view-projection matrix")
	}
}

func TestCameraUniform(t *testing.T) {
	c := NewCamera(WithEye(3, 4, 5))
	u := c.Uniform()

	if u.ViewPosition != [4]float32{3, 4, 5, 1} {
		t.Errorf("view position: got %v, want (3,4,5,1)", u.ViewPosition)
	}
	if u.ViewProj != c.ViewProjectionMatrix() {
		t.Error("uniform matrix does not match the camera's view-projection")
	}
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	u := GPUCameraUniform{
		ViewPosition: [4]float32{1, 2, 3, 1},
	}
	u.ViewProj[0] = 9

	if u.Size() != 80 {
		t.Fatalf("size: got %d, want 80", u.Size())
	}

	buf := u.Marshal()
	if len(buf) != 80 {
		t.Fatalf("marshal length: got %d, want 80", len(buf))
	}

	// Eye position occupies the first 16 bytes, the matrix starts at offset 16.
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])); got != 1 {
		t.Errorf("position x: got %f, want 1", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[12:])); got != 1 {
		t.Errorf("position w: got %f, want 1", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[16:])); got != 9 {
		t.Errorf("matrix[0]: got %f, want 9", got)
	}
}

func TestOrbitControllerYaw(t *testing.T) {
	c := NewCamera(WithEye(0, 0, 5))
	ctrl := NewOrbitController(c)

	ctrl.KeyDown(common.KeyA)
	ctrl.Update(0.1)
	ctrl.KeyUp(common.KeyA)

	eye := c.Eye()
	if eye == [3]float32{0, 0, 5} {
		t.Error("held yaw key did not move the eye")
	}

	// Orbit preserves the distance to the target.
	dist := math.Sqrt(float64(eye[0]*eye[0] + eye[1]*eye[1] + eye[2]*eye[2]))
	if math.Abs(dist-5) > 1e-4 {
		t.Errorf("orbit changed distance: got %f, want 5", dist)
	}
}

func TestOrbitControllerZoomClamp(t *testing.T) {
	c := NewCamera(WithEye(0, 0, 1))
	ctrl := NewOrbitController(c)

	for i := 0; i < 100; i++ {
		ctrl.Scroll(1)
	}
	ctrl.Update(0.016)

	eye := c.Eye()
	dist := math.Sqrt(float64(eye[0]*eye[0] + eye[1]*eye[1] + eye[2]*eye[2]))
	if dist < 0.09 {
		t.Errorf("zoom went through the target: distance %f", dist)
	}
}

func TestOrbitControllerIgnoresUnboundKeys(t *testing.T) {
	c := NewCamera(WithEye(0, 0, 5))
	ctrl := NewOrbitController(c)

	ctrl.KeyDown(common.KeyQ)
	ctrl.Update(0.1)

	if c.Eye() != [3]float32{0, 0, 5} {
		t.Error("unbound key moved the camera")
	}
}
