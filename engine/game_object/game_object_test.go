package game_object

import (
	"math"
	"testing"

	"github.com/aaronboult/lumen-go/common"
	"github.com/aaronboult/lumen-go/engine/model"
	"github.com/aaronboult/lumen-go/engine/renderer/material"
)

func testMaterial(t *testing.T, lit bool) material.Material {
	t.Helper()
	tex := &common.SourcedTexture{Pixels: []byte{255, 255, 255, 255}, Width: 1, Height: 1}
	opts := []material.MaterialBuilderOption{material.WithDiffuseTexture(tex)}
	if lit {
		normal := &common.SourcedTexture{Pixels: []byte{128, 128, 255, 255}, Width: 1, Height: 1}
		opts = append(opts, material.WithNormalTexture(normal))
	}
	return material.NewMaterial(opts...)
}

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()

	if !obj.Enabled() {
		t.Error("objects should start enabled")
	}
	if obj.InstanceCount() != 0 {
		t.Errorf("instance count: got %d, want 0", obj.InstanceCount())
	}

	obj.SetEnabled(false)
	if obj.Enabled() {
		t.Error("SetEnabled(false) had no effect")
	}
}

func TestInstanceAccess(t *testing.T) {
	obj := NewGameObject(WithInstances([]model.Instance{
		model.NewInstance(1, 0, 0),
		model.NewInstance(2, 0, 0),
	}))

	inst, ok := obj.Instance(1)
	if !ok || inst.Position != [3]float32{2, 0, 0} {
		t.Errorf("Instance(1): got %v, ok=%v", inst.Position, ok)
	}

	if _, ok := obj.Instance(2); ok {
		t.Error("out-of-range index reported ok")
	}
	if _, ok := obj.Instance(-1); ok {
		t.Error("negative index reported ok")
	}

	inst.Position = [3]float32{9, 9, 9}
	obj.SetInstance(1, inst)
	got, _ := obj.Instance(1)
	if got.Position != [3]float32{9, 9, 9} {
		t.Errorf("SetInstance did not stick: got %v", got.Position)
	}

	obj.SetInstance(5, inst) // ignored, no panic
}

func TestAdvance(t *testing.T) {
	obj := NewGameObject(
		WithInstances([]model.Instance{model.NewInstance(0, 0, 0)}),
		WithRotationSpeed(0, 2, 0),
	)

	obj.Advance(0.5)
	inst, _ := obj.Instance(0)
	if math.Abs(float64(inst.Rotation[1]-1)) > 1e-6 {
		t.Errorf("rotation after advance: got %f, want 1", inst.Rotation[1])
	}
	if inst.Rotation[0] != 0 || inst.Rotation[2] != 0 {
		t.Error("advance rotated an axis with zero speed")
	}
}

func TestAdvanceZeroSpeedIsNoOp(t *testing.T) {
	obj := NewGameObject(WithInstances([]model.Instance{model.NewInstance(0, 0, 0)}))

	obj.Advance(10)
	inst, _ := obj.Instance(0)
	if inst.Rotation != [3]float32{} {
		t.Errorf("zero speed still rotated: got %v", inst.Rotation)
	}
}

func TestMarshalInstancesStride(t *testing.T) {
	instances := []model.Instance{
		model.NewInstance(0, 0, 0),
		model.NewInstance(1, 0, 0),
		model.NewInstance(2, 0, 0),
	}

	basic := NewGameObject(
		WithMaterial(testMaterial(t, false)),
		WithInstances(instances),
	)
	if got := len(basic.MarshalInstances()); got != 3*64 {
		t.Errorf("basic instance bytes: got %d, want %d", got, 3*64)
	}

	lit := NewGameObject(
		WithMaterial(testMaterial(t, true)),
		WithInstances(instances),
	)
	if got := len(lit.MarshalInstances()); got != 3*100 {
		t.Errorf("lit instance bytes: got %d, want %d", got, 3*100)
	}
}

func TestMarshalInstancesWithoutMaterialDefaultsToBasic(t *testing.T) {
	obj := NewGameObject(WithInstances([]model.Instance{model.NewInstance(0, 0, 0)}))
	if got := len(obj.MarshalInstances()); got != 64 {
		t.Errorf("got %d bytes, want 64", got)
	}
}
