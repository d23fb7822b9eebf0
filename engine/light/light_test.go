package light

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestLightDefaults(t *testing.T) {
	l := NewLight()

	if got := l.Position(); got != [3]float32{2, 2, 2} {
		t.Errorf("position: got %v, want (2,2,2)", got)
	}
	if got := l.Color(); got != [3]float32{1, 1, 1} {
		t.Errorf("color: got %v, want white", got)
	}
}

func TestLightSetters(t *testing.T) {
	l := NewLight(WithPosition(1, 2, 3), WithColor(0.5, 0.25, 0))

	if got := l.Position(); got != [3]float32{1, 2, 3} {
		t.Errorf("position: got %v, want (1,2,3)", got)
	}

	l.SetPosition(-4, 0, 4)
	l.SetColor(1, 0, 0)
	u := l.Uniform()
	if u.Position != [3]float32{-4, 0, 4} {
		t.Errorf("uniform position: got %v, want (-4,0,4)", u.Position)
	}
	if u.Color != [3]float32{1, 0, 0} {
		t.Errorf("uniform color: got %v, want red", u.Color)
	}
}

func TestGPULightUniformMarshal(t *testing.T) {
	u := GPULightUniform{
		Position: [3]float32{1, 2, 3},
		Color:    [3]float32{4, 5, 6},
	}

	if u.Size() != 32 {
		t.Fatalf("size: got %d, want 32", u.Size())
	}

	buf := u.Marshal()
	if len(buf) != 32 {
		t.Fatalf("marshal length: got %d, want 32", len(buf))
	}

	// Position fills bytes 0-11, color starts at offset 16 after padding.
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])); got != 3 {
		t.Errorf("position z: got %f, want 3", got)
	}
	if got := binary.LittleEndian.Uint32(buf[12:]); got != 0 {
		t.Errorf("position padding: got %#x, want 0", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[16:])); got != 4 {
		t.Errorf("color r: got %f, want 4", got)
	}
	if got := binary.LittleEndian.Uint32(buf[28:]); got != 0 {
		t.Errorf("color padding: got %#x, want 0", got)
	}
}
