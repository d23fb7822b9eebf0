package common

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func matricesClose(t *testing.T, got, want []float32) {
	t.Helper()
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > epsilon {
			t.Fatalf("element %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 7
	}
	Identity(m)

	want := []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	matricesClose(t, m, want)
}

func TestMul4Identity(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)

	m := make([]float32, 16)
	BuildModelMatrix(m, 1, 2, 3, 0.4, 0.5, 0.6, 1, 2, 3)

	out := make([]float32, 16)
	Mul4(out, id, m)
	matricesClose(t, out, m)

	Mul4(out, m, id)
	matricesClose(t, out, m)
}

func TestMul4Aliasing(t *testing.T) {
	a := make([]float32, 16)
	BuildModelMatrix(a, 1, 0, 0, 0, 0.5, 0, 1, 1, 1)
	b := make([]float32, 16)
	BuildModelMatrix(b, 0, 2, 0, 0.3, 0, 0, 2, 2, 2)

	want := make([]float32, 16)
	Mul4(want, a, b)

	// Writing into one of the operands must not corrupt the product.
	Mul4(a, a, b)
	matricesClose(t, a, want)
}

func TestMulVec4Translation(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 10, 20, 30, 0, 0, 0, 1, 1, 1)

	got := MulVec4(m, [4]float32{1, 1, 1, 1})
	want := [4]float32{11, 21, 31, 1}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > epsilon {
			t.Fatalf("component %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestVectorHelpers(t *testing.T) {
	a := [3]float32{1, 0, 0}
	b := [3]float32{0, 1, 0}

	if got := Cross3(a, b); got != [3]float32{0, 0, 1} {
		t.Errorf("Cross3: got %v, want (0,0,1)", got)
	}
	if got := Dot3(a, b); got != 0 {
		t.Errorf("Dot3 of orthogonal vectors: got %f, want 0", got)
	}
	if got := Sub3([3]float32{3, 2, 1}, [3]float32{1, 1, 1}); got != [3]float32{2, 1, 0} {
		t.Errorf("Sub3: got %v", got)
	}
	if got := Add3(a, b); got != [3]float32{1, 1, 0} {
		t.Errorf("Add3: got %v", got)
	}
	if got := Scale3(b, 3); got != [3]float32{0, 3, 0} {
		t.Errorf("Scale3: got %v", got)
	}
}

func TestNormalize3(t *testing.T) {
	v := Normalize3([3]float32{3, 0, 4})
	if math.Abs(float64(v[0]-0.6)) > epsilon || math.Abs(float64(v[2]-0.8)) > epsilon {
		t.Errorf("got %v, want (0.6, 0, 0.8)", v)
	}

	zero := Normalize3([3]float32{})
	if zero != [3]float32{} {
		t.Errorf("zero vector should pass through unchanged, got %v", zero)
	}
}

func TestInvert4RoundTrip(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 1, -2, 3, 0.2, 1.1, -0.4, 1.5, 2, 0.5)

	inv := make([]float32, 16)
	if !Invert4(inv, m) {
		t.Fatal("invertible matrix reported singular")
	}

	product := make([]float32, 16)
	Mul4(product, m, inv)

	id := make([]float32, 16)
	Identity(id)
	matricesClose(t, product, id)
}

func TestInvert4Singular(t *testing.T) {
	m := make([]float32, 16) // all zero, det = 0
	out := make([]float32, 16)
	out[0] = 42
	if Invert4(out, m) {
		t.Fatal("singular matrix reported invertible")
	}
	if out[0] != 42 {
		t.Error("output modified for singular input")
	}
}

func TestNormalMatrix3NonUniformScale(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 0, 0, 0, 0, 0, 0, 2, 1, 1)

	n := make([]float32, 9)
	if !NormalMatrix3(n, m) {
		t.Fatal("non-singular model reported singular")
	}

	// A normal on a plane tilted across the scaled axis must stay
	// perpendicular to the transformed surface tangent.
	normal := Normalize3(Mul3Vec3(n, [3]float32{1, 1, 0}))
	tangent := Mul3Vec3([]float32{m[0], m[1], m[2], m[4], m[5], m[6], m[8], m[9], m[10]}, [3]float32{1, -1, 0})
	if d := Dot3(normal, tangent); math.Abs(float64(d)) > epsilon {
		t.Errorf("transformed normal not perpendicular to surface: dot = %f", d)
	}
}

func TestNormalMatrix3Singular(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 0, 0, 0, 0, 0, 0, 0, 1, 1) // zero scale on X

	n := make([]float32, 9)
	if NormalMatrix3(n, m) {
		t.Fatal("singular model block reported invertible")
	}
}

func TestPerspectiveClipSpace(t *testing.T) {
	p := make([]float32, 16)
	Perspective(p, float32(math.Pi/2), 1, 1, 100)

	// Points on the near plane map to depth 0, points on the far plane to 1.
	near := MulVec4(p, [4]float32{0, 0, -1, 1})
	if math.Abs(float64(near[2]/near[3])) > epsilon {
		t.Errorf("near plane depth: got %f, want 0", near[2]/near[3])
	}
	far := MulVec4(p, [4]float32{0, 0, -100, 1})
	if math.Abs(float64(far[2]/far[3]-1)) > epsilon {
		t.Errorf("far plane depth: got %f, want 1", far[2]/far[3])
	}
}

func TestLookAtTransformsTargetToNegativeZ(t *testing.T) {
	v := make([]float32, 16)
	LookAt(v, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	origin := MulVec4(v, [4]float32{0, 0, 0, 1})
	want := [4]float32{0, 0, -5, 1}
	for i := range want {
		if math.Abs(float64(origin[i]-want[i])) > epsilon {
			t.Fatalf("component %d: got %f, want %f", i, origin[i], want[i])
		}
	}
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1, 2}
	b := SliceToBytes(data)
	if len(b) != 8 {
		t.Fatalf("got %d bytes, want 8", len(b))
	}
	if b = SliceToBytes([]float32(nil)); b != nil {
		t.Error("empty slice should produce nil")
	}
}
