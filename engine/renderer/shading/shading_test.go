package shading

import (
	"math"
	"testing"

	"github.com/aaronboult/lumen-go/common"
	"github.com/aaronboult/lumen-go/engine/camera"
	"github.com/aaronboult/lumen-go/engine/light"
	"github.com/aaronboult/lumen-go/engine/model"
)

const tolerance = 1e-5

func identityCamera() camera.GPUCameraUniform {
	var u camera.GPUCameraUniform
	u.ViewPosition = [4]float32{0, 0, 0, 1}
	common.Identity(u.ViewProj[:])
	return u
}

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) <= tolerance
}

func TestMat4FromColumns(t *testing.T) {
	inst := model.NewInstance(3, -1, 7)
	inst.Rotation = [3]float32{0.3, 1.1, -0.4}
	inst.Scale = [3]float32{2, 0.5, 1.5}

	want := inst.ModelMatrix()
	raw := inst.Raw()
	got := Mat4FromColumns(raw.ModelCols[0], raw.ModelCols[1], raw.ModelCols[2], raw.ModelCols[3])

	for i := range want {
		if !approxEqual(got[i], want[i]) {
			t.Errorf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMat3FromColumns(t *testing.T) {
	cols := [3][3]float32{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	got := Mat3FromColumns(cols[0], cols[1], cols[2])
	want := [9]float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTransformBasic(t *testing.T) {
	tests := []struct {
		name     string
		vertex   model.GPUVertex
		instance model.Instance
		wantClip [4]float32
	}{
		{
			name:     "identity transform passes position through",
			vertex:   model.GPUVertex{Position: [3]float32{1, 2, 3}, TexCoords: [2]float32{0.25, 0.75}},
			instance: model.NewInstance(0, 0, 0),
			wantClip: [4]float32{1, 2, 3, 1},
		},
		{
			name:     "origin vertex lands at instance translation",
			vertex:   model.GPUVertex{},
			instance: model.NewInstance(4, -2, 6),
			wantClip: [4]float32{4, -2, 6, 1},
		},
		{
			name: "scale is applied before translation",
			vertex: model.GPUVertex{
				Position: [3]float32{1, 1, 1},
			},
			instance: model.Instance{
				Position: [3]float32{10, 0, 0},
				Scale:    [3]float32{2, 3, 4},
			},
			wantClip: [4]float32{12, 3, 4, 1},
		},
	}

	cam := identityCamera()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := TransformBasic(tt.vertex, tt.instance.Raw(), cam)
			for i := range tt.wantClip {
				if !approxEqual(out.ClipPosition[i], tt.wantClip[i]) {
					t.Errorf("clip[%d]: got %v, want %v", i, out.ClipPosition[i], tt.wantClip[i])
				}
			}
			if out.TexCoords != tt.vertex.TexCoords {
				t.Errorf("tex coords: got %v, want %v", out.TexCoords, tt.vertex.TexCoords)
			}
		})
	}
}

func TestTransformBasicMatchesCameraProjection(t *testing.T) {
	cam := camera.NewCamera(
		camera.WithEye(0, 1, 2),
		camera.WithAspect(16.0/9.0),
	)
	u := cam.Uniform()

	vertex := model.GPUVertex{Position: [3]float32{0.5, -0.5, 0}}
	inst := model.NewInstance(0, 0, -1)

	out := TransformBasic(vertex, inst.Raw(), u)

	m := inst.ModelMatrix()
	world := common.MulVec4(m[:], [4]float32{0.5, -0.5, 0, 1})
	want := common.MulVec4(u.ViewProj[:], world)

	for i := range want {
		if !approxEqual(out.ClipPosition[i], want[i]) {
			t.Errorf("clip[%d]: got %v, want %v", i, out.ClipPosition[i], want[i])
		}
	}
}

func TestTransformLitTangentBasisUnitLength(t *testing.T) {
	tests := []struct {
		name     string
		instance model.Instance
	}{
		{
			name:     "identity transform",
			instance: model.NewInstance(0, 0, 0),
		},
		{
			name: "non-uniform scale",
			instance: model.Instance{
				Position: [3]float32{1, 2, 3},
				Scale:    [3]float32{3, 0.25, 7},
			},
		},
		{
			name: "rotated and scaled",
			instance: model.Instance{
				Rotation: [3]float32{0.5, 1.2, -0.8},
				Scale:    [3]float32{2, 2, 0.5},
			},
		},
	}

	vertex := model.GPULitVertex{
		Position:  [3]float32{0, 0, 0},
		Normal:    [3]float32{0, 0, 1},
		Tangent:   [3]float32{1, 0, 0},
		Bitangent: [3]float32{0, 1, 0},
	}
	cam := identityCamera()
	lt := light.GPULightUniform{Position: [3]float32{2, 2, 2}, Color: [3]float32{1, 1, 1}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.instance.RawLit()
			nm := Mat3FromColumns(raw.NormalCols[0], raw.NormalCols[1], raw.NormalCols[2])

			for _, axis := range [][3]float32{vertex.Normal, vertex.Tangent, vertex.Bitangent} {
				world := common.Normalize3(common.Mul3Vec3(nm[:], axis))
				length := float32(math.Sqrt(float64(common.Dot3(world, world))))
				if math.Abs(float64(length)-1) > tolerance {
					t.Errorf("axis %v: world length %v, want 1", axis, length)
				}
			}

			// Exercise the full stage too; projecting a point through the
			// basis must be finite and deterministic.
			out := TransformLit(vertex, raw, cam, lt)
			again := TransformLit(vertex, raw, cam, lt)
			if out != again {
				t.Errorf("stage is not deterministic: %v vs %v", out, again)
			}
		})
	}
}

func TestTransformLitNormalMatrixCountersNonUniformScale(t *testing.T) {
	// Scaling a flat surface along X must leave its +Z normal pointing at +Z.
	inst := model.Instance{Scale: [3]float32{4, 1, 1}}
	raw := inst.RawLit()
	nm := Mat3FromColumns(raw.NormalCols[0], raw.NormalCols[1], raw.NormalCols[2])

	world := common.Normalize3(common.Mul3Vec3(nm[:], [3]float32{0, 0, 1}))
	want := [3]float32{0, 0, 1}
	for i := range want {
		if !approxEqual(world[i], want[i]) {
			t.Errorf("normal[%d]: got %v, want %v", i, world[i], want[i])
		}
	}
}

func TestDecodeNormal(t *testing.T) {
	tests := []struct {
		name   string
		sample [4]float32
		want   [3]float32
	}{
		{
			name:   "mid grey decodes to zero vector",
			sample: [4]float32{0.5, 0.5, 0.5, 1},
			want:   [3]float32{0, 0, 0},
		},
		{
			name:   "flat normal map texel decodes to +Z",
			sample: [4]float32{0.5, 0.5, 1, 1},
			want:   [3]float32{0, 0, 1},
		},
		{
			name:   "channel extremes decode to axis extremes",
			sample: [4]float32{0, 1, 0.5, 1},
			want:   [3]float32{-1, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeNormal(tt.sample)
			for i := range tt.want {
				if !approxEqual(got[i], tt.want[i]) {
					t.Errorf("component %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestShadeBasicPassesTexelThrough(t *testing.T) {
	texel := [4]float32{0.2, 0.9, 1.4, 0.35}
	if got := ShadeBasic(texel); got != texel {
		t.Errorf("got %v, want %v", got, texel)
	}
}

// litVaryingFacing builds interpolants for a fragment at the tangent-space
// origin with the light and eye both along +Z.
func litVaryingFacing() LitVarying {
	return LitVarying{
		TangentPosition:      [3]float32{0, 0, 0},
		TangentLightPosition: [3]float32{0, 0, 5},
		TangentViewPosition:  [3]float32{0, 0, 5},
	}
}

func TestShadeLit(t *testing.T) {
	flatNormal := [4]float32{0.5, 0.5, 1, 1}
	white := [3]float32{1, 1, 1}
	params := DefaultLightingParams()

	t.Run("output is never negative", func(t *testing.T) {
		v := litVaryingFacing()
		// Light directly behind the surface.
		v.TangentLightPosition = [3]float32{0, 0, -5}
		out := ShadeLit(v, [4]float32{1, 1, 1, 1}, flatNormal, white, params)
		for i, c := range out {
			if c < 0 {
				t.Errorf("channel %d negative: %v", i, c)
			}
		}
	})

	t.Run("back-facing light leaves only ambient", func(t *testing.T) {
		v := litVaryingFacing()
		v.TangentLightPosition = [3]float32{0, 0, -5}
		out := ShadeLit(v, [4]float32{1, 1, 1, 1}, flatNormal, white, params)
		for i := 0; i < 3; i++ {
			if !approxEqual(out[i], params.AmbientStrength) {
				t.Errorf("channel %d: got %v, want ambient %v", i, out[i], params.AmbientStrength)
			}
		}
	})

	t.Run("head-on light is unclamped", func(t *testing.T) {
		// Normal, light and eye all aligned: ambient 0.1 + diffuse 1 +
		// specular 1 = 2.1 on a white texel.
		out := ShadeLit(litVaryingFacing(), [4]float32{1, 1, 1, 1}, flatNormal, white, params)
		for i := 0; i < 3; i++ {
			if !approxEqual(out[i], 2.1) {
				t.Errorf("channel %d: got %v, want 2.1", i, out[i])
			}
		}
	})

	t.Run("alpha passes through from diffuse texel", func(t *testing.T) {
		out := ShadeLit(litVaryingFacing(), [4]float32{1, 1, 1, 0.42}, flatNormal, white, params)
		if !approxEqual(out[3], 0.42) {
			t.Errorf("alpha: got %v, want 0.42", out[3])
		}
	})

	t.Run("diffuse texel modulates the lit colour", func(t *testing.T) {
		texel := [4]float32{0.5, 0.25, 0, 1}
		out := ShadeLit(litVaryingFacing(), texel, flatNormal, white, params)
		want := [3]float32{2.1 * 0.5, 2.1 * 0.25, 0}
		for i := range want {
			if !approxEqual(out[i], want[i]) {
				t.Errorf("channel %d: got %v, want %v", i, out[i], want[i])
			}
		}
	})

	t.Run("shininess sharpens the specular falloff", func(t *testing.T) {
		v := litVaryingFacing()
		// Eye off to the side so the half vector no longer matches the normal.
		v.TangentViewPosition = [3]float32{4, 0, 3}
		soft := ShadeLit(v, [4]float32{1, 1, 1, 1}, flatNormal, white, LightingParams{AmbientStrength: 0.1, Shininess: 4})
		sharp := ShadeLit(v, [4]float32{1, 1, 1, 1}, flatNormal, white, LightingParams{AmbientStrength: 0.1, Shininess: 64})
		if sharp[0] >= soft[0] {
			t.Errorf("higher shininess should dim an off-peak highlight: 64 gave %v, 4 gave %v", sharp[0], soft[0])
		}
	})
}

func TestSampleTexture(t *testing.T) {
	// 2x2 texture: red, green / blue, white.
	tex := &common.TextureStagingData{
		Width:  2,
		Height: 2,
		Pixels: []byte{
			255, 0, 0, 255, 0, 255, 0, 255,
			0, 0, 255, 255, 255, 255, 255, 255,
		},
	}

	tests := []struct {
		name string
		u, v float32
		want [4]float32
	}{
		{name: "top left", u: 0, v: 0, want: [4]float32{1, 0, 0, 1}},
		{name: "top right", u: 0.75, v: 0, want: [4]float32{0, 1, 0, 1}},
		{name: "bottom left", u: 0, v: 0.75, want: [4]float32{0, 0, 1, 1}},
		{name: "repeat wraps past one", u: 1.75, v: 0, want: [4]float32{0, 1, 0, 1}},
		{name: "repeat lands on the left texel", u: 1.25, v: 0, want: [4]float32{1, 0, 0, 1}},
		{name: "repeat folds negative", u: -0.25, v: 0, want: [4]float32{0, 1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleTexture(tex, tt.u, tt.v)
			for i := range tt.want {
				if !approxEqual(got[i], tt.want[i]) {
					t.Errorf("channel %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}

	t.Run("nil texture samples black", func(t *testing.T) {
		if got := SampleTexture(nil, 0.5, 0.5); got != ([4]float32{}) {
			t.Errorf("got %v, want zero texel", got)
		}
	})
}
