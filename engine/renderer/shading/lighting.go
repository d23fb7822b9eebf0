package shading

import (
	"math"

	"github.com/aaronboult/lumen-go/common"
)

// LightingParams tunes the lit fragment stage's Blinn-Phong terms.
type LightingParams struct {
	// AmbientStrength scales the light colour into the constant ambient term.
	AmbientStrength float32

	// Shininess is the specular exponent applied to the half-vector dot
	// product.
	Shininess float32
}

// DefaultLightingParams returns the stock Blinn-Phong tuning: ambient
// strength 0.1 and shininess 32.
//
// Returns:
//   - LightingParams: the default parameter set
func DefaultLightingParams() LightingParams {
	return LightingParams{
		AmbientStrength: 0.1,
		Shininess:       32,
	}
}

// DecodeNormal maps a normal-map texel from its [0,1] colour encoding to a
// [-1,1] direction: n = rgb * 2 - 1. The result is intentionally not
// renormalized; filtering-induced length drift below unit length is accepted.
//
// Parameters:
//   - sample: the sampled normal-map texel (rgba, alpha ignored)
//
// Returns:
//   - [3]float32: the decoded tangent-space normal
func DecodeNormal(sample [4]float32) [3]float32 {
	return [3]float32{
		sample[0]*2 - 1,
		sample[1]*2 - 1,
		sample[2]*2 - 1,
	}
}

// ShadeBasic runs the basic pipeline's fragment stage: the sampled diffuse
// texel is returned unmodified, alpha included.
//
// Parameters:
//   - diffuse: the sampled diffuse texel
//
// Returns:
//   - [4]float32: the output colour
func ShadeBasic(diffuse [4]float32) [4]float32 {
	return diffuse
}

// ShadeLit runs the lit pipeline's fragment stage: tangent-space Blinn-Phong
// with ambient, diffuse, and specular terms summed and modulated by the
// diffuse texel's rgb. The output is not clamped, so bright highlights may
// exceed 1.0; alpha is passed through from the diffuse texel untouched.
//
// Parameters:
//   - v: the interpolated vertex stage outputs
//   - diffuse: the sampled diffuse texel
//   - normalSample: the sampled normal-map texel
//   - lightColor: the light's rgb colour
//   - p: the Blinn-Phong tuning parameters
//
// Returns:
//   - [4]float32: the shaded colour, rgb unclamped, alpha from diffuse
func ShadeLit(v LitVarying, diffuse, normalSample [4]float32, lightColor [3]float32, p LightingParams) [4]float32 {
	normal := DecodeNormal(normalSample)

	lightDir := common.Normalize3(common.Sub3(v.TangentLightPosition, v.TangentPosition))
	viewDir := common.Normalize3(common.Sub3(v.TangentViewPosition, v.TangentPosition))
	halfDir := common.Normalize3(common.Add3(lightDir, viewDir))

	diffuseStrength := max32(common.Dot3(normal, lightDir), 0)
	specularStrength := float32(math.Pow(float64(max32(common.Dot3(normal, halfDir), 0)), float64(p.Shininess)))

	var rgb [3]float32
	for i := 0; i < 3; i++ {
		ambient := p.AmbientStrength * lightColor[i]
		diff := diffuseStrength * lightColor[i]
		spec := specularStrength * lightColor[i]
		rgb[i] = (ambient + diff + spec) * diffuse[i]
	}

	return [4]float32{rgb[0], rgb[1], rgb[2], diffuse[3]}
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
