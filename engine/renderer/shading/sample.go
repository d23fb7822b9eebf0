package shading

import (
	"github.com/aaronboult/lumen-go/common"
)

// SampleTexture fetches the nearest texel of an RGBA8 texture at the given
// texture coordinate with repeat addressing on both axes, returning the texel
// scaled to [0,1] per channel. The texture data must be tightly packed
// RGBA8 rows.
//
// Parameters:
//   - tex: the staged texture data
//   - u, v: the texture coordinate
//
// Returns:
//   - [4]float32: the sampled texel in [0,1]
func SampleTexture(tex *common.TextureStagingData, u, v float32) [4]float32 {
	if tex == nil || tex.Width == 0 || tex.Height == 0 {
		return [4]float32{}
	}

	x := wrapCoord(u, tex.Width)
	y := wrapCoord(v, tex.Height)

	idx := (y*tex.Width + x) * 4
	if int(idx)+3 >= len(tex.Pixels) {
		return [4]float32{}
	}

	return [4]float32{
		float32(tex.Pixels[idx]) / 255,
		float32(tex.Pixels[idx+1]) / 255,
		float32(tex.Pixels[idx+2]) / 255,
		float32(tex.Pixels[idx+3]) / 255,
	}
}

// wrapCoord maps a texture coordinate to a texel index with repeat
// addressing: the fractional part of the coordinate is taken modulo 1 with
// negative values folded back into [0,1), then scaled to the axis extent.
func wrapCoord(c float32, extent uint32) uint32 {
	f := c - float32(int32(c))
	if f < 0 {
		f += 1
	}
	i := uint32(f * float32(extent))
	if i >= extent {
		i = extent - 1
	}
	return i
}

// FragmentBasic samples the diffuse texture and runs the basic fragment
// stage for one fragment.
//
// Parameters:
//   - v: the interpolated basic vertex stage outputs
//   - diffuse: the staged diffuse texture
//
// Returns:
//   - [4]float32: the output colour
func FragmentBasic(v BasicVarying, diffuse *common.TextureStagingData) [4]float32 {
	return ShadeBasic(SampleTexture(diffuse, v.TexCoords[0], v.TexCoords[1]))
}

// FragmentLit samples the diffuse and normal textures and runs the lit
// fragment stage for one fragment.
//
// Parameters:
//   - v: the interpolated lit vertex stage outputs
//   - diffuse: the staged diffuse texture
//   - normalMap: the staged normal-map texture
//   - lightColor: the light's rgb colour
//   - p: the Blinn-Phong tuning parameters
//
// Returns:
//   - [4]float32: the shaded colour
func FragmentLit(v LitVarying, diffuse, normalMap *common.TextureStagingData, lightColor [3]float32, p LightingParams) [4]float32 {
	d := SampleTexture(diffuse, v.TexCoords[0], v.TexCoords[1])
	n := SampleTexture(normalMap, v.TexCoords[0], v.TexCoords[1])
	return ShadeLit(v, d, n, lightColor, p)
}
