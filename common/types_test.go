package common

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeRawPixels(t *testing.T) {
	tex := &SourcedTexture{
		Name:   "raw",
		Pixels: []byte{1, 2, 3, 4, 5, 6, 7, 8},
		Width:  2,
		Height: 1,
	}

	pixels, w, h, err := tex.Decode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 2 || h != 1 {
		t.Errorf("dimensions: got %dx%d, want 2x1", w, h)
	}
	if !bytes.Equal(pixels, tex.Pixels) {
		t.Error("raw pixels were not returned as-is")
	}
}

func TestDecodeRawPixelsValidation(t *testing.T) {
	tests := []struct {
		name string
		tex  SourcedTexture
	}{
		{name: "missing dimensions", tex: SourcedTexture{Pixels: []byte{0, 0, 0, 255}}},
		{name: "length mismatch", tex: SourcedTexture{Pixels: []byte{0, 0, 0}, Width: 1, Height: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, err := tt.tex.Decode(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeInMemoryPNG(t *testing.T) {
	tex := &SourcedTexture{
		Name: "encoded",
		Data: encodePNG(t, 4, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255}),
	}

	pixels, w, h, err := tex.Decode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 4 || h != 2 {
		t.Errorf("dimensions: got %dx%d, want 4x2", w, h)
	}
	if len(pixels) != 4*2*4 {
		t.Fatalf("pixel bytes: got %d, want 32", len(pixels))
	}
	if pixels[0] != 10 || pixels[1] != 20 || pixels[2] != 30 || pixels[3] != 255 {
		t.Errorf("first pixel: got %v", pixels[:4])
	}
	if tex.Width != 4 || tex.Height != 2 {
		t.Error("decode did not record dimensions on the texture")
	}
}

func TestDecodeEmptyTexture(t *testing.T) {
	var nilTex *SourcedTexture
	if _, _, _, err := nilTex.Decode(); err == nil {
		t.Error("nil texture should error")
	}

	empty := &SourcedTexture{Name: "empty"}
	if _, _, _, err := empty.Decode(); err == nil {
		t.Error("texture with no source should error")
	}
}

func TestStaging(t *testing.T) {
	tex := &SourcedTexture{
		Name:   "raw",
		Pixels: []byte{9, 9, 9, 255},
		Width:  1,
		Height: 1,
	}

	staging, err := tex.Staging()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if staging.Width != 1 || staging.Height != 1 {
		t.Errorf("staging dimensions: got %dx%d, want 1x1", staging.Width, staging.Height)
	}
	if !bytes.Equal(staging.Pixels, tex.Pixels) {
		t.Error("staging pixels do not match the source")
	}
}
