package qr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDefaults(t *testing.T) {
	img, err := Render(RenderConfig{Content: "https://example.com"})
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, bounds.Dx(), bounds.Dy(), "image must be square")
	// 10px boxes with a 4-module border on each side.
	assert.GreaterOrEqual(t, bounds.Dx(), (21+8)*10)

	// Quiet zone corner is background.
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, toRGBA(img.At(0, 0)))
}

func TestRenderEmptyContent(t *testing.T) {
	_, err := Render(RenderConfig{})
	assert.Error(t, err)
}

func TestRenderBadErrorCorrection(t *testing.T) {
	_, err := Render(RenderConfig{Content: "x", ErrorCorrection: "Z"})
	assert.Error(t, err)
}

func TestRenderStyles(t *testing.T) {
	for _, style := range []Style{StyleSquare, StyleGapped, StyleCircle, StyleRounded} {
		img, err := Render(RenderConfig{Content: "styled", Style: style, BoxSize: 4, Border: 1})
		require.NoError(t, err, "style %s", style)
		assert.NotNil(t, img)
	}
}

func TestRenderWithLogo(t *testing.T) {
	logo := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			logo.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}

	img, err := Render(RenderConfig{Content: "with logo", Logo: logo, LogoRotation: 45})
	require.NoError(t, err)

	// The image centre is covered by the logo.
	centre := img.Bounds().Dx() / 2
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, toRGBA(img.At(centre, centre)))
}

func TestRenderLogoScaleOutOfRange(t *testing.T) {
	logo := image.NewRGBA(image.Rect(0, 0, 8, 8))

	_, err := Render(RenderConfig{Content: "x", Logo: logo, LogoScale: 0.9})
	assert.Error(t, err)
}

func TestModulePainterGradient(t *testing.T) {
	paint := modulePainter(RenderConfig{
		GradientCenter: color.RGBA{0, 0, 0, 255},
		GradientEdge:   color.RGBA{200, 0, 200, 255},
	}, 100)

	centre := toRGBA(paint(50, 50))
	corner := toRGBA(paint(0, 0))

	assert.Equal(t, uint8(0), centre.R)
	assert.Greater(t, corner.R, centre.R, "corner must lean toward the edge color")
}

func TestModulePainterSolidFallback(t *testing.T) {
	paint := modulePainter(RenderConfig{Foreground: color.RGBA{1, 2, 3, 255}}, 100)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, toRGBA(paint(10, 90)))
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(RenderConfig{Content: "png bytes", BoxSize: 4})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestEncodeJPEG(t *testing.T) {
	data, err := EncodeJPEG(RenderConfig{Content: "jpeg bytes", BoxSize: 4})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#000000", want: color.RGBA{0, 0, 0, 255}},
		{in: "#FFFFFF", want: color.RGBA{255, 255, 255, 255}},
		{in: "4A044E", want: color.RGBA{0x4a, 0x04, 0x4e, 255}},
		{in: "#abc", want: color.RGBA{0xaa, 0xbb, 0xcc, 255}},
		{in: " #102030 ", want: color.RGBA{0x10, 0x20, 0x30, 255}},
		{in: "#12345", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r / 257), uint8(g / 257), uint8(b / 257), uint8(a / 257)}
}
