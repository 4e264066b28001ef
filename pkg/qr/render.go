/*
Package qr renders QR code images: module styles, solid or radial
gradient coloring, quiet zone and an optional centred logo overlay.

 skip2/go-qrcode produces the module matrix, gg draws it, nfnt/resize
 scales the logo.
*/
package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	qrcode "github.com/skip2/go-qrcode"
)

// Style selects how individual modules are drawn.
type Style string

const (
	StyleSquare  Style = "square"
	StyleGapped  Style = "gapped"
	StyleCircle  Style = "circle"
	StyleRounded Style = "rounded"
)

const (
	defaultBoxSize   = 10
	defaultBorder    = 4
	defaultLogoScale = 0.25
	maxLogoScale     = 0.4
	jpegQuality      = 95
)

// RenderConfig describes one image. Zero values fall back to the
// application defaults (box 10, border 4, level H, square, black on
// white).
type RenderConfig struct {
	Content         string
	BoxSize         int // pixels per module
	Border          int // quiet zone, in modules
	ErrorCorrection string // L, M, Q or H

	Style      Style
	Foreground color.Color
	Background color.Color

	// When both gradient colors are set the foreground is a radial
	// gradient from the image centre out to the corners.
	GradientCenter color.Color
	GradientEdge   color.Color

	Logo         image.Image
	LogoScale    float64 // fraction of the image width
	LogoRotation float64 // degrees, clockwise
}

// Render produces the image for a config. High error correction is the
// default so a centred logo leaves the code scannable.
func Render(c RenderConfig) (image.Image, error) {
	if c.Content == "" {
		return nil, fmt.Errorf("nothing to encode")
	}

	level, err := recoveryLevel(c.ErrorCorrection)
	if err != nil {
		return nil, err
	}

	boxSize := c.BoxSize
	if boxSize <= 0 {
		boxSize = defaultBoxSize
	}
	border := c.Border
	if border < 0 {
		border = defaultBorder
	}

	code, err := qrcode.New(c.Content, level)
	if err != nil {
		return nil, fmt.Errorf("encoding content: %w", err)
	}
	code.DisableBorder = true

	matrix := code.Bitmap()
	modules := len(matrix)
	size := (modules + 2*border) * boxSize

	background := c.Background
	if background == nil {
		background = color.White
	}

	dc := gg.NewContext(size, size)
	dc.SetColor(background)
	dc.Clear()

	paint := modulePainter(c, size)

	for my, row := range matrix {
		for mx, set := range row {
			if !set {
				continue
			}

			px := float64((mx + border) * boxSize)
			py := float64((my + border) * boxSize)
			box := float64(boxSize)

			dc.SetColor(paint(px+box/2, py+box/2))

			switch c.Style {
			case StyleCircle:
				dc.DrawCircle(px+box/2, py+box/2, box/2)
			case StyleRounded:
				dc.DrawRoundedRectangle(px, py, box, box, box/3)
			case StyleGapped:
				gap := box * 0.1
				dc.DrawRectangle(px+gap, py+gap, box-2*gap, box-2*gap)
			default:
				dc.DrawRectangle(px, py, box, box)
			}
			dc.Fill()
		}
	}

	if c.Logo != nil {
		if err := overlayLogo(dc, c, size); err != nil {
			return nil, err
		}
	}

	return dc.Image(), nil
}

// modulePainter returns the color to use for a module centred at a
// pixel position: the solid foreground, or a radial gradient sample.
func modulePainter(c RenderConfig, size int) func(x, y float64) color.Color {
	foreground := c.Foreground
	if foreground == nil {
		foreground = color.Black
	}

	if c.GradientCenter == nil || c.GradientEdge == nil {
		return func(x, y float64) color.Color { return foreground }
	}

	centre := float64(size) / 2
	// Corners sit one half-diagonal away from the centre.
	maxDist := centre * math.Sqrt2

	return func(x, y float64) color.Color {
		dx := x - centre
		dy := y - centre
		t := math.Sqrt(dx*dx+dy*dy) / maxDist
		return lerpColor(c.GradientCenter, c.GradientEdge, math.Min(t, 1))
	}
}

func overlayLogo(dc *gg.Context, c RenderConfig, size int) error {
	scale := c.LogoScale
	if scale == 0 {
		scale = defaultLogoScale
	}
	if scale < 0 || scale > maxLogoScale {
		return fmt.Errorf("logo scale %.2f out of range (0, %.2f]", scale, maxLogoScale)
	}

	logoSize := uint(float64(size) * scale)
	if logoSize == 0 {
		return fmt.Errorf("logo would be zero-sized")
	}

	resized := resize.Thumbnail(logoSize, logoSize, c.Logo, resize.Lanczos3)

	centre := float64(size) / 2
	dc.Push()
	if c.LogoRotation != 0 {
		dc.RotateAbout(gg.Radians(c.LogoRotation), centre, centre)
	}
	dc.DrawImageAnchored(resized, size/2, size/2, 0.5, 0.5)
	dc.Pop()

	return nil
}

func recoveryLevel(s string) (qrcode.RecoveryLevel, error) {
	switch s {
	case "L":
		return qrcode.Low, nil
	case "M":
		return qrcode.Medium, nil
	case "Q":
		return qrcode.High, nil
	case "", "H":
		return qrcode.Highest, nil
	default:
		return qrcode.Highest, fmt.Errorf("unknown error correction level %q", s)
	}
}

// EncodePNG renders a config straight to PNG bytes.
func EncodePNG(c RenderConfig) ([]byte, error) {
	img, err := Render(c)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeJPEG renders a config to JPEG bytes.
func EncodeJPEG(c RenderConfig) ([]byte, error) {
	img, err := Render(c)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
