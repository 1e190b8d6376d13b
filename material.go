package extrude

import (
	"fmt"
	"image"
	"image/color"
	"math/bits"
	"os"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// TextureLayer is metadata for one texture applied to a material. The core
// passes it through to sinks unvalidated; sinks interpret Name as a path or
// resource key in their own asset scheme.
type TextureLayer struct {
	Name   string
	Format gputypes.TextureFormat

	// Width and Height are the texel dimensions, 0 if unknown.
	Width, Height int

	// Image is the decoded texture, nil unless loaded via LoadTextureLayer.
	Image image.Image
}

// Material describes the surface appearance of generated geometry. The core
// never interprets materials beyond counting texture layers when
// synthesizing texture coordinates; everything else is sink-specific.
type Material struct {
	Name          string
	Color         RGBA
	TextureLayers []TextureLayer
}

// LoadTextureLayer decodes a texture image file and downscales it to the
// nearest power-of-two dimensions if necessary, since several GPU sinks
// reject NPOT textures. Decoding supports whatever image formats the caller
// has registered with the standard image package.
func LoadTextureLayer(path string) (TextureLayer, error) {
	f, err := os.Open(path)
	if err != nil {
		return TextureLayer{}, fmt.Errorf("extrude: open texture: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return TextureLayer{}, fmt.Errorf("extrude: decode texture %q: %w", path, err)
	}

	b := src.Bounds()
	w, h := floorPow2(b.Dx()), floorPow2(b.Dy())
	if w != b.Dx() || h != b.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
		src = dst
		logger().Debug("extrude: resampled NPOT texture",
			"path", path, "width", w, "height", h)
	}

	return TextureLayer{
		Name:   path,
		Format: gputypes.TextureFormatRGBA8Unorm,
		Width:  w,
		Height: h,
		Image:  src,
	}, nil
}

// floorPow2 returns the largest power of two not exceeding n (minimum 1).
func floorPow2(n int) int {
	if n < 2 {
		return 1
	}
	return 1 << (bits.Len(uint(n)) - 1)
}
