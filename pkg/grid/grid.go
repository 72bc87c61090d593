package grid

import (
	"image"
	"image/draw"
)

const opaque = 255

// Grid is a width × height × channels array of 8-bit samples, laid out
// row-major with interleaved channels, like image.RGBA.Pix. It is the
// only pixel representation the steg core operates on; decoding to and
// encoding from image files happens at the callers.
type Grid struct {
	Width, Height, Channels int

	// AlphaChannel is the index of the alpha channel, or -1 when every
	// channel carries data.
	AlphaChannel int

	Pix []uint8
}

func New(width, height, channels, alphaChannel int) *Grid {
	return &Grid{
		Width:        width,
		Height:       height,
		Channels:     channels,
		AlphaChannel: alphaChannel,
		Pix:          make([]uint8, width*height*channels),
	}
}

// DataChannels is the number of channels that may carry embedded bits.
func (g *Grid) DataChannels() int {
	if g.AlphaChannel >= 0 {
		return g.Channels - 1
	}
	return g.Channels
}

// SampleIdx addresses channel c of the pixel at (x, y) within Pix.
func (g *Grid) SampleIdx(x, y, c int) int {
	return (y*g.Width+x)*g.Channels + c
}

// Opaque reports whether the pixel at (x, y) is fully opaque. Grids
// without an alpha channel are always opaque.
func (g *Grid) Opaque(x, y int) bool {
	if g.AlphaChannel < 0 {
		return true
	}
	return g.Pix[g.SampleIdx(x, y, g.AlphaChannel)] == opaque
}

// Clone returns a deep copy, so embedding can keep copy-on-write
// semantics without mutating the caller's cover grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		Width:        g.Width,
		Height:       g.Height,
		Channels:     g.Channels,
		AlphaChannel: g.AlphaChannel,
		Pix:          make([]uint8, len(g.Pix)),
	}
	copy(clone.Pix, g.Pix)
	return clone
}

// FromImage converts any image.Image into an RGBA-backed grid.
func FromImage(img image.Image) *Grid {
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	g := &Grid{
		Width:        rgba.Bounds().Dx(),
		Height:       rgba.Bounds().Dy(),
		Channels:     4,
		AlphaChannel: 3,
		Pix:          rgba.Pix,
	}
	return g
}

// FromGray converts a grayscale image into a single-channel grid.
func FromGray(img *image.Gray) *Grid {
	bounds := img.Bounds()
	g := New(bounds.Dx(), bounds.Dy(), 1, -1)
	for y := 0; y < g.Height; y++ {
		copy(g.Pix[y*g.Width:(y+1)*g.Width], img.Pix[y*img.Stride:y*img.Stride+g.Width])
	}
	return g
}

// ToImage converts the grid back into a standard image for encoding to
// disk. Only 4-channel RGBA and 1-channel gray grids are produced by
// this package, so those are the supported layouts.
func (g *Grid) ToImage() image.Image {
	if g.Channels == 1 {
		img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
		for y := 0; y < g.Height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+g.Width], g.Pix[y*g.Width:(y+1)*g.Width])
		}
		return img
	}

	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	copy(img.Pix, g.Pix)
	return img
}
