package renderer

import (
	"image"
	"image/color"

	"github.com/lufasu/pathtracer/pkg/core"
)

// Framebuffer is a row-major pixel buffer of packed 24-bit RGB words,
// one 32-bit word per pixel with the high byte unused. Row 0 is the top
// of the image.
type Framebuffer struct {
	width  int
	height int
	pix    []uint32
}

// NewFramebuffer allocates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the image width in pixels
func (f *Framebuffer) Width() int { return f.width }

// Height returns the image height in pixels
func (f *Framebuffer) Height() int { return f.height }

// Pix returns the underlying packed pixel words
func (f *Framebuffer) Pix() []uint32 { return f.pix }

// Row returns the slice backing row y. Rows are disjoint, so concurrent
// writers that own different rows never race.
func (f *Framebuffer) Row(y int) []uint32 {
	return f.pix[y*f.width : (y+1)*f.width]
}

// ToImage converts the framebuffer to a standard image for encoding
func (f *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			word := f.pix[y*f.width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(word >> 16),
				G: uint8(word >> 8),
				B: uint8(word),
				A: 255,
			})
		}
	}
	return img
}

// PackColor converts an averaged linear color to a packed 0x00RRGGBB
// word, applying gamma-2 encoding and clamping to the displayable range.
func PackColor(linear core.Vec3) uint32 {
	c := linear.GammaCorrect(2.0).Clamp(0.0, 1.0)
	r := uint32(255 * c.X)
	g := uint32(255 * c.Y)
	b := uint32(255 * c.Z)
	return r<<16 | g<<8 | b
}
