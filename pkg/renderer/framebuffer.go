package renderer

import (
	"image"
	"image/color"

	"github.com/fresh-milkshake/ray-tracing/pkg/core"
)

// Framebuffer is a flat row-major RGB pixel buffer, 3 bytes per pixel.
// Each pixel is written exactly once per render; distinct row ranges can
// be written concurrently without locking.
type Framebuffer struct {
	width  int
	height int
	pixels []byte
}

// NewFramebuffer creates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]byte, width*height*3),
	}
}

// Width returns the buffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// SetPixel quantizes a linear color into the pixel at (x, y). Channels
// are clamped to [0,1] before scaling so over-bright colors saturate to
// white instead of wrapping around.
func (fb *Framebuffer) SetPixel(x, y int, c core.Vec3) {
	clamped := c.Clamp(0, 1)
	offset := (y*fb.width + x) * 3
	fb.pixels[offset] = byte(clamped.X * 255)
	fb.pixels[offset+1] = byte(clamped.Y * 255)
	fb.pixels[offset+2] = byte(clamped.Z * 255)
}

// At returns the stored RGB bytes for the pixel at (x, y)
func (fb *Framebuffer) At(x, y int) (r, g, b byte) {
	offset := (y*fb.width + x) * 3
	return fb.pixels[offset], fb.pixels[offset+1], fb.pixels[offset+2]
}

// Pixels returns the raw row-major RGB buffer for external encoders
func (fb *Framebuffer) Pixels() []byte {
	return fb.pixels
}

// Image converts the buffer to an image.RGBA for the standard encoders
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			r, g, b := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
