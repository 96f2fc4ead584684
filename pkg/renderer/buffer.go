package renderer

import (
	"image"
	"image/color"

	"github.com/rtrace/go-ray-forest/pkg/math"
)

// RenderBuffer is a W x H grid of linear colors, stored row-major.
// Values are unclamped; clamping happens only on export.
type RenderBuffer struct {
	W   int
	H   int
	buf []math.Color
}

func NewRenderBuffer(w, h int) *RenderBuffer {
	return &RenderBuffer{
		W:   w,
		H:   h,
		buf: make([]math.Color, w*h),
	}
}

func (b *RenderBuffer) At(u, v int) math.Color {
	return b.buf[v*b.W+u]
}

func (b *RenderBuffer) Set(u, v int, c math.Color) {
	b.buf[v*b.W+u] = c
}

// ToImage converts the buffer to an 8-bit RGBA image, clamping each
// channel to [0,1]. No gamma correction is applied.
func (b *RenderBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.W, b.H))
	for v := 0; v < b.H; v++ {
		for u := 0; u < b.W; u++ {
			c := b.At(u, v)
			img.SetRGBA(u, v, color.RGBA{
				R: clampByte(c.R),
				G: clampByte(c.G),
				B: clampByte(c.B),
				A: 255,
			})
		}
	}
	return img
}

func clampByte(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f * 255)
}
