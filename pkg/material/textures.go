package material

import (
	"image"

	gomath "math"

	"github.com/rtrace/go-ray-forest/pkg/math"
)

// Solid returns a ColorFunc that ignores texture coordinates.
func Solid(c math.Color) ColorFunc {
	return func(u, v float64) math.Color {
		return c
	}
}

// Checkerboard alternates two colors on integer texture cells. The quadrant
// test keeps the pattern continuous across the texture origin, where plain
// integer truncation would mirror two like-colored cells together.
func Checkerboard(a, b math.Color) ColorFunc {
	return func(u, v float64) math.Color {
		iu := int(gomath.Abs(u))
		iv := int(gomath.Abs(v))

		if (u < 0) == (v < 0) {
			if iu%2 == iv%2 {
				return a
			}
			return b
		}
		if iu%2 != iv%2 {
			return a
		}
		return b
	}
}

// ImageTexture samples a decoded image with wrap-around coordinates, scaled
// to linear [0,1] channels.
func ImageTexture(img image.Image) ColorFunc {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	return func(u, v float64) math.Color {
		x := int(gomath.Abs(u*float64(w))) % w
		y := int(gomath.Abs(v*float64(h))) % h
		r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
		return math.NewColor(float64(r)/65535, float64(g)/65535, float64(b)/65535)
	}
}
