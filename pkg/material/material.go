package material

import (
	gomath "math"

	"github.com/rtrace/go-ray-forest/pkg/math"
)

// ColorFunc maps 2D texture coordinates to a color, letting a material vary
// across a surface (checkerboards, image textures).
type ColorFunc func(u, v float64) math.Color

// Material is the energy response of a surface. One material instance may be
// shared by many shapes; an edit through the shared instance is visible to
// every shape at once, which is how a single slider change updates all twelve
// faces of a cube.
type Material interface {
	// Ambient, Diffuse and Specular sample the material's color channels at
	// the given texture coordinates.
	Ambient(u, v float64) math.Color
	Diffuse(u, v float64) math.Color
	Specular(u, v float64) math.Color

	// Reflectivity is the mirror-reflection weight in [0,1].
	Reflectivity() float64

	// RefractionIndex is the material's index of refraction, or 0 for an
	// opaque surface.
	RefractionIndex() float64

	// ReflectedEnergy computes the light reflected toward the eye for one
	// incoming light sample, as Lambertian diffuse plus Blinn-Phong specular.
	// Callers pre-filter shadowed and back-facing samples; the diffuse term
	// is not clamped here.
	ReflectedEnergy(incoming math.Color, lightDir, normal, eyeDir math.Vec3, u, v float64) math.Color
}

// lambert computes the Lambertian diffuse response for one light sample.
func lambert(lightDir, normal math.Vec3, incoming, diffuse math.Color) math.Color {
	return incoming.Mul(diffuse).Scale(lightDir.Dot(normal))
}

// blinnPhong computes the specular highlight using the half-vector between
// the eye and light directions. Negative alignment contributes nothing.
func blinnPhong(power float64, eyeDir, lightDir, normal math.Vec3, incoming, specular math.Color) math.Color {
	half := eyeDir.Normalize().Add(lightDir.Normalize()).Normalize()
	nh := normal.Dot(half)
	if nh < 0 {
		return math.Black
	}
	return incoming.Mul(specular).Scale(gomath.Pow(nh, power))
}
