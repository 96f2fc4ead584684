// Package renderer traces camera rays through a scene, either directly
// or through a cached ray forest that supports cheap re-shading after
// material edits.
package renderer

import (
	"github.com/rtrace/go-ray-forest/pkg/math"
)

// Camera is a pinhole camera behind a fixed image plane. Rays leave the
// origin and pass through a grid of viewpoints on the z=0 plane.
type Camera struct {
	Origin math.Point3
	XMin   float64
	XMax   float64
	YMin   float64
	YMax   float64
	XRes   int
	YRes   int
}

// NewCamera creates a camera at (0,0,-8) whose image plane spans
// [-3,3] on both axes at the given pixel resolution.
func NewCamera(xRes, yRes int) Camera {
	return Camera{
		Origin: math.Point3{X: 0, Y: 0, Z: -8},
		XMin:   -3,
		XMax:   3,
		YMin:   -3,
		YMax:   3,
		XRes:   xRes,
		YRes:   yRes,
	}
}

// GetRay returns the primary ray for pixel (u,v). Pixel v grows
// downward while world y grows upward, so v is flipped.
func (c Camera) GetRay(u, v int) math.Ray {
	xDelta := (c.XMax - c.XMin) / float64(c.XRes)
	yDelta := (c.YMax - c.YMin) / float64(c.YRes)
	x := c.XMin + float64(u)*xDelta
	y := c.YMax - float64(v)*yDelta

	viewpoint := math.Point3{X: x, Y: y, Z: 0}
	return math.Ray{
		Origin:    c.Origin,
		Direction: viewpoint.Subtract(c.Origin).Normalize(),
	}
}
