package scene

import (
	"github.com/rtrace/go-ray-forest/pkg/geometry"
	"github.com/rtrace/go-ray-forest/pkg/lights"
	"github.com/rtrace/go-ray-forest/pkg/material"
	"github.com/rtrace/go-ray-forest/pkg/math"
)

var (
	dimWhite = math.Color{R: 0.1, G: 0.1, B: 0.1}
	dimBlue  = math.Color{R: 0, G: 0, B: 0.1}
	halfGray = math.Color{R: 0.5, G: 0.5, B: 0.5}
)

// Default builds the demonstration scene: three spheres over two
// checkerboard planes, a tilted glass cube, and three colored point
// lights. It doubles as the fixture most renderer tests run against.
func Default() *Scene {
	s := New()

	red := geometry.NewNamedSphere("red", material.NewPhong(
		dimWhite, math.Red, math.White, 60, 0.5, 0))
	red.SetTransform(math.Translate(-1, 0, 0).
		Mul(math.RotateZ(75)).
		Mul(math.Scale(1, 0.25, 1)))
	s.AddShape(red)

	blue := geometry.NewNamedSphere("blue", material.NewPhong(
		math.Black, math.Blue, dimBlue, 600, 0.4, 0))
	blue.SetTransform(math.Translate(1, -1, 0))
	s.AddShape(blue)

	glass := geometry.NewNamedSphere("glass", material.NewPhong(
		math.Black, math.White, math.White, 60, 0.7, 1.333))
	glass.SetTransform(math.Translate(0, -0.5, -3).
		Mul(math.Scale(0.6, 0.6, 0.6)))
	s.AddShape(glass)

	floorTexture := material.Checkerboard(math.White, halfGray)
	back := geometry.NewNamedPlane("back wall",
		math.Point3{X: 0, Y: -2, Z: 2},
		math.Vec3{X: 0, Y: 0, Z: -1},
		material.NewTexturePhong(material.Solid(dimWhite), floorTexture, material.Solid(dimWhite), 60, 0, 0))
	s.AddShape(back)

	floor := geometry.NewNamedPlane("floor",
		math.Point3{X: 0, Y: -2, Z: 0},
		math.Vec3{X: 0, Y: 1, Z: 0},
		material.NewTexturePhong(material.Solid(dimWhite), floorTexture, material.Solid(dimWhite), 60, 0, 0))
	s.AddShape(floor)

	cube := geometry.NewNamedCube("glass cube", material.NewPhong(
		math.Black, math.White, math.White, 60, 0, 1.333))
	cube.SetTransform(math.Translate(-1, -1, -4).Mul(math.RotateX(-45)))
	s.AddShape(cube)

	s.AddLight(lights.NewPointLight(math.Point3{X: 4, Y: 4, Z: 0}, math.Red))
	s.AddLight(lights.NewPointLight(math.Point3{X: -1, Y: 2, Z: -4}, math.Green))
	s.AddLight(lights.NewPointLight(math.Point3{X: 0, Y: 8, Z: -4}, math.Blue))

	s.SetAmbient(math.Color{R: 0.1, G: 0.1, B: 0.1})
	return s
}
