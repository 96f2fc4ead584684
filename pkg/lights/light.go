// Package lights defines the light sources a scene illuminates
// shapes with and the shadow visibility test they share.
package lights

import (
	"fmt"

	"github.com/rtrace/go-ray-forest/pkg/geometry"
	"github.com/rtrace/go-ray-forest/pkg/math"
)

// Occluder answers nearest-intersection queries for shadow testing.
// A scene satisfies this interface.
type Occluder interface {
	Intersect(ray math.Ray) (geometry.Intersection, bool)
}

// Light is a source of illumination. Energy reports the direction
// from the given surface point toward the light and the color that
// reaches the point after occlusion.
type Light interface {
	Energy(world Occluder, p math.Point3) (math.Vec3, math.Color)
	fmt.Stringer
}

// PointLight radiates a single color from a position in world space.
type PointLight struct {
	Position math.Point3
	Color    math.Color
}

func NewPointLight(pos math.Point3, color math.Color) *PointLight {
	return &PointLight{Position: pos, Color: color}
}

// Energy casts a shadow ray from p toward the light. Any hit that
// lies strictly between p and the light position blocks it entirely.
// The direction is returned even when the light is blocked so the
// caller can still record which way the sample pointed.
func (l *PointLight) Energy(world Occluder, p math.Point3) (math.Vec3, math.Color) {
	toLight := l.Position.Subtract(p)
	dir := toLight.Normalize()

	ray := math.Ray{Origin: p, Direction: dir}
	if hit, ok := world.Intersect(ray); ok {
		if hit.Point.Subtract(p).LengthSquared() < toLight.LengthSquared() {
			return dir, math.Black
		}
	}
	return dir, l.Color
}

func (l *PointLight) String() string {
	return fmt.Sprintf("PointLight(%v, %v)", l.Position, l.Color)
}

// AmbientLight radiates every point with a constant energy from no
// particular direction. It is never occluded.
type AmbientLight struct {
	Color math.Color
}

func NewAmbientLight(color math.Color) *AmbientLight {
	return &AmbientLight{Color: color}
}

func (l *AmbientLight) Energy(_ Occluder, _ math.Point3) (math.Vec3, math.Color) {
	return math.Vec3{}, l.Color
}

func (l *AmbientLight) String() string {
	return fmt.Sprintf("AmbientLight(%v)", l.Color)
}
