package renderer

import (
	gomath "math"

	"github.com/rtrace/go-ray-forest/pkg/geometry"
	"github.com/rtrace/go-ray-forest/pkg/math"
	"github.com/rtrace/go-ray-forest/pkg/scene"
)

// surfaceOffset nudges secondary ray origins off the surface they
// spawned from so floating point error cannot re-intersect it.
const surfaceOffset = 0.0002

// epsilon is the threshold below which reflectivity and refraction
// index are treated as zero.
const epsilon = 1e-9

// LightSample is one light's contribution at a surface point: the
// direction toward the light and the energy that survives occlusion.
type LightSample struct {
	Dir    math.Vec3
	Energy math.Color
}

// Raytracer renders a scene with recursive Whitted-style ray tracing.
type Raytracer struct {
	scene  *scene.Scene
	camera Camera
	depth  int
	pool   *WorkerPool
}

// NewRaytracer creates a tracer for the scene with the given maximum
// recursion depth.
func NewRaytracer(sc *scene.Scene, camera Camera, depth int) *Raytracer {
	return &Raytracer{
		scene:  sc,
		camera: camera,
		depth:  depth,
		pool:   NewWorkerPool(0),
	}
}

func (r *Raytracer) Camera() Camera { return r.camera }

func (r *Raytracer) Depth() int { return r.depth }

// Render traces every pixel of the buffer, one row per worker task.
func (r *Raytracer) Render(buffer *RenderBuffer) {
	r.pool.Run(r.camera.YRes, func(v int) {
		for u := 0; u < r.camera.XRes; u++ {
			ray := r.camera.GetRay(u, v)
			buffer.Set(u, v, r.Trace(ray, r.depth))
		}
	})
}

// Trace returns the color carried back along the ray. The result is
// the sum of ambient, per-light shading, mirror reflection, and
// refraction, each weighted by Schlick's Fresnel approximation.
// Rays that hit nothing, or that exhaust the recursion depth, are black.
func (r *Raytracer) Trace(ray math.Ray, depth int) math.Color {
	if depth == 0 {
		return math.Black
	}

	hit, ok := r.scene.Intersect(ray)
	if !ok {
		return math.Black
	}

	n1, n2 := refractionBoundary(hit)

	total := hit.Material.Ambient(hit.U, hit.V).Mul(r.scene.Ambient())

	for _, sample := range lightEnergy(r.scene, hit) {
		f := fresnelReflection(sample.Dir, hit.Normal, n1, n2)
		shaded := hit.Material.ReflectedEnergy(sample.Energy, sample.Dir, hit.Normal, hit.EyeDir, hit.U, hit.V)
		total = total.Add(shaded.Scale(f))
	}

	if hit.Material.Reflectivity() > epsilon {
		reflected := reflectRay(ray, hit)
		energy := r.Trace(reflected, depth-1)
		f := fresnelReflection(reflected.Direction, hit.Normal, n1, n2)
		shaded := hit.Material.ReflectedEnergy(energy, reflected.Direction, hit.Normal, hit.EyeDir, hit.U, hit.V)
		total = total.Add(shaded.Scale(f))
	}

	if hit.Material.RefractionIndex() > epsilon {
		// Total internal reflection leaves the refracted term black.
		if refracted, ok := refractRay(ray, hit, n1, n2); ok {
			f := fresnelRefraction(refracted.Direction, hit.Normal.Negate(), n1, n2)
			energy := r.Trace(refracted, depth-1)
			total = total.Add(hit.Material.Diffuse(hit.U, hit.V).Mul(energy).Scale(f))
		}
	}

	return total
}

// refractionBoundary returns the indices of refraction on either side
// of the hit, ordered from the side the ray arrived on.
func refractionBoundary(hit geometry.Intersection) (n1, n2 float64) {
	if hit.Entering {
		return 1, hit.Material.RefractionIndex()
	}
	return hit.Material.RefractionIndex(), 1
}

// lightEnergy samples every light in the scene from a point lifted
// slightly off the surface along its normal.
func lightEnergy(sc *scene.Scene, hit geometry.Intersection) []LightSample {
	p := hit.Point.Add(hit.Normal.Multiply(surfaceOffset))

	samples := make([]LightSample, 0, len(sc.Lights()))
	for _, l := range sc.Lights() {
		dir, energy := l.Energy(sc, p)
		samples = append(samples, LightSample{Dir: dir, Energy: energy})
	}
	return samples
}

// reflectRay builds the mirror ray for the hit.
func reflectRay(ray math.Ray, hit geometry.Intersection) math.Ray {
	dir := ray.Direction.Reflect(hit.Normal).Normalize()
	return math.Ray{
		Origin:    hit.Point.Add(dir.Multiply(surfaceOffset)),
		Direction: dir,
	}
}

// refractRay bends the ray across the boundary using Snell's law.
// It reports false on total internal reflection.
func refractRay(ray math.Ray, hit geometry.Intersection, n1, n2 float64) (math.Ray, bool) {
	ratio := n1 / n2
	mDotR := -ray.Direction.Dot(hit.Normal)
	cosThetaSqrd := 1 - ratio*ratio*(1-mDotR*mDotR)

	if cosThetaSqrd <= 0 {
		return math.Ray{}, false
	}

	cosTheta := gomath.Sqrt(cosThetaSqrd)
	dir := ray.Direction.Multiply(ratio).Add(hit.Normal.Multiply(ratio*mDotR - cosTheta))
	return math.Ray{
		Origin:    hit.Point.Add(dir.Multiply(surfaceOffset)),
		Direction: dir,
	}, true
}

// fresnelReflection is Schlick's approximation for the fraction of
// energy reflected at a boundary between media n1 and n2.
func fresnelReflection(lightDir, normal math.Vec3, n1, n2 float64) float64 {
	mDotR := lightDir.Dot(normal)
	r0 := ((n1 - n2) / (n1 + n2)) * ((n1 - n2) / (n1 + n2))
	return r0 + (1-r0)*gomath.Pow(1-mDotR, 5)
}

// fresnelRefraction is the complement of fresnelReflection: the
// fraction of energy transmitted through the boundary.
func fresnelRefraction(lightDir, normal math.Vec3, n1, n2 float64) float64 {
	return 1 - fresnelReflection(lightDir, normal, n1, n2)
}
