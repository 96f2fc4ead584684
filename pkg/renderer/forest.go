package renderer

import (
	"github.com/rtrace/go-ray-forest/pkg/geometry"
	"github.com/rtrace/go-ray-forest/pkg/math"
)

// rayTreeNode caches everything Trace computed at one bounce: the
// intersection, the per-light samples, and the secondary rays. The
// child pointers are nil where the trace stopped (no hit, recursion
// limit, inert material, or total internal reflection).
type rayTreeNode struct {
	hit    geometry.Intersection
	lights []LightSample

	reflectDir math.Vec3
	refractDir math.Vec3
	reflected  *rayTreeNode
	refracted  *rayTreeNode
}

// RayTree is the cached bounce tree for one pixel plus the set of
// shape ids the pixel's rays touched. The id set drives filtered
// re-rendering: a pixel is stale only if an edited shape is in it.
type RayTree struct {
	shapes map[int]struct{}
	root   *rayTreeNode
}

// Size returns the number of intersections cached in the tree.
func (t *RayTree) Size() int {
	return t.root.count()
}

func (n *rayTreeNode) count() int {
	if n == nil {
		return 0
	}
	return 1 + n.reflected.count() + n.refracted.count()
}

// Touches reports whether any ray in this tree hit the shape.
func (t *RayTree) Touches(shapeID int) bool {
	_, ok := t.shapes[shapeID]
	return ok
}

// RayForest holds one RayTree per pixel.
type RayForest struct {
	W     int
	H     int
	trees []RayTree
}

func NewRayForest(w, h int) *RayForest {
	return &RayForest{
		W:     w,
		H:     h,
		trees: make([]RayTree, w*h),
	}
}

func (f *RayForest) Tree(u, v int) *RayTree {
	return &f.trees[v*f.W+u]
}

// Size returns the total number of cached intersections.
func (f *RayForest) Size() int {
	total := 0
	for i := range f.trees {
		total += f.trees[i].Size()
	}
	return total
}

// TreesWith returns how many pixels' trees touch the given shape,
// which is exactly the number of pixels a filtered re-render of that
// shape will shade.
func (f *RayForest) TreesWith(shapeID int) int {
	count := 0
	for i := range f.trees {
		if f.trees[i].Touches(shapeID) {
			count++
		}
	}
	return count
}

// BuildForest traces every pixel once and caches the full bounce tree
// instead of collapsing it to a color.
func (r *Raytracer) BuildForest() *RayForest {
	forest := NewRayForest(r.camera.XRes, r.camera.YRes)
	r.pool.Run(r.camera.YRes, func(v int) {
		for u := 0; u < r.camera.XRes; u++ {
			tree := forest.Tree(u, v)
			tree.shapes = make(map[int]struct{})
			tree.root = r.buildRayTree(r.camera.GetRay(u, v), r.depth, tree.shapes)
		}
	})
	return forest
}

// buildRayTree follows the same control flow as Trace but records the
// work instead of folding it, so a later reduce can replay the shading
// against current material values.
func (r *Raytracer) buildRayTree(ray math.Ray, depth int, shapes map[int]struct{}) *rayTreeNode {
	if depth == 0 {
		return nil
	}

	hit, ok := r.scene.Intersect(ray)
	if !ok {
		return nil
	}
	shapes[hit.ShapeID] = struct{}{}

	n1, n2 := refractionBoundary(hit)

	node := &rayTreeNode{
		hit:    hit,
		lights: lightEnergy(r.scene, hit),
	}

	if hit.Material.Reflectivity() > epsilon {
		reflected := reflectRay(ray, hit)
		node.reflectDir = reflected.Direction
		node.reflected = r.buildRayTree(reflected, depth-1, shapes)
	}

	if hit.Material.RefractionIndex() > epsilon {
		if refracted, ok := refractRay(ray, hit, n1, n2); ok {
			node.refractDir = refracted.Direction
			node.refracted = r.buildRayTree(refracted, depth-1, shapes)
		}
	}

	return node
}

// RenderForest reduces every tree in the forest to a color.
func (r *Raytracer) RenderForest(forest *RayForest, buffer *RenderBuffer) {
	r.pool.Run(forest.H, func(v int) {
		for u := 0; u < forest.W; u++ {
			buffer.Set(u, v, r.reduceTree(forest.Tree(u, v).root))
		}
	})
}

// RenderForestFilter re-reduces only the pixels whose trees touch a
// mutated shape. Pixels outside the filter keep their buffer value.
func (r *Raytracer) RenderForestFilter(forest *RayForest, buffer *RenderBuffer, mutated map[int]struct{}) {
	r.pool.Run(forest.H, func(v int) {
		for u := 0; u < forest.W; u++ {
			tree := forest.Tree(u, v)
			for id := range mutated {
				if tree.Touches(id) {
					buffer.Set(u, v, r.reduceTree(tree.root))
					break
				}
			}
		}
	})
}

// reduceTree folds a cached bounce tree to a color using the same
// arithmetic as Trace, reading current material values. For a scene
// whose materials have not changed since BuildForest, the result is
// identical to Trace for the same primary ray.
func (r *Raytracer) reduceTree(n *rayTreeNode) math.Color {
	if n == nil {
		return math.Black
	}

	hit := n.hit
	n1, n2 := refractionBoundary(hit)

	total := hit.Material.Ambient(hit.U, hit.V).Mul(r.scene.Ambient())

	for _, sample := range n.lights {
		f := fresnelReflection(sample.Dir, hit.Normal, n1, n2)
		shaded := hit.Material.ReflectedEnergy(sample.Energy, sample.Dir, hit.Normal, hit.EyeDir, hit.U, hit.V)
		total = total.Add(shaded.Scale(f))
	}

	if n.reflected != nil {
		energy := r.reduceTree(n.reflected)
		f := fresnelReflection(n.reflectDir, hit.Normal, n1, n2)
		shaded := hit.Material.ReflectedEnergy(energy, n.reflectDir, hit.Normal, hit.EyeDir, hit.U, hit.V)
		total = total.Add(shaded.Scale(f))
	}

	if n.refracted != nil {
		energy := r.reduceTree(n.refracted)
		f := fresnelRefraction(n.refractDir, hit.Normal.Negate(), n1, n2)
		total = total.Add(hit.Material.Diffuse(hit.U, hit.V).Mul(energy).Scale(f))
	}

	return total
}
