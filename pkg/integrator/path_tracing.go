package integrator

import (
	"github.com/samber/lo"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/geometry"
)

// MinHitDistance is the smallest ray parameter accepted as a hit. Continuation
// rays start exactly on the surface they left, so crossings closer than this
// are treated as the surface itself.
const MinHitDistance = 1e-4

// PathTracer implements unidirectional path tracing with a fixed bounce limit
type PathTracer struct {
	scene      HitQuerier
	background Background
}

// NewPathTracer creates a new path tracer over a read-only scene
func NewPathTracer(scene HitQuerier, background Background) *PathTracer {
	return &PathTracer{
		scene:      scene,
		background: background,
	}
}

// TraceColor computes the color carried back along ray. depth counts the
// bounces taken so far and starts at 0 for camera rays; once it would exceed
// maxDepth the path ends with the background color.
func (pt *PathTracer) TraceColor(ray core.Ray, depth, maxDepth int, sampler core.Sampler) core.Vec3 {
	depth++
	if depth > maxDepth {
		return pt.background.Color(ray)
	}

	hit, ok := pt.closestHit(ray)
	if !ok {
		return pt.background.Color(ray)
	}

	scatter := hit.Primitive.Material.Scatter(ray, hit.Normal, sampler)
	if !scatter.Continues {
		// Emitters and absorbed paths stop here
		return scatter.Attenuation
	}

	next := core.Ray{Origin: ray.PointAt(hit.T), Direction: scatter.Direction}
	return scatter.Attenuation.MultiplyVec(pt.TraceColor(next, depth, maxDepth, sampler))
}

// closestHit selects the nearest crossing in front of the ray origin. Ties keep
// the first hit the index reported.
func (pt *PathTracer) closestHit(ray core.Ray) (geometry.Hit, bool) {
	hits := lo.Filter(pt.scene.Query(ray), func(hit geometry.Hit, _ int) bool {
		return hit.T > MinHitDistance
	})
	if len(hits) == 0 {
		return geometry.Hit{}, false
	}

	return lo.MinBy(hits, func(a, b geometry.Hit) bool {
		return a.T < b.T
	}), true
}
