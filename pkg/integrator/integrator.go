// Package integrator turns rays into colors by recursively following them
// through the scene.
package integrator

import (
	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/geometry"
)

// HitQuerier returns every crossing of a ray with the scene, unfiltered.
// geometry.Index is the production implementation.
type HitQuerier interface {
	Query(ray core.Ray) []geometry.Hit
}

// Background is the sky gradient returned for rays that escape the scene
type Background struct {
	Horizon core.Vec3
	Zenith  core.Vec3
}

// DefaultBackground returns the white-to-blue sky
func DefaultBackground() Background {
	return Background{
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns a gradient color based on ray direction
func (b Background) Color(r core.Ray) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	return b.Horizon.Lerp(b.Zenith, t)
}
