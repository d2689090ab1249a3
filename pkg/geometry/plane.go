package geometry

import (
	"math"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/material"
)

// Half-size and half-thickness of the box used to bound infinite planes
const (
	planeExtent    = 1e6
	planeThickness = 0.001
)

// NewPlane creates an infinite plane through point with the given normal
func NewPlane(point, normal core.Vec3, mat *material.Material) *Primitive {
	p := &Primitive{
		Kind:      KindPlane,
		Material:  mat,
		Transform: core.NewRigidTransform(point, core.Vec3{}),
		Normal:    normal.Normalize(),
	}
	return p.finalize()
}

// intersectPlane intersects a plane through the local origin. The plane is
// two-sided: the returned normal always faces the incoming ray.
func intersectPlane(ray core.Ray, normal core.Vec3) []Hit {
	denominator := ray.Direction.Dot(normal)
	if math.Abs(denominator) < Epsilon {
		return nil
	}

	t := -ray.Origin.Dot(normal) / denominator

	facing := normal
	if denominator > 0 {
		facing = normal.Negate()
	}
	return []Hit{{T: t, Normal: facing}}
}

// axisAlignment represents which axis a plane's normal is aligned with
type axisAlignment int

const (
	notAxisAligned axisAlignment = iota
	xAxisAligned
	yAxisAligned
	zAxisAligned
)

func getAxisAlignment(normal core.Vec3) axisAlignment {
	const threshold = 0.9999
	switch {
	case math.Abs(normal.X) > threshold:
		return xAxisAligned
	case math.Abs(normal.Y) > threshold:
		return yAxisAligned
	case math.Abs(normal.Z) > threshold:
		return zAxisAligned
	default:
		return notAxisAligned
	}
}

// planeBounds returns a thin slab for axis-aligned planes and a large cube
// otherwise
func (p *Primitive) planeBounds() core.AABB {
	point := p.Transform.Translation
	worldNormal := p.Transform.Rotate(p.Normal)

	switch getAxisAlignment(worldNormal) {
	case xAxisAligned:
		return core.NewAABB(
			core.NewVec3(point.X-planeThickness, -planeExtent, -planeExtent),
			core.NewVec3(point.X+planeThickness, planeExtent, planeExtent),
		)
	case yAxisAligned:
		return core.NewAABB(
			core.NewVec3(-planeExtent, point.Y-planeThickness, -planeExtent),
			core.NewVec3(planeExtent, point.Y+planeThickness, planeExtent),
		)
	case zAxisAligned:
		return core.NewAABB(
			core.NewVec3(-planeExtent, -planeExtent, point.Z-planeThickness),
			core.NewVec3(planeExtent, planeExtent, point.Z+planeThickness),
		)
	default:
		return core.NewAABB(
			core.NewVec3(-planeExtent, -planeExtent, -planeExtent),
			core.NewVec3(planeExtent, planeExtent, planeExtent),
		)
	}
}
