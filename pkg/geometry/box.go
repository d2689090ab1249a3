package geometry

import (
	"math"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/material"
)

// NewBox creates a new box with the given center, half-extents, rotation, and material.
// Rotation is in radians around X, Y, Z axes (applied in that order).
func NewBox(center, halfExtents, rotation core.Vec3, mat *material.Material) *Primitive {
	p := &Primitive{
		Kind:        KindBox,
		Material:    mat,
		Transform:   core.NewRigidTransform(center, rotation),
		HalfExtents: halfExtents,
	}
	return p.finalize()
}

// NewAxisAlignedBox creates a new axis-aligned box (no rotation)
func NewAxisAlignedBox(center, halfExtents core.Vec3, mat *material.Material) *Primitive {
	return NewBox(center, halfExtents, core.Vec3{}, mat)
}

// intersectBox runs the slab test against a box centered at the local origin
// and returns the entry and exit crossings
func intersectBox(ray core.Ray, halfExtents core.Vec3) []Hit {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)
	nearAxis, farAxis := -1, -1
	var nearSign, farSign float64

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		dir := ray.Direction.Axis(axis)
		extent := halfExtents.Axis(axis)

		if math.Abs(dir) < 1e-12 {
			// Parallel to the slab: inside or miss
			if origin < -extent || origin > extent {
				return nil
			}
			continue
		}

		t0 := (-extent - origin) / dir
		t1 := (extent - origin) / dir
		// Entering through the face whose normal opposes the direction
		sign := -1.0
		if dir < 0 {
			t0, t1 = t1, t0
			sign = 1.0
		}

		if t0 > tNear {
			tNear, nearAxis, nearSign = t0, axis, sign
		}
		if t1 < tFar {
			tFar, farAxis, farSign = t1, axis, -sign
		}
		if tNear > tFar {
			return nil
		}
	}

	if nearAxis < 0 || farAxis < 0 {
		return nil
	}

	return []Hit{
		{T: tNear, Normal: axisNormal(nearAxis, nearSign)},
		{T: tFar, Normal: axisNormal(farAxis, farSign)},
	}
}

func axisNormal(axis int, sign float64) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(sign, 0, 0)
	case 1:
		return core.NewVec3(0, sign, 0)
	default:
		return core.NewVec3(0, 0, sign)
	}
}
