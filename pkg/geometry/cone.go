package geometry

import (
	"math"

	"github.com/pkg/errors"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/material"
)

// NewCone creates a capped cone. The base disc of the given radius is centered
// at base and the apex sits height units above it along the rotated +Y axis.
func NewCone(base core.Vec3, radius, height float64, rotation core.Vec3, mat *material.Material) (*Primitive, error) {
	if radius <= 0 {
		return nil, errors.Errorf("cone radius must be positive, got %g", radius)
	}
	if height <= 0 {
		return nil, errors.Errorf("cone height must be positive, got %g", height)
	}

	p := &Primitive{
		Kind:      KindCone,
		Material:  mat,
		Transform: core.NewRigidTransform(base, rotation),
		Radius:    radius,
		Height:    height,
	}
	return p.finalize(), nil
}

// intersectCone intersects the lateral surface x^2 + z^2 = k (h - y)^2 for
// 0 <= y <= h and the base disc at y = 0
func intersectCone(ray core.Ray, radius, height float64) []Hit {
	o := ray.Origin
	d := ray.Direction
	k := (radius / height) * (radius / height)
	apexDist := height - o.Y

	a := d.X*d.X + d.Z*d.Z - k*d.Y*d.Y
	b := 2 * (o.X*d.X + o.Z*d.Z + k*apexDist*d.Y)
	c := o.X*o.X + o.Z*o.Z - k*apexDist*apexDist

	var hits []Hit
	for _, t := range solveQuadratic(a, b, c) {
		p := ray.At(t)
		if p.Y < 0 || p.Y > height {
			continue
		}
		normal := core.NewVec3(p.X, k*(height-p.Y), p.Z)
		if normal.LengthSquared() < Epsilon*Epsilon {
			// Apex: the surface has no unique normal
			normal = core.NewVec3(0, 1, 0)
		}
		hits = append(hits, Hit{T: t, Normal: normal.Normalize()})
	}

	// Base cap
	if math.Abs(d.Y) > Epsilon {
		t := -o.Y / d.Y
		p := ray.At(t)
		if p.X*p.X+p.Z*p.Z <= radius*radius {
			hits = append(hits, Hit{T: t, Normal: core.NewVec3(0, -1, 0)})
		}
	}

	return hits
}
