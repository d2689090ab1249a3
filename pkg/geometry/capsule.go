package geometry

import (
	"github.com/pkg/errors"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/material"
)

// NewCapsule creates a capsule: a cylinder of the given radius whose core
// segment has length height, closed by two hemispheres. The segment runs along
// the rotated Y axis through center.
func NewCapsule(center core.Vec3, radius, height float64, rotation core.Vec3, mat *material.Material) (*Primitive, error) {
	if radius <= 0 {
		return nil, errors.Errorf("capsule radius must be positive, got %g", radius)
	}
	if height < 0 {
		return nil, errors.Errorf("capsule height must not be negative, got %g", height)
	}

	p := &Primitive{
		Kind:      KindCapsule,
		Material:  mat,
		Transform: core.NewRigidTransform(center, rotation),
		Radius:    radius,
		Height:    height,
	}
	return p.finalize(), nil
}

func intersectCapsule(ray core.Ray, radius, height float64) []Hit {
	o := ray.Origin
	d := ray.Direction
	half := height / 2

	var hits []Hit

	// Cylinder body, |y| <= h/2
	a := d.X*d.X + d.Z*d.Z
	if a > Epsilon*Epsilon {
		b := 2 * (o.X*d.X + o.Z*d.Z)
		c := o.X*o.X + o.Z*o.Z - radius*radius
		for _, t := range solveQuadratic(a, b, c) {
			p := ray.At(t)
			if p.Y < -half || p.Y > half {
				continue
			}
			hits = append(hits, Hit{T: t, Normal: core.NewVec3(p.X/radius, 0, p.Z/radius)})
		}
	}

	// Hemispherical caps; each only counts beyond its end of the segment
	ends := []struct {
		center core.Vec3
		beyond func(y float64) bool
	}{
		{core.NewVec3(0, half, 0), func(y float64) bool { return y > half }},
		{core.NewVec3(0, -half, 0), func(y float64) bool { return y < -half }},
	}
	for _, end := range ends {
		shifted := core.Ray{Origin: o.Subtract(end.center), Direction: d}
		for _, hit := range intersectSphere(shifted, radius) {
			if !end.beyond(ray.At(hit.T).Y) {
				continue
			}
			hits = append(hits, hit)
		}
	}

	return hits
}
