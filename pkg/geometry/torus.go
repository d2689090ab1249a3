package geometry

import (
	"github.com/pkg/errors"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/material"
)

// NewTorus creates a torus lying in the local XZ plane (ring around +Y).
// radius is the distance from the center to the tube center, tubeRadius the
// radius of the tube.
func NewTorus(center core.Vec3, radius, tubeRadius float64, rotation core.Vec3, mat *material.Material) (*Primitive, error) {
	if radius <= 0 || tubeRadius <= 0 {
		return nil, errors.Errorf("torus radii must be positive, got %g and %g", radius, tubeRadius)
	}
	if tubeRadius > radius {
		return nil, errors.Errorf("torus tube radius %g exceeds ring radius %g", tubeRadius, radius)
	}

	p := &Primitive{
		Kind:        KindTorus,
		Material:    mat,
		Transform:   core.NewRigidTransform(center, rotation),
		Radius:      radius,
		MinorRadius: tubeRadius,
	}
	return p.finalize(), nil
}

// intersectTorus solves the quartic (|p|^2 + R^2 - r^2)^2 = 4R^2 (x^2 + z^2)
// along the ray
func intersectTorus(ray core.Ray, radius, tubeRadius float64) []Hit {
	o := ray.Origin
	d := ray.Direction

	sqR := radius * radius
	sqr := tubeRadius * tubeRadius
	fourSqR := 4 * sqR

	dd := d.Dot(d)
	e := o.Dot(o) - sqR - sqr
	f := o.Dot(d)

	c4 := dd * dd
	c3 := 4 * dd * f
	c2 := 2*dd*e + 4*f*f + fourSqR*d.Y*d.Y
	c1 := 4*f*e + 2*fourSqR*o.Y*d.Y
	c0 := e*e - fourSqR*(sqr-o.Y*o.Y)

	roots := solveQuartic(c4, c3, c2, c1, c0)
	hits := make([]Hit, 0, len(roots))
	for _, t := range roots {
		hits = append(hits, Hit{T: t, Normal: torusNormal(ray.At(t), sqR, sqr)})
	}
	return hits
}

// torusNormal is the gradient of the implicit torus function at p
func torusNormal(p core.Vec3, sqR, sqr float64) core.Vec3 {
	s := p.LengthSquared() - sqr - sqR
	return core.NewVec3(p.X*s, p.Y*(s+2*sqR), p.Z*s).Normalize()
}
