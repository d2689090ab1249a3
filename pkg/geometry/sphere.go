package geometry

import (
	"math"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/material"
)

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Primitive {
	p := &Primitive{
		Kind:      KindSphere,
		Material:  mat,
		Transform: core.NewRigidTransform(center, core.Vec3{}),
		Radius:    radius,
	}
	return p.finalize()
}

// intersectSphere solves |o + t*d|^2 = r^2 for a sphere at the local origin
func intersectSphere(ray core.Ray, radius float64) []Hit {
	oc := ray.Origin

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	roots := []float64{(-halfB - sqrtD) / a}
	if sqrtD > 0 {
		roots = append(roots, (-halfB+sqrtD)/a)
	}

	hits := make([]Hit, 0, len(roots))
	for _, t := range roots {
		hits = append(hits, Hit{
			T:      t,
			Normal: ray.At(t).Multiply(1.0 / radius),
		})
	}
	return hits
}
