package material

import (
	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
)

// Fraction of the albedo a diffuse bounce keeps
const diffuseReflectance = 0.9

// NewLambertian creates a new diffuse material
func NewLambertian(albedo core.Vec3) *Material {
	return &Material{Kind: KindLambertian, Albedo: albedo}
}

func (m *Material) scatterLambertian(normal core.Vec3, sampler core.Sampler) ScatterResult {
	sample := core.RandomInHemisphere(normal, sampler)

	return ScatterResult{
		Direction:   normal.Add(sample).Normalize(),
		Attenuation: m.Albedo.Multiply(diffuseReflectance),
		Continues:   true,
	}
}
