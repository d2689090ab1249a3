package material

import (
	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
)

// NewMetal creates a new metal material. Roughness is clamped to [0, 1]:
// 0 is a perfect mirror.
func NewMetal(albedo core.Vec3, roughness float64) *Material {
	if roughness > 1.0 {
		roughness = 1.0
	}
	if roughness < 0.0 {
		roughness = 0.0
	}
	return &Material{Kind: KindMetal, Albedo: albedo, Roughness: roughness}
}

func (m *Material) scatterMetal(rayIn core.Ray, normal core.Vec3, sampler core.Sampler) ScatterResult {
	reflected := reflect(rayIn.Direction.Normalize(), normal)

	if m.Roughness > 0 {
		perturbation := core.RandomInHemisphere(normal, sampler).Multiply(m.Roughness)
		reflected = reflected.Add(perturbation)
	}
	reflected = reflected.Normalize()

	return ScatterResult{
		Direction:   reflected,
		Attenuation: m.Albedo,
		Continues:   reflected.Dot(normal) > 0,
	}
}
