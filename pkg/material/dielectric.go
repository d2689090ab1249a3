package material

import (
	"math"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
)

// AmbientRefractiveIndex is the index of the medium surrounding every object
const AmbientRefractiveIndex = 1.0

// NewDielectric creates a transparent material such as glass
func NewDielectric(tint core.Vec3, refractiveIndex float64) *Material {
	return &Material{Kind: KindDielectric, Albedo: tint, RefractiveIndex: refractiveIndex}
}

func (m *Material) scatterDielectric(rayIn core.Ray, normal core.Vec3, sampler core.Sampler) ScatterResult {
	unitDirection := rayIn.Direction.Normalize()

	// The outward normal faces the incoming ray when entering the medium
	entering := unitDirection.Negate().Dot(normal) > 0

	var refractionRatio float64
	facing := normal
	if entering {
		refractionRatio = AmbientRefractiveIndex / m.RefractiveIndex
	} else {
		refractionRatio = m.RefractiveIndex / AmbientRefractiveIndex
		facing = normal.Negate()
	}

	cosTheta := math.Min(unitDirection.Negate().Dot(facing), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || sampler.Get1D() < Reflectance(cosTheta, refractionRatio) {
		direction = reflect(unitDirection, facing)
	} else {
		direction = refract(unitDirection, facing, refractionRatio)
	}

	return ScatterResult{
		Direction:   direction.Normalize(),
		Attenuation: m.Albedo,
		Continues:   true,
	}
}

// refract calculates the refraction of a unit vector using Snell's law.
// n must face against uv.
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
