package material

import (
	"fmt"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
)

// Kind tags the scattering model of a material
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
	KindLight
)

var kindNames = map[Kind]string{
	KindLambertian: "lambertian",
	KindMetal:      "metal",
	KindDielectric: "dielectric",
	KindLight:      "light",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Material is a closed set of scattering models. Only the fields relevant to
// Kind are read:
//
//	Lambertian: Albedo
//	Metal:      Albedo, Roughness
//	Dielectric: Albedo (tint), RefractiveIndex
//	Light:      Albedo (emission color), Intensity
//
// Materials are immutable once registered and may be shared by any number of
// render workers.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3
	Roughness       float64
	RefractiveIndex float64
	Intensity       float64
}

// ScatterResult contains the outcome of a surface interaction
type ScatterResult struct {
	Direction   core.Vec3 // Unit direction of the continuation ray
	Attenuation core.Vec3 // Color multiplier, or emitted color when the path stops
	Continues   bool      // False terminates the path
}

// Scatter computes how a ray arriving along rayIn leaves a surface with the
// given outward normal
func (m *Material) Scatter(rayIn core.Ray, normal core.Vec3, sampler core.Sampler) ScatterResult {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(normal, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, normal, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, normal, sampler)
	case KindLight:
		return m.scatterLight()
	default:
		panic(fmt.Sprintf("material: unknown kind %v", m.Kind))
	}
}

// IsEmitter reports whether the material terminates paths with emitted light
func (m *Material) IsEmitter() bool {
	return m.Kind == KindLight
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
