package material

import (
	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
)

// NewLight creates an emitter. Paths that reach it stop and carry
// color * intensity back to the camera.
func NewLight(color core.Vec3, intensity float64) *Material {
	return &Material{Kind: KindLight, Albedo: color, Intensity: intensity}
}

func (m *Material) scatterLight() ScatterResult {
	return ScatterResult{
		Direction:   core.Vec3{},
		Attenuation: m.Albedo.Multiply(m.Intensity),
		Continues:   false,
	}
}
