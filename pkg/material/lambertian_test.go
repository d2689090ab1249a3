package material

import (
	"math"
	"testing"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
)

func TestLambertian_ScatterAboveSurface(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	normal := core.NewVec3(0, 0, 1)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 200; i++ {
		scatter := lambertian.Scatter(ray, normal, sampler)
		if !scatter.Continues {
			t.Fatal("Lambertian should always continue")
		}
		if scatter.Direction.Dot(normal) <= 0 {
			t.Fatalf("Scattered direction %v points into the surface", scatter.Direction)
		}
		if math.Abs(scatter.Direction.Length()-1) > 1e-9 {
			t.Fatalf("Scattered direction %v is not normalized", scatter.Direction)
		}
	}
}

func TestLambertian_Attenuation(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)

	scatter := lambertian.Scatter(
		core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)),
		core.NewVec3(0, 1, 0),
		core.NewSeededSampler(1),
	)

	expected := albedo.Multiply(0.9)
	if !scatter.Attenuation.ApproxEquals(expected, 1e-12) {
		t.Errorf("Expected attenuation %v, got %v", expected, scatter.Attenuation)
	}

	// Attenuation should never exceed original albedo values
	if scatter.Attenuation.X > albedo.X || scatter.Attenuation.Y > albedo.Y || scatter.Attenuation.Z > albedo.Z {
		t.Errorf("Attenuation %v exceeds albedo %v", scatter.Attenuation, albedo)
	}
}
