package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/geometry"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/material"
)

// hitList returns the same hits for every ray
type hitList []geometry.Hit

func (h hitList) Query(core.Ray) []geometry.Hit {
	return h
}

func newTestSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

// createTestScene creates a diffuse sphere in front of the camera with a
// light above it
func createTestScene() *geometry.Index {
	lambertian := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	light := material.NewLight(core.NewVec3(1, 1, 1), 4)

	return geometry.NewIndex([]*geometry.Primitive{
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian),
		geometry.NewSphere(core.NewVec3(0, 3, -1), 1.0, light),
		geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), lambertian),
	})
}

func TestTraceColor_ZeroDepthReturnsBackground(t *testing.T) {
	background := DefaultBackground()
	pt := NewPathTracer(createTestScene(), background)
	sampler := newTestSampler()

	random := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		dir := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
		if dir.Length() < 1e-3 {
			continue
		}
		ray := core.NewRay(core.NewVec3(0, 0, 0), dir)

		color := pt.TraceColor(ray, 0, 0, sampler)
		if !color.Equals(background.Color(ray)) {
			t.Fatalf("Ray %v: expected background %v, got %v", ray.Direction, background.Color(ray), color)
		}
	}
}

func TestTraceColor_MissReturnsBackground(t *testing.T) {
	background := Background{Horizon: core.NewVec3(1, 0, 0), Zenith: core.NewVec3(0, 0, 1)}
	pt := NewPathTracer(geometry.NewIndex(nil), background)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1)},
		{"straight down", core.NewVec3(0, -1, 0), core.NewVec3(1, 0, 0)},
		{"horizontal", core.NewVec3(1, 0, 0), core.NewVec3(0.5, 0, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := pt.TraceColor(core.NewRay(core.Vec3{}, tt.direction), 0, 10, newTestSampler())
			if !color.ApproxEquals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestTraceColor_EmitterTerminates(t *testing.T) {
	light := material.NewLight(core.NewVec3(1, 0.5, 0.25), 2)
	index := geometry.NewIndex([]*geometry.Primitive{
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1, light),
	})
	pt := NewPathTracer(index, DefaultBackground())

	color := pt.TraceColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0, 5, newTestSampler())
	expected := core.NewVec3(2, 1, 0.5)
	if !color.Equals(expected) {
		t.Errorf("Expected emitted %v, got %v", expected, color)
	}
}

func TestTraceColor_MirrorReflectsBackground(t *testing.T) {
	// A mirror plane facing up sends a downward ray straight back up
	mirror := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0)
	index := geometry.NewIndex([]*geometry.Primitive{
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), mirror),
	})
	background := DefaultBackground()
	pt := NewPathTracer(index, background)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0))
	color := pt.TraceColor(ray, 0, 2, newTestSampler())
	expected := background.Zenith.MultiplyVec(mirror.Albedo)
	if !color.ApproxEquals(expected, 1e-9) {
		t.Errorf("Expected %v, got %v", expected, color)
	}

	// With a single bounce allowed the reflected ray is cut off at the background
	color = pt.TraceColor(ray, 0, 1, newTestSampler())
	expected = background.Color(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))).MultiplyVec(mirror.Albedo)
	if !color.ApproxEquals(expected, 1e-9) {
		t.Errorf("Expected depth-limited %v, got %v", expected, color)
	}
}

func TestTraceColor_ClosestPositiveHitWins(t *testing.T) {
	near := geometry.NewSphere(core.Vec3{}, 1, material.NewLight(core.NewVec3(1, 0, 0), 1))
	far := geometry.NewSphere(core.Vec3{}, 1, material.NewLight(core.NewVec3(0, 1, 0), 1))
	behind := geometry.NewSphere(core.Vec3{}, 1, material.NewLight(core.NewVec3(0, 0, 1), 1))

	hits := hitList{
		{T: 5, Normal: core.NewVec3(0, 0, 1), Primitive: far},
		{T: -1, Normal: core.NewVec3(0, 0, 1), Primitive: behind},
		{T: 2, Normal: core.NewVec3(0, 0, 1), Primitive: near},
		{T: 0, Normal: core.NewVec3(0, 0, 1), Primitive: behind},
	}
	pt := NewPathTracer(hits, DefaultBackground())

	color := pt.TraceColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0, 3, newTestSampler())
	if !color.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected the nearest light's color, got %v", color)
	}
}

func TestTraceColor_TiesKeepFirstHit(t *testing.T) {
	first := geometry.NewSphere(core.Vec3{}, 1, material.NewLight(core.NewVec3(1, 0, 0), 1))
	second := geometry.NewSphere(core.Vec3{}, 1, material.NewLight(core.NewVec3(0, 1, 0), 1))

	pt := NewPathTracer(hitList{
		{T: 2, Normal: core.NewVec3(0, 0, 1), Primitive: first},
		{T: 2, Normal: core.NewVec3(0, 0, 1), Primitive: second},
	}, DefaultBackground())

	color := pt.TraceColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0, 3, newTestSampler())
	if !color.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected the first reported hit to win, got %v", color)
	}
}

func TestTraceColor_DiffuseSceneStaysBounded(t *testing.T) {
	pt := NewPathTracer(createTestScene(), DefaultBackground())
	sampler := newTestSampler()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	var sum core.Vec3
	samples := 200
	for i := 0; i < samples; i++ {
		color := pt.TraceColor(ray, 0, 10, sampler)
		for _, c := range []float64{color.X, color.Y, color.Z} {
			if math.IsNaN(c) || c < 0 {
				t.Fatalf("Invalid color component in %v", color)
			}
		}
		sum = sum.Add(color)
	}

	average := sum.Multiply(1.0 / float64(samples))
	if average.Luminance() <= 0 {
		t.Errorf("Expected the lit sphere to receive light, got %v", average)
	}
	// The red albedo keeps red above blue
	if average.X <= average.Z {
		t.Errorf("Expected reddish average, got %v", average)
	}
}
