package scene

import (
	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/material"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/renderer"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene() (*Scene, error) {
	return NewBuilder("default").
		Camera(renderer.CameraConfig{
			Center:        core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
			LookAt:        core.NewVec3(0, 0.5, -1), // Look at the sphere center
			Up:            core.NewVec3(0, 1, 0),
			Width:         400,
			AspectRatio:   16.0 / 9.0,
			VFov:          40.0,
			Aperture:      0.05,
			FocusDistance: 0.0, // Focus on the look-at point
		}).
		Sampling(renderer.SamplingConfig{
			Width:           400,
			Height:          225,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Gamma:           2.0,
		}).
		Material("ground", material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))).
		Material("red", material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))).
		Material("blue", material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))).
		Material("silver", material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)).
		Material("gold", material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)).
		Material("glass", material.NewDielectric(core.NewVec3(1, 1, 1), 1.5)).
		Material("sun", material.NewLight(core.NewVec3(1.0, 0.93, 0.87), 15)).
		Plane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), "ground").
		Sphere(core.NewVec3(0, 0.5, -1), 0.5, "red").
		Sphere(core.NewVec3(-1, 0.5, -1), 0.5, "silver").
		Sphere(core.NewVec3(1, 0.5, -1), 0.5, "gold").
		Sphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, "glass").
		Sphere(core.NewVec3(-0.5, 0.2, -0.4), 0.2, "blue").
		Sphere(core.NewVec3(30, 30.5, 15), 10, "sun").
		Build()
}
