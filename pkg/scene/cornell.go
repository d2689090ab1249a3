package scene

import (
	"math"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/material"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/renderer"
)

// NewCornellScene creates a classic Cornell box with plane walls and a
// spherical ceiling light
func NewCornellScene() (*Scene, error) {
	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0
	half := boxSize / 2

	return NewBuilder("cornell").
		Camera(renderer.CameraConfig{
			Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
			LookAt:      core.NewVec3(278, 278, 0),
			Up:          core.NewVec3(0, 1, 0),
			Width:       400,
			AspectRatio: 1.0,
			VFov:        40.0,
		}).
		Sampling(renderer.SamplingConfig{
			Width:           400,
			Height:          400,
			SamplesPerPixel: 150,
			MaxDepth:        40,
			Gamma:           2.0,
		}).
		// Light only enters through the lamp
		Background(core.Vec3{}, core.Vec3{}).
		Material("white", material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))).
		Material("red", material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))).
		Material("green", material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))).
		Material("mirror", material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0)).
		Material("glass", material.NewDielectric(core.NewVec3(1, 1, 1), 1.5)).
		Material("lamp", material.NewLight(core.NewVec3(1, 1, 1), 15)).
		// Floor
		Plane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), "white").
		// Ceiling
		Plane(core.NewVec3(0, boxSize, 0), core.NewVec3(0, -1, 0), "white").
		// Back wall
		Plane(core.NewVec3(0, 0, boxSize), core.NewVec3(0, 0, -1), "white").
		// Left wall, as seen from the camera
		Plane(core.NewVec3(boxSize, 0, 0), core.NewVec3(-1, 0, 0), "red").
		// Right wall
		Plane(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), "green").
		// Pokes through the ceiling
		Sphere(core.NewVec3(half, boxSize+40, half), 100, "lamp").
		Box(core.NewVec3(185, 82.5, 169), core.NewVec3(82.5, 82.5, 82.5), core.NewVec3(0, -math.Pi/10, 0), "white").
		Sphere(core.NewVec3(370, 90, 351), 90, "glass").
		Sphere(core.NewVec3(400, 60, 120), 60, "mirror").
		Build()
}
