package scene

import (
	"math"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/material"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/renderer"
)

// NewShapesScene shows each analytic shape family in a row
func NewShapesScene() (*Scene, error) {
	return NewBuilder("shapes").
		Camera(renderer.CameraConfig{
			Center:      core.NewVec3(0, 2.5, 6),
			LookAt:      core.NewVec3(0, 0.6, 0),
			Up:          core.NewVec3(0, 1, 0),
			Width:       400,
			AspectRatio: 16.0 / 9.0,
			VFov:        35.0,
		}).
		Sampling(renderer.SamplingConfig{
			Width:           400,
			Height:          225,
			SamplesPerPixel: 64,
			MaxDepth:        20,
			Gamma:           2.0,
		}).
		Material("floor", material.NewMetal(core.NewVec3(0.6, 0.6, 0.65), 0.15)).
		Material("orange", material.NewLambertian(core.NewVec3(0.85, 0.45, 0.1))).
		Material("teal", material.NewLambertian(core.NewVec3(0.1, 0.55, 0.55))).
		Material("copper", material.NewMetal(core.NewVec3(0.95, 0.64, 0.54), 0.2)).
		Material("glass", material.NewDielectric(core.NewVec3(0.95, 1, 0.95), 1.5)).
		Material("lamp", material.NewLight(core.NewVec3(1, 1, 1), 6)).
		Plane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), "floor").
		Box(core.NewVec3(-3, 0.6, 0), core.NewVec3(0.6, 0.6, 0.6), core.NewVec3(0, math.Pi/6, 0), "orange").
		Torus(core.NewVec3(-1, 0.9, 0), 0.6, 0.2, core.NewVec3(math.Pi/3, 0, 0), "copper").
		Cone(core.NewVec3(1, 0, 0), 0.6, 1.4, core.Vec3{}, "teal").
		Capsule(core.NewVec3(3, 0.9, 0), 0.4, 1.0, core.NewVec3(0, 0, math.Pi/8), "glass").
		Sphere(core.NewVec3(0, 6, 2), 1.5, "lamp").
		Build()
}
