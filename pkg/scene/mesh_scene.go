package scene

import (
	"math"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/geometry"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/material"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/renderer"
)

// NewMeshScene instances one icosphere buffer as a flat and a smooth mesh
func NewMeshScene() (*Scene, error) {
	buffer := geometry.NewIcosphere(3)

	return NewBuilder("mesh").
		Camera(renderer.CameraConfig{
			Center:      core.NewVec3(0, 1.5, 5),
			LookAt:      core.NewVec3(0, 0.8, 0),
			Up:          core.NewVec3(0, 1, 0),
			Width:       400,
			AspectRatio: 16.0 / 9.0,
			VFov:        40.0,
		}).
		Sampling(renderer.SamplingConfig{
			Width:           400,
			Height:          225,
			SamplesPerPixel: 64,
			MaxDepth:        20,
			Gamma:           2.0,
		}).
		Mesh("icosphere-flat", geometry.NewMesh(buffer, false)).
		Mesh("icosphere-smooth", geometry.NewMesh(buffer, true)).
		Material("ground", material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))).
		Material("jade", material.NewLambertian(core.NewVec3(0.2, 0.6, 0.35))).
		Material("chrome", material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.05)).
		Material("crystal", material.NewDielectric(core.NewVec3(0.9, 0.95, 1), 1.45)).
		Plane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), "ground").
		MeshInstance("icosphere-flat",
			core.NewTransform(core.NewVec3(-2, 0.8, 0), core.NewVec3(0, math.Pi/5, 0), core.NewVec3(0.8, 0.8, 0.8)),
			"jade").
		MeshInstance("icosphere-smooth",
			core.NewTransform(core.NewVec3(0, 0.8, 0), core.Vec3{}, core.NewVec3(0.8, 0.8, 0.8)),
			"chrome").
		MeshInstance("icosphere-smooth",
			core.NewTransform(core.NewVec3(2, 0.6, 0.5), core.Vec3{}, core.NewVec3(0.6, 1.0, 0.6)),
			"crystal").
		Build()
}
