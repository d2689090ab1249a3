// Package scene assembles materials, meshes and primitives into a render-ready
// scene with a built spatial index.
package scene

import (
	"github.com/pkg/errors"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/geometry"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/integrator"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/log"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/material"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering. It is read-only once
// Build returns it.
type Scene struct {
	Name           string
	Materials      *material.Registry
	Meshes         *MeshLibrary
	Primitives     []*geometry.Primitive
	Index          *geometry.Index
	Background     integrator.Background
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig // Recommended settings
}

// NewCamera creates the scene camera
func (s *Scene) NewCamera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// NewPathTracer creates a path tracer over the scene index
func (s *Scene) NewPathTracer() *integrator.PathTracer {
	return integrator.NewPathTracer(s.Index, s.Background)
}

// FaceCount returns the number of triangles across all mesh instances
func (s *Scene) FaceCount() int {
	count := 0
	for _, p := range s.Primitives {
		if p.Kind == geometry.KindMesh {
			count += p.Mesh.FaceCount()
		}
	}
	return count
}

// Builder collects scene contents. Material ids and mesh handles are resolved
// when a primitive is added; the first failure is kept and reported by Build.
type Builder struct {
	scene *Scene
	err   error
}

// NewBuilder starts a scene with the default sky, camera and sampling config
func NewBuilder(name string) *Builder {
	return &Builder{
		scene: &Scene{
			Name:       name,
			Materials:  material.NewRegistry(),
			Meshes:     NewMeshLibrary(),
			Background: integrator.DefaultBackground(),
			CameraConfig: renderer.CameraConfig{
				Center:      core.NewVec3(0, 0, 0),
				LookAt:      core.NewVec3(0, 0, -1),
				Up:          core.NewVec3(0, 1, 0),
				Width:       400,
				AspectRatio: 16.0 / 9.0,
				VFov:        45.0,
			},
			SamplingConfig: renderer.DefaultSamplingConfig(),
		},
	}
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Camera sets the camera configuration
func (b *Builder) Camera(config renderer.CameraConfig) *Builder {
	b.scene.CameraConfig = config
	return b
}

// Sampling sets the recommended sampling configuration
func (b *Builder) Sampling(config renderer.SamplingConfig) *Builder {
	b.scene.SamplingConfig = config
	return b
}

// Background sets the sky gradient
func (b *Builder) Background(horizon, zenith core.Vec3) *Builder {
	b.scene.Background = integrator.Background{Horizon: horizon, Zenith: zenith}
	return b
}

// Material registers a material under id
func (b *Builder) Material(id string, m *material.Material) *Builder {
	if err := b.scene.Materials.Register(id, m); err != nil {
		return b.fail(errors.Wrapf(err, "scene %q", b.scene.Name))
	}
	return b
}

// Mesh registers a mesh under handle
func (b *Builder) Mesh(handle string, mesh *geometry.Mesh) *Builder {
	if err := b.scene.Meshes.Register(handle, mesh); err != nil {
		return b.fail(errors.Wrapf(err, "scene %q", b.scene.Name))
	}
	return b
}

// resolve looks up a material for a primitive being added
func (b *Builder) resolve(materialID string) (*material.Material, bool) {
	if b.err != nil {
		return nil, false
	}
	m, err := b.scene.Materials.Resolve(materialID)
	if err != nil {
		b.fail(errors.Wrapf(err, "scene %q primitive %d", b.scene.Name, len(b.scene.Primitives)))
		return nil, false
	}
	return m, true
}

func (b *Builder) add(p *geometry.Primitive, err error) *Builder {
	if err != nil {
		return b.fail(errors.Wrapf(err, "scene %q primitive %d", b.scene.Name, len(b.scene.Primitives)))
	}
	b.scene.Primitives = append(b.scene.Primitives, p)
	return b
}

// Sphere adds a sphere
func (b *Builder) Sphere(center core.Vec3, radius float64, materialID string) *Builder {
	if m, ok := b.resolve(materialID); ok {
		if radius <= 0 {
			return b.add(nil, errors.Errorf("sphere radius must be positive, got %g", radius))
		}
		b.add(geometry.NewSphere(center, radius, m), nil)
	}
	return b
}

// Plane adds an infinite plane
func (b *Builder) Plane(point, normal core.Vec3, materialID string) *Builder {
	if m, ok := b.resolve(materialID); ok {
		if normal.LengthSquared() == 0 {
			return b.add(nil, errors.New("plane normal must not be zero"))
		}
		b.add(geometry.NewPlane(point, normal, m), nil)
	}
	return b
}

// Box adds a box given its center, half-extents and Euler rotation in radians
func (b *Builder) Box(center, halfExtents, rotation core.Vec3, materialID string) *Builder {
	if m, ok := b.resolve(materialID); ok {
		if halfExtents.X <= 0 || halfExtents.Y <= 0 || halfExtents.Z <= 0 {
			return b.add(nil, errors.Errorf("box half-extents must be positive, got %v", halfExtents))
		}
		b.add(geometry.NewBox(center, halfExtents, rotation, m), nil)
	}
	return b
}

// Torus adds a torus
func (b *Builder) Torus(center core.Vec3, radius, tubeRadius float64, rotation core.Vec3, materialID string) *Builder {
	if m, ok := b.resolve(materialID); ok {
		b.add(geometry.NewTorus(center, radius, tubeRadius, rotation, m))
	}
	return b
}

// Cone adds a capped cone standing on base
func (b *Builder) Cone(base core.Vec3, radius, height float64, rotation core.Vec3, materialID string) *Builder {
	if m, ok := b.resolve(materialID); ok {
		b.add(geometry.NewCone(base, radius, height, rotation, m))
	}
	return b
}

// Capsule adds a capsule
func (b *Builder) Capsule(center core.Vec3, radius, height float64, rotation core.Vec3, materialID string) *Builder {
	if m, ok := b.resolve(materialID); ok {
		b.add(geometry.NewCapsule(center, radius, height, rotation, m))
	}
	return b
}

// MeshInstance places a registered mesh in the world
func (b *Builder) MeshInstance(handle string, transform core.Transform, materialID string) *Builder {
	m, ok := b.resolve(materialID)
	if !ok {
		return b
	}
	mesh, err := b.scene.Meshes.Resolve(handle)
	if err != nil {
		return b.add(nil, err)
	}
	return b.add(geometry.NewMeshInstance(mesh, transform, m), nil)
}

// Build builds the top-level index and returns the finished scene
func (b *Builder) Build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}

	s := b.scene
	s.Index = geometry.NewIndex(s.Primitives)

	stats := s.Index.Stats()
	logger.Infof("scene %q: %d primitives, %d mesh faces, %d materials",
		s.Name, len(s.Primitives), s.FaceCount(), s.Materials.Len())
	logger.Debugf("scene %q index: %d nodes, %d leaves, depth %d, at most %d items per leaf",
		s.Name, stats.TotalNodes, stats.LeafNodes, stats.MaxDepth, stats.MaxLeafItems)

	return s, nil
}
