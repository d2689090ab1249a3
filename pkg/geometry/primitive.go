// Package geometry holds the scene primitives and their ray intersection
// routines.
//
// Every analytic shape is defined in its own local space (centered at the
// origin, symmetric around +Y where that matters) and placed in the world by a
// core.Transform. Intersection transforms the ray into local space, solves the
// shape equation there and maps normals back to world space.
package geometry

import (
	"fmt"
	"math"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/material"
)

// Epsilon guards parallelism and degeneracy checks in intersection routines
const Epsilon = 1e-5

// Kind tags the shape family of a primitive
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindBox
	KindTorus
	KindCone
	KindCapsule
	KindMesh
)

var kindNames = map[Kind]string{
	KindSphere:  "sphere",
	KindPlane:   "plane",
	KindBox:     "box",
	KindTorus:   "torus",
	KindCone:    "cone",
	KindCapsule: "capsule",
	KindMesh:    "mesh",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Hit is a single ray-parameter crossing of a primitive's surface
type Hit struct {
	T         float64
	Normal    core.Vec3 // World-space unit normal
	Kind      Kind
	Primitive *Primitive
	Face      [3]int // Vertex index triple of the hit face (mesh hits only)
}

// Primitive is an immutable shape with a borrowed material. Only the
// parameters relevant to Kind are read:
//
//	Sphere:  Radius
//	Plane:   Normal
//	Box:     HalfExtents
//	Torus:   Radius (ring), MinorRadius (tube)
//	Cone:    Radius (base), Height
//	Capsule: Radius, Height (length of the core segment)
//	Mesh:    Mesh
type Primitive struct {
	Kind        Kind
	Material    *material.Material
	Transform   core.Transform
	Radius      float64
	MinorRadius float64
	Height      float64
	HalfExtents core.Vec3
	Normal      core.Vec3
	Mesh        *Mesh

	localBounds core.AABB
	bounds      core.AABB
}

// finalize caches the local and world bounding boxes. Every constructor calls
// it before handing the primitive out.
func (p *Primitive) finalize() *Primitive {
	switch p.Kind {
	case KindPlane:
		p.bounds = p.planeBounds()
		return p
	case KindSphere:
		r := core.NewVec3(p.Radius, p.Radius, p.Radius)
		p.localBounds = core.NewAABB(r.Negate(), r)
	case KindBox:
		p.localBounds = core.NewAABB(p.HalfExtents.Negate(), p.HalfExtents)
	case KindTorus:
		outer := p.Radius + p.MinorRadius
		p.localBounds = core.NewAABB(
			core.NewVec3(-outer, -p.MinorRadius, -outer),
			core.NewVec3(outer, p.MinorRadius, outer),
		)
	case KindCone:
		p.localBounds = core.NewAABB(
			core.NewVec3(-p.Radius, 0, -p.Radius),
			core.NewVec3(p.Radius, p.Height, p.Radius),
		)
	case KindCapsule:
		halfLength := p.Height/2 + p.Radius
		p.localBounds = core.NewAABB(
			core.NewVec3(-p.Radius, -halfLength, -p.Radius),
			core.NewVec3(p.Radius, halfLength, p.Radius),
		)
	case KindMesh:
		p.localBounds = p.Mesh.BoundingBox()
	default:
		panic(fmt.Sprintf("geometry: unknown kind %v", p.Kind))
	}

	p.bounds = p.Transform.BoundsToWorld(p.localBounds)
	return p
}

// BoundingBox returns the world-space bounding box
func (p *Primitive) BoundingBox() core.AABB {
	return p.bounds
}

// Centroid returns the center of the world-space bounding box
func (p *Primitive) Centroid() core.Vec3 {
	return p.bounds.Center()
}

// Intersect returns every crossing of the ray with the primitive's surface,
// including those at t <= 0. Callers decide which crossings are usable.
func (p *Primitive) Intersect(ray core.Ray) []Hit {
	local := p.Transform.RayToLocal(ray)

	var hits []Hit
	switch p.Kind {
	case KindSphere:
		hits = intersectSphere(local, p.Radius)
	case KindPlane:
		hits = intersectPlane(local, p.Normal)
	case KindBox:
		if !p.localBounds.Hit(local, 0, math.Inf(1)) {
			return nil
		}
		hits = intersectBox(local, p.HalfExtents)
	case KindTorus:
		if !p.localBounds.Hit(local, 0, math.Inf(1)) {
			return nil
		}
		hits = intersectTorus(local, p.Radius, p.MinorRadius)
	case KindCone:
		if !p.localBounds.Hit(local, 0, math.Inf(1)) {
			return nil
		}
		hits = intersectCone(local, p.Radius, p.Height)
	case KindCapsule:
		if !p.localBounds.Hit(local, 0, math.Inf(1)) {
			return nil
		}
		hits = intersectCapsule(local, p.Radius, p.Height)
	case KindMesh:
		hits = p.Mesh.Intersect(local)
	}

	for i := range hits {
		hits[i].Normal = p.Transform.NormalToWorld(hits[i].Normal)
		hits[i].Kind = p.Kind
		hits[i].Primitive = p
	}
	return hits
}
