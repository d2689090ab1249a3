package geometry

import (
	"fmt"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/kdtree"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/material"
)

// MeshBuffer is the shared vertex storage of one or more meshes
type MeshBuffer struct {
	Vertices []core.Vec3
	Normals  []core.Vec3 // Optional, one per vertex
	UVs      []core.Vec2 // Optional, one per vertex
	Indices  [][3]int
}

// NewMeshBuffer creates a buffer from a flat index list where each group of 3
// indices forms a triangle
func NewMeshBuffer(vertices, normals []core.Vec3, indices []int) *MeshBuffer {
	if len(indices)%3 != 0 {
		panic("Face indices must be a multiple of 3")
	}

	triples := make([][3]int, len(indices)/3)
	for i := range triples {
		triples[i] = [3]int{indices[i*3], indices[i*3+1], indices[i*3+2]}
	}

	return &MeshBuffer{
		Vertices: vertices,
		Normals:  normals,
		Indices:  triples,
	}
}

// Mesh is a triangle mesh in its own local space with a K-D tree over its
// faces. Instances place it in the world with NewMeshInstance.
type Mesh struct {
	Buffer *MeshBuffer
	Smooth bool // Interpolate vertex normals instead of using face normals
	tree   *kdtree.Tree[Face]
}

// NewMesh builds the face tree of a buffer. Out-of-range indices and smooth
// shading without per-vertex normals are programming errors and panic.
func NewMesh(buffer *MeshBuffer, smooth bool) *Mesh {
	if smooth && len(buffer.Normals) != len(buffer.Vertices) {
		panic(fmt.Sprintf("smooth mesh needs one normal per vertex, got %d normals for %d vertices",
			len(buffer.Normals), len(buffer.Vertices)))
	}
	if buffer.UVs != nil && len(buffer.UVs) != len(buffer.Vertices) {
		panic("Number of UVs must match number of vertices")
	}

	faces := make([]Face, len(buffer.Indices))
	for i, index := range buffer.Indices {
		for _, vi := range index {
			if vi < 0 || vi >= len(buffer.Vertices) {
				panic("Face index out of bounds")
			}
		}
		faces[i] = newFace(buffer, index)
	}

	return &Mesh{
		Buffer: buffer,
		Smooth: smooth,
		tree:   kdtree.Build(faces),
	}
}

// Intersect queries the face tree with a local-space ray
func (m *Mesh) Intersect(ray core.Ray) []Hit {
	return kdtree.Collect(m.tree, ray, func(_ int, face Face) []Hit {
		return face.Intersect(ray, m.Smooth)
	})
}

// BoundingBox returns the local-space bounding box of all faces
func (m *Mesh) BoundingBox() core.AABB {
	return m.tree.BoundingBox()
}

// FaceCount returns the number of triangles in this mesh
func (m *Mesh) FaceCount() int {
	return m.tree.Len()
}

// Stats returns the statistics of the face tree
func (m *Mesh) Stats() kdtree.Stats {
	return m.tree.Stats()
}

// NewMeshInstance places a shared mesh in the world. The transform's rotation,
// scale and translation map world rays into the mesh's local space.
func NewMeshInstance(mesh *Mesh, transform core.Transform, mat *material.Material) *Primitive {
	p := &Primitive{
		Kind:      KindMesh,
		Material:  mat,
		Transform: transform,
		Mesh:      mesh,
	}
	return p.finalize()
}
