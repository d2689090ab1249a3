package geometry

import (
	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
)

// Face is a triangle borrowing its vertices from a MeshBuffer
type Face struct {
	buffer *MeshBuffer
	Index  [3]int
	bbox   core.AABB
}

func newFace(buffer *MeshBuffer, index [3]int) Face {
	v0, v1, v2 := buffer.Vertices[index[0]], buffer.Vertices[index[1]], buffer.Vertices[index[2]]
	return Face{
		buffer: buffer,
		Index:  index,
		bbox:   core.NewAABBFromPoints(v0, v1, v2),
	}
}

// Vertices returns the three vertex positions
func (f Face) Vertices() (core.Vec3, core.Vec3, core.Vec3) {
	return f.buffer.Vertices[f.Index[0]], f.buffer.Vertices[f.Index[1]], f.buffer.Vertices[f.Index[2]]
}

// BoundingBox returns the axis-aligned bounding box for this face
func (f Face) BoundingBox() core.AABB {
	return f.bbox
}

// Centroid returns the average of the three vertices
func (f Face) Centroid() core.Vec3 {
	v0, v1, v2 := f.Vertices()
	return v0.Add(v1).Add(v2).Multiply(1.0 / 3.0)
}

// Intersect tests the face with the Möller-Trumbore algorithm. With smooth set
// the normal is the barycentric blend of the vertex normals, otherwise the
// geometric normal in winding order.
func (f Face) Intersect(ray core.Ray, smooth bool) []Hit {
	v0, v1, v2 := f.Vertices()
	t, u, v, ok := IntersectTriangle(ray, v0, v1, v2)
	if !ok {
		return nil
	}

	var normal core.Vec3
	if smooth {
		n := f.buffer.Normals
		normal = n[f.Index[0]].Multiply(1 - u - v).
			Add(n[f.Index[1]].Multiply(u)).
			Add(n[f.Index[2]].Multiply(v)).
			Normalize()
	} else {
		normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	}

	return []Hit{{T: t, Normal: normal, Face: f.Index}}
}

// IntersectTriangle returns the ray parameter and barycentric coordinates of
// the crossing with triangle (v0, v1, v2). The parameter is not range checked.
func IntersectTriangle(ray core.Ray, v0, v1, v2 core.Vec3) (t, u, v float64, ok bool) {
	// Calculate two edge vectors
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	// Calculate determinant
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -Epsilon && a < Epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(v0)
	u = f * s.Dot(h)

	// Check if intersection is outside triangle
	if u < 0.0 || u > 1.0 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = f * ray.Direction.Dot(q)

	if v < 0.0 || u+v > 1.0 {
		return 0, 0, 0, false
	}

	return f * edge2.Dot(q), u, v, true
}
