package geometry

import (
	"math"
	"testing"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
)

func TestIntersectTriangle(t *testing.T) {
	v0 := core.NewVec3(-1, -1, 0)
	v1 := core.NewVec3(1, -1, 0)
	v2 := core.NewVec3(0, 1, 0)

	t.Run("hit", func(t *testing.T) {
		tHit, _, _, ok := IntersectTriangle(core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)), v0, v1, v2)
		if !ok {
			t.Fatal("Expected hit, but got miss")
		}
		if math.Abs(tHit-1.0) > 1e-9 {
			t.Errorf("Expected t=1, got t=%f", tHit)
		}
	})

	t.Run("outside", func(t *testing.T) {
		if _, _, _, ok := IntersectTriangle(core.NewRay(core.NewVec3(5, 5, -1), core.NewVec3(0, 0, 1)), v0, v1, v2); ok {
			t.Error("Expected miss for ray outside the triangle")
		}
	})

	t.Run("parallel", func(t *testing.T) {
		if _, _, _, ok := IntersectTriangle(core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(1, 0, 0)), v0, v1, v2); ok {
			t.Error("Expected miss for ray parallel to the triangle")
		}
	})
}

func singleTriangleBuffer() *MeshBuffer {
	return NewMeshBuffer(
		[]core.Vec3{core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0)},
		[]core.Vec3{core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0)},
		[]int{0, 1, 2},
	)
}

func TestFace_Intersect(t *testing.T) {
	buffer := singleTriangleBuffer()
	ray := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1))

	t.Run("flat", func(t *testing.T) {
		mesh := NewMesh(buffer, false)
		hits := mesh.Intersect(ray)
		if len(hits) != 1 {
			t.Fatalf("Expected exactly 1 hit, got %d", len(hits))
		}
		assertHit(t, hits[0], 1.0, core.NewVec3(0, 0, 1))
		if hits[0].Face != [3]int{0, 1, 2} {
			t.Errorf("Expected face index triple [0 1 2], got %v", hits[0].Face)
		}
	})

	t.Run("smooth", func(t *testing.T) {
		mesh := NewMesh(buffer, true)
		hits := mesh.Intersect(ray)
		if len(hits) != 1 {
			t.Fatalf("Expected exactly 1 hit, got %d", len(hits))
		}
		// (0,0) has barycentric weights (0.25, 0.25, 0.5)
		expected := core.NewVec3(0.5, 0, 0.5).Normalize()
		assertHit(t, hits[0], 1.0, expected)
	})
}

func TestFace_Centroid(t *testing.T) {
	mesh := NewMesh(singleTriangleBuffer(), false)
	face := mesh.tree.Item(0)

	expected := core.NewVec3(0, -1.0/3.0, 0)
	if !face.Centroid().ApproxEquals(expected, 1e-12) {
		t.Errorf("Expected centroid %v, got %v", expected, face.Centroid())
	}
}

func TestNewMesh_Panics(t *testing.T) {
	tests := []struct {
		name  string
		build func()
	}{
		{"index out of range", func() {
			NewMesh(&MeshBuffer{Vertices: []core.Vec3{{}, {}, {}}, Indices: [][3]int{{0, 1, 3}}}, false)
		}},
		{"index count not a multiple of three", func() {
			NewMeshBuffer([]core.Vec3{{}, {}, {}}, nil, []int{0, 1})
		}},
		{"smooth without normals", func() {
			NewMesh(&MeshBuffer{Vertices: []core.Vec3{{}, {}, {}}, Indices: [][3]int{{0, 1, 2}}}, true)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected panic")
				}
			}()
			tt.build()
		})
	}
}

func TestMeshInstance_Intersect(t *testing.T) {
	mesh := NewMesh(NewIcosphere(2), true)
	transform := core.NewTransform(core.NewVec3(0, 0, -5), core.Vec3{}, core.NewVec3(2, 2, 2))
	instance := NewMeshInstance(mesh, transform, testMaterial())

	// Slightly off axis so the ray does not pass through a shared vertex
	hits := sortedHits(instance.Intersect(core.NewRay(core.NewVec3(0.05, 0.07, 0), core.NewVec3(0, 0, -1))))
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits through the sphere mesh, got %d", len(hits))
	}

	// The tessellated surface lies slightly inside the unit sphere
	if hits[0].T < 3.0 || hits[0].T > 3.1 {
		t.Errorf("Expected entry near t=3, got %f", hits[0].T)
	}
	if hits[1].T < 6.9 || hits[1].T > 7.0 {
		t.Errorf("Expected exit near t=7, got %f", hits[1].T)
	}
	if hits[0].Normal.Z < 0.9 {
		t.Errorf("Expected entry normal facing +Z, got %v", hits[0].Normal)
	}
	if hits[0].Kind != KindMesh || hits[0].Primitive != instance {
		t.Errorf("Expected mesh hit on the instance, got %v", hits[0].Kind)
	}

	bbox := instance.BoundingBox()
	if !bbox.Min.ApproxEquals(core.NewVec3(-2, -2, -7), 1e-9) || !bbox.Max.ApproxEquals(core.NewVec3(2, 2, -3), 1e-9) {
		t.Errorf("Unexpected bounding box %v", bbox)
	}
}

func TestNewIcosphere(t *testing.T) {
	for subdivisions, expectedFaces := range []int{20, 80, 320} {
		buffer := NewIcosphere(subdivisions)
		if len(buffer.Indices) != expectedFaces {
			t.Errorf("Subdivision %d: expected %d faces, got %d", subdivisions, expectedFaces, len(buffer.Indices))
		}
		for i, v := range buffer.Vertices {
			if math.Abs(v.Length()-1) > 1e-9 {
				t.Fatalf("Vertex %d not on the unit sphere: %v", i, v)
			}
		}
	}
}
