package geometry

import (
	"testing"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
)

func TestPlane_Intersect(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), testMaterial())

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "from above",
			origin:         core.NewVec3(0, 1, 0),
			direction:      core.NewVec3(0, -1, 0),
			expectedT:      2.0,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:           "from below faces the ray",
			origin:         core.NewVec3(3, -4, 2),
			direction:      core.NewVec3(0, 1, 0),
			expectedT:      3.0,
			expectedNormal: core.NewVec3(0, -1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := plane.Intersect(core.NewRay(tt.origin, tt.direction))
			if len(hits) != 1 {
				t.Fatalf("Expected 1 hit, got %d", len(hits))
			}
			assertHit(t, hits[0], tt.expectedT, tt.expectedNormal)
		})
	}
}

func TestPlane_Intersect_Parallel(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), testMaterial())
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))

	if hits := plane.Intersect(ray); len(hits) != 0 {
		t.Errorf("Expected parallel ray to miss, got %v", hits)
	}
}

func TestPlane_BoundingBox(t *testing.T) {
	t.Run("axis aligned planes are thin slabs", func(t *testing.T) {
		plane := NewPlane(core.NewVec3(0, 2, 0), core.NewVec3(0, 1, 0), testMaterial())
		bbox := plane.BoundingBox()

		if bbox.Min.Y > 2 || bbox.Max.Y < 2 {
			t.Errorf("Slab %v does not contain the plane", bbox)
		}
		if bbox.Size().Y > 0.01 {
			t.Errorf("Expected a thin slab, got height %f", bbox.Size().Y)
		}
	})

	t.Run("tilted planes get a large box", func(t *testing.T) {
		plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0), testMaterial())
		bbox := plane.BoundingBox()
		if bbox.Size().X < 1000 || bbox.Size().Y < 1000 || bbox.Size().Z < 1000 {
			t.Errorf("Expected a large box, got %v", bbox)
		}
	})
}
