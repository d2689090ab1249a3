package geometry

import (
	"math"
	"sort"
	"testing"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
)

func sortedHits(hits []Hit) []Hit {
	sort.Slice(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
	return hits
}

func TestTorus_Intersect(t *testing.T) {
	torus, err := NewTorus(core.NewVec3(0, 0, 0), 2.0, 0.5, core.Vec3{}, testMaterial())
	if err != nil {
		t.Fatalf("NewTorus failed: %v", err)
	}

	t.Run("through the ring", func(t *testing.T) {
		hits := sortedHits(torus.Intersect(core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0))))
		if len(hits) != 4 {
			t.Fatalf("Expected 4 hits, got %d", len(hits))
		}
		assertHit(t, hits[0], 2.5, core.NewVec3(1, 0, 0))
		assertHit(t, hits[1], 3.5, core.NewVec3(-1, 0, 0))
		assertHit(t, hits[2], 6.5, core.NewVec3(1, 0, 0))
		assertHit(t, hits[3], 7.5, core.NewVec3(-1, 0, 0))
	})

	t.Run("through the tube from above", func(t *testing.T) {
		hits := sortedHits(torus.Intersect(core.NewRay(core.NewVec3(2, 5, 0), core.NewVec3(0, -1, 0))))
		if len(hits) != 2 {
			t.Fatalf("Expected 2 hits, got %d", len(hits))
		}
		assertHit(t, hits[0], 4.5, core.NewVec3(0, 1, 0))
		assertHit(t, hits[1], 5.5, core.NewVec3(0, -1, 0))
	})

	t.Run("through the hole", func(t *testing.T) {
		hits := torus.Intersect(core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)))
		if len(hits) != 0 {
			t.Errorf("Expected miss, got %v", hits)
		}
	})

	t.Run("rejected by bounds", func(t *testing.T) {
		hits := torus.Intersect(core.NewRay(core.NewVec3(10, 10, 10), core.NewVec3(1, 0, 0)))
		if len(hits) != 0 {
			t.Errorf("Expected miss, got %v", hits)
		}
	})
}

func TestTorus_Intersect_Rotated(t *testing.T) {
	// Standing upright: the ring lies in the XY plane
	torus, err := NewTorus(core.NewVec3(0, 0, 0), 2.0, 0.5, core.NewVec3(math.Pi/2, 0, 0), testMaterial())
	if err != nil {
		t.Fatalf("NewTorus failed: %v", err)
	}

	hits := sortedHits(torus.Intersect(core.NewRay(core.NewVec3(0, 2, 5), core.NewVec3(0, 0, -1))))
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}
	assertHit(t, hits[0], 4.5, core.NewVec3(0, 0, 1))
	assertHit(t, hits[1], 5.5, core.NewVec3(0, 0, -1))
}

func TestNewTorus_InvalidRadii(t *testing.T) {
	tests := []struct {
		name       string
		radius     float64
		tubeRadius float64
	}{
		{"zero ring", 0, 0.5},
		{"negative tube", 1, -0.5},
		{"tube wider than ring", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTorus(core.Vec3{}, tt.radius, tt.tubeRadius, core.Vec3{}, testMaterial()); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestSolveQuartic(t *testing.T) {
	// (x-1)(x-2)(x-3)(x-4) = x^4 - 10x^3 + 35x^2 - 50x + 24
	roots := solveQuartic(1, -10, 35, -50, 24)
	sort.Float64s(roots)

	expected := []float64{1, 2, 3, 4}
	if len(roots) != len(expected) {
		t.Fatalf("Expected %d roots, got %v", len(expected), roots)
	}
	for i, root := range roots {
		if math.Abs(root-expected[i]) > 1e-9 {
			t.Errorf("Root %d: expected %f, got %f", i, expected[i], root)
		}
	}

	if roots := solveQuartic(1, 0, 0, 0, 1); len(roots) != 0 {
		t.Errorf("x^4 + 1 has no real roots, got %v", roots)
	}
}

func TestSolveCubic(t *testing.T) {
	// (x+1)(x-2)(x-5) = x^3 - 6x^2 + 3x + 10
	roots := solveCubic(1, -6, 3, 10)
	sort.Float64s(roots)

	expected := []float64{-1, 2, 5}
	if len(roots) != len(expected) {
		t.Fatalf("Expected %d roots, got %v", len(expected), roots)
	}
	for i, root := range roots {
		if math.Abs(root-expected[i]) > 1e-9 {
			t.Errorf("Root %d: expected %f, got %f", i, expected[i], root)
		}
	}
}
