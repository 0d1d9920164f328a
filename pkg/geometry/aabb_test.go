package geometry

import (
	"testing"

	"github.com/golang/geo/r3"

	"github.com/jmv97/go-raygeom/pkg/core"
)

func TestAABB_NewAABBFromPoints(t *testing.T) {
	points := []r3.Vector{
		{X: 1, Y: 2, Z: 3},
		{X: -1, Y: 5, Z: 0},
		{X: 4, Y: -2, Z: 2},
	}

	aabb := NewAABBFromPoints(points...)

	expectedMin := r3.Vector{X: -1, Y: -2, Z: 0}
	expectedMax := r3.Vector{X: 4, Y: 5, Z: 3}
	if aabb.Min != expectedMin {
		t.Errorf("Expected min %v, got %v", expectedMin, aabb.Min)
	}
	if aabb.Max != expectedMax {
		t.Errorf("Expected max %v, got %v", expectedMax, aabb.Max)
	}

	for _, p := range points {
		if !aabb.Contains(p) {
			t.Errorf("Expected box to contain %v", p)
		}
	}

	if empty := NewAABBFromPoints(); empty != (AABB{}) {
		t.Errorf("Expected zero AABB for no points, got %v", empty)
	}
}

func TestAABB_Hit(t *testing.T) {
	aabb := NewAABB(r3.Vector{X: -1, Y: -1, Z: -1}, r3.Vector{X: 1, Y: 1, Z: 1})

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
	}{
		{
			name:      "Ray through center",
			ray:       core.NewRay(r3.Vector{X: 0, Y: 0, Z: -5}, r3.Vector{X: 0, Y: 0, Z: 1}),
			shouldHit: true,
		},
		{
			name:      "Ray misses to the side",
			ray:       core.NewRay(r3.Vector{X: 3, Y: 0, Z: -5}, r3.Vector{X: 0, Y: 0, Z: 1}),
			shouldHit: false,
		},
		{
			name:      "Ray pointing away",
			ray:       core.NewRay(r3.Vector{X: 0, Y: 0, Z: -5}, r3.Vector{X: 0, Y: 0, Z: -1}),
			shouldHit: false,
		},
		{
			name:      "Parallel ray inside slab",
			ray:       core.NewRay(r3.Vector{X: 0.5, Y: -0.5, Z: -5}, r3.Vector{X: 0, Y: 0, Z: 1}),
			shouldHit: true,
		},
		{
			name:      "Parallel ray outside slab",
			ray:       core.NewRay(r3.Vector{X: 0, Y: 2, Z: -5}, r3.Vector{X: 0, Y: 0, Z: 1}),
			shouldHit: false,
		},
		{
			name:      "Diagonal ray through corner region",
			ray:       core.NewRay(r3.Vector{X: -5, Y: -5, Z: -5}, r3.Vector{X: 1, Y: 1, Z: 1}),
			shouldHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := aabb.Hit(tt.ray, 0.001, 1000); got != tt.shouldHit {
				t.Errorf("Expected hit=%v, got %v", tt.shouldHit, got)
			}
		})
	}
}

func TestAABB_UnionAndCenter(t *testing.T) {
	a := NewAABB(r3.Vector{X: 0, Y: 0, Z: 0}, r3.Vector{X: 1, Y: 1, Z: 1})
	b := NewAABB(r3.Vector{X: -2, Y: 0.5, Z: 0}, r3.Vector{X: 0.5, Y: 3, Z: 0.5})

	union := a.Union(b)
	expectedMin := r3.Vector{X: -2, Y: 0, Z: 0}
	expectedMax := r3.Vector{X: 1, Y: 3, Z: 1}
	if union.Min != expectedMin || union.Max != expectedMax {
		t.Errorf("Expected union [%v %v], got [%v %v]", expectedMin, expectedMax, union.Min, union.Max)
	}

	center := a.Center()
	if center != (r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}) {
		t.Errorf("Expected center (0.5,0.5,0.5), got %v", center)
	}
}

func TestAABB_SizeAndLongestAxis(t *testing.T) {
	tests := []struct {
		name     string
		aabb     AABB
		expected int
	}{
		{
			name:     "X longest",
			aabb:     NewAABB(r3.Vector{}, r3.Vector{X: 5, Y: 1, Z: 2}),
			expected: 0,
		},
		{
			name:     "Y longest",
			aabb:     NewAABB(r3.Vector{}, r3.Vector{X: 1, Y: 4, Z: 2}),
			expected: 1,
		},
		{
			name:     "Z longest",
			aabb:     NewAABB(r3.Vector{}, r3.Vector{X: 1, Y: 2, Z: 7}),
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.aabb.LongestAxis(); got != tt.expected {
				t.Errorf("Expected longest axis %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestAABB_TriangleCentroidAxisForSplits(t *testing.T) {
	// BVH builders bucket triangles by centroid along the box's longest axis;
	// the per-axis centroid must agree with the full centroid on that axis
	triangle := NewTriangle(
		r3.Vector{X: 0, Y: 0, Z: 0},
		r3.Vector{X: 6, Y: 0, Z: 0},
		r3.Vector{X: 3, Y: 2, Z: 1},
	)

	axis := triangle.BoundingBox().LongestAxis()
	if axis != 0 {
		t.Fatalf("Expected longest axis 0, got %d", axis)
	}
	if got := triangle.CentroidAxis(axis); got != triangle.Centroid().X {
		t.Errorf("CentroidAxis(%d) = %v, want %v", axis, got, triangle.Centroid().X)
	}
}
