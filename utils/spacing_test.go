// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

func TestSpacing_Octahedron(t *testing.T) {
	points := s2.PointVector{
		s2.PointFromCoords(1, 0, 0),
		s2.PointFromCoords(-1, 0, 0),
		s2.PointFromCoords(0, 1, 0),
		s2.PointFromCoords(0, -1, 0),
		s2.PointFromCoords(0, 0, 1),
		s2.PointFromCoords(0, 0, -1),
	}
	got, err := Spacing(points, 0)
	if err != nil {
		t.Fatalf("Spacing(octahedron) error = %v, want nil", err)
	}
	if got.Edges != 12 {
		t.Errorf("Spacing(octahedron).Edges = %v, want 12", got.Edges)
	}
	want := s1.Angle(math.Pi / 2)
	for name, a := range map[string]s1.Angle{"Min": got.Min, "Max": got.Max, "Mean": got.Mean} {
		if math.Abs(float64(a-want)) > 1e-9 {
			t.Errorf("Spacing(octahedron).%s = %v, want %v", name, a, want)
		}
	}
}

func TestSpacing_Invariants(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"minimal", 4},
		{"small", 10},
		{"medium", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Spacing(GenerateRandomPoints(tt.size, 0), 0)
			if err != nil {
				t.Fatalf("Spacing(...) error = %v, want nil", err)
			}
			// Euler's formula for a triangulated sphere: E = 3n - 6
			if want := 3*tt.size - 6; got.Edges != want {
				t.Errorf("Spacing(...).Edges = %v, want %v", got.Edges, want)
			}
			if got.Min > got.Mean || got.Mean > got.Max {
				t.Errorf("Spacing(...) = %+v, want Min <= Mean <= Max", got)
			}
		})
	}
}

func TestSpacing_InvalidInput(t *testing.T) {
	if _, err := Spacing(GenerateRandomPoints(3, 0), 0); err == nil {
		t.Errorf("Spacing(3 points) error = nil, want non-nil")
	}
	if _, err := Spacing(GenerateRandomPoints(10, 0), -1); err == nil {
		t.Errorf("Spacing(..., -1) error = nil, want non-nil")
	}
}
