package core

import (
	"math"
	"testing"
)

func TestNewRay_NormalizesDirection(t *testing.T) {
	tests := []struct {
		name      string
		direction Vec3
	}{
		{"already unit", NewVec3(0, 0, -1)},
		{"long axis-aligned", NewVec3(0, 10, 0)},
		{"arbitrary", NewVec3(1, 2, 3)},
		{"tiny", NewVec3(1e-8, -1e-8, 1e-8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(NewVec3(0, 0, 0), tt.direction)
			if math.Abs(ray.Direction.Length()-1.0) > 1e-12 {
				t.Errorf("Expected unit direction, got length %g", ray.Direction.Length())
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))

	if got := ray.At(0); got != NewVec3(1, 2, 3) {
		t.Errorf("At(0): got %v", got)
	}
	// Direction was normalized, so t measures distance
	if got := ray.At(4); got != NewVec3(1, 2, -1) {
		t.Errorf("At(4): got %v", got)
	}
}
