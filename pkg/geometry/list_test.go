package geometry

import (
	"math"
	"testing"

	"github.com/lufasu/pathtracer/pkg/core"
)

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Empty list should never report a hit")
	}
}

func TestHittableList_NearestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial())
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// The aggregate must return the nearer sphere's hit regardless of
	// insertion order.
	tests := []struct {
		name string
		list *HittableList
	}{
		{"near first", NewHittableList(near, far)},
		{"far first", NewHittableList(far, near)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.list.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected nearest hit at t=1.5, got t=%f", hit.T)
			}
		})
	}
}

func TestHittableList_OverlappingSpheres(t *testing.T) {
	// Two overlapping spheres along the ray's path; the aggregate hit
	// must equal the nearer sphere's own hit.
	a := NewSphere(core.NewVec3(0, 0, -3), 1.0, testMaterial())
	b := NewSphere(core.NewVec3(0, 0, -3.5), 1.0, testMaterial())
	list := NewHittableList(a, b)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	want, isHit := a.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Nearer sphere should be hit directly")
	}

	got, isHit := list.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Aggregate should report a hit")
	}
	if math.Abs(got.T-want.T) > 1e-12 {
		t.Errorf("Aggregate hit t=%f differs from nearer sphere's t=%f", got.T, want.T)
	}
	if got.Material != want.Material {
		t.Error("Aggregate hit should carry the nearer sphere's material")
	}
}

func TestHittableList_PruningRespectsBounds(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial())
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, testMaterial())
	list := NewHittableList(near, far)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Exclude the near sphere via tMin; the far sphere must still be found
	hit, isHit := list.Hit(ray, 3.0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit on far sphere")
	}
	if math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected t=4.5, got t=%f", hit.T)
	}

	// Exclude everything via tMax
	if _, isHit := list.Hit(ray, 0.001, 1.0); isHit {
		t.Error("Expected no hit with tMax before both spheres")
	}
}
