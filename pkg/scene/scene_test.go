package scene

import (
	"math/rand"
	"testing"

	"github.com/lufasu/pathtracer/pkg/core"
	"github.com/lufasu/pathtracer/pkg/renderer"
)

// The scene types must satisfy the renderer's data-source contract
var _ renderer.Scene = (*Scene)(nil)

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if len(s.World.Hittables) != 5 {
		t.Errorf("Expected 5 spheres, got %d", len(s.World.Hittables))
	}
	if s.Camera.Up != core.NewVec3(0, 1, 0) {
		t.Errorf("Unexpected up vector %v", s.Camera.Up)
	}

	top, bottom := s.GetBackgroundColors()
	if top != skyTop || bottom != skyBottom {
		t.Errorf("Unexpected background colors %v / %v", top, bottom)
	}
	if s.GetSamplingConfig().SamplesPerPixel <= 0 {
		t.Error("Default sampling config should set a sample count")
	}
}

func TestNewCoverScene_Reproducible(t *testing.T) {
	first := NewCoverScene(core.NewRandomSampler(rand.New(rand.NewSource(42))))
	second := NewCoverScene(core.NewRandomSampler(rand.New(rand.NewSource(42))))

	if len(first.World.Hittables) != len(second.World.Hittables) {
		t.Fatalf("Same seed produced different sphere counts: %d vs %d",
			len(first.World.Hittables), len(second.World.Hittables))
	}

	// Ground plus three feature spheres plus most of a 22x22 grid
	if len(first.World.Hittables) < 300 {
		t.Errorf("Cover scene unexpectedly sparse: %d spheres", len(first.World.Hittables))
	}
}
