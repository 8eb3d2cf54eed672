package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lufasu/pathtracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 2.0,
	}
}

func TestCamera_CenterRayPointsAtTarget(t *testing.T) {
	config := testCameraConfig()
	camera := NewCamera(config)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := camera.GetRay(0.5, 0.5, sampler)

	if ray.Origin != config.Center {
		t.Errorf("Zero-aperture ray should start at the eye, got %v", ray.Origin)
	}

	expected := config.LookAt.Subtract(config.Center).Normalize()
	if ray.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Center ray should aim at LookAt: expected %v, got %v", expected, ray.Direction)
	}
}

func TestCamera_RayDirectionsAreUnit(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.2
	camera := NewCamera(config)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(sampler.Get1D(), sampler.Get1D(), sampler)
		if math.Abs(ray.Direction.Length()-1.0) > 1e-12 {
			t.Fatalf("Camera ray direction not unit length: %f", ray.Direction.Length())
		}
	}
}

func TestCamera_ZeroApertureSharesOrigin(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		ray := camera.GetRay(sampler.Get1D(), sampler.Get1D(), sampler)
		if ray.Origin != testCameraConfig().Center {
			t.Fatalf("Zero aperture should not offset the origin, got %v", ray.Origin)
		}
	}
}

func TestCamera_LensRaysConvergeOnFocalPlane(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.5
	// FocusDistance 0 auto-focuses on LookAt
	camera := NewCamera(config)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Every center-pixel ray, whatever its lens offset, must pass through
	// the focal-plane target (here LookAt itself).
	originsDiffer := false
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		if ray.Origin != config.Center {
			originsDiffer = true
		}

		distance := config.LookAt.Subtract(ray.Origin).Length()
		atFocus := ray.At(distance)
		if atFocus.Subtract(config.LookAt).Length() > 1e-9 {
			t.Fatalf("Lens ray misses focal target: reached %v, expected %v", atFocus, config.LookAt)
		}
	}

	if !originsDiffer {
		t.Error("Non-zero aperture should offset ray origins across the lens")
	}
}

func TestCamera_ImagePlaneOrientation(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	bottom := camera.GetRay(0.5, 0.0, sampler)
	top := camera.GetRay(0.5, 1.0, sampler)
	left := camera.GetRay(0.0, 0.5, sampler)
	right := camera.GetRay(1.0, 0.5, sampler)

	if !(top.Direction.Y > bottom.Direction.Y) {
		t.Error("t=1 should aim higher than t=0")
	}
	if !(right.Direction.X > left.Direction.X) {
		t.Error("s=1 should aim further right than s=0")
	}
}
