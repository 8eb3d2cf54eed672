package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lufasu/pathtracer/pkg/core"
)

func testHit(normal core.Vec3, frontFace bool) core.HitRecord {
	hit := core.HitRecord{
		T:         1.0,
		Point:     core.NewVec3(0, 0, 0),
		Normal:    normal,
		HasNormal: true,
		FrontFace: frontFace,
	}
	return hit
}

func TestLambertian_AlwaysScatters(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.3, 0.3))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	hit := testHit(core.NewVec3(0, 0, 1), true)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Attenuation != lambertian.Albedo {
			t.Fatalf("Attenuation %v should equal albedo %v", scatter.Attenuation, lambertian.Albedo)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
		}
		if math.Abs(scatter.Scattered.Direction.Length()-1.0) > 1e-12 {
			t.Fatalf("Scattered direction not unit length: %f", scatter.Scattered.Direction.Length())
		}
	}
}

func TestLambertian_ScatterDistribution(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	normal := core.NewVec3(0, 0, 1)
	hit := testHit(normal, true)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	// Normal + point-in-unit-sphere biases directions toward the normal;
	// the average scattered direction should point up, and almost all
	// samples should be in the upper hemisphere.
	sum := core.NewVec3(0, 0, 0)
	below := 0
	const n = 5000
	for i := 0; i < n; i++ {
		scatter, _ := lambertian.Scatter(ray, hit, sampler)
		dir := scatter.Scattered.Direction
		sum = sum.Add(dir)
		if dir.Dot(normal) < 0 {
			below++
		}
	}

	mean := sum.Multiply(1.0 / n)
	if mean.Z < 0.5 {
		t.Errorf("Mean scattered direction should lean toward the normal, got %v", mean)
	}
	if below > 0 {
		t.Errorf("%d of %d scattered directions ended up below the surface", below, n)
	}
}
