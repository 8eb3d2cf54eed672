package renderer

import (
	"math"

	"github.com/lufasu/pathtracer/pkg/core"
)

// Minimum hit distance. Bounced rays start exactly on a surface, so a
// small epsilon keeps them from re-hitting their own origin.
const tMin = 0.001

// Integrator estimates the radiance arriving along camera rays by
// repeatedly intersecting, scattering, and accumulating attenuation.
type Integrator struct {
	world       core.Hittable
	topColor    core.Vec3
	bottomColor core.Vec3
	maxDepth    int
}

// NewIntegrator creates an integrator over the given world. Rays that
// escape are lit by a vertical gradient between bottomColor and topColor.
func NewIntegrator(world core.Hittable, topColor, bottomColor core.Vec3, maxDepth int) *Integrator {
	return &Integrator{
		world:       world,
		topColor:    topColor,
		bottomColor: bottomColor,
		maxDepth:    maxDepth,
	}
}

// RayColor traces a single ray and returns its linear radiance estimate.
// The loop carries (ray, throughput, depth) explicitly instead of
// recursing, so deep bounce limits cannot grow the call stack.
func (in *Integrator) RayColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; depth < in.maxDepth; depth++ {
		hit, isHit := in.world.Hit(ray, tMin, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(in.backgroundGradient(ray))
		}

		// A hit without a surface orientation cannot scatter
		if !hit.HasNormal || hit.Material == nil {
			return core.Vec3{}
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			// Absorbed: this path contributes nothing
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce budget exhausted. Treating the remaining light as zero
	// introduces a small energy-loss bias but bounds the work per ray.
	return core.Vec3{}
}

// backgroundGradient interpolates between the bottom and top background
// colors using the ray's vertical direction component.
func (in *Integrator) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return in.bottomColor.Lerp(in.topColor, t)
}
