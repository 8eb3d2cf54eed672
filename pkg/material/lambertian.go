package material

import (
	"github.com/lufasu/pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base reflected color, components in [0,1]
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements diffuse scattering: the outgoing direction is the
// surface normal offset by a random point inside the unit sphere, which
// approximates a cosine-weighted distribution. Lambertian surfaces
// always scatter.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	direction := hit.Normal.Add(core.SamplePointInUnitSphere(sampler.Get3D()))

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: l.Albedo,
	}, true
}
