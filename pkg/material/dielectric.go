package material

import (
	"math"

	"github.com/lufasu/pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts the ray through the surface where Snell's law allows
// it, falling back to mirror reflection on total internal reflection.
// When refraction is possible the choice between reflection and
// refraction is made probabilistically from the Schlick reflectance.
// Dielectrics never absorb and carry no color.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// hit.Normal already opposes the incident ray; FrontFace tells us
	// whether we are entering or exiting the material.
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		refractionRatio = d.RefractiveIndex
	}

	cosTheta := math.Min(rayIn.Direction.Negate().Dot(hit.Normal), 1.0)

	var direction core.Vec3
	refracted, canRefract := Refract(rayIn.Direction, hit.Normal, refractionRatio)
	if !canRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = Reflect(rayIn.Direction, hit.Normal)
	} else {
		direction = refracted
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}
