package material

import (
	"math"

	"github.com/lufasu/pathtracer/pkg/core"
)

// Reflect calculates the mirror reflection of v off a surface with
// normal n: r = v - 2*dot(v,n)*n
func Reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract applies Snell's law to bend v through a surface with normal n
// and the given ratio of refractive indices. Returns false when the
// refraction discriminant is negative (total internal reflection).
func Refract(v, n core.Vec3, indexRatio float64) (core.Vec3, bool) {
	unit := v.Normalize()
	cosTheta := unit.Dot(n)
	discriminant := 1.0 - indexRatio*indexRatio*(1.0-cosTheta*cosTheta)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := unit.Subtract(n.Multiply(cosTheta)).Multiply(indexRatio).
		Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// Reflectance calculates the Fresnel reflectance for the given incidence
// cosine using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
