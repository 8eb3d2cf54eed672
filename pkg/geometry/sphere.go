package geometry

import (
	"math"

	"github.com/lufasu/pathtracer/pkg/core"
)

// Sphere represents a sphere primitive with a surface material
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere. The valid interval is
// half-open: tMin <= t < tMax.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Substituting the ray into the sphere equation gives a quadratic
	// t² + bt + c = 0 (the t² coefficient is 1 since directions are unit).
	oc := ray.Origin.Subtract(s.Center)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4.0*c
	if discriminant < 0 {
		return nil, false
	}

	// Try the closer root first. A tangent hit (discriminant == 0)
	// yields the same t on both branches.
	sqrtD := math.Sqrt(discriminant)
	root := (-b - sqrtD) / 2.0
	if root < tMin || root >= tMax {
		root = (-b + sqrtD) / 2.0
		if root < tMin || root >= tMax {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal is unit length by construction; normalize anyway to
	// absorb floating-point drift on large spheres.
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius).Normalize()
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
