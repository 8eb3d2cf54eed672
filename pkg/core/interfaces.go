package core

// HitRecord contains information about a ray-object intersection.
// Records are created per intersection query and consumed immediately
// by the integrator; they are never stored.
type HitRecord struct {
	T         float64 // Parameter t along the ray, tMin <= T < tMax for the query
	Point     Vec3    // Point of intersection in world space
	Normal    Vec3    // Surface normal at the intersection, opposing the incident ray
	HasNormal bool    // False for hittables without a surface orientation (e.g. fog)
	FrontFace bool    // Whether the ray hit the front face
	Material  Material
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
	h.HasNormal = true
}

// Hittable is the interface for objects that can be intersected by rays.
// The interval is half-open: a hit is valid when tMin <= t < tMax. The
// open upper bound keeps a primitive from re-hitting the exact point a
// bounced ray starts from.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The outgoing scattered ray
	Attenuation Vec3 // Color factor applied to the scattered ray's contribution
}

// Material is the interface for surface scattering. Scatter returns
// false when the ray is absorbed, which terminates the path with zero
// contribution.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}
