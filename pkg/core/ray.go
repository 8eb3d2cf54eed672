package core

// Ray represents a ray with an origin and a unit-length direction.
// Coordinate system is: x is right, y is up, z is towards the viewer.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. The direction is normalized at construction
// so that intersection parameters measure world-space distance.
// Callers must not pass a zero direction; a zero vector is kept as-is
// rather than producing NaNs, but the ray will never hit anything.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
