package renderer

import (
	"math"

	"github.com/lufasu/pathtracer/pkg/core"
)

// CameraConfig holds user-facing camera parameters
type CameraConfig struct {
	Center        core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera is aimed at
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Distance to the focal plane; 0 = distance to LookAt
}

// Camera maps normalized image-plane coordinates and a lens sample to
// world-space rays. All basis vectors are derived once at construction.
type Camera struct {
	origin     core.Vec3
	lowerLeft  core.Vec3
	horizontal core.Vec3
	vertical   core.Vec3
	u, v       core.Vec3
	lensRadius float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2.0)
	halfWidth := config.AspectRatio * halfHeight

	// Orthonormal basis: w points from the target back to the eye
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	lowerLeft := config.Center.
		Subtract(u.Multiply(halfWidth * focusDistance)).
		Subtract(v.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:     config.Center,
		lowerLeft:  lowerLeft,
		horizontal: u.Multiply(2 * halfWidth * focusDistance),
		vertical:   v.Multiply(2 * halfHeight * focusDistance),
		u:          u,
		v:          v,
		lensRadius: config.Aperture / 2.0,
	}
}

// GetRay generates a ray for screen coordinates (s, t) in [0,1), where
// s=0 is the left edge and t=0 the bottom edge. The ray origin is offset
// by a random lens sample and the direction targets the focal-plane
// point minus that offset, so rays through different lens points still
// converge on the same focal-plane target.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	var offset core.Vec3
	if c.lensRadius > 0 {
		lens := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
		offset = c.u.Multiply(lens.X).Add(c.v.Multiply(lens.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeft.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}
