package scene

import (
	"github.com/lufasu/pathtracer/pkg/core"
	"github.com/lufasu/pathtracer/pkg/geometry"
	"github.com/lufasu/pathtracer/pkg/material"
	"github.com/lufasu/pathtracer/pkg/renderer"
)

// Scene bundles everything a render needs: the primitive aggregate, the
// camera parameters, the background gradient, and sampling settings.
// Scenes are immutable once handed to a renderer and safe to share
// across workers.
type Scene struct {
	World       *geometry.HittableList
	Camera      renderer.CameraConfig
	TopColor    core.Vec3
	BottomColor core.Vec3
	Sampling    renderer.SamplingConfig
}

// GetCameraConfig implements renderer.Scene
func (s *Scene) GetCameraConfig() renderer.CameraConfig { return s.Camera }

// GetBackgroundColors implements renderer.Scene
func (s *Scene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() core.Hittable { return s.World }

// GetSamplingConfig implements renderer.Scene
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig { return s.Sampling }

// skyTop and skyBottom are the default background gradient colors
var (
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
)

// NewDefaultScene creates the classic arrangement: a diffuse sphere
// resting on a giant ground sphere, flanked by a fuzzy metal sphere and
// a hollow glass sphere.
func NewDefaultScene() *Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		// Negative radius flips the normal inward, hollowing the glass
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
	)

	return &Scene{
		World: world,
		Camera: renderer.CameraConfig{
			Center:      core.NewVec3(-0.5, 0.75, 1.75),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        35,
			AspectRatio: 2.0,
			Aperture:    0.1,
		},
		TopColor:    skyTop,
		BottomColor: skyBottom,
		Sampling:    renderer.DefaultSamplingConfig(),
	}
}

// NewCoverScene creates a field of small randomized spheres around three
// feature spheres (diffuse, glass, mirror). The sampler drives sphere
// placement and material choice, so a fixed stream reproduces the same
// scene.
func NewCoverScene(sampler core.Sampler) *Scene {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			switch choice := sampler.Get1D(); {
			case choice < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				mat = material.NewLambertian(albedo)
			case choice < 0.95:
				albedo := sampler.Get3D().Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
				mat = material.NewMetal(albedo, 0.5*sampler.Get1D())
			default:
				mat = material.NewDielectric(1.5)
			}
			world.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	world.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	return &Scene{
		World: world,
		Camera: renderer.CameraConfig{
			Center:        core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20,
			AspectRatio:   2.0,
			Aperture:      0.1,
			FocusDistance: 10,
		},
		TopColor:    skyTop,
		BottomColor: skyBottom,
		Sampling:    renderer.DefaultSamplingConfig(),
	}
}
