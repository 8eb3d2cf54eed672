package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lufasu/pathtracer/pkg/core"
	"github.com/lufasu/pathtracer/pkg/geometry"
	"github.com/lufasu/pathtracer/pkg/material"
	"github.com/lufasu/pathtracer/pkg/renderer"
)

// sceneFile is the YAML scene description
type sceneFile struct {
	Render     renderSection   `yaml:"render"`
	Camera     cameraSection   `yaml:"camera"`
	Background *bgSection      `yaml:"background"`
	Spheres    []sphereSection `yaml:"spheres"`
}

type renderSection struct {
	Width           int   `yaml:"width"`
	Height          int   `yaml:"height"`
	SamplesPerPixel int   `yaml:"samples_per_pixel"`
	MaxDepth        int   `yaml:"max_depth"`
	Seed            int64 `yaml:"seed"`
	Workers         int   `yaml:"workers"`
}

type cameraSection struct {
	Center        []float64 `yaml:"center"`
	LookAt        []float64 `yaml:"look_at"`
	Up            []float64 `yaml:"up"`
	VFov          float64   `yaml:"vfov"`
	Aperture      float64   `yaml:"aperture"`
	FocusDistance float64   `yaml:"focus_distance"`
}

type bgSection struct {
	Top    []float64 `yaml:"top"`
	Bottom []float64 `yaml:"bottom"`
}

type sphereSection struct {
	Center   []float64       `yaml:"center"`
	Radius   float64         `yaml:"radius"`
	Material materialSection `yaml:"material"`
}

type materialSection struct {
	Type   string    `yaml:"type"`
	Albedo []float64 `yaml:"albedo"`
	Fuzz   float64   `yaml:"fuzz"`
	IOR    float64   `yaml:"ior"`
}

// Load reads and parses a YAML scene file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene file %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from a YAML document. Missing render and camera
// values fall back to the defaults of NewDefaultScene's configuration.
func Parse(data []byte) (*Scene, error) {
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	sampling := renderer.DefaultSamplingConfig()
	if file.Render.Width > 0 {
		sampling.Width = file.Render.Width
	}
	if file.Render.Height > 0 {
		sampling.Height = file.Render.Height
	}
	if file.Render.SamplesPerPixel > 0 {
		sampling.SamplesPerPixel = file.Render.SamplesPerPixel
	}
	if file.Render.MaxDepth > 0 {
		sampling.MaxDepth = file.Render.MaxDepth
	}
	if file.Render.Seed != 0 {
		sampling.Seed = file.Render.Seed
	}
	sampling.Workers = file.Render.Workers

	camera, err := buildCamera(file.Camera, sampling)
	if err != nil {
		return nil, err
	}

	topColor, bottomColor := skyTop, skyBottom
	if file.Background != nil {
		if topColor, err = toVec3(file.Background.Top, "background.top"); err != nil {
			return nil, err
		}
		if bottomColor, err = toVec3(file.Background.Bottom, "background.bottom"); err != nil {
			return nil, err
		}
	}

	world := geometry.NewHittableList()
	for i, sph := range file.Spheres {
		center, err := toVec3(sph.Center, fmt.Sprintf("spheres[%d].center", i))
		if err != nil {
			return nil, err
		}
		if sph.Radius == 0 {
			return nil, fmt.Errorf("spheres[%d]: radius must be non-zero", i)
		}
		mat, err := buildMaterial(sph.Material, i)
		if err != nil {
			return nil, err
		}
		world.Add(geometry.NewSphere(center, sph.Radius, mat))
	}

	return &Scene{
		World:       world,
		Camera:      camera,
		TopColor:    topColor,
		BottomColor: bottomColor,
		Sampling:    sampling,
	}, nil
}

func buildCamera(section cameraSection, sampling renderer.SamplingConfig) (renderer.CameraConfig, error) {
	config := renderer.CameraConfig{
		Center:        core.NewVec3(0, 0, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   float64(sampling.Width) / float64(sampling.Height),
		Aperture:      section.Aperture,
		FocusDistance: section.FocusDistance,
	}

	var err error
	if section.Center != nil {
		if config.Center, err = toVec3(section.Center, "camera.center"); err != nil {
			return config, err
		}
	}
	if section.LookAt != nil {
		if config.LookAt, err = toVec3(section.LookAt, "camera.look_at"); err != nil {
			return config, err
		}
	}
	if section.Up != nil {
		if config.Up, err = toVec3(section.Up, "camera.up"); err != nil {
			return config, err
		}
	}
	if section.VFov > 0 {
		config.VFov = section.VFov
	}
	return config, nil
}

func buildMaterial(section materialSection, index int) (core.Material, error) {
	switch section.Type {
	case "lambertian":
		albedo, err := toVec3(section.Albedo, fmt.Sprintf("spheres[%d].material.albedo", index))
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(albedo), nil
	case "metal":
		albedo, err := toVec3(section.Albedo, fmt.Sprintf("spheres[%d].material.albedo", index))
		if err != nil {
			return nil, err
		}
		return material.NewMetal(albedo, section.Fuzz), nil
	case "dielectric":
		ior := section.IOR
		if ior == 0 {
			ior = 1.5
		}
		return material.NewDielectric(ior), nil
	case "":
		return nil, fmt.Errorf("spheres[%d]: material type is required", index)
	default:
		return nil, fmt.Errorf("spheres[%d]: unknown material type %q", index, section.Type)
	}
}

func toVec3(values []float64, name string) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%s: expected 3 components, got %d", name, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
