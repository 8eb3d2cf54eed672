package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lufasu/pathtracer/pkg/core"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed for per-row random streams
	Workers         int   // Worker goroutines; 0 = runtime.NumCPU()
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           800,
		Height:          400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Scene is the data source a renderer consumes. Declared here so the
// scene package can depend on renderer types without a cycle.
type Scene interface {
	GetCameraConfig() CameraConfig
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetWorld() core.Hittable
	GetSamplingConfig() SamplingConfig
}

// Renderer samples every pixel of a scene and assembles the result into
// a packed framebuffer, fanning rows out across a worker pool.
type Renderer struct {
	scene  Scene
	logger *zap.Logger
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(scene Scene) *Renderer {
	return &Renderer{
		scene:  scene,
		logger: zap.NewNop(),
	}
}

// SetLogger attaches a logger for render progress and statistics
func (r *Renderer) SetLogger(logger *zap.Logger) {
	r.logger = logger
}

// Render traces the full image and returns the framebuffer and stats.
//
// Rows are the unit of parallel work: each row task owns a disjoint
// slice of the framebuffer and an independent random stream seeded from
// the base seed plus the row index. No lock guards the buffer (writers
// never overlap), and the output is byte-identical for a fixed seed
// regardless of the worker count.
func (r *Renderer) Render() (*Framebuffer, RenderStats) {
	config := r.scene.GetSamplingConfig()
	camera := NewCamera(r.scene.GetCameraConfig())
	topColor, bottomColor := r.scene.GetBackgroundColors()
	integrator := NewIntegrator(r.scene.GetWorld(), topColor, bottomColor, config.MaxDepth)

	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	r.logger.Info("starting render",
		zap.Int("width", config.Width),
		zap.Int("height", config.Height),
		zap.Int("samplesPerPixel", config.SamplesPerPixel),
		zap.Int("maxDepth", config.MaxDepth),
		zap.Int("workers", workers),
		zap.Int64("seed", config.Seed))

	fb := NewFramebuffer(config.Width, config.Height)
	rows := make(chan int, config.Height)
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				r.renderRow(camera, integrator, fb, config, y)
			}
		}()
	}

	for y := 0; y < config.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	stats := RenderStats{
		TotalPixels:  config.Width * config.Height,
		TotalSamples: config.Width * config.Height * config.SamplesPerPixel,
		Workers:      workers,
		Elapsed:      time.Since(start),
	}

	r.logger.Info("render complete",
		zap.Duration("elapsed", stats.Elapsed),
		zap.Int("totalSamples", stats.TotalSamples),
		zap.Float64("samplesPerSecond", stats.SamplesPerSecond()))

	return fb, stats
}

// renderRow traces every pixel of row y into the row's buffer slice
func (r *Renderer) renderRow(camera *Camera, integrator *Integrator, fb *Framebuffer, config SamplingConfig, y int) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(config.Seed + int64(y))))
	row := fb.Row(y)
	invSamples := 1.0 / float64(config.SamplesPerPixel)

	for x := 0; x < config.Width; x++ {
		accum := core.Vec3{}
		for sample := 0; sample < config.SamplesPerPixel; sample++ {
			// Jittered sub-pixel coordinates; the camera's t axis runs
			// bottom-up while framebuffer rows run top-down, so flip y.
			s := (float64(x) + sampler.Get1D()) / float64(config.Width)
			t := (float64(config.Height-1-y) + sampler.Get1D()) / float64(config.Height)

			ray := camera.GetRay(s, t, sampler)
			accum = accum.Add(integrator.RayColor(ray, sampler))
		}
		row[x] = PackColor(accum.Multiply(invSamples))
	}
}
