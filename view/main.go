// Command view renders a scene and presents it in an SDL2 window,
// closing on Escape or window close.
package main

import (
	"flag"
	"math/rand"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/lufasu/pathtracer/pkg/core"
	"github.com/lufasu/pathtracer/pkg/renderer"
	"github.com/lufasu/pathtracer/pkg/scene"
)

func init() {
	// SDL event handling must stay on the main OS thread
	runtime.LockOSThread()
}

func main() {
	sceneFlag := flag.String("scene", "default", "Scene: 'default', 'cover', or a path to a YAML scene file")
	samples := flag.Int("samples", 0, "Override samples per pixel")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = all CPUs)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	selected, err := loadScene(*sceneFlag)
	if err != nil {
		logger.Fatal("failed to load scene", zap.String("scene", *sceneFlag), zap.Error(err))
	}
	if *samples > 0 {
		selected.Sampling.SamplesPerPixel = *samples
	}
	if *workers > 0 {
		selected.Sampling.Workers = *workers
	}

	r := renderer.NewRenderer(selected)
	r.SetLogger(logger)
	fb, _ := r.Render()

	if err := show(fb); err != nil {
		logger.Fatal("display failed", zap.Error(err))
	}
}

func loadScene(name string) (*scene.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(), nil
	case "cover":
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
		return scene.NewCoverScene(sampler), nil
	default:
		return scene.Load(name)
	}
}

// show opens a window sized to the framebuffer, blits the image once,
// and pumps events until the user quits
func show(fb *renderer.Framebuffer) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("lufasu",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(fb.Width()), int32(fb.Height()), sdl.WINDOW_SHOWN)
	if err != nil {
		return err
	}
	defer window.Destroy()

	surface, err := window.GetSurface()
	if err != nil {
		return err
	}

	img := fb.ToImage()
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			surface.Set(x, y, img.RGBAAt(x, y))
		}
	}
	if err := window.UpdateSurface(); err != nil {
		return err
	}

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			}
		}
		sdl.Delay(33)
	}
}
