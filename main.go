package main

import (
	"flag"
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lufasu/pathtracer/pkg/core"
	"github.com/lufasu/pathtracer/pkg/renderer"
	"github.com/lufasu/pathtracer/pkg/scene"
)

func main() {
	sceneFlag := flag.String("scene", "default", "Scene: 'default', 'cover', or a path to a YAML scene file")
	width := flag.Int("width", 0, "Override image width")
	height := flag.Int("height", 0, "Override image height")
	samples := flag.Int("samples", 0, "Override samples per pixel")
	depth := flag.Int("depth", 0, "Override maximum bounce depth")
	seed := flag.Int64("seed", 0, "Override the base random seed")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = all CPUs)")
	output := flag.String("o", "", "Output PNG path (default output/render_<timestamp>.png)")
	logFile := flag.String("log-file", "", "Also write JSON logs to this rotating file")
	flag.Parse()

	logger := newLogger(*logFile)
	defer logger.Sync() //nolint:errcheck

	selected, err := loadScene(*sceneFlag, *seed)
	if err != nil {
		logger.Fatal("failed to load scene", zap.String("scene", *sceneFlag), zap.Error(err))
	}
	applyOverrides(selected, *width, *height, *samples, *depth, *seed, *workers)

	r := renderer.NewRenderer(selected)
	r.SetLogger(logger)
	fb, stats := r.Render()

	path := *output
	if path == "" {
		timestamp := time.Now().Format("20060102_150405")
		path = filepath.Join("output", fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := writePNG(fb, path); err != nil {
		logger.Fatal("failed to write image", zap.String("path", path), zap.Error(err))
	}

	logger.Info("image saved",
		zap.String("path", path),
		zap.Duration("renderTime", stats.Elapsed),
		zap.Int("workers", stats.Workers))
}

// loadScene resolves the -scene flag to a scene: a builtin name or a
// YAML file path
func loadScene(name string, seed int64) (*scene.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(), nil
	case "cover":
		if seed == 0 {
			seed = 42
		}
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		return scene.NewCoverScene(sampler), nil
	default:
		return scene.Load(name)
	}
}

// applyOverrides folds non-zero CLI flags into the scene's sampling and
// camera configuration
func applyOverrides(s *scene.Scene, width, height, samples, depth int, seed int64, workers int) {
	if width > 0 {
		s.Sampling.Width = width
	}
	if height > 0 {
		s.Sampling.Height = height
	}
	if width > 0 || height > 0 {
		s.Camera.AspectRatio = float64(s.Sampling.Width) / float64(s.Sampling.Height)
	}
	if samples > 0 {
		s.Sampling.SamplesPerPixel = samples
	}
	if depth > 0 {
		s.Sampling.MaxDepth = depth
	}
	if seed != 0 {
		s.Sampling.Seed = seed
	}
	if workers > 0 {
		s.Sampling.Workers = workers
	}
}

func writePNG(fb *renderer.Framebuffer, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, fb.ToImage())
}

// newLogger builds a console logger, optionally teeing JSON output into
// a rotating file
func newLogger(logFile string) *zap.Logger {
	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), zapcore.InfoLevel),
	}

	if logFile != "" {
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		})
		cores = append(cores, zapcore.NewCore(fileEncoder, sink, zapcore.InfoLevel))
	}

	return zap.New(zapcore.NewTee(cores...))
}
