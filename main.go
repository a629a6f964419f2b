package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/tinycg/go-whitted-raytracer/pkg/core"
	"github.com/tinycg/go-whitted-raytracer/pkg/integrator"
	"github.com/tinycg/go-whitted-raytracer/pkg/renderer"
	"github.com/tinycg/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "classic", "Scene: 'classic', 'single', 'random' or 'montecarlo'")
	strategy := flag.String("strategy", "", "Ray-cast strategy: 'whitted' or 'montecarlo' (default depends on scene)")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	antialias := flag.Bool("antialias", false, "Enable jittered multi-sampling per pixel")
	samples := flag.Int("samples", renderer.DefaultSamplesPerPixel, "Samples per pixel when antialiasing")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = number of CPUs)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  classic    - material showcase: spheres, gradient sphere, boxes, mirror floor")
		fmt.Println("  single     - one large red-rubber sphere under three lights")
		fmt.Println("  random     - seeded field of small rubber/glass balls around three big spheres")
		fmt.Println("  montecarlo - diffuse spheres under a sky gradient (stochastic strategy)")
		fmt.Println()
		fmt.Println("Output is saved to output/<scene>/render_<timestamp>.png")
		return
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	// The montecarlo scene defaults to the stochastic strategy with
	// antialiasing; everything else defaults to Whitted.
	if *strategy == "" {
		if *sceneType == "montecarlo" {
			*strategy = "montecarlo"
		} else {
			*strategy = "whitted"
		}
	}

	caster, err := buildCaster(*strategy)
	if err != nil {
		logger.Fatalf("error: %v", err)
	}

	selectedScene, camera, err := buildScene(*sceneType, caster)
	if err != nil {
		logger.Fatalf("error building scene: %v", err)
	}

	cameraBuilder := camera.
		Antialiasing(*antialias || *sceneType == "montecarlo").
		SamplesPerPixel(*samples)

	r := renderer.NewRenderer(selectedScene, cameraBuilder.Build(), *width, *height).
		SetNumWorkers(*workers).
		SetLogger(logger)

	logger.Printf("rendering %dx%d '%s' scene with the %s strategy", *width, *height, *sceneType, *strategy)
	img, stats := r.Render()
	logger.Printf("done in %v", stats.Elapsed)

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		logger.Fatalf("error creating output directory: %v", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		logger.Fatalf("error creating file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		logger.Fatalf("error saving PNG: %v", err)
	}

	logger.Printf("render saved as %s", filename)
}

// buildCaster maps the strategy flag to a ray caster
func buildCaster(strategy string) (scene.RayCaster, error) {
	switch strategy {
	case "whitted":
		return integrator.NewWhitted(), nil
	case "montecarlo":
		return integrator.NewMonteCarlo(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

// buildScene maps the scene flag to a preset scene and its camera
func buildScene(sceneType string, caster scene.RayCaster) (*scene.Scene, *renderer.CameraBuilder, error) {
	camera := renderer.NewCameraBuilder()

	switch sceneType {
	case "classic":
		s, err := scene.NewClassicScene(caster)
		return s, camera, err
	case "single":
		s, err := scene.NewSingleSphereScene(caster)
		return s, camera, err
	case "random":
		s, err := scene.NewRandomBallScene(caster)
		camera.Position(core.NewVec3(0, 2, 4))
		return s, camera, err
	case "montecarlo":
		s, err := scene.NewMonteCarloScene(caster)
		camera.Position(core.NewVec3(0, 0.8, 0))
		return s, camera, err
	default:
		return nil, nil, fmt.Errorf("unknown scene %q", sceneType)
	}
}
