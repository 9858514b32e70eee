package main

import (
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/fresh-milkshake/ray-tracing/pkg/renderer"
	"github.com/fresh-milkshake/ray-tracing/pkg/scene"
)

func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "mirror":
		return scene.NewMirrorTestScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'mirror'")
	width := flag.Int("width", 1024, "Image width in pixels")
	height := flag.Int("height", 768, "Image height in pixels")
	fovDegrees := flag.Float64("fov", 90, "Vertical field of view in degrees")
	depth := flag.Int("depth", 6, "Maximum reflection recursion depth")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	output := flag.String("out", "out.png", "Output PNG file path")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: ray-tracing [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Four spheres (ivory, red rubber, two mirrors) with three lights")
		fmt.Println("  mirror  - A pure mirror facing a red rubber sphere")
		return
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	config := renderer.DefaultConfig()
	config.Width = *width
	config.Height = *height
	config.FOV = *fovDegrees * math.Pi / 180
	config.MaxDepth = *depth
	config.NumWorkers = *workers

	logger := renderer.NewDefaultLogger()
	raytracer, err := renderer.NewRaytracer(selectedScene, config, logger)
	if err != nil {
		fmt.Printf("Error creating raytracer: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Rendering %dx%d scene '%s'...\n", config.Width, config.Height, *sceneType)

	startTime := time.Now()
	frame, stats := raytracer.RenderParallel()
	renderTime := time.Since(startTime)

	logger.Printf("Render completed in %v\n", renderTime)
	logger.Printf("Rays cast: %d primary, %d shadow, %d reflection\n",
		stats.PrimaryRays, stats.ShadowRays, stats.ReflectionRays)

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
	}

	file, err := os.Create(*output)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, frame.Image()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Render saved as %s\n", *output)
}
