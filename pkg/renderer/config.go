package renderer

import (
	"fmt"
	"math"

	"github.com/fresh-milkshake/ray-tracing/pkg/core"
)

// Config contains rendering configuration
type Config struct {
	Width      int       // Image width in pixels
	Height     int       // Image height in pixels
	FOV        float64   // Vertical field of view in radians
	MaxDepth   int       // Maximum reflection recursion depth
	Background core.Vec3 // Color returned for rays that hit nothing
	Horizon    float64   // Intersection distance cutoff (effective scene radius)
	Bias       float64   // Secondary-ray origin offset to avoid self-intersection
	NumWorkers int       // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:      1024,
		Height:     768,
		FOV:        math.Pi / 2,
		MaxDepth:   6,
		Background: core.NewVec3(0.7, 0.8, 1.0),
		Horizon:    1000.0,
		Bias:       1e-3,
		NumWorkers: 0,
	}
}

// Validate checks the configuration before any rendering work begins
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FOV <= 0 || c.FOV >= math.Pi {
		return fmt.Errorf("field of view must be in (0, pi) radians, got %g", c.FOV)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max recursion depth must be non-negative, got %d", c.MaxDepth)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("world horizon must be positive, got %g", c.Horizon)
	}
	if c.Bias <= 0 {
		return fmt.Errorf("bias epsilon must be positive, got %g", c.Bias)
	}
	return nil
}
