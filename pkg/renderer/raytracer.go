package renderer

import (
	"fmt"
	"math"

	"github.com/fresh-milkshake/ray-tracing/pkg/core"
	"github.com/fresh-milkshake/ray-tracing/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer renders a scene with recursive Whitted ray tracing: direct
// diffuse and specular lighting with binary shadow tests, plus one
// mirror-reflection contribution traced recursively to a depth bound.
type Raytracer struct {
	scene  *scene.Scene
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer. The configuration is validated
// up front so that invalid dimensions or bounds fail before any pixel
// work begins. A nil logger falls back to stdout.
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:  s,
		config: config,
		logger: logger,
	}, nil
}

// Config returns the renderer configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// CastRay computes the color seen along a ray. The direction must be
// unit length. Pure and deterministic for fixed scene and config.
func (rt *Raytracer) CastRay(origin, direction core.Vec3, depth int) core.Vec3 {
	var stats RenderStats
	return rt.castRay(origin, direction, depth, &stats)
}

// castRay is the recursive shader. stats is owned by a single render
// task and never shared across goroutines.
func (rt *Raytracer) castRay(origin, direction core.Vec3, depth int, stats *RenderStats) core.Vec3 {
	hit, ok := rt.scene.Intersect(core.NewRay(origin, direction), rt.config.Horizon)
	if !ok || depth > rt.config.MaxDepth {
		return rt.config.Background
	}

	// Mirror bounce. The reflected origin is nudged off the surface so
	// floating-point error cannot make the ray re-hit the same sphere.
	reflectDir := core.Reflect(direction, hit.Normal)
	reflectOrigin := offsetOrigin(hit.Point, hit.Normal, reflectDir, rt.config.Bias)
	stats.ReflectionRays++
	reflectColor := rt.castRay(reflectOrigin, reflectDir, depth+1, stats)

	// Direct lighting: accumulate diffuse and specular intensity from
	// every light the hit point can actually see.
	var diffuseIntensity, specularIntensity float64
	for _, light := range rt.scene.Lights {
		toLight := light.Position.Subtract(hit.Point)
		lightDistance := toLight.Length()
		if lightDistance == 0 {
			// Light sits exactly on the surface; skip rather than
			// normalize a zero vector.
			continue
		}
		lightDir := toLight.Multiply(1 / lightDistance)

		// Binary shadow test: an occluder strictly closer than the
		// light removes this light's contribution entirely.
		shadowOrigin := offsetOrigin(hit.Point, hit.Normal, lightDir, rt.config.Bias)
		stats.ShadowRays++
		occluder, blocked := rt.scene.Intersect(core.NewRay(shadowOrigin, lightDir), rt.config.Horizon)
		if blocked && occluder.T < lightDistance {
			continue
		}

		diffuseIntensity += light.Intensity * clamp01(lightDir.Dot(hit.Normal))
		specularIntensity += light.Intensity *
			math.Pow(clamp01(core.Reflect(lightDir, hit.Normal).Dot(direction)), hit.Material.SpecularExponent)
	}

	// Blend the three contributions through the material's albedo
	// weights. The result is intentionally unclamped; quantization to
	// display range happens at pixel-write time.
	m := hit.Material
	color := m.Diffuse.Multiply(diffuseIntensity * m.Albedo.X)
	color = color.Add(core.NewVec3(1, 1, 1).Multiply(specularIntensity * m.Albedo.Y))
	color = color.Add(reflectColor.Multiply(m.Albedo.Z))
	return color
}

// rayDirection derives the unit camera ray for pixel (i, j). The pinhole
// camera sits at the origin looking down the negative Z axis; the image
// plane spans the vertical field of view, widened by the aspect ratio.
func (rt *Raytracer) rayDirection(i, j int) core.Vec3 {
	width := float64(rt.config.Width)
	height := float64(rt.config.Height)
	scale := math.Tan(rt.config.FOV / 2)

	x := (2*(float64(i)+0.5)/width - 1) * scale * width / height
	y := -(2*(float64(j)+0.5)/height - 1) * scale
	return core.NewVec3(x, y, -1).Normalize()
}

// renderRows renders scanlines [startRow, endRow) into the framebuffer.
// Row ranges are disjoint across tasks, so no synchronization is needed
// on the buffer.
func (rt *Raytracer) renderRows(fb *Framebuffer, startRow, endRow int) RenderStats {
	var stats RenderStats
	cameraOrigin := core.NewVec3(0, 0, 0)

	for j := startRow; j < endRow; j++ {
		for i := 0; i < rt.config.Width; i++ {
			stats.PrimaryRays++
			color := rt.castRay(cameraOrigin, rt.rayDirection(i, j), 0, &stats)
			fb.SetPixel(i, j, color)
			stats.Pixels++
		}
	}
	return stats
}

// Render computes every pixel sequentially and returns the finished
// framebuffer with rendering statistics.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)
	stats := rt.renderRows(fb, 0, rt.config.Height)
	return fb, stats
}

// offsetOrigin nudges a secondary-ray origin off the surface along the
// normal, choosing the side the new ray is headed toward.
func offsetOrigin(point, normal, direction core.Vec3, bias float64) core.Vec3 {
	if direction.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(bias))
	}
	return point.Add(normal.Multiply(bias))
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
