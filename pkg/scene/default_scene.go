package scene

import (
	"github.com/fresh-milkshake/ray-tracing/pkg/core"
	"github.com/fresh-milkshake/ray-tracing/pkg/geometry"
)

// mustSphere wraps geometry.NewSphere for the canned scenes below, whose
// radii are literal constants and cannot fail validation.
func mustSphere(center core.Vec3, radius float64, material core.Material) *geometry.Sphere {
	sphere, err := geometry.NewSphere(center, radius, material)
	if err != nil {
		panic(err)
	}
	return sphere
}

// NewDefaultScene creates the classic four-sphere scene: an ivory sphere,
// a red rubber sphere and two mirrors, lit by three point lights.
func NewDefaultScene() *Scene {
	// Create materials
	ivory := core.NewMaterial(
		core.NewVec3(0.4, 0.4, 0.3), // diffuse color
		core.NewVec3(0.6, 0.3, 0.1), // albedo weights
		50.0,
	)
	redRubber := core.NewMaterial(
		core.NewVec3(0.3, 0.1, 0.1),
		core.NewVec3(0.9, 0.1, 0.0),
		10.0,
	)
	mirror := core.NewMaterial(
		core.NewVec3(1.0, 1.0, 1.0),
		core.NewVec3(0.0, 10.0, 0.8),
		1425.0,
	)

	s := NewScene()
	s.Spheres = append(s.Spheres,
		mustSphere(core.NewVec3(-3, 0, -16), 2, ivory),
		mustSphere(core.NewVec3(-1, -1.5, -12), 2, redRubber),
		mustSphere(core.NewVec3(1.5, -0.5, -18), 3, mirror),
		mustSphere(core.NewVec3(7, 5, -18), 4, mirror),
	)

	s.AddLight(core.NewVec3(-20, 20, 20), 1.5)
	s.AddLight(core.NewVec3(30, 50, -25), 1.8)
	s.AddLight(core.NewVec3(30, 20, 30), 1.7)

	return s
}

// NewMirrorTestScene creates a two-sphere scene where a pure mirror faces
// a red rubber sphere placed behind the camera. Rays hitting the front of
// the mirror bounce straight back and pick up the rubber sphere's shading.
func NewMirrorTestScene() *Scene {
	redRubber := core.NewMaterial(
		core.NewVec3(0.3, 0.1, 0.1),
		core.NewVec3(0.9, 0.1, 0.0),
		10.0,
	)
	// Pure mirror: all weight on the reflection term
	pureMirror := core.NewMaterial(
		core.NewVec3(1.0, 1.0, 1.0),
		core.NewVec3(0.0, 0.0, 1.0),
		1425.0,
	)

	s := NewScene()
	s.Spheres = append(s.Spheres,
		mustSphere(core.NewVec3(0, 0, -6), 2, pureMirror),
		mustSphere(core.NewVec3(0, 0, 2), 1, redRubber),
	)
	// Placed to illuminate the mirror-facing side of the rubber sphere
	s.AddLight(core.NewVec3(10, 10, -10), 2.0)

	return s
}
