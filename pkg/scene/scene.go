package scene

import (
	"github.com/fresh-milkshake/ray-tracing/pkg/core"
	"github.com/fresh-milkshake/ray-tracing/pkg/geometry"
)

// Scene holds the spheres and lights to render. It is built once before
// rendering and read-only afterward, so it is safe to share across
// render workers.
//
// Sphere order matters only as a tie-break: when two spheres are exactly
// equidistant along a ray, the earlier one wins.
type Scene struct {
	Spheres []*geometry.Sphere
	Lights  []core.Light
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{
		Spheres: make([]*geometry.Sphere, 0),
		Lights:  make([]core.Light, 0),
	}
}

// AddSphere constructs a sphere and appends it to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, material core.Material) error {
	sphere, err := geometry.NewSphere(center, radius, material)
	if err != nil {
		return err
	}
	s.Spheres = append(s.Spheres, sphere)
	return nil
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(position core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, core.NewLight(position, intensity))
}

// Intersect scans every sphere and returns the nearest hit along the
// ray, or false when nothing qualifies. A hit only counts when its
// distance is below horizon, which caps the effective scene radius.
// The ray direction must be unit length. Pure function of its inputs.
func (s *Scene) Intersect(ray core.Ray, horizon float64) (core.HitRecord, bool) {
	var closest *geometry.Sphere
	closestT := horizon

	for _, sphere := range s.Spheres {
		if t, ok := sphere.Hit(ray); ok && t < closestT {
			closestT = t
			closest = sphere
		}
	}

	if closest == nil {
		return core.HitRecord{}, false
	}

	point := ray.At(closestT)
	return core.HitRecord{
		T:        closestT,
		Point:    point,
		Normal:   point.Subtract(closest.Center).Normalize(),
		Material: closest.Material,
	}, true
}
