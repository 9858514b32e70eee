package geometry

import (
	"fmt"
	"math"

	"github.com/fresh-milkshake/ray-tracing/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere. The radius must be positive; a
// degenerate sphere is a scene construction error, not something the
// intersector should have to tolerate.
func NewSphere(center core.Vec3, radius float64, material core.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}, nil
}

// Hit tests if a ray intersects with the sphere using the geometric
// method and returns the distance to the nearest intersection in front
// of the ray origin. The ray direction must be unit length.
func (s *Sphere) Hit(ray core.Ray) (float64, bool) {
	// Project the vector to the sphere center onto the ray
	l := s.Center.Subtract(ray.Origin)
	tca := l.Dot(ray.Direction)

	// Squared perpendicular distance from the center to the ray line
	d2 := l.Dot(l) - tca*tca
	if d2 > s.Radius*s.Radius {
		return 0, false
	}

	// Half chord length through the sphere
	thc := math.Sqrt(s.Radius*s.Radius - d2)

	// Prefer the near intersection; fall back to the far one when the
	// origin is inside the sphere. Both behind the origin means no hit.
	t0 := tca - thc
	if t0 < 0 {
		t0 = tca + thc
	}
	if t0 < 0 {
		return 0, false
	}
	return t0, true
}
