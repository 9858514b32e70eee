package renderer

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Pixels         int // Total number of pixels rendered
	PrimaryRays    int // Camera rays cast
	ShadowRays     int // Occlusion tests against lights
	ReflectionRays int // Recursive mirror bounces
}

// Merge accumulates another stats block into this one
func (rs *RenderStats) Merge(other RenderStats) {
	rs.Pixels += other.Pixels
	rs.PrimaryRays += other.PrimaryRays
	rs.ShadowRays += other.ShadowRays
	rs.ReflectionRays += other.ReflectionRays
}
