package core

// Material describes how a surface responds to light.
//
// Albedo holds three weights: how much of the final color comes from
// diffuse shading (X), specular highlight (Y) and mirror reflection (Z).
// The weights need not sum to one; over-bright combinations are clamped
// only at pixel-write time.
type Material struct {
	Diffuse          Vec3    // base color tint, nominally in [0,1] per channel
	Albedo           Vec3    // diffuse / specular / reflection weights
	SpecularExponent float64 // Phong shininess, >= 0
}

// NewMaterial creates a new material
func NewMaterial(diffuse, albedo Vec3, specularExponent float64) Material {
	return Material{
		Diffuse:          diffuse,
		Albedo:           albedo,
		SpecularExponent: specularExponent,
	}
}

// Light is a point light source with a scalar intensity
type Light struct {
	Position  Vec3
	Intensity float64
}

// NewLight creates a new point light
func NewLight(position Vec3, intensity float64) Light {
	return Light{Position: position, Intensity: intensity}
}

// HitRecord describes the nearest surface a ray struck. It is produced
// fresh per intersection query and never mutated afterward; the material
// is copied by value from the sphere that was hit.
type HitRecord struct {
	T        float64 // distance along the ray to the hit point
	Point    Vec3
	Normal   Vec3 // unit length, always pointing outward from the surface
	Material Material
}
