package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material describes how a surface scatters and emits light. Every
// direction is given in the local shading frame of the hit, where +z is the
// surface normal, so wo.Z and wi.Z are the cosines to the normal.
type Material interface {
	// Eval returns the BSDF value for light arriving along wi and leaving along wo
	Eval(wo, wi core.Vec3, hr *HitRecord) core.Vec3

	// Sample draws an incoming direction for wo. Specular samples come from a
	// delta distribution and Eval already includes their cosine and pdf.
	Sample(wo core.Vec3, sampler core.Sampler) (wi core.Vec3, isSpecular bool)

	// Pdf returns the solid-angle density of Sample producing wi
	Pdf(wo, wi core.Vec3) float64

	// Emitted returns the radiance leaving the surface on its own
	Emitted(hr *HitRecord) core.Vec3

	// IsEmittable reports whether the material emits light at all
	IsEmittable() bool
}

// HitRecord is the shading snapshot of an accepted intersection
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Position core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward surface normal
	U, V     float64   // Texture coordinates
	Material Material  // Material at the hit point
}

// nonEmissive supplies the emission half of Material for surfaces that only scatter
type nonEmissive struct{}

// Emitted returns no radiance
func (nonEmissive) Emitted(*HitRecord) core.Vec3 {
	return core.Vec3{}
}

// IsEmittable returns false
func (nonEmissive) IsEmittable() bool {
	return false
}

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Sample returns the color at texture coordinates (u, v) and world point p.
	// Image textures use (u, v), procedural textures use p.
	Sample(u, v float64, p core.Vec3) core.Vec3
}
