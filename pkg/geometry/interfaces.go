package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Primitive is anything that can be placed in a scene and hit by rays
type Primitive interface {
	// BoundingBox returns the axis-aligned extent of the primitive
	BoundingBox() core.BBox

	// Intersect updates hit and returns true if the ray hits the primitive
	// closer than hit.T (and further than core.Eps)
	Intersect(ray core.Ray, hit *Hit) bool

	// NormalAt returns the outward unit normal at a point on the surface
	NormalAt(p core.Vec3) core.Vec3

	// UV returns texture coordinates for a point on the surface
	UV(p core.Vec3) (u, v float64)

	// MaterialAt returns the material at a point on the surface
	MaterialAt(p core.Vec3) material.Material

	// IsEmittable reports whether the primitive's material emits light
	IsEmittable() bool

	// RandomRayToward returns a ray from p toward a sampled point on the
	// primitive, for direct light sampling
	RandomRayToward(p core.Vec3, sampler core.Sampler) core.Ray

	// PdfFor returns the solid-angle density of RandomRayToward producing
	// the direction of ray
	PdfFor(ray core.Ray) float64

	// Build prepares any internal acceleration data. Calling it again is a no-op.
	Build()
}

// LightGroup is implemented by aggregates whose parts should be sampled as
// individual lights
type LightGroup interface {
	Lights() []Primitive
}

// Hit tracks the closest intersection found so far along a ray
type Hit struct {
	T         float64
	Primitive Primitive
}

// NewHit returns a hit with no intersection yet
func NewHit() Hit {
	return Hit{T: core.Inf}
}

// Update records an intersection at t if it is valid and strictly closer
// than the current one
func (h *Hit) Update(t float64, p Primitive) bool {
	if t <= core.Eps || t >= h.T {
		return false
	}
	h.T = t
	h.Primitive = p
	return true
}

// Valid reports whether any intersection has been recorded
func (h *Hit) Valid() bool {
	return h.Primitive != nil
}

// Record expands the hit into a full shading record for the ray that produced it
func (h *Hit) Record(ray core.Ray) material.HitRecord {
	p := ray.At(h.T)
	u, v := h.Primitive.UV(p)
	return material.HitRecord{
		T:        h.T,
		Position: p,
		Normal:   h.Primitive.NormalAt(p),
		U:        u,
		V:        v,
		Material: h.Primitive.MaterialAt(p),
	}
}
