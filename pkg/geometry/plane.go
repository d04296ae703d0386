package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Normal vector (normalized)
	Material material.Material // Material of the plane

	frame core.ONB
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material material.Material) *Plane {
	n := normal.Normalize()
	return &Plane{
		Point:    point,
		Normal:   n,
		Material: material,
		frame:    core.NewONB(n),
	}
}

// Intersect tests the ray against the plane; rays parallel to it miss
func (p *Plane) Intersect(ray core.Ray, hit *Hit) bool {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < core.Eps {
		return false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	return hit.Update(t, p)
}

// BoundingBox returns a box covering all of space
func (p *Plane) BoundingBox() core.BBox {
	return core.InfiniteBBox()
}

// NormalAt returns the plane normal
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}

// UV returns the coordinates of point along the plane's tangent axes
func (p *Plane) UV(point core.Vec3) (float64, float64) {
	local := point.Subtract(p.Point)
	return local.Dot(p.frame.U), local.Dot(p.frame.V)
}

// MaterialAt returns the plane's material
func (p *Plane) MaterialAt(point core.Vec3) material.Material {
	return p.Material
}

// IsEmittable reports whether the plane is a light
func (p *Plane) IsEmittable() bool {
	return p.Material.IsEmittable()
}

// RandomRayToward draws a cosine-weighted direction on the half-space
// facing the plane from point
func (p *Plane) RandomRayToward(point core.Vec3, sampler core.Sampler) core.Ray {
	toward := p.Normal.Negate()
	if point.Subtract(p.Point).Dot(p.Normal) < 0 {
		toward = p.Normal
	}
	local := core.CosineSampleHemisphere(sampler.Get2D())
	return core.NewRay(point, core.NewONB(toward).LocalToWorld(local))
}

// PdfFor returns |cos|/π for rays heading toward the plane
func (p *Plane) PdfFor(ray core.Ray) float64 {
	dir := ray.Direction.Normalize()
	denominator := dir.Dot(p.Normal)
	if math.Abs(denominator) < core.Eps {
		return 0
	}
	if p.Point.Subtract(ray.Origin).Dot(p.Normal)/denominator <= 0 {
		return 0
	}
	return math.Abs(denominator) / math.Pi
}

// Build is a no-op for planes
func (p *Plane) Build() {}
