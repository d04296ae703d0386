package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect tests the ray against the sphere, preferring the nearer root
func (s *Sphere) Intersect(ray core.Ray, hit *Hit) bool {
	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	// Fall back to the farther root when the origin is inside the sphere
	t := (-halfB - sqrtD) / a
	if t <= core.Eps {
		t = (-halfB + sqrtD) / a
	}
	return hit.Update(t, s)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.BBox {
	radius := core.Splat(s.Radius)
	return core.NewBBox(s.Center.Subtract(radius), s.Center.Add(radius))
}

// NormalAt returns the outward normal at p
func (s *Sphere) NormalAt(p core.Vec3) core.Vec3 {
	return p.Subtract(s.Center).Multiply(1.0 / s.Radius)
}

// UV maps p to longitude/latitude coordinates
func (s *Sphere) UV(p core.Vec3) (float64, float64) {
	n := s.NormalAt(p)
	u := 1 - (math.Atan2(n.Z, n.X)+math.Pi)/(2*math.Pi)
	v := (math.Asin(max(-1, min(1, n.Y))) + math.Pi/2) / math.Pi
	return u, v
}

// MaterialAt returns the sphere's material
func (s *Sphere) MaterialAt(p core.Vec3) material.Material {
	return s.Material
}

// IsEmittable reports whether the sphere is a light
func (s *Sphere) IsEmittable() bool {
	return s.Material.IsEmittable()
}

// RandomRayToward samples the cone of directions subtended by the sphere
// from p, or the whole sphere of directions when p is inside
func (s *Sphere) RandomRayToward(p core.Vec3, sampler core.Sampler) core.Ray {
	toCenter := s.Center.Subtract(p)
	dist2 := toCenter.LengthSquared()
	if dist2 <= s.Radius*s.Radius {
		return core.NewRay(p, core.SampleOnUnitSphere(sampler.Get2D()))
	}

	cosMax := math.Sqrt(max(0, 1-s.Radius*s.Radius/dist2))
	dir := core.SampleCone(toCenter.Normalize(), cosMax, sampler.Get2D())
	return core.NewRay(p, dir)
}

// PdfFor returns the density of RandomRayToward from ray.Origin
func (s *Sphere) PdfFor(ray core.Ray) float64 {
	toCenter := s.Center.Subtract(ray.Origin)
	dist2 := toCenter.LengthSquared()
	if dist2 <= s.Radius*s.Radius {
		return 1 / (4 * math.Pi)
	}

	cosMax := math.Sqrt(max(0, 1-s.Radius*s.Radius/dist2))
	if ray.Direction.Normalize().Dot(toCenter.Normalize()) < cosMax {
		return 0
	}
	return 1 / (2 * math.Pi * (1 - cosMax))
}

// Build is a no-op for spheres
func (s *Sphere) Build() {}
