package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is an axis-aligned solid box
type Box struct {
	Min, Max core.Vec3
	Material material.Material
}

// NewBox creates a box spanning the two corner points
func NewBox(min, max core.Vec3, material material.Material) *Box {
	return &Box{Min: min.Min(max), Max: max.Max(min), Material: material}
}

// NewBoxAt creates a box from its centre and half-extents
func NewBoxAt(center, halfSize core.Vec3, material material.Material) *Box {
	return NewBox(center.Subtract(halfSize), center.Add(halfSize), material)
}

// Intersect uses the slab test, taking the entry point unless the ray
// starts inside
func (b *Box) Intersect(ray core.Ray, hit *Hit) bool {
	t0, t1, ok := b.BoundingBox().Intersect(ray)
	if !ok {
		return false
	}
	if t0 > core.Eps {
		return hit.Update(t0, b)
	}
	return hit.Update(t1, b)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox() core.BBox {
	return core.NewBBox(b.Min, b.Max)
}

// faceAt returns the axis and side (-1 or +1) of the face closest to p
func (b *Box) faceAt(p core.Vec3) (core.Axis, float64) {
	bestAxis, bestSide := core.AxisX, -1.0
	best := math.Inf(1)
	for _, a := range core.Axes {
		if d := math.Abs(p.Axis(a) - b.Min.Axis(a)); d < best {
			best, bestAxis, bestSide = d, a, -1
		}
		if d := math.Abs(p.Axis(a) - b.Max.Axis(a)); d < best {
			best, bestAxis, bestSide = d, a, 1
		}
	}
	return bestAxis, bestSide
}

// NormalAt returns the outward normal of the face p lies on
func (b *Box) NormalAt(p core.Vec3) core.Vec3 {
	axis, side := b.faceAt(p)
	return core.Vec3{}.WithAxis(axis, side)
}

// UV returns p's relative position across the face it lies on
func (b *Box) UV(p core.Vec3) (float64, float64) {
	axis, _ := b.faceAt(p)
	rel := p.Subtract(b.Min).DivideVec(b.BoundingBox().Size())
	switch axis {
	case core.AxisX:
		return rel.Y, rel.Z
	case core.AxisY:
		return rel.X, rel.Z
	default:
		return rel.X, rel.Y
	}
}

// MaterialAt returns the box's material
func (b *Box) MaterialAt(p core.Vec3) material.Material {
	return b.Material
}

// IsEmittable reports whether the box is a light
func (b *Box) IsEmittable() bool {
	return b.Material.IsEmittable()
}

// faceAreas returns the area of one face perpendicular to each axis
func (b *Box) faceAreas() [3]float64 {
	s := b.BoundingBox().Size()
	return [3]float64{s.Y * s.Z, s.X * s.Z, s.X * s.Y}
}

func (b *Box) surfaceArea() float64 {
	areas := b.faceAreas()
	return 2 * (areas[0] + areas[1] + areas[2])
}

// RandomRayToward picks a face in proportion to its area and a uniform point on it
func (b *Box) RandomRayToward(p core.Vec3, sampler core.Sampler) core.Ray {
	areas := b.faceAreas()
	pick := sampler.Get1D() * b.surfaceArea() / 2

	axis := core.AxisZ
	for i, a := range core.Axes {
		if pick < areas[i] {
			axis = a
			break
		}
		pick -= areas[i]
	}

	// Uniform point on the face, then snap to the min or max side
	q := b.BoundingBox().Anchor(sampler.Get3D())
	side := b.Min.Axis(axis)
	if sampler.Get1D() < 0.5 {
		side = b.Max.Axis(axis)
	}
	q = q.WithAxis(axis, side)

	return core.NewRay(p, q.Subtract(p).Normalize())
}

// PdfFor sums the area-to-solid-angle densities of every box surface point
// along the ray, since RandomRayToward reaches a direction through either
func (b *Box) PdfFor(ray core.Ray) float64 {
	t0, t1, ok := b.BoundingBox().Intersect(ray)
	if !ok {
		return 0
	}
	area := b.surfaceArea()
	if area == 0 {
		return 0
	}

	dir := ray.Direction.Normalize()
	dirLen := ray.Direction.Length()
	pdf := 0.0
	for _, t := range [2]float64{t0, t1} {
		if t <= core.Eps {
			continue
		}
		cos := math.Abs(b.NormalAt(ray.At(t)).Dot(dir))
		if cos < core.Eps {
			continue
		}
		dist := t * dirLen
		pdf += dist * dist / (cos * area)
	}
	return pdf
}

// Build is a no-op for boxes
func (b *Box) Build() {}
