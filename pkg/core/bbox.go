package core

import "math"

// Axis identifies a coordinate axis, or none for KD-tree leaves
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisNone
)

// Axes lists the three real axes in split-evaluation order
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// String returns the axis name
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "NONE"
	}
}

// BBox represents an axis-aligned bounding box
type BBox struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewBBox creates a new BBox from min and max points
func NewBBox(min, max Vec3) BBox {
	return BBox{Min: min, Max: max}
}

// EmptyBBox returns the sentinel box that any union replaces
func EmptyBBox() BBox {
	inf := math.Inf(1)
	return BBox{Min: Splat(inf), Max: Splat(-inf)}
}

// InfiniteBBox returns a box covering all of space
func InfiniteBBox() BBox {
	inf := math.Inf(1)
	return BBox{Min: Splat(-inf), Max: Splat(inf)}
}

// NewBBoxFromPoints creates a BBox that bounds all given points
func NewBBoxFromPoints(points ...Vec3) BBox {
	box := EmptyBBox()
	for _, p := range points {
		box = box.Extend(p)
	}
	return box
}

// IsEmpty reports whether the box is the empty sentinel (or otherwise inverted)
func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Extend returns the smallest box containing b and the point p
func (b BBox) Extend(p Vec3) BBox {
	return BBox{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Contains reports whether the point lies inside or on the box
func (b BBox) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether two boxes overlap (touching counts)
func (b BBox) Intersects(other BBox) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// Size returns the extent of the box along each axis
func (b BBox) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// Centre returns the midpoint of the box
func (b BBox) Centre() Vec3 {
	return b.Anchor(Splat(0.5))
}

// Anchor returns the point min + size*anchor, so (0,0,0) is the min corner
// and (1,1,1) the max corner
func (b BBox) Anchor(anchor Vec3) Vec3 {
	return b.Min.Add(b.Size().MultiplyVec(anchor))
}

// Intersect computes the parametric interval over which the ray is inside
// the box using the slab method. Zero direction components divide to signed
// infinities, and NaN slab bounds (origin exactly on a parallel slab) are
// ignored by the comparisons below.
func (b BBox) Intersect(ray Ray) (tmin, tmax float64, hit bool) {
	tmin = math.Inf(-1)
	tmax = math.Inf(1)

	for _, a := range Axes {
		o := ray.Origin.Axis(a)
		d := ray.Direction.Axis(a)
		t0 := (b.Min.Axis(a) - o) / d
		t1 := (b.Max.Axis(a) - o) / d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
	}

	if tmin > tmax {
		return 0, 0, false
	}
	return tmin, tmax, true
}

// Partition reports whether the box overlaps the left (<= pos) and right
// (>= pos) half-spaces of a split plane. A straddling box overlaps both.
func (b BBox) Partition(axis Axis, pos float64) (left, right bool) {
	return b.Min.Axis(axis) <= pos, b.Max.Axis(axis) >= pos
}

// LongestAxis returns the axis with the largest extent
func (b BBox) LongestAxis() Axis {
	size := b.Size()
	if size.X >= size.Y && size.X >= size.Z {
		return AxisX
	}
	if size.Y >= size.Z {
		return AxisY
	}
	return AxisZ
}
