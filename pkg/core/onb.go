package core

import "math"

// ONB is an orthonormal basis with W along the surface normal. Materials
// work in its local frame, where the z component of a unit direction is the
// cosine to the normal.
type ONB struct {
	U, V, W Vec3
}

var invSqrt3 = 1 / math.Sqrt(3)

// NewONB builds a basis around the (unit) normal n
func NewONB(n Vec3) ONB {
	// Pick the first world axis that is far enough from n to cross with
	var major Vec3
	switch {
	case math.Abs(n.X) < invSqrt3:
		major = NewVec3(1, 0, 0)
	case math.Abs(n.Y) < invSqrt3:
		major = NewVec3(0, 1, 0)
	default:
		major = NewVec3(0, 0, 1)
	}

	u := n.Cross(major).Normalize()
	v := n.Cross(u)
	return ONB{U: u, V: v, W: n}
}

// WorldToLocal expresses a world-space vector in the basis
func (o ONB) WorldToLocal(v Vec3) Vec3 {
	return NewVec3(v.Dot(o.U), v.Dot(o.V), v.Dot(o.W))
}

// LocalToWorld maps a local-frame vector back into world space
func (o ONB) LocalToWorld(v Vec3) Vec3 {
	return o.U.Multiply(v.X).Add(o.V.Multiply(v.Y)).Add(o.W.Multiply(v.Z))
}
