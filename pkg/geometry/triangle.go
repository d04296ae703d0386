package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// detEpsilon is the determinant below which a ray counts as parallel to a
// triangle. It is much smaller than core.Eps so that finely tessellated
// meshes fitted into a unit cube still intersect.
const detEpsilon = 1e-12

// Triangle is one face of a Mesh. It holds no vertex data of its own: the
// mesh handle and face index are resolved against the mesh on every query,
// so the mesh may grow or be transformed without invalidating it.
type Triangle struct {
	mesh *Mesh
	face int
}

// Face returns the index of the triangle within its mesh
func (t *Triangle) Face() int {
	return t.face
}

// Vertices returns the three corner positions
func (t *Triangle) Vertices() (core.Vec3, core.Vec3, core.Vec3) {
	f := t.mesh.faces[t.face]
	return t.mesh.positions[f[0]], t.mesh.positions[f[1]], t.mesh.positions[f[2]]
}

// Intersect uses the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray, hit *Hit) bool {
	a, b, c := t.Vertices()
	edge1 := b.Subtract(a)
	edge2 := c.Subtract(a)

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if math.Abs(det) < detEpsilon {
		return false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(a)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return false
	}

	return hit.Update(edge2.Dot(qvec)*invDet, t)
}

// BoundingBox returns the bounds of the three corners
func (t *Triangle) BoundingBox() core.BBox {
	a, b, c := t.Vertices()
	return core.NewBBoxFromPoints(a, b, c)
}

// barycentric returns the weights of the three corners at p
func (t *Triangle) barycentric(p core.Vec3) (float64, float64, float64) {
	a, b, c := t.Vertices()
	v0, v1, v2 := b.Subtract(a), c.Subtract(a), p.Subtract(a)
	d00, d01, d11 := v0.Dot(v0), v0.Dot(v1), v1.Dot(v1)
	d20, d21 := v2.Dot(v0), v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return 1, 0, 0
	}
	wb := (d11*d20 - d01*d21) / denom
	wc := (d00*d21 - d01*d20) / denom
	return 1 - wb - wc, wb, wc
}

// FaceNormal returns the geometric normal from the winding order
func (t *Triangle) FaceNormal() core.Vec3 {
	a, b, c := t.Vertices()
	return b.Subtract(a).Cross(c.Subtract(a)).Normalize()
}

// NormalAt interpolates vertex normals when the mesh has them
func (t *Triangle) NormalAt(p core.Vec3) core.Vec3 {
	if len(t.mesh.normals) == 0 {
		return t.FaceNormal()
	}
	f := t.mesh.faces[t.face]
	wa, wb, wc := t.barycentric(p)
	n := t.mesh.normals[f[0]].Multiply(wa).
		Add(t.mesh.normals[f[1]].Multiply(wb)).
		Add(t.mesh.normals[f[2]].Multiply(wc))
	if n.IsZero() {
		return t.FaceNormal()
	}
	return n.Normalize()
}

// UV interpolates vertex texture coordinates, or returns the barycentric
// weights of the second and third corners when the mesh has none
func (t *Triangle) UV(p core.Vec3) (float64, float64) {
	wa, wb, wc := t.barycentric(p)
	if len(t.mesh.uvs) == 0 {
		return wb, wc
	}
	f := t.mesh.faces[t.face]
	uv0, uv1, uv2 := t.mesh.uvs[f[0]], t.mesh.uvs[f[1]], t.mesh.uvs[f[2]]
	return wa*uv0.X + wb*uv1.X + wc*uv2.X, wa*uv0.Y + wb*uv1.Y + wc*uv2.Y
}

// MaterialAt returns the mesh material
func (t *Triangle) MaterialAt(p core.Vec3) material.Material {
	return t.mesh.Material
}

// IsEmittable reports whether the mesh material emits
func (t *Triangle) IsEmittable() bool {
	return t.mesh.Material.IsEmittable()
}

// Area returns the triangle's surface area
func (t *Triangle) Area() float64 {
	a, b, c := t.Vertices()
	return 0.5 * b.Subtract(a).Cross(c.Subtract(a)).Length()
}

// RandomRayToward aims at a uniformly distributed point on the triangle
func (t *Triangle) RandomRayToward(p core.Vec3, sampler core.Sampler) core.Ray {
	a, b, c := t.Vertices()
	wa, wb := core.SampleTriangle(sampler.Get2D())
	q := a.Multiply(wa).Add(b.Multiply(wb)).Add(c.Multiply(1 - wa - wb))
	return core.NewRay(p, q.Subtract(p).Normalize())
}

// PdfFor converts the uniform area density to solid angle at ray.Origin
func (t *Triangle) PdfFor(ray core.Ray) float64 {
	hit := NewHit()
	if !t.Intersect(ray, &hit) {
		return 0
	}
	area := t.Area()
	cos := math.Abs(t.FaceNormal().Dot(ray.Direction.Normalize()))
	if area == 0 || cos < core.Eps {
		return 0
	}
	dist := hit.T * ray.Direction.Length()
	return dist * dist / (cos * area)
}

// Build is a no-op for triangles
func (t *Triangle) Build() {}
