package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
)

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// Transform applies an affine matrix to every vertex. Normals are carried
// through the inverse transpose.
func (m *Mesh) Transform(mat mgl64.Mat4) {
	normalMat := mat.Inv().Transpose()

	m.lookup = make(map[core.Vec3]int, len(m.positions))
	for i, p := range m.positions {
		m.positions[i] = fromMgl(mgl64.TransformCoordinate(toMgl(p), mat))
		m.lookup[m.positions[i]] = i
	}
	for i, n := range m.normals {
		m.normals[i] = fromMgl(mgl64.TransformNormal(toMgl(n), normalMat)).Normalize()
	}
	m.Dirtify()
}

// Rotate turns the mesh by angle radians about axis through its bounding box centre
func (m *Mesh) Rotate(axis core.Vec3, angle float64) {
	c := m.BoundingBox().Centre()
	mat := mgl64.Translate3D(c.X, c.Y, c.Z).
		Mul4(mgl64.HomogRotate3D(angle, toMgl(axis.Normalize()))).
		Mul4(mgl64.Translate3D(-c.X, -c.Y, -c.Z))
	m.Transform(mat)
}

// Translate moves every vertex by offset
func (m *Mesh) Translate(offset core.Vec3) {
	m.Transform(mgl64.Translate3D(offset.X, offset.Y, offset.Z))
}

// MoveTo translates the mesh so that the bounding box point at anchor
// (0..1 per axis) lands on pos
func (m *Mesh) MoveTo(pos, anchor core.Vec3) {
	m.Translate(pos.Subtract(m.BoundingBox().Anchor(anchor)))
}

// MoveToCentre centres the mesh's bounding box on pos
func (m *Mesh) MoveToCentre(pos core.Vec3) {
	m.MoveTo(pos, core.Splat(0.5))
}

// FitInside uniformly scales the mesh to the largest size that fits box and
// places it at the same anchor point of box
func (m *Mesh) FitInside(box core.BBox, anchor core.Vec3) {
	size := m.BoundingBox().Size()
	target := box.Size()

	scale := core.Inf
	for _, a := range core.Axes {
		if s := size.Axis(a); s > 0 {
			scale = min(scale, target.Axis(a)/s)
		}
	}
	if scale == core.Inf {
		scale = 1
	}

	c := m.BoundingBox().Anchor(anchor)
	mat := mgl64.Translate3D(c.X, c.Y, c.Z).
		Mul4(mgl64.Scale3D(scale, scale, scale)).
		Mul4(mgl64.Translate3D(-c.X, -c.Y, -c.Z))
	m.Transform(mat)
	m.MoveTo(box.Anchor(anchor), anchor)
}

// FitInsideUnitCube fits the mesh centred in [0,1]³
func (m *Mesh) FitInsideUnitCube() {
	m.FitInside(core.NewBBox(core.Splat(0), core.Splat(1)), core.Splat(0.5))
}

// FitInsideBiUnitCube fits the mesh centred in [-1,1]³
func (m *Mesh) FitInsideBiUnitCube() {
	m.FitInside(core.NewBBox(core.Splat(-1), core.Splat(1)), core.Splat(0.5))
}
