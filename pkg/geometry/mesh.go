package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Mesh is an indexed triangle mesh with its own KD-tree. Positions are
// deduplicated on insertion so shared corners get shared normals.
type Mesh struct {
	Material material.Material

	positions []core.Vec3
	normals   []core.Vec3 // Per-vertex, empty until set or repaired
	uvs       []core.Vec2 // Per-vertex, empty if the mesh is untextured
	faces     [][3]int
	lookup    map[core.Vec3]int

	triangles []Triangle
	tree      *KDTree
	bbox      core.BBox
	bboxValid bool
	areaCDF   []float64
}

// MeshOptions contains optional per-vertex attributes for NewMesh
type MeshOptions struct {
	Normals []core.Vec3 // One per vertex
	UVs     []core.Vec2 // One per vertex
}

// NewMesh creates a mesh from vertices and face indices
// vertices: array of 3D points
// faces: array of triangle indices (each group of 3 indices forms a triangle)
// options: optional per-vertex attributes (can be nil)
func NewMesh(vertices []core.Vec3, faces []int, material material.Material, options *MeshOptions) *Mesh {
	if len(faces)%3 != 0 {
		panic("Face indices must be a multiple of 3")
	}
	if options != nil {
		if options.Normals != nil && len(options.Normals) != len(vertices) {
			panic("Number of normals must match number of vertices")
		}
		if options.UVs != nil && len(options.UVs) != len(vertices) {
			panic("Number of UVs must match number of vertices")
		}
	}

	m := NewEmptyMesh(material)

	// Duplicate positions collapse onto the first occurrence
	remap := make([]int, len(vertices))
	for i, v := range vertices {
		remap[i] = m.AddVertex(v)
		if options != nil && options.Normals != nil && remap[i] == len(m.normals) {
			m.normals = append(m.normals, options.Normals[i].Normalize())
		}
		if options != nil && options.UVs != nil && remap[i] == len(m.uvs) {
			m.uvs = append(m.uvs, options.UVs[i])
		}
	}

	for i := 0; i < len(faces); i += 3 {
		for _, idx := range faces[i : i+3] {
			if idx < 0 || idx >= len(vertices) {
				panic("Face index out of bounds")
			}
		}
		m.AddFace(remap[faces[i]], remap[faces[i+1]], remap[faces[i+2]])
	}
	return m
}

// NewEmptyMesh creates a mesh with no geometry, to be filled with AddTriangle
func NewEmptyMesh(material material.Material) *Mesh {
	return &Mesh{Material: material, lookup: make(map[core.Vec3]int)}
}

// AddVertex returns the index of p, adding it if no vertex has that position
func (m *Mesh) AddVertex(p core.Vec3) int {
	if idx, ok := m.lookup[p]; ok {
		return idx
	}
	idx := len(m.positions)
	m.positions = append(m.positions, p)
	m.lookup[p] = idx
	return idx
}

// AddFace appends a triangle over existing vertex indices
func (m *Mesh) AddFace(a, b, c int) {
	m.faces = append(m.faces, [3]int{a, b, c})
	m.Dirtify()
}

// AddTriangle appends a triangle by corner positions
func (m *Mesh) AddTriangle(a, b, c core.Vec3) {
	m.AddFace(m.AddVertex(a), m.AddVertex(b), m.AddVertex(c))
}

// VertexCount returns the number of distinct vertices
func (m *Mesh) VertexCount() int {
	return len(m.positions)
}

// TriangleCount returns the number of faces
func (m *Mesh) TriangleCount() int {
	return len(m.faces)
}

// Triangle returns a handle to face i
func (m *Mesh) Triangle(i int) *Triangle {
	return &Triangle{mesh: m, face: i}
}

// RepairNormals replaces the vertex normals with area-weighted sums of the
// adjacent face normals
func (m *Mesh) RepairNormals() {
	normals := make([]core.Vec3, len(m.positions))
	for _, f := range m.faces {
		a, b, c := m.positions[f[0]], m.positions[f[1]], m.positions[f[2]]
		n := b.Subtract(a).Cross(c.Subtract(a))
		for _, idx := range f {
			normals[idx] = normals[idx].Add(n)
		}
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	m.normals = normals
}

// Dirtify drops the cached tree and bounds after a geometry change.
// Build must be called again before the mesh is intersected concurrently.
func (m *Mesh) Dirtify() {
	m.tree = nil
	m.triangles = nil
	m.areaCDF = nil
	m.bboxValid = false
}

// Build creates the triangle handles and the mesh's KD-tree
func (m *Mesh) Build() {
	if m.tree != nil {
		return
	}

	m.triangles = make([]Triangle, len(m.faces))
	prims := make([]Primitive, len(m.faces))
	m.areaCDF = make([]float64, len(m.faces))
	total := 0.0
	for i := range m.faces {
		m.triangles[i] = Triangle{mesh: m, face: i}
		prims[i] = &m.triangles[i]
		total += m.triangles[i].Area()
		m.areaCDF[i] = total
	}
	m.tree = NewKDTree(prims)
}

// Tree returns the mesh's KD-tree, or nil before Build
func (m *Mesh) Tree() *KDTree {
	return m.tree
}

// Intersect finds the closest triangle hit. The recorded primitive is the
// same triangle handle that Lights returns, so shading queries resolve per
// face. An unbuilt mesh is built first.
func (m *Mesh) Intersect(ray core.Ray, hit *Hit) bool {
	m.Build()
	return m.tree.Intersect(ray, hit)
}

// BoundingBox returns the bounds of all vertices, recomputed after changes
func (m *Mesh) BoundingBox() core.BBox {
	if !m.bboxValid {
		m.bbox = core.NewBBoxFromPoints(m.positions...)
		m.bboxValid = true
	}
	return m.bbox
}

// NormalAt returns the normal of the face closest to p. Hits on a mesh
// record the triangle, so this is only used for direct queries.
func (m *Mesh) NormalAt(p core.Vec3) core.Vec3 {
	if tri := m.closestFace(p); tri != nil {
		return tri.NormalAt(p)
	}
	return core.NewVec3(0, 0, 1)
}

// UV returns the texture coordinates of the face closest to p
func (m *Mesh) UV(p core.Vec3) (float64, float64) {
	if tri := m.closestFace(p); tri != nil {
		return tri.UV(p)
	}
	return 0, 0
}

// closestFace returns the triangle whose centroid is nearest to p
func (m *Mesh) closestFace(p core.Vec3) *Triangle {
	var best *Triangle
	bestDist := core.Inf
	for i := range m.faces {
		tri := m.Triangle(i)
		a, b, c := tri.Vertices()
		centroid := a.Add(b).Add(c).Multiply(1.0 / 3)
		if d := centroid.Subtract(p).LengthSquared(); d < bestDist {
			best, bestDist = tri, d
		}
	}
	return best
}

// MaterialAt returns the mesh material
func (m *Mesh) MaterialAt(p core.Vec3) material.Material {
	return m.Material
}

// IsEmittable reports whether the mesh material emits
func (m *Mesh) IsEmittable() bool {
	return m.Material.IsEmittable()
}

// Lights exposes each face as its own light so that direct lighting samples
// them with exact per-triangle densities
func (m *Mesh) Lights() []Primitive {
	if !m.IsEmittable() {
		return nil
	}
	m.Build()
	lights := make([]Primitive, len(m.triangles))
	for i := range m.triangles {
		lights[i] = &m.triangles[i]
	}
	return lights
}

// RandomRayToward picks a face in proportion to its area
func (m *Mesh) RandomRayToward(p core.Vec3, sampler core.Sampler) core.Ray {
	m.Build()
	if len(m.areaCDF) == 0 {
		return core.NewRay(p, core.NewVec3(0, 0, 1))
	}
	total := m.areaCDF[len(m.areaCDF)-1]
	target := sampler.Get1D() * total

	lo, hi := 0, len(m.areaCDF)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if m.areaCDF[mid] <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return m.triangles[lo].RandomRayToward(p, sampler)
}

// PdfFor sums the per-face densities of every face the ray crosses
func (m *Mesh) PdfFor(ray core.Ray) float64 {
	m.Build()
	if len(m.areaCDF) == 0 {
		return 0
	}
	total := m.areaCDF[len(m.areaCDF)-1]
	pdf := 0.0
	for i := range m.triangles {
		tri := &m.triangles[i]
		pdf += tri.PdfFor(ray) * tri.Area() / total
	}
	return pdf
}
