package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewMeshScene shows a single mesh standing on a checkered floor. The mesh
// comes from opts.MeshPath when set, and is an octahedron otherwise.
func NewMeshScene(aspect float64, opts Options) (*Scene, *geometry.Camera, error) {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(2.2, -2.2, 1.8),
		LookAt:      core.NewVec3(0, 0, 0.5),
		Up:          core.NewVec3(0, 0, 1),
		VFov:        40.0,
		AspectRatio: aspect,
	})

	s := NewScene()
	s.Background = core.NewVec3(0.2, 0.2, 0.25)

	gold := material.NewMicrofacet(core.NewVec3(1.0, 0.94, 0.65), 200, 2.0)

	var mesh *geometry.Mesh
	if opts.MeshPath != "" {
		var err error
		mesh, err = loaders.ReadSTL(opts.MeshPath, gold)
		if err != nil {
			return nil, nil, err
		}
	} else {
		mesh = NewOctahedronMesh(gold)
	}

	// Stand the mesh on the floor at the origin
	mesh.FitInsideUnitCube()
	mesh.MoveTo(core.Vec3{}, core.NewVec3(0.5, 0.5, 0))
	s.Add(mesh)

	checks := material.NewCheckeredTextureWith(
		material.NewSolidTexture(core.NewVec3(0.2, 0.2, 0.2)),
		material.NewSolidTexture(core.NewVec3(0.8, 0.8, 0.8)),
		0.5,
	)
	// Offset just below z=0 so the checker sines never all vanish on the floor
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, -0.001), core.NewVec3(0, 0, 1), material.NewTexturedLambertian(checks)))

	s.Add(geometry.NewSphere(core.NewVec3(-2, -1, 4), 1, material.NewDiffuseLight(material.ColorTemperature(6500).Multiply(10))))

	return s, camera, nil
}

// NewOctahedronMesh returns an eight-faced mesh with vertices on the unit axes
func NewOctahedronMesh(mat material.Material) *geometry.Mesh {
	vertices := []core.Vec3{
		{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: -1},
	}
	faces := []int{
		0, 2, 4, 2, 1, 4, 1, 3, 4, 3, 0, 4, // upper half
		2, 0, 5, 1, 2, 5, 3, 1, 5, 0, 3, 5, // lower half
	}
	return geometry.NewMesh(vertices, faces, mat, nil)
}
