package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// cornellSize is the edge length of the standard Cornell box
const cornellSize = 555.0

// NewCornellScene creates the classic Cornell box. Walls are planes, the
// light is a thin emissive box and the blocks are rotated cube meshes.
func NewCornellScene(aspect float64, opts Options) (*Scene, *geometry.Camera, error) {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Outside the open front of the box
		LookAt:      core.NewVec3(278, 278, 0),    // Centre of the opening
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: aspect,
	})

	s := NewScene()

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	// Walls face into the box
	floor := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), white)
	ceiling := geometry.NewPlane(core.NewVec3(0, cornellSize, 0), core.NewVec3(0, -1, 0), white)
	back := geometry.NewPlane(core.NewVec3(0, 0, cornellSize), core.NewVec3(0, 0, -1), white)
	left := geometry.NewPlane(core.NewVec3(cornellSize, 0, 0), core.NewVec3(-1, 0, 0), red) // +x is on the camera's left
	right := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), green)
	s.Add(floor, ceiling, back, left, right)

	// Hangs just below the ceiling so its underside faces the room
	s.Add(geometry.NewBox(core.NewVec3(213, 554, 227), core.NewVec3(343, cornellSize, 332), light))

	tall := NewCubeMesh(white)
	tall.Transform(mgl64.Scale3D(165, 330, 165))
	tall.MoveTo(core.NewVec3(265, 0, 295), core.Vec3{})
	tall.Rotate(core.NewVec3(0, 1, 0), 15*math.Pi/180)

	short := NewCubeMesh(white)
	short.Transform(mgl64.Scale3D(165, 165, 165))
	short.MoveTo(core.NewVec3(130, 0, 65), core.Vec3{})
	short.Rotate(core.NewVec3(0, 1, 0), -18*math.Pi/180)

	s.Add(tall, short)

	return s, camera, nil
}

// NewCubeMesh returns a 12-triangle mesh of the unit cube [0,1]³ with
// outward-facing triangles
func NewCubeMesh(mat material.Material) *geometry.Mesh {
	vertices := []core.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	faces := []int{
		0, 2, 1, 0, 3, 2, // z = 0
		4, 5, 6, 4, 6, 7, // z = 1
		0, 1, 5, 0, 5, 4, // y = 0
		3, 6, 2, 3, 7, 6, // y = 1
		0, 4, 7, 0, 7, 3, // x = 0
		1, 2, 6, 1, 6, 5, // x = 1
	}
	return geometry.NewMesh(vertices, faces, mat, nil)
}
