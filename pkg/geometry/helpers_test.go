package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	grey  = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	light = material.NewDiffuseLight(core.NewVec3(4, 4, 4))
)

// linearScan is the brute-force reference for closest-hit queries
func linearScan(prims []Primitive, ray core.Ray) Hit {
	hit := NewHit()
	for _, p := range prims {
		p.Intersect(ray, &hit)
	}
	return hit
}

// unitCube returns a 12-triangle mesh of the cube [0,1]³
func unitCube(mat material.Material) *Mesh {
	v := []core.Vec3{
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
	return NewMesh(v, faces, mat, nil)
}
