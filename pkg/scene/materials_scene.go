package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewMaterialsScene lines up one sphere per material on a grid floor under a
// blue sky and a warm key light
func NewMaterialsScene(aspect float64, opts Options) (*Scene, *geometry.Camera, error) {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(0, 2.5, 9),
		LookAt:      core.NewVec3(0, 0.6, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: aspect,
	})

	s := NewScene()
	s.Background = core.NewVec3(0.5, 0.7, 1.0).Multiply(0.4)

	base := core.NewVec3(0.8, 0.3, 0.2)
	materials := []material.Material{
		material.NewLambertian(base),
		material.NewOrenNayar(base, 20),
		material.NewVelvet(base, 4),
		material.NewFresnelBlend(base, core.NewVec3(0.05, 0.05, 0.05), 200),
		material.NewMicrofacet(core.NewVec3(1.0, 0.94, 0.65), 100, 2.0),
		material.NewSpecular(core.NewVec3(0.9, 0.9, 0.9), 1.5),
		material.NewDielectric(core.NewVec3(0.9, 1.0, 0.9), 1.5),
	}

	spacing := 1.2
	x := -spacing * float64(len(materials)-1) / 2
	for _, mat := range materials {
		s.Add(geometry.NewSphere(core.NewVec3(x, 0.5, 0), 0.5, mat))
		x += spacing
	}

	grid := material.NewGridTexture(1, 0.03)
	grid.A = material.NewSolidTexture(core.NewVec3(0.6, 0.6, 0.6))
	grid.B = material.NewSolidTexture(core.NewVec3(0.1, 0.1, 0.1))
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.NewTexturedLambertian(grid)))

	key := material.NewDiffuseLight(material.ColorTemperature(3500).Multiply(6))
	s.Add(geometry.NewSphere(core.NewVec3(-4, 6, 5), 1.5, key))

	return s, camera, nil
}
