package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates the demo scene: a tinted glass sphere resting on a
// giant checkered sphere, lit by a 5000K sphere light. The scene is z-up.
func NewDefaultScene(aspect float64, opts Options) (*Scene, *geometry.Camera, error) {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(3, -3, 3), // Above and to the side
		LookAt:      core.NewVec3(0, 0, 0),  // Floor under the sphere
		Up:          core.NewVec3(0, 0, 1),  // Z is up
		VFov:        45.0,
		AspectRatio: aspect,
		Aperture:    0.01, // Barely any depth of field
	})

	s := NewScene()

	floor := material.NewTexturedLambertian(material.NewCheckeredTexture())
	glass := material.NewDielectric(core.NewVec3(0.4, 0.6, 0.8), 1.5)
	warmLight := material.NewDiffuseLight(material.ColorTemperature(5000).Multiply(7))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, 1), 1, glass),
		geometry.NewSphere(core.NewVec3(0, 0, -999), 999, floor), // Large enough to pass for a plane
		geometry.NewSphere(core.NewVec3(3, 1, 4), 2, warmLight),
	)

	return s, camera, nil
}
