package scene

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, then cubed
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a 20x20 grid of small spheres with random
// materials. The layout is seeded so every render sees the same scene.
func NewSphereGridScene(aspect float64, opts Options) (*Scene, *geometry.Camera, error) {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(4.5, 6, 18),    // Back and above the grid
		LookAt:      core.NewVec3(4.5, 0.8, 4.5), // Centre of the grid
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: aspect,
		Aperture:    0.02, // Small depth of field for some focus variation
	})

	s := NewScene()
	s.Background = core.NewVec3(0.05, 0.07, 0.1) // Faint night sky

	random := rand.New(rand.NewSource(42))

	// Sun-like light high to the side
	s.Add(geometry.NewSphere(core.NewVec3(20, 25, 20), 8, material.NewDiffuseLight(core.NewVec3(12.0, 11.5, 10.0))))
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	// Scale spheres to fill roughly 9x9 units
	gridSize := 20
	spacing := 9.0 / float64(gridSize-1)
	radius := max(0.02, min(0.35, spacing*0.35))

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			r := radius * (0.6 + 0.4*random.Float64())
			center := core.NewVec3(float64(i)*spacing, r, float64(j)*spacing)

			hue := 360 * float64(i*gridSize+j) / float64(gridSize*gridSize)
			color := oklchToRGB(0.7, 0.15, hue)

			var mat material.Material
			switch choice := random.Float64(); {
			case choice < 0.5:
				mat = material.NewLambertian(color)
			case choice < 0.7:
				mat = material.NewMicrofacet(color, 50+random.Float64()*500, 1.5)
			case choice < 0.85:
				mat = material.NewSpecular(color, 1.5)
			default:
				mat = material.NewDielectric(core.NewVec3(1, 1, 1), 1.5)
			}
			s.Add(geometry.NewSphere(center, r, mat))
		}
	}

	return s, camera, nil
}
