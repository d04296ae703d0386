package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Schlick approximates the Fresnel reflectance for an interface with the
// given index of refraction at incidence cosine cos
func Schlick(cos, eta float64) float64 {
	r0 := (1 - eta) / (1 + eta)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}

// schlickColor is Schlick's approximation with a colored normal-incidence reflectance
func schlickColor(cos float64, r0 core.Vec3) core.Vec3 {
	w := math.Pow(1-cos, 5)
	return r0.Add(core.Splat(1).Subtract(r0).Multiply(w))
}

// ColorTemperature approximates the RGB color of a blackbody at the given
// temperature in kelvin, in [0,1] per channel
func ColorTemperature(kelvin float64) core.Vec3 {
	t := kelvin / 100
	var r, g, b float64

	if t <= 66 {
		r = 255
		g = 99.4708025861*math.Log(t) - 161.1195681661
	} else {
		r = 329.698727446 * math.Pow(t-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(t-60, -0.0755148492)
	}

	switch {
	case t >= 66:
		b = 255
	case t <= 19:
		b = 0
	default:
		b = 138.5177312231*math.Log(t-10) - 305.0447927307
	}

	return core.NewVec3(r, g, b).Clamp(0, 255).Multiply(1.0 / 255)
}
