package renderer

import (
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PixelStats is the running estimate for a single pixel
type PixelStats struct {
	Mean        core.Vec3 // Mean of every sample so far
	SampleCount int       // Number of samples taken
}

// AddSample folds a new sample into the running mean
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.SampleCount++
	ps.Mean = ps.Mean.Add(color.Subtract(ps.Mean).Multiply(1.0 / float64(ps.SampleCount)))
}

// GetColor returns the current average color for this pixel
func (ps PixelStats) GetColor() core.Vec3 {
	return ps.Mean
}

// IterationStats describes one completed progressive iteration
type IterationStats struct {
	Iteration       int           `json:"iteration"`
	Duration        time.Duration `json:"duration"`
	Rays            uint64        `json:"rays"`
	SamplesPerPixel int           `json:"samplesPerPixel"` // Accumulated samples per pixel after this iteration
	Luminance       float64       `json:"luminance"`       // Average luminance of the saved image
	Output          string        `json:"output,omitempty"`
}

// FPS returns iterations per second
func (s IterationStats) FPS() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return 1 / s.Duration.Seconds()
}

// MRaysPerSecond returns the ray throughput in millions of rays per second
func (s IterationStats) MRaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Rays) / (1e6 * s.Duration.Seconds())
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an 8-bit
// image, in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
		}
	}
	return total / (255 * float64(pixels))
}
