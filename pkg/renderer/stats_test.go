package renderer

import (
	"image"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Create a 2x2 image
	// Top-left: Red (1, 0, 0) -> Lum = 0.2126
	// Top-right: Green (0, 1, 0) -> Lum = 0.7152
	// Bottom-left: Blue (0, 0, 1) -> Lum = 0.0722
	// Bottom-right: Black (0, 0, 0) -> Lum = 0.0

	// Expected average: (0.2126 + 0.7152 + 0.0722 + 0.0) / 4 = 1.0 / 4 = 0.25

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_White(t *testing.T) {
	// 1x1 White pixel -> Lum = 1.0
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 1.0
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestPixelStats_RunningMean(t *testing.T) {
	var ps PixelStats
	samples := []core.Vec3{{X: 1, Y: 2, Z: 3}, {X: 3, Y: 2, Z: 1}, {X: 2, Y: 8, Z: 2}}
	sum := core.Vec3{}
	for i, s := range samples {
		ps.AddSample(s)
		sum = sum.Add(s)
		expected := sum.Multiply(1 / float64(i+1))
		if ps.GetColor().Subtract(expected).Length() > 1e-12 {
			t.Errorf("After %d samples: expected mean %v, got %v", i+1, expected, ps.GetColor())
		}
	}
	if ps.SampleCount != 3 {
		t.Errorf("Expected 3 samples, got %d", ps.SampleCount)
	}
}

func TestIterationStats_Rates(t *testing.T) {
	s := IterationStats{Duration: 500 * time.Millisecond, Rays: 3_000_000}
	if math.Abs(s.FPS()-2) > 1e-12 {
		t.Errorf("Expected 2 fps, got %f", s.FPS())
	}
	if math.Abs(s.MRaysPerSecond()-6) > 1e-12 {
		t.Errorf("Expected 6 Mray/s, got %f", s.MRaysPerSecond())
	}
	if (IterationStats{}).MRaysPerSecond() != 0 {
		t.Error("Expected zero rate for zero duration")
	}
}

func TestImage_ToRGBA(t *testing.T) {
	img := NewImage(3, 1)
	img.AddSample(0, 0, core.NewVec3(1, 1, 1))
	img.AddSample(1, 0, core.NewVec3(0.25, -1, 5)) // negative and over-bright values clamp
	img.AddSample(2, 0, core.NewVec3(0, 0, 0))

	out := img.ToRGBA()
	tests := []struct {
		x        int
		expected color.RGBA
	}{
		{0, color.RGBA{255, 255, 255, 255}},
		{1, color.RGBA{uint8(255 * math.Pow(0.25, 1/2.2)), 0, 255, 255}},
		{2, color.RGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := out.RGBAAt(tt.x, 0); got != tt.expected {
			t.Errorf("Pixel %d: expected %v, got %v", tt.x, tt.expected, got)
		}
	}
}

func TestImage_PixelColor(t *testing.T) {
	img := NewImage(2, 2)
	img.AddSample(1, 0, core.NewVec3(1, 0, 0))
	img.AddSample(1, 0, core.NewVec3(0, 0, 1))

	if got, expected := img.Pixel(1, 0).GetColor(), core.NewVec3(0.5, 0, 0.5); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if got := img.Pixel(0, 1).GetColor(); got != (core.Vec3{}) {
		t.Errorf("Expected unsampled pixel to be black, got %v", got)
	}
}
