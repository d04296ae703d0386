package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Gamma is the display gamma applied when converting to 8-bit color
const Gamma = 2.2

// Image is a grid of running per-pixel estimates. Row y of the image is the
// top of the picture. Each row is written by exactly one worker per
// iteration, so no locking is needed.
type Image struct {
	Width  int
	Height int
	pixels []PixelStats
}

// NewImage creates an image with no samples
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		pixels: make([]PixelStats, width*height),
	}
}

// AddSample folds one radiance sample into pixel (x, y)
func (img *Image) AddSample(x, y int, c core.Vec3) {
	img.pixels[y*img.Width+x].AddSample(c)
}

// Pixel returns the running estimate for (x, y)
func (img *Image) Pixel(x, y int) PixelStats {
	return img.pixels[y*img.Width+x]
}

// ToRGBA gamma-corrects and clamps every pixel into an 8-bit image
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			out.SetRGBA(x, y, vec3ToColor(img.pixels[y*img.Width+x].GetColor()))
		}
	}
	return out
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(Gamma).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
