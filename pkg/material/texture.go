package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SolidTexture provides a uniform color
type SolidTexture struct {
	Color core.Vec3
}

// NewSolidTexture creates a new solid color texture
func NewSolidTexture(color core.Vec3) *SolidTexture {
	return &SolidTexture{Color: color}
}

// Sample returns the solid color regardless of UV or position
func (s *SolidTexture) Sample(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// CheckeredTexture alternates between two textures in a 3D checker pattern
type CheckeredTexture struct {
	A, B Texture
	Size float64 // Edge length of one check
}

// NewCheckeredTexture creates a black and white checker pattern with 0.5 unit checks
func NewCheckeredTexture() *CheckeredTexture {
	return &CheckeredTexture{
		A:    NewSolidTexture(core.NewVec3(0, 0, 0)),
		B:    NewSolidTexture(core.NewVec3(1, 1, 1)),
		Size: 0.5,
	}
}

// NewCheckeredTextureWith creates a checker pattern from two textures
func NewCheckeredTextureWith(a, b Texture, size float64) *CheckeredTexture {
	return &CheckeredTexture{A: a, B: b, Size: size}
}

// Sample picks A or B from the sign of the product of three sines
func (c *CheckeredTexture) Sample(u, v float64, p core.Vec3) core.Vec3 {
	f := 2 * math.Pi / c.Size
	if math.Sin(f*p.X)*math.Sin(f*p.Y)*math.Sin(f*p.Z) < 0 {
		return c.A.Sample(u, v, p)
	}
	return c.B.Sample(u, v, p)
}

// GridTexture draws grid lines of texture B over a fill of texture A on the
// XZ plane
type GridTexture struct {
	A, B    Texture
	Spacing float64 // Distance between lines
	Width   float64 // Line width, as a fraction of spacing
}

// NewGridTexture creates a grid of white lines over black
func NewGridTexture(spacing, width float64) *GridTexture {
	return &GridTexture{
		A:       NewSolidTexture(core.NewVec3(0, 0, 0)),
		B:       NewSolidTexture(core.NewVec3(1, 1, 1)),
		Spacing: spacing,
		Width:   width,
	}
}

// Sample returns B within Width/2 of a grid line and A elsewhere
func (g *GridTexture) Sample(u, v float64, p core.Vec3) core.Vec3 {
	qx := math.Abs(fract(p.X/g.Spacing-0.5) - 0.5)
	qz := math.Abs(fract(p.Z/g.Spacing-0.5) - 0.5)
	if min(qx, qz) > g.Width/2 {
		return g.A.Sample(u, v, p)
	}
	return g.B.Sample(u, v, p)
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Sample looks up the nearest texel. V=0 is the bottom row of the image.
func (t *ImageTexture) Sample(u, v float64, p core.Vec3) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.Vec3{}
	}

	x := int(u * float64(t.Width))
	y := int((1.0-v)*float64(t.Height) - 0.001)

	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))

	return t.Pixels[y*t.Width+x]
}
