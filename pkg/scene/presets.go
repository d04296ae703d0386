package scene

import (
	"github.com/pkg/errors"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Options carries inputs that presets may use
type Options struct {
	MeshPath   string           // STL file for the mesh preset
	Background material.Texture // Replaces the preset background when set
}

// Preset is a named scene together with its camera
type Preset struct {
	Name        string
	Description string
	Build       func(aspect float64, opts Options) (*Scene, *geometry.Camera, error)
}

var presets = []Preset{
	{
		Name:        "default",
		Description: "Glass sphere on a checkered floor under a warm sphere light",
		Build:       NewDefaultScene,
	},
	{
		Name:        "cornell",
		Description: "Cornell box with two rotated blocks and a ceiling light",
		Build:       NewCornellScene,
	},
	{
		Name:        "spheres",
		Description: "Grid of randomly sized and shaded spheres",
		Build:       NewSphereGridScene,
	},
	{
		Name:        "materials",
		Description: "One sphere per material on a grid floor",
		Build:       NewMaterialsScene,
	},
	{
		Name:        "mesh",
		Description: "STL mesh (or an octahedron) fitted into the unit cube",
		Build:       NewMeshScene,
	},
}

// Presets returns every built-in scene in display order
func Presets() []Preset {
	return presets
}

// Lookup finds a preset by name
func Lookup(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Load builds the named preset, applies the options and builds its tree
func Load(name string, aspect float64, opts Options) (*Scene, *geometry.Camera, error) {
	preset, ok := Lookup(name)
	if !ok {
		return nil, nil, errors.Errorf("unknown scene %q", name)
	}

	s, camera, err := preset.Build(aspect, opts)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to build scene %q", name)
	}
	if opts.Background != nil {
		s.BackgroundTexture = opts.Background
	}
	s.Build()
	return s, camera, nil
}
