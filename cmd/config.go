package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/internal/config"
)

// RenderFlags are accepted by the render command. Unset flags leave the
// config file value in place.
var RenderFlags = []cli.Flag{
	cli.StringFlag{Name: "scene, s", Usage: "scene preset (see the scenes command)"},
	cli.StringFlag{Name: "mesh", Usage: "binary STL file for the mesh preset"},
	cli.StringFlag{Name: "texture", Usage: "environment image used as the background"},
	cli.IntFlag{Name: "width", Usage: "image width"},
	cli.IntFlag{Name: "height", Usage: "image height"},
	cli.IntFlag{Name: "spp", Usage: "samples per pixel added by each iteration"},
	cli.IntFlag{Name: "iterations, n", Usage: "number of iterations, negative renders until interrupted"},
	cli.StringFlag{Name: "out, o", Usage: "output image, may contain %d for the iteration number"},
	cli.IntFlag{Name: "workers", Usage: "render goroutines (default: logical CPU count)"},
	cli.Int64Flag{Name: "seed", Usage: "base random seed"},
	cli.StringFlag{Name: "integrator", Usage: "light transport: path or ao"},
	cli.StringFlag{Name: "serve", Usage: "address of the live preview server, e.g. :8080"},
	cli.BoolFlag{Name: "quiet, q", Usage: "hide the progress bar"},
}

// loadConfig merges defaults, the --config file and command flags, then
// validates the result
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx.GlobalString("config"))
	if err != nil {
		return nil, err
	}

	cfg.Apply(config.Overrides{
		Width:      ctx.Int("width"),
		Height:     ctx.Int("height"),
		Samples:    ctx.Int("spp"),
		Iterations: ctx.Int("iterations"),
		Output:     ctx.String("out"),
		Workers:    ctx.Int("workers"),
		Seed:       ctx.Int64("seed"),
		Integrator: ctx.String("integrator"),
		Preset:     ctx.String("scene"),
		Mesh:       ctx.String("mesh"),
		Texture:    ctx.String("texture"),
		Serve:      ctx.String("serve"),
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
