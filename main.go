package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/df07/go-pathtracer/internal/logger"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func newApp() *cli.App {
	// -v is the debug flag, so the built-in version flag only gets its long name
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes progressively using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML configuration file (default: ./pathtracer.yaml if present)",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable debug logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable debug logging with caller information",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene preset",
			Description: `
Render the selected scene in iterations. Every iteration adds --spp samples to
each pixel and saves the running average to --out, so the image converges while
you watch it. Interrupt with Ctrl-C to stop after the current iteration.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.Render,
		},
		{
			Name:  "scenes",
			Usage: "list the built-in scene presets and available meshes",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mesh-dir",
					Value: scene.DefaultMeshDir,
					Usage: "directory searched for STL files",
				},
			},
			Action: cmd.ListScenes,
		},
		{
			Name:      "mesh-info",
			Usage:     "show triangle counts, bounds and KD-tree shape of STL files",
			ArgsUsage: "mesh1.stl mesh2.stl ...",
			Action:    cmd.MeshInfo,
		},
		{
			Name:      "fit-mesh",
			Usage:     "rotate an STL mesh and scale it into the unit cube",
			ArgsUsage: "input.stl output.stl",
			Flags: []cli.Flag{
				cli.Float64Flag{Name: "rotate-x", Usage: "rotation about x in degrees"},
				cli.Float64Flag{Name: "rotate-y", Usage: "rotation about y in degrees"},
				cli.Float64Flag{Name: "rotate-z", Usage: "rotation about z in degrees"},
				cli.BoolFlag{Name: "bi-unit", Usage: "fit into [-1,1]³ instead of [0,1]³"},
			},
			Action: cmd.FitMesh,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		// Commands that fail before logging is set up report on stderr
		if logger.Log.Core().Enabled(zapcore.ErrorLevel) {
			logger.Error("command failed", zap.Error(err))
			logger.Sync()
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
