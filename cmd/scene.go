package cmd

import (
	"fmt"
	"math"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/df07/go-pathtracer/internal/config"
	"github.com/df07/go-pathtracer/internal/logger"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// ListScenes prints the built-in scene presets and the STL files found in
// the mesh directory.
func ListScenes(ctx *cli.Context) error {
	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, p := range scene.Presets() {
		table.Append([]string{p.Name, p.Description})
	}
	table.Render()

	meshes, err := scene.ListMeshes(ctx.String("mesh-dir"))
	if err != nil {
		return err
	}
	if len(meshes) == 0 {
		return nil
	}

	table = tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Mesh", "Triangles", "Path"})
	for _, m := range meshes {
		table.Append([]string{m.Name, fmt.Sprintf("%d", m.Triangles), m.Path})
	}
	table.Render()
	return nil
}

// MeshInfo prints triangle counts, bounds and KD-tree shape for STL files.
func MeshInfo(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("missing STL file argument")
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"File", "Triangles", "Vertices", "Min", "Max", "KD nodes", "KD depth", "Max leaf"})
	for _, path := range ctx.Args() {
		mesh, err := loaders.ReadSTL(path, nil)
		if err != nil {
			return err
		}
		mesh.Build()
		box := mesh.BoundingBox()
		stats := mesh.Tree().Stats()
		table.Append([]string{
			path,
			fmt.Sprintf("%d", mesh.TriangleCount()),
			fmt.Sprintf("%d", mesh.VertexCount()),
			formatVec(box.Min),
			formatVec(box.Max),
			fmt.Sprintf("%d", stats.Nodes),
			fmt.Sprintf("%d", stats.MaxDepth),
			fmt.Sprintf("%d", stats.MaxLeaf),
		})
	}
	table.Render()
	return nil
}

// FitMesh rotates an STL mesh, scales it into the unit (or bi-unit) cube
// and writes the result.
func FitMesh(ctx *cli.Context) error {
	cfg := config.Default()
	if err := setupLogging(ctx, cfg); err != nil {
		return err
	}
	defer logger.Sync()

	if ctx.NArg() != 2 {
		return errors.New("expected input and output STL file arguments")
	}
	in, out := ctx.Args().Get(0), ctx.Args().Get(1)

	mesh, err := loaders.ReadSTL(in, nil)
	if err != nil {
		return err
	}

	axes := []struct {
		flag string
		axis core.Vec3
	}{
		{"rotate-x", core.NewVec3(1, 0, 0)},
		{"rotate-y", core.NewVec3(0, 1, 0)},
		{"rotate-z", core.NewVec3(0, 0, 1)},
	}
	for _, a := range axes {
		if deg := ctx.Float64(a.flag); deg != 0 {
			mesh.Rotate(a.axis, deg*math.Pi/180)
		}
	}

	if ctx.Bool("bi-unit") {
		mesh.FitInsideBiUnitCube()
	} else {
		mesh.FitInsideUnitCube()
	}

	if err := output.WriteSTL(out, mesh); err != nil {
		return err
	}
	box := mesh.BoundingBox()
	logger.Info("mesh fitted",
		zap.String("input", in),
		zap.String("output", out),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.String("min", formatVec(box.Min)),
		zap.String("max", formatVec(box.Max)),
	)
	return nil
}

func formatVec(v core.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
