package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// run executes the CLI with args and returns what commands wrote to the
// app's writer
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	err := app.Run(append([]string{"go-pathtracer"}, args...))
	return buf.String(), err
}

func TestScenesCommand(t *testing.T) {
	dir := t.TempDir()
	if err := output.WriteSTL(filepath.Join(dir, "utah-teapot.stl"), scene.NewCubeMesh(nil)); err != nil {
		t.Fatalf("WriteSTL failed: %v", err)
	}

	out, err := run(t, "scenes", "--mesh-dir", dir)
	if err != nil {
		t.Fatalf("scenes failed: %v", err)
	}
	for _, p := range scene.Presets() {
		if !strings.Contains(out, p.Name) {
			t.Errorf("Expected scene list to contain %q, got:\n%s", p.Name, out)
		}
	}
	if !strings.Contains(out, "Utah Teapot") {
		t.Errorf("Expected mesh list to contain Utah Teapot, got:\n%s", out)
	}
}

func TestGlobalFlags(t *testing.T) {
	out, err := run(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(out, "go-pathtracer version 0.1.0") {
		t.Errorf("Expected version output, got %q", out)
	}

	for _, flag := range []string{"-v", "-vv"} {
		t.Run(flag, func(t *testing.T) {
			out, err := run(t, flag, "scenes", "--mesh-dir", t.TempDir())
			if err != nil {
				t.Fatalf("%s scenes failed: %v", flag, err)
			}
			if !strings.Contains(out, "cornell") {
				t.Errorf("Expected scene list with %s, got:\n%s", flag, out)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	pattern := filepath.Join(dir, "frame-%d.png")

	_, err := run(t, "render", "--quiet", "--scene", "default",
		"--width", "8", "--height", "6", "--spp", "1", "-n", "2", "-o", pattern)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, name := range []string{"frame-1.png", "frame-2.png"} {
		tex, err := loaders.LoadImage(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("Expected %s to be written: %v", name, err)
		}
		if tex.Width != 8 || tex.Height != 6 {
			t.Errorf("Expected 8x6 image, got %dx%d", tex.Width, tex.Height)
		}
	}
}

func TestRenderCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "ao.ppm")
	cfgPath := filepath.Join(dir, "render.yaml")
	content := "render:\n  width: 4\n  height: 4\n  samples: 1\n  iterations: 1\n" +
		"integrator:\n  kind: ao\n  ao_samples: 2\nscene:\n  preset: cornell\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	// Flags override the file
	if _, err := run(t, "--config", cfgPath, "render", "--quiet", "-o", out); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Expected %s to be written: %v", out, err)
	}
	if !bytes.HasPrefix(data, []byte("P6\n4 4\n255\n")) {
		t.Errorf("Expected a 4x4 PPM, got header %q", data[:min(len(data), 12)])
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"--scene", "nonexistent"}},
		{"unknown integrator", []string{"--integrator", "bdpt"}},
		{"unsupported format", []string{"-o", filepath.Join(dir, "out.gif")}},
		{"missing texture", []string{"--texture", filepath.Join(dir, "missing.png")}},
		{"missing mesh", []string{"--scene", "mesh", "--mesh", filepath.Join(dir, "missing.stl")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"render", "--quiet", "--width", "4", "--height", "4", "-n", "1",
				"-o", filepath.Join(dir, "out.png")}, tt.args...)
			if _, err := run(t, args...); err == nil {
				t.Errorf("Expected error for %s, got nil", tt.name)
			}
		})
	}
}

func TestMeshCommands(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "block.stl")
	fitted := filepath.Join(dir, "fitted.stl")

	block := scene.NewCubeMesh(nil)
	block.MoveTo(core.NewVec3(10, -4, 2), core.Splat(0))
	if err := output.WriteSTL(in, block); err != nil {
		t.Fatalf("WriteSTL failed: %v", err)
	}

	out, err := run(t, "mesh-info", in)
	if err != nil {
		t.Fatalf("mesh-info failed: %v", err)
	}
	if !strings.Contains(out, "block.stl") || !strings.Contains(out, "12") {
		t.Errorf("Expected mesh info with 12 triangles, got:\n%s", out)
	}

	if _, err := run(t, "fit-mesh", "--bi-unit", "--rotate-z", "45", in, fitted); err != nil {
		t.Fatalf("fit-mesh failed: %v", err)
	}
	mesh, err := loaders.ReadSTL(fitted, nil)
	if err != nil {
		t.Fatalf("ReadSTL failed: %v", err)
	}
	box := mesh.BoundingBox()
	size := box.Size()
	if math.Abs(size.MaxComponent()-2) > 1e-5 {
		t.Errorf("Expected longest side 2, got %v", size)
	}
	if box.Min.X < -1-1e-5 || box.Max.X > 1+1e-5 || box.Min.Z < -1-1e-5 || box.Max.Z > 1+1e-5 {
		t.Errorf("Expected mesh inside [-1,1]³, got %v..%v", box.Min, box.Max)
	}

	if _, err := run(t, "fit-mesh", in); err == nil {
		t.Error("Expected error without an output path, got nil")
	}
	if _, err := run(t, "mesh-info"); err == nil {
		t.Error("Expected error without a mesh path, got nil")
	}
}
