package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"stanford-bunny", "Stanford Bunny"},
		{"dragon_gold", "Dragon Gold"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListMeshes(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, size int) {
		if err := os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("utah-teapot.stl", 84+50*3)
	write("bunny.STL", 84+50*10)
	write("short.stl", 10)
	write("notes.txt", 100)
	if err := os.Mkdir(filepath.Join(dir, "dir.stl"), 0o755); err != nil {
		t.Fatal(err)
	}

	meshes, err := ListMeshes(dir)
	if err != nil {
		t.Fatalf("ListMeshes failed: %v", err)
	}

	expected := []MeshFile{
		{Name: "Bunny", Path: filepath.Join(dir, "bunny.STL"), Triangles: 10},
		{Name: "Short", Path: filepath.Join(dir, "short.stl"), Triangles: 0},
		{Name: "Utah Teapot", Path: filepath.Join(dir, "utah-teapot.stl"), Triangles: 3},
	}
	if len(meshes) != len(expected) {
		t.Fatalf("Expected %d meshes, got %d: %+v", len(expected), len(meshes), meshes)
	}
	for i := range expected {
		if meshes[i] != expected[i] {
			t.Errorf("Mesh %d: expected %+v, got %+v", i, expected[i], meshes[i])
		}
	}
}

func TestListMeshes_MissingDir(t *testing.T) {
	meshes, err := ListMeshes(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Expected no error for a missing directory, got %v", err)
	}
	if len(meshes) != 0 {
		t.Errorf("Expected no meshes, got %d", len(meshes))
	}
}
