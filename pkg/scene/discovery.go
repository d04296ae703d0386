package scene

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// DefaultMeshDir is searched for STL files when no directory is given
const DefaultMeshDir = "meshes"

// MeshFile describes an STL file that the mesh preset can load
type MeshFile struct {
	Name      string `json:"name"`      // Display name derived from the file name
	Path      string `json:"path"`      // Path to pass as the mesh option
	Triangles int    `json:"triangles"` // Facet count implied by the file size
}

// ListMeshes returns the binary STL files in dir sorted by name. A missing
// directory yields an empty list.
func ListMeshes(dir string) ([]MeshFile, error) {
	if dir == "" {
		dir = DefaultMeshDir
	}
	if _, err := os.Stat(dir); err != nil {
		return []MeshFile{}, nil
	}

	var files []string
	for _, pattern := range []string{"*.stl", "*.STL"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan mesh directory")
		}
		files = append(files, matches...)
	}

	meshes := []MeshFile{}
	seen := make(map[string]bool)
	for _, path := range files {
		if seen[path] {
			continue
		}
		seen[path] = true

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		triangles := 0
		if info.Size() >= 84 {
			triangles = int((info.Size() - 84) / 50)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		meshes = append(meshes, MeshFile{Name: titleCase(name), Path: path, Triangles: triangles})
	}

	sort.Slice(meshes, func(i, j int) bool {
		return meshes[i].Name < meshes[j].Name
	})
	return meshes, nil
}

// titleCase converts a filename-style string to title case
// e.g., "stanford-bunny" -> "Stanford Bunny"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
