package loaders

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/pkg/errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	// stlHeaderSize covers the 80-byte comment and the uint32 triangle count
	stlHeaderSize = 84
	// stlTriangleSize is one facet: normal, three vertices and an attribute word
	stlTriangleSize = 50
)

// stlFacet is the little-endian on-disk layout of one binary STL triangle
type stlFacet struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

// ReadSTL loads a binary STL file into a mesh. Shared vertices are merged by
// exact position. Stored facet normals are ignored; the winding order
// defines orientation.
func ReadSTL(path string, mat material.Material) (*geometry.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read STL file")
	}
	if len(data) < stlHeaderSize {
		return nil, errors.Errorf("%s: file too short for a binary STL header (%d bytes)", path, len(data))
	}

	count := (len(data) - stlHeaderSize) / stlTriangleSize
	declared := binary.LittleEndian.Uint32(data[80:stlHeaderSize])
	exact := stlHeaderSize+int(declared)*stlTriangleSize == len(data)
	if !exact && bytes.HasPrefix(data, []byte("solid")) {
		return nil, errors.Errorf("%s: ASCII STL is not supported", path)
	}
	if int(declared) < count {
		// Trust the header when the file has trailing bytes
		count = int(declared)
	}

	mesh := geometry.NewEmptyMesh(mat)
	reader := bytes.NewReader(data[stlHeaderSize:])
	for i := 0; i < count; i++ {
		var facet stlFacet
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, errors.Wrapf(err, "%s: failed to read triangle %d", path, i)
		}
		mesh.AddTriangle(toVec3(facet.Vertices[0]), toVec3(facet.Vertices[1]), toVec3(facet.Vertices[2]))
	}
	return mesh, nil
}

func toVec3(v [3]float32) core.Vec3 {
	return core.NewVec3(float64(v[0]), float64(v[1]), float64(v[2]))
}
