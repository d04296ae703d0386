package output

import (
	"bufio"
	"encoding/binary"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// WriteSTL saves a mesh as binary STL. The 80-byte header is zeroed and each
// facet normal is recomputed from its winding.
func WriteSTL(path string, mesh *geometry.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create STL file")
	}
	w := bufio.NewWriter(file)

	header := make([]byte, 84)
	binary.LittleEndian.PutUint32(header[80:], uint32(mesh.TriangleCount()))
	if _, err := w.Write(header); err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to write STL header to %s", path)
	}

	facet := make([]byte, 50)
	for i := 0; i < mesh.TriangleCount(); i++ {
		v0, v1, v2 := mesh.Triangle(i).Vertices()
		normal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
		for j, v := range []core.Vec3{normal, v0, v1, v2} {
			putVec3(facet[12*j:], v)
		}
		// facet[48:50] is the attribute byte count, always zero
		if _, err := w.Write(facet); err != nil {
			file.Close()
			return errors.Wrapf(err, "failed to write triangle %d to %s", i, path)
		}
	}

	if err := w.Flush(); err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return errors.Wrapf(file.Close(), "failed to close %s", path)
}

func putVec3(b []byte, v core.Vec3) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}
