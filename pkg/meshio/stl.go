package meshio

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
)

// Exporter writes a soup to a file in some interchange format.
type Exporter interface {
	Export(path string, s Soup) error
}

// STL writes binary STL files. Normals are recomputed from the winding.
type STL struct{}

// Export implements Exporter.
func (STL) Export(path string, s Soup) error {
	if err := render.SaveSTL(path, STLTriangles(s)); err != nil {
		return fmt.Errorf("save stl %s: %w", path, err)
	}
	return nil
}

// STLTriangles expands a soup into sdfx triangles, skipping index triples
// that point outside the position buffer.
func STLTriangles(s Soup) []*sdf.Triangle3 {
	out := make([]*sdf.Triangle3, 0, s.Triangles())
	for i := 0; i+2 < len(s.Indices); i += 3 {
		a, b, c := s.Indices[i], s.Indices[i+1], s.Indices[i+2]
		n := uint32(len(s.Positions))
		if a >= n || b >= n || c >= n {
			continue
		}
		out = append(out, &sdf.Triangle3{toV3(s.Positions[a]), toV3(s.Positions[b]), toV3(s.Positions[c])})
	}
	return out
}
