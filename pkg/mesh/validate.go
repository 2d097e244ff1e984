package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/projection/pkg/geometry"
)

// Validation failures. Validation is advisory: construction never calls it,
// callers decide what to do with the result.
var (
	ErrNotTriangles    = errors.New("mesh: index count is not a multiple of 3")
	ErrIndexOutOfRange = errors.New("mesh: index out of range")
	ErrNonFinite       = errors.New("mesh: non-finite vertex component")
	ErrNormalNotUnit   = errors.New("mesh: normal is not unit length")
)

// normalTolerance bounds |1 - |n|^2| for a normal to count as unit length.
const normalTolerance = 1e-6

// CheckIndices reports the first structural problem in m: an incomplete
// triangle, an index past the vertex buffer or a non-finite position.
func (m TrivialMesh[I, V]) CheckIndices() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", ErrNotTriangles, len(m.Indices))
	}
	for n, i := range m.Indices {
		if uint64(i) >= uint64(len(m.Vertices)) {
			return fmt.Errorf("%w: indices[%d] = %d, %d vertices", ErrIndexOutOfRange, n, i, len(m.Vertices))
		}
	}
	for n, v := range m.Vertices {
		if p := v.Position(); !p.IsFinite() {
			return fmt.Errorf("%w: vertex %d position %v", ErrNonFinite, n, p)
		}
	}
	return nil
}

// Validate runs CheckIndices and additionally requires every normal to be
// finite and unit length.
func Validate[I Index, V geometry.NormalVertex[V]](m TrivialMesh[I, V]) error {
	if err := m.CheckIndices(); err != nil {
		return err
	}
	for n, v := range m.Vertices {
		nrm := v.Normal()
		if !nrm.IsFinite() {
			return fmt.Errorf("%w: vertex %d normal %v", ErrNonFinite, n, nrm)
		}
		if d := 1 - nrm.LengthSquared(); d > normalTolerance || d < -normalTolerance {
			return fmt.Errorf("%w: vertex %d normal %v", ErrNormalNotUnit, n, nrm)
		}
	}
	return nil
}

// IsValid reports whether Validate finds nothing wrong.
func IsValid[I Index, V geometry.NormalVertex[V]](m TrivialMesh[I, V]) bool {
	return Validate(m) == nil
}
