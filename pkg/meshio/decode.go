// Package meshio moves meshes in and out of the kernel: packed vertex
// buffers, signed distance solids, polygon soups and STL files.
package meshio

import (
	"encoding/binary"
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/projection/pkg/math"
	"github.com/Faultbox/projection/pkg/mesh"
)

var (
	ErrBufferTooShort = errors.New("meshio: buffer too short")
	ErrBadStride      = errors.New("meshio: stride cannot hold a packed float3 at offset")
)

const float3Size = 12

// Layout locates packed little-endian float3 positions in a vertex buffer.
// Vertex i starts at i*Stride + Offset.
type Layout struct {
	Stride int
	Offset int
}

// PackedFloat3 is the layout of a buffer holding nothing but positions.
var PackedFloat3 = Layout{Stride: float3Size}

// DecodePositions reads count positions from buf.
func DecodePositions(buf []byte, count int, l Layout) ([]math.Vec3, error) {
	if l.Offset < 0 || l.Stride < l.Offset+float3Size {
		return nil, fmt.Errorf("%w: stride %d, offset %d", ErrBadStride, l.Stride, l.Offset)
	}
	if count == 0 {
		return nil, nil
	}
	if need := (count-1)*l.Stride + l.Offset + float3Size; len(buf) < need {
		return nil, fmt.Errorf("%w: %d vertices need %d bytes, have %d", ErrBufferTooShort, count, need, len(buf))
	}
	out := make([]math.Vec3, count)
	for i := range out {
		p := buf[i*l.Stride+l.Offset:]
		out[i] = math.Vec3{
			X: gomath.Float32frombits(binary.LittleEndian.Uint32(p[0:])),
			Y: gomath.Float32frombits(binary.LittleEndian.Uint32(p[4:])),
			Z: gomath.Float32frombits(binary.LittleEndian.Uint32(p[8:])),
		}
	}
	return out, nil
}

// DecodeIndices reads little-endian uint32 triangle indices.
func DecodeIndices(buf []byte) ([]uint32, error) {
	if len(buf)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of uint32", ErrBufferTooShort, len(buf))
	}
	out := make([]uint32, len(buf)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
	return out, nil
}

// Import decodes a position buffer and an index buffer into a mesh. The
// mesh is not validated.
func Import(vertexBuf []byte, count int, l Layout, indexBuf []byte) (mesh.TrivialMesh[uint32, math.Vec3], error) {
	pos, err := DecodePositions(vertexBuf, count, l)
	if err != nil {
		return mesh.TrivialMesh[uint32, math.Vec3]{}, fmt.Errorf("positions: %w", err)
	}
	idx, err := DecodeIndices(indexBuf)
	if err != nil {
		return mesh.TrivialMesh[uint32, math.Vec3]{}, fmt.Errorf("indices: %w", err)
	}
	return mesh.New(idx, pos), nil
}
