package mesh

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
)

func vtx(x, y, z float32) geometry.SimpleVertex {
	return geometry.NewVertex(math.Vec3{X: x, Y: y, Z: z}, math.Vec3{Z: 1})
}

func unitTriangle() TrivialMesh[uint32, geometry.SimpleVertex] {
	var m TrivialMesh[uint32, geometry.SimpleVertex]
	m.Append(vtx(0, 0, 0))
	m.Append(vtx(1, 0, 0))
	m.Append(vtx(0, 1, 0))
	return m
}

func TestAppendDeduplicates(t *testing.T) {
	var m TrivialMesh[uint16, math.Vec3]
	first := m.Append(math.Vec3{X: 1, Y: 2, Z: 3})
	second := m.Append(math.Vec3{X: 1, Y: 2, Z: 3})

	if len(m.Vertices) != 1 {
		t.Errorf("Append grew vertices to %d for an equal vertex", len(m.Vertices))
	}
	if first != second {
		t.Errorf("second Append returned %d, want %d", second, first)
	}
	if len(m.Indices) != 2 || m.Indices[1] != first {
		t.Errorf("Indices = %v", m.Indices)
	}

	third := m.Append(math.Vec3{})
	if third != 1 || len(m.Vertices) != 2 {
		t.Errorf("new vertex got index %d, %d vertices", third, len(m.Vertices))
	}
}

func TestBuilderMatchesAppend(t *testing.T) {
	q := geometry.NewQuad(vtx(0, 0, 0), vtx(0, 1, 0), vtx(1, 0, 0), vtx(1, 1, 0))

	var linear TrivialMesh[uint32, geometry.SimpleVertex]
	for _, tri := range q.Subdivide() {
		linear.AppendTriangle(tri)
	}
	hashed := FromQuads[uint32]([]geometry.Quad[geometry.SimpleVertex]{q})

	if len(hashed.Vertices) != 4 || len(hashed.Indices) != 6 {
		t.Fatalf("FromQuads: %d vertices, %d indices", len(hashed.Vertices), len(hashed.Indices))
	}
	for i := range linear.Indices {
		if linear.Indices[i] != hashed.Indices[i] {
			t.Errorf("index %d: Append %d, Builder %d", i, linear.Indices[i], hashed.Indices[i])
		}
	}
}

func TestBuilderMeshIsSnapshot(t *testing.T) {
	b := NewBuilder[uint32, math.Vec3]()
	b.Add(math.Vec3{X: 1})
	snap := b.Mesh()
	b.Add(math.Vec3{X: 2})
	if len(snap.Vertices) != 1 || len(snap.Indices) != 1 {
		t.Errorf("snapshot changed after Add: %+v", snap)
	}
}

func TestFromPolygonsFans(t *testing.T) {
	polys := geometry.Box{Max: math.Vec3{X: 1, Y: 1, Z: 1}}.Polygons()
	m := FromPolygons[uint32](polys)
	if m.TriangleCount() != 12 {
		t.Errorf("box mesh has %d triangles, want 12", m.TriangleCount())
	}
	// Corners are shared per face only, since normals differ between faces.
	if len(m.Vertices) != 24 {
		t.Errorf("box mesh has %d vertices, want 24", len(m.Vertices))
	}
	if err := Validate(m); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestMergeOffsetsIndices(t *testing.T) {
	a := unitTriangle()
	b := unitTriangle().Offset(math.Vec3{Z: 1})
	b.Indices = []uint32{2, 1, 0}

	m := Merge(a, b)
	if len(m.Indices) != len(a.Indices)+len(b.Indices) {
		t.Fatalf("merged %d indices, want %d", len(m.Indices), len(a.Indices)+len(b.Indices))
	}
	for i, idx := range b.Indices {
		got := m.Indices[len(a.Indices)+i]
		if want := idx + uint32(len(a.Vertices)); got != want {
			t.Errorf("merged index %d = %d, want %d", i, got, want)
		}
	}
}

func TestMergeKeepsDuplicates(t *testing.T) {
	a := unitTriangle()
	m := Merge(a, a)
	if len(m.Vertices) != 2*len(a.Vertices) {
		t.Errorf("Merge compacted vertices: %d, want %d", len(m.Vertices), 2*len(a.Vertices))
	}
	if m.Vertices[0] != m.Vertices[len(a.Vertices)] {
		t.Error("expected the duplicated vertex to be preserved")
	}
}

func TestFlippedRoundTrip(t *testing.T) {
	m := Merge(unitTriangle(), unitTriangle().Offset(math.Vec3{X: 3}))
	once := Flipped(m)

	if once.Indices[0] != m.Indices[2] || once.Indices[2] != m.Indices[0] {
		t.Errorf("Flipped did not reverse winding: %v -> %v", m.Indices, once.Indices)
	}
	for i, v := range once.Vertices {
		if v.Norm != m.Vertices[i].Norm.Neg() {
			t.Errorf("vertex %d normal %v, want %v", i, v.Norm, m.Vertices[i].Norm.Neg())
		}
	}

	twice := Flipped(once)
	for i := range m.Indices {
		if twice.Indices[i] != m.Indices[i] {
			t.Fatalf("round trip indices %v, want %v", twice.Indices, m.Indices)
		}
	}
	for i := range m.Vertices {
		if twice.Vertices[i] != m.Vertices[i] {
			t.Errorf("round trip vertex %d = %+v, want %+v", i, twice.Vertices[i], m.Vertices[i])
		}
	}
}

func TestReversedKeepsNormals(t *testing.T) {
	m := unitTriangle()
	r := m.Reversed()
	if r.Indices[0] != 2 || r.Indices[2] != 0 {
		t.Errorf("Reversed indices = %v", r.Indices)
	}
	if r.Vertices[0].Norm != m.Vertices[0].Norm {
		t.Error("Reversed changed a normal")
	}
	if m.Indices[0] != 0 {
		t.Error("Reversed modified the receiver")
	}
}

func TestOffsetScaleBoundingBox(t *testing.T) {
	m := unitTriangle().Scale(math.Vec3{X: 2, Y: 3, Z: 1}).Offset(math.Vec3{X: 1, Y: 1, Z: 1})
	box := m.BoundingBox()
	want := geometry.Box{Min: math.Vec3{X: 1, Y: 1, Z: 1}, Max: math.Vec3{X: 3, Y: 4, Z: 1}}
	if box != want {
		t.Errorf("BoundingBox = %+v, want %+v", box, want)
	}
	if m.Vertices[0].Norm != (math.Vec3{Z: 1}) {
		t.Error("Scale changed a normal")
	}

	var empty TrivialMesh[uint32, math.Vec3]
	if got := empty.BoundingBox(); got != (geometry.Box{}) {
		t.Errorf("empty BoundingBox = %+v", got)
	}
}

func TestTransform(t *testing.T) {
	m := unitTriangle().Transform(math.Translate(0, 0, 5))
	if got := m.Vertices[1].Pos; got != (math.Vec3{X: 1, Z: 5}) {
		t.Errorf("Transform position = %v", got)
	}
}

func TestPolygons(t *testing.T) {
	m := unitTriangle()
	polys := m.Polygons()
	if len(polys) != 1 || len(polys[0].Vertices) != 3 {
		t.Fatalf("Polygons() = %v", polys)
	}
	if polys[0].Vertices[1].Pos != (math.Vec3{X: 1}) {
		t.Errorf("polygon vertex 1 = %v", polys[0].Vertices[1].Pos)
	}
}

func TestValidate(t *testing.T) {
	nan := float32(gomath.NaN())
	inf := float32(gomath.Inf(1))

	tests := []struct {
		name   string
		mutate func(m *TrivialMesh[uint32, geometry.SimpleVertex])
		want   error
	}{
		{"valid", func(*TrivialMesh[uint32, geometry.SimpleVertex]) {}, nil},
		{"odd index count", func(m *TrivialMesh[uint32, geometry.SimpleVertex]) {
			m.Indices = append(m.Indices, 0)
		}, ErrNotTriangles},
		{"index equal to vertex count", func(m *TrivialMesh[uint32, geometry.SimpleVertex]) {
			m.Indices[2] = uint32(len(m.Vertices))
		}, ErrIndexOutOfRange},
		{"nan position", func(m *TrivialMesh[uint32, geometry.SimpleVertex]) {
			m.Vertices[1].Pos.Z = nan
		}, ErrNonFinite},
		{"infinite normal", func(m *TrivialMesh[uint32, geometry.SimpleVertex]) {
			m.Vertices[0].Norm.Y = inf
		}, ErrNonFinite},
		{"short normal", func(m *TrivialMesh[uint32, geometry.SimpleVertex]) {
			m.Vertices[2].Norm = math.Vec3{Z: 0.9}
		}, ErrNormalNotUnit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := unitTriangle()
			tt.mutate(&m)
			err := Validate(m)
			if tt.want == nil {
				if err != nil || !IsValid(m) {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
			if IsValid(m) {
				t.Error("IsValid() = true for an invalid mesh")
			}
		})
	}
}
