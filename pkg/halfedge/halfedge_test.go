package halfedge

import (
	"errors"
	"testing"

	"github.com/Faultbox/projection/pkg/construct"
	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
)

var square = []math.Vec3{
	{X: 0, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 1, Y: 1, Z: 0},
	{X: 1, Y: 0, Z: 0},
}

func TestAddFaceLinksCycle(t *testing.T) {
	m := New()
	f, err := m.AddFace(square)
	if err != nil {
		t.Fatalf("AddFace: %v", err)
	}
	if len(m.HalfEdges) != 4 || len(m.Vertices) != 4 || len(m.Faces) != 1 {
		t.Fatalf("got %d half-edges, %d vertices, %d faces", len(m.HalfEdges), len(m.Vertices), len(m.Faces))
	}

	e := f.HalfEdge
	for i := 0; i < 4; i++ {
		if e.Face != f {
			t.Errorf("half-edge %d belongs to another face", i)
		}
		e = e.Next
	}
	if e != f.HalfEdge {
		t.Error("cycle does not return to the reference half-edge after 4 steps")
	}
}

func TestPolygonsEmitReferenceVertex(t *testing.T) {
	m := New()
	if _, err := m.AddFace(square); err != nil {
		t.Fatalf("AddFace: %v", err)
	}
	polys := m.Polygons()
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	got := polys[0].Vertices
	if len(got) != len(square) {
		t.Fatalf("polygon has %d vertices, want %d", len(got), len(square))
	}
	for i := range square {
		if got[i] != square[i] {
			t.Errorf("vertex %d = %v, want %v", i, got[i], square[i])
		}
	}
}

func TestAddFaceTooFew(t *testing.T) {
	m := New()
	if _, err := m.AddFace(square[:2]); !errors.Is(err, ErrTooFewPositions) {
		t.Errorf("err = %v, want ErrTooFewPositions", err)
	}
	if len(m.Faces) != 0 || len(m.HalfEdges) != 0 {
		t.Error("failed AddFace left records behind")
	}
}

func TestSharedVertices(t *testing.T) {
	var m Mesh
	if _, err := m.AddFace(square[:3]); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddFace([]math.Vec3{square[0], square[2], square[3]}); err != nil {
		t.Fatal(err)
	}
	if len(m.Vertices) != 4 {
		t.Errorf("got %d vertices, want 4 shared", len(m.Vertices))
	}
	if len(m.HalfEdges) != 6 {
		t.Errorf("got %d half-edges, want 6", len(m.HalfEdges))
	}
}

func TestFromMesh(t *testing.T) {
	box := construct.BoxMesh(geometry.Box{Max: math.Vec3{X: 1, Y: 1, Z: 1}})
	m := FromMesh(box)
	if len(m.Faces) != box.TriangleCount() {
		t.Errorf("got %d faces, want %d", len(m.Faces), box.TriangleCount())
	}
	if len(m.Vertices) != 8 {
		t.Errorf("got %d vertices, want 8 corners", len(m.Vertices))
	}
	for i, p := range m.Polygons() {
		if len(p.Vertices) != 3 {
			t.Errorf("face %d has %d vertices", i, len(p.Vertices))
		}
	}
}
