// Package halfedge stores polygon faces as rings of half-edges.
//
// Each face owns a cycle of half-edges linked through Next. A half-edge
// points at its origin vertex. Twins and boundary tracking are not kept.
package halfedge

import (
	"errors"
	"fmt"

	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
	"github.com/Faultbox/projection/pkg/mesh"
)

// ErrTooFewPositions is returned by AddFace for fewer than three positions.
var ErrTooFewPositions = errors.New("halfedge: face needs at least 3 positions")

// Vertex is a position shared by every half-edge leaving it.
type Vertex struct {
	Position math.Vec3
}

// HalfEdge is one directed boundary edge of a face, starting at Vertex.
type HalfEdge struct {
	Vertex *Vertex
	Next   *HalfEdge
	Face   *Face
}

// Face references one half-edge of its boundary cycle.
type Face struct {
	HalfEdge *HalfEdge
}

// Mesh owns all vertex, half-edge and face records.
type Mesh struct {
	Vertices  []*Vertex
	HalfEdges []*HalfEdge
	Faces     []*Face

	byPosition map[math.Vec3]*Vertex
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{byPosition: make(map[math.Vec3]*Vertex)}
}

func (m *Mesh) vertex(p math.Vec3) *Vertex {
	if m.byPosition == nil {
		m.byPosition = make(map[math.Vec3]*Vertex)
	}
	if v, ok := m.byPosition[p]; ok {
		return v
	}
	v := &Vertex{Position: p}
	m.byPosition[p] = v
	m.Vertices = append(m.Vertices, v)
	return v
}

// AddFace adds a face bounded by positions in order, one half-edge per
// boundary edge, the last linked back to the first. Equal positions share
// a vertex record.
func (m *Mesh) AddFace(positions []math.Vec3) (*Face, error) {
	if len(positions) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPositions, len(positions))
	}
	f := &Face{}
	edges := make([]*HalfEdge, len(positions))
	for i, p := range positions {
		edges[i] = &HalfEdge{Vertex: m.vertex(p), Face: f}
	}
	for i, e := range edges {
		e.Next = edges[(i+1)%len(edges)]
	}
	f.HalfEdge = edges[0]
	m.HalfEdges = append(m.HalfEdges, edges...)
	m.Faces = append(m.Faces, f)
	return f, nil
}

// HalfEdges walks the face's cycle starting at its reference half-edge.
func (f *Face) HalfEdges() []*HalfEdge {
	var out []*HalfEdge
	e := f.HalfEdge
	for {
		out = append(out, e)
		e = e.Next
		if e == f.HalfEdge || e == nil {
			break
		}
	}
	return out
}

// Polygon returns the face's vertex positions in cycle order.
func (f *Face) Polygon() geometry.Polygon[math.Vec3] {
	edges := f.HalfEdges()
	vs := make([]math.Vec3, len(edges))
	for i, e := range edges {
		vs[i] = e.Vertex.Position
	}
	return geometry.Polygon[math.Vec3]{Vertices: vs}
}

// Polygons returns one polygon per face, in insertion order.
func (m *Mesh) Polygons() []geometry.Polygon[math.Vec3] {
	out := make([]geometry.Polygon[math.Vec3], len(m.Faces))
	for i, f := range m.Faces {
		out[i] = f.Polygon()
	}
	return out
}

// FromMesh adds one triangular face per triangle of an indexed mesh.
func FromMesh[I mesh.Index, V geometry.Vertex[V]](tm mesh.TrivialMesh[I, V]) *Mesh {
	m := New()
	for _, t := range tm.Triangles() {
		// Three positions never fail.
		_, _ = m.AddFace([]math.Vec3{
			t.Vertices[0].Position(),
			t.Vertices[1].Position(),
			t.Vertices[2].Position(),
		})
	}
	return m
}
