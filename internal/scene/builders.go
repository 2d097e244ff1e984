package scene

import (
	gomath "math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/Faultbox/projection/pkg/construct"
	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/halfedge"
	"github.com/Faultbox/projection/pkg/math"
	"github.com/Faultbox/projection/pkg/meshio"
	"github.com/Faultbox/projection/pkg/projection"
)

func buildCylinder(segments int) (*Scene, error) {
	return &Scene{Parts: []Part{{Mesh: construct.Cylinder(1, 2, segments)}}}, nil
}

func buildExtrusion(segments int) (*Scene, error) {
	star, err := construct.Extrude(construct.Star(5, 0.5, 1.2), construct.Extrusion{
		Min: 0, Max: 0.5, Axis: construct.AxisY, Parts: construct.AllParts,
	})
	if err != nil {
		return nil, err
	}
	rect, err := construct.Extrude(construct.Rectangle(1, 1), construct.Extrusion{
		Min: 0, Max: 3, Axis: construct.AxisZ, Parts: construct.AllParts,
	})
	if err != nil {
		return nil, err
	}
	return &Scene{Parts: []Part{
		{Mesh: star},
		{Mesh: rect.Offset(math.Vec3{X: 1.5, Y: -0.5, Z: -1.5})},
	}}, nil
}

func revolveProfile() geometry.PolygonalChain[math.Vec3] {
	return geometry.NewChain(
		math.Vec3{},
		math.Vec3{X: -1},
		math.Vec3{X: -1, Y: 2.5},
		math.Vec3{Y: 2.5},
	)
}

func buildRevolve(segments int) (*Scene, error) {
	profile := revolveProfile()
	axis := geometry.NewLine(math.Vec3{}, math.Vec3{Y: 1})
	m := construct.Revolve(profile, axis, 0, 2*gomath.Pi, segments)
	drop := math.Vec3{Y: -1.25}

	overlay := &projection.Path3D{}
	for i, p := range profile.Points {
		if i == 0 {
			overlay.MoveTo(p.Add(drop))
		} else {
			overlay.LineTo(p.Add(drop))
		}
	}
	return &Scene{
		Parts:   []Part{{Mesh: m.Offset(drop)}},
		Overlay: overlay,
	}, nil
}

func buildBoxes(segments int) (*Scene, error) {
	left := geometry.Box{Min: math.Vec3{X: -2, Y: -0.5, Z: -0.5}, Max: math.Vec3{X: -1, Y: 0.5, Z: 0.5}}
	right := geometry.Box{Min: math.Vec3{X: 1, Y: -0.5, Z: -0.5}, Max: math.Vec3{X: 2, Y: 0.5, Z: 0.5}}
	ball := geometry.Sphere{Radius: 0.5}

	overlay := projection.BoxPath(left)
	for _, e := range right.Edges() {
		overlay.MoveTo(e.Start)
		overlay.LineTo(e.End)
	}
	return &Scene{
		Parts: []Part{
			{Mesh: construct.BoxMesh(left)},
			{Mesh: construct.SphereMesh(ball, segments, max(segments/2, 2))},
			{Mesh: construct.BoxMesh(right)},
		},
		Overlay: overlay,
	}, nil
}

func buildSphere(segments int) (*Scene, error) {
	ball := geometry.Sphere{Radius: 1}
	return &Scene{Parts: []Part{{Mesh: construct.SphereMesh(ball, segments, max(segments/2, 2))}}}, nil
}

func buildHalfEdge(segments int) (*Scene, error) {
	hm := halfedge.New()
	if _, err := hm.AddFace([]math.Vec3{{}, {Y: 1}, {X: 1, Y: 1}, {X: 1}}); err != nil {
		return nil, err
	}
	// The quad above winds clockwise seen from +Z; add its reverse so it is
	// visible from both sides with culling on.
	if _, err := hm.AddFace([]math.Vec3{{X: 1}, {X: 1, Y: 1}, {Y: 1}, {}}); err != nil {
		return nil, err
	}

	hex := halfedge.FromMesh(construct.Cylinder(0.5, 0.5, 6).Offset(math.Vec3{X: -1, Y: 0.5}))

	green := projection.Green
	return &Scene{Parts: []Part{
		flatPart(hm.Polygons(), &green),
		flatPart(hex.Polygons(), nil),
	}}, nil
}

func buildSDF(segments int) (*Scene, error) {
	box, err := sdf.Box3D(v3.Vec{X: 1.6, Y: 1.6, Z: 1.6}, 0.1)
	if err != nil {
		return nil, err
	}
	ball, err := sdf.Sphere3D(1)
	if err != nil {
		return nil, err
	}
	solid := sdf.Difference3D(box, ball)
	return &Scene{Parts: []Part{{Mesh: meshio.FromSDF(solid, max(segments, 8))}}}, nil
}
