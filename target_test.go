package extrude

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// recorderTarget captures forwarded geometry on top of StatsTarget's
// bookkeeping.
type recorderTarget struct {
	*StatsTarget
	batches []recordedBatch
	polys   [][]mgl64.Vec3
}

type recordedBatch struct {
	material  Material
	triangles []Triangle
	normals   []mgl64.Vec3
	texCoords [][]mgl64.Vec2
}

func newRecorder() *recorderTarget {
	return &recorderTarget{StatsTarget: NewStatsTarget()}
}

func (t *recorderTarget) DrawTriangles(material Material, triangles []Triangle, normals []mgl64.Vec3, texCoords [][]mgl64.Vec2) {
	t.StatsTarget.DrawTriangles(material, triangles, normals, texCoords)
	t.batches = append(t.batches, recordedBatch{material, triangles, normals, texCoords})
}

func (t *recorderTarget) DrawConvexPolygon(material Material, vs []mgl64.Vec3, texCoords [][]mgl64.Vec2) {
	t.StatsTarget.DrawConvexPolygon(material, vs, texCoords)
	t.polys = append(t.polys, vs)
}

// DrawBox and DrawColumn lower onto the recorder itself, so the captured
// batches come through the overridden DrawTriangles.
func (t *recorderTarget) DrawBox(material Material, bottomCenter mgl64.Vec3, faceDirection mgl64.Vec2, height, width, depth float64) error {
	return LowerBox(t, material, bottomCenter, faceDirection, height, width, depth)
}

func (t *recorderTarget) DrawColumn(material Material, corners *int, base mgl64.Vec3, height, radiusBottom, radiusTop float64, drawBottom, drawTop bool) error {
	return LowerColumn(t, material, corners, base, height, radiusBottom, radiusTop, drawBottom, drawTop)
}

func (t *recorderTarget) allTriangles() []Triangle {
	var out []Triangle
	for _, b := range t.batches {
		out = append(out, b.triangles...)
	}
	return out
}

func TestDrawBox_Hexahedron(t *testing.T) {
	rec := newRecorder()
	err := rec.DrawBox(Material{Name: "stone"}, mgl64.Vec3{0, 0, 0}, mgl64.Vec2{1, 0}, 1, 2, 2)
	if err != nil {
		t.Fatalf("DrawBox() error = %v", err)
	}

	tris := rec.allTriangles()
	if len(tris) != 12 {
		t.Fatalf("box triangles = %d, want 12", len(tris))
	}

	// A closed 2x2x1 hexahedron: 16 units of surface area in 6 faces.
	area := 0.0
	for _, tri := range tris {
		area += tri.Area()
	}
	if !mgl64.FloatEqualThreshold(area, 16, 1e-9) {
		t.Errorf("surface area = %g, want 16", area)
	}

	if got := faceCentroidZ(tris, mgl64.Vec3{0, 0, 1}); !mgl64.FloatEqualThreshold(got, 1, 1e-9) {
		t.Errorf("top face centroid z = %g, want 1", got)
	}
	if got := faceCentroidZ(tris, mgl64.Vec3{0, 0, -1}); !mgl64.FloatEqualThreshold(got, 0, 1e-9) {
		t.Errorf("bottom face centroid z = %g, want 0", got)
	}

	// Every face points away from the box center.
	center := mgl64.Vec3{0, 0, 0.5}
	for i, tri := range tris {
		if tri.Normal().Dot(tri.Centroid().Sub(center)) <= 0 {
			t.Errorf("triangle %d faces inward", i)
		}
	}
}

func TestDrawBox_InvalidFaceDirection(t *testing.T) {
	rec := newRecorder()
	if err := rec.DrawBox(Material{}, mgl64.Vec3{}, mgl64.Vec2{}, 1, 1, 1); err == nil {
		t.Error("DrawBox() with zero face direction: error = nil, want non-nil")
	}
}

func TestDrawColumn_Cylinder(t *testing.T) {
	const (
		r = 0.5
		h = 3.0
	)
	rec := newRecorder()
	err := rec.DrawColumn(Material{Name: "pillar"}, nil, mgl64.Vec3{1, 2, 0}, h, r, r, true, true)
	if err != nil {
		t.Fatalf("DrawColumn() error = %v", err)
	}

	wantWalls := 2 * circleCorners
	wantCaps := 2 * (circleCorners - 2)
	if got := len(rec.allTriangles()); got != wantWalls+wantCaps {
		t.Fatalf("cylinder triangles = %d, want %d", got, wantWalls+wantCaps)
	}

	// Lateral surface area approximates 2*pi*r*h.
	lateral := 0.0
	for _, tri := range rec.allTriangles() {
		if math.Abs(tri.Normal().Z()) < 1e-9 {
			lateral += tri.Area()
		}
	}
	want := 2 * math.Pi * r * h
	if math.Abs(lateral-want)/want > 0.01 {
		t.Errorf("lateral area = %g, want %g within 1%%", lateral, want)
	}
}

func TestDrawColumn_SquareColumnAndFlags(t *testing.T) {
	corners := 4

	tests := []struct {
		name               string
		drawBottom, topCap bool
		want               int
	}{
		{"both caps", true, true, 8 + 2 + 2},
		{"no caps", false, false, 8},
		{"bottom only", true, false, 8 + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			err := rec.DrawColumn(Material{}, &corners, mgl64.Vec3{}, 2, 1, 1, tt.drawBottom, tt.topCap)
			if err != nil {
				t.Fatalf("DrawColumn() error = %v", err)
			}
			if got := len(rec.allTriangles()); got != tt.want {
				t.Errorf("triangles = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDrawColumn_CornerReduction(t *testing.T) {
	rec := newRecorder()
	// Thin circular columns drop to half the silhouette resolution.
	if err := rec.DrawColumn(Material{}, nil, mgl64.Vec3{}, 1, 0.1, 0.1, false, false); err != nil {
		t.Fatalf("DrawColumn() error = %v", err)
	}
	if got, want := len(rec.allTriangles()), circleCorners; got != want {
		t.Errorf("thin column triangles = %d, want %d", got, want)
	}
}

func TestDrawColumn_Frustum(t *testing.T) {
	rec := newRecorder()
	err := rec.DrawColumn(Material{}, nil, mgl64.Vec3{}, 2, 1, 0.25, true, true)
	if err != nil {
		t.Fatalf("DrawColumn() error = %v", err)
	}

	// Top-ring vertices sit at the top radius, bottom-ring at the bottom
	// radius.
	for _, tri := range rec.allTriangles() {
		for _, v := range tri {
			radial := mgl64.Vec2{v.X(), v.Y()}.Len()
			switch v.Z() {
			case 0:
				if radial > 1+1e-9 {
					t.Fatalf("bottom vertex %v outside bottom radius", v)
				}
			case 2:
				if radial > 0.25+1e-9 {
					t.Fatalf("top vertex %v outside top radius", v)
				}
			}
		}
	}
}

// cylinderTarget emits true cylinders natively instead of lowering columns
// to polygon walls.
type cylinderTarget struct {
	*StatsTarget
	columns int
}

func (t *cylinderTarget) DrawColumn(material Material, corners *int, base mgl64.Vec3, height, radiusBottom, radiusTop float64, drawBottom, drawTop bool) error {
	if corners != nil {
		return LowerColumn(t, material, corners, base, height, radiusBottom, radiusTop, drawBottom, drawTop)
	}
	t.columns++
	return nil
}

func TestDrawColumn_NativeCylinderSink(t *testing.T) {
	sink := &cylinderTarget{StatsTarget: NewStatsTarget()}
	var tgt Target = sink

	if err := tgt.DrawColumn(Material{}, nil, mgl64.Vec3{}, 2, 0.5, 0.5, true, true); err != nil {
		t.Fatalf("DrawColumn() error = %v", err)
	}
	if sink.columns != 1 {
		t.Errorf("native cylinders = %d, want 1", sink.columns)
	}
	if got := sink.TriangleCount(); got != 0 {
		t.Errorf("lowered triangles = %d, want 0 for a native cylinder", got)
	}

	// Explicit corner counts still lower to polygon geometry.
	corners := 6
	if err := tgt.DrawColumn(Material{}, &corners, mgl64.Vec3{}, 2, 0.5, 0.5, false, false); err != nil {
		t.Fatalf("DrawColumn() error = %v", err)
	}
	if got := sink.TriangleCount(); got != 12 {
		t.Errorf("lowered triangles = %d, want 12", got)
	}
}

func TestDrawShape_Convex(t *testing.T) {
	rec := newRecorder()
	front := mgl64.Vec3{0, 1, 0}
	err := DrawShape(rec, Material{}, Rect(2, 2), mgl64.Vec3{0, 5, 0}, front, mgl64.Vec3{0, 0, 1}, 1)
	if err != nil {
		t.Fatalf("DrawShape() error = %v", err)
	}

	if len(rec.polys) != 1 {
		t.Fatalf("convex polygon calls = %d, want 1", len(rec.polys))
	}
	// The polygon faces the front vector.
	for _, tri := range TrianglesFromFan(rec.polys[0]) {
		if tri.Normal().Dot(front) <= 0 {
			t.Errorf("shape triangle %v faces away from front", tri)
		}
	}
}

func TestDrawShape_NonConvex(t *testing.T) {
	lShape := Polygon{Outer: []mgl64.Vec2{
		{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2},
	}}

	rec := newRecorder()
	front := mgl64.Vec3{1, 0, 0}
	err := DrawShape(rec, Material{}, lShape, mgl64.Vec3{}, front, mgl64.Vec3{0, 0, 1}, 2)
	if err != nil {
		t.Fatalf("DrawShape() error = %v", err)
	}

	if len(rec.batches) != 1 {
		t.Fatalf("triangle batches = %d, want 1", len(rec.batches))
	}
	area := 0.0
	for _, tri := range rec.batches[0].triangles {
		if tri.Normal().Dot(front) <= 0 {
			t.Errorf("triangle %v faces away from front", tri)
		}
		area += tri.Area()
	}
	// Shape area 3, scaled by 2 in both axes.
	if !mgl64.FloatEqualThreshold(area, 12, 1e-4) {
		t.Errorf("shape area = %g, want 12", area)
	}
}

func TestDrawShape_ParallelVectors(t *testing.T) {
	rec := newRecorder()
	v := mgl64.Vec3{0, 0, 1}
	if err := DrawShape(rec, Material{}, Rect(1, 1), mgl64.Vec3{}, v, v, 1); err == nil {
		t.Error("DrawShape() with parallel vectors: error = nil, want non-nil")
	}
}

func TestDrawExtrudedShape(t *testing.T) {
	rec := newRecorder()
	err := DrawExtrudedShape(rec, Material{Name: "steel"}, Rect(1, 1), pathX, ExtrudeParams{})
	if err != nil {
		t.Fatalf("DrawExtrudedShape() error = %v", err)
	}
	if got := rec.Primitives["triangles"]; got != 1 {
		t.Errorf("triangles calls = %d, want 1", got)
	}
	if got := rec.TrianglesByMaterial["steel"]; got != 8 {
		t.Errorf("steel triangles = %d, want 8", got)
	}

	// Extrusion failures propagate unchanged.
	err = DrawExtrudedShape(rec, Material{}, Rect(1, 1), pathZ, ExtrudeParams{})
	if !errors.Is(err, ErrAmbiguousOrientation) {
		t.Errorf("vertical path error = %v, want ErrAmbiguousOrientation", err)
	}
}

func TestDrawMesh_LODFilter(t *testing.T) {
	mesh := Mesh{
		Material: Material{Name: "prebaked"},
		Geometry: Geometry{
			Triangles: []Triangle{{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}},
			Normals:   []mgl64.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		},
		LODRange: LODRange{Min: 2, Max: 4},
	}

	tests := []struct {
		name string
		lod  int
		want int
	}{
		{"inside range", 3, 1},
		{"lower bound", 2, 1},
		{"upper bound", 4, 1},
		{"below range", 1, 0},
		{"above range", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			c := NewConfig()
			c.Set("lod", tt.lod)
			rec.SetConfig(c)

			DrawMesh(rec, mesh)
			if got := rec.TrianglesByMaterial["prebaked"]; got != tt.want {
				t.Errorf("forwarded triangles = %d, want %d", got, tt.want)
			}
		})
	}

	t.Run("unconfigured target uses max LOD", func(t *testing.T) {
		rec := newRecorder()
		DrawMesh(rec, mesh)
		if got := rec.TrianglesByMaterial["prebaked"]; got != 1 {
			t.Errorf("forwarded triangles = %d, want 1", got)
		}
	})
}

// boxModel draws a fixed-size box at its instance position; used to verify
// the model double dispatch.
type boxModel struct {
	material Material
}

func (m boxModel) Render(t Target, params InstanceParams) error {
	s := params.ScaleOrDefault()
	return t.DrawBox(m.material, params.Position, params.FacingVector(), s, s, s)
}

func TestDrawModel_DoubleDispatch(t *testing.T) {
	rec := newRecorder()
	model := boxModel{material: Material{Name: "hut"}}

	err := DrawModel(rec, model, InstanceParams{
		Position:  mgl64.Vec3{10, 20, 0},
		Direction: math.Pi / 2,
		Scale:     2,
	})
	if err != nil {
		t.Fatalf("DrawModel() error = %v", err)
	}

	if got := rec.TrianglesByMaterial["hut"]; got != 12 {
		t.Fatalf("model triangles = %d, want 12", got)
	}
	// The instance's own draw calls land at the instance position.
	for _, tri := range rec.allTriangles() {
		for _, v := range tri {
			if v.Sub(mgl64.Vec3{10, 20, 0}).Len() > 4 {
				t.Fatalf("model vertex %v far from instance position", v)
			}
		}
	}
}

// faceCentroidZ averages the centroid height of triangles facing direction.
func faceCentroidZ(tris []Triangle, direction mgl64.Vec3) float64 {
	sum, n := 0.0, 0
	for _, tri := range tris {
		if tri.Normal().Dot(direction) > 0.99 {
			sum += tri.Centroid().Z()
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
