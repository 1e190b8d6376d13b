package extrude

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/extrude/internal/triangulate"
)

// Target is a sink for generated geometry. Concrete sinks implement this
// sealed primitive set; every composite operation (DrawShape,
// DrawExtrudedShape, DrawModel, DrawMesh) is a package function lowered
// onto these primitives, and must not be shadowed inconsistently by a sink.
// DrawBox and DrawColumn are primitives so that sinks with native box or
// cylinder support can intercept them; sinks without it delegate to
// LowerBox and LowerColumn.
//
// A target is single-writer: calls against one instance must be serialized
// by the caller, are processed in the order issued, and Finish must be
// called exactly once after the last draw call.
type Target interface {
	// SetConfig attaches a configuration object to the target.
	SetConfig(c *Config)

	// Config returns the attached configuration, possibly nil.
	Config() *Config

	// BeginObject announces that subsequent draw calls belong to one
	// logical object. Purely advisory grouping; object may be nil.
	BeginObject(object any)

	// DrawTriangles draws triangles with one normal per triangle vertex
	// and one texture-coordinate list per texture, each holding three
	// coordinates per triangle.
	DrawTriangles(material Material, triangles []Triangle, normals []mgl64.Vec3, texCoords [][]mgl64.Vec2)

	// DrawTriangleStrip draws a triangle strip. Each texture-coordinate
	// list has the same length as vs.
	DrawTriangleStrip(material Material, vs []mgl64.Vec3, texCoords [][]mgl64.Vec2)

	// DrawTriangleFan draws a triangle fan around vs[0].
	DrawTriangleFan(material Material, vs []mgl64.Vec3, texCoords [][]mgl64.Vec2)

	// DrawConvexPolygon draws a convex polygon. Winding determines the
	// facing direction.
	DrawConvexPolygon(material Material, vs []mgl64.Vec3, texCoords [][]mgl64.Vec2)

	// DrawBox draws an axis-aligned-height box standing on bottomCenter,
	// extending height along +Z and facing faceDirection in the ground
	// plane; width spans across the face and depth along it. Sinks without
	// a native box representation delegate to LowerBox.
	DrawBox(material Material, bottomCenter mgl64.Vec3, faceDirection mgl64.Vec2, height, width, depth float64) error

	// DrawColumn draws a column: a regular polygon extruded upward from
	// base by height, with independent bottom and top radii (a frustum
	// when they differ). corners selects the polygon's corner count; nil
	// requests a circular column, which sinks with true cylinder support
	// may honor exactly. Sinks without it delegate to LowerColumn.
	DrawColumn(material Material, corners *int, base mgl64.Vec3, height, radiusBottom, radiusTop float64, drawBottom, drawTop bool) error

	// Finish signals end-of-stream so the sink can flush buffered geometry
	// and release resources.
	Finish() error
}

// DrawExtrudedShape extrudes a shape along a path and forwards the
// resulting triangles to the target. This is the bridge between geometry
// generation and primitive consumption.
func DrawExtrudedShape(t Target, material Material, shape Shape, path []mgl64.Vec3, params ExtrudeParams) error {
	g, err := Extrude(material, shape, path, params)
	if err != nil {
		return err
	}
	t.DrawTriangles(material, g.Triangles, g.Normals, g.TexCoords)
	return nil
}

// DrawShape draws a flat closed shape in 3D space at an arbitrary rotation.
// The shape is placed at point in the frame defined by front and up, scaled
// by scale, and faces along front. Convex shapes without holes lower to
// DrawConvexPolygon; everything else is triangulated and lowered to
// DrawTriangles.
func DrawShape(t Target, material Material, shape ClosedShape, point, front, up mgl64.Vec3, scale float64) error {
	if front.Len() == 0 || up.Len() == 0 {
		return errors.New("extrude: drawShape requires non-zero front and up vectors")
	}
	f := frame{front: front.Normalize(), up: up.Normalize()}
	right := f.front.Cross(f.up)
	if right.Len() < parallelEps {
		return errors.New("extrude: drawShape front and up vectors are parallel")
	}
	f.right = right.Normalize()

	vs := shape.Vertices()
	hs := shape.Holes()
	layers := len(material.TextureLayers)

	// A counterclockwise ring maps to a normal along -front, so vertex
	// order is reversed to make the result face front.
	if len(hs) == 0 && isConvexRing(vs) {
		out := make([]mgl64.Vec3, len(vs))
		texCoords := make([][]mgl64.Vec2, layers)
		for i := range vs {
			p := vs[len(vs)-1-i]
			out[i] = f.transform(p, point, scale)
			for l := range texCoords {
				texCoords[l] = append(texCoords[l], p)
			}
		}
		t.DrawConvexPolygon(material, out, texCoords)
		return nil
	}

	tris2, err := triangulate.Ring(vs, hs)
	if err != nil {
		return err
	}
	tris := make([]Triangle, 0, len(tris2))
	texCoords := make([][]mgl64.Vec2, layers)
	for _, t2 := range tris2 {
		t2[1], t2[2] = t2[2], t2[1]
		tris = append(tris, Triangle{
			f.transform(t2[0], point, scale),
			f.transform(t2[1], point, scale),
			f.transform(t2[2], point, scale),
		})
		for l := range texCoords {
			texCoords[l] = append(texCoords[l], t2[0], t2[1], t2[2])
		}
	}
	t.DrawTriangles(material, tris, flatNormals(tris), texCoords)
	return nil
}

// LowerBox implements Target.DrawBox by extrusion: a rectangle profile
// swept along a two-point vertical path with both caps, yielding twelve
// outward-facing triangles.
func LowerBox(t Target, material Material, bottomCenter mgl64.Vec3, faceDirection mgl64.Vec2, height, width, depth float64) error {
	if faceDirection.Len() == 0 {
		return errors.New("extrude: drawBox requires a non-zero face direction")
	}
	fd := faceDirection.Normalize()
	up := mgl64.Vec3{fd.X(), fd.Y(), 0}

	path := []mgl64.Vec3{
		bottomCenter,
		bottomCenter.Add(mgl64.Vec3{0, 0, height}),
	}
	return DrawExtrudedShape(t, material, Rect(width, depth), path, ExtrudeParams{
		UpVectors: []mgl64.Vec3{up, up},
		Options:   CapStart | CapEnd,
	})
}

// columnUp is the up vector used for column profiles. Columns are
// rotationally symmetric, so any horizontal direction works.
var columnUp = mgl64.Vec3{1, 0, 0}

// LowerColumn implements Target.DrawColumn by extrusion: a regular-polygon
// profile swept upward with the radii as scale factors. A nil corner count
// draws a smooth-shaded circle approximation, possibly with a reduced
// corner count for very small radii as a quality/performance trade-off.
func LowerColumn(t Target, material Material, corners *int, base mgl64.Vec3, height, radiusBottom, radiusTop float64, drawBottom, drawTop bool) error {
	n := circleCorners
	round := corners == nil
	if corners != nil {
		n = *corners
	}
	if n < 3 {
		return errors.New("extrude: column needs at least 3 corners")
	}
	// Thin circular columns do not need full silhouette resolution.
	if round && max(radiusBottom, radiusTop) < 0.2 {
		n = circleCorners / 2
	}

	opts := SmoothNormals
	if !round {
		opts = 0
	}
	if drawBottom {
		opts |= CapStart
	}
	if drawTop {
		opts |= CapEnd
	}

	path := []mgl64.Vec3{
		base,
		base.Add(mgl64.Vec3{0, 0, height}),
	}
	return DrawExtrudedShape(t, material, RegularPolygon(n, 1), path, ExtrudeParams{
		UpVectors:    []mgl64.Vec3{columnUp, columnUp},
		ScaleFactors: []float64{radiusBottom, radiusTop},
		Options:      opts,
	})
}

// DrawModel draws an instanced model by double dispatch: the model receives
// the target and issues its own draw calls back against it.
func DrawModel(t Target, model Model, params InstanceParams) error {
	return model.Render(t, params)
}

// DrawMesh forwards a mesh's triangle geometry to the target if the
// target's configured level of detail lies within the mesh's declared
// range. Outside the range it is a silent no-op, not an error.
func DrawMesh(t Target, mesh Mesh) {
	if !mesh.LODRangeContains(t.Config().LOD()) {
		return
	}
	g := mesh.Geometry
	t.DrawTriangles(mesh.Material, g.Triangles, g.Normals, g.TexCoords)
}
