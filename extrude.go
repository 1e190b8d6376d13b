package extrude

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/extrude/internal/triangulate"
)

// Options is a bit-set of independent extrusion switches. Each option is
// purely additive to the base side-wall geometry; their order and
// combination carry no hidden coupling.
type Options uint8

const (
	// CapStart closes the first ring of a closed shape with a filled
	// polygon facing backward along the path.
	CapStart Options = 1 << iota

	// CapEnd closes the last ring of a closed shape with a filled polygon
	// facing forward along the path.
	CapEnd

	// SmoothNormals averages side-wall normals across the vertices shared
	// by adjacent wall quads, approximating a curved surface. Cap normals
	// stay flat.
	SmoothNormals
)

// Has reports whether all options in mask are set.
func (o Options) Has(mask Options) bool { return o&mask == mask }

// ExtrudeParams bundles the optional per-point inputs of Extrude. A nil
// slice means "use the default"; a non-nil slice must match the path length
// (or, for texture coordinates, path length x shape vertex count).
type ExtrudeParams struct {
	// UpVectors supplies the up direction at each path point. Nil defaults
	// every point to DefaultUp, which fails with ErrAmbiguousOrientation on
	// vertical path segments.
	UpVectors []mgl64.Vec3

	// ScaleFactors scales the shape's extent at each path point. Nil means
	// a uniform scale of 1. Values must be >= 0; a 0 collapses the ring to
	// a point.
	ScaleFactors []float64

	// TexCoordLists supplies one texture-coordinate list per texture layer,
	// each holding path length x shape vertex count coordinates in ring
	// order. Nil synthesizes coordinates that track path arc length and
	// shape perimeter distance.
	TexCoordLists [][]mgl64.Vec2

	Options Options
}

// Extrude sweeps a 2D shape along a 3D path and returns the resulting
// triangle geometry. It is a pure function: no state is shared between
// calls, and concurrent use with disjoint inputs is safe.
//
// The shape is placed at every path point in that point's orientation frame
// and consecutive rings are connected by side-wall quads, two triangles per
// shape edge. Caps and normal smoothing are controlled by params.Options.
//
// Returns ErrAmbiguousOrientation if params.UpVectors is nil and the path
// is vertical at any point, and an invalid-input error for short paths or
// per-point slices whose length does not match the path.
func Extrude(material Material, shape Shape, path []mgl64.Vec3, params ExtrudeParams) (*Geometry, error) {
	vs := shape.Vertices()
	if len(vs) < 2 {
		return nil, ErrInvalidShape
	}

	frames, err := pathFrames(path, params.UpVectors)
	if err != nil {
		return nil, err
	}

	scales := params.ScaleFactors
	if scales == nil {
		scales = uniformScales(len(path))
	} else if len(scales) != len(path) {
		return nil, lengthMismatchError("scaleFactors", len(scales), len(path))
	}

	layers := len(material.TextureLayers)
	if params.TexCoordLists != nil {
		layers = len(params.TexCoordLists)
		for _, list := range params.TexCoordLists {
			if len(list) != len(path)*len(vs) {
				return nil, lengthMismatchError("texCoordList", len(list), len(path)*len(vs))
			}
		}
	}

	// Shape vertices placed in 3D at every path point.
	rings := make([][]mgl64.Vec3, len(path))
	for i := range path {
		ring := make([]mgl64.Vec3, len(vs))
		for j, p := range vs {
			ring[j] = frames[i].transform(p, path[i], scales[i])
		}
		rings[i] = ring
	}

	g := &Geometry{TexCoords: make([][]mgl64.Vec2, layers)}

	buildWalls(g, shape, rings, params, layers, pathOffsets(path))

	if shape.Closed() {
		if err := buildCaps(g, shape, path, frames, scales, params.Options, layers); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// buildWalls emits the side-wall quads between consecutive rings.
func buildWalls(g *Geometry, shape Shape, rings [][]mgl64.Vec3, params ExtrudeParams, layers int, arcLens []float64) {
	vs := shape.Vertices()
	n := len(vs)
	edges := edgeCount(shape)
	perim := perimeterOffsets(vs, shape.Closed())

	var smoothed [][]mgl64.Vec3
	if params.Options.Has(SmoothNormals) {
		smoothed = smoothWallNormals(shape, rings)
	}

	// texCoord returns the wall coordinate for ring i, perimeter index e
	// (e may equal n on the closing edge of a closed shape).
	texCoord := func(layer, i, e int) mgl64.Vec2 {
		if params.TexCoordLists != nil {
			return params.TexCoordLists[layer][i*n+e%n]
		}
		return mgl64.Vec2{arcLens[i], perim[e]}
	}

	for i := 0; i+1 < len(rings); i++ {
		for e := 0; e < edges; e++ {
			a, b := e, (e+1)%n

			t1 := Triangle{rings[i][a], rings[i+1][a], rings[i+1][b]}
			t2 := Triangle{rings[i][a], rings[i+1][b], rings[i][b]}
			g.Triangles = append(g.Triangles, t1, t2)

			if smoothed != nil {
				na0, na1 := smoothed[i][a], smoothed[i+1][a]
				nb0, nb1 := smoothed[i][b], smoothed[i+1][b]
				g.Normals = append(g.Normals, na0, na1, nb1, na0, nb1, nb0)
			} else {
				n1, n2 := t1.Normal(), t2.Normal()
				g.Normals = append(g.Normals, n1, n1, n1, n2, n2, n2)
			}

			for l := 0; l < layers; l++ {
				ca0 := texCoord(l, i, e)
				ca1 := texCoord(l, i+1, e)
				cb0 := texCoord(l, i, e+1)
				cb1 := texCoord(l, i+1, e+1)
				g.TexCoords[l] = append(g.TexCoords[l], ca0, ca1, cb1, ca0, cb1, cb0)
			}
		}
	}
}

// smoothWallNormals computes one averaged normal per ring vertex from the
// face normals of the wall quads sharing it. For closed shapes the average
// wraps around the ring, so cylinders shade seamlessly.
func smoothWallNormals(shape Shape, rings [][]mgl64.Vec3) [][]mgl64.Vec3 {
	n := len(shape.Vertices())
	edges := edgeCount(shape)
	segs := len(rings) - 1

	// Face normal per (segment, edge) quad.
	faces := make([][]mgl64.Vec3, segs)
	for i := 0; i < segs; i++ {
		faces[i] = make([]mgl64.Vec3, edges)
		for e := 0; e < edges; e++ {
			a, b := e, (e+1)%n
			fn := Triangle{rings[i][a], rings[i+1][a], rings[i+1][b]}.Normal()
			if fn == (mgl64.Vec3{}) {
				fn = Triangle{rings[i][a], rings[i+1][b], rings[i][b]}.Normal()
			}
			faces[i][e] = fn
		}
	}

	adjacentEdges := func(j int) []int {
		if shape.Closed() {
			return []int{(j - 1 + n) % n, j % n}
		}
		var out []int
		if j > 0 {
			out = append(out, j-1)
		}
		if j < edges {
			out = append(out, j)
		}
		return out
	}

	out := make([][]mgl64.Vec3, len(rings))
	for i := range rings {
		out[i] = make([]mgl64.Vec3, n)
		for j := 0; j < n; j++ {
			var sum mgl64.Vec3
			for _, s := range []int{i - 1, i} {
				if s < 0 || s >= segs {
					continue
				}
				for _, e := range adjacentEdges(j) {
					sum = sum.Add(faces[s][e])
				}
			}
			if sum.Len() > 0 {
				sum = sum.Normalize()
			}
			out[i][j] = sum
		}
	}
	return out
}

// buildCaps closes the first and/or last ring of a closed shape. Convex
// rings are fanned; non-convex or holed rings are tessellated. Cap texture
// coordinates use the shape's own 2D coordinates, and cap normals are
// always flat.
func buildCaps(g *Geometry, shape Shape, path []mgl64.Vec3, frames []frame, scales []float64, opts Options, layers int) error {
	if !opts.Has(CapStart) && !opts.Has(CapEnd) {
		return nil
	}

	vs := shape.Vertices()
	hs := holes(shape)

	var tris2 []triangulate.Triangle
	if len(hs) == 0 && isConvexRing(vs) {
		tris2 = triangulate.Fan(vs)
	} else {
		var err error
		tris2, err = triangulate.Ring(vs, hs)
		if err != nil {
			return err
		}
	}

	// A counterclockwise 2D triangle maps to a 3D normal along -front, so
	// the start cap keeps the tessellated winding and the end cap reverses
	// it.
	emit := func(i int, reverse bool) {
		for _, t := range tris2 {
			if reverse {
				t[1], t[2] = t[2], t[1]
			}
			t3 := Triangle{
				frames[i].transform(t[0], path[i], scales[i]),
				frames[i].transform(t[1], path[i], scales[i]),
				frames[i].transform(t[2], path[i], scales[i]),
			}
			g.Triangles = append(g.Triangles, t3)
			n := t3.Normal()
			g.Normals = append(g.Normals, n, n, n)
			for l := 0; l < layers; l++ {
				g.TexCoords[l] = append(g.TexCoords[l], t[0], t[1], t[2])
			}
		}
	}

	if opts.Has(CapStart) {
		emit(0, false)
	}
	if opts.Has(CapEnd) {
		emit(len(path)-1, true)
	}
	return nil
}

// pathOffsets returns the cumulative arc length at every path point.
func pathOffsets(path []mgl64.Vec3) []float64 {
	out := make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		out[i] = out[i-1] + path[i].Sub(path[i-1]).Len()
	}
	return out
}

// uniformScales returns n copies of scale factor 1.
func uniformScales(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
