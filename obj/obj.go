// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package obj implements an extrude.Target that writes Wavefront OBJ
// geometry, optionally with a companion MTL material library.
//
// The writer buffers output and keeps an internal error state: draw calls
// after a write failure become no-ops and the first error is reported by
// Finish. One Target writes one OBJ stream and must not be reused.
package obj

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/extrude"
)

// Target writes draw calls as Wavefront OBJ statements.
type Target struct {
	w      *bufio.Writer
	mtl    *bufio.Writer
	config *extrude.Config

	err      error
	finished bool

	vertexCount   int
	normalCount   int
	texCoordCount int
	objectCount   int

	currentMaterial string
	seenMaterials   map[string]bool
}

// Option configures a Target during creation.
type Option func(*Target)

// WithMaterialLibrary directs material definitions to w and emits a
// matching mtllib reference named name into the OBJ stream.
func WithMaterialLibrary(w io.Writer, name string) Option {
	return func(t *Target) {
		t.mtl = bufio.NewWriter(w)
		t.printf("mtllib %s\n", name)
	}
}

// New returns a Target writing OBJ statements to w.
func New(w io.Writer, opts ...Option) *Target {
	t := &Target{
		w:             bufio.NewWriter(w),
		seenMaterials: map[string]bool{},
	}
	t.printf("# generated by gogpu/extrude\n")
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Target) SetConfig(c *extrude.Config) { t.config = c }
func (t *Target) Config() *extrude.Config     { return t.config }

// BeginObject starts a new OBJ object group. A nil object gets a
// generated name.
func (t *Target) BeginObject(object any) {
	t.objectCount++
	name := fmt.Sprintf("object%d", t.objectCount)
	if object != nil {
		name = fmt.Sprintf("%v", object)
	}
	t.printf("o %s\n", name)
}

func (t *Target) DrawTriangles(material extrude.Material, triangles []extrude.Triangle, normals []mgl64.Vec3, texCoords [][]mgl64.Vec2) {
	t.useMaterial(material)

	// OBJ supports a single texture channel; extra layers are dropped.
	var uvs []mgl64.Vec2
	if len(texCoords) > 0 {
		uvs = texCoords[0]
	}

	for i, tri := range triangles {
		for j := 0; j < 3; j++ {
			v := tri[j]
			t.printf("v %g %g %g\n", v.X(), v.Y(), v.Z())
			if 3*i+j < len(normals) {
				n := normals[3*i+j]
				t.printf("vn %g %g %g\n", n.X(), n.Y(), n.Z())
			}
			if 3*i+j < len(uvs) {
				uv := uvs[3*i+j]
				t.printf("vt %g %g\n", uv.X(), uv.Y())
			}
		}
		t.face(3*i < len(normals), 3*i < len(uvs))
	}
}

func (t *Target) DrawTriangleStrip(material extrude.Material, vs []mgl64.Vec3, texCoords [][]mgl64.Vec2) {
	tris := extrude.TrianglesFromStrip(vs)
	t.DrawTriangles(material, tris, flatNormals(tris), expandTexCoords(stripIndices(len(vs)), len(vs), texCoords))
}

func (t *Target) DrawTriangleFan(material extrude.Material, vs []mgl64.Vec3, texCoords [][]mgl64.Vec2) {
	tris := extrude.TrianglesFromFan(vs)
	t.DrawTriangles(material, tris, flatNormals(tris), expandTexCoords(fanIndices(len(vs)), len(vs), texCoords))
}

func (t *Target) DrawConvexPolygon(material extrude.Material, vs []mgl64.Vec3, texCoords [][]mgl64.Vec2) {
	t.DrawTriangleFan(material, vs, texCoords)
}

// DrawBox lowers the box to triangle statements; OBJ has no box primitive.
func (t *Target) DrawBox(material extrude.Material, bottomCenter mgl64.Vec3, faceDirection mgl64.Vec2, height, width, depth float64) error {
	return extrude.LowerBox(t, material, bottomCenter, faceDirection, height, width, depth)
}

// DrawColumn lowers the column to triangle statements.
func (t *Target) DrawColumn(material extrude.Material, corners *int, base mgl64.Vec3, height, radiusBottom, radiusTop float64, drawBottom, drawTop bool) error {
	return extrude.LowerColumn(t, material, corners, base, height, radiusBottom, radiusTop, drawBottom, drawTop)
}

// Finish flushes buffered output and returns the first error encountered,
// if any. Finishing twice is an error.
func (t *Target) Finish() error {
	if t.finished {
		return extrude.ErrFinished
	}
	t.finished = true
	if err := t.w.Flush(); err != nil && t.err == nil {
		t.err = err
	}
	if t.mtl != nil {
		if err := t.mtl.Flush(); err != nil && t.err == nil {
			t.err = err
		}
	}
	return t.err
}

// face writes one triangular face statement referencing the three most
// recently written vertices. Vertex, normal, and texcoord indices are
// tracked separately since OBJ numbers each statement kind on its own.
func (t *Target) face(withNormals, withTexCoords bool) {
	v := t.vertexCount + 1
	t.vertexCount += 3
	switch {
	case withNormals && withTexCoords:
		vt, vn := t.texCoordCount+1, t.normalCount+1
		t.texCoordCount += 3
		t.normalCount += 3
		t.printf("f %d/%d/%d %d/%d/%d %d/%d/%d\n",
			v, vt, vn, v+1, vt+1, vn+1, v+2, vt+2, vn+2)
	case withNormals:
		vn := t.normalCount + 1
		t.normalCount += 3
		t.printf("f %d//%d %d//%d %d//%d\n",
			v, vn, v+1, vn+1, v+2, vn+2)
	case withTexCoords:
		vt := t.texCoordCount + 1
		t.texCoordCount += 3
		t.printf("f %d/%d %d/%d %d/%d\n",
			v, vt, v+1, vt+1, v+2, vt+2)
	default:
		t.printf("f %d %d %d\n", v, v+1, v+2)
	}
}

// useMaterial switches the active material, writing its MTL definition on
// first use if a material library is attached.
func (t *Target) useMaterial(material extrude.Material) {
	name := material.Name
	if name == "" {
		name = "default"
	}
	if t.mtl != nil && !t.seenMaterials[name] {
		t.seenMaterials[name] = true
		t.mtlPrintf("newmtl %s\n", name)
		c := material.Color
		t.mtlPrintf("Kd %.4f %.4f %.4f\n", c.R, c.G, c.B)
		if len(material.TextureLayers) > 0 {
			t.mtlPrintf("map_Kd %s\n", material.TextureLayers[0].Name)
		}
	}
	if name != t.currentMaterial {
		t.currentMaterial = name
		t.printf("usemtl %s\n", name)
	}
}

// Err returns the first error encountered, including ErrFinished latched
// by draw calls issued after Finish.
func (t *Target) Err() error { return t.err }

func (t *Target) printf(format string, args ...any) {
	if t.finished {
		// Draws after Finish are a caller bug; latch it rather than
		// silently dropping geometry.
		if t.err == nil {
			t.err = extrude.ErrFinished
		}
		return
	}
	if t.err != nil {
		return
	}
	if _, err := fmt.Fprintf(t.w, format, args...); err != nil {
		t.err = err
	}
}

func (t *Target) mtlPrintf(format string, args ...any) {
	if t.mtl == nil {
		return
	}
	if t.finished {
		if t.err == nil {
			t.err = extrude.ErrFinished
		}
		return
	}
	if t.err != nil {
		return
	}
	if _, err := fmt.Fprintf(t.mtl, format, args...); err != nil {
		t.err = err
	}
}

func flatNormals(tris []extrude.Triangle) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, 3*len(tris))
	for _, tri := range tris {
		n := tri.Normal()
		out = append(out, n, n, n)
	}
	return out
}

// stripIndices returns per-triangle vertex indices for an n-vertex strip,
// matching the reordering of extrude.TrianglesFromStrip.
func stripIndices(n int) [][3]int {
	if n < 3 {
		return nil
	}
	out := make([][3]int, 0, n-2)
	for i := 0; i+2 < n; i++ {
		if i%2 == 0 {
			out = append(out, [3]int{i, i + 1, i + 2})
		} else {
			out = append(out, [3]int{i, i + 2, i + 1})
		}
	}
	return out
}

// fanIndices returns per-triangle vertex indices for an n-vertex fan.
func fanIndices(n int) [][3]int {
	if n < 3 {
		return nil
	}
	out := make([][3]int, 0, n-2)
	for i := 1; i+1 < n; i++ {
		out = append(out, [3]int{0, i, i + 1})
	}
	return out
}

// expandTexCoords expands per-strip/fan-vertex coordinates to
// per-triangle-vertex coordinates by index, so duplicate vertex positions
// keep their own coordinates. Lists not matching the vertex count are
// dropped rather than guessed at.
func expandTexCoords(indices [][3]int, n int, texCoords [][]mgl64.Vec2) [][]mgl64.Vec2 {
	out := make([][]mgl64.Vec2, len(texCoords))
	for l, list := range texCoords {
		if len(list) != n {
			continue
		}
		expanded := make([]mgl64.Vec2, 0, 3*len(indices))
		for _, idx := range indices {
			expanded = append(expanded, list[idx[0]], list[idx[1]], list[idx[2]])
		}
		out[l] = expanded
	}
	return out
}
