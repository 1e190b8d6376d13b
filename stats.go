package extrude

import "github.com/go-gl/mathgl/mgl64"

// StatsTarget is a sink that counts geometry instead of storing it: objects
// begun, primitive calls by kind, and triangles per material. It doubles as
// the reference Target implementation and is what most of this package's
// tests draw into.
type StatsTarget struct {
	config *Config

	// Objects is the number of BeginObject calls.
	Objects int

	// Primitives counts primitive draw calls by kind
	// ("triangles", "strip", "fan", "convexPolygon").
	Primitives map[string]int

	// TrianglesByMaterial counts emitted triangles per material name.
	TrianglesByMaterial map[string]int

	// Finished reports whether Finish has been called.
	Finished bool
}

// NewStatsTarget returns an empty statistics sink.
func NewStatsTarget() *StatsTarget {
	return &StatsTarget{
		Primitives:          map[string]int{},
		TrianglesByMaterial: map[string]int{},
	}
}

func (t *StatsTarget) SetConfig(c *Config) { t.config = c }
func (t *StatsTarget) Config() *Config     { return t.config }

func (t *StatsTarget) BeginObject(object any) { t.Objects++ }

func (t *StatsTarget) DrawTriangles(material Material, triangles []Triangle, normals []mgl64.Vec3, texCoords [][]mgl64.Vec2) {
	t.Primitives["triangles"]++
	t.TrianglesByMaterial[material.Name] += len(triangles)
}

func (t *StatsTarget) DrawTriangleStrip(material Material, vs []mgl64.Vec3, texCoords [][]mgl64.Vec2) {
	t.Primitives["strip"]++
	t.TrianglesByMaterial[material.Name] += len(TrianglesFromStrip(vs))
}

func (t *StatsTarget) DrawTriangleFan(material Material, vs []mgl64.Vec3, texCoords [][]mgl64.Vec2) {
	t.Primitives["fan"]++
	t.TrianglesByMaterial[material.Name] += len(TrianglesFromFan(vs))
}

func (t *StatsTarget) DrawConvexPolygon(material Material, vs []mgl64.Vec3, texCoords [][]mgl64.Vec2) {
	t.Primitives["convexPolygon"]++
	t.TrianglesByMaterial[material.Name] += len(TrianglesFromFan(vs))
}

// DrawBox lowers the box to triangles; there is no native box counter.
func (t *StatsTarget) DrawBox(material Material, bottomCenter mgl64.Vec3, faceDirection mgl64.Vec2, height, width, depth float64) error {
	return LowerBox(t, material, bottomCenter, faceDirection, height, width, depth)
}

// DrawColumn lowers the column to triangles.
func (t *StatsTarget) DrawColumn(material Material, corners *int, base mgl64.Vec3, height, radiusBottom, radiusTop float64, drawBottom, drawTop bool) error {
	return LowerColumn(t, material, corners, base, height, radiusBottom, radiusTop, drawBottom, drawTop)
}

// Finish marks the target finished. Finishing twice is an error.
func (t *StatsTarget) Finish() error {
	if t.Finished {
		return ErrFinished
	}
	t.Finished = true
	return nil
}

// TriangleCount returns the total number of triangles across all materials.
func (t *StatsTarget) TriangleCount() int {
	total := 0
	for _, n := range t.TrianglesByMaterial {
		total += n
	}
	return total
}
