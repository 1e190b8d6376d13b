package extrude

import "github.com/go-gl/mathgl/mgl64"

// Geometry is flat triangle geometry: triangles, one normal per triangle
// vertex, and one texture-coordinate list per texture layer with three
// coordinates per triangle.
type Geometry struct {
	Triangles []Triangle
	Normals   []mgl64.Vec3
	TexCoords [][]mgl64.Vec2
}

// Append adds another geometry's triangles to g. Both geometries must have
// the same number of texture-coordinate lists.
func (g *Geometry) Append(other *Geometry) {
	g.Triangles = append(g.Triangles, other.Triangles...)
	g.Normals = append(g.Normals, other.Normals...)
	for i := range other.TexCoords {
		if i < len(g.TexCoords) {
			g.TexCoords[i] = append(g.TexCoords[i], other.TexCoords[i]...)
		} else {
			g.TexCoords = append(g.TexCoords, other.TexCoords[i])
		}
	}
}
