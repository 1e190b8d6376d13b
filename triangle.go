package extrude

import "github.com/go-gl/mathgl/mgl64"

// Triangle is an ordered triple of 3D points. Counterclockwise winding as
// seen from outside yields an outward-facing normal by the right-hand rule.
type Triangle [3]mgl64.Vec3

// Normal returns the unit normal implied by the triangle's winding.
// Returns the zero vector for degenerate triangles.
func (t Triangle) Normal() mgl64.Vec3 {
	n := t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
	if n.Len() == 0 {
		return mgl64.Vec3{}
	}
	return n.Normalize()
}

// Area returns the triangle's surface area.
func (t Triangle) Area() float64 {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Len() / 2
}

// Centroid returns the triangle's center of mass.
func (t Triangle) Centroid() mgl64.Vec3 {
	return t[0].Add(t[1]).Add(t[2]).Mul(1.0 / 3.0)
}

// TrianglesFromStrip converts a triangle strip's vertex list to individual
// triangles. Winding alternates in a strip; every second triangle is
// reordered so all results share the first triangle's orientation.
func TrianglesFromStrip(vs []mgl64.Vec3) []Triangle {
	if len(vs) < 3 {
		return nil
	}
	out := make([]Triangle, 0, len(vs)-2)
	for i := 0; i+2 < len(vs); i++ {
		if i%2 == 0 {
			out = append(out, Triangle{vs[i], vs[i+1], vs[i+2]})
		} else {
			out = append(out, Triangle{vs[i], vs[i+2], vs[i+1]})
		}
	}
	return out
}

// TrianglesFromFan converts a triangle fan's vertex list to individual
// triangles sharing the first vertex.
func TrianglesFromFan(vs []mgl64.Vec3) []Triangle {
	if len(vs) < 3 {
		return nil
	}
	out := make([]Triangle, 0, len(vs)-2)
	for i := 1; i+1 < len(vs); i++ {
		out = append(out, Triangle{vs[0], vs[i], vs[i+1]})
	}
	return out
}

// flatNormals returns one copy of each triangle's face normal per vertex,
// in triangle order.
func flatNormals(tris []Triangle) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, 3*len(tris))
	for _, t := range tris {
		n := t.Normal()
		out = append(out, n, n, n)
	}
	return out
}
