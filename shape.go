package extrude

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape is an ordered sequence of 2D points describing a cross-section
// profile in a path's local plane. The first coordinate of each vertex maps
// to the frame's right axis, the second to the frame's up axis.
//
// Open shapes describe a strip; closed shapes describe a solid cross-section
// whose outer ring must not self-intersect (output is degenerate otherwise,
// this is not validated). Closed outer rings are expected in counterclockwise
// order, which makes side-wall and cap normals face outward.
type Shape interface {
	// Vertices returns the profile vertices in order. Closed shapes do not
	// repeat the first vertex at the end; the closing edge is implicit.
	Vertices() []mgl64.Vec2

	// Closed reports whether the shape is a closed ring.
	Closed() bool
}

// ClosedShape is a closed Shape that may additionally contain holes.
// Holes only affect cap triangulation; side walls are generated for the
// outer ring alone.
type ClosedShape interface {
	Shape

	// Holes returns the interior rings, or nil if the shape is simple.
	// Hole rings are expected in clockwise order.
	Holes() [][]mgl64.Vec2
}

// Polyline is an open shape: a strip of connected edges with no closing
// edge and no caps.
type Polyline []mgl64.Vec2

func (p Polyline) Vertices() []mgl64.Vec2 { return p }
func (p Polyline) Closed() bool           { return false }

// Polygon is a closed shape with an outer ring and optional holes.
type Polygon struct {
	// Outer is the outer ring in counterclockwise order.
	Outer []mgl64.Vec2

	// Inner holds hole rings in clockwise order; may be nil.
	Inner [][]mgl64.Vec2
}

func (p Polygon) Vertices() []mgl64.Vec2 { return p.Outer }
func (p Polygon) Closed() bool           { return true }
func (p Polygon) Holes() [][]mgl64.Vec2  { return p.Inner }

// circleCorners is the number of corners used to approximate a circle
// profile. 24 keeps the silhouette visually round while bounding the
// triangle count of cylindrical extrusions.
const circleCorners = 24

// Rect returns a closed axis-aligned rectangle profile centered on the
// origin, width along the first axis and depth along the second.
func Rect(width, depth float64) Polygon {
	w, d := width/2, depth/2
	return Polygon{Outer: []mgl64.Vec2{
		{-w, -d}, {w, -d}, {w, d}, {-w, d},
	}}
}

// RegularPolygon returns a closed regular polygon profile with n corners
// centered on the origin. The first corner lies on the positive first axis.
func RegularPolygon(n int, radius float64) Polygon {
	vs := make([]mgl64.Vec2, n)
	for i := range vs {
		a := 2 * math.Pi * float64(i) / float64(n)
		vs[i] = mgl64.Vec2{radius * math.Cos(a), radius * math.Sin(a)}
	}
	return Polygon{Outer: vs}
}

// Circle returns a closed profile approximating a circle.
func Circle(radius float64) Polygon {
	return RegularPolygon(circleCorners, radius)
}

// edgeCount returns the number of edges of a shape: n for closed rings,
// n-1 for open strips.
func edgeCount(s Shape) int {
	n := len(s.Vertices())
	if s.Closed() {
		return n
	}
	return n - 1
}

// perimeterOffsets returns the cumulative edge length up to each vertex.
// For closed shapes the result has one extra entry holding the full
// perimeter, so the closing edge's far end maps to the total length rather
// than wrapping back to zero.
func perimeterOffsets(vs []mgl64.Vec2, closed bool) []float64 {
	n := len(vs)
	out := make([]float64, n, n+1)
	for i := 1; i < n; i++ {
		out[i] = out[i-1] + vs[i].Sub(vs[i-1]).Len()
	}
	if closed {
		out = append(out, out[n-1]+vs[0].Sub(vs[n-1]).Len())
	}
	return out
}

// cross2 is the scalar 2D cross product.
func cross2(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// isConvexRing reports whether a ring is convex. Collinear edges are
// tolerated; a ring shorter than 4 vertices is always convex.
func isConvexRing(vs []mgl64.Vec2) bool {
	n := len(vs)
	if n < 4 {
		return true
	}
	sign := 0.0
	for i := range vs {
		a, b, c := vs[i], vs[(i+1)%n], vs[(i+2)%n]
		z := cross2(b.Sub(a), c.Sub(b))
		if z == 0 {
			continue
		}
		if sign == 0 {
			sign = z
		} else if sign*z < 0 {
			return false
		}
	}
	return true
}

// holes returns the hole rings of a shape, if it declares any.
func holes(s Shape) [][]mgl64.Vec2 {
	if cs, ok := s.(ClosedShape); ok {
		return cs.Holes()
	}
	return nil
}
