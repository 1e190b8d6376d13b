// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package triangulate decomposes closed 2D rings into triangles for cap
// generation. Convex rings take a fan fast path; non-convex rings and rings
// with holes go through libtess2.
package triangulate

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/go-libtess2"
)

// Triangle is a 2D triangle in shape space, counterclockwise.
type Triangle [3]mgl64.Vec2

// Fan triangulates a convex counterclockwise ring as a fan around its first
// vertex. The caller is responsible for convexity; concave rings produce
// overlapping triangles.
func Fan(ring []mgl64.Vec2) []Triangle {
	if len(ring) < 3 {
		return nil
	}
	out := make([]Triangle, 0, len(ring)-2)
	for i := 1; i+1 < len(ring); i++ {
		out = append(out, Triangle{ring[0], ring[i], ring[i+1]})
	}
	return out
}

// Ring triangulates an arbitrary closed ring with optional holes. The outer
// ring must wind counterclockwise and holes clockwise. All output triangles
// are counterclockwise.
func Ring(ring []mgl64.Vec2, holes [][]mgl64.Vec2) ([]Triangle, error) {
	if len(ring) < 3 {
		return nil, fmt.Errorf("triangulate: ring has %d vertices, need at least 3", len(ring))
	}

	contours := make([]libtess2.Contour, 0, 1+len(holes))
	contours = append(contours, contour(ring))
	for _, h := range holes {
		contours = append(contours, contour(h))
	}

	elements, vertices, err := libtess2.Tesselate(contours, libtess2.WindingRulePositive)
	if err != nil {
		return nil, fmt.Errorf("triangulate: %w", err)
	}

	out := make([]Triangle, 0, len(elements)/3)
	for i := 0; i+2 < len(elements); i += 3 {
		t := Triangle{
			vec2(vertices[elements[i]]),
			vec2(vertices[elements[i+1]]),
			vec2(vertices[elements[i+2]]),
		}
		// Tessellation does not guarantee output winding.
		if signedArea(t) < 0 {
			t[1], t[2] = t[2], t[1]
		}
		out = append(out, t)
	}
	return out, nil
}

func contour(ring []mgl64.Vec2) libtess2.Contour {
	c := make(libtess2.Contour, len(ring))
	for i, p := range ring {
		c[i] = libtess2.Vertex{X: float32(p.X()), Y: float32(p.Y())}
	}
	return c
}

func vec2(v libtess2.Vertex) mgl64.Vec2 {
	return mgl64.Vec2{float64(v.X), float64(v.Y)}
}

func signedArea(t Triangle) float64 {
	a := t[1].Sub(t[0])
	b := t[2].Sub(t[0])
	return (a.X()*b.Y() - a.Y()*b.X()) / 2
}
