// Package extrude generates 3D triangle meshes by sweeping 2D cross-section
// shapes along 3D paths, and defines the Target contract that rendering and
// export backends consume the resulting geometry through.
//
// # Overview
//
// extrude is a pure Go geometry-generation library in the GoGPU ecosystem.
// It has two halves:
//
//   - The extruder: a stateless function that turns a 2D profile shape, a 3D
//     path, per-point orientation and scale data, and a set of generation
//     options into triangles, per-vertex normals, and texture coordinates.
//   - The Target contract: a small sealed interface of primitive draw
//     operations (triangles, strip, fan, convex polygon, box, column) plus
//     composite operations (DrawShape, DrawExtrudedShape, DrawModel,
//     DrawMesh) expressed in terms of those primitives. Boxes and columns
//     are primitives so sinks with native support can intercept them;
//     LowerBox and LowerColumn provide the triangle-based fallback.
//
// # Quick Start
//
//	import "github.com/gogpu/extrude"
//
//	// Collect statistics about generated geometry.
//	t := extrude.NewStatsTarget()
//
//	// Draw a box and a column.
//	concrete := extrude.Material{Name: "concrete"}
//	t.DrawBox(concrete, mgl64.Vec3{0, 0, 0}, mgl64.Vec2{1, 0}, 1, 2, 2)
//	t.DrawColumn(concrete, nil, mgl64.Vec3{5, 0, 0}, 4, 0.5, 0.5, true, true)
//
//	if err := t.Finish(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinate System
//
// Uses a right-handed, Z-up coordinate system:
//   - X and Y span the ground plane
//   - Z increases upward
//
// Shape profiles live in a local 2D plane. A profile point (x, z) is placed
// at pathPoint + right*x*scale + up*z*scale, where (front, up, right) is the
// orientation frame at that path point and right = front x up. The shape's
// second coordinate therefore tracks the path's up vector, which defaults to
// the world Z axis.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Extrude, Target, Shape, Material, Mesh, Model, Config
//   - internal/triangulate: cap triangulation (fan and tessellated)
//   - obj: a Wavefront OBJ/MTL export target
//   - tags: key/value tag inheritance for map-data callers
//
// # Thread Safety
//
// Extrude is a pure function and safe for concurrent use with disjoint
// inputs. A Target instance is a stateful sink and is NOT thread-safe: all
// calls against one target must be serialized by the caller, and Finish must
// be called exactly once after the last draw call.
package extrude
