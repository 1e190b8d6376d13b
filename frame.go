package extrude

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultUp is the up axis assumed at path points without an explicit up
// vector.
var DefaultUp = mgl64.Vec3{0, 0, 1}

// parallelEps bounds |front x up| below which a frame is considered
// degenerate.
const parallelEps = 1e-9

// frame is the orientation basis at a path point. right = front x up, so
// the three vectors form a consistent basis for placing shape profiles.
type frame struct {
	front, up, right mgl64.Vec3
}

// transform places a 2D shape point into 3D at origin, scaled by scale.
func (f frame) transform(p mgl64.Vec2, origin mgl64.Vec3, scale float64) mgl64.Vec3 {
	return origin.
		Add(f.right.Mul(p.X() * scale)).
		Add(f.up.Mul(p.Y() * scale))
}

// pathFrames computes the orientation frame at every path point. Interior
// points use the averaged tangent of the two adjacent segments, so
// consecutive rings do not twist at bends. Zero-length segments inherit the
// previous segment's tangent.
//
// With upVectors nil, every point uses DefaultUp and the result is
// ErrAmbiguousOrientation wherever the tangent is parallel to it.
func pathFrames(path []mgl64.Vec3, upVectors []mgl64.Vec3) ([]frame, error) {
	if len(path) < 2 {
		return nil, ErrInvalidPath
	}
	if upVectors != nil && len(upVectors) != len(path) {
		return nil, lengthMismatchError("upVectors", len(upVectors), len(path))
	}

	// Per-segment tangents. A degenerate segment reuses its predecessor's
	// tangent (or the first following non-degenerate one at the start).
	tangents := make([]mgl64.Vec3, len(path)-1)
	for i := range tangents {
		d := path[i+1].Sub(path[i])
		if d.Len() > parallelEps {
			tangents[i] = d.Normalize()
		}
	}
	for i := range tangents {
		if tangents[i] == (mgl64.Vec3{}) && i > 0 {
			tangents[i] = tangents[i-1]
		}
	}
	for i := len(tangents) - 2; i >= 0; i-- {
		if tangents[i] == (mgl64.Vec3{}) {
			tangents[i] = tangents[i+1]
		}
	}
	if tangents[0] == (mgl64.Vec3{}) {
		return nil, errors.New("extrude: path has zero length")
	}

	frames := make([]frame, len(path))
	for i := range path {
		var front mgl64.Vec3
		switch {
		case i == 0:
			front = tangents[0]
		case i == len(path)-1:
			front = tangents[len(tangents)-1]
		default:
			sum := tangents[i-1].Add(tangents[i])
			if sum.Len() > parallelEps {
				front = sum.Normalize()
			} else {
				// Full reversal; averaging would vanish.
				front = tangents[i]
			}
		}

		up := DefaultUp
		explicit := upVectors != nil
		if explicit {
			if upVectors[i].Len() < parallelEps {
				return nil, errors.New("extrude: zero-length up vector")
			}
			up = upVectors[i].Normalize()
		}

		right := front.Cross(up)
		if right.Len() < parallelEps {
			if !explicit {
				return nil, ErrAmbiguousOrientation
			}
			return nil, errors.New("extrude: up vector is parallel to the path direction")
		}

		frames[i] = frame{front: front, up: up, right: right.Normalize()}
	}
	return frames, nil
}
