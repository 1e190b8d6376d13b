package extrude

import (
	"errors"
	"fmt"
)

// ErrAmbiguousOrientation is returned when no up vectors were supplied and
// the path is vertical (or locally vertical) at some point, so the
// orientation frame front x up is degenerate. Supply explicit up vectors
// to resolve the rotation.
var ErrAmbiguousOrientation = errors.New("extrude: ambiguous orientation, path is parallel to the up axis")

// ErrInvalidPath is returned when a path has fewer than two points.
var ErrInvalidPath = errors.New("extrude: path must contain at least 2 points")

// ErrInvalidShape is returned when a shape has fewer than two vertices.
var ErrInvalidShape = errors.New("extrude: shape must contain at least 2 vertices")

// ErrFinished is returned by sinks that receive draw calls after Finish.
var ErrFinished = errors.New("extrude: target already finished")

// lengthMismatchError reports per-point data whose length differs from the
// path length. Matching lengths are a hard precondition; mismatches are
// never silently corrected.
func lengthMismatchError(what string, got, want int) error {
	return fmt.Errorf("extrude: %s length %d does not match path length %d", what, got, want)
}
