package extrude

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// InstanceParams places one instance of a model in the world.
type InstanceParams struct {
	// Position is the instance's anchor point.
	Position mgl64.Vec3

	// Direction is the facing angle in radians about the up axis,
	// 0 pointing along +X.
	Direction float64

	// Scale is a uniform scale factor; 0 is treated as 1.
	Scale float64
}

// FacingVector returns the horizontal unit vector implied by Direction.
func (p InstanceParams) FacingVector() mgl64.Vec2 {
	return mgl64.Vec2{math.Cos(p.Direction), math.Sin(p.Direction)}
}

// ScaleOrDefault returns Scale, substituting 1 for the zero value.
func (p InstanceParams) ScaleOrDefault() float64 {
	if p.Scale == 0 {
		return 1
	}
	return p.Scale
}

// Model is drawable content defined independently of any specific sink.
// Render issues primitive or composite draw calls against the target it is
// handed, so a model only ever touches the public Target contract.
type Model interface {
	Render(t Target, params InstanceParams) error
}
