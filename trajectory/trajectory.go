// Package trajectory contains the joint-space trajectory value types shared by
// the approach planning and goal dispatch layers.
package trajectory

import (
	"time"

	"github.com/pkg/errors"
)

// Point is a single trajectory waypoint. Positions are required; Velocities
// and Accelerations are optional, with an empty slice meaning "not specified".
// When present, each field must have one value per joint of the owning
// trajectory's joint order.
type Point struct {
	Positions     []float64
	Velocities    []float64
	Accelerations []float64
	TimeFromStart time.Duration
}

// Copy returns a deep copy of the point.
func (p Point) Copy() Point {
	out := Point{TimeFromStart: p.TimeFromStart}
	if p.Positions != nil {
		out.Positions = append([]float64{}, p.Positions...)
	}
	if p.Velocities != nil {
		out.Velocities = append([]float64{}, p.Velocities...)
	}
	if p.Accelerations != nil {
		out.Accelerations = append([]float64{}, p.Accelerations...)
	}
	return out
}

// CopyPoints returns a deep copy of a waypoint sequence.
func CopyPoints(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		out = append(out, p.Copy())
	}
	return out
}

// Trajectory is an ordered sequence of waypoints sharing one joint order. The
// position of a name within JointNames defines the index of that joint's
// values in every point.
type Trajectory struct {
	JointNames []string
	Points     []Point
}

// Empty reports whether the trajectory has no waypoints.
func (t Trajectory) Empty() bool {
	return len(t.Points) == 0
}

// Dim returns the number of joints the trajectory spans.
func (t Trajectory) Dim() int {
	return len(t.JointNames)
}

// Copy returns a deep copy of the trajectory.
func (t Trajectory) Copy() Trajectory {
	return Trajectory{
		JointNames: append([]string{}, t.JointNames...),
		Points:     CopyPoints(t.Points),
	}
}

// CheckDimensions verifies that every per-point field that is present has one
// value per joint.
func (t Trajectory) CheckDimensions() error {
	dim := t.Dim()
	for i, p := range t.Points {
		if len(p.Positions) != dim {
			return errors.Errorf("point %d: expected %d positions, got %d", i, dim, len(p.Positions))
		}
		if len(p.Velocities) != 0 && len(p.Velocities) != dim {
			return errors.Errorf("point %d: expected %d velocities, got %d", i, dim, len(p.Velocities))
		}
		if len(p.Accelerations) != 0 && len(p.Accelerations) != dim {
			return errors.Errorf("point %d: expected %d accelerations, got %d", i, dim, len(p.Accelerations))
		}
	}
	return nil
}
