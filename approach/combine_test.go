package approach

import (
	"testing"
	"time"

	"go.viam.com/test"

	"go.viam.com/approachmotion/trajectory"
)

var twoJoints = []string{"joint0", "joint1"}

func TestCombineFullGroupCopy(t *testing.T) {
	// Both joints are covered by the approach; its points pass through as-is.
	trajIn := []trajectory.Point{{Positions: []float64{0.5, 0.5}}}
	approach := trajectory.Trajectory{
		JointNames: twoJoints,
		Points: []trajectory.Point{
			{Positions: []float64{0.2, 0.2}, TimeFromStart: time.Second},
			{Positions: []float64{0.5, 0.5}, TimeFromStart: 2 * time.Second},
		},
	}

	trajOut := combineTrajectories(twoJoints, []float64{0, 0}, trajIn, approach)
	test.That(t, trajOut, test.ShouldHaveLength, 2)
	test.That(t, trajOut[0].Positions, test.ShouldResemble, []float64{0.2, 0.2})
	test.That(t, trajOut[0].TimeFromStart, test.ShouldEqual, time.Second)
	test.That(t, trajOut[0].Velocities, test.ShouldBeNil)
	test.That(t, trajOut[0].Accelerations, test.ShouldBeNil)
	test.That(t, trajOut[1].Positions, test.ShouldResemble, []float64{0.5, 0.5})
	test.That(t, trajOut[1].TimeFromStart, test.ShouldEqual, 2*time.Second)
}

func TestCombineInterpolatesOutOfGroupJoints(t *testing.T) {
	// joint1 is outside the planning group and bridges linearly from its
	// current position to the input's first waypoint over the approach window.
	trajIn := []trajectory.Point{{Positions: []float64{0.5, 0.5}}}
	approach := trajectory.Trajectory{
		JointNames: []string{"joint0"},
		Points: []trajectory.Point{
			{Positions: []float64{0.2}, TimeFromStart: time.Second},
			{Positions: []float64{0.5}, TimeFromStart: 2 * time.Second},
		},
	}

	trajOut := combineTrajectories(twoJoints, []float64{0, 0}, trajIn, approach)
	test.That(t, trajOut, test.ShouldHaveLength, 2)
	test.That(t, trajOut[0].Positions[0], test.ShouldEqual, 0.2)
	test.That(t, trajOut[0].Positions[1], test.ShouldAlmostEqual, 0.25)
	test.That(t, trajOut[1].Positions[0], test.ShouldEqual, 0.5)
	test.That(t, trajOut[1].Positions[1], test.ShouldAlmostEqual, 0.5)
}

func TestCombineInterpolationVelocities(t *testing.T) {
	trajIn := []trajectory.Point{{Positions: []float64{1.0, 1.0}}}
	approach := trajectory.Trajectory{
		JointNames: []string{"joint0"},
		Points: []trajectory.Point{
			{Positions: []float64{0.4}, Velocities: []float64{0.7}, Accelerations: []float64{0.1}, TimeFromStart: time.Second},
			{Positions: []float64{1.0}, Velocities: []float64{0}, Accelerations: []float64{0}, TimeFromStart: 2 * time.Second},
		},
	}

	trajOut := combineTrajectories(twoJoints, []float64{0, 0}, trajIn, approach)
	// joint0 carries the planned values, joint1 the constant bridge slope
	test.That(t, trajOut[0].Velocities, test.ShouldResemble, []float64{0.7, 0.5})
	test.That(t, trajOut[0].Accelerations, test.ShouldResemble, []float64{0.1, 0})
	test.That(t, trajOut[1].Velocities[1], test.ShouldAlmostEqual, 0.5)
}

func TestCombineAppendsMultiPointInput(t *testing.T) {
	trajIn := []trajectory.Point{
		{Positions: []float64{0.5, 0.5}, TimeFromStart: 0},
		{Positions: []float64{0.8, 0.1}, TimeFromStart: 3 * time.Second},
	}
	approach := trajectory.Trajectory{
		JointNames: twoJoints,
		Points: []trajectory.Point{
			{Positions: []float64{0.2, 0.2}, TimeFromStart: time.Second},
			{Positions: []float64{0.5, 0.5}, TimeFromStart: 2 * time.Second},
		},
	}

	trajOut := combineTrajectories(twoJoints, []float64{0, 0}, trajIn, approach)
	// The last approach point duplicates the input's first waypoint and is
	// replaced by it; input times shift by the approach duration.
	test.That(t, trajOut, test.ShouldHaveLength, 3)
	test.That(t, trajOut[0].Positions, test.ShouldResemble, []float64{0.2, 0.2})
	test.That(t, trajOut[1].Positions, test.ShouldResemble, []float64{0.5, 0.5})
	test.That(t, trajOut[1].TimeFromStart, test.ShouldEqual, 2*time.Second)
	test.That(t, trajOut[2].Positions, test.ShouldResemble, []float64{0.8, 0.1})
	test.That(t, trajOut[2].TimeFromStart, test.ShouldEqual, 5*time.Second)
}

func TestCombineDegenerateApproachWindow(t *testing.T) {
	// A zero-length approach window lands interpolated joints on the goal
	// directly instead of dividing by zero.
	trajIn := []trajectory.Point{{Positions: []float64{0.5, 0.5}}}
	approach := trajectory.Trajectory{
		JointNames: []string{"joint0"},
		Points:     []trajectory.Point{{Positions: []float64{0.5}, TimeFromStart: 0}},
	}

	trajOut := combineTrajectories(twoJoints, []float64{0, 0}, trajIn, approach)
	test.That(t, trajOut, test.ShouldHaveLength, 1)
	test.That(t, trajOut[0].Positions, test.ShouldResemble, []float64{0.5, 0.5})
}
