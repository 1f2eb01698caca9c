package trajectory

import (
	"testing"
	"time"

	"go.viam.com/test"
)

func TestCheckDimensions(t *testing.T) {
	traj := Trajectory{
		JointNames: []string{"shoulder", "elbow"},
		Points: []Point{
			{Positions: []float64{0, 0}, TimeFromStart: time.Second},
			{Positions: []float64{0.5, 0.5}, Velocities: []float64{0.1, 0.1}, TimeFromStart: 2 * time.Second},
		},
	}
	test.That(t, traj.CheckDimensions(), test.ShouldBeNil)
	test.That(t, traj.Dim(), test.ShouldEqual, 2)
	test.That(t, traj.Empty(), test.ShouldBeFalse)

	traj.Points[1].Velocities = []float64{0.1}
	err := traj.CheckDimensions()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "velocities")

	traj.Points[1].Velocities = nil
	traj.Points[0].Positions = []float64{0}
	err = traj.CheckDimensions()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "positions")
}

func TestCopyIsolation(t *testing.T) {
	orig := Trajectory{
		JointNames: []string{"shoulder"},
		Points: []Point{
			{Positions: []float64{1}, Accelerations: []float64{0}, TimeFromStart: time.Second},
		},
	}
	dup := orig.Copy()
	dup.JointNames[0] = "elbow"
	dup.Points[0].Positions[0] = 99
	dup.Points[0].TimeFromStart = 0

	test.That(t, orig.JointNames[0], test.ShouldEqual, "shoulder")
	test.That(t, orig.Points[0].Positions[0], test.ShouldEqual, 1)
	test.That(t, orig.Points[0].TimeFromStart, test.ShouldEqual, time.Second)

	// optional fields stay absent on copies
	test.That(t, dup.Points[0].Velocities, test.ShouldBeNil)
	test.That(t, dup.Points[0].Accelerations, test.ShouldResemble, []float64{0})
}
