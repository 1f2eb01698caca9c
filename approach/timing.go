package approach

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"go.viam.com/approachmotion/trajectory"
)

// epsTime is the smallest first-waypoint duration handed to the execution
// layer. Shifts smaller than this are not worth applying.
const epsTime = time.Millisecond

// reachTime estimates how long an unplanned approach needs: the time to bridge
// the largest joint displacement at the configured average velocity, floored
// at the configured minimum duration.
func (p *Planner) reachTime(currentPos, goalPos []float64) time.Duration {
	dmax := floats.Distance(currentPos, goalPos, math.Inf(1))
	secs := math.Max(dmax/p.conf.SkipPlanningApproachVel, p.conf.SkipPlanningApproachMinDur)
	return time.Duration(secs * float64(time.Second))
}

// shiftTimes adds offset to every waypoint's time from start, in place.
func shiftTimes(points []trajectory.Point, offset time.Duration) {
	for i := range points {
		points[i].TimeFromStart += offset
	}
}
