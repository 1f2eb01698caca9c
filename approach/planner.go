// Package approach computes transitional motions that carry a multi-joint
// actuator from its current configuration to the first waypoint of a commanded
// trajectory, and merges the two into a single time-consistent trajectory
// ready for execution.
//
// A controller cannot safely jump to an arbitrary trajectory's first waypoint
// when the actuator is far from it. Planner interposes an approach motion
// computed by an external planning capability, or, when planning is skipped, a
// simple time shift bounded by a configured average velocity.
package approach

import (
	"context"
	"math"
	"strings"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"go.viam.com/approachmotion/trajectory"
)

// Planner prepends approach motions to commanded trajectories.
//
// A Planner is safe for concurrent use; each invocation of PrependApproach is
// a single blocking call whose only slow sub-operation is the external
// planning capability, guarded per group by the registry's BusyPolicy.
type Planner struct {
	conf     Config
	registry *Registry
	logger   golog.Logger
}

// NewPlanner wires a validated config to a group registry. The registry may be
// nil only when motion planning is disabled.
func NewPlanner(conf *Config, registry *Registry, logger golog.Logger) (*Planner, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if conf.DisableMotionPlanning {
		logger.Warn("motion planning capability disabled; goals requesting planning (the default) will be rejected")
	} else if registry == nil || len(registry.groups) == 0 {
		return nil, errors.Wrap(ErrNoPlanningGroups, "registry is empty")
	}
	return &Planner{conf: *conf, registry: registry, logger: logger}, nil
}

// NeedsApproach reports whether at least one joint's absolute deviation from
// its goal exceeds the configured tolerance. Deviations exactly at the
// tolerance do not count. Both slices must have the same length.
func (p *Planner) NeedsApproach(currentPos, goalPos []float64) bool {
	for i := range currentPos {
		if math.Abs(currentPos[i]-goalPos[i]) > p.conf.JointTolerance {
			return true
		}
	}
	return false
}

// PrependApproach returns trajIn preceded by a motion from currentPos to its
// first waypoint. With skipPlanning the input is only shifted in time; the
// shift bridges the largest joint displacement at the configured velocity.
// Otherwise an approach is planned for the joints that deviate, joints outside
// the winning planning group are interpolated linearly, and the input is
// appended after the approach.
//
// The returned trajectory always starts at a strictly positive time and its
// waypoint times are non-decreasing. On failure no partial trajectory is
// returned.
func (p *Planner) PrependApproach(
	ctx context.Context,
	jointNames []string,
	currentPos []float64,
	skipPlanning bool,
	trajIn []trajectory.Point,
) ([]trajectory.Point, error) {
	if len(trajIn) == 0 {
		p.logger.Debug("approach motion not needed: input trajectory is empty")
		return trajectory.CopyPoints(trajIn), nil
	}

	jointDim := len(trajIn[0].Positions)
	if jointDim != len(jointNames) {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"%d joint names, input trajectory has %d positions", len(jointNames), jointDim)
	}
	if jointDim != len(currentPos) {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"%d current positions, input trajectory has %d positions", len(currentPos), jointDim)
	}
	// Reject the goal if it requests planning while planning is disabled.
	if !skipPlanning && p.conf.DisableMotionPlanning {
		return nil, ErrPlanningDisabled
	}

	var trajOut []trajectory.Point
	if skipPlanning {
		trajOut = trajectory.CopyPoints(trajIn)
		// A first waypoint at zero time gets a duration that does not exceed
		// the configured max average velocity.
		if trajOut[0].TimeFromStart == 0 {
			shiftTimes(trajOut, p.reachTime(currentPos, trajOut[0].Positions))
		}
	} else {
		approach, err := p.computeApproach(ctx, jointNames, currentPos, trajIn[0].Positions)
		if err != nil {
			return nil, err
		}
		if approach.Empty() {
			p.logger.Info("approach motion not needed")
			trajOut = trajectory.CopyPoints(trajIn)
		} else {
			trajOut = combineTrajectories(jointNames, currentPos, trajIn, approach)
		}
	}

	// A combined trajectory may still start at zero time. If some joint is not
	// at its destination, shift by an appropriate reach time.
	if trajOut[0].TimeFromStart == 0 {
		if reach := p.reachTime(currentPos, trajOut[0].Positions); reach > epsTime {
			shiftTimes(trajOut, reach)
		}
	}
	// Otherwise the first waypoint corresponds to the current state. A zero
	// duration first segment is kinematically infeasible and controllers
	// rightly complain about it, so force a small nonzero value.
	if trajOut[0].TimeFromStart == 0 {
		trajOut[0].TimeFromStart = epsTime
	}

	return trajOut, nil
}

func groupNames(groups []*PlanningGroup) string {
	names := make([]string, 0, len(groups))
	for _, pg := range groups {
		names = append(names, pg.Name())
	}
	return strings.Join(names, ", ")
}
