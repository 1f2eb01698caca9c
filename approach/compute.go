package approach

import (
	"context"
	"math"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/approachmotion/trajectory"
)

// computeApproach produces a motion carrying the deviating joints to their
// goal values. An empty trajectory with a nil error means no approach is
// required: all deviating joints, if any, are excluded from planning.
func (p *Planner) computeApproach(
	ctx context.Context,
	jointNames []string,
	currentPos, goalPos []float64,
) (trajectory.Trajectory, error) {
	// Maximum set of joints a candidate group may have: the motion joints
	// minus those excluded from planning.
	var maxGroup []string
	var maxValues []float64

	// Minimum set a candidate group must have: the maximum set minus the
	// joints already at their goal configuration.
	var minGroup []string

	for i, name := range jointNames {
		if !p.isPlanningJoint(name) {
			continue
		}
		maxGroup = append(maxGroup, name)
		maxValues = append(maxValues, goalPos[i])
		if math.Abs(currentPos[i]-goalPos[i]) > p.conf.JointTolerance {
			minGroup = append(minGroup, name)
		}
	}

	if len(minGroup) == 0 {
		return trajectory.Trajectory{}, nil
	}

	candidates := p.registry.Select(minGroup, maxGroup)
	if len(candidates) == 0 {
		return trajectory.Trajectory{}, errors.Wrapf(ErrNoEligibleGroup,
			"no group spans at least [%s] and at most [%s]",
			strings.Join(minGroup, ", "), strings.Join(maxGroup, ", "))
	}
	p.logger.Infof("approach motion can be computed by the following groups: %s", groupNames(candidates))

	// First-match-wins, in registration order.
	var failures error
	for _, pg := range candidates {
		approach, err := p.planApproach(ctx, maxGroup, maxValues, pg)
		if err != nil {
			p.logger.Debugf("could not compute approach trajectory with planning group %q: %v", pg.Name(), err)
			failures = multierr.Append(failures, errors.Wrapf(err, "group %q", pg.Name()))
			continue
		}
		p.logger.Infof("successfully computed approach with planning group %q", pg.Name())
		return approach, nil
	}

	return trajectory.Trajectory{}, errors.Wrapf(ErrPlanningFailure,
		"tried groups [%s]: %v", groupNames(candidates), failures)
}

// planApproach asks a single candidate group for an approach from the
// actuator's current state to the given joint targets. The returned trajectory
// is scoped to the group's joints.
func (p *Planner) planApproach(
	ctx context.Context,
	jointNames []string,
	jointValues []float64,
	pg *PlanningGroup,
) (trajectory.Trajectory, error) {
	if err := pg.acquire(p.registry.policy); err != nil {
		return trajectory.Trajectory{}, err
	}
	defer pg.release()

	if err := pg.planner.SetStartStateToCurrent(ctx); err != nil {
		return trajectory.Trajectory{}, errors.Wrap(err, "cannot set planning start state")
	}
	for i, name := range jointNames {
		if !pg.planner.SetJointTarget(name, jointValues[i]) {
			return trajectory.Trajectory{}, errors.Wrapf(ErrTargetRejected, "joint %q", name)
		}
	}
	approach, err := pg.planner.Plan(ctx)
	if err != nil {
		return trajectory.Trajectory{}, err
	}
	if approach.Empty() {
		return trajectory.Trajectory{}, errors.New("computed approach trajectory is empty")
	}
	if err := approach.CheckDimensions(); err != nil {
		return trajectory.Trajectory{}, errors.Wrap(err, "computed approach trajectory is malformed")
	}
	return approach, nil
}

func (p *Planner) isPlanningJoint(name string) bool {
	return trajectory.IndexOf(p.conf.ExcludeFromPlanningJoints, name) < 0
}
