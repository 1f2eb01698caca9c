package approach

import "github.com/pkg/errors"

// Failure values returned by the planner. Callers should match them with
// errors.Is; wrapped context carries the diagnostic detail (which groups were
// tried, which joints mismatched).
var (
	// ErrNoPlanningGroups is returned at construction when planning is enabled
	// but no planning groups are configured.
	ErrNoPlanningGroups = errors.New("no planning groups configured for computing approach trajectories")

	// ErrDimensionMismatch is returned when joint names, current positions, and
	// the input trajectory disagree on the number of joints.
	ErrDimensionMismatch = errors.New("size mismatch between joint names, current positions, and input trajectory")

	// ErrPlanningDisabled is returned when a goal requests planning but the
	// motion planning capability is disabled.
	ErrPlanningDisabled = errors.New("motion planning capability disabled; set skip_planning to bypass it")

	// ErrNoEligibleGroup is returned when no registered planning group spans
	// the joints requiring an approach.
	ErrNoEligibleGroup = errors.New("no planning group spans the joints requiring an approach")

	// ErrPlanningFailure is returned when every eligible planning group failed
	// to produce an approach trajectory.
	ErrPlanningFailure = errors.New("all eligible planning groups failed to compute an approach")

	// ErrTargetRejected marks a planning group refusing a joint target during
	// planning setup. It fails that candidate group, not the whole operation.
	ErrTargetRejected = errors.New("planning group rejected joint target")

	// ErrGroupBusy marks a planning group whose planner already has a plan in
	// flight, under the RejectIfBusy policy.
	ErrGroupBusy = errors.New("planning group is busy with another plan")
)
