package approach

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"go.viam.com/approachmotion/trajectory"
)

// GroupPlanner is the motion planning capability backing one planning group.
// Implementations are black boxes; kinematics and collision checking live
// behind Plan. A GroupPlanner is not assumed safe for concurrent use; the
// registry guards each handle according to its BusyPolicy.
type GroupPlanner interface {
	// JointNames returns the joints the group actively plans for.
	JointNames() []string
	// SetStartStateToCurrent seeds the next plan with the actuator's current
	// state.
	SetStartStateToCurrent(ctx context.Context) error
	// SetJointTarget sets the goal value for a single joint, reporting whether
	// the target was accepted.
	SetJointTarget(name string, value float64) bool
	// Plan synchronously computes a trajectory, scoped to the group's joints,
	// from the start state to the configured targets.
	Plan(ctx context.Context) (trajectory.Trajectory, error)
}

// BusyPolicy decides what happens when a plan is requested from a group whose
// planner already has one in flight.
type BusyPolicy int

const (
	// SerializePerGroup blocks until the in-flight plan finishes. Default.
	SerializePerGroup BusyPolicy = iota
	// RejectIfBusy fails that candidate group immediately so the next one can
	// be tried.
	RejectIfBusy
)

// PlanningGroup pairs a named planner capability with its sorted joint set.
type PlanningGroup struct {
	name         string
	sortedJoints []string
	planner      GroupPlanner

	// guards planner, which is not reentrant
	mu sync.Mutex
}

// NewPlanningGroup wraps a planner capability for registration.
func NewPlanningGroup(name string, planner GroupPlanner) *PlanningGroup {
	return &PlanningGroup{
		name:         name,
		sortedJoints: trajectory.SortedJoints(planner.JointNames()),
		planner:      planner,
	}
}

// Name returns the group's configured name.
func (pg *PlanningGroup) Name() string {
	return pg.name
}

// Joints returns a copy of the group's sorted joint set.
func (pg *PlanningGroup) Joints() []string {
	return append([]string{}, pg.sortedJoints...)
}

func (pg *PlanningGroup) acquire(policy BusyPolicy) error {
	if policy == RejectIfBusy {
		if !pg.mu.TryLock() {
			return errors.Wrapf(ErrGroupBusy, "group %q", pg.name)
		}
		return nil
	}
	pg.mu.Lock()
	return nil
}

func (pg *PlanningGroup) release() {
	pg.mu.Unlock()
}

// Registry holds the configured planning groups for the life of the process.
// It is immutable after construction and safe for concurrent reads.
type Registry struct {
	groups []*PlanningGroup
	policy BusyPolicy
}

// NewRegistry builds a registry preserving the registration order of groups,
// which is also the order candidates are tried in.
func NewRegistry(policy BusyPolicy, groups ...*PlanningGroup) *Registry {
	return &Registry{
		groups: append([]*PlanningGroup{}, groups...),
		policy: policy,
	}
}

// Groups returns the registered groups in registration order.
func (r *Registry) Groups() []*PlanningGroup {
	return append([]*PlanningGroup{}, r.groups...)
}

// Select returns, in registration order, every group whose joint set contains
// minGroup and is contained by maxGroup. Inputs may be unsorted and contain
// duplicates. An empty result is not an error by itself; callers decide.
func (r *Registry) Select(minGroup, maxGroup []string) []*PlanningGroup {
	minSorted := trajectory.SortedJoints(minGroup)
	maxSorted := trajectory.SortedJoints(maxGroup)

	var valid []*PlanningGroup
	for _, pg := range r.groups {
		if trajectory.IsSubset(minSorted, pg.sortedJoints) && trajectory.IsSubset(pg.sortedJoints, maxSorted) {
			valid = append(valid, pg)
		}
	}
	return valid
}
