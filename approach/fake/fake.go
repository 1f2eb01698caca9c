// Package fake implements a scripted planning capability so the approach
// planner can be exercised without a real motion planner.
package fake

import (
	"context"
	"sync"

	"go.viam.com/approachmotion/trajectory"
)

// Planner is a deterministic approach.GroupPlanner. Tests script it with a
// canned plan or injected errors and inspect the recorded calls afterwards.
type Planner struct {
	joints []string

	mu            sync.Mutex
	plan          trajectory.Trajectory
	planErr       error
	startStateErr error
	rejectTargets map[string]bool

	// recorded calls
	startStateCalls int
	planCalls       int
	targets         map[string]float64

	// PlanStarted, when non-nil, receives once per Plan call before any
	// blocking, letting tests observe in-flight plans.
	PlanStarted chan struct{}
	// Proceed, when non-nil, blocks Plan until it yields a value.
	Proceed chan struct{}
}

// NewPlanner returns a fake planner actively planning for the given joints.
func NewPlanner(joints []string) *Planner {
	return &Planner{
		joints:        append([]string{}, joints...),
		rejectTargets: map[string]bool{},
		targets:       map[string]float64{},
	}
}

// SetPlan scripts the trajectory returned by Plan.
func (p *Planner) SetPlan(plan trajectory.Trajectory) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.plan = plan
}

// SetPlanError scripts Plan to fail.
func (p *Planner) SetPlanError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.planErr = err
}

// SetStartStateError scripts SetStartStateToCurrent to fail.
func (p *Planner) SetStartStateError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.startStateErr = err
}

// RejectTarget makes the planner refuse targets for the given joint.
func (p *Planner) RejectTarget(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rejectTargets[name] = true
}

// JointNames implements approach.GroupPlanner.
func (p *Planner) JointNames() []string {
	return append([]string{}, p.joints...)
}

// SetStartStateToCurrent implements approach.GroupPlanner.
func (p *Planner) SetStartStateToCurrent(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.startStateCalls++
	return p.startStateErr
}

// SetJointTarget implements approach.GroupPlanner. Targets for joints the
// group does not plan for are refused, as a real capability would.
func (p *Planner) SetJointTarget(name string, value float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if trajectory.IndexOf(p.joints, name) < 0 || p.rejectTargets[name] {
		return false
	}
	p.targets[name] = value
	return true
}

// Plan implements approach.GroupPlanner.
func (p *Planner) Plan(ctx context.Context) (trajectory.Trajectory, error) {
	if p.PlanStarted != nil {
		p.PlanStarted <- struct{}{}
	}
	if p.Proceed != nil {
		select {
		case <-p.Proceed:
		case <-ctx.Done():
			return trajectory.Trajectory{}, ctx.Err()
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.planCalls++
	if p.planErr != nil {
		return trajectory.Trajectory{}, p.planErr
	}
	return p.plan.Copy(), nil
}

// StartStateCalls returns how many times the start state was set.
func (p *Planner) StartStateCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.startStateCalls
}

// PlanCalls returns how many plans were requested.
func (p *Planner) PlanCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.planCalls
}

// Targets returns a copy of the joint targets set so far.
func (p *Planner) Targets() map[string]float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]float64, len(p.targets))
	for name, value := range p.targets {
		out[name] = value
	}
	return out
}
