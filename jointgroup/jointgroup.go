// Package jointgroup dispatches joint-space trajectory goals to the controller
// owning a group of joints and reports their terminal state.
package jointgroup

import (
	"context"
	"sync"
	"time"

	"github.com/edaniels/golog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"go.viam.com/approachmotion/trajectory"
)

// Controller error codes reported with a goal's terminal state, matching the
// follow-joint-trajectory convention.
const (
	CodeSuccessful            = 0
	CodeInvalidGoal           = -1
	CodeInvalidJoints         = -2
	CodeOldHeaderTimestamp    = -3
	CodePathToleranceViolated = -4
	CodeGoalToleranceViolated = -5
	CodeCancelled             = -6
)

// Result carries the terminal state of one submitted goal.
type Result struct {
	GoalID  uuid.UUID
	Success bool
	Code    int
}

// Goal is a fully-specified trajectory goal handed to a Controller. Its
// trajectory spans exactly the controller's joints.
type Goal struct {
	ID         uuid.UUID
	Trajectory trajectory.Trajectory
}

// DoneFunc consumes a goal's terminal state. It is invoked exactly once per
// accepted goal.
type DoneFunc func(Result)

// Controller is the execution capability for one actuator group: typically a
// follow-trajectory action server. SubmitGoal either rejects the goal with an
// error or accepts it and later reports its terminal state through done,
// exactly once.
type Controller interface {
	Connected() bool
	JointNames() []string
	SubmitGoal(ctx context.Context, goal Goal, done DoneFunc) error
}

// MoveJointGroup wraps a Controller with joint-ownership queries and goal
// dispatch. It fills in what the controller expects but a combined trajectory
// may omit: velocities and a time offset.
type MoveJointGroup struct {
	name       string
	controller Controller
	logger     golog.Logger

	activeBackgroundWorkers sync.WaitGroup
}

// New returns a MoveJointGroup for the named controller.
func New(name string, controller Controller, logger golog.Logger) *MoveJointGroup {
	return &MoveJointGroup{name: name, controller: controller, logger: logger}
}

// Name returns the controller name this group dispatches to.
func (mjg *MoveJointGroup) Name() string {
	return mjg.name
}

// IsConnected reports whether the underlying controller is reachable.
func (mjg *MoveJointGroup) IsConnected() bool {
	return mjg.controller.Connected()
}

// IsControllingJoint reports whether the controller owns the given joint. A
// disconnected controller owns nothing.
func (mjg *MoveJointGroup) IsControllingJoint(name string) bool {
	if !mjg.controller.Connected() {
		return false
	}
	return trajectory.IndexOf(mjg.controller.JointNames(), name) >= 0
}

// SendGoal submits the waypoints as a trajectory goal, with offset added to
// every waypoint time. Points lacking velocities are reached with zero
// velocity. A non-nil error means the goal was rejected and onDone will never
// run; otherwise onDone is invoked exactly once, asynchronously, with the
// goal's terminal state.
func (mjg *MoveJointGroup) SendGoal(
	ctx context.Context,
	points []trajectory.Point,
	offset time.Duration,
	onDone DoneFunc,
) error {
	jointNames := mjg.controller.JointNames()
	if len(jointNames) == 0 {
		// Nothing to send; the controller might not even be connected.
		return errors.Errorf("controller %q has no configured joints", mjg.name)
	}

	goalTraj := trajectory.Trajectory{
		JointNames: append([]string{}, jointNames...),
		Points:     make([]trajectory.Point, 0, len(points)),
	}
	for _, point := range points {
		if len(point.Positions) != len(jointNames) {
			return errors.Errorf("pose size mismatch: expected %d, got %d", len(jointNames), len(point.Positions))
		}
		sent := point.Copy()
		if len(sent.Velocities) != len(jointNames) {
			// Reach the waypoint with zero velocity.
			sent.Velocities = make([]float64, len(jointNames))
		}
		sent.TimeFromStart += offset
		goalTraj.Points = append(goalTraj.Points, sent)
	}

	goal := Goal{ID: uuid.New(), Trajectory: goalTraj}
	mjg.logger.Debugf("sending trajectory goal %s to %q", goal.ID, mjg.name)

	mjg.activeBackgroundWorkers.Add(1)
	var once sync.Once
	done := func(res Result) {
		once.Do(func() {
			goutils.PanicCapturingGo(func() {
				defer mjg.activeBackgroundWorkers.Done()
				if !res.Success {
					mjg.logger.Warnf("controller %q failed goal %s with error code %d", mjg.name, res.GoalID, res.Code)
				}
				if onDone != nil {
					onDone(res)
				}
			})
		})
	}
	if err := mjg.controller.SubmitGoal(ctx, goal, done); err != nil {
		// The once guards against a controller that reported the goal done and
		// then rejected it anyway.
		once.Do(mjg.activeBackgroundWorkers.Done)
		return errors.Wrapf(err, "controller %q rejected goal", mjg.name)
	}
	return nil
}

// Close waits for the completion callbacks of accepted goals to be delivered.
func (mjg *MoveJointGroup) Close() {
	mjg.activeBackgroundWorkers.Wait()
}
