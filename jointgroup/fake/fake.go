// Package fake implements an in-memory trajectory controller. It stands in for
// both the execution capability and the hardware state interface: it holds
// joint positions, accepts trajectory goals, and completes them once the final
// waypoint time elapses on its clock.
package fake

import (
	"context"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"go.viam.com/approachmotion/jointgroup"
)

// Controller is a fake jointgroup.Controller over a fixed joint set. Pass a
// clock.Mock to drive goal completion from tests.
type Controller struct {
	name       string
	jointNames []string
	clock      clock.Clock

	mu                      sync.Mutex
	connected               bool
	positions               []float64
	activeBackgroundWorkers sync.WaitGroup
}

// NewController returns a connected fake controller with all joints at zero.
// A nil clk means the wall clock.
func NewController(name string, jointNames []string, clk clock.Clock) *Controller {
	if clk == nil {
		clk = clock.New()
	}
	return &Controller{
		name:       name,
		jointNames: append([]string{}, jointNames...),
		clock:      clk,
		connected:  true,
		positions:  make([]float64, len(jointNames)),
	}
}

// Connected implements jointgroup.Controller.
func (c *Controller) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// SetConnected flips the emulated server connectivity.
func (c *Controller) SetConnected(connected bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = connected
}

// JointNames implements jointgroup.Controller.
func (c *Controller) JointNames() []string {
	return append([]string{}, c.jointNames...)
}

// Positions returns the current joint positions, the state a caller feeds into
// approach planning.
func (c *Controller) Positions() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]float64{}, c.positions...)
}

// SetPositions overwrites the held joint state.
func (c *Controller) SetPositions(positions []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(positions) != len(c.jointNames) {
		return errors.Errorf("expected %d positions, got %d", len(c.jointNames), len(positions))
	}
	c.positions = append([]float64{}, positions...)
	return nil
}

// SubmitGoal implements jointgroup.Controller. Accepted goals complete after
// their final waypoint time; the held positions then jump to the final
// waypoint.
func (c *Controller) SubmitGoal(ctx context.Context, goal jointgroup.Goal, done jointgroup.DoneFunc) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return errors.Errorf("controller %q is not connected", c.name)
	}
	if goal.Trajectory.Empty() {
		return errors.New("empty trajectory goal")
	}
	if err := goal.Trajectory.CheckDimensions(); err != nil {
		return err
	}

	final := goal.Trajectory.Points[len(goal.Trajectory.Points)-1]
	// The timer starts before SubmitGoal returns so tests driving a mock
	// clock cannot race goal acceptance.
	timer := c.clock.Timer(final.TimeFromStart)
	c.activeBackgroundWorkers.Add(1)
	goutils.PanicCapturingGo(func() {
		defer c.activeBackgroundWorkers.Done()
		defer timer.Stop()
		select {
		case <-ctx.Done():
			done(jointgroup.Result{GoalID: goal.ID, Success: false, Code: jointgroup.CodeCancelled})
			return
		case <-timer.C:
		}
		c.mu.Lock()
		c.positions = append([]float64{}, final.Positions...)
		c.mu.Unlock()
		done(jointgroup.Result{GoalID: goal.ID, Success: true, Code: jointgroup.CodeSuccessful})
	})
	return nil
}

// Close waits for in-flight goals to finish reporting.
func (c *Controller) Close() {
	c.activeBackgroundWorkers.Wait()
}
