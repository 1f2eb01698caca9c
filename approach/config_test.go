package approach

import (
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestConfigValidateDefaults(t *testing.T) {
	conf := &Config{PlanningGroups: []string{"arm"}}
	test.That(t, conf.Validate(), test.ShouldBeNil)
	test.That(t, conf.JointTolerance, test.ShouldEqual, DefaultJointTolerance)
	test.That(t, conf.SkipPlanningApproachVel, test.ShouldEqual, DefaultSkipPlanningApproachVel)
	test.That(t, conf.SkipPlanningApproachMinDur, test.ShouldEqual, DefaultSkipPlanningApproachMinDur)
}

func TestConfigValidateErrors(t *testing.T) {
	conf := &Config{PlanningGroups: []string{"arm"}, JointTolerance: -1}
	test.That(t, conf.Validate(), test.ShouldNotBeNil)

	conf = &Config{PlanningGroups: []string{"arm"}, SkipPlanningApproachVel: -0.5}
	test.That(t, conf.Validate(), test.ShouldNotBeNil)

	conf = &Config{PlanningGroups: []string{"arm"}, SkipPlanningApproachMinDur: -1}
	test.That(t, conf.Validate(), test.ShouldNotBeNil)

	// planning groups are required unless planning is disabled
	conf = &Config{}
	err := conf.Validate()
	test.That(t, errors.Is(err, ErrNoPlanningGroups), test.ShouldBeTrue)

	conf = &Config{DisableMotionPlanning: true}
	test.That(t, conf.Validate(), test.ShouldBeNil)
}

func TestConfigFromAttributes(t *testing.T) {
	conf, err := ConfigFromAttributes(map[string]interface{}{
		"joint_tolerance":                0.01,
		"planning_groups":                []interface{}{"arm", "arm_torso"},
		"exclude_from_planning_joints":   []interface{}{"gripper_finger"},
		"skip_planning_approach_vel":     0.4,
		"skip_planning_approach_min_dur": 0.5,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf.JointTolerance, test.ShouldEqual, 0.01)
	test.That(t, conf.PlanningGroups, test.ShouldResemble, []string{"arm", "arm_torso"})
	test.That(t, conf.ExcludeFromPlanningJoints, test.ShouldResemble, []string{"gripper_finger"})
	test.That(t, conf.SkipPlanningApproachVel, test.ShouldEqual, 0.4)
	test.That(t, conf.SkipPlanningApproachMinDur, test.ShouldEqual, 0.5)
	test.That(t, conf.DisableMotionPlanning, test.ShouldBeFalse)

	_, err = ConfigFromAttributes(map[string]interface{}{})
	test.That(t, errors.Is(err, ErrNoPlanningGroups), test.ShouldBeTrue)

	conf, err = ConfigFromAttributes(map[string]interface{}{"disable_motion_planning": true})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf.DisableMotionPlanning, test.ShouldBeTrue)
}
