package approach

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// Defaults applied by Config.Validate when an option is unset.
const (
	DefaultJointTolerance             = 1e-3
	DefaultSkipPlanningApproachVel    = 0.5
	DefaultSkipPlanningApproachMinDur = 0.0
)

// Config is used for converting planner config attributes. It is immutable
// once validated and handed to a Planner.
type Config struct {
	// JointTolerance is the per-joint deviation beyond which a joint is
	// considered away from its goal. Unit-agnostic (radians or meters).
	JointTolerance float64 `json:"joint_tolerance,omitempty"`
	// PlanningGroups names the groups to register, in priority order.
	// Required unless motion planning is disabled.
	PlanningGroups []string `json:"planning_groups,omitempty"`
	// ExcludeFromPlanningJoints are joints never handed to a planning group.
	ExcludeFromPlanningJoints []string `json:"exclude_from_planning_joints,omitempty"`
	// SkipPlanningApproachVel caps the average velocity assumed when
	// estimating the reach time of unplanned approaches.
	SkipPlanningApproachVel float64 `json:"skip_planning_approach_vel,omitempty"`
	// SkipPlanningApproachMinDur floors the reach time of unplanned
	// approaches, in seconds.
	SkipPlanningApproachMinDur float64 `json:"skip_planning_approach_min_dur,omitempty"`
	// DisableMotionPlanning disables approach computation entirely. Goals
	// requesting planning (the default) will be rejected.
	DisableMotionPlanning bool `json:"disable_motion_planning,omitempty"`
}

// Validate applies defaults and ensures all parts of the config are valid.
func (conf *Config) Validate() error {
	if conf.JointTolerance == 0 {
		conf.JointTolerance = DefaultJointTolerance
	}
	if conf.JointTolerance < 0 {
		return errors.Errorf("joint_tolerance must be non-negative, got %f", conf.JointTolerance)
	}
	if conf.SkipPlanningApproachVel == 0 {
		conf.SkipPlanningApproachVel = DefaultSkipPlanningApproachVel
	}
	if conf.SkipPlanningApproachVel <= 0 {
		return errors.Errorf("skip_planning_approach_vel must be positive, got %f", conf.SkipPlanningApproachVel)
	}
	if conf.SkipPlanningApproachMinDur < 0 {
		return errors.Errorf("skip_planning_approach_min_dur must be non-negative, got %f", conf.SkipPlanningApproachMinDur)
	}
	if !conf.DisableMotionPlanning && len(conf.PlanningGroups) == 0 {
		return errors.Wrap(ErrNoPlanningGroups, "set planning_groups or disable_motion_planning")
	}
	return nil
}

// ConfigFromAttributes decodes an untyped attribute map, as loaded from a
// robot config, into a validated Config.
func ConfigFromAttributes(attributes map[string]interface{}) (*Config, error) {
	var conf Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &conf,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "cannot parse approach planner attributes")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}
